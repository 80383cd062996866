package dto

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	EventName   string `json:"event_name" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
}

// UpdateEventRequest is a partial update of an owned event.
type UpdateEventRequest struct {
	EventName   *string `json:"event_name"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

// RegisterEventRequest is the payload for a student registration.
type RegisterEventRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
}
