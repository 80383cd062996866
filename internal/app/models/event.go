package models

import "time"

// Event defines an event from the 'events' table, organized by an alumni.
type Event struct {
	EventID     int64     `json:"event_id" db:"event_id"`
	OrganizerID int64     `json:"organizer_id" db:"organizer_id"`
	EventName   string    `json:"event_name" db:"event_name"`
	Description string    `json:"description" db:"description"`
	Date        time.Time `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	OrganizerName  string `json:"organizer_name,omitempty"`  // Joined
	OrganizerEmail string `json:"organizer_email,omitempty"` // Joined
}

// EventRegistration is a (student, event) membership row from the
// 'student_events' table; the composite key enforces at most one
// registration per pair.
type EventRegistration struct {
	StudentID int64 `json:"student_id" db:"student_id"`
	EventID   int64 `json:"event_id" db:"event_id"`
}
