package dto

// Response is the standard JSON envelope for every endpoint. Errors carry
// only Message; list endpoints add Pagination.
type Response struct {
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination is the derived page metadata for list endpoints.
type Pagination struct {
	CurrentPage    int   `json:"currentPage"`
	TotalPages     int   `json:"totalPages"`
	TotalRecords   int64 `json:"totalRecords"`
	RecordsPerPage int   `json:"recordsPerPage"`
	HasNextPage    bool  `json:"hasNextPage"`
	HasPrevPage    bool  `json:"hasPrevPage"`
}

// NewMessageResponse creates an envelope carrying only a message.
func NewMessageResponse(message string) Response {
	return Response{Message: message}
}

// NewDataResponse creates an envelope with a message and data.
func NewDataResponse(message string, data interface{}) Response {
	return Response{Message: message, Data: data}
}
