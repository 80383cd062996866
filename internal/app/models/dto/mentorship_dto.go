package dto

import "time"

// SetupMentorRequest is the payload for the mentor profile upsert. Only
// Expertise is required; nil Availability and MaxMentees keep prior values
// on update and take the defaults (true, 5) on creation.
type SetupMentorRequest struct {
	Expertise    string `json:"expertise" binding:"required"`
	Availability *bool  `json:"availability"`
	MaxMentees   *int   `json:"max_mentees" binding:"omitempty,min=1"`
}

// MentorProfileResponse is the mentor's own profile joined with the user row.
type MentorProfileResponse struct {
	AlumniID     int64  `json:"alumni_id"`
	Expertise    string `json:"expertise"`
	Availability bool   `json:"availability"`
	MaxMentees   int    `json:"max_mentees"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// AvailableMentor is one row of the available-mentor directory.
type AvailableMentor struct {
	MentorID     int64  `json:"mentor_id"`
	MentorName   string `json:"mentor_name"`
	MentorEmail  string `json:"mentor_email"`
	Degree       string `json:"degree"`
	Department   string `json:"department"`
	Expertise    string `json:"expertise"`
	Availability bool   `json:"availability"`
	MaxMentees   int    `json:"max_mentees"`
}

// MentorPublicProfile is the cached public view of one mentor.
type MentorPublicProfile struct {
	MentorID        int64  `json:"mentor_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Degree          string `json:"degree"`
	Department      string `json:"department"`
	Expertise       string `json:"expertise"`
	Availability    bool   `json:"availability"`
	CurrentPosition string `json:"current_position"`
	Company         string `json:"company"`
	Location        string `json:"location"`
}

// SendMentorshipRequest is the payload for creating a mentorship request.
type SendMentorshipRequest struct {
	MentorID int64 `json:"mentor_id" binding:"required"`
}

// RespondMentorshipRequest carries the mentor's decision. The enum is
// validated before any lookup happens.
type RespondMentorshipRequest struct {
	Status string `json:"status" binding:"required"`
}

// MentorshipRequestCreated is the creation receipt for a new request.
type MentorshipRequestCreated struct {
	RequestID   int64     `json:"request_id"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}

// StudentRequestView is one of the student's own requests, joined with the
// mentor's identity.
type StudentRequestView struct {
	RequestID   int64     `json:"request_id"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
	MentorID    int64     `json:"mentor_id"`
	Expertise   string    `json:"expertise"`
	MentorName  string    `json:"mentor_name"`
	MentorEmail string    `json:"mentor_email"`
}

// MentorRequestView is one request targeting the caller's mentor profile,
// joined with the requesting student's identity.
type MentorRequestView struct {
	RequestID    int64     `json:"request_id"`
	Status       string    `json:"status"`
	RequestedAt  time.Time `json:"requested_at"`
	StudentID    int64     `json:"student_id"`
	StudentName  string    `json:"student_name"`
	StudentEmail string    `json:"student_email"`
	StudentPhone string    `json:"student_phone"`
}
