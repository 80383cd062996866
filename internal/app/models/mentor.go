package models

import "time"

// Mentor defines the mentor model based on the 'mentors' table. The alumni
// user id doubles as the mentor identity (1:1 with the alumni profile).
// Availability is toggled by the owning alumni and auto-disabled by the
// system once accepted mentees reach MaxMentees.
type Mentor struct {
	AlumniID     int64  `json:"alumni_id" db:"alumni_id"`
	Expertise    string `json:"expertise" db:"expertise"`
	Availability bool   `json:"availability" db:"availability"`
	MaxMentees   int    `json:"max_mentees" db:"max_mentees"`

	User   *User          `json:"user,omitempty"`   // Relation, no db tag
	Alumni *AlumniProfile `json:"alumni,omitempty"` // Relation, no db tag
}

// MentorshipRequest defines a request row from the 'mentorship_requests'
// table. At most one row exists per (student, mentor) pair regardless of
// status; re-requesting after rejection stays blocked by that uniqueness.
type MentorshipRequest struct {
	RequestID   int64         `json:"request_id" db:"request_id"`
	StudentID   int64         `json:"student_id" db:"student_id"`
	MentorID    int64         `json:"mentor_id" db:"mentor_id"`
	Status      RequestStatus `json:"status" db:"status"`
	RequestedAt time.Time     `json:"requested_at" db:"requested_at"`
}
