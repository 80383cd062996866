package models

import "time"

// Job defines a job posting from the 'jobs' table. Mutated and deleted only
// by its posting alumni.
type Job struct {
	JobID               int64     `json:"job_id" db:"job_id"`
	AlumniID            int64     `json:"alumni_id" db:"alumni_id"`
	JobTitle            string    `json:"job_title" db:"job_title"`
	Company             string    `json:"company" db:"company"`
	JobDescription      string    `json:"job_description" db:"job_description"`
	Location            string    `json:"location" db:"location"`
	EmploymentType      string    `json:"employment_type" db:"employment_type"`
	PostedDate          time.Time `json:"posted_date" db:"posted_date"`
	ApplicationDeadline time.Time `json:"application_deadline" db:"application_deadline"`

	PostedBy    string `json:"posted_by,omitempty"`    // Poster name, joined
	AlumniEmail string `json:"alumni_email,omitempty"` // Poster email, joined
}

// JobApplication defines an application row from the 'job_applications'
// table. At most one application exists per (job, student) pair.
type JobApplication struct {
	ApplicationID int64             `json:"application_id" db:"application_id"`
	JobID         int64             `json:"job_id" db:"job_id"`
	StudentID     int64             `json:"student_id" db:"student_id"`
	Status        ApplicationStatus `json:"status" db:"status"`
	AppliedAt     time.Time         `json:"applied_at" db:"applied_at"`

	Job     *Job  `json:"job,omitempty"`     // Relation, no db tag
	Student *User `json:"student,omitempty"` // Relation, no db tag
}
