package dto

import "time"

// CreateJobRequest is the payload for posting a job.
type CreateJobRequest struct {
	JobTitle            string `json:"job_title" binding:"required"`
	Company             string `json:"company" binding:"required"`
	JobDescription      string `json:"job_description"`
	Location            string `json:"location"`
	EmploymentType      string `json:"employment_type"`
	ApplicationDeadline string `json:"application_deadline" binding:"required"`
}

// UpdateJobRequest is a partial update of an owned posting.
type UpdateJobRequest struct {
	JobTitle            *string `json:"job_title"`
	Company             *string `json:"company"`
	JobDescription      *string `json:"job_description"`
	Location            *string `json:"location"`
	EmploymentType      *string `json:"employment_type"`
	ApplicationDeadline *string `json:"application_deadline"`
}

// ApplyJobRequest is the payload for a student applying to a job.
type ApplyJobRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// UpdateApplicationStatusRequest carries the new application status; the
// four-value enum is validated before any lookup.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StudentApplicationView is one of the student's applications joined with
// the job posting.
type StudentApplicationView struct {
	ApplicationID int64     `json:"application_id"`
	JobID         int64     `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}

// JobApplicantView is one applicant of an owned job posting.
type JobApplicantView struct {
	ApplicationID int64     `json:"application_id"`
	StudentID     int64     `json:"student_id"`
	StudentName   string    `json:"student_name"`
	StudentEmail  string    `json:"student_email"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"applied_at"`
}
