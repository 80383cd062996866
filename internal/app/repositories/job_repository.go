package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

// JobRepository handles database operations for job postings and
// applications
type JobRepository struct {
	db *pgxpool.Pool
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *pgxpool.Pool) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// ListAll retrieves every job posting joined with the poster, newest first
func (r *JobRepository) ListAll(ctx context.Context) ([]models.Job, error) {
	query := `
		SELECT j.job_id, j.alumni_id, j.job_title, j.company, j.job_description,
		       j.location, j.employment_type, j.posted_date, j.application_deadline,
		       u.name AS posted_by, u.email AS alumni_email
		FROM jobs j
		JOIN users u ON j.alumni_id = u.user_id
		ORDER BY j.posted_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.JobID,
			&j.AlumniID,
			&j.JobTitle,
			&j.Company,
			&j.JobDescription,
			&j.Location,
			&j.EmploymentType,
			&j.PostedDate,
			&j.ApplicationDeadline,
			&j.PostedBy,
			&j.AlumniEmail,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// Create inserts a job posting for an alumni
func (r *JobRepository) Create(ctx context.Context, alumniID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	query := `
		INSERT INTO jobs (alumni_id, job_title, company, job_description, location, employment_type, application_deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING job_id, alumni_id, job_title, company, job_description, location, employment_type, posted_date, application_deadline
	`

	var job models.Job
	err := r.db.QueryRow(ctx, query,
		alumniID, req.JobTitle, req.Company, req.JobDescription,
		req.Location, req.EmploymentType, req.ApplicationDeadline).Scan(
		&job.JobID,
		&job.AlumniID,
		&job.JobTitle,
		&job.Company,
		&job.JobDescription,
		&job.Location,
		&job.EmploymentType,
		&job.PostedDate,
		&job.ApplicationDeadline,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}

	return &job, nil
}

// ListByAlumni retrieves the alumni's own postings, newest first
func (r *JobRepository) ListByAlumni(ctx context.Context, alumniID int64) ([]models.Job, error) {
	query := `
		SELECT job_id, alumni_id, job_title, company, job_description,
		       location, employment_type, posted_date, application_deadline
		FROM jobs
		WHERE alumni_id = $1
		ORDER BY posted_date DESC
	`

	rows, err := r.db.Query(ctx, query, alumniID)
	if err != nil {
		return nil, fmt.Errorf("error querying alumni jobs: %w", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(
			&j.JobID,
			&j.AlumniID,
			&j.JobTitle,
			&j.Company,
			&j.JobDescription,
			&j.Location,
			&j.EmploymentType,
			&j.PostedDate,
			&j.ApplicationDeadline,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

// IsOwnedBy checks whether a job exists and belongs to the alumni. Ownership
// is re-verified against the store on every mutating call.
func (r *JobRepository) IsOwnedBy(ctx context.Context, jobID, alumniID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM jobs WHERE job_id = $1 AND alumni_id = $2)`,
		jobID, alumniID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking job ownership: %w", err)
	}

	return exists, nil
}

// Exists checks whether a job exists
func (r *JobRepository) Exists(ctx context.Context, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM jobs WHERE job_id = $1)`,
		jobID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking job existence: %w", err)
	}

	return exists, nil
}

// Update applies a partial update to an owned posting
func (r *JobRepository) Update(ctx context.Context, jobID int64, req *dto.UpdateJobRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE jobs
		SET job_title = COALESCE($1, job_title),
		    company = COALESCE($2, company),
		    job_description = COALESCE($3, job_description),
		    location = COALESCE($4, location),
		    employment_type = COALESCE($5, employment_type),
		    application_deadline = COALESCE($6::date, application_deadline)
		WHERE job_id = $7`,
		req.JobTitle, req.Company, req.JobDescription,
		req.Location, req.EmploymentType, req.ApplicationDeadline, jobID)

	if err != nil {
		return fmt.Errorf("error updating job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Delete removes a posting and its applications
func (r *JobRepository) Delete(ctx context.Context, jobID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Apply inserts a job application. The (job, student) uniqueness is enforced
// by a conflict-ignored insert; an existing application surfaces as a
// conflict without raising a database error.
func (r *JobRepository) Apply(ctx context.Context, jobID, studentID int64) (*models.JobApplication, error) {
	query := `
		INSERT INTO job_applications (job_id, student_id)
		VALUES ($1, $2)
		ON CONFLICT (job_id, student_id) DO NOTHING
		RETURNING application_id, job_id, student_id, status, applied_at
	`

	var app models.JobApplication
	err := r.db.QueryRow(ctx, query, jobID, studentID).Scan(
		&app.ApplicationID,
		&app.JobID,
		&app.StudentID,
		&app.Status,
		&app.AppliedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("error creating job application: %w", err)
	}

	return &app, nil
}

// ListApplicationsForStudent retrieves the student's applications joined
// with their job postings, newest first
func (r *JobRepository) ListApplicationsForStudent(ctx context.Context, studentID int64) ([]dto.StudentApplicationView, error) {
	query := `
		SELECT ja.application_id, j.job_id, j.job_title, j.company, j.location,
		       ja.status, ja.applied_at
		FROM job_applications ja
		JOIN jobs j ON ja.job_id = j.job_id
		WHERE ja.student_id = $1
		ORDER BY ja.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student applications: %w", err)
	}
	defer rows.Close()

	var apps []dto.StudentApplicationView
	for rows.Next() {
		var a dto.StudentApplicationView
		if err := rows.Scan(
			&a.ApplicationID,
			&a.JobID,
			&a.JobTitle,
			&a.Company,
			&a.Location,
			&a.Status,
			&a.AppliedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// ListApplicantsForJob retrieves the applicants of one posting, newest first
func (r *JobRepository) ListApplicantsForJob(ctx context.Context, jobID int64) ([]dto.JobApplicantView, error) {
	query := `
		SELECT ja.application_id, u.user_id AS student_id,
		       u.name AS student_name, u.email AS student_email,
		       ja.status, ja.applied_at
		FROM job_applications ja
		JOIN users u ON ja.student_id = u.user_id
		WHERE ja.job_id = $1
		ORDER BY ja.applied_at DESC
	`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, fmt.Errorf("error querying job applicants: %w", err)
	}
	defer rows.Close()

	var apps []dto.JobApplicantView
	for rows.Next() {
		var a dto.JobApplicantView
		if err := rows.Scan(
			&a.ApplicationID,
			&a.StudentID,
			&a.StudentName,
			&a.StudentEmail,
			&a.Status,
			&a.AppliedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// UpdateApplicationStatus sets the status of one application of one posting
func (r *JobRepository) UpdateApplicationStatus(ctx context.Context, applicationID, jobID int64, status models.ApplicationStatus) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE job_applications SET status = $1
		WHERE application_id = $2 AND job_id = $3`,
		status, applicationID, jobID)

	if err != nil {
		return fmt.Errorf("error updating application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}

	return nil
}
