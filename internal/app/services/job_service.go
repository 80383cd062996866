package services

import (
	"context"
	"time"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

// jobStore is the slice of the job repository the service consumes.
type jobStore interface {
	ListAll(ctx context.Context) ([]models.Job, error)
	Create(ctx context.Context, alumniID int64, req *dto.CreateJobRequest) (*models.Job, error)
	ListByAlumni(ctx context.Context, alumniID int64) ([]models.Job, error)
	IsOwnedBy(ctx context.Context, jobID, alumniID int64) (bool, error)
	Exists(ctx context.Context, jobID int64) (bool, error)
	Update(ctx context.Context, jobID int64, req *dto.UpdateJobRequest) error
	Delete(ctx context.Context, jobID int64) error
	Apply(ctx context.Context, jobID, studentID int64) (*models.JobApplication, error)
	ListApplicationsForStudent(ctx context.Context, studentID int64) ([]dto.StudentApplicationView, error)
	ListApplicantsForJob(ctx context.Context, jobID int64) ([]dto.JobApplicantView, error)
	UpdateApplicationStatus(ctx context.Context, applicationID, jobID int64, status models.ApplicationStatus) error
}

// JobService handles job postings and applications. Ownership of a posting
// is re-verified against the store on every mutating call; a posting that is
// not the caller's is indistinguishable from one that does not exist.
type JobService struct {
	jobs jobStore
}

// NewJobService creates a new job service
func NewJobService(jobs jobStore) *JobService {
	return &JobService{
		jobs: jobs,
	}
}

// ListJobs retrieves the public job listing, newest first
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// CreateJob posts a new job for the calling alumni
func (s *JobService) CreateJob(ctx context.Context, alumniID int64, req *dto.CreateJobRequest) (*models.Job, error) {
	if !validDateInput(req.ApplicationDeadline) {
		return nil, apperrors.NewBadRequestError("application_deadline must be a valid date (YYYY-MM-DD)")
	}
	return s.jobs.Create(ctx, alumniID, req)
}

// ListOwnJobs retrieves the caller's own postings, newest first
func (s *JobService) ListOwnJobs(ctx context.Context, alumniID int64) ([]models.Job, error) {
	jobs, err := s.jobs.ListByAlumni(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// UpdateJob applies a partial update to an owned posting
func (s *JobService) UpdateJob(ctx context.Context, alumniID, jobID int64, req *dto.UpdateJobRequest) error {
	if req.ApplicationDeadline != nil && !validDateInput(*req.ApplicationDeadline) {
		return apperrors.NewBadRequestError("application_deadline must be a valid date (YYYY-MM-DD)")
	}

	owned, err := s.jobs.IsOwnedBy(ctx, jobID, alumniID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrJobNotFound
	}

	return s.jobs.Update(ctx, jobID, req)
}

// DeleteJob removes an owned posting together with its applications
func (s *JobService) DeleteJob(ctx context.Context, alumniID, jobID int64) error {
	owned, err := s.jobs.IsOwnedBy(ctx, jobID, alumniID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrJobNotFound
	}

	return s.jobs.Delete(ctx, jobID)
}

// Apply records a student's application to an existing job. A second
// application to the same job surfaces as a conflict.
func (s *JobService) Apply(ctx context.Context, studentID, jobID int64) (*models.JobApplication, error) {
	exists, err := s.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrJobNotFound
	}

	return s.jobs.Apply(ctx, jobID, studentID)
}

// ListApplications retrieves the caller's applications with job details
func (s *JobService) ListApplications(ctx context.Context, studentID int64) ([]dto.StudentApplicationView, error) {
	apps, err := s.jobs.ListApplicationsForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []dto.StudentApplicationView{}
	}
	return apps, nil
}

// ListApplicants retrieves the applicants of an owned posting
func (s *JobService) ListApplicants(ctx context.Context, alumniID, jobID int64) ([]dto.JobApplicantView, error) {
	owned, err := s.jobs.IsOwnedBy(ctx, jobID, alumniID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, apperrors.ErrJobNotFound
	}

	apps, err := s.jobs.ListApplicantsForJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []dto.JobApplicantView{}
	}
	return apps, nil
}

// UpdateApplicationStatus sets the status of one application of an owned
// posting. The four-value enum is checked before any lookup.
func (s *JobService) UpdateApplicationStatus(ctx context.Context, alumniID, jobID, applicationID int64, status string) error {
	st := models.ApplicationStatus(status)
	if !st.Valid() {
		return apperrors.ErrInvalidApplicationStatus
	}

	owned, err := s.jobs.IsOwnedBy(ctx, jobID, alumniID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrJobNotFound
	}

	return s.jobs.UpdateApplicationStatus(ctx, applicationID, jobID, st)
}

// validDateInput accepts an ISO date or an RFC 3339 timestamp.
func validDateInput(s string) bool {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}
