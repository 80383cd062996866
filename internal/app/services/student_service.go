package services

import (
	"context"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/cache"
)

// studentStore is the slice of the student repository the service consumes.
type studentStore interface {
	GetProfile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) error
}

// StudentService handles student self-profile reads and updates
type StudentService struct {
	students studentStore
	cache    cache.Store
}

// NewStudentService creates a new student service
func NewStudentService(students studentStore, store cache.Store) *StudentService {
	return &StudentService{
		students: students,
		cache:    store,
	}
}

// GetProfile retrieves the caller's joined users+students profile
func (s *StudentService) GetProfile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error) {
	return s.students.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial profile update and returns the fresh
// profile. Listing caches embed user names, so the alumni family is
// invalidated along with the student's own profile entry.
func (s *StudentService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) (*dto.StudentProfileResponse, error) {
	if err := s.students.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	s.cache.DeleteByPrefix(ctx, cache.FamilyAlumni)
	s.cache.Delete(ctx, studentProfileKey(userID))

	return s.students.GetProfile(ctx, userID)
}
