package services

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/cache"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/helpers"
)

// mentorStore is the slice of the mentor repository the service consumes.
type mentorStore interface {
	GetByAlumniID(ctx context.Context, alumniID int64) (*models.Mentor, error)
	GetAvailableByAlumniID(ctx context.Context, alumniID int64) (*models.Mentor, error)
	Create(ctx context.Context, alumniID int64, expertise string, availability *bool, maxMentees *int) (*models.Mentor, error)
	Update(ctx context.Context, alumniID int64, expertise *string, availability *bool, maxMentees *int) (*models.Mentor, error)
	GetProfileWithUser(ctx context.Context, alumniID int64) (*dto.MentorProfileResponse, error)
	ListAvailable(ctx context.Context, offset uint64, limit int) ([]dto.AvailableMentor, int64, error)
	GetPublicProfile(ctx context.Context, mentorID int64) (*dto.MentorPublicProfile, error)
}

// requestStore is the slice of the mentorship request repository the service
// consumes.
type requestStore interface {
	Exists(ctx context.Context, studentID, mentorID int64) (bool, error)
	Create(ctx context.Context, studentID, mentorID int64) (*dto.MentorshipRequestCreated, error)
	Respond(ctx context.Context, requestID, mentorID int64, status models.RequestStatus) (bool, error)
	ListForStudent(ctx context.Context, studentID int64) ([]dto.StudentRequestView, error)
	ListForMentor(ctx context.Context, mentorID int64) ([]dto.MentorRequestView, error)
}

// MentorshipService orchestrates the mentor profile upsert, the request
// lifecycle (Pending -> Accepted/Rejected) and the capacity-driven
// auto-disable of availability.
type MentorshipService struct {
	mentors  mentorStore
	requests requestStore
	cache    cache.Store
}

// NewMentorshipService creates a new mentorship service
func NewMentorshipService(mentors mentorStore, requests requestStore, store cache.Store) *MentorshipService {
	return &MentorshipService{
		mentors:  mentors,
		requests: requests,
		cache:    store,
	}
}

// SetupMentorProfile creates or partially updates the caller's mentor row.
// Creation applies the defaults (availability=true, max_mentees=5) for
// unsupplied fields and invalidates nothing, since nothing could have cached
// a mentor that did not exist. An update keeps prior values for unsupplied
// fields and invalidates the mentor and alumni families plus the caller's
// single-entity entries.
func (s *MentorshipService) SetupMentorProfile(ctx context.Context, alumniID int64, req *dto.SetupMentorRequest) (mentor *models.Mentor, created bool, err error) {
	existing, err := s.mentors.GetByAlumniID(ctx, alumniID)
	if err != nil {
		return nil, false, err
	}

	if existing == nil {
		mentor, err = s.mentors.Create(ctx, alumniID, req.Expertise, req.Availability, req.MaxMentees)
		if err != nil {
			return nil, false, err
		}
		return mentor, true, nil
	}

	mentor, err = s.mentors.Update(ctx, alumniID, &req.Expertise, req.Availability, req.MaxMentees)
	if err != nil {
		return nil, false, err
	}

	s.cache.DeleteByPrefix(ctx, cache.FamilyMentors)
	s.cache.DeleteByPrefix(ctx, cache.FamilyAlumni)
	s.cache.Delete(ctx, mentorPublicKey(alumniID), alumniProfileKey(alumniID))

	return mentor, false, nil
}

// GetOwnProfile retrieves the caller's mentor row joined with the user row
func (s *MentorshipService) GetOwnProfile(ctx context.Context, alumniID int64) (*dto.MentorProfileResponse, error) {
	return s.mentors.GetProfileWithUser(ctx, alumniID)
}

// ListAvailableMentors retrieves one serialized page of available mentors,
// consulting the cache first
func (s *MentorshipService) ListAvailableMentors(ctx context.Context, page, limit int) (json.RawMessage, error) {
	page, limit = helpers.ClampPagination(page, limit)

	key := cache.Key("mentors:available",
		cache.Param{Name: "page", Value: strconv.Itoa(page)},
		cache.Param{Name: "limit", Value: strconv.Itoa(limit)},
	)
	if hit, ok := s.cache.Get(ctx, key); ok {
		return json.RawMessage(hit), nil
	}

	offset := uint64((page - 1) * limit)
	mentors, total, err := s.mentors.ListAvailable(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []dto.AvailableMentor{}
	}

	pagination := helpers.NewPagination(total, page, limit)
	envelope := dto.Response{
		Message:    "Available mentors retrieved successfully",
		Data:       mentors,
		Pagination: &pagination,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, string(payload), cache.ListingTTL)
	return payload, nil
}

// GetPublicProfile retrieves the serialized public view of one mentor,
// consulting the cache first. Misses for unknown mentors are not cached.
func (s *MentorshipService) GetPublicProfile(ctx context.Context, mentorID int64) (json.RawMessage, error) {
	key := mentorPublicKey(mentorID)
	if hit, ok := s.cache.Get(ctx, key); ok {
		return json.RawMessage(hit), nil
	}

	profile, err := s.mentors.GetPublicProfile(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dto.NewDataResponse("Mentor profile retrieved successfully", profile))
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, string(payload), cache.AggregateTTL)
	return payload, nil
}

// RequestMentorship creates a Pending request from a student to an available
// mentor. The target mentor must exist and be available, and no request may
// already exist for the (student, mentor) pair regardless of its status. No
// cache is invalidated: request creation does not change mentor availability.
func (s *MentorshipService) RequestMentorship(ctx context.Context, studentID, mentorID int64) (*dto.MentorshipRequestCreated, error) {
	if _, err := s.mentors.GetAvailableByAlumniID(ctx, mentorID); err != nil {
		return nil, err
	}

	exists, err := s.requests.Exists(ctx, studentID, mentorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrRequestAlreadyExists
	}

	return s.requests.Create(ctx, studentID, mentorID)
}

// RespondToRequest applies the mentor's Accepted/Rejected decision. The enum
// is checked before any lookup. Acceptance recomputes the accepted count and
// one-way auto-disables availability once the count reaches max_mentees; the
// store runs that sequence atomically, reading the capacity under lock so
// concurrent accepts cannot overshoot it. The mentor family and the mentor's
// public entry are invalidated regardless of whether availability changed.
func (s *MentorshipService) RespondToRequest(ctx context.Context, alumniID, requestID int64, status string) (disabled bool, err error) {
	st := models.RequestStatus(status)
	if !st.ValidResponse() {
		return false, apperrors.ErrInvalidRequestStatus
	}

	mentor, err := s.mentors.GetByAlumniID(ctx, alumniID)
	if err != nil {
		return false, err
	}
	if mentor == nil {
		return false, apperrors.ErrMentorProfileNotFound
	}

	disabled, err = s.requests.Respond(ctx, requestID, alumniID, st)
	if err != nil {
		return false, err
	}

	s.cache.DeleteByPrefix(ctx, cache.FamilyMentors)
	s.cache.Delete(ctx, mentorPublicKey(alumniID))

	return disabled, nil
}

// ListRequestsForStudent retrieves the caller's own requests, newest first
func (s *MentorshipService) ListRequestsForStudent(ctx context.Context, studentID int64) ([]dto.StudentRequestView, error) {
	requests, err := s.requests.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []dto.StudentRequestView{}
	}
	return requests, nil
}

// ListRequestsForMentor retrieves the requests targeting the caller's mentor
// profile, newest first. The caller must own a mentor row.
func (s *MentorshipService) ListRequestsForMentor(ctx context.Context, alumniID int64) ([]dto.MentorRequestView, error) {
	mentor, err := s.mentors.GetByAlumniID(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, apperrors.ErrMentorProfileNotFound
	}

	requests, err := s.requests.ListForMentor(ctx, alumniID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []dto.MentorRequestView{}
	}
	return requests, nil
}
