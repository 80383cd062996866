package services

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/cache"
	"github.com/alumnet/api/internal/pkg/helpers"
)

// alumniStore is the slice of the alumni repository the service consumes.
type alumniStore interface {
	GetProfile(ctx context.Context, userID int64) (*dto.AlumniProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) error
	GetDirectory(ctx context.Context, filter dto.AlumniDirectoryFilter, offset uint64, limit int) ([]dto.AlumniDirectoryEntry, int64, error)
	GetFilterOptions(ctx context.Context) (*dto.FilterOptions, error)
	GetYearStats(ctx context.Context) ([]dto.YearStat, error)
}

// AlumniService handles the alumni self profile and the public directory.
// Directory, filter-option and year-stat reads are cache-backed; a cache hit
// returns the previously serialized envelope verbatim.
type AlumniService struct {
	alumni alumniStore
	cache  cache.Store
}

// NewAlumniService creates a new alumni service
func NewAlumniService(alumni alumniStore, store cache.Store) *AlumniService {
	return &AlumniService{
		alumni: alumni,
		cache:  store,
	}
}

// GetProfile retrieves the caller's joined users+alumni profile
func (s *AlumniService) GetProfile(ctx context.Context, userID int64) (*dto.AlumniProfileResponse, error) {
	return s.alumni.GetProfile(ctx, userID)
}

// UpdateProfile applies a partial profile update and returns the fresh
// profile. Directory and mentor listings may surface the updated fields, so
// both families are invalidated together with the alumni's single-entity
// entries.
func (s *AlumniService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateAlumniProfileRequest) (*dto.AlumniProfileResponse, error) {
	if err := s.alumni.UpdateProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	s.cache.DeleteByPrefix(ctx, cache.FamilyAlumni)
	s.cache.DeleteByPrefix(ctx, cache.FamilyMentors)
	s.cache.Delete(ctx, alumniProfileKey(userID), mentorPublicKey(userID))

	return s.alumni.GetProfile(ctx, userID)
}

// GetDirectory retrieves one serialized page of the filtered alumni
// directory, consulting the cache first. The key covers every filter value
// plus page and limit so distinct combinations never collide. Values are
// trimmed the same way the query predicate trims them, so a blank filter and
// an absent one share a key.
func (s *AlumniService) GetDirectory(ctx context.Context, filter dto.AlumniDirectoryFilter) (json.RawMessage, error) {
	page, limit := helpers.ClampPagination(filter.Page, filter.Limit)

	key := cache.Key("alumni:all",
		cache.Param{Name: "search", Value: strings.TrimSpace(filter.Search)},
		cache.Param{Name: "company", Value: strings.TrimSpace(filter.Company)},
		cache.Param{Name: "department", Value: strings.TrimSpace(filter.Department)},
		cache.Param{Name: "degree", Value: strings.TrimSpace(filter.Degree)},
		cache.Param{Name: "location", Value: strings.TrimSpace(filter.Location)},
		cache.Param{Name: "graduation_year", Value: strings.TrimSpace(filter.GraduationYear)},
		cache.Param{Name: "page", Value: strconv.Itoa(page)},
		cache.Param{Name: "limit", Value: strconv.Itoa(limit)},
	)
	if hit, ok := s.cache.Get(ctx, key); ok {
		return json.RawMessage(hit), nil
	}

	offset := uint64((page - 1) * limit)
	entries, total, err := s.alumni.GetDirectory(ctx, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []dto.AlumniDirectoryEntry{}
	}

	pagination := helpers.NewPagination(total, page, limit)
	envelope := dto.Response{
		Message:    "Alumni retrieved successfully",
		Data:       entries,
		Pagination: &pagination,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, string(payload), cache.ListingTTL)
	return payload, nil
}

// GetFilterOptions retrieves the serialized directory dropdown values,
// consulting the cache first
func (s *AlumniService) GetFilterOptions(ctx context.Context) (json.RawMessage, error) {
	key := cache.Key("alumni:filter-options")
	if hit, ok := s.cache.Get(ctx, key); ok {
		return json.RawMessage(hit), nil
	}

	options, err := s.alumni.GetFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(dto.NewDataResponse("Filter options retrieved successfully", options))
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, string(payload), cache.AggregateTTL)
	return payload, nil
}

// GetYearStats retrieves the serialized per-year alumni counts, consulting
// the cache first
func (s *AlumniService) GetYearStats(ctx context.Context) (json.RawMessage, error) {
	key := cache.Key("alumni:year-stats")
	if hit, ok := s.cache.Get(ctx, key); ok {
		return json.RawMessage(hit), nil
	}

	stats, err := s.alumni.GetYearStats(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []dto.YearStat{}
	}

	payload, err := json.Marshal(dto.NewDataResponse("Alumni year statistics retrieved successfully", stats))
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, string(payload), cache.AggregateTTL)
	return payload, nil
}
