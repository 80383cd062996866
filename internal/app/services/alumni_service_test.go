package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/cache"
)

type fakeAlumniStore struct {
	profile *dto.AlumniProfileResponse
	entries []dto.AlumniDirectoryEntry

	directoryCalls int
	optionsCalls   int
	statsCalls     int
}

func (f *fakeAlumniStore) GetProfile(_ context.Context, _ int64) (*dto.AlumniProfileResponse, error) {
	return f.profile, nil
}

func (f *fakeAlumniStore) UpdateProfile(_ context.Context, _ int64, req *dto.UpdateAlumniProfileRequest) error {
	if req.Company != nil {
		f.profile.Company = *req.Company
	}
	if req.Name != nil {
		f.profile.Name = *req.Name
	}
	return nil
}

func (f *fakeAlumniStore) GetDirectory(_ context.Context, _ dto.AlumniDirectoryFilter, _ uint64, _ int) ([]dto.AlumniDirectoryEntry, int64, error) {
	f.directoryCalls++
	return f.entries, int64(len(f.entries)), nil
}

func (f *fakeAlumniStore) GetFilterOptions(_ context.Context) (*dto.FilterOptions, error) {
	f.optionsCalls++
	return &dto.FilterOptions{Companies: []string{"Acme"}}, nil
}

func (f *fakeAlumniStore) GetYearStats(_ context.Context) ([]dto.YearStat, error) {
	f.statsCalls++
	return []dto.YearStat{{GraduationYear: 2020, Count: 3}}, nil
}

func newAlumniFixture() (*AlumniService, *fakeAlumniStore, *cache.MemoryStore) {
	alumni := &fakeAlumniStore{
		profile: &dto.AlumniProfileResponse{UserID: 10, Name: "Ada", Company: "Acme"},
		entries: []dto.AlumniDirectoryEntry{{UserID: 10, Name: "Ada", Company: "Acme"}},
	}
	store := cache.NewMemoryStore()
	return NewAlumniService(alumni, store), alumni, store
}

func TestGetDirectoryCaching(t *testing.T) {
	ctx := context.Background()
	service, alumni, _ := newAlumniFixture()
	filter := dto.AlumniDirectoryFilter{Company: "Acme", Page: 1, Limit: 10}

	first, err := service.GetDirectory(ctx, filter)
	if err != nil {
		t.Fatalf("GetDirectory() error: %v", err)
	}
	second, err := service.GetDirectory(ctx, filter)
	if err != nil {
		t.Fatalf("GetDirectory() second call error: %v", err)
	}

	if alumni.directoryCalls != 1 {
		t.Errorf("store queried %d times, want 1", alumni.directoryCalls)
	}
	if string(first) != string(second) {
		t.Error("cache hit must return the serialized payload verbatim")
	}

	var envelope dto.Response
	if err := json.Unmarshal(first, &envelope); err != nil {
		t.Fatalf("payload is not a valid envelope: %v", err)
	}
	if envelope.Message != "Alumni retrieved successfully" {
		t.Errorf("message = %q", envelope.Message)
	}
	if envelope.Pagination == nil || envelope.Pagination.TotalRecords != 1 {
		t.Error("envelope missing pagination metadata")
	}
}

func TestGetDirectoryDistinctFiltersDistinctKeys(t *testing.T) {
	ctx := context.Background()
	service, alumni, _ := newAlumniFixture()

	if _, err := service.GetDirectory(ctx, dto.AlumniDirectoryFilter{Company: "Acme"}); err != nil {
		t.Fatalf("GetDirectory() error: %v", err)
	}
	if _, err := service.GetDirectory(ctx, dto.AlumniDirectoryFilter{Department: "CS"}); err != nil {
		t.Fatalf("GetDirectory() error: %v", err)
	}

	if alumni.directoryCalls != 2 {
		t.Errorf("store queried %d times, want 2 (distinct filters must not share a key)", alumni.directoryCalls)
	}
}

// A whitespace-only filter queries the same directory page as an absent one,
// so both must resolve to one cache entry and one store read.
func TestGetDirectoryBlankFiltersShareKey(t *testing.T) {
	ctx := context.Background()
	service, alumni, store := newAlumniFixture()

	if _, err := service.GetDirectory(ctx, dto.AlumniDirectoryFilter{}); err != nil {
		t.Fatalf("GetDirectory() error: %v", err)
	}
	if _, err := service.GetDirectory(ctx, dto.AlumniDirectoryFilter{Search: "   ", Company: "\t"}); err != nil {
		t.Fatalf("GetDirectory() with blank filters error: %v", err)
	}

	if alumni.directoryCalls != 1 {
		t.Errorf("store queried %d times, want 1 (blank filters must hit the absent-filter entry)", alumni.directoryCalls)
	}
	if store.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", store.Len())
	}
}

func TestUpdateProfileInvalidatesDirectory(t *testing.T) {
	ctx := context.Background()
	service, alumni, store := newAlumniFixture()
	filter := dto.AlumniDirectoryFilter{Page: 1, Limit: 10}

	if _, err := service.GetDirectory(ctx, filter); err != nil {
		t.Fatalf("GetDirectory() error: %v", err)
	}
	store.Set(ctx, "mentors:available:page=1:limit=10", "stale", 0)

	company := "Globex"
	profile, err := service.UpdateProfile(ctx, 10, &dto.UpdateAlumniProfileRequest{Company: &company})
	if err != nil {
		t.Fatalf("UpdateProfile() error: %v", err)
	}
	if profile.Company != "Globex" {
		t.Errorf("Company = %q, want Globex", profile.Company)
	}
	if store.Len() != 0 {
		t.Errorf("stale entries survived profile update, Len() = %d", store.Len())
	}

	if _, err := service.GetDirectory(ctx, filter); err != nil {
		t.Fatalf("GetDirectory() after update error: %v", err)
	}
	if alumni.directoryCalls != 2 {
		t.Errorf("directory not recomputed after invalidation, calls = %d", alumni.directoryCalls)
	}
}

func TestGetFilterOptionsAndYearStatsCaching(t *testing.T) {
	ctx := context.Background()
	service, alumni, _ := newAlumniFixture()

	for i := 0; i < 2; i++ {
		if _, err := service.GetFilterOptions(ctx); err != nil {
			t.Fatalf("GetFilterOptions() error: %v", err)
		}
		if _, err := service.GetYearStats(ctx); err != nil {
			t.Fatalf("GetYearStats() error: %v", err)
		}
	}

	if alumni.optionsCalls != 1 {
		t.Errorf("filter options computed %d times, want 1", alumni.optionsCalls)
	}
	if alumni.statsCalls != 1 {
		t.Errorf("year stats computed %d times, want 1", alumni.statsCalls)
	}
}
