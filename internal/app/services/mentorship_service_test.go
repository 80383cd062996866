package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/cache"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

type fakeMentorStore struct {
	mentors map[int64]*models.Mentor

	listCalls int
	available []dto.AvailableMentor
}

func (f *fakeMentorStore) GetByAlumniID(_ context.Context, alumniID int64) (*models.Mentor, error) {
	return f.mentors[alumniID], nil
}

func (f *fakeMentorStore) GetAvailableByAlumniID(_ context.Context, alumniID int64) (*models.Mentor, error) {
	mentor := f.mentors[alumniID]
	if mentor == nil || !mentor.Availability {
		return nil, apperrors.ErrMentorNotFound
	}
	return mentor, nil
}

func (f *fakeMentorStore) Create(_ context.Context, alumniID int64, expertise string, availability *bool, maxMentees *int) (*models.Mentor, error) {
	mentor := &models.Mentor{AlumniID: alumniID, Expertise: expertise, Availability: true, MaxMentees: 5}
	if availability != nil {
		mentor.Availability = *availability
	}
	if maxMentees != nil {
		mentor.MaxMentees = *maxMentees
	}
	f.mentors[alumniID] = mentor
	return mentor, nil
}

func (f *fakeMentorStore) Update(_ context.Context, alumniID int64, expertise *string, availability *bool, maxMentees *int) (*models.Mentor, error) {
	mentor := f.mentors[alumniID]
	if expertise != nil {
		mentor.Expertise = *expertise
	}
	if availability != nil {
		mentor.Availability = *availability
	}
	if maxMentees != nil {
		mentor.MaxMentees = *maxMentees
	}
	return mentor, nil
}

func (f *fakeMentorStore) GetProfileWithUser(_ context.Context, alumniID int64) (*dto.MentorProfileResponse, error) {
	mentor := f.mentors[alumniID]
	if mentor == nil {
		return nil, apperrors.ErrMentorProfileNotFound
	}
	return &dto.MentorProfileResponse{AlumniID: alumniID, Expertise: mentor.Expertise}, nil
}

func (f *fakeMentorStore) ListAvailable(_ context.Context, _ uint64, _ int) ([]dto.AvailableMentor, int64, error) {
	f.listCalls++
	return f.available, int64(len(f.available)), nil
}

func (f *fakeMentorStore) GetPublicProfile(_ context.Context, mentorID int64) (*dto.MentorPublicProfile, error) {
	mentor := f.mentors[mentorID]
	if mentor == nil {
		return nil, apperrors.ErrMentorNotFound
	}
	return &dto.MentorPublicProfile{MentorID: mentorID, Expertise: mentor.Expertise}, nil
}

type fakeRequestStore struct {
	existing map[[2]int64]bool
	created  []dto.MentorshipRequestCreated

	respondCalls int
	maxMentees   int
	accepted     int
	respondErr   error
}

func (f *fakeRequestStore) Exists(_ context.Context, studentID, mentorID int64) (bool, error) {
	return f.existing[[2]int64{studentID, mentorID}], nil
}

func (f *fakeRequestStore) Create(_ context.Context, studentID, mentorID int64) (*dto.MentorshipRequestCreated, error) {
	receipt := dto.MentorshipRequestCreated{
		RequestID:   int64(len(f.created) + 1),
		Status:      string(models.RequestPending),
		RequestedAt: time.Now(),
	}
	f.created = append(f.created, receipt)
	f.existing[[2]int64{studentID, mentorID}] = true
	return &receipt, nil
}

// Respond mirrors the store contract: the accepted count and the capacity
// threshold are evaluated atomically inside the store, not by the caller.
func (f *fakeRequestStore) Respond(_ context.Context, _, _ int64, status models.RequestStatus) (bool, error) {
	f.respondCalls++
	if f.respondErr != nil {
		return false, f.respondErr
	}
	if status != models.RequestAccepted {
		return false, nil
	}
	f.accepted++
	return f.maxMentees > 0 && f.accepted >= f.maxMentees, nil
}

func (f *fakeRequestStore) ListForStudent(_ context.Context, _ int64) ([]dto.StudentRequestView, error) {
	return nil, nil
}

func (f *fakeRequestStore) ListForMentor(_ context.Context, _ int64) ([]dto.MentorRequestView, error) {
	return nil, nil
}

func newMentorshipFixture() (*MentorshipService, *fakeMentorStore, *fakeRequestStore, *cache.MemoryStore) {
	mentors := &fakeMentorStore{mentors: map[int64]*models.Mentor{}}
	requests := &fakeRequestStore{existing: map[[2]int64]bool{}}
	store := cache.NewMemoryStore()
	return NewMentorshipService(mentors, requests, store), mentors, requests, store
}

func TestSetupMentorProfileCreate(t *testing.T) {
	ctx := context.Background()
	service, _, _, store := newMentorshipFixture()

	store.Set(ctx, "mentors:available:page=1:limit=10", "stale", 0)

	mentor, created, err := service.SetupMentorProfile(ctx, 10, &dto.SetupMentorRequest{Expertise: "Go"})
	if err != nil {
		t.Fatalf("SetupMentorProfile() error: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if !mentor.Availability || mentor.MaxMentees != 5 {
		t.Errorf("defaults not applied: availability=%v maxMentees=%d", mentor.Availability, mentor.MaxMentees)
	}
	// Creation invalidates nothing: no listing could have included this mentor.
	if _, ok := store.Get(ctx, "mentors:available:page=1:limit=10"); !ok {
		t.Error("creation should not invalidate the mentor listing")
	}
}

func TestSetupMentorProfileUpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	service, mentors, _, store := newMentorshipFixture()
	mentors.mentors[10] = &models.Mentor{AlumniID: 10, Expertise: "Go", Availability: true, MaxMentees: 5}

	store.Set(ctx, "mentors:available:page=1:limit=10", "stale", 0)
	store.Set(ctx, "alumni:all:search=-", "stale", 0)
	store.Set(ctx, mentorPublicKey(10), "stale", 0)

	availability := false
	_, created, err := service.SetupMentorProfile(ctx, 10, &dto.SetupMentorRequest{Expertise: "Rust", Availability: &availability})
	if err != nil {
		t.Fatalf("SetupMentorProfile() error: %v", err)
	}
	if created {
		t.Error("created = true, want false for existing profile")
	}
	if mentors.mentors[10].Expertise != "Rust" || mentors.mentors[10].Availability {
		t.Error("update not applied to store")
	}
	if store.Len() != 0 {
		t.Errorf("stale entries survived update, Len() = %d", store.Len())
	}
}

func TestListAvailableMentorsCaching(t *testing.T) {
	ctx := context.Background()
	service, mentors, _, _ := newMentorshipFixture()
	mentors.available = []dto.AvailableMentor{{MentorID: 10, MentorName: "Ada", Availability: true, MaxMentees: 5}}

	first, err := service.ListAvailableMentors(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListAvailableMentors() error: %v", err)
	}
	second, err := service.ListAvailableMentors(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListAvailableMentors() second call error: %v", err)
	}

	if mentors.listCalls != 1 {
		t.Errorf("store queried %d times, want 1 (second call should hit cache)", mentors.listCalls)
	}
	if string(first) != string(second) {
		t.Error("cache hit must return the serialized payload verbatim")
	}
}

func TestRequestMentorship(t *testing.T) {
	ctx := context.Background()
	service, mentors, _, _ := newMentorshipFixture()
	mentors.mentors[10] = &models.Mentor{AlumniID: 10, Availability: true, MaxMentees: 5}
	mentors.mentors[11] = &models.Mentor{AlumniID: 11, Availability: false, MaxMentees: 5}

	t.Run("unknown mentor", func(t *testing.T) {
		_, err := service.RequestMentorship(ctx, 1, 99)
		if !errors.Is(err, apperrors.ErrMentorNotFound) {
			t.Errorf("error = %v, want ErrMentorNotFound", err)
		}
	})

	t.Run("unavailable mentor", func(t *testing.T) {
		_, err := service.RequestMentorship(ctx, 1, 11)
		if !errors.Is(err, apperrors.ErrMentorNotFound) {
			t.Errorf("error = %v, want ErrMentorNotFound", err)
		}
	})

	t.Run("success then duplicate", func(t *testing.T) {
		receipt, err := service.RequestMentorship(ctx, 1, 10)
		if err != nil {
			t.Fatalf("RequestMentorship() error: %v", err)
		}
		if receipt.Status != string(models.RequestPending) {
			t.Errorf("status = %q, want Pending", receipt.Status)
		}

		_, err = service.RequestMentorship(ctx, 1, 10)
		if !errors.Is(err, apperrors.ErrRequestAlreadyExists) {
			t.Errorf("error = %v, want ErrRequestAlreadyExists", err)
		}
	})
}

func TestRespondToRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid status rejected before lookups", func(t *testing.T) {
		service, _, requests, _ := newMentorshipFixture()
		_, err := service.RespondToRequest(ctx, 10, 1, "Pending")
		if !errors.Is(err, apperrors.ErrInvalidRequestStatus) {
			t.Errorf("error = %v, want ErrInvalidRequestStatus", err)
		}
		if requests.respondCalls != 0 {
			t.Error("store must not be touched for an invalid status")
		}
	})

	t.Run("no mentor profile", func(t *testing.T) {
		service, _, _, _ := newMentorshipFixture()
		_, err := service.RespondToRequest(ctx, 10, 1, "Accepted")
		if !errors.Is(err, apperrors.ErrMentorProfileNotFound) {
			t.Errorf("error = %v, want ErrMentorProfileNotFound", err)
		}
	})

	t.Run("accept invalidates mentor caches", func(t *testing.T) {
		service, mentors, requests, store := newMentorshipFixture()
		mentors.mentors[10] = &models.Mentor{AlumniID: 10, Availability: true, MaxMentees: 1}
		requests.maxMentees = 1

		store.Set(ctx, "mentors:available:page=1:limit=10", "stale", 0)
		store.Set(ctx, mentorPublicKey(10), "stale", 0)
		store.Set(ctx, "alumni:all:search=-", "kept", 0)

		disabled, err := service.RespondToRequest(ctx, 10, 1, "Accepted")
		if err != nil {
			t.Fatalf("RespondToRequest() error: %v", err)
		}
		if !disabled {
			t.Error("disabled = false, want true when capacity is reached")
		}
		if _, ok := store.Get(ctx, "mentors:available:page=1:limit=10"); ok {
			t.Error("mentor listing survived response")
		}
		if _, ok := store.Get(ctx, mentorPublicKey(10)); ok {
			t.Error("mentor public entry survived response")
		}
		if _, ok := store.Get(ctx, "alumni:all:search=-"); !ok {
			t.Error("alumni directory must not be invalidated by a response")
		}
	})

	t.Run("store failure propagates without invalidation", func(t *testing.T) {
		service, mentors, requests, store := newMentorshipFixture()
		mentors.mentors[10] = &models.Mentor{AlumniID: 10, Availability: true, MaxMentees: 5}
		requests.respondErr = apperrors.ErrRequestNotFound

		store.Set(ctx, mentorPublicKey(10), "kept", 0)

		_, err := service.RespondToRequest(ctx, 10, 404, "Rejected")
		if !errors.Is(err, apperrors.ErrRequestNotFound) {
			t.Errorf("error = %v, want ErrRequestNotFound", err)
		}
		if _, ok := store.Get(ctx, mentorPublicKey(10)); !ok {
			t.Error("cache must stay intact when the response fails")
		}
	})
}

// Two accepts against a two-slot mentor: the first leaves availability on,
// the second reaches capacity and disables it. The threshold decision comes
// from the request store's atomic respond, never from a capacity value the
// service read beforehand.
func TestRespondToRequestCapacitySequence(t *testing.T) {
	ctx := context.Background()
	service, mentors, requests, _ := newMentorshipFixture()
	mentors.mentors[10] = &models.Mentor{AlumniID: 10, Availability: true, MaxMentees: 2}
	requests.maxMentees = 2

	disabled, err := service.RespondToRequest(ctx, 10, 1, "Accepted")
	if err != nil {
		t.Fatalf("first RespondToRequest() error: %v", err)
	}
	if disabled {
		t.Error("first accept of two slots must not disable availability")
	}

	disabled, err = service.RespondToRequest(ctx, 10, 2, "Rejected")
	if err != nil {
		t.Fatalf("RespondToRequest() rejection error: %v", err)
	}
	if disabled {
		t.Error("a rejection must never disable availability")
	}

	disabled, err = service.RespondToRequest(ctx, 10, 3, "Accepted")
	if err != nil {
		t.Fatalf("second RespondToRequest() error: %v", err)
	}
	if !disabled {
		t.Error("second accept must reach capacity and disable availability")
	}
}

func TestListRequestsForMentorRequiresProfile(t *testing.T) {
	ctx := context.Background()
	service, mentors, _, _ := newMentorshipFixture()

	if _, err := service.ListRequestsForMentor(ctx, 10); !errors.Is(err, apperrors.ErrMentorProfileNotFound) {
		t.Errorf("error = %v, want ErrMentorProfileNotFound", err)
	}

	mentors.mentors[10] = &models.Mentor{AlumniID: 10}
	requests, err := service.ListRequestsForMentor(ctx, 10)
	if err != nil {
		t.Fatalf("ListRequestsForMentor() error: %v", err)
	}
	if requests == nil {
		t.Error("empty result must be a non-nil slice")
	}
}

func TestGetPublicProfileCaching(t *testing.T) {
	ctx := context.Background()
	service, mentors, _, store := newMentorshipFixture()

	// Misses for unknown mentors are not cached.
	if _, err := service.GetPublicProfile(ctx, 99); !errors.Is(err, apperrors.ErrMentorNotFound) {
		t.Fatalf("error = %v, want ErrMentorNotFound", err)
	}
	if store.Len() != 0 {
		t.Error("a lookup failure must not be cached")
	}

	mentors.mentors[10] = &models.Mentor{AlumniID: 10, Expertise: "Go"}
	if _, err := service.GetPublicProfile(ctx, 10); err != nil {
		t.Fatalf("GetPublicProfile() error: %v", err)
	}
	if _, ok := store.Get(ctx, mentorPublicKey(10)); !ok {
		t.Error("successful lookup must populate the cache")
	}
}
