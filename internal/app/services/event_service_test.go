package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

type fakeEventStore struct {
	events     map[int64]int64 // eventID -> organizerID
	nextID     int64
	registered map[[2]int64]bool
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{events: map[int64]int64{}, registered: map[[2]int64]bool{}, nextID: 1}
}

func (f *fakeEventStore) ListAll(_ context.Context) ([]models.Event, error) { return nil, nil }

func (f *fakeEventStore) ListRegisteredForStudent(_ context.Context, _ int64) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventStore) Exists(_ context.Context, eventID int64) (bool, error) {
	_, ok := f.events[eventID]
	return ok, nil
}

func (f *fakeEventStore) Register(_ context.Context, studentID, eventID int64) error {
	key := [2]int64{studentID, eventID}
	if f.registered[key] {
		return apperrors.ErrAlreadyRegistered
	}
	f.registered[key] = true
	return nil
}

func (f *fakeEventStore) Unregister(_ context.Context, studentID, eventID int64) error {
	key := [2]int64{studentID, eventID}
	if !f.registered[key] {
		return apperrors.ErrNotRegistered
	}
	delete(f.registered, key)
	return nil
}

func (f *fakeEventStore) Create(_ context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	id := f.nextID
	f.nextID++
	f.events[id] = organizerID
	return &models.Event{EventID: id, OrganizerID: organizerID, EventName: req.EventName}, nil
}

func (f *fakeEventStore) ListByOrganizer(_ context.Context, _ int64) ([]models.Event, error) {
	return nil, nil
}

func (f *fakeEventStore) IsOwnedBy(_ context.Context, eventID, organizerID int64) (bool, error) {
	return f.events[eventID] == organizerID, nil
}

func (f *fakeEventStore) Update(_ context.Context, _ int64, _ *dto.UpdateEventRequest) error {
	return nil
}

func (f *fakeEventStore) Delete(_ context.Context, eventID int64) error {
	delete(f.events, eventID)
	return nil
}

func TestCreateEventValidatesDate(t *testing.T) {
	ctx := context.Background()
	service := NewEventService(newFakeEventStore())

	_, err := service.CreateEvent(ctx, 10, &dto.CreateEventRequest{
		EventName: "Meetup",
		Date:      "soon",
		Location:  "Campus",
	})
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("error = %v, want ErrBadRequest", err)
	}

	_, err = service.CreateEvent(ctx, 10, &dto.CreateEventRequest{
		EventName: "Meetup",
		Date:      "2026-10-01T18:00:00Z",
		Location:  "Campus",
	})
	if err != nil {
		t.Errorf("CreateEvent() error: %v", err)
	}
}

func TestRegisterLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeEventStore()
	service := NewEventService(store)

	if err := service.Register(ctx, 1, 99); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound for missing event", err)
	}

	event, err := service.CreateEvent(ctx, 10, &dto.CreateEventRequest{EventName: "Meetup", Date: "2026-10-01", Location: "Campus"})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	if err := service.Register(ctx, 1, event.EventID); err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if err := service.Register(ctx, 1, event.EventID); !errors.Is(err, apperrors.ErrAlreadyRegistered) {
		t.Errorf("error = %v, want ErrAlreadyRegistered", err)
	}

	if err := service.Unregister(ctx, 1, event.EventID); err != nil {
		t.Fatalf("Unregister() error: %v", err)
	}
	if err := service.Unregister(ctx, 1, event.EventID); !errors.Is(err, apperrors.ErrNotRegistered) {
		t.Errorf("error = %v, want ErrNotRegistered", err)
	}
}

func TestUpdateEventOwnership(t *testing.T) {
	ctx := context.Background()
	store := newFakeEventStore()
	service := NewEventService(store)

	event, err := service.CreateEvent(ctx, 10, &dto.CreateEventRequest{EventName: "Meetup", Date: "2026-10-01", Location: "Campus"})
	if err != nil {
		t.Fatalf("CreateEvent() error: %v", err)
	}

	name := "Reunion"
	if err := service.UpdateEvent(ctx, 11, event.EventID, &dto.UpdateEventRequest{EventName: &name}); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound for foreign event", err)
	}
	if err := service.DeleteEvent(ctx, 11, event.EventID); !errors.Is(err, apperrors.ErrEventNotFound) {
		t.Errorf("error = %v, want ErrEventNotFound for foreign event", err)
	}

	badDate := "someday"
	if err := service.UpdateEvent(ctx, 10, event.EventID, &dto.UpdateEventRequest{Date: &badDate}); !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("error = %v, want ErrBadRequest for invalid date", err)
	}

	if err := service.UpdateEvent(ctx, 10, event.EventID, &dto.UpdateEventRequest{EventName: &name}); err != nil {
		t.Errorf("UpdateEvent() by owner error: %v", err)
	}
	if err := service.DeleteEvent(ctx, 10, event.EventID); err != nil {
		t.Errorf("DeleteEvent() by owner error: %v", err)
	}
}

func TestListEventsNeverNil(t *testing.T) {
	ctx := context.Background()
	service := NewEventService(newFakeEventStore())

	events, err := service.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if events == nil {
		t.Error("empty result must be a non-nil slice")
	}

	registered, err := service.ListRegistered(ctx, 1)
	if err != nil {
		t.Fatalf("ListRegistered() error: %v", err)
	}
	if registered == nil {
		t.Error("empty result must be a non-nil slice")
	}
}
