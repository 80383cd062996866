package services

import (
	"context"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

// eventStore is the slice of the event repository the service consumes.
type eventStore interface {
	ListAll(ctx context.Context) ([]models.Event, error)
	ListRegisteredForStudent(ctx context.Context, studentID int64) ([]models.Event, error)
	Exists(ctx context.Context, eventID int64) (bool, error)
	Register(ctx context.Context, studentID, eventID int64) error
	Unregister(ctx context.Context, studentID, eventID int64) error
	Create(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error)
	IsOwnedBy(ctx context.Context, eventID, organizerID int64) (bool, error)
	Update(ctx context.Context, eventID int64, req *dto.UpdateEventRequest) error
	Delete(ctx context.Context, eventID int64) error
}

// EventService handles events and student registrations. Ownership of an
// event is re-verified against the store on every mutating call.
type EventService struct {
	events eventStore
}

// NewEventService creates a new event service
func NewEventService(events eventStore) *EventService {
	return &EventService{
		events: events,
	}
}

// ListEvents retrieves the public event list, ascending by date
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Register records a student's registration for an existing event. A second
// registration for the same event surfaces as a conflict.
func (s *EventService) Register(ctx context.Context, studentID, eventID int64) error {
	exists, err := s.events.Exists(ctx, eventID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrEventNotFound
	}

	return s.events.Register(ctx, studentID, eventID)
}

// Unregister removes a student's registration
func (s *EventService) Unregister(ctx context.Context, studentID, eventID int64) error {
	return s.events.Unregister(ctx, studentID, eventID)
}

// ListRegistered retrieves the events the student registered for
func (s *EventService) ListRegistered(ctx context.Context, studentID int64) ([]models.Event, error) {
	events, err := s.events.ListRegisteredForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// CreateEvent creates an event organized by the calling alumni
func (s *EventService) CreateEvent(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	if !validDateInput(req.Date) {
		return nil, apperrors.NewBadRequestError("date must be a valid date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return s.events.Create(ctx, organizerID, req)
}

// ListOwnEvents retrieves the caller's own events, newest first
func (s *EventService) ListOwnEvents(ctx context.Context, organizerID int64) ([]models.Event, error) {
	events, err := s.events.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// UpdateEvent applies a partial update to an owned event
func (s *EventService) UpdateEvent(ctx context.Context, organizerID, eventID int64, req *dto.UpdateEventRequest) error {
	if req.Date != nil && !validDateInput(*req.Date) {
		return apperrors.NewBadRequestError("date must be a valid date (YYYY-MM-DD) or RFC 3339 timestamp")
	}

	owned, err := s.events.IsOwnedBy(ctx, eventID, organizerID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrEventNotFound
	}

	return s.events.Update(ctx, eventID, req)
}

// DeleteEvent removes an owned event together with its registrations
func (s *EventService) DeleteEvent(ctx context.Context, organizerID, eventID int64) error {
	owned, err := s.events.IsOwnedBy(ctx, eventID, organizerID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrEventNotFound
	}

	return s.events.Delete(ctx, eventID)
}
