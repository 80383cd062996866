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

// EventRepository handles database operations for events and registrations
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

// ListAll retrieves every event joined with its organizer, ascending by date
func (r *EventRepository) ListAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT e.event_id, e.organizer_id, e.event_name, e.description, e.date, e.location,
		       u.name AS organizer_name, u.email AS organizer_email
		FROM events e
		JOIN users u ON e.organizer_id = u.user_id
		ORDER BY e.date ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.EventID,
			&e.OrganizerID,
			&e.EventName,
			&e.Description,
			&e.Date,
			&e.Location,
			&e.OrganizerName,
			&e.OrganizerEmail,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// ListRegisteredForStudent retrieves the events a student registered for
func (r *EventRepository) ListRegisteredForStudent(ctx context.Context, studentID int64) ([]models.Event, error) {
	query := `
		SELECT e.event_id, e.organizer_id, e.event_name, e.description, e.date, e.location,
		       u.name AS organizer_name
		FROM events e
		JOIN student_events se ON e.event_id = se.event_id
		JOIN users u ON e.organizer_id = u.user_id
		WHERE se.student_id = $1
		ORDER BY e.date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.EventID,
			&e.OrganizerID,
			&e.EventName,
			&e.Description,
			&e.Date,
			&e.Location,
			&e.OrganizerName,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Exists checks whether an event exists
func (r *EventRepository) Exists(ctx context.Context, eventID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM events WHERE event_id = $1)`,
		eventID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking event existence: %w", err)
	}

	return exists, nil
}

// Register inserts a (student, event) registration. Uniqueness is enforced
// by a conflict-ignored insert on the composite key.
func (r *EventRepository) Register(ctx context.Context, studentID, eventID int64) error {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO student_events (student_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (student_id, event_id) DO NOTHING`,
		studentID, eventID)

	if err != nil {
		return fmt.Errorf("error registering for event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyRegistered
	}

	return nil
}

// Unregister removes a registration
func (r *EventRepository) Unregister(ctx context.Context, studentID, eventID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM student_events WHERE student_id = $1 AND event_id = $2`,
		studentID, eventID)

	if err != nil {
		return fmt.Errorf("error unregistering from event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotRegistered
	}

	return nil
}

// Create inserts an event organized by an alumni
func (r *EventRepository) Create(ctx context.Context, organizerID int64, req *dto.CreateEventRequest) (*models.Event, error) {
	query := `
		INSERT INTO events (event_name, description, date, location, organizer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING event_id, event_name, description, date, location, created_at
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query,
		req.EventName, req.Description, req.Date, req.Location, organizerID).Scan(
		&event.EventID,
		&event.EventName,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	event.OrganizerID = organizerID

	return &event, nil
}

// ListByOrganizer retrieves the alumni's own events, newest first
func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID int64) ([]models.Event, error) {
	query := `
		SELECT event_id, organizer_id, event_name, description, date, location, created_at
		FROM events
		WHERE organizer_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("error querying organizer events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(
			&e.EventID,
			&e.OrganizerID,
			&e.EventName,
			&e.Description,
			&e.Date,
			&e.Location,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// IsOwnedBy checks whether an event exists and is organized by the alumni
func (r *EventRepository) IsOwnedBy(ctx context.Context, eventID, organizerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM events WHERE event_id = $1 AND organizer_id = $2)`,
		eventID, organizerID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking event ownership: %w", err)
	}

	return exists, nil
}

// Update applies a partial update to an owned event
func (r *EventRepository) Update(ctx context.Context, eventID int64, req *dto.UpdateEventRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events
		SET event_name = COALESCE($1, event_name),
		    description = COALESCE($2, description),
		    date = COALESCE($3::timestamptz, date),
		    location = COALESCE($4, location)
		WHERE event_id = $5`,
		req.EventName, req.Description, req.Date, req.Location, eventID)

	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event and its registrations
func (r *EventRepository) Delete(ctx context.Context, eventID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// GetByID retrieves one event
func (r *EventRepository) GetByID(ctx context.Context, eventID int64) (*models.Event, error) {
	query := `
		SELECT event_id, organizer_id, event_name, description, date, location, created_at
		FROM events
		WHERE event_id = $1
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&event.EventID,
		&event.OrganizerID,
		&event.EventName,
		&event.Description,
		&event.Date,
		&event.Location,
		&event.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return &event, nil
}
