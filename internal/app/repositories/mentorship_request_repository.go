package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/db"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/dberrors"
)

// MentorshipRequestRepository handles database operations for mentorship
// requests
type MentorshipRequestRepository struct {
	db *pgxpool.Pool
}

// NewMentorshipRequestRepository creates a new mentorship request repository
func NewMentorshipRequestRepository(db *pgxpool.Pool) *MentorshipRequestRepository {
	return &MentorshipRequestRepository{
		db: db,
	}
}

// Exists checks whether a request already exists for the (student, mentor)
// pair, regardless of its status
func (r *MentorshipRequestRepository) Exists(ctx context.Context, studentID, mentorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mentorship_requests WHERE student_id = $1 AND mentor_id = $2)`,
		studentID, mentorID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking mentorship request existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new Pending request and returns its identity and
// timestamp. A concurrent duplicate insert surfaces as a conflict.
func (r *MentorshipRequestRepository) Create(ctx context.Context, studentID, mentorID int64) (*dto.MentorshipRequestCreated, error) {
	query := `
		INSERT INTO mentorship_requests (student_id, mentor_id)
		VALUES ($1, $2)
		RETURNING request_id, status, requested_at
	`

	var created dto.MentorshipRequestCreated
	err := r.db.QueryRow(ctx, query, studentID, mentorID).Scan(
		&created.RequestID,
		&created.Status,
		&created.RequestedAt,
	)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrRequestAlreadyExists
		}
		return nil, fmt.Errorf("error creating mentorship request: %w", err)
	}

	return &created, nil
}

// BelongsToMentor checks whether the request targets the given mentor
func (r *MentorshipRequestRepository) BelongsToMentor(ctx context.Context, requestID, mentorID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM mentorship_requests WHERE request_id = $1 AND mentor_id = $2)`,
		requestID, mentorID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking mentorship request ownership: %w", err)
	}

	return exists, nil
}

// Respond updates the request's status and, on acceptance, auto-disables the
// mentor's availability once the accepted count reaches capacity. The mentor
// row is locked with FOR UPDATE before anything else, so concurrent accepts
// for the same mentor serialize: the second transaction blocks on the lock
// and its count sees the first accept after it commits. READ COMMITTED alone
// would let both count below threshold. The capacity value comes from the
// locked row, never from a read outside the transaction. Auto-disable is one
// way; rejection never re-enables availability.
func (r *MentorshipRequestRepository) Respond(ctx context.Context, requestID, mentorID int64, status models.RequestStatus) (disabled bool, err error) {
	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var maxMentees int
		err := tx.QueryRow(ctx, `
			SELECT max_mentees FROM mentors WHERE alumni_id = $1 FOR UPDATE`,
			mentorID).Scan(&maxMentees)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrMentorProfileNotFound
			}
			return fmt.Errorf("error locking mentor row: %w", err)
		}

		tag, err := tx.Exec(ctx, `
			UPDATE mentorship_requests SET status = $1 WHERE request_id = $2 AND mentor_id = $3`,
			status, requestID, mentorID)
		if err != nil {
			return fmt.Errorf("error updating mentorship request: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrRequestNotFound
		}

		if status != models.RequestAccepted {
			return nil
		}

		var acceptedCount int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM mentorship_requests
			WHERE mentor_id = $1 AND status = 'Accepted'`,
			mentorID).Scan(&acceptedCount)
		if err != nil {
			return fmt.Errorf("error counting accepted requests: %w", err)
		}

		if acceptedCount >= maxMentees {
			_, err = tx.Exec(ctx, `
				UPDATE mentors SET availability = FALSE WHERE alumni_id = $1`,
				mentorID)
			if err != nil {
				return fmt.Errorf("error disabling mentor availability: %w", err)
			}
			disabled = true
		}

		return nil
	})

	if err != nil {
		return false, err
	}
	return disabled, nil
}

// ListForStudent retrieves the student's requests joined with mentor
// identities, newest first
func (r *MentorshipRequestRepository) ListForStudent(ctx context.Context, studentID int64) ([]dto.StudentRequestView, error) {
	query := `
		SELECT r.request_id, r.status, r.requested_at,
		       m.alumni_id AS mentor_id, m.expertise,
		       u.name AS mentor_name, u.email AS mentor_email
		FROM mentorship_requests r
		JOIN mentors m ON r.mentor_id = m.alumni_id
		JOIN users u ON m.alumni_id = u.user_id
		WHERE r.student_id = $1
		ORDER BY r.requested_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying student requests: %w", err)
	}
	defer rows.Close()

	var requests []dto.StudentRequestView
	for rows.Next() {
		var v dto.StudentRequestView
		if err := rows.Scan(
			&v.RequestID,
			&v.Status,
			&v.RequestedAt,
			&v.MentorID,
			&v.Expertise,
			&v.MentorName,
			&v.MentorEmail,
		); err != nil {
			return nil, err
		}
		requests = append(requests, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// ListForMentor retrieves the requests targeting a mentor joined with
// student identities, newest first
func (r *MentorshipRequestRepository) ListForMentor(ctx context.Context, mentorID int64) ([]dto.MentorRequestView, error) {
	query := `
		SELECT r.request_id, r.status, r.requested_at,
		       u.user_id AS student_id,
		       u.name AS student_name,
		       u.email AS student_email,
		       u.phone AS student_phone
		FROM mentorship_requests r
		JOIN users u ON r.student_id = u.user_id
		WHERE r.mentor_id = $1
		ORDER BY r.requested_at DESC
	`

	rows, err := r.db.Query(ctx, query, mentorID)
	if err != nil {
		return nil, fmt.Errorf("error querying mentorship requests: %w", err)
	}
	defer rows.Close()

	var requests []dto.MentorRequestView
	for rows.Next() {
		var v dto.MentorRequestView
		if err := rows.Scan(
			&v.RequestID,
			&v.Status,
			&v.RequestedAt,
			&v.StudentID,
			&v.StudentName,
			&v.StudentEmail,
			&v.StudentPhone,
		); err != nil {
			return nil, err
		}
		requests = append(requests, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// GetByID retrieves one request row
func (r *MentorshipRequestRepository) GetByID(ctx context.Context, requestID int64) (*models.MentorshipRequest, error) {
	query := `
		SELECT request_id, student_id, mentor_id, status, requested_at
		FROM mentorship_requests
		WHERE request_id = $1
	`

	var request models.MentorshipRequest
	err := r.db.QueryRow(ctx, query, requestID).Scan(
		&request.RequestID,
		&request.StudentID,
		&request.MentorID,
		&request.Status,
		&request.RequestedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship request: %w", err)
	}

	return &request, nil
}
