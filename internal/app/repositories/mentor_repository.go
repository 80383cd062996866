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

// MentorRepository handles database operations for mentor profiles
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{
		db: db,
	}
}

// GetByAlumniID retrieves a mentor row, or nil when the alumni never opted
// into mentoring
func (r *MentorRepository) GetByAlumniID(ctx context.Context, alumniID int64) (*models.Mentor, error) {
	query := `
		SELECT alumni_id, expertise, availability, max_mentees
		FROM mentors
		WHERE alumni_id = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, alumniID).Scan(
		&mentor.AlumniID,
		&mentor.Expertise,
		&mentor.Availability,
		&mentor.MaxMentees,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// GetAvailableByAlumniID retrieves a mentor only if currently available
func (r *MentorRepository) GetAvailableByAlumniID(ctx context.Context, alumniID int64) (*models.Mentor, error) {
	query := `
		SELECT alumni_id, expertise, availability, max_mentees
		FROM mentors
		WHERE alumni_id = $1 AND availability = TRUE
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, alumniID).Scan(
		&mentor.AlumniID,
		&mentor.Expertise,
		&mentor.Availability,
		&mentor.MaxMentees,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}

	return &mentor, nil
}

// Create inserts a mentor row. Unspecified availability defaults to TRUE and
// unspecified max mentees to 5.
func (r *MentorRepository) Create(ctx context.Context, alumniID int64, expertise string, availability *bool, maxMentees *int) (*models.Mentor, error) {
	query := `
		INSERT INTO mentors (alumni_id, expertise, availability, max_mentees)
		VALUES ($1, $2, COALESCE($3, TRUE), COALESCE($4, 5))
		RETURNING alumni_id, expertise, availability, max_mentees
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, alumniID, expertise, availability, maxMentees).Scan(
		&mentor.AlumniID,
		&mentor.Expertise,
		&mentor.Availability,
		&mentor.MaxMentees,
	)

	if err != nil {
		return nil, fmt.Errorf("error creating mentor profile: %w", err)
	}

	return &mentor, nil
}

// Update applies the supplied fields; nil fields keep their prior values
func (r *MentorRepository) Update(ctx context.Context, alumniID int64, expertise *string, availability *bool, maxMentees *int) (*models.Mentor, error) {
	query := `
		UPDATE mentors
		SET expertise = COALESCE($1, expertise),
		    availability = COALESCE($2, availability),
		    max_mentees = COALESCE($3, max_mentees)
		WHERE alumni_id = $4
		RETURNING alumni_id, expertise, availability, max_mentees
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, expertise, availability, maxMentees, alumniID).Scan(
		&mentor.AlumniID,
		&mentor.Expertise,
		&mentor.Availability,
		&mentor.MaxMentees,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorProfileNotFound
		}
		return nil, fmt.Errorf("error updating mentor profile: %w", err)
	}

	return &mentor, nil
}

// GetProfileWithUser retrieves the mentor's own profile joined with the user
// row
func (r *MentorRepository) GetProfileWithUser(ctx context.Context, alumniID int64) (*dto.MentorProfileResponse, error) {
	query := `
		SELECT m.alumni_id, m.expertise, m.availability, m.max_mentees,
		       u.name, u.email, u.phone
		FROM mentors m
		JOIN users u ON m.alumni_id = u.user_id
		WHERE m.alumni_id = $1
	`

	var profile dto.MentorProfileResponse
	err := r.db.QueryRow(ctx, query, alumniID).Scan(
		&profile.AlumniID,
		&profile.Expertise,
		&profile.Availability,
		&profile.MaxMentees,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor profile: %w", err)
	}

	return &profile, nil
}

// ListAvailable retrieves one page of available mentors ordered by department
// then name, plus the total count of available mentors.
func (r *MentorRepository) ListAvailable(ctx context.Context, offset uint64, limit int) ([]dto.AvailableMentor, int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM mentors m WHERE m.availability = TRUE`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting available mentors: %w", err)
	}

	query := `
		SELECT m.alumni_id AS mentor_id,
		       u.name AS mentor_name,
		       u.email AS mentor_email,
		       a.degree,
		       a.department,
		       m.expertise,
		       m.availability,
		       m.max_mentees
		FROM mentors m
		JOIN users u ON m.alumni_id = u.user_id
		JOIN alumni a ON a.user_id = u.user_id
		WHERE m.availability = TRUE
		ORDER BY a.department, u.name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying available mentors: %w", err)
	}
	defer rows.Close()

	var mentors []dto.AvailableMentor
	for rows.Next() {
		var m dto.AvailableMentor
		if err := rows.Scan(
			&m.MentorID,
			&m.MentorName,
			&m.MentorEmail,
			&m.Degree,
			&m.Department,
			&m.Expertise,
			&m.Availability,
			&m.MaxMentees,
		); err != nil {
			return nil, 0, err
		}
		mentors = append(mentors, m)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return mentors, total, nil
}

// GetPublicProfile retrieves the public view of one mentor
func (r *MentorRepository) GetPublicProfile(ctx context.Context, mentorID int64) (*dto.MentorPublicProfile, error) {
	query := `
		SELECT m.alumni_id AS mentor_id,
		       u.name, u.email,
		       a.degree, a.department,
		       m.expertise, m.availability,
		       a.current_position, a.company, a.location
		FROM mentors m
		JOIN alumni a ON a.user_id = m.alumni_id
		JOIN users u ON u.user_id = m.alumni_id
		WHERE m.alumni_id = $1
	`

	var profile dto.MentorPublicProfile
	err := r.db.QueryRow(ctx, query, mentorID).Scan(
		&profile.MentorID,
		&profile.Name,
		&profile.Email,
		&profile.Degree,
		&profile.Department,
		&profile.Expertise,
		&profile.Availability,
		&profile.CurrentPosition,
		&profile.Company,
		&profile.Location,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving mentor public profile: %w", err)
	}

	return &profile, nil
}
