package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/db"
	"github.com/alumnet/api/internal/pkg/apperrors"
)

// StudentRepository handles database operations for student profiles
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetProfile retrieves the joined users+students self profile
func (r *StudentRepository) GetProfile(ctx context.Context, userID int64) (*dto.StudentProfileResponse, error) {
	query := `
		SELECT u.user_id, u.name, u.email, u.phone,
		       s.enrollment_year, s.degree, s.department, s.expected_graduation
		FROM users u
		JOIN students s ON s.user_id = u.user_id
		WHERE u.user_id = $1
	`

	var profile dto.StudentProfileResponse
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Email,
		&profile.Phone,
		&profile.EnrollmentYear,
		&profile.Degree,
		&profile.Department,
		&profile.ExpectedGraduation,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving student profile: %w", err)
	}

	return &profile, nil
}

// UpdateProfile applies a partial update over the users and students tables
// in one transaction; nil fields keep their prior values.
func (r *StudentRepository) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateStudentProfileRequest) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE users
			SET name = COALESCE($1, name),
			    phone = COALESCE($2, phone)
			WHERE user_id = $3`,
			req.Name, req.Phone, userID)
		if err != nil {
			return fmt.Errorf("error updating user: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentProfileNotFound
		}

		tag, err = tx.Exec(ctx, `
			UPDATE students
			SET degree = COALESCE($1, degree),
			    department = COALESCE($2, department),
			    enrollment_year = COALESCE($3, enrollment_year),
			    expected_graduation = COALESCE($4, expected_graduation)
			WHERE user_id = $5`,
			req.Degree, req.Department, req.EnrollmentYear, req.ExpectedGraduation, userID)
		if err != nil {
			return fmt.Errorf("error updating student profile: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrStudentProfileNotFound
		}

		return nil
	})
}
