package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/db"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/dberrors"
)

// UserRepository handles database operations for users and signup
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// EmailExists checks if a user with the email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// GetByEmail retrieves a user by email, including the password credential
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, name, email, phone, password, role, created_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT user_id, name, email, phone, role, created_at
		FROM users
		WHERE user_id = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// CreateStudent inserts a user row and its student profile atomically.
// Either both rows exist afterwards, or neither does.
func (r *UserRepository) CreateStudent(ctx context.Context, user *models.User, profile *models.StudentProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO students (user_id, enrollment_year, degree, department, expected_graduation)
			VALUES ($1, $2, $3, $4, $5)`,
			user.ID, profile.EnrollmentYear, profile.Degree, profile.Department, profile.ExpectedGraduation)
		if err != nil {
			return fmt.Errorf("error creating student profile: %w", err)
		}
		profile.UserID = user.ID

		return nil
	})
}

// CreateAlumni inserts a user row and its alumni profile atomically.
func (r *UserRepository) CreateAlumni(ctx context.Context, user *models.User, profile *models.AlumniProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO alumni (user_id, graduation_year, degree, department, current_position, company, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			user.ID, profile.GraduationYear, profile.Degree, profile.Department,
			profile.CurrentPosition, profile.Company, profile.Location)
		if err != nil {
			return fmt.Errorf("error creating alumni profile: %w", err)
		}
		profile.UserID = user.ID

		return nil
	})
}

func insertUser(ctx context.Context, tx pgx.Tx, user *models.User) error {
	err := tx.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING user_id, created_at`,
		user.Name, user.Email, user.Phone, user.Password, user.Role).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}
