package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/app/repositories"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/auth"
)

// CreateDefaultData seeds a demo student, a demo alumni with a mentor profile
// and a demo event when the users table is empty. Errors are collected and
// reported but must not block startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := repositories.NewRepositories(dbPool)

	var count int
	if err := dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Msg("Users already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")
	var finalErr error

	password, err := auth.HashPassword("changeme123")
	if err != nil {
		return err
	}

	student := &models.User{
		Name:     "Demo Student",
		Email:    "student@alumnet.app",
		Phone:    "+10000000001",
		Password: password,
		Role:     models.RoleStudent,
	}
	err = repos.UserRepository.CreateStudent(ctx, student, &models.StudentProfile{
		EnrollmentYear:     time.Now().Year() - 2,
		Degree:             "BSc",
		Department:         "Computer Science",
		ExpectedGraduation: time.Now().Year() + 2,
	})
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating demo student")
		finalErr = errors.Join(finalErr, err)
	}

	alumni := &models.User{
		Name:     "Demo Alumni",
		Email:    "alumni@alumnet.app",
		Phone:    "+10000000002",
		Password: password,
		Role:     models.RoleAlumni,
	}
	err = repos.UserRepository.CreateAlumni(ctx, alumni, &models.AlumniProfile{
		GraduationYear:  time.Now().Year() - 5,
		Degree:          "BSc",
		Department:      "Computer Science",
		CurrentPosition: "Software Engineer",
		Company:         "Acme Corp",
		Location:        "Berlin",
	})
	if err != nil && !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		lgr.Error().Err(err).Msg("Error creating demo alumni")
		finalErr = errors.Join(finalErr, err)
	}

	if alumni.ID > 0 {
		if _, err := repos.MentorRepository.Create(ctx, alumni.ID, "Backend development, career advice", nil, nil); err != nil {
			lgr.Error().Err(err).Msg("Error creating demo mentor profile")
			finalErr = errors.Join(finalErr, err)
		}

		date := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
		_, err = repos.EventRepository.Create(ctx, alumni.ID, &dto.CreateEventRequest{
			EventName:   "Alumni Networking Night",
			Description: "Meet alumni and students over snacks and short talks.",
			Date:        date,
			Location:    "Main Campus, Hall B",
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Error creating demo event")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo data created")
	}
	return finalErr
}
