package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/auth"
)

type fakeUserStore struct {
	byEmail map[string]*models.User

	students int
	alumni   int
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) CreateStudent(_ context.Context, user *models.User, _ *models.StudentProfile) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = int64(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user
	f.students++
	return nil
}

func (f *fakeUserStore) CreateAlumni(_ context.Context, user *models.User, _ *models.AlumniProfile) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	user.ID = int64(len(f.byEmail) + 1)
	f.byEmail[user.Email] = user
	f.alumni++
	return nil
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(_ *models.User) (string, int, error) {
	return "signed-token", 3600, nil
}

func newAuthFixture() (*AuthService, *fakeUserStore) {
	users := &fakeUserStore{byEmail: map[string]*models.User{}}
	return NewAuthService(users, fakeTokenIssuer{}), users
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid role", func(t *testing.T) {
		service, _ := newAuthFixture()
		_, err := service.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: "admin"})
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("error = %v, want ErrBadRequest", err)
		}
	})

	t.Run("student missing enrollment year", func(t *testing.T) {
		service, _ := newAuthFixture()
		_, err := service.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: "student"})
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("error = %v, want ErrBadRequest", err)
		}
	})

	t.Run("alumni missing graduation year", func(t *testing.T) {
		service, _ := newAuthFixture()
		_, err := service.Signup(ctx, &dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1", Role: "alumni"})
		if !errors.Is(err, apperrors.ErrBadRequest) {
			t.Errorf("error = %v, want ErrBadRequest", err)
		}
	})

	t.Run("student signup hashes the password", func(t *testing.T) {
		service, users := newAuthFixture()
		created, err := service.Signup(ctx, &dto.SignupRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret1",
			Role:     "student",
			Extra:    dto.SignupExtra{EnrollmentYear: 2024},
		})
		if err != nil {
			t.Fatalf("Signup() error: %v", err)
		}
		if created.Role != "student" || created.UserID == 0 {
			t.Errorf("unexpected auth user: %+v", created)
		}
		if users.students != 1 {
			t.Errorf("students created = %d, want 1", users.students)
		}

		stored := users.byEmail["ada@example.com"]
		if stored.Password == "secret1" {
			t.Error("password stored in plaintext")
		}
		if !auth.CheckPassword(stored.Password, "secret1") {
			t.Error("stored hash does not verify against the original password")
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, _ := newAuthFixture()
		req := &dto.SignupRequest{
			Name:     "Ada",
			Email:    "ada@example.com",
			Password: "secret1",
			Role:     "alumni",
			Extra:    dto.SignupExtra{GraduationYear: 2020},
		}
		if _, err := service.Signup(ctx, req); err != nil {
			t.Fatalf("first Signup() error: %v", err)
		}
		if _, err := service.Signup(ctx, req); !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			t.Errorf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestSignin(t *testing.T) {
	ctx := context.Background()
	service, _ := newAuthFixture()

	if _, err := service.Signup(ctx, &dto.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
		Role:     "alumni",
		Extra:    dto.SignupExtra{GraduationYear: 2020},
	}); err != nil {
		t.Fatalf("Signup() error: %v", err)
	}

	t.Run("unknown email", func(t *testing.T) {
		_, err := service.Signin(ctx, &dto.SigninRequest{Email: "ghost@example.com", Password: "secret1"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Signin(ctx, &dto.SigninRequest{Email: "ada@example.com", Password: "nope"})
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			t.Errorf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		resp, err := service.Signin(ctx, &dto.SigninRequest{Email: "ada@example.com", Password: "secret1"})
		if err != nil {
			t.Fatalf("Signin() error: %v", err)
		}
		if resp.Token != "signed-token" || resp.ExpiresIn != 3600 {
			t.Errorf("unexpected credential: token=%q expiresIn=%d", resp.Token, resp.ExpiresIn)
		}
		if resp.User.Email != "ada@example.com" || resp.User.Role != "alumni" {
			t.Errorf("unexpected user payload: %+v", resp.User)
		}
	})
}
