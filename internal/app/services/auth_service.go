package services

import (
	"context"
	"errors"
	"time"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/pkg/apperrors"
	"github.com/alumnet/api/internal/pkg/auth"
)

// userStore is the slice of the user repository the auth service consumes.
type userStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateStudent(ctx context.Context, user *models.User, profile *models.StudentProfile) error
	CreateAlumni(ctx context.Context, user *models.User, profile *models.AlumniProfile) error
}

// tokenIssuer issues signed access tokens.
type tokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// AuthService handles signup and signin
type AuthService struct {
	users  userStore
	tokens tokenIssuer
}

// NewAuthService creates a new auth service
func NewAuthService(users userStore, tokens tokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Signup registers a user together with their role profile. The user row and
// the profile row are created atomically; a duplicate email surfaces as a
// conflict.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthUser, error) {
	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewBadRequestError("role must be either 'student' or 'alumni'")
	}
	if err := validateSignupExtra(role, &req.Extra); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hashed,
		Role:     role,
	}

	switch role {
	case models.RoleStudent:
		profile := &models.StudentProfile{
			EnrollmentYear:     req.Extra.EnrollmentYear,
			Degree:             req.Extra.Degree,
			Department:         req.Extra.Department,
			ExpectedGraduation: req.Extra.ExpectedGraduation,
		}
		err = s.users.CreateStudent(ctx, user, profile)
	case models.RoleAlumni:
		profile := &models.AlumniProfile{
			GraduationYear:  req.Extra.GraduationYear,
			Degree:          req.Extra.Degree,
			Department:      req.Extra.Department,
			CurrentPosition: req.Extra.CurrentPosition,
			Company:         req.Extra.Company,
			Location:        req.Extra.Location,
		}
		err = s.users.CreateAlumni(ctx, user, profile)
	}
	if err != nil {
		return nil, err
	}

	return &dto.AuthUser{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}

func validateSignupExtra(role models.Role, extra *dto.SignupExtra) error {
	switch role {
	case models.RoleStudent:
		if extra.EnrollmentYear == 0 {
			return apperrors.NewBadRequestError("enrollment_year is required for students")
		}
	case models.RoleAlumni:
		if extra.GraduationYear == 0 {
			return apperrors.NewBadRequestError("graduation_year is required for alumni")
		}
	}
	return nil
}

// Signin verifies the credentials and issues an access token. Unknown email
// and wrong password yield the same error so the response does not reveal
// which accounts exist.
func (s *AuthService) Signin(ctx context.Context, req *dto.SigninRequest) (*dto.SigninResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.SigninResponse{
		User: dto.AuthUser{
			UserID: user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Role:   string(user.Role),
		},
		Token:     token,
		ExpiresIn: expiresIn,
	}, nil
}
