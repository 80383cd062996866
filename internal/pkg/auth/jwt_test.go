package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/alumnet/api/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "alumnet.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestService(time.Hour)
	user := &models.User{ID: 42, Role: models.RoleAlumni}

	token, expiresIn, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := service.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != string(models.RoleAlumni) {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleAlumni)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	service := newTestService(-time.Minute)
	user := &models.User{ID: 7, Role: models.RoleStudent}

	token, _, err := service.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	_, err = service.ValidateAndExtractClaims(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestService(time.Hour)
	token, _, err := issuer.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	verifier := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour})
	if _, err := verifier.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected validation failure for token signed with another secret")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	service := newTestService(time.Hour)
	if _, err := service.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"raw token", "abc.def.ghi", "abc.def.ghi", false},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken() = %q, want %q", got, tt.want)
			}
		})
	}
}
