package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/api/internal/app/models"
	"github.com/alumnet/api/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "alumnet.test",
	})
}

func testToken(t *testing.T, jwtService *auth.JWTService, userID int64, role models.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{ID: userID, Role: role})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	return token
}

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)

	var gotUserID int64
	router := gin.New()
	router.GET("/protected", m.JWTAuth(), func(c *gin.Context) {
		gotUserID, _ = CurrentUserID(c)
		c.Status(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		w := performRequest(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		w := performRequest(router, "Bearer not-a-token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expiredService := auth.NewJWTService(auth.JWTConfig{
			SecretKey:      "test-secret",
			AccessTokenExp: -time.Minute,
		})
		token := testToken(t, expiredService, 5, models.RoleStudent)
		w := performRequest(router, "Bearer "+token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("valid token sets identity", func(t *testing.T) {
		token := testToken(t, jwtService, 42, models.RoleAlumni)
		w := performRequest(router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if gotUserID != 42 {
			t.Errorf("CurrentUserID = %d, want 42", gotUserID)
		}
	})
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", m.JWTAuth(), m.RoleRequired("alumni"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("wrong role", func(t *testing.T) {
		token := testToken(t, jwtService, 1, models.RoleStudent)
		w := performRequest(router, "Bearer "+token)
		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("matching role", func(t *testing.T) {
		token := testToken(t, jwtService, 2, models.RoleAlumni)
		w := performRequest(router, "Bearer "+token)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})

	t.Run("no auth at all", func(t *testing.T) {
		router := gin.New()
		router.GET("/protected", m.RoleRequired("alumni"), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		w := performRequest(router, "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}
