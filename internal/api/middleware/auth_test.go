package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func runAuth(t *testing.T, header string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := Auth("secret")(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func mustNotRun(t *testing.T) echo.HandlerFunc {
	return func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signed(t, jwt.MapClaims{
		"username":    "manager_cl1",
		"full_name":   "Nasirabad Manager",
		"role":        "manager",
		"clinic_id":   "cl1",
		"clinic_name": "Nasirabad Clinic",
		"has_emoc":    true,
		"exp":         time.Now().Add(time.Hour).Unix(),
	})

	called := false
	rec := runAuth(t, "Bearer "+token, func(c echo.Context) error {
		called = true
		if c.Get("username") != "manager_cl1" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != "manager" {
			t.Fatalf("role not set")
		}
		if c.Get("clinic_name") != "Nasirabad Clinic" {
			t.Fatalf("clinic_name not set")
		}
		if c.Get("has_emoc") != true {
			t.Fatalf("has_emoc not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	if rec := runAuth(t, "", mustNotRun(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	if rec := runAuth(t, "Token abc", mustNotRun(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	if rec := runAuth(t, "Bearer not-a-token", mustNotRun(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token := signed(t, jwt.MapClaims{
		"username": "admin",
		"role":     "admin",
		"exp":      time.Now().Add(-time.Minute).Unix(),
	})
	if rec := runAuth(t, "Bearer "+token, mustNotRun(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingUsername(t *testing.T) {
	token := signed(t, jwt.MapClaims{"role": "admin"})
	if rec := runAuth(t, "Bearer "+token, mustNotRun(t)); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
