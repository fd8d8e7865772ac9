package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	return s.loginFn(ctx, input)
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*domain.User, error) {
	return nil, errors.New("not implemented")
}

type memSessions struct {
	mu   sync.Mutex
	next int
	data map[string]domain.Identity
}

func newMemSessions() *memSessions {
	return &memSessions{data: make(map[string]domain.Identity)}
}

func (m *memSessions) Create(_ context.Context, id domain.Identity) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	key := fmt.Sprintf("sess-%d", m.next)
	m.data[key] = id
	return key, nil
}

func (m *memSessions) Get(_ context.Context, key string) (*domain.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id, ok := m.data[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &id, nil
}

func (m *memSessions) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var adminIdentity = domain.Identity{
	Username:   "admin",
	FullName:   "System Administrator",
	Role:       domain.RoleAdmin,
	ClinicName: domain.AllClinics,
	HasEmoc:    true,
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Renderer = NewRenderer()
	return e
}

func acceptAdmin() *stubAuthService {
	return &stubAuthService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			if in.Username != "admin" || in.Password != "admin123" {
				return nil, domain.ErrInvalidCredentials
			}
			return &ports.LoginResult{Token: "tok", Identity: adminIdentity, IssuedAt: time.Now()}, nil
		},
	}
}

func jsonLogin(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func formLogin(e *echo.Echo, username, password string) (echo.Context, *httptest.ResponseRecorder) {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_JSONSuccess(t *testing.T) {
	e := newTestEcho()
	sessions := newMemSessions()
	h := NewAuthHandler(acceptAdmin(), sessions, CookieConfig{TTL: time.Hour}, zerolog.Nop())

	c, rec := jsonLogin(e, `{"username":"admin","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Login successful" || resp.Token != "tok" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.User != adminIdentity {
		t.Fatalf("unexpected user: %+v", resp.User)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != DefaultSessionCookie {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if cookies[0].MaxAge != 3600 || !cookies[0].HttpOnly {
		t.Fatalf("unexpected cookie attributes: %+v", cookies[0])
	}
	if _, err := sessions.Get(context.Background(), cookies[0].Value); err != nil {
		t.Fatalf("session not stored: %v", err)
	}
}

func TestAuthHandler_Login_PassesRequestMetadata(t *testing.T) {
	e := newTestEcho()
	var got ports.LoginInput
	stub := &stubAuthService{
		loginFn: func(_ context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
			got = in
			return &ports.LoginResult{Identity: adminIdentity}, nil
		},
	}
	h := NewAuthHandler(stub, newMemSessions(), CookieConfig{}, zerolog.Nop())

	c, _ := jsonLogin(e, `{"username":"admin","password":"admin123"}`)
	c.Request().Header.Set("User-Agent", "clinicctl/1.0")
	c.Request().Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.IP != "10.0.0.7" || got.UserAgent != "clinicctl/1.0" {
		t.Fatalf("unexpected metadata: %+v", got)
	}
}

func TestAuthHandler_Login_ValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		body   string
		status int
		detail string
	}{
		{"missing password", `{"username":"admin"}`, http.StatusBadRequest, "Username and password are required"},
		{"empty body", `{}`, http.StatusBadRequest, "Username and password are required"},
		{"long username", fmt.Sprintf(`{"username":"%s","password":"x"}`, strings.Repeat("a", 51)), http.StatusBadRequest, "Invalid credentials format"},
		{"long password", fmt.Sprintf(`{"username":"admin","password":"%s"}`, strings.Repeat("p", 101)), http.StatusBadRequest, "Invalid credentials format"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			called := false
			stub := &stubAuthService{
				loginFn: func(context.Context, ports.LoginInput) (*ports.LoginResult, error) {
					called = true
					return nil, nil
				},
			}
			h := NewAuthHandler(stub, newMemSessions(), CookieConfig{}, zerolog.Nop())

			c, _ := jsonLogin(e, tc.body)
			err := h.Login(c)
			if err == nil {
				t.Fatalf("expected error")
			}
			status, detail, ok := StatusFor(err)
			if !ok || status != tc.status || detail != tc.detail {
				t.Fatalf("expected %d %q, got %d %q (ok=%v)", tc.status, tc.detail, status, detail, ok)
			}
			if called {
				t.Fatalf("auth service must not be called on invalid input")
			}
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	sessions := newMemSessions()
	h := NewAuthHandler(acceptAdmin(), sessions, CookieConfig{}, zerolog.Nop())

	c, rec := jsonLogin(e, `{"username":"admin","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie expected on failure")
	}
	if len(sessions.data) != 0 {
		t.Fatalf("no session expected on failure")
	}
}

func TestAuthHandler_Login_FormSuccessRedirects(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(acceptAdmin(), newMemSessions(), CookieConfig{}, zerolog.Nop())

	c, rec := formLogin(e, "admin", "admin123")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
	if len(rec.Result().Cookies()) != 1 {
		t.Fatalf("expected session cookie")
	}
}

func TestAuthHandler_Login_FormFailureRendersError(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(acceptAdmin(), newMemSessions(), CookieConfig{}, zerolog.Nop())

	c, rec := formLogin(e, "admin", "nope")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Invalid username or password") {
		t.Fatalf("expected error message in page")
	}
	if !strings.Contains(body, `value="admin"`) {
		t.Fatalf("expected username to be kept in the form")
	}
	if !strings.Contains(body, "Sign In") {
		t.Fatalf("expected submit label to be reset")
	}
}

func TestAuthHandler_LoginPage(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(acceptAdmin(), newMemSessions(), CookieConfig{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	if err := h.LoginPage(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, want := range []string{"manager_cl1", "emoc_cl1", "counselor_cl1", `style="display:none"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("login page missing %q", want)
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	sessions := newMemSessions()
	sid, _ := sessions.Create(context.Background(), adminIdentity)
	h := NewAuthHandler(acceptAdmin(), sessions, CookieConfig{}, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: DefaultSessionCookie, Value: sid})
	rec := httptest.NewRecorder()
	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
	if _, err := sessions.Get(context.Background(), sid); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session should be deleted, got %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cookies)
	}
}
