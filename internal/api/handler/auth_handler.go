package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/api/metrics"
	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// DefaultSessionCookie names the cookie carrying the server session id.
const DefaultSessionCookie = "clinic_session"

// CookieConfig controls the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    ports.SessionStore
	cookie      CookieConfig
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, sessions ports.SessionStore, cookie CookieConfig, log zerolog.Logger) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = DefaultSessionCookie
	}
	return &AuthHandler{authService: authService, sessions: sessions, cookie: cookie, log: log}
}

// LoginPage renders the login form.
//
// @Summary      Login page
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return h.renderLogin(c, http.StatusOK, "", "")
}

// Login authenticates a staff member. JSON clients get the identity and a
// bearer token; form posts are redirected to the dashboard. Both get a
// session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	form := isFormPost(c)

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return h.loginFailed(c, form, "", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("bad_request").Inc()
		return h.loginFailed(c, form, req.Username, loginValidationError(err))
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Username:  req.Username,
		Password:  req.Password,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues(loginResult(err)).Inc()
		return h.loginFailed(c, form, req.Username, err)
	}

	sessionID, err := h.sessions.Create(c.Request().Context(), result.Identity)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	metrics.SessionsCreatedTotal.Inc()
	c.SetCookie(h.sessionCookie(sessionID))

	if form {
		return c.Redirect(http.StatusFound, view.RouteDashboard)
	}
	return c.JSON(http.StatusOK, loginResponse{
		Message:   "Login successful",
		User:      result.Identity,
		Token:     result.Token,
		Timestamp: result.IssuedAt,
	})
}

// Logout ends the server session and returns to the login page.
//
// @Summary      Logout
// @Tags         auth
// @Success      302
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(h.cookie.Name); err == nil && ck.Value != "" {
		if err := h.sessions.Delete(c.Request().Context(), ck.Value); err != nil {
			h.log.Warn().Err(err).Msg("failed to delete session")
		}
	}
	c.SetCookie(h.expiredCookie())
	return c.Redirect(http.StatusFound, view.RouteLogin)
}

func (h *AuthHandler) loginFailed(c echo.Context, form bool, username string, err error) error {
	if !form {
		return err
	}
	status, detail, ok := StatusFor(err)
	if !ok {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			return err
		}
		status, detail = he.Code, "Login failed"
	}
	return h.renderLogin(c, status, username, detail)
}

func (h *AuthHandler) renderLogin(c echo.Context, status int, username, errMsg string) error {
	return c.Render(status, "login.html", loginPageData{
		Title:        "IMAGE EHR Login",
		Label:        view.LabelSignIn,
		Username:     username,
		Error:        errMsg,
		DemoAccounts: demoAccounts,
	})
}

func (h *AuthHandler) sessionCookie(id string) *http.Cookie {
	ck := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookie.TTL > 0 {
		ck.MaxAge = int(h.cookie.TTL.Seconds())
	}
	return ck
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func isFormPost(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEApplicationForm) || strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrMissingCredentials), errors.Is(err, domain.ErrInvalidCredentialsFormat):
		return "bad_request"
	}
	return "error"
}
