package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/api/metrics"
	"github.com/imagehealth/clinic-dashboard/internal/core/ports"
	"github.com/imagehealth/clinic-dashboard/internal/ui/dashboard"
	"github.com/imagehealth/clinic-dashboard/internal/ui/event"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// DashboardHandler renders the dashboard on the server. Each request loads a
// fresh page, so the active section resets to the default unless the query
// string selects another one.
type DashboardHandler struct {
	sessions   ports.SessionStore
	data       ports.DashboardService
	cookieName string
	log        zerolog.Logger
}

func NewDashboardHandler(sessions ports.SessionStore, data ports.DashboardService, cookieName string, log zerolog.Logger) *DashboardHandler {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}
	return &DashboardHandler{sessions: sessions, data: data, cookieName: cookieName, log: log}
}

// Show renders the dashboard page.
//
// @Summary      Dashboard page
// @Tags         dashboard
// @Produce      html
// @Param        section  query  string  false  "Section to open"
// @Param        q        query  string  false  "Patient search"
// @Success      200
// @Success      302
// @Router       /dashboard [get]
func (h *DashboardHandler) Show(c echo.Context) error {
	ctx := c.Request().Context()
	provider := &cookieSession{c: c, sessions: h.sessions, name: h.cookieName}

	page := view.NewPage(view.DefaultLayout())
	bus := event.NewBus()
	ctrl := dashboard.New(session.NewContext(provider, h.log), page, h.data, nil, h.log)
	ctrl.Attach(bus)

	if err := dispatch(ctx, bus, event.Load, "", ""); err != nil {
		return err
	}
	if page.Location() == view.RouteLogin {
		return c.Redirect(http.StatusFound, view.RouteLogin)
	}

	if section := c.QueryParam("section"); section != "" {
		if err := dispatch(ctx, bus, event.Click, view.TargetNav, section); err != nil {
			return err
		}
	}
	query := c.QueryParam("q")
	if query != "" {
		if err := dispatch(ctx, bus, event.Input, view.TargetPatientSearch, query); err != nil {
			return err
		}
	}

	metrics.DashboardRendersTotal.WithLabelValues(string(ctrl.Active())).Inc()
	return c.Render(http.StatusOK, "dashboard.html", toPageData(page, query))
}

func dispatch(ctx context.Context, bus *event.Bus, kind event.Kind, target, value string) error {
	return bus.Dispatch(ctx, &event.Event{Kind: kind, Target: target, Value: value})
}
