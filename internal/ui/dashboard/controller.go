// Package dashboard wires the session gate, the section navigator and the
// table renderers onto one page.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/event"
	"github.com/imagehealth/clinic-dashboard/internal/ui/gate"
	"github.com/imagehealth/clinic-dashboard/internal/ui/navigator"
	"github.com/imagehealth/clinic-dashboard/internal/ui/render"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// LogoutPrompt is asked before a logout click ends the session.
const LogoutPrompt = "Are you sure you want to logout?"

// DataSource loads the records a viewer may see.
type DataSource interface {
	Dataset(ctx context.Context, viewer domain.Identity) (*domain.Dataset, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Controller owns one loaded dashboard page.
type Controller struct {
	session *session.Context
	page    view.Dashboard
	data    DataSource
	confirm Confirmer
	log     zerolog.Logger

	gate     *gate.Gate
	nav      *navigator.Navigator
	identity domain.Identity
	loaded   bool
}

// New builds a controller. A nil confirmer accepts every prompt.
func New(sc *session.Context, page view.Dashboard, data DataSource, confirm Confirmer, log zerolog.Logger) *Controller {
	if confirm == nil {
		confirm = ConfirmFunc(func(string) bool { return true })
	}
	return &Controller{
		session: sc,
		page:    page,
		data:    data,
		confirm: confirm,
		log:     log,
		gate:    gate.New(sc, page, log),
		nav:     navigator.New(page, log),
	}
}

// Attach registers the controller's handlers on bus.
func (c *Controller) Attach(bus *event.Bus) {
	bus.On(event.Load, "", c.onLoad)
	bus.On(event.Click, view.TargetNav, c.onNav)
	bus.On(event.Input, view.TargetPatientSearch, c.onSearch)
	bus.On(event.Click, view.TargetLogout, c.onLogout)
}

// Identity returns the identity admitted by the gate.
func (c *Controller) Identity() (domain.Identity, bool) {
	return c.identity, c.loaded
}

// Active returns the active section.
func (c *Controller) Active() domain.Section {
	return c.nav.Active()
}

func (c *Controller) onLoad(ctx context.Context, _ *event.Event) error {
	if c.loaded {
		return nil
	}

	id, ok := c.gate.Open(ctx)
	if !ok {
		return nil
	}
	c.identity = id
	c.loaded = true
	c.nav.Init()

	ds, err := c.data.Dataset(ctx, id)
	if err != nil {
		return fmt.Errorf("load dashboard data: %w", err)
	}
	c.fill(ds)
	return nil
}

func (c *Controller) fill(ds *domain.Dataset) {
	c.page.SetText(view.TextTotalPatients, strconv.Itoa(ds.Stats.TotalPatients))
	c.page.SetText(view.TextTodayAppointments, strconv.Itoa(ds.Stats.TodayAppointments))
	c.page.SetText(view.TextEmocCases, strconv.Itoa(ds.Stats.EmocCases))
	c.page.SetText(view.TextMonthlyRevenue, ds.Stats.MonthlyRevenue)

	c.page.RenderRows(view.TableActivity, render.Activity(ds.Activity))
	c.page.RenderRows(view.TablePatients, render.Patients(ds.Patients))
	c.page.RenderRows(view.TableEmoc, render.EmocCases(ds.EmocCases))
	c.page.RenderRows(view.TableBilling, render.Bills(ds.Bills))
	c.page.RenderRows(view.TableUsers, render.Staff(ds.Staff))
	c.page.RenderRows(view.TableClinics, render.Clinics(ds.Clinics))
}

func (c *Controller) onNav(_ context.Context, ev *event.Event) error {
	if !c.loaded {
		return nil
	}
	s := domain.Section(ev.Value)
	if !s.VisibleTo(c.identity) {
		c.log.Debug().Str("section", ev.Value).Str("role", c.identity.Role).Msg("ignoring hidden section")
		return nil
	}
	c.nav.Select(s)
	return nil
}

func (c *Controller) onSearch(_ context.Context, ev *event.Event) error {
	if !c.loaded {
		return nil
	}
	rows := render.Filter(c.page.Rows(view.TablePatients), ev.Value)
	for i, r := range rows {
		c.page.SetRowVisible(view.TablePatients, i, !r.Hidden)
	}
	return nil
}

func (c *Controller) onLogout(ctx context.Context, _ *event.Event) error {
	if !c.confirm.Confirm(LogoutPrompt) {
		return nil
	}
	if err := c.session.End(ctx); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	c.loaded = false
	c.identity = domain.Identity{}
	c.page.Navigate(view.RouteLogout)
	return nil
}
