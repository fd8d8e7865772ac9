// Package gate admits a dashboard page only when a session identity exists,
// and applies capability-based visibility to the page.
package gate

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// Rule shows elements tagged with Marker only to identities holding
// Capability.
type Rule struct {
	Marker     string
	Capability domain.Capability
}

// DefaultRules gate EMOC and admin elements.
var DefaultRules = []Rule{
	{Marker: view.MarkerEmocOnly, Capability: domain.CapabilityEMOC},
	{Marker: view.MarkerAdminOnly, Capability: domain.CapabilityAdmin},
}

// Surface is the part of a page the gate writes to.
type Surface interface {
	SetText(id, text string)
	SetVisible(marker string, visible bool)
	Navigate(route string)
}

type Gate struct {
	session *session.Context
	surface Surface
	rules   []Rule
	log     zerolog.Logger
}

// New returns a Gate applying rules, or DefaultRules when none are given.
func New(sc *session.Context, s Surface, log zerolog.Logger, rules ...Rule) *Gate {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Gate{session: sc, surface: s, rules: rules, log: log}
}

// Open reads the session identity. Without one it navigates to the login
// route and returns false; the caller must not initialise anything else.
func (g *Gate) Open(ctx context.Context) (domain.Identity, bool) {
	id, ok := g.session.Current(ctx)
	if !ok {
		g.log.Debug().Msg("no session identity, redirecting to login")
		g.surface.Navigate(view.RouteLogin)
		return domain.Identity{}, false
	}

	g.surface.SetText(view.TextUserInfo, id.DisplayName())
	g.surface.SetText(view.TextClinicName, id.ClinicName)
	for _, r := range g.rules {
		g.surface.SetVisible(r.Marker, id.Can(r.Capability))
	}
	return id, true
}
