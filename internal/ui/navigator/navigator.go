// Package navigator keeps exactly one dashboard section active.
package navigator

import (
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// Navigator tracks the active section and keeps the nav controls and content
// panels of a surface in agreement with it.
type Navigator struct {
	view        view.Sections
	active      domain.Section
	initialized bool
	log         zerolog.Logger
}

func New(v view.Sections, log zerolog.Logger) *Navigator {
	return &Navigator{view: v, log: log}
}

// Init activates the default section. Only the first call has an effect.
func (n *Navigator) Init() {
	if n.initialized {
		return
	}
	n.initialized = true
	n.Select(domain.DefaultSection)
}

// Select makes s the active section. Every nav control and panel is
// deactivated first; if s has no panel the page is left with no active panel.
func (n *Navigator) Select(s domain.Section) {
	n.initialized = true

	for _, sec := range n.view.NavItems() {
		n.view.SetNavActive(sec, false)
	}
	for _, id := range n.view.Panels() {
		n.view.SetPanelActive(id, false)
	}

	n.active = s
	n.view.SetNavActive(string(s), true)

	if !n.hasPanel(s.PanelID()) {
		n.log.Warn().Str("section", string(s)).Str("panel", s.PanelID()).Msg("no panel for section")
		return
	}
	n.view.SetPanelActive(s.PanelID(), true)
}

// Active returns the active section, or "" before Init.
func (n *Navigator) Active() domain.Section {
	return n.active
}

func (n *Navigator) hasPanel(id string) bool {
	for _, p := range n.view.Panels() {
		if p == id {
			return true
		}
	}
	return false
}
