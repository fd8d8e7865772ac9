package view

import (
	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
)

// NavSpec declares one nav control of a layout.
type NavSpec struct {
	Section string
	Marker  string
}

// PanelSpec declares one content panel of a layout.
type PanelSpec struct {
	ID     string
	Marker string
}

// Layout is the static markup of a dashboard page.
type Layout struct {
	Nav    []NavSpec
	Panels []PanelSpec
}

// SectionTables binds each section panel to the table it shows.
var SectionTables = map[domain.Section]string{
	domain.SectionOverview: TableActivity,
	domain.SectionPatients: TablePatients,
	domain.SectionEmoc:     TableEmoc,
	domain.SectionBilling:  TableBilling,
	domain.SectionUsers:    TableUsers,
	domain.SectionClinics:  TableClinics,
}

// DefaultLayout has one nav control and one panel per section. EMOC and the
// admin sections are tagged with their marker classes.
func DefaultLayout() Layout {
	var l Layout
	for _, s := range domain.Sections {
		marker := markerFor(s)
		l.Nav = append(l.Nav, NavSpec{Section: string(s), Marker: marker})
		l.Panels = append(l.Panels, PanelSpec{ID: s.PanelID(), Marker: marker})
	}
	return l
}

func markerFor(s domain.Section) string {
	c, gated := s.Capability()
	if !gated {
		return ""
	}
	if c == domain.CapabilityEMOC {
		return MarkerEmocOnly
	}
	return MarkerAdminOnly
}

type navItem struct {
	NavSpec
	active bool
}

type panel struct {
	PanelSpec
	active bool
}

// Page is an in-memory Dashboard. Marked elements start hidden.
type Page struct {
	nav      []navItem
	panels   []panel
	text     map[string]string
	visible  map[string]bool
	tables   map[string][]Row
	location string
}

var _ Dashboard = (*Page)(nil)

func NewPage(l Layout) *Page {
	p := &Page{
		text:    make(map[string]string),
		visible: make(map[string]bool),
		tables:  make(map[string][]Row),
	}
	for _, n := range l.Nav {
		p.nav = append(p.nav, navItem{NavSpec: n})
	}
	for _, pn := range l.Panels {
		p.panels = append(p.panels, panel{PanelSpec: pn})
	}
	return p
}

func (p *Page) NavItems() []string {
	out := make([]string, len(p.nav))
	for i, n := range p.nav {
		out[i] = n.Section
	}
	return out
}

func (p *Page) Panels() []string {
	out := make([]string, len(p.panels))
	for i, pn := range p.panels {
		out[i] = pn.ID
	}
	return out
}

func (p *Page) SetNavActive(section string, active bool) {
	for i := range p.nav {
		if p.nav[i].Section == section {
			p.nav[i].active = active
		}
	}
}

func (p *Page) SetPanelActive(id string, active bool) {
	for i := range p.panels {
		if p.panels[i].ID == id {
			p.panels[i].active = active
		}
	}
}

func (p *Page) SetText(id, text string) {
	p.text[id] = text
}

func (p *Page) SetVisible(marker string, visible bool) {
	p.visible[marker] = visible
}

func (p *Page) RenderRows(table string, rows []Row) {
	p.tables[table] = append([]Row(nil), rows...)
}

func (p *Page) Rows(table string) []Row {
	return append([]Row(nil), p.tables[table]...)
}

func (p *Page) SetRowVisible(table string, index int, visible bool) {
	rows := p.tables[table]
	if index < 0 || index >= len(rows) {
		return
	}
	rows[index].Hidden = !visible
}

func (p *Page) Navigate(route string) {
	p.location = route
}

// Text returns the content of a text element.
func (p *Page) Text(id string) string {
	return p.text[id]
}

// MarkerVisible reports whether elements tagged with marker are shown.
// Untagged elements are always shown.
func (p *Page) MarkerVisible(marker string) bool {
	return marker == "" || p.visible[marker]
}

// ActiveNav returns the sections of every active nav control.
func (p *Page) ActiveNav() []string {
	var out []string
	for _, n := range p.nav {
		if n.active {
			out = append(out, n.Section)
		}
	}
	return out
}

// ActivePanels returns the ids of every active panel.
func (p *Page) ActivePanels() []string {
	var out []string
	for _, pn := range p.panels {
		if pn.active {
			out = append(out, pn.ID)
		}
	}
	return out
}

// VisibleSections lists the nav sections a user can see, in order.
func (p *Page) VisibleSections() []string {
	var out []string
	for _, n := range p.nav {
		if p.MarkerVisible(n.Marker) {
			out = append(out, n.Section)
		}
	}
	return out
}

// PanelVisible reports whether the panel exists and its marker is shown.
func (p *Page) PanelVisible(id string) bool {
	for _, pn := range p.panels {
		if pn.ID == id {
			return p.MarkerVisible(pn.Marker)
		}
	}
	return false
}

// VisibleRows returns the rows of table that are not hidden.
func (p *Page) VisibleRows(table string) []Row {
	var out []Row
	for _, r := range p.tables[table] {
		if !r.Hidden {
			out = append(out, r)
		}
	}
	return out
}

// Location is the last route passed to Navigate, or "" if none.
func (p *Page) Location() string {
	return p.location
}
