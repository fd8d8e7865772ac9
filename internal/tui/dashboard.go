package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/client"
	"github.com/imagehealth/clinic-dashboard/internal/ui/dashboard"
	"github.com/imagehealth/clinic-dashboard/internal/ui/event"
	"github.com/imagehealth/clinic-dashboard/internal/ui/render"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// FetchFunc loads the dashboard dataset for the stored session.
type FetchFunc func(ctx context.Context) (*domain.Dataset, error)

type datasetMsg struct {
	ds  *domain.Dataset
	err error
}

// prefetched is the controller's data source. The dataset is fetched off
// the loop and handed over before the load event is dispatched.
type prefetched struct {
	ds  *domain.Dataset
	err error
}

func (p *prefetched) Dataset(context.Context, domain.Identity) (*domain.Dataset, error) {
	return p.ds, p.err
}

var overviewStats = []struct{ id, label string }{
	{view.TextTotalPatients, "Total Patients"},
	{view.TextTodayAppointments, "Today's Appointments"},
	{view.TextEmocCases, "Active EMOC Cases"},
	{view.TextMonthlyRevenue, "Monthly Revenue"},
}

type dashboardModel struct {
	ctx    context.Context
	page   *view.Page
	bus    *event.Bus
	ctrl   *dashboard.Controller
	sc     *session.Context
	source *prefetched
	fetch  FetchFunc
	log    zerolog.Logger

	search     textinput.Model
	searching  bool
	confirming bool
	loading    bool
	err        error

	styles Styles
	width  int
}

func newDashboardModel(ctx context.Context, sc *session.Context, fetch FetchFunc, styles Styles, log zerolog.Logger) dashboardModel {
	page := view.NewPage(view.DefaultLayout())
	source := &prefetched{}
	bus := event.NewBus()

	// The y/n prompt is answered before the click is dispatched.
	confirm := dashboard.ConfirmFunc(func(string) bool { return true })
	ctrl := dashboard.New(sc, page, source, confirm, log)
	ctrl.Attach(bus)

	search := textinput.New()
	search.Placeholder = "Search patients..."
	search.CharLimit = 64
	search.Width = 32
	search.Prompt = "/ "

	return dashboardModel{
		ctx:     ctx,
		page:    page,
		bus:     bus,
		ctrl:    ctrl,
		sc:      sc,
		source:  source,
		fetch:   fetch,
		log:     log,
		search:  search,
		loading: true,
		styles:  styles,
		width:   80,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	ctx, fetch := m.ctx, m.fetch
	return func() tea.Msg {
		ds, err := fetch(ctx)
		return datasetMsg{ds: ds, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case datasetMsg:
		return m.loaded(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.confirming {
			return m.answerLogout(msg.String())
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m dashboardModel) loaded(msg datasetMsg) (dashboardModel, tea.Cmd) {
	m.loading = false
	if errors.Is(msg.err, client.ErrUnauthorized) {
		m.log.Info().Msg("stored session rejected, returning to login")
		if err := m.sc.End(m.ctx); err != nil {
			m.log.Warn().Err(err).Msg("failed to clear session")
		}
		m.page.Navigate(view.RouteLogin)
		return m, nil
	}
	m.source.ds, m.source.err = msg.ds, msg.err
	m.err = m.dispatch(event.Load, "", "")
	return m, nil
}

func (m dashboardModel) handleKey(key string) (dashboardModel, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right":
		m.step(1)
	case "shift+tab", "left":
		m.step(-1)
	case "/":
		m.err = m.dispatch(event.Click, view.TargetNav, string(domain.SectionPatients))
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "L":
		m.confirming = true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.selectNth(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m dashboardModel) updateSearch(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.err = m.dispatch(event.Input, view.TargetPatientSearch, m.search.Value())
	return m, cmd
}

func (m dashboardModel) answerLogout(key string) (dashboardModel, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.confirming = false
		m.err = m.dispatch(event.Click, view.TargetLogout, "")
	case "n", "N", "esc":
		m.confirming = false
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m *dashboardModel) step(delta int) {
	visible := m.page.VisibleSections()
	if len(visible) == 0 {
		return
	}
	cur := 0
	for i, s := range visible {
		if s == string(m.ctrl.Active()) {
			cur = i
			break
		}
	}
	next := (cur + delta + len(visible)) % len(visible)
	m.err = m.dispatch(event.Click, view.TargetNav, visible[next])
}

func (m *dashboardModel) selectNth(i int) {
	visible := m.page.VisibleSections()
	if i < 0 || i >= len(visible) {
		return
	}
	m.err = m.dispatch(event.Click, view.TargetNav, visible[i])
}

func (m dashboardModel) dispatch(kind event.Kind, target, value string) error {
	err := m.bus.Dispatch(m.ctx, &event.Event{Kind: kind, Target: target, Value: value})
	if err != nil {
		m.log.Error().Err(err).Str("target", target).Msg("dashboard event failed")
	}
	return err
}

func (m dashboardModel) View() string {
	if m.loading {
		return m.styles.Subtle.Render("Loading dashboard...")
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.nav())
	b.WriteString("\n\n")

	active := m.ctrl.Active()
	b.WriteString(m.styles.Title.Render(active.Title()))
	b.WriteString("\n\n")
	if active == domain.SectionOverview {
		b.WriteString(m.stats())
		b.WriteString("\n\n")
	}
	if active == domain.SectionPatients {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}
	if tbl, ok := view.SectionTables[active]; ok {
		b.WriteString(m.table(tbl))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	if m.confirming {
		b.WriteString(m.styles.Prompt.Render(dashboard.LogoutPrompt + " (y/n)"))
	} else {
		b.WriteString(m.styles.Subtle.Render("tab/←/→/1-9: sections • /: search patients • L: logout • q: quit"))
	}
	return b.String()
}

func (m dashboardModel) header() string {
	left := m.styles.Title.Render("IMAGE EHR") + "  " + m.styles.Subtle.Render(m.page.Text(view.TextClinicName))
	right := m.page.Text(view.TextUserInfo)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m dashboardModel) nav() string {
	active := make(map[string]bool)
	for _, s := range m.page.ActiveNav() {
		active[s] = true
	}
	items := make([]string, 0, len(m.page.VisibleSections()))
	for i, s := range m.page.VisibleSections() {
		label := fmt.Sprintf("%d %s", i+1, domain.Section(s).Title())
		if active[s] {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

func (m dashboardModel) stats() string {
	cards := make([]string, 0, len(overviewStats))
	for _, st := range overviewStats {
		cards = append(cards, m.styles.Card.Render(
			m.styles.StatValue.Render(m.page.Text(st.id))+"\n"+m.styles.StatLabel.Render(st.label),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// table renders the visible rows of a table body. Action buttons are
// listed in a trailing column.
func (m dashboardModel) table(id string) string {
	headers := render.Headers[id]
	rows := m.page.VisibleRows(id)

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tr := make(table.Row, len(headers))
		for i := range headers {
			switch {
			case i < len(r.Cells):
				tr[i] = r.Cells[i].Text
			case i == len(r.Cells) && len(r.Actions) > 0:
				tr[i] = strings.Join(r.Actions, " ")
			}
			if w := lipgloss.Width(tr[i]); w > widths[i] {
				widths[i] = w
			}
		}
		tableRows = append(tableRows, tr)
	}

	cols := make([]table.Column, len(headers))
	for i, h := range headers {
		cols[i] = table.Column{Title: h, Width: widths[i]}
	}
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(tableRows),
		table.WithFocused(false),
		table.WithHeight(len(tableRows)+2),
	)
	if len(tableRows) == 0 {
		return t.View() + "\n" + m.styles.Subtle.Render("No records")
	}
	return t.View()
}
