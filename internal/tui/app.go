package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/ui/login"
	"github.com/imagehealth/clinic-dashboard/internal/ui/session"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

type screen int

const (
	screenLogin screen = iota
	screenDashboard
)

// Options wires the terminal client to its backends.
type Options struct {
	Auth  login.Authenticator
	Fetch FetchFunc
	Store *session.StorageProvider
	Demo  []DemoAccount
	Log   zerolog.Logger
}

// Model is the root Bubble Tea model. It owns one screen at a time and
// swaps them when a controller navigates.
type Model struct {
	ctx    context.Context
	opts   Options
	sc     *session.Context
	styles Styles

	screen screen
	login  loginModel
	dash   dashboardModel
	width  int
	height int
}

// New starts on the dashboard when a session is stored, on the login
// screen otherwise.
func New(ctx context.Context, opts Options) Model {
	m := Model{
		ctx:    ctx,
		opts:   opts,
		sc:     session.NewContext(opts.Store, opts.Log),
		styles: DefaultStyles(),
	}
	if _, ok := m.sc.Current(ctx); ok {
		m.screen = screenDashboard
		m.dash = newDashboardModel(ctx, m.sc, opts.Fetch, m.styles, opts.Log)
	} else {
		m.screen = screenLogin
		m.login = m.newLogin()
	}
	return m
}

func (m Model) newLogin() loginModel {
	return newLoginModel(m.ctx, m.opts.Auth, m.opts.Store, m.opts.Demo, m.styles, m.opts.Log)
}

func (m Model) Init() tea.Cmd {
	if m.screen == screenDashboard {
		return m.dash.Init()
	}
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.screen == screenDashboard {
			m.dash, _ = m.dash.Update(msg)
		}
		return m, nil

	case callMsg:
		// Deferred login steps may fire after the screen changed.
		msg.fn()
		if m.screen == screenLogin && m.login.page.State().Location == view.RouteDashboard {
			return m.toDashboard()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
	case screenDashboard:
		m.dash, cmd = m.dash.Update(msg)
		switch m.dash.page.Location() {
		case view.RouteLogin, view.RouteLogout:
			m.opts.Log.Debug().Str("route", m.dash.page.Location()).Msg("leaving dashboard")
			return m.toLogin(cmd)
		}
	}
	return m, cmd
}

func (m Model) toDashboard() (tea.Model, tea.Cmd) {
	m.screen = screenDashboard
	m.dash = newDashboardModel(m.ctx, m.sc, m.opts.Fetch, m.styles, m.opts.Log)
	if m.width > 0 {
		m.dash.width = m.width
	}
	return m, m.dash.Init()
}

func (m Model) toLogin(pending tea.Cmd) (tea.Model, tea.Cmd) {
	m.screen = screenLogin
	m.login = m.newLogin()
	return m, tea.Batch(pending, m.login.Init())
}

func (m Model) View() string {
	if m.screen == screenDashboard {
		return m.styles.App.Render(m.dash.View())
	}
	return m.styles.App.Render(m.login.View())
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
