package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/ui/login"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

// DemoAccount is offered on the login screen behind Alt+<n>.
type DemoAccount struct {
	Label    string
	Username string
	Password string
}

const (
	focusUsername = iota
	focusPassword
)

// attemptMsg carries the authentication outcome back to the loop.
type attemptMsg struct {
	outcome login.Outcome
}

type loginModel struct {
	ctx      context.Context
	username textinput.Model
	password textinput.Model
	focus    int
	spinner  spinner.Model

	page  *view.LoginPage
	flow  *login.Flow
	sched *loopScheduler
	demo  []DemoAccount

	styles Styles
}

func newLoginModel(ctx context.Context, auth login.Authenticator, store login.IdentityStore, demo []DemoAccount, styles Styles, log zerolog.Logger) loginModel {
	user := textinput.New()
	user.Placeholder = "Username"
	user.CharLimit = 50
	user.Width = 32
	user.Prompt = "│ "
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.CharLimit = 100
	pass.Width = 32
	pass.Prompt = "│ "
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Title

	page := view.NewLoginPage()
	sched := newLoopScheduler()
	return loginModel{
		ctx:      ctx,
		username: user,
		password: pass,
		spinner:  sp,
		page:     page,
		flow:     login.NewFlow(page, auth, store, sched, log),
		sched:    sched,
		demo:     demo,
		styles:   styles,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptMsg:
		m.flow.Complete(m.ctx, msg.outcome)
		return m, m.sched.drain()

	case spinner.TickMsg:
		if !m.page.State().Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		if n, ok := demoKey(key); ok {
			m.fillDemo(n)
			return m, nil
		}
		switch key {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab", "up", "down":
			m.setFocus(1 - m.focus)
			return m, nil
		case "enter":
			if m.focus == focusUsername {
				m.setFocus(focusPassword)
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == focusUsername {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// submit starts one login attempt. While a previous one is still resetting
// the key press is ignored, matching a disabled submit button.
func (m loginModel) submit() (loginModel, tea.Cmd) {
	if err := m.flow.Begin(); err != nil {
		return m, nil
	}
	ctx, flow := m.ctx, m.flow
	creds := login.Credentials{Username: m.username.Value(), Password: m.password.Value()}
	attempt := func() tea.Msg {
		return attemptMsg{outcome: flow.Attempt(ctx, creds)}
	}
	return m, tea.Batch(m.spinner.Tick, attempt)
}

func (m *loginModel) setFocus(f int) {
	m.focus = f
	if f == focusUsername {
		m.password.Blur()
		m.username.Focus()
		return
	}
	m.username.Blur()
	m.password.Focus()
}

func (m *loginModel) fillDemo(n int) {
	if n < 1 || n > len(m.demo) {
		return
	}
	acc := m.demo[n-1]
	m.username.SetValue(acc.Username)
	m.password.SetValue(acc.Password)
	m.setFocus(focusPassword)
}

func demoKey(key string) (int, bool) {
	if len(key) != 5 || !strings.HasPrefix(key, "alt+") {
		return 0, false
	}
	d := key[4]
	if d < '1' || d > '9' {
		return 0, false
	}
	return int(d - '0'), true
}

func (m loginModel) View() string {
	st := m.page.State()
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("IMAGE EHR"))
	b.WriteString("\n")
	b.WriteString(m.styles.Label.Render("Username") + "\n")
	b.WriteString(m.username.View() + "\n\n")
	b.WriteString(m.styles.Label.Render("Password") + "\n")
	b.WriteString(m.password.View() + "\n\n")

	if st.ErrorVisible {
		errLine := m.styles.Error.Render(st.Error)
		if st.Shaking {
			errLine = "  " + errLine
		}
		b.WriteString(errLine + "\n\n")
	}

	button := m.styles.Button
	if !st.SubmitEnabled {
		button = m.styles.Disabled
	}
	label := st.Label
	if st.Loading {
		label = m.spinner.View() + " " + label
	}
	if st.Label == login.LabelSuccess {
		b.WriteString(m.styles.Success.Render(label))
	} else {
		b.WriteString(button.Render(label))
	}
	b.WriteString("\n\n")

	if len(m.demo) > 0 {
		b.WriteString(m.styles.Subtle.Render("Demo accounts") + "\n")
		for i, acc := range m.demo {
			b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("  alt+%d  %-10s %s / %s", i+1, acc.Label, acc.Username, acc.Password)))
			b.WriteString("\n")
		}
	}
	b.WriteString(m.styles.Subtle.Render("enter: next/sign in • esc: quit"))
	return b.String()
}
