package view

import "sync"

// LoginState is a snapshot of a LoginPage.
type LoginState struct {
	Error         string
	ErrorVisible  bool
	SubmitEnabled bool
	Label         string
	Loading       bool
	Shaking       bool
	Location      string
}

// LoginPage is an in-memory LoginForm. It is safe for use from timer
// goroutines.
type LoginPage struct {
	mu sync.Mutex
	st LoginState
}

var _ LoginForm = (*LoginPage)(nil)

func NewLoginPage() *LoginPage {
	return &LoginPage{st: LoginState{SubmitEnabled: true, Label: LabelSignIn}}
}

func (p *LoginPage) ShowError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.Error = msg
	p.st.ErrorVisible = true
}

func (p *LoginPage) HideError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.ErrorVisible = false
}

func (p *LoginPage) SetSubmitEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.SubmitEnabled = enabled
}

func (p *LoginPage) SetLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.Label = label
}

func (p *LoginPage) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.Loading = loading
}

func (p *LoginPage) SetShake(shaking bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.Shaking = shaking
}

func (p *LoginPage) Navigate(route string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st.Location = route
}

// State returns a copy of the current form state.
func (p *LoginPage) State() LoginState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.st
}
