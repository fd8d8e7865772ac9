// Package login drives the login form through
// Idle → Submitting → Succeeded/Failed → Idle.
package login

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/imagehealth/clinic-dashboard/internal/core/domain"
	"github.com/imagehealth/clinic-dashboard/internal/ui/view"
)

const (
	LabelSuccess = "Success!"

	SuccessRedirectDelay = 500 * time.Millisecond
	ShakeDuration        = 500 * time.Millisecond
	ResetDelay           = 1000 * time.Millisecond

	MsgLoginFailed     = "Login failed"
	MsgConnectionError = "Connection error. Please try again."
)

// ErrSubmitDisabled is returned when a submission starts while another one
// has not been reset yet.
var ErrSubmitDisabled = errors.New("login: submit control disabled")

type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Credentials live only for one submission.
type Credentials struct {
	Username string
	Password string
}

// Result is what the authentication endpoint returns on success.
type Result struct {
	Identity domain.Identity
	Token    string
}

// Authenticator submits credentials to the authentication endpoint. A
// rejection is reported as *RejectedError; any other error is a transport
// failure.
type Authenticator interface {
	Authenticate(ctx context.Context, creds Credentials) (*Result, error)
}

// IdentityStore persists the identity after a confirmed login.
type IdentityStore interface {
	Save(ctx context.Context, id domain.Identity, token string) error
}

// Outcome is the result of one Attempt.
type Outcome struct {
	Result *Result
	Err    error
}

// Flow is the login form controller. Begin and Complete must be called from
// the surface's event loop; Attempt may run anywhere.
type Flow struct {
	mu    sync.Mutex
	state State

	form  view.LoginForm
	auth  Authenticator
	store IdentityStore
	sched Scheduler
	log   zerolog.Logger
}

func NewFlow(form view.LoginForm, auth Authenticator, store IdentityStore, sched Scheduler, log zerolog.Logger) *Flow {
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Flow{form: form, auth: auth, store: store, sched: sched, log: log}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Flow) setState(s State) {
	f.mu.Lock()
	prev := f.state
	f.state = s
	f.mu.Unlock()
	f.log.Debug().Stringer("from", prev).Stringer("to", s).Msg("login state")
}

// Begin moves Idle → Submitting: hides the previous error, disables the
// submit control and shows the loader.
func (f *Flow) Begin() error {
	f.mu.Lock()
	if f.state != Idle {
		f.mu.Unlock()
		return ErrSubmitDisabled
	}
	f.state = Submitting
	f.mu.Unlock()
	f.log.Debug().Stringer("from", Idle).Stringer("to", Submitting).Msg("login state")

	f.form.HideError()
	f.form.SetSubmitEnabled(false)
	f.form.SetLoading(true)
	return nil
}

// Attempt calls the authenticator. It touches no UI state.
func (f *Flow) Attempt(ctx context.Context, creds Credentials) Outcome {
	res, err := f.auth.Authenticate(ctx, creds)
	if err == nil && res == nil {
		err = errors.New("login: empty authentication result")
	}
	return Outcome{Result: res, Err: err}
}

// Complete applies an outcome and schedules the reset back to Idle.
func (f *Flow) Complete(ctx context.Context, o Outcome) {
	defer f.sched.AfterFunc(ResetDelay, f.reset)

	if o.Err == nil {
		if err := f.store.Save(ctx, o.Result.Identity, o.Result.Token); err != nil {
			f.log.Error().Err(err).Msg("store identity")
			f.fail(MsgConnectionError)
			return
		}
		f.setState(Succeeded)
		f.form.SetLoading(false)
		f.form.SetLabel(LabelSuccess)
		f.sched.AfterFunc(SuccessRedirectDelay, func() {
			f.form.Navigate(view.RouteDashboard)
		})
		return
	}

	var rejected *RejectedError
	if errors.As(o.Err, &rejected) {
		f.log.Info().Int("status", rejected.Status).Msg("login rejected")
		f.fail(rejected.Message())
		return
	}

	f.log.Warn().Err(o.Err).Msg("login request failed")
	f.fail(MsgConnectionError)
}

// Submit runs a whole submission synchronously. The delayed steps still
// run on the scheduler.
func (f *Flow) Submit(ctx context.Context, creds Credentials) error {
	if err := f.Begin(); err != nil {
		return err
	}
	f.Complete(ctx, f.Attempt(ctx, creds))
	return nil
}

func (f *Flow) fail(msg string) {
	f.setState(Failed)
	f.form.ShowError(msg)
	f.form.SetShake(true)
	f.sched.AfterFunc(ShakeDuration, func() {
		f.form.SetShake(false)
	})
}

func (f *Flow) reset() {
	f.form.SetLabel(view.LabelSignIn)
	f.form.SetLoading(false)
	f.form.SetSubmitEnabled(true)
	f.setState(Idle)
}
