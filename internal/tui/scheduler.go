package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// callMsg runs a deferred login-flow callback on the program loop.
type callMsg struct {
	fn func()
}

type pendingCall struct {
	after time.Duration
	fn    func()
}

// loopScheduler collects the flow's delayed steps and hands them back to
// Bubble Tea as tick commands, so every form mutation happens inside Update.
type loopScheduler struct {
	pending []pendingCall
	tick    func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{tick: tea.Tick}
}

func (s *loopScheduler) AfterFunc(d time.Duration, fn func()) {
	s.pending = append(s.pending, pendingCall{after: d, fn: fn})
}

// drain turns the collected callbacks into commands.
func (s *loopScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(s.pending))
	for _, p := range s.pending {
		fn := p.fn
		cmds = append(cmds, s.tick(p.after, func(time.Time) tea.Msg {
			return callMsg{fn: fn}
		}))
	}
	s.pending = nil
	return tea.Batch(cmds...)
}
