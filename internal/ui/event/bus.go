// Package event dispatches UI events to handlers registered per kind and
// target.
package event

import (
	"context"
	"errors"
	"sync"
)

// Kind is the type of a UI event.
type Kind string

const (
	Load   Kind = "load"
	Click  Kind = "click"
	Input  Kind = "input"
	Submit Kind = "submit"
)

// Event is a single UI interaction. Value carries the clicked section or the
// typed text; Fields carries submitted form values.
type Event struct {
	Kind   Kind
	Target string
	Value  string
	Fields map[string]string

	prevented bool
}

// PreventDefault suppresses the surface's default action for the event.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Handler reacts to an event.
type Handler func(ctx context.Context, ev *Event) error

type key struct {
	kind   Kind
	target string
}

// Bus routes events to handlers. Handlers for the same kind and target run
// in attachment order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[key][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[key][]Handler)}
}

// On attaches h for events of kind on target.
func (b *Bus) On(kind Kind, target string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	k := key{kind, target}
	b.handlers[k] = append(b.handlers[k], h)
}

// Has reports whether any handler is attached for kind on target.
func (b *Bus) Has(kind Kind, target string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[key{kind, target}]) > 0
}

// Dispatch runs every handler attached for the event. A failing handler does
// not stop later ones; all errors are joined.
func (b *Bus) Dispatch(ctx context.Context, ev *Event) error {
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[key{ev.Kind, ev.Target}]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range hs {
		if err := h(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
