package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_AttachmentOrder(t *testing.T) {
	b := NewBus()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		b.On(Click, "nav", func(context.Context, *Event) error {
			order = append(order, i)
			return nil
		})
	}
	b.On(Click, "logout-btn", func(context.Context, *Event) error {
		order = append(order, 99)
		return nil
	})

	require.NoError(t, b.Dispatch(context.Background(), &Event{Kind: Click, Target: "nav", Value: "patients"}))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestBus_JoinsErrorsAndKeepsGoing(t *testing.T) {
	b := NewBus()
	first := errors.New("first")
	second := errors.New("second")
	ran := 0

	b.On(Input, "patient-search", func(context.Context, *Event) error { ran++; return first })
	b.On(Input, "patient-search", func(context.Context, *Event) error { ran++; return nil })
	b.On(Input, "patient-search", func(context.Context, *Event) error { ran++; return second })

	err := b.Dispatch(context.Background(), &Event{Kind: Input, Target: "patient-search"})
	assert.Equal(t, 3, ran)
	assert.ErrorIs(t, err, first)
	assert.ErrorIs(t, err, second)
}

func TestBus_NoHandlers(t *testing.T) {
	b := NewBus()
	assert.False(t, b.Has(Submit, "loginForm"))
	assert.NoError(t, b.Dispatch(context.Background(), &Event{Kind: Submit, Target: "loginForm"}))
}

func TestEvent_PreventDefault(t *testing.T) {
	b := NewBus()
	b.On(Submit, "loginForm", func(_ context.Context, ev *Event) error {
		ev.PreventDefault()
		return nil
	})

	ev := &Event{Kind: Submit, Target: "loginForm"}
	require.NoError(t, b.Dispatch(context.Background(), ev))
	assert.True(t, ev.DefaultPrevented())
}
