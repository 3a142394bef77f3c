package state

import (
	"errors"
	"testing"
)

// counted is a Phase whose hooks count how often they ran.
type counted struct {
	*Phase
	enters, exits int
}

func newCounted(id string) *counted {
	c := &counted{Phase: NewPhase(id)}
	c.Enter = func() { c.enters++ }
	c.Exit = func() { c.exits++ }
	return c
}

func (c *counted) clear() { c.enters, c.exits = 0, 0 }

func TestBaseStateMachine_EntersInitialPhase(t *testing.T) {
	idle := newCounted("idle")
	var sm StateMachine = NewBaseStateMachine(idle)

	if idle.enters != 1 || idle.exits != 0 {
		t.Errorf("Expected one enter and no exit, got %d and %d", idle.enters, idle.exits)
	}
	if got := sm.GetCurrentState().GetID(); got != "idle" {
		t.Errorf("Expected current phase idle, got %s", got)
	}
}

func TestBaseStateMachine_DeclaredTransition(t *testing.T) {
	open, closed := newCounted("open"), newCounted("closed")
	sm := NewBaseStateMachine(open)
	sm.AddTransition(open, closed, nil)
	open.clear()

	if err := sm.ChangeState(closed); err != nil {
		t.Fatalf("ChangeState should not return an error, but got: %v", err)
	}
	if open.exits != 1 || closed.enters != 1 {
		t.Errorf("Expected open to exit and closed to enter once, got %d and %d", open.exits, closed.enters)
	}
	if sm.GetCurrentState() != State(closed) {
		t.Errorf("Expected current phase closed, got %s", sm.GetCurrentState().GetID())
	}

	// Declared one way only.
	if err := sm.ChangeState(open); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Errorf("Expected ErrTransitionNotAllowed going back, got: %v", err)
	}
}

func TestBaseStateMachine_RejectedTransitionsRunNoHooks(t *testing.T) {
	a, b, c := newCounted("a"), newCounted("b"), newCounted("c")
	sm := NewBaseStateMachine(a)
	sm.AddTransition(a, b, func() bool { return false })
	a.clear()

	cases := []struct {
		name string
		to   *counted
	}{
		{"guarded", b},
		{"undeclared", c},
		{"self", a},
	}
	for _, tc := range cases {
		if err := sm.ChangeState(tc.to); !errors.Is(err, ErrTransitionNotAllowed) {
			t.Errorf("%s: expected ErrTransitionNotAllowed, got: %v", tc.name, err)
		}
		if tc.to.enters != 0 {
			t.Errorf("%s: OnEnter ran %d times", tc.name, tc.to.enters)
		}
	}
	if a.exits != 0 {
		t.Errorf("Expected a never to exit, got %d exits", a.exits)
	}
	if got := sm.GetCurrentState().GetID(); got != "a" {
		t.Errorf("Expected to stay in a, got %s", got)
	}
}

func TestBaseStateMachine_ConditionEvaluatedPerChange(t *testing.T) {
	a, b := newCounted("a"), newCounted("b")
	ready := false
	sm := NewBaseStateMachine(a)
	sm.AddTransition(a, b, func() bool { return ready })

	if err := sm.ChangeState(b); err == nil {
		t.Fatal("Expected the transition to be blocked while not ready")
	}
	ready = true
	if err := sm.ChangeState(b); err != nil {
		t.Fatalf("Expected the transition once ready, got: %v", err)
	}
}

func TestBaseStateMachine_Reset(t *testing.T) {
	active, won := newCounted("active"), newCounted("won")
	sm := NewBaseStateMachine(active)
	sm.AddTransition(active, won, nil)
	if err := sm.ChangeState(won); err != nil {
		t.Fatalf("ChangeState should not return an error, but got: %v", err)
	}
	active.clear()
	won.clear()

	// No won -> active transition is declared; Reset does not need one.
	sm.Reset(active)
	if won.exits != 1 || active.enters != 1 {
		t.Errorf("Expected won to exit and active to enter once, got %d and %d", won.exits, active.enters)
	}
	if got := sm.GetCurrentState().GetID(); got != "active" {
		t.Errorf("Expected current phase active, got %s", got)
	}

	// Resetting onto the current phase re-runs both hooks.
	active.clear()
	sm.Reset(active)
	if active.exits != 1 || active.enters != 1 {
		t.Errorf("Expected a self reset to exit and enter once, got %d and %d", active.exits, active.enters)
	}
}

func TestPhase_WithoutHooks(t *testing.T) {
	p := NewPhase("bare")
	p.OnEnter()
	p.OnExit()

	if p.GetID() != "bare" {
		t.Errorf("Expected ID bare, got %s", p.GetID())
	}
}
