package state

import (
	"errors"
	"sync"
)

// StateMachine 状态机接口
type StateMachine interface {
	ChangeState(state State) error
	GetCurrentState() State
	AddTransition(from State, to State, condition func() bool)
	Reset(state State)
}

// State 状态接口
type State interface {
	OnEnter()
	OnExit()
	GetID() string
}

// ErrTransitionNotAllowed is returned when a state transition is not allowed.
var ErrTransitionNotAllowed = errors.New("state transition not allowed")

// BaseStateMachine only moves along declared transitions. A transition with a
// nil condition is always allowed; otherwise the condition must hold.
type BaseStateMachine struct {
	currentState State
	transitions  map[string]map[string]func() bool // fromState -> toState -> condition
	mutex        sync.RWMutex
}

func NewBaseStateMachine(initialState State) *BaseStateMachine {
	machine := &BaseStateMachine{
		currentState: initialState,
		transitions:  make(map[string]map[string]func() bool),
	}
	initialState.OnEnter()
	return machine
}

func (sm *BaseStateMachine) ChangeState(newState State) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	conditions, exists := sm.transitions[sm.currentState.GetID()]
	if !exists {
		return ErrTransitionNotAllowed
	}
	condition, exists := conditions[newState.GetID()]
	if !exists {
		return ErrTransitionNotAllowed
	}
	if condition != nil && !condition() {
		return ErrTransitionNotAllowed
	}

	sm.currentState.OnExit()
	sm.currentState = newState
	sm.currentState.OnEnter()

	return nil
}

func (sm *BaseStateMachine) GetCurrentState() State {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.currentState
}

func (sm *BaseStateMachine) AddTransition(from State, to State, condition func() bool) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	fromID := from.GetID()
	toID := to.GetID()

	if _, exists := sm.transitions[fromID]; !exists {
		sm.transitions[fromID] = make(map[string]func() bool)
	}

	sm.transitions[fromID][toID] = condition
}

// Reset moves to state unconditionally, running the exit and enter hooks.
func (sm *BaseStateMachine) Reset(state State) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.currentState.OnExit()
	sm.currentState = state
	sm.currentState.OnEnter()
}

// Phase is a State identified by name with optional enter/exit hooks.
type Phase struct {
	ID    string
	Enter func()
	Exit  func()
}

// NewPhase creates a Phase without hooks.
func NewPhase(id string) *Phase {
	return &Phase{ID: id}
}

func (p *Phase) GetID() string {
	return p.ID
}

func (p *Phase) OnEnter() {
	if p.Enter != nil {
		p.Enter()
	}
}

func (p *Phase) OnExit() {
	if p.Exit != nil {
		p.Exit()
	}
}
