package nothofagus

import "fmt"

// LayerTarget receives the layer chosen by an AnimationStateMachine.
// *AnimatedBellota implements it.
type LayerTarget interface {
	SetLayer(layer int)
}

type transitionKey struct {
	from  string
	event string
}

// AnimationStateMachine owns a set of named AnimationStates and drives the
// layer of one bound target. The target's layer is output only: every Update
// overwrites it.
type AnimationStateMachine struct {
	target      LayerTarget
	states      map[string]*AnimationState
	transitions map[transitionKey]string
	current     string
	hasCurrent  bool
}

// NewAnimationStateMachine creates an empty machine bound to target.
func NewAnimationStateMachine(target LayerTarget) *AnimationStateMachine {
	if target == nil {
		panic("nothofagus: animation state machine needs a target")
	}
	return &AnimationStateMachine{
		target:      target,
		states:      make(map[string]*AnimationState),
		transitions: make(map[transitionKey]string),
	}
}

// AddState registers a copy of state under its name. Panics with
// ErrDuplicateRegistration if the name is taken.
func (m *AnimationStateMachine) AddState(state AnimationState) {
	if _, ok := m.states[state.name]; ok {
		fail(ErrDuplicateRegistration, "state %q", state.name)
	}
	s := state
	s.layers = append([]int(nil), state.layers...)
	s.times = append([]float64(nil), state.times...)
	m.states[state.name] = &s
}

// HasState reports whether name is registered.
func (m *AnimationStateMachine) HasState(name string) bool {
	_, ok := m.states[name]
	return ok
}

// State returns a copy of the named state. Panics with ErrUnregisteredState
// if it is not registered.
func (m *AnimationStateMachine) State(name string) AnimationState {
	return *m.mustState(name)
}

func (m *AnimationStateMachine) mustState(name string) *AnimationState {
	s, ok := m.states[name]
	if !ok {
		fail(ErrUnregisteredState, "state %q", name)
	}
	return s
}

// SetState selects the initial state without rewinding it. Panics with
// ErrUnregisteredState if it is not registered.
func (m *AnimationStateMachine) SetState(name string) {
	m.mustState(name)
	m.current = name
	m.hasCurrent = true
}

// AddTransition registers from --event--> to. Both states must already be
// registered (ErrUnregisteredState) and the (from, event) pair must be new
// (ErrDuplicateRegistration).
func (m *AnimationStateMachine) AddTransition(from, event, to string) {
	m.mustState(from)
	m.mustState(to)
	key := transitionKey{from, event}
	if dst, ok := m.transitions[key]; ok {
		fail(ErrDuplicateRegistration, "transition %q --%s--> %q", from, event, dst)
	}
	m.transitions[key] = to
}

// HasTransition reports whether event leads anywhere from the current state.
func (m *AnimationStateMachine) HasTransition(event string) bool {
	if !m.hasCurrent {
		return false
	}
	_, ok := m.transitions[transitionKey{m.current, event}]
	return ok
}

// Transition follows event from the current state and rewinds the
// destination. Returns an error wrapping ErrUnregisteredTransition, and
// leaves the machine unchanged, if no such transition exists.
func (m *AnimationStateMachine) Transition(event string) error {
	if !m.hasCurrent {
		return fmt.Errorf("nothofagus: transition %q with no current state: %w", event, ErrUnregisteredState)
	}
	to, ok := m.transitions[transitionKey{m.current, event}]
	if !ok {
		return fmt.Errorf("nothofagus: transition %q from state %q: %w", event, m.current, ErrUnregisteredTransition)
	}
	m.enter(to)
	return nil
}

// GoToState jumps to name and rewinds it. Panics with ErrUnregisteredState if
// it is not registered.
func (m *AnimationStateMachine) GoToState(name string) {
	m.mustState(name)
	m.enter(name)
}

func (m *AnimationStateMachine) enter(name string) {
	m.current = name
	m.hasCurrent = true
	m.states[name].Reset()
}

// CurrentState returns the current state name, or "" before one is set.
func (m *AnimationStateMachine) CurrentState() string {
	return m.current
}

// Update advances the current state by dt and writes its layer to the
// target. Panics with ErrUnregisteredState if no state has been selected.
func (m *AnimationStateMachine) Update(dt float64) {
	if !m.hasCurrent {
		fail(ErrUnregisteredState, "update with no current state")
	}
	s := m.states[m.current]
	s.Update(dt)
	m.target.SetLayer(s.CurrentLayer())
}

// CurrentLayer returns the layer of the current state.
func (m *AnimationStateMachine) CurrentLayer() int {
	if !m.hasCurrent {
		fail(ErrUnregisteredState, "current layer with no current state")
	}
	return m.states[m.current].CurrentLayer()
}
