package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its enter actions
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	m.activeStateID = node.ID
	m.run(ctx, node.OnEnter)
	return nil
}

// HandleEvent fires the first transition of the active state matching event
// whose guard passes; returns true if a transition matched
// A transition onto the active state is consumed without exit or enter actions
func (m *Machine[T]) HandleEvent(ctx T, event Event) bool {
	if m.activeStateID == StateNone {
		return false
	}
	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}
	if m.transitioning {
		panic(fmt.Sprintf("FSM: Re-entrant transition to '%s'", target.Name))
	}
	m.transitioning = true
	defer func() { m.transitioning = false }()

	m.run(ctx, m.nodes[m.activeStateID].OnExit)
	m.activeStateID = targetID
	m.run(ctx, target.OnEnter)
}

func (m *Machine[T]) run(ctx T, actions []ActionFunc[T]) {
	for _, fn := range actions {
		fn(ctx)
	}
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		m.run(ctx, node.OnExit)
	}
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// StateID returns the active state, StateNone before Init
func (m *Machine[T]) StateID() StateID {
	return m.activeStateID
}

// State returns the active state name
func (m *Machine[T]) State() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// Is reports whether the named state is active
func (m *Machine[T]) Is(name string) bool {
	id, ok := m.names[name]
	return ok && id == m.activeStateID
}

// Can reports whether event would fire a transition from the active state
func (m *Machine[T]) Can(ctx T, event Event) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, trans := range node.Transitions {
		if trans.Event == event && (trans.Guard == nil || trans.Guard(ctx)) {
			return true
		}
	}
	return false
}
