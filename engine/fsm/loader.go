package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML graph and populates the Machine
// Guards and actions must be registered before loading; every reference is validated
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	if len(config.States) == 0 {
		return fmt.Errorf("FSM config defines no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.names = make(map[string]StateID)
	m.activeStateID = StateNone

	// Sorted names give stable IDs across loads
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)
	for i, name := range names {
		m.AddState(StateID(i+1), name)
	}

	for _, name := range names {
		sc := config.States[name]
		node := m.nodes[m.names[name]]
		if sc == nil {
			continue
		}

		for _, actionName := range sc.OnEnter {
			fn, ok := m.actionReg[actionName]
			if !ok {
				return fmt.Errorf("state '%s': unknown enter action '%s'", name, actionName)
			}
			node.OnEnter = append(node.OnEnter, fn)
		}
		for _, actionName := range sc.OnExit {
			fn, ok := m.actionReg[actionName]
			if !ok {
				return fmt.Errorf("state '%s': unknown exit action '%s'", name, actionName)
			}
			node.OnExit = append(node.OnExit, fn)
		}

		for _, tc := range sc.Transitions {
			if tc.Trigger == "" {
				return fmt.Errorf("state '%s': transition without trigger", name)
			}
			targetID, ok := m.names[tc.Target]
			if !ok {
				return fmt.Errorf("state '%s': unknown target '%s'", name, tc.Target)
			}
			var guard GuardFunc[T]
			if tc.Guard != "" {
				if guard, ok = m.guardReg[tc.Guard]; !ok {
					return fmt.Errorf("state '%s': unknown guard '%s'", name, tc.Guard)
				}
			}
			if err := m.AddTransition(node.ID, Transition[T]{
				TargetID: targetID,
				Event:    Event(tc.Trigger),
				Guard:    guard,
			}); err != nil {
				return fmt.Errorf("state '%s': %w", name, err)
			}
		}
	}

	initialID, ok := m.names[config.InitialState]
	if !ok {
		return fmt.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID

	return nil
}
