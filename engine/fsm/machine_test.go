package fsm

import (
	"strings"
	"testing"
)

type door struct {
	locked bool
	log    []string
}

const doorConfig = `
initial = "closed"

[states.closed]
on_enter = ["Record"]
transitions = [
  { trigger = "Open", target = "open", guard = "Unlocked" },
]

[states.open]
on_enter = ["Record"]
on_exit = ["Leaving"]
transitions = [
  { trigger = "Close", target = "closed" },
  { trigger = "Open", target = "open" },
]
`

func newDoorMachine(t *testing.T) (*Machine[*door], *door) {
	t.Helper()
	m := NewMachine[*door]()
	m.RegisterGuard("Unlocked", func(d *door) bool { return !d.locked })
	m.RegisterAction("Record", func(d *door) { d.log = append(d.log, "enter") })
	m.RegisterAction("Leaving", func(d *door) { d.log = append(d.log, "exit") })
	if err := m.LoadConfig([]byte(doorConfig)); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	d := &door{}
	if err := m.Init(d); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return m, d
}

func TestInitEntersInitialState(t *testing.T) {
	m, d := newDoorMachine(t)
	if m.State() != "closed" {
		t.Errorf("State() = %q, want closed", m.State())
	}
	if len(d.log) != 1 || d.log[0] != "enter" {
		t.Errorf("log = %v, want [enter]", d.log)
	}
}

func TestGuardBlocksTransition(t *testing.T) {
	m, d := newDoorMachine(t)
	d.locked = true

	if m.HandleEvent(d, "Open") {
		t.Error("HandleEvent returned true for a blocked guard")
	}
	if !m.Is("closed") {
		t.Errorf("State() = %q, want closed", m.State())
	}

	d.locked = false
	if !m.Can(d, "Open") {
		t.Error("Can(Open) = false after unlock")
	}
	if !m.HandleEvent(d, "Open") || !m.Is("open") {
		t.Errorf("State() = %q, want open", m.State())
	}
}

func TestExitRunsBeforeEnter(t *testing.T) {
	m, d := newDoorMachine(t)
	m.HandleEvent(d, "Open")
	d.log = nil

	m.HandleEvent(d, "Close")
	want := []string{"exit", "enter"}
	if strings.Join(d.log, ",") != strings.Join(want, ",") {
		t.Errorf("log = %v, want %v", d.log, want)
	}
}

func TestSelfTransitionConsumedSilently(t *testing.T) {
	m, d := newDoorMachine(t)
	m.HandleEvent(d, "Open")
	d.log = nil

	if !m.HandleEvent(d, "Open") {
		t.Error("self transition not reported as handled")
	}
	if len(d.log) != 0 {
		t.Errorf("self transition ran actions: %v", d.log)
	}
}

func TestUnknownEventIgnored(t *testing.T) {
	m, d := newDoorMachine(t)
	if m.HandleEvent(d, "Knock") {
		t.Error("unknown event handled")
	}
}

func TestReset(t *testing.T) {
	m, d := newDoorMachine(t)
	m.HandleEvent(d, "Open")
	d.log = nil

	if err := m.Reset(d); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if !m.Is("closed") {
		t.Errorf("State() = %q, want closed", m.State())
	}
	if strings.Join(d.log, ",") != "exit,enter" {
		t.Errorf("log = %v, want [exit enter]", d.log)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{"empty", ``, "no states"},
		{"bad toml", `initial = `, "unmarshal"},
		{"unknown target", "initial = \"a\"\n[states.a]\ntransitions = [{ trigger = \"x\", target = \"b\" }]", "unknown target"},
		{"unknown guard", "initial = \"a\"\n[states.a]\ntransitions = [{ trigger = \"x\", target = \"a\", guard = \"nope\" }]", "unknown guard"},
		{"unknown action", "initial = \"a\"\n[states.a]\non_enter = [\"nope\"]", "unknown enter action"},
		{"missing initial", "initial = \"z\"\n[states.a]", "initial state"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine[*door]()
			err := m.LoadConfig([]byte(tt.config))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadConfig error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
