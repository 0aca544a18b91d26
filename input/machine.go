package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Machine is the input parser
// Turns tcell events into semantic Intents for the current InputMode
type Machine struct {
	mode     InputMode
	keyTable *KeyTable
	grid     vmath.Grid

	width  int
	height int
}

// NewMachine creates a parser with the given bindings; nil selects the defaults
func NewMachine(kt *KeyTable, grid vmath.Grid) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{
		mode:     ModePlay,
		keyTable: kt,
		grid:     grid,
	}
}

// SetMode updates the parser's mode context
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the current parser mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// SetSize records the screen size used to detect off-screen pointer samples
func (m *Machine) SetSize(w, h int) {
	m.width, m.height = w, h
}

// Process parses a tcell event and returns an Intent
// Returns nil for events that map to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		m.SetSize(w, h)
		return &Intent{Type: IntentResize, Width: w, Height: h}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			return &Intent{Type: IntentPointerLeave}
		}
	case *tcell.EventError:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	switch m.mode {
	case ModeConfirm:
		return m.processConfirm(ev)
	case ModeCollection:
		return lookup(ev, m.keyTable.CollectionKeys, m.keyTable.CollectionRunes)
	}
	return lookup(ev, m.keyTable.PlayKeys, m.keyTable.PlayRunes)
}

func lookup(ev *tcell.EventKey, keys map[tcell.Key]KeyEntry, runes map[rune]KeyEntry) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	if ev.Key() == tcell.KeyRune {
		entry, ok = runes[ev.Rune()]
	} else {
		entry, ok = keys[ev.Key()]
	}
	if !ok || entry.IntentType == IntentNone {
		return nil
	}
	return &Intent{Type: entry.IntentType, ScrollDir: entry.ScrollDir}
}

// processConfirm answers the erase prompt; bindings are fixed
func (m *Machine) processConfirm(ev *tcell.EventKey) *Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return &Intent{Type: IntentQuit}
	case tcell.KeyEscape:
		return &Intent{Type: IntentCancel}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'y', 'Y':
			return &Intent{Type: IntentConfirm}
		case 'n', 'N':
			return &Intent{Type: IntentCancel}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	btn := ev.Buttons()
	if btn&(tcell.WheelUp|tcell.WheelDown) != 0 {
		if m.mode != ModeCollection {
			return nil
		}
		dir := ScrollDown
		if btn&tcell.WheelUp != 0 {
			dir = ScrollUp
		}
		return &Intent{Type: IntentScroll, ScrollDir: dir}
	}

	x, y := ev.Position()
	if !m.onSurface(x, y) {
		return &Intent{Type: IntentPointerLeave}
	}
	return &Intent{Type: IntentPointerMove, Point: m.grid.CellCenter(x, y)}
}

// onSurface reports whether a cell lies on the play surface; unknown size accepts any non-negative cell
func (m *Machine) onSurface(x, y int) bool {
	if x < 0 || y < m.grid.Top {
		return false
	}
	if m.width > 0 && m.height > 0 {
		return x < m.width && y < m.height
	}
	return true
}
