package input

import "github.com/lixenwraith/vinyl-slasher/vmath"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+C
	IntentEscape     // Esc: abort a run or close an overlay
	IntentResize     // Terminal resize event
	IntentToggleMute // Ctrl+S

	// Session flow
	IntentSelectScoreTarget // 1
	IntentSelectTimeLimit   // 2
	IntentStart             // Enter, Space
	IntentPlayAgain         // r
	IntentMenu              // m

	// Collection overlay
	IntentToggleCollection // c
	IntentToggleSort       // s
	IntentErase            // x, asks for confirmation
	IntentConfirm          // y while confirming
	IntentCancel           // n, Esc while confirming
	IntentScroll           // j/k, arrows, wheel

	// Pointer
	IntentPointerMove  // Mouse motion on the play surface
	IntentPointerLeave // Pointer on the HUD, off screen, or focus lost
)

// ScrollDir for overlay navigation
type ScrollDir int8

const (
	ScrollNone ScrollDir = 0
	ScrollUp   ScrollDir = -1
	ScrollDown ScrollDir = 1
)

// Intent represents a parsed semantic action
// Pure data struct with no session or screen dependencies
type Intent struct {
	Type      IntentType
	ScrollDir ScrollDir
	Point     vmath.Vec2 // Surface point for IntentPointerMove
	Width     int        // Cells, for IntentResize
	Height    int
}
