package game

import (
	"fmt"
	"strings"
)

// Mode selects the termination rule of a session
type Mode int

const (
	ModeNone Mode = iota
	ModeScoreTarget
	ModeTimeLimit
)

func (m Mode) String() string {
	switch m {
	case ModeScoreTarget:
		return "score-target"
	case ModeTimeLimit:
		return "time-limit"
	default:
		return "none"
	}
}

// ParseMode accepts the String form plus the short aliases "score" and "time"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ModeNone, nil
	case "score-target", "score", "points":
		return ModeScoreTarget, nil
	case "time-limit", "time":
		return ModeTimeLimit, nil
	}
	return ModeNone, fmt.Errorf("unknown mode %q", s)
}

// Phase is the lifecycle state of a session, named as in session.toml
type Phase string

const (
	PhaseModeUnselected Phase = "mode-unselected"
	PhaseReady          Phase = "ready"
	PhasePlaying        Phase = "playing"
	PhaseGameOver       Phase = "game-over"
)

const (
	eventSelectMode = "SelectMode"
	eventStart      = "Start"
	eventFinish     = "Finish"
	eventPlayAgain  = "PlayAgain"
	eventMenu       = "Menu"
	eventAbort      = "Abort"
)
