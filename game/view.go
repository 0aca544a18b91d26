package game

import (
	"time"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/physics"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// View is a read-only copy of session state taken once per rendered frame
type View struct {
	SessionID string
	Phase     Phase
	Mode      Mode
	Score     int
	Goal      int
	Lives     int
	MaxLives  int
	Elapsed   time.Duration
	FinalTime time.Duration
	Surface   physics.Surface

	Targets   []component.Target
	Particles []component.Particle
	Trail     []vmath.Vec2
	NewlyCut  []*catalog.Album
}

// View snapshots the session for the renderer
func (s *Session) View() View {
	v := View{
		SessionID: s.id,
		Phase:     s.Phase(),
		Mode:      s.mode,
		Score:     s.score,
		Goal:      parameter.ScoreTargetGoal,
		Lives:     s.lives,
		MaxLives:  parameter.StartingLives,
		Elapsed:   s.elapsed,
		FinalTime: s.finalTime,
		Surface:   s.surface,
		Trail:     s.trail.Points(),
		NewlyCut:  s.NewlyCut(),
		Particles: append([]component.Particle(nil), s.particles...),
	}
	v.Targets = make([]component.Target, 0, len(s.targets))
	for _, t := range s.targets {
		v.Targets = append(v.Targets, *t)
	}
	return v
}

// GameOver reports whether the run has ended
func (v View) GameOver() bool { return v.Phase == PhaseGameOver }

// Remaining is the time-limit countdown, floored at zero
func (v View) Remaining() time.Duration {
	r := parameter.TimeLimit - v.Elapsed
	if r < 0 {
		return 0
	}
	return r
}

// Clock is the duration the HUD shows: elapsed, or remaining in time-limit mode
func (v View) Clock() time.Duration {
	if v.GameOver() {
		return v.FinalTime
	}
	if v.Mode == ModeTimeLimit {
		return v.Remaining()
	}
	return v.Elapsed
}
