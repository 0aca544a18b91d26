package game

import (
	"time"

	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/effect"
	"github.com/lixenwraith/vinyl-slasher/engine"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/physics"
	"github.com/lixenwraith/vinyl-slasher/spawn"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// frame is the per-display-frame update, re-armed at its end while playing
func (s *Session) frame(now time.Time) {
	s.frameHandle = 0
	if !s.playing() {
		return
	}
	s.elapsed = now.Sub(s.start)

	if s.cadence.Due(now) {
		s.scheduleBurst()
	}

	s.stepTargets(now)
	if !s.playing() {
		return
	}

	if s.mode == ModeTimeLimit && s.elapsed >= parameter.TimeLimit {
		s.finish(now)
		return
	}

	s.particles = effect.Step(s.particles)

	s.frameHandle = s.sched.ScheduleFrame(s.frame)
}

// poll checks the time limit independently of frame delivery
func (s *Session) poll(now time.Time) {
	if !s.playing() {
		return
	}
	s.elapsed = now.Sub(s.start)
	if s.mode == ModeTimeLimit && s.elapsed >= parameter.TimeLimit {
		s.finish(now)
	}
}

func (s *Session) scheduleBurst() {
	n := s.spawner.BurstSize()
	for i := 0; i < n; i++ {
		var h engine.Handle
		h = s.sched.After(spawn.Stagger(i), func(time.Time) {
			delete(s.staggered, h)
			s.spawnOne()
		})
		s.staggered[h] = struct{}{}
	}
}

func (s *Session) spawnOne() {
	if !s.playing() {
		return
	}
	if t, ok := s.spawner.Spawn(s.surface); ok {
		s.targets = append(s.targets, t)
	}
}

// stepTargets moves, slices and culls targets in spawn order
// A finishing slice stops processing; the remaining targets stay as they were
func (s *Session) stepTargets(now time.Time) {
	kept := s.targets[:0]
	for i, t := range s.targets {
		if t.Sliced {
			continue
		}

		physics.StepTarget(t)

		if s.trail.Cuts(t.Center(), t.Radius) {
			t.Sliced = true
			s.slice(t, now)
			if !s.playing() {
				kept = append(kept, s.targets[i+1:]...)
				break
			}
			continue
		}

		if physics.Escaped(t, s.surface.H) {
			s.miss()
			continue
		}

		kept = append(kept, t)
	}
	clear(s.targets[len(kept):])
	s.targets = kept
}

func (s *Session) slice(t *component.Target, now time.Time) {
	s.score += parameter.SliceScore
	s.particles = effect.Burst(s.particles, s.rng, t.Center())
	s.sounds.PlaySlice()

	if album, ok := t.Album(); ok {
		s.unlock(album)
	}

	if s.mode == ModeScoreTarget && s.score >= parameter.ScoreTargetGoal {
		s.finish(now)
	}
}

func (s *Session) miss() {
	if s.lives > 0 {
		s.lives--
	}
	s.sounds.PlayMiss()
}

// unlock records album in the ledger and the run's newly cut list
// A failed write keeps the in-memory unlock and is only logged
func (s *Session) unlock(album *catalog.Album) {
	if err := s.ledger.Unlock(album.ID()); err != nil {
		s.runLog.Warn("unlock not persisted", "album", album.ID(), "err", err)
	}
	for _, a := range s.newlyCut {
		if a.ID() == album.ID() {
			return
		}
	}
	s.newlyCut = append(s.newlyCut, album)
	s.sounds.PlayUnlock()
	s.runLog.Debug("album cut", "album", album.Album, "artist", album.Artist)
}

// finish records the final metric and moves to game-over
func (s *Session) finish(now time.Time) {
	switch s.mode {
	case ModeScoreTarget:
		s.finalTime = now.Sub(s.start)
	case ModeTimeLimit:
		s.elapsed = parameter.TimeLimit
		s.finalTime = parameter.TimeLimit
		s.guaranteeUnlock()
	}
	s.machine.HandleEvent(s, eventFinish)
}

// guaranteeUnlock force-unlocks one random locked album when the run cut
// nothing that was locked before it started
func (s *Session) guaranteeUnlock() {
	for _, a := range s.newlyCut {
		if _, had := s.preSession[a.ID()]; !had {
			return
		}
	}
	locked := s.ledger.Locked(s.catalog.All())
	if len(locked) == 0 {
		s.runLog.Debug("collection complete, no guaranteed unlock")
		return
	}
	album := vmath.Pick(s.rng, locked)
	s.runLog.Info("guaranteed unlock", "album", album.ID())
	s.unlock(album)
}
