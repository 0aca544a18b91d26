// Package game runs the arcade session: mode selection, the per-frame update,
// scoring, termination and album rewards
package game

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/lixenwraith/vinyl-slasher/blade"
	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/component"
	"github.com/lixenwraith/vinyl-slasher/engine"
	"github.com/lixenwraith/vinyl-slasher/engine/fsm"
	"github.com/lixenwraith/vinyl-slasher/ledger"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/physics"
	"github.com/lixenwraith/vinyl-slasher/spawn"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

//go:embed session.toml
var sessionGraph []byte

// Sounds receives gameplay cues; the audio package satisfies it
type Sounds interface {
	PlaySlice()
	PlayUnlock()
	PlayMiss()
	PlayGameOver()
}

type silent struct{}

func (silent) PlaySlice()    {}
func (silent) PlayUnlock()   {}
func (silent) PlayMiss()     {}
func (silent) PlayGameOver() {}

// TargetSource produces targets; *spawn.Spawner is the production implementation
type TargetSource interface {
	Spawn(surface physics.Surface) (*component.Target, bool)
	BurstSize() int
}

// Deps are the collaborators of a session; Scheduler, Catalog and Ledger are required
type Deps struct {
	Scheduler engine.Scheduler
	Catalog   *catalog.Catalog
	Ledger    *ledger.Ledger
	Rand      vmath.Source
	Spawner   TargetSource
	Sounds    Sounds
	Logger    *log.Logger
}

// Session owns all game state; the renderer only ever sees a View
type Session struct {
	sched   engine.Scheduler
	catalog *catalog.Catalog
	ledger  *ledger.Ledger
	rng     vmath.Source
	spawner TargetSource
	cadence *spawn.Cadence
	sounds  Sounds
	logger  *log.Logger
	runLog  *log.Logger
	machine *fsm.Machine[*Session]

	mode        Mode
	pendingMode Mode
	surface     physics.Surface

	id        string
	score     int
	lives     int
	start     time.Time
	elapsed   time.Duration
	finalTime time.Duration

	targets   []*component.Target
	particles []component.Particle
	trail     *blade.Trail
	newlyCut  []*catalog.Album

	// Ledger contents when the run started, for the guaranteed unlock
	preSession map[string]struct{}

	frameHandle engine.Handle
	pollHandle  engine.Handle
	staggered   map[engine.Handle]struct{}

	closed bool
}

// NewSession builds a session in the mode-unselected phase
func NewSession(deps Deps) (*Session, error) {
	if deps.Scheduler == nil || deps.Catalog == nil || deps.Ledger == nil {
		return nil, fmt.Errorf("session requires a scheduler, a catalog and a ledger")
	}
	if deps.Rand == nil {
		deps.Rand = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if deps.Spawner == nil {
		deps.Spawner = spawn.NewSpawner(deps.Rand, deps.Catalog)
	}
	if deps.Sounds == nil {
		deps.Sounds = silent{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	s := &Session{
		sched:     deps.Scheduler,
		catalog:   deps.Catalog,
		ledger:    deps.Ledger,
		rng:       deps.Rand,
		spawner:   deps.Spawner,
		cadence:   spawn.NewCadence(),
		sounds:    deps.Sounds,
		logger:    deps.Logger.With("component", "session"),
		trail:     blade.NewTrail(),
		lives:     parameter.StartingLives,
		staggered: make(map[engine.Handle]struct{}),
		machine:   fsm.NewMachine[*Session](),
	}
	s.runLog = s.logger

	s.registerComponents()
	if err := s.machine.LoadConfig(sessionGraph); err != nil {
		return nil, fmt.Errorf("failed to load session graph: %w", err)
	}
	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("failed to init session: %w", err)
	}
	return s, nil
}

func (s *Session) registerComponents() {
	s.machine.RegisterGuard("ValidMode", func(s *Session) bool {
		return s.pendingMode == ModeScoreTarget || s.pendingMode == ModeTimeLimit
	})
	s.machine.RegisterGuard("ModeChosen", func(s *Session) bool {
		return s.mode != ModeNone
	})
	s.machine.RegisterAction("ClearRun", (*Session).clearRun)
	s.machine.RegisterAction("ResetRun", (*Session).resetRun)
	s.machine.RegisterAction("StartLoop", (*Session).startLoop)
	s.machine.RegisterAction("StopLoop", (*Session).stopLoop)
	s.machine.RegisterAction("Conclude", (*Session).conclude)
}

// === Player actions ===

// SelectMode chooses the session mode from the menu or the ready prompt
func (s *Session) SelectMode(m Mode) bool {
	if s.closed {
		return false
	}
	s.pendingMode = m
	defer func() { s.pendingMode = ModeNone }()
	if !s.machine.HandleEvent(s, eventSelectMode) {
		return false
	}
	s.mode = m
	s.logger.Debug("mode selected", "mode", m)
	return true
}

// Start begins a run from the ready prompt
func (s *Session) Start() bool {
	return s.fire(eventStart)
}

// PlayAgain restarts a finished run with the same mode
func (s *Session) PlayAgain() bool {
	return s.fire(eventPlayAgain)
}

// ReturnToMenu clears the mode from the ready prompt or the game-over screen
func (s *Session) ReturnToMenu() bool {
	return s.fire(eventMenu)
}

// Abort tears a running session down without a game-over
func (s *Session) Abort() bool {
	return s.fire(eventAbort)
}

func (s *Session) fire(ev fsm.Event) bool {
	if s.closed {
		return false
	}
	return s.machine.HandleEvent(s, ev)
}

// Close cancels every pending callback; the session is inert afterwards
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.stopLoop()
	s.closed = true
	s.logger.Debug("session closed", "phase", s.Phase())
}

// PointerMove records a pointer sample while playing
func (s *Session) PointerMove(p vmath.Vec2) {
	if s.closed || !s.playing() {
		return
	}
	s.trail.Push(p)
}

// PointerLeave empties the trail
func (s *Session) PointerLeave() {
	s.trail.Clear()
}

// Resize sets the play surface dimensions in surface units
func (s *Session) Resize(w, h float64) {
	s.surface = physics.Surface{W: w, H: h}
}

// === Accessors ===

func (s *Session) Phase() Phase { return Phase(s.machine.State()) }
func (s *Session) Mode() Mode   { return s.mode }
func (s *Session) Score() int   { return s.score }
func (s *Session) Lives() int   { return s.lives }
func (s *Session) ID() string   { return s.id }

// FinalTime is the recorded run duration, zero until game-over
func (s *Session) FinalTime() time.Duration { return s.finalTime }

// NewlyCut returns the albums unlocked or re-cut during the current run
func (s *Session) NewlyCut() []*catalog.Album {
	return append([]*catalog.Album(nil), s.newlyCut...)
}

func (s *Session) playing() bool {
	return s.machine.Is(string(PhasePlaying))
}

// === FSM actions ===

func (s *Session) clearRun() {
	s.mode = ModeNone
	s.targets = nil
	s.particles = nil
	s.trail.Clear()
	s.preSession = nil
}

func (s *Session) resetRun() {
	s.id = uuid.NewString()
	s.runLog = s.logger.With("session", s.id)

	s.score = 0
	s.lives = parameter.StartingLives
	s.start = s.sched.Now()
	s.elapsed = 0
	s.finalTime = 0
	clear(s.targets)
	s.targets = s.targets[:0]
	s.particles = s.particles[:0]
	s.trail.Clear()
	s.newlyCut = nil
	s.preSession = s.ledger.Snapshot()
	s.cadence.Reset()

	s.runLog.Info("session started", "mode", s.mode, "unlocked", len(s.preSession))
}

func (s *Session) startLoop() {
	s.frameHandle = s.sched.ScheduleFrame(s.frame)
	s.pollHandle = s.sched.Every(parameter.ClockPollInterval, s.poll)
}

func (s *Session) stopLoop() {
	if s.frameHandle != 0 {
		s.sched.Cancel(s.frameHandle)
		s.frameHandle = 0
	}
	if s.pollHandle != 0 {
		s.sched.Cancel(s.pollHandle)
		s.pollHandle = 0
	}
	for h := range s.staggered {
		s.sched.Cancel(h)
	}
	clear(s.staggered)
}

func (s *Session) conclude() {
	s.sounds.PlayGameOver()
	s.runLog.Info("session finished",
		"mode", s.mode,
		"score", s.score,
		"lives", s.lives,
		"final", s.finalTime,
		"newly_cut", len(s.newlyCut),
	)
}
