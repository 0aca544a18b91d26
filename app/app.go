// Package app wires the session, renderer, input and audio to a tcell screen and drives the frame loop
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vinyl-slasher/audio"
	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/config"
	"github.com/lixenwraith/vinyl-slasher/core"
	"github.com/lixenwraith/vinyl-slasher/engine"
	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/input"
	"github.com/lixenwraith/vinyl-slasher/ledger"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/render"
	"github.com/lixenwraith/vinyl-slasher/spawn"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

// Options configure an App; only Config is required
type Options struct {
	Config *config.Config
	Logger *log.Logger

	// Screen defaults to the terminal
	Screen tcell.Screen
	// Clock defaults to the wall clock
	Clock engine.TimeSource
	// Ephemeral keeps unlocks in memory only
	Ephemeral bool
	// Silent skips speaker initialization
	Silent bool
}

// App owns every runtime collaborator of one play session
type App struct {
	cfg    *config.Config
	logger *log.Logger
	screen tcell.Screen
	clock  engine.TimeSource

	loop     *engine.Loop
	session  *game.Session
	catalog  *catalog.Catalog
	store    ledger.Store
	ledger   *ledger.Ledger
	sounds   *audio.SoundManager
	art      *render.ArtworkCache
	renderer *render.Renderer
	input    *input.Machine
	grid     vmath.Grid

	// Collection overlay; nil while closed
	collection *render.CollectionView
	sortOrder  catalog.SortOrder

	closed bool
}

// New opens the screen, the ledger and the speaker and builds a session in the menu phase
func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("app requires a config")
	}
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		cfg:    cfg,
		logger: logger.With("component", "app"),
		clock:  opts.Clock,
		grid:   cfg.Grid(),
	}
	if a.clock == nil {
		a.clock = engine.NewTimeProvider()
	}

	cat, err := cfg.OpenCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	a.catalog = cat

	if opts.Ephemeral {
		a.store = ledger.NewMemoryStore()
	} else if a.store, err = cfg.OpenStore(); err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	a.ledger = ledger.Open(a.store, logger)

	kt, err := cfg.KeyTable()
	if err != nil {
		a.store.Close()
		return nil, fmt.Errorf("invalid key bindings: %w", err)
	}
	a.input = input.NewMachine(kt, a.grid)

	a.sounds = audio.NewSoundManager(cfg.AudioConfig(), logger)
	if !opts.Silent {
		if err := a.sounds.Initialize(); err != nil {
			if errors.Is(err, audio.ErrDisabled) {
				a.logger.Debug("audio disabled")
			} else {
				a.logger.Warn("audio unavailable, continuing silent", "err", err)
			}
		}
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(a.clock.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)

	a.loop = engine.NewLoop(a.clock.Now())
	a.session, err = game.NewSession(game.Deps{
		Scheduler: a.loop,
		Catalog:   cat,
		Ledger:    a.ledger,
		Rand:      rng,
		Spawner:   spawn.NewSpawner(rng, cat),
		Sounds:    a.sounds,
		Logger:    logger,
	})
	if err != nil {
		a.sounds.Cleanup()
		a.store.Close()
		return nil, err
	}

	if err := a.openScreen(opts.Screen); err != nil {
		a.session.Close()
		a.sounds.Cleanup()
		a.store.Close()
		return nil, err
	}

	a.art = render.NewArtworkCache(parameter.ArtworkThumbSize, logger)
	a.art.Load(cfg.Catalog.AssetsDir, cat.All())
	a.renderer = render.NewRenderer(a.screen, a.grid, a.art)
	a.resize()

	if m := cfg.Mode(); m != game.ModeNone {
		a.session.SelectMode(m)
	}

	a.logger.Info("ready",
		"albums", cat.Len(),
		"unlocked", a.ledger.Len(),
		"backend", cfg.Ledger.Backend,
		"ephemeral", opts.Ephemeral,
		"audio", a.sounds.Initialized(),
	)
	return a, nil
}

func (a *App) openScreen(screen tcell.Screen) error {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashReset(screen.Fini)

	screen.SetStyle(render.StyleOf(core.MustHex(parameter.ColorHUD), core.MustHex(parameter.ColorBackground)))
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	a.screen = screen
	return nil
}

// Run pumps events and frames until quit, context cancellation or a closed screen
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, parameter.InputQueueSize)
	done := make(chan struct{})
	defer close(done)

	// Input polling runs on its own goroutine; PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	frameTicker := time.NewTicker(time.Second / time.Duration(a.cfg.Game.FPS))
	defer frameTicker.Stop()

	a.Step()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.Handle(a.input.Process(ev)) {
				return nil
			}
		case <-frameTicker.C:
			a.Step()
		}
	}
}

// Step advances the loop to the current clock time and draws one frame
func (a *App) Step() {
	a.loop.Advance(a.clock.Now())
	a.renderer.Draw(render.Frame{
		Session:    a.session.View(),
		Collection: a.collection,
	})
}

// Handle applies one intent and reports whether the app should quit
func (a *App) Handle(in *input.Intent) bool {
	if in == nil {
		return false
	}

	switch in.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		a.screen.Sync()
		a.resize()

	case input.IntentToggleMute:
		a.sounds.ToggleMute()

	case input.IntentPointerMove:
		a.session.PointerMove(in.Point)
	case input.IntentPointerLeave:
		a.session.PointerLeave()

	case input.IntentSelectScoreTarget:
		a.session.SelectMode(game.ModeScoreTarget)
	case input.IntentSelectTimeLimit:
		a.session.SelectMode(game.ModeTimeLimit)
	case input.IntentStart:
		a.session.Start()
	case input.IntentPlayAgain:
		a.session.PlayAgain()
	case input.IntentMenu:
		a.session.ReturnToMenu()

	case input.IntentEscape:
		switch {
		case a.collection != nil:
			a.closeCollection()
		case a.session.Phase() == game.PhasePlaying:
			a.session.Abort()
		case a.session.Phase() == game.PhaseReady:
			a.session.ReturnToMenu()
		}

	case input.IntentToggleCollection:
		if a.collection != nil {
			a.closeCollection()
		} else if a.session.Phase() != game.PhasePlaying {
			a.openCollection()
		}
	case input.IntentToggleSort:
		a.sortOrder = toggleSort(a.sortOrder)
		a.refreshCollection()
	case input.IntentScroll:
		if a.collection != nil {
			last := max(len(a.collection.Entries)-1, 0)
			a.collection.Scroll = min(max(a.collection.Scroll+int(in.ScrollDir), 0), last)
		}
	case input.IntentErase:
		if a.collection != nil {
			a.collection.ConfirmErase = true
			a.input.SetMode(input.ModeConfirm)
		}
	case input.IntentConfirm:
		if err := a.ledger.Clear(); err != nil {
			a.logger.Error("failed to erase collection", "err", err)
		} else {
			a.logger.Info("collection erased")
		}
		a.endConfirm()
	case input.IntentCancel:
		a.endConfirm()
	}
	return false
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.input.SetSize(w, h)
	a.session.Resize(a.grid.Surface(w, h))
}

func (a *App) openCollection() {
	a.collection = &render.CollectionView{}
	a.refreshCollection()
	a.input.SetMode(input.ModeCollection)
}

func (a *App) closeCollection() {
	a.collection = nil
	a.input.SetMode(input.ModePlay)
}

func (a *App) refreshCollection() {
	if a.collection == nil {
		return
	}
	view := Collection(a.catalog, a.ledger, a.sortOrder)
	view.Scroll = a.collection.Scroll
	view.ConfirmErase = a.collection.ConfirmErase
	*a.collection = view
}

func (a *App) endConfirm() {
	if a.collection == nil {
		a.input.SetMode(input.ModePlay)
		return
	}
	a.collection.ConfirmErase = false
	a.refreshCollection()
	a.input.SetMode(input.ModeCollection)
}

// Session exposes the running session
func (a *App) Session() *game.Session {
	return a.session
}

// Ledger exposes the unlock ledger
func (a *App) Ledger() *ledger.Ledger {
	return a.ledger
}

// Close stops the session, releases the speaker and the store, and restores the terminal
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true

	a.session.Close()
	a.sounds.Cleanup()
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close ledger store", "err", err)
	}
	a.screen.Fini()
	core.SetCrashReset(nil)
	a.logger.Info("closed", "unlocked", a.ledger.Len())
}
