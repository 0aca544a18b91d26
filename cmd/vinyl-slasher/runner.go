package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/vinyl-slasher/app"
	"github.com/lixenwraith/vinyl-slasher/catalog"
	"github.com/lixenwraith/vinyl-slasher/config"
	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/ledger"
	"github.com/lixenwraith/vinyl-slasher/render"
)

// Runner carries the shared state of every subcommand
type Runner struct {
	logger *log.Logger
	output io.Writer
}

// RunnerOpts configure a Runner; nil fields use stderr logging and stdout output
type RunnerOpts struct {
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a runner
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = newLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	return &Runner{logger: opts.Logger, output: opts.Output}
}

func (r *Runner) writePlainln(format string, args ...any) {
	fmt.Fprintf(r.output, format+"\n", args...)
}

func (r *Runner) writeJSON(v any) error {
	enc := json.NewEncoder(r.output)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// loadConfig reads --config, falling back to the per-user default path
func (r *Runner) loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	explicit := cmd.IsSet("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("config loaded", "path", path, "backend", cfg.Ledger.Backend)
	return cfg, nil
}

// openLedger opens the configured store and the ledger on it; the caller closes the store
func (r *Runner) openLedger(cfg *config.Config) (*ledger.Ledger, ledger.Store, error) {
	store, err := cfg.OpenStore()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open ledger: %w", err)
	}
	return ledger.Open(store, r.logger), store, nil
}

// Play opens the screen and runs the game until quit
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if mode := cmd.String("mode"); mode != "" {
		if _, err := game.ParseMode(mode); err != nil {
			return err
		}
		cfg.Game.Mode = mode
	}

	logger, logFile, err := setupLogging(cfg.Log.File, cmd.Bool("debug") || cfg.DebugLogging())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	a, err := app.New(app.Options{
		Config:    cfg,
		Logger:    logger,
		Ephemeral: cmd.Bool("ephemeral"),
	})
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Run(ctx)
}

type collectionEntry struct {
	Album    string `json:"album"`
	Artist   string `json:"artist"`
	Tag      string `json:"tag,omitempty"`
	Rank     int    `json:"rank,omitempty"`
	File     string `json:"file"`
	Unlocked bool   `json:"unlocked"`
}

// CollectionList prints every album with its unlock state
func (r *Runner) CollectionList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	order, err := catalog.ParseSortOrder(cmd.String("sort"))
	if err != nil {
		return err
	}
	cat, err := cfg.OpenCatalog()
	if err != nil {
		return err
	}
	l, store, err := r.openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	view := app.Collection(cat, l, order)

	if cmd.Bool("json") {
		out := make([]collectionEntry, len(view.Entries))
		for i, e := range view.Entries {
			out[i] = collectionEntry{
				Album:    e.Album.Album,
				Artist:   e.Album.Artist,
				Tag:      e.Album.Tag,
				Rank:     e.Album.Rank,
				File:     e.Album.File,
				Unlocked: e.Unlocked,
			}
		}
		return r.writeJSON(out)
	}

	r.writePlainln("%d / %d unlocked (sort: %s)", view.Unlocked, view.Total, order)
	for i, e := range view.Entries {
		mark := " "
		if e.Unlocked {
			mark = "✓"
		}
		r.writePlainln("%s %3d. %s", mark, i+1, render.EntryLabel(e))
	}
	return nil
}

// CollectionClear erases every unlock
func (r *Runner) CollectionClear(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	l, store, err := r.openLedger(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	n := l.Len()
	if err := l.Clear(); err != nil {
		return err
	}
	r.logger.Info("collection cleared", "removed", n)
	r.writePlainln("✓ Removed %d unlocked album(s)", n)
	return nil
}

// Catalog prints the album manifest
func (r *Runner) Catalog(ctx context.Context, cmd *cli.Command) error {
	cfg, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, err := cfg.OpenCatalog()
	if err != nil {
		return err
	}
	albums := cat.Sorted(catalog.SortByRank)

	if cmd.Bool("json") {
		return r.writeJSON(albums)
	}
	for _, a := range albums {
		rank := "-"
		if a.Rank > 0 {
			rank = fmt.Sprint(a.Rank)
		}
		r.writePlainln("%4s  %s - %s  [%s]  %s", rank, a.Artist, a.Album, a.Tag, a.File)
	}
	r.writePlainln("%d albums", cat.Len())
	return nil
}

// InitConfig writes the default config file
func (r *Runner) InitConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = config.DefaultPath()
	}
	if err := config.CreateConfigFile(path); err != nil {
		return err
	}
	r.writePlainln("✓ Wrote %s", path)
	return nil
}
