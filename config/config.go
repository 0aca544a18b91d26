// Package config loads the TOML configuration with environment overrides
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/vinyl-slasher/audio"
	"github.com/lixenwraith/vinyl-slasher/game"
	"github.com/lixenwraith/vinyl-slasher/input"
	"github.com/lixenwraith/vinyl-slasher/parameter"
	"github.com/lixenwraith/vinyl-slasher/vmath"
)

//go:embed default.toml
var defaultConf []byte

// EnvPrefix prefixes every environment override
const EnvPrefix = "VINYL_"

const appName = "vinyl-slasher"

// Ledger backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the application configuration
type Config struct {
	DataDir string `toml:"data_dir" env:"DATA_DIR"`

	Surface SurfaceConfig   `toml:"surface" envPrefix:"SURFACE_"`
	Game    GameConfig      `toml:"game" envPrefix:"GAME_"`
	Ledger  LedgerConfig    `toml:"ledger" envPrefix:"LEDGER_"`
	Catalog CatalogConfig   `toml:"catalog" envPrefix:"CATALOG_"`
	Audio   AudioConfig     `toml:"audio" envPrefix:"AUDIO_"`
	Log     LogConfig       `toml:"log" envPrefix:"LOG_"`
	Keys    input.KeyConfig `toml:"keys"`
}

// SurfaceConfig maps terminal cells to surface units
type SurfaceConfig struct {
	CellWidth  float64 `toml:"cell_width" env:"CELL_WIDTH"`
	CellHeight float64 `toml:"cell_height" env:"CELL_HEIGHT"`
}

// GameConfig tunes the frame loop
type GameConfig struct {
	FPS  int    `toml:"fps" env:"FPS"`
	Seed uint64 `toml:"seed" env:"SEED"`
	Mode string `toml:"mode" env:"MODE"`
}

// LedgerConfig selects where unlocks persist
type LedgerConfig struct {
	Backend    string `toml:"backend" env:"BACKEND"`
	Dir        string `toml:"dir" env:"DIR"`
	SQLitePath string `toml:"sqlite_path" env:"SQLITE_PATH"`
}

// CatalogConfig locates the album manifest and artwork
type CatalogConfig struct {
	Manifest  string `toml:"manifest" env:"MANIFEST"`
	AssetsDir string `toml:"assets_dir" env:"ASSETS_DIR"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Level string `toml:"level" env:"LEVEL"`
	File  string `toml:"file" env:"FILE"`
}

// Default returns the configuration parsed from the embedded default file
func Default() *Config {
	var cfg Config
	if err := toml.Unmarshal(defaultConf, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// Load reads the file at path over the defaults, applies VINYL_* overrides, validates and resolves paths
// An empty path skips the file; a missing file is an error only when explicit is true
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			md, err := toml.Decode(string(data), cfg)
			if err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns ~/.config/vinyl-slasher/config.toml, or "" when no config dir is known
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

// CreateConfigFile writes the embedded default config to path
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, defaultConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Surface.CellWidth <= 0 || c.Surface.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("surface cell size must be positive, got %vx%v", c.Surface.CellWidth, c.Surface.CellHeight))
	}
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		errs = append(errs, fmt.Errorf("game.fps must be within 1..240, got %d", c.Game.FPS))
	}
	if _, err := game.ParseMode(c.Game.Mode); err != nil {
		errs = append(errs, fmt.Errorf("game.mode: %w", err))
	}
	switch c.Ledger.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		errs = append(errs, fmt.Errorf("ledger.backend must be file, sqlite or memory, got %q", c.Ledger.Backend))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within 0..1, got %v", c.Audio.Volume))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := c.Keys.Table(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) resolvePaths() error {
	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate data directory: %w", err)
		}
		c.DataDir = filepath.Join(home, ".local", "share", appName)
	}
	if c.Ledger.Dir == "" {
		c.Ledger.Dir = filepath.Join(c.DataDir, "ledger")
	}
	if c.Ledger.SQLitePath == "" {
		c.Ledger.SQLitePath = filepath.Join(c.DataDir, "ledger.db")
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(c.DataDir, "logs", appName+".log")
	}
	return nil
}

// Grid is the cell to surface mapping
func (c *Config) Grid() vmath.Grid {
	return vmath.Grid{
		CellW: c.Surface.CellWidth,
		CellH: c.Surface.CellHeight,
		Top:   parameter.TopMargin,
	}
}

// Mode is the preselected game mode, ModeNone when unset
func (c *Config) Mode() game.Mode {
	m, _ := game.ParseMode(c.Game.Mode)
	return m
}

// KeyTable merges the configured bindings over the defaults
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := c.Keys.Table()
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

// AudioConfig converts to the sound manager config
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.Volume
	return ac
}

// DebugLogging reports whether the log level asks for a log file
func (c *Config) DebugLogging() bool {
	return strings.EqualFold(c.Log.Level, "debug")
}
