package audio

import (
	"errors"

	"github.com/lixenwraith/vinyl-slasher/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundSlice    SoundType = iota // Target cut
	SoundUnlock                    // Album unlocked
	SoundMiss                      // Target escaped
	SoundGameOver                  // Run finished
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundSlice:
		return "slice"
	case SoundUnlock:
		return "unlock"
	case SoundMiss:
		return "miss"
	case SoundGameOver:
		return "game-over"
	}
	return "unknown"
}

// Config controls playback; volumes are linear in [0, 1]
type Config struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultConfig returns an enabled config with every effect at full level
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		MasterVolume: parameter.AudioDefaultVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1
	}
	cfg.EffectVolumes[SoundMiss] = 0.7
	return cfg
}

// ErrDisabled is returned by Initialize when the config turns audio off
var ErrDisabled = errors.New("audio disabled by configuration")
