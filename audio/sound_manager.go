package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vinyl-slasher/parameter"
)

// SoundManager plays gameplay cues through the system speaker
// Every Play method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	config      *Config
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a sound manager; a nil config uses DefaultConfig
func NewSoundManager(cfg *Config, logger *log.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		logger: logger.With("component", "audio"),
	}
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("failed to open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("speaker ready", "rate", sm.config.SampleRate, "volume", sm.config.MasterVolume)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	sm.played[st]++
}

// ToggleMute flips effect muting and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.logger.Debug("effects muted", "muted", sm.muted)
	return sm.muted
}

// Played returns how many cues of a type reached the mixer
func (sm *SoundManager) Played(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[st]
}

func (sm *SoundManager) PlaySlice()    { sm.play(SoundSlice) }
func (sm *SoundManager) PlayUnlock()   { sm.play(SoundUnlock) }
func (sm *SoundManager) PlayMiss()     { sm.play(SoundMiss) }
func (sm *SoundManager) PlayGameOver() { sm.play(SoundGameOver) }
