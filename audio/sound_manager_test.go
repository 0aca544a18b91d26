package audio

import (
	"errors"
	"testing"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlaySlice()
	sm.PlayUnlock()
	sm.PlayMiss()
	sm.PlayGameOver()
	sm.Cleanup()

	for st := SoundType(0); st < soundTypeCount; st++ {
		if n := sm.Played(st); n != 0 {
			t.Errorf("Played(%s) = %d without a speaker, want 0", st, n)
		}
	}
}

// TestSoundManagerDisabled verifies a disabled config never opens the speaker
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Initialize() = %v, want ErrDisabled", err)
	}
	if sm.Initialized() {
		t.Error("disabled manager reports initialized")
	}
	sm.PlaySlice()
	if sm.Played(SoundSlice) != 0 {
		t.Error("disabled manager played a cue")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization may fail in CI without audio devices; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlaySlice()
	if sm.Played(SoundSlice) != 1 {
		t.Errorf("Played(slice) = %d, want 1", sm.Played(SoundSlice))
	}
	sm.Cleanup()
	if sm.Initialized() {
		t.Error("manager still initialized after Cleanup")
	}
}

// TestSoundManagerMute verifies muting suppresses cues and toggles back
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	if !sm.ToggleMute() {
		t.Fatal("first toggle should mute")
	}
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		if sm.ToggleMute() {
			t.Error("second toggle should unmute")
		}
		return
	}
	defer sm.Cleanup()

	sm.PlayMiss()
	if n := sm.Played(SoundMiss); n != 0 {
		t.Errorf("muted Played(miss) = %d, want 0", n)
	}
	sm.ToggleMute()
	sm.PlayMiss()
	if n := sm.Played(SoundMiss); n != 1 {
		t.Errorf("unmuted Played(miss) = %d, want 1", n)
	}
}
