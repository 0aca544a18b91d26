package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume when the config leaves it unset
	AudioDefaultVolume = 0.6
)

// Slice Sound
const (
	SliceSoundFreq     = 1320.0
	SliceSoundDuration = 70 * time.Millisecond
	SliceSoundAttack   = 3 * time.Millisecond
	SliceSoundRelease  = 50 * time.Millisecond
)

// Unlock Sound, a rising major arpeggio
var UnlockSoundNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	UnlockSoundNoteDuration = 80 * time.Millisecond
	UnlockSoundAttack       = 5 * time.Millisecond
	UnlockSoundRelease      = 40 * time.Millisecond
	UnlockSoundGap          = 15 * time.Millisecond
)

// Miss Sound
const (
	MissSoundFreq     = 110.0
	MissSoundDuration = 160 * time.Millisecond
	MissSoundAttack   = 5 * time.Millisecond
	MissSoundRelease  = 80 * time.Millisecond
)

// Game Over Sound, a falling sweep
const (
	GameOverSoundFrom     = 660.0
	GameOverSoundTo       = 110.0
	GameOverSoundDuration = 700 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 300 * time.Millisecond
)
