package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vinyl-slasher/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw wave whose frequency glides linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from 'from' to 'to' Hz over duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		endFreq:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + (o.endFreq-o.freq)*float64(o.position)/float64(o.duration)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func effectVolume(cfg *Config, st SoundType) float64 {
	return cfg.EffectVolumes[st] * cfg.MasterVolume
}

// CreateSliceSound generates a bright blip with an octave overtone
func CreateSliceSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.SliceSoundFreq, parameter.SliceSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.SliceSoundDuration, parameter.SliceSoundAttack, parameter.SliceSoundRelease, rate)

	over := NewOscillator(parameter.SliceSoundFreq*2, parameter.SliceSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.SliceSoundDuration, parameter.SliceSoundAttack, parameter.SliceSoundRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, effectVolume(cfg, SoundSlice))
}

// CreateUnlockSound generates a rising arpeggio with short rests between notes
func CreateUnlockSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var parts []beep.Streamer
	for i, freq := range parameter.UnlockSoundNotes {
		if i > 0 {
			parts = append(parts, generators.Silence(rate.N(parameter.UnlockSoundGap)))
		}
		osc := NewOscillator(freq, parameter.UnlockSoundNoteDuration, WaveSquare, rate)
		parts = append(parts, newVolume(
			NewEnvelope(osc, parameter.UnlockSoundNoteDuration, parameter.UnlockSoundAttack, parameter.UnlockSoundRelease, rate),
			0.35,
		))
	}
	return newVolume(beep.Seq(parts...), effectVolume(cfg, SoundUnlock))
}

// CreateMissSound generates a low saw buzz
func CreateMissSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.MissSoundFreq, parameter.MissSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.MissSoundDuration, parameter.MissSoundAttack, parameter.MissSoundRelease, rate)
	return newVolume(shaped, 0.5*effectVolume(cfg, SoundMiss))
}

// CreateGameOverSound generates a descending sweep
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(parameter.GameOverSoundFrom, parameter.GameOverSoundTo, parameter.GameOverSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.GameOverSoundDuration, parameter.GameOverSoundAttack, parameter.GameOverSoundRelease, rate)
	return newVolume(shaped, effectVolume(cfg, SoundGameOver))
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *Config) beep.Streamer {
	switch soundType {
	case SoundSlice:
		return CreateSliceSound(cfg)
	case SoundUnlock:
		return CreateUnlockSound(cfg)
	case SoundMiss:
		return CreateMissSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
