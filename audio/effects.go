package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
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
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
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
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
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
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Synthesized effects, unity gain; volume is applied at playback

// CreateMoveSound generates a short soft tick
func CreateMoveSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, constants.MoveSoundDuration, WaveSine, rate)
	return NewEnvelope(osc, constants.MoveSoundDuration, constants.MoveSoundAttack, constants.MoveSoundRelease, rate)
}

// CreateLineClearSound generates a rising two-note chime
func CreateLineClearSound(rate beep.SampleRate) beep.Streamer {
	// First note (E5)
	n1 := NewOscillator(659.25, constants.LineClearSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.LineClearSoundNote1Duration, constants.LineClearSoundAttack, constants.LineClearSoundNote1Release, rate)

	// Second note (B5)
	n2 := NewOscillator(987.77, constants.LineClearSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, constants.LineClearSoundNote2Duration, constants.LineClearSoundAttack, constants.LineClearSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// CreateBottomHitSound generates a low thud with a noise transient
func CreateBottomHitSound(rate beep.SampleRate) beep.Streamer {
	body := NewOscillator(90.0, constants.BottomHitSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, constants.BottomHitSoundDuration, constants.BottomHitSoundAttack, constants.BottomHitSoundRelease, rate)

	click := NewOscillator(0, constants.BottomHitSoundDuration/4, WaveNoise, rate)
	clickShaped := NewEnvelope(click, constants.BottomHitSoundDuration/4, constants.BottomHitSoundAttack, constants.BottomHitSoundDuration/4, rate)

	return beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(clickShaped, 0.2),
	)
}

// CreateGameOverSound generates a long falling saw tone
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	third := constants.GameOverSoundDuration / 3
	notes := make([]beep.Streamer, 0, 3)
	for _, freq := range []float64{392.0, 311.13, 196.0} {
		osc := NewOscillator(freq, third, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, third, constants.GameOverSoundAttack, third/2, rate))
	}
	return newVolume(beep.Seq(notes...), 0.4)
}

// GetSoundEffect returns the synthesized streamer for the given type
func GetSoundEffect(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundMove:
		return CreateMoveSound(rate)
	case core.SoundLineClear:
		return CreateLineClearSound(rate)
	case core.SoundBottomHit:
		return CreateBottomHitSound(rate)
	case core.SoundGameOver:
		return CreateGameOverSound(rate)
	default:
		return nil
	}
}
