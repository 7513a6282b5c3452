package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := buf[i][ch]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("Sample %d is not finite: %f", total+i, v)
				}
				peak = max(peak, abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer did not terminate")
	return 0, 0
}

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples with ok=true, got n=%d ok=%v", n, ok)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave generation
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 500)
	n, _ := osc.Stream(samples)

	// Square wave should only have values of -1.0 or 1.0
	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorSaw verifies sawtooth range
func TestOscillatorSaw(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(110.0, 50*time.Millisecond, WaveSaw, rate)

	samples := make([][2]float64, 500)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] >= 1.0 {
			t.Errorf("Saw sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorNoise verifies noise is bounded and not constant
func TestOscillatorNoise(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(0, 50*time.Millisecond, WaveNoise, rate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)

	distinct := make(map[float64]struct{})
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Noise sample %d out of range: %f", i, samples[i][0])
		}
		distinct[samples[i][0]] = struct{}{}
	}
	if len(distinct) < 2 {
		t.Error("Expected noise to vary between samples")
	}
}

// TestOscillatorDuration verifies the oscillator stops after its duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	osc := NewOscillator(440.0, duration, WaveSine, rate)

	total, _ := drain(t, osc)
	if total != rate.N(duration) {
		t.Errorf("Expected %d samples, got %d", rate.N(duration), total)
	}

	n, ok := osc.Stream(make([][2]float64, 10))
	if ok || n != 0 {
		t.Errorf("Expected exhausted oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestEnvelopeShape verifies attack ramp, sustain and release
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 10 * time.Millisecond
	release := 20 * time.Millisecond

	// 1 Hz square stays at +1 for the whole duration
	osc := NewOscillator(1.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, release, rate)

	samples := make([][2]float64, rate.N(duration))
	n, _ := env.Stream(samples)
	if n != rate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", rate.N(duration), n)
	}

	att := rate.N(attack)
	rel := rate.N(release)

	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if got, want := samples[att/2][0], float64(att/2)/float64(att); abs(got-want) > 1e-9 {
		t.Errorf("Attack midpoint: expected %f, got %f", want, got)
	}
	if samples[att+10][0] != 1.0 {
		t.Errorf("Expected full sustain, got %f", samples[att+10][0])
	}
	last := n - 1
	if got, want := samples[last][0], 1.0/float64(rel); abs(got-want) > 1e-9 {
		t.Errorf("Release tail: expected %f, got %f", want, got)
	}
	for i := 1; i < n; i++ {
		if i > n-rel && samples[i][0] > samples[i-1][0] {
			t.Fatalf("Release not monotonic at %d", i)
		}
	}
}

// TestMoveSoundLength verifies the synthesized move tick is its configured length
func TestMoveSoundLength(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	buf := RenderBuffer(CreateMoveSound(rate), rate)
	if buf.Len() != rate.N(constants.MoveSoundDuration) {
		t.Errorf("Expected %d samples, got %d", rate.N(constants.MoveSoundDuration), buf.Len())
	}
}

// TestGetSoundEffect verifies every sound type synthesizes audible, bounded output
func TestGetSoundEffect(t *testing.T) {
	rate := beep.SampleRate(constants.AudioSampleRate)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		t.Run(st.String(), func(t *testing.T) {
			s := GetSoundEffect(st, rate)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			total, peak := drain(t, s)
			if total == 0 {
				t.Error("Expected samples")
			}
			if total > rate.N(2*time.Second) {
				t.Errorf("Effect too long: %d samples", total)
			}
			if peak == 0 || peak > 1.0 {
				t.Errorf("Expected peak in (0, 1], got %f", peak)
			}
		})
	}
}

// TestGetSoundEffectUnknown verifies unknown types return nil
func TestGetSoundEffectUnknown(t *testing.T) {
	if s := GetSoundEffect(core.SoundTypeCount, 44100); s != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestSoundEffectVolume verifies gain scaling and zero-volume silence
func TestSoundEffectVolume(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 10 * time.Millisecond

	half := newVolume(NewOscillator(1.0, d, WaveSquare, rate), 0.5)
	samples := make([][2]float64, 10)
	half.Stream(samples)
	if abs(samples[0][0]-0.5) > 1e-9 {
		t.Errorf("Expected 0.5 gain, got %f", samples[0][0])
	}

	silent := newVolume(NewOscillator(1.0, d, WaveSquare, rate), 0)
	_, peak := drain(t, silent)
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
