package audio

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/lixenwraith/blockfall/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutput struct {
	mu         sync.Mutex
	initErr    error
	rate       beep.SampleRate
	bufferSize int
	played     []beep.Streamer
	closed     bool
}

func (o *fakeOutput) Init(rate beep.SampleRate, bufferSize int) error {
	o.rate, o.bufferSize = rate, bufferSize
	return o.initErr
}
func (o *fakeOutput) Play(s beep.Streamer) { o.played = append(o.played, s) }
func (o *fakeOutput) Lock()                { o.mu.Lock() }
func (o *fakeOutput) Unlock()              { o.mu.Unlock() }
func (o *fakeOutput) Close()               { o.closed = true }

// writeTone encodes a short square tone as a 16-bit wav file
func writeTone(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	tone := NewOscillator(440, 50*time.Millisecond, WaveSquare, rate)
	require.NoError(t, wav.Encode(f, tone, beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}))
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(cfg, out)

	require.ErrorIs(t, sm.Initialize(), ErrAudioDisabled)
	assert.False(t, sm.Play(core.SoundMove))
	assert.Empty(t, out.played)
}

func TestSoundManagerInitError(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)

	require.Error(t, sm.Initialize())
	assert.False(t, sm.Play(core.SoundMove))
}

func TestSoundManagerSynthesized(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), out)
	require.NoError(t, sm.Initialize())
	require.NoError(t, sm.Initialize(), "second initialize is a no-op")

	assert.Equal(t, beep.SampleRate(44100), out.rate)
	assert.Equal(t, 4410, out.bufferSize)
	require.Len(t, out.played, 1)

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		assert.True(t, sm.HasSound(st), st.String())
	}

	// Effects overlap in the mixer
	assert.True(t, sm.Play(core.SoundMove))
	assert.True(t, sm.Play(core.SoundLineClear))
	assert.Equal(t, 2, sm.mixer.Len())
	assert.False(t, sm.Play(core.SoundTypeCount))

	// No music without an assets directory
	assert.False(t, sm.StartMusic())
	assert.False(t, sm.MusicPlaying())
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManagerWithOutput(DefaultAudioConfig(), &fakeOutput{})
	require.NoError(t, sm.Initialize())

	sm.SetMuted(true)
	assert.True(t, sm.Muted())
	assert.False(t, sm.Play(core.SoundMove))

	sm.SetMuted(false)
	assert.True(t, sm.Play(core.SoundMove))
}

func TestSoundManagerMissingAssets(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.AssetsDir = t.TempDir()
	sm := NewSoundManagerWithOutput(cfg, &fakeOutput{})

	require.NoError(t, sm.Initialize())
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		assert.False(t, sm.HasSound(st), st.String())
		assert.False(t, sm.Play(st))
	}
	assert.False(t, sm.StartMusic())
}

func TestSoundManagerAssetsAndMusic(t *testing.T) {
	dir := t.TempDir()
	// Encoded at a different rate to force resampling
	writeTone(t, filepath.Join(dir, "move.wav"), 22050)
	writeTone(t, filepath.Join(dir, "loop.wav"), 44100)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "game_over.wav"), []byte("not a wav"), 0o644))

	cfg := DefaultAudioConfig()
	cfg.AssetsDir = dir
	cfg.MusicFile = "loop.wav"
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(cfg, out)
	require.NoError(t, sm.Initialize())

	assert.True(t, sm.HasSound(core.SoundMove))
	assert.False(t, sm.HasSound(core.SoundGameOver), "corrupt asset leaves the slot silent")
	assert.False(t, sm.HasSound(core.SoundLineClear))

	assert.True(t, sm.Play(core.SoundMove))
	assert.False(t, sm.Play(core.SoundGameOver))

	require.True(t, sm.StartMusic())
	assert.True(t, sm.MusicPlaying())

	// Restarting replaces the running loop
	require.True(t, sm.StartMusic())
	sm.StopMusic()
	assert.False(t, sm.MusicPlaying())

	sm.Cleanup()
	assert.True(t, out.closed)
	assert.Equal(t, 0, sm.mixer.Len())
	assert.False(t, sm.Play(core.SoundMove))
}

func TestLoadBufferResamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	writeTone(t, path, 22050)

	buf, err := LoadBuffer(path, 44100)
	require.NoError(t, err)
	assert.Equal(t, beep.SampleRate(44100), buf.Format().SampleRate)
	// 50ms at the target rate, within resampler edge slack
	assert.InDelta(t, 2205, buf.Len(), 64)
}

func TestLoadBufferErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBuffer(filepath.Join(dir, "missing.wav"), 44100)
	require.ErrorIs(t, err, os.ErrNotExist)

	ogg := filepath.Join(dir, "track.ogg")
	require.NoError(t, os.WriteFile(ogg, []byte("OggS"), 0o644))
	_, err = LoadBuffer(ogg, 44100)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
