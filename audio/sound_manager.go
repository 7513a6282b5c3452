package audio

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

// Output is the device the mixer is attached to
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Lock()
	Unlock()
	Close()
}

// speakerOutput forwards to the process-wide beep speaker
type speakerOutput struct{}

func (speakerOutput) Init(rate beep.SampleRate, bufferSize int) error {
	return speaker.Init(rate, bufferSize)
}
func (speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) Lock()                { speaker.Lock() }
func (speakerOutput) Unlock()              { speaker.Unlock() }
func (speakerOutput) Close()               { speaker.Close() }

// SoundManager manages all game audio
type SoundManager struct {
	mu     sync.Mutex
	cfg    *AudioConfig
	out    Output
	rate   beep.SampleRate
	mixer  *beep.Mixer
	sounds [core.SoundTypeCount]*beep.Buffer
	music  *beep.Buffer

	musicCtrl   *beep.Ctrl
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager bound to the system speaker
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	return NewSoundManagerWithOutput(cfg, speakerOutput{})
}

// NewSoundManagerWithOutput creates a sound manager bound to out
func NewSoundManagerWithOutput(cfg *AudioConfig, out Output) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(constants.AudioSampleRate)
	}
	return &SoundManager{
		cfg:   cfg,
		out:   out,
		rate:  rate,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the output and prepares every sound slot
// Asset failures are logged and leave the slot silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	if err := sm.out.Init(sm.rate, sm.rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		sm.sounds[st] = sm.loadSound(st)
	}
	if sm.cfg.AssetsDir != "" && sm.cfg.MusicFile != "" {
		path := filepath.Join(sm.cfg.AssetsDir, sm.cfg.MusicFile)
		buf, err := LoadBuffer(path, sm.rate)
		if err != nil {
			log.Printf("audio: music disabled: %v", err)
		} else {
			sm.music = buf
		}
	}

	sm.out.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) loadSound(st core.SoundType) *beep.Buffer {
	if sm.cfg.AssetsDir == "" {
		return RenderBuffer(GetSoundEffect(st, sm.rate), sm.rate)
	}
	name, ok := sm.cfg.Assets[st]
	if !ok || name == "" {
		return nil
	}
	buf, err := LoadBuffer(filepath.Join(sm.cfg.AssetsDir, name), sm.rate)
	if err != nil {
		log.Printf("audio: %s sound disabled: %v", st, err)
		return nil
	}
	return buf
}

// Cleanup stops all sounds and closes the output
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.out.Lock()
	if sm.musicCtrl != nil {
		sm.musicCtrl.Paused = true
		sm.musicCtrl = nil
	}
	sm.mixer.Clear()
	sm.out.Unlock()

	sm.out.Close()
	sm.initialized = false
}

// Play starts one instance of st, overlapping any already playing
// Returns false when nothing was queued
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || st < 0 || st >= core.SoundTypeCount {
		return false
	}
	buf := sm.sounds[st]
	if buf == nil {
		return false
	}

	sm.out.Lock()
	sm.mixer.Add(newVolume(buf.Streamer(0, buf.Len()), sm.cfg.Volume(st)))
	sm.out.Unlock()
	return true
}

// StartMusic loops the background track from the beginning
func (sm *SoundManager) StartMusic() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.music == nil {
		return false
	}

	sm.out.Lock()
	defer sm.out.Unlock()
	sm.stopMusicLocked()
	ctrl := &beep.Ctrl{
		Streamer: beep.Loop(-1, sm.music.Streamer(0, sm.music.Len())),
		Paused:   sm.muted,
	}
	sm.musicCtrl = ctrl
	sm.mixer.Add(newVolume(ctrl, sm.cfg.MasterVolume))
	return true
}

// StopMusic ends the background track if it is playing
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.out.Lock()
	sm.stopMusicLocked()
	sm.out.Unlock()
}

// stopMusicLocked drops the music stream from the mixer; caller holds both locks
func (sm *SoundManager) stopMusicLocked() {
	if sm.musicCtrl == nil {
		return
	}
	// A nil streamer ends the Ctrl and the mixer discards it
	sm.musicCtrl.Streamer = nil
	sm.musicCtrl = nil
}

// MusicPlaying reports whether the background track is active
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicCtrl != nil
}

// SetMuted silences new effects and pauses music
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if sm.musicCtrl != nil {
		sm.out.Lock()
		sm.musicCtrl.Paused = muted
		sm.out.Unlock()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HasSound reports whether the slot for st has audio loaded
func (sm *SoundManager) HasSound(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return st >= 0 && st < core.SoundTypeCount && sm.sounds[st] != nil
}
