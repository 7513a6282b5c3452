package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
)

// Environment overrides
const (
	EnvAudioEnabled = "BLOCKFALL_AUDIO_ENABLED"
	EnvMasterVolume = "BLOCKFALL_MASTER_VOLUME"
	EnvSFXVolumes   = "BLOCKFALL_SFX_VOLUMES"
	EnvSampleRate   = "BLOCKFALL_SAMPLE_RATE"
)

// AudioConfig controls the sound manager
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0-1.0
	EffectVolumes map[core.SoundType]float64
	SampleRate    int

	// AssetsDir holds the sound files; empty selects synthesized effects
	AssetsDir string
	Assets    map[core.SoundType]string
	MusicFile string
}

// DefaultAudioConfig returns synthesized effects at the default volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		EffectVolumes: map[core.SoundType]float64{
			core.SoundMove:      0.4,
			core.SoundLineClear: 1.0,
			core.SoundBottomHit: 0.7,
			core.SoundGameOver:  1.0,
		},
		SampleRate: constants.AudioSampleRate,
		Assets: map[core.SoundType]string{
			core.SoundMove:      constants.MoveSoundFile,
			core.SoundLineClear: constants.LineClearSoundFile,
			core.SoundBottomHit: constants.BottomHitSoundFile,
			core.SoundGameOver:  constants.GameOverSoundFile,
		},
		MusicFile: constants.MusicFile,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.ApplyEnv()
	return cfg
}

// ApplyEnv overlays environment variables onto cfg; malformed values are ignored
func (cfg *AudioConfig) ApplyEnv() {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON keyed by sound name, e.g. {"move":0.2}
	if effectVols := os.Getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := core.ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

// Volume returns the effective gain for st
func (cfg *AudioConfig) Volume(st core.SoundType) float64 {
	v, ok := cfg.EffectVolumes[st]
	if !ok {
		v = 1
	}
	return v * cfg.MasterVolume
}

func clampVolume(v float64) float64 {
	return max(0, min(1, v))
}
