// Package config loads game settings from defaults, an optional YAML file and the environment.
// Command-line flags are applied by the caller after Load, so they take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/blockfall/audio"
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/engine"
	"github.com/lixenwraith/blockfall/game"
)

// EnvConfigPath names the YAML file used when no path is given
const EnvConfigPath = "BLOCKFALL_CONFIG"

// Frontends
const (
	FrontendTerminal = "term"
	FrontendWindow   = "window"
)

// MinBoardCols fits the widest piece
const MinBoardCols = 4

// Validation errors
var (
	ErrInvalidBoard    = errors.New("invalid board configuration")
	ErrInvalidTiming   = errors.New("invalid timing configuration")
	ErrInvalidScoring  = errors.New("invalid scoring configuration")
	ErrInvalidAudio    = errors.New("invalid audio configuration")
	ErrInvalidFrontend = errors.New("invalid frontend")
)

// Config is the root configuration
type Config struct {
	Board    BoardConfig   `yaml:"board"`
	Timing   TimingConfig  `yaml:"timing"`
	Scoring  ScoringConfig `yaml:"scoring"`
	Audio    AudioConfig   `yaml:"audio"`
	Frontend string        `yaml:"frontend"`

	// Seed for the piece generator; 0 picks one from the clock
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
}

type BoardConfig struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	CellSize int `yaml:"cell_size"`
}

type TimingConfig struct {
	FPS              int `yaml:"fps"`
	RepeatIntervalMS int `yaml:"repeat_interval_ms"`
	BaseFallInterval int `yaml:"base_fall_interval"`
	MinFallInterval  int `yaml:"min_fall_interval"`
}

type ScoringConfig struct {
	PointsPerLine  int `yaml:"points_per_line"`
	LevelScoreStep int `yaml:"level_score_step"`
}

type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
	// AssetsDir holds sound files; empty selects synthesized effects
	AssetsDir     string             `yaml:"assets_dir"`
	MusicFile     string             `yaml:"music_file"`
	EffectVolumes map[string]float64 `yaml:"effect_volumes"`
	Files         map[string]string  `yaml:"files"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Rows:     constants.BoardRows,
			Cols:     constants.BoardCols,
			CellSize: constants.CellSize,
		},
		Timing: TimingConfig{
			FPS:              constants.FramesPerSecond,
			RepeatIntervalMS: int(constants.RepeatInterval / time.Millisecond),
			BaseFallInterval: constants.BaseFallInterval,
			MinFallInterval:  constants.MinFallInterval,
		},
		Scoring: ScoringConfig{
			PointsPerLine:  constants.PointsPerLine,
			LevelScoreStep: constants.LevelScoreStep,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: constants.DefaultMasterVolume,
			SampleRate:   constants.AudioSampleRate,
			MusicFile:    constants.MusicFile,
		},
		Frontend: FrontendTerminal,
	}
}

// Load reads a YAML file over the defaults, then applies audio environment overrides
// If path is empty, BLOCKFALL_CONFIG is tried; with neither, only the environment applies
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyAudioEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyAudioEnv overlays the BLOCKFALL_* audio variables onto the audio section
func (c *Config) applyAudioEnv() {
	ac := &audio.AudioConfig{
		Enabled:       c.Audio.Enabled,
		MasterVolume:  c.Audio.MasterVolume,
		SampleRate:    c.Audio.SampleRate,
		EffectVolumes: make(map[core.SoundType]float64),
	}
	ac.ApplyEnv()

	c.Audio.Enabled = ac.Enabled
	c.Audio.MasterVolume = ac.MasterVolume
	c.Audio.SampleRate = ac.SampleRate
	for st, v := range ac.EffectVolumes {
		if c.Audio.EffectVolumes == nil {
			c.Audio.EffectVolumes = make(map[string]float64)
		}
		c.Audio.EffectVolumes[st.String()] = v
	}
}

// Validate checks ranges that would make the game unplayable
func (c *Config) Validate() error {
	if c.Board.Rows <= 0 || c.Board.Cols <= 0 || c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d cell_size=%d", ErrInvalidBoard, c.Board.Rows, c.Board.Cols, c.Board.CellSize)
	}
	if c.Board.Cols < MinBoardCols {
		return fmt.Errorf("%w: need at least %d columns, got %d", ErrInvalidBoard, MinBoardCols, c.Board.Cols)
	}

	t := c.Timing
	if t.FPS <= 0 || t.RepeatIntervalMS <= 0 || t.BaseFallInterval <= 0 || t.MinFallInterval <= 0 {
		return fmt.Errorf("%w: fps=%d repeat=%dms fall=%d min_fall=%d",
			ErrInvalidTiming, t.FPS, t.RepeatIntervalMS, t.BaseFallInterval, t.MinFallInterval)
	}
	if t.MinFallInterval > t.BaseFallInterval {
		return fmt.Errorf("%w: min_fall_interval %d exceeds base_fall_interval %d",
			ErrInvalidTiming, t.MinFallInterval, t.BaseFallInterval)
	}

	if c.Scoring.PointsPerLine <= 0 || c.Scoring.LevelScoreStep <= 0 {
		return fmt.Errorf("%w: points_per_line=%d level_score_step=%d",
			ErrInvalidScoring, c.Scoring.PointsPerLine, c.Scoring.LevelScoreStep)
	}

	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidAudio, c.Audio.SampleRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("%w: master_volume %.2f outside [0,1]", ErrInvalidAudio, c.Audio.MasterVolume)
	}
	for name, v := range c.Audio.EffectVolumes {
		if _, ok := core.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: unknown effect %q", ErrInvalidAudio, name)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s volume %.2f outside [0,1]", ErrInvalidAudio, name, v)
		}
	}
	for name := range c.Audio.Files {
		if _, ok := core.ParseSoundType(name); !ok {
			return fmt.Errorf("%w: unknown effect %q", ErrInvalidAudio, name)
		}
	}

	if c.Frontend != FrontendTerminal && c.Frontend != FrontendWindow {
		return fmt.Errorf("%w: %q (want %s or %s)", ErrInvalidFrontend, c.Frontend, FrontendTerminal, FrontendWindow)
	}
	return nil
}

// FrameInterval returns the time between frames
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.FPS)
}

// Rules returns the scoring and gravity rules
func (c *Config) Rules() game.Rules {
	return game.Rules{
		PointsPerLine:    c.Scoring.PointsPerLine,
		LevelScoreStep:   c.Scoring.LevelScoreStep,
		BaseFallInterval: c.Timing.BaseFallInterval,
		MinFallInterval:  c.Timing.MinFallInterval,
	}
}

// Engine returns the controller tuning
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Rows:           c.Board.Rows,
		Cols:           c.Board.Cols,
		Rules:          c.Rules(),
		RepeatInterval: time.Duration(c.Timing.RepeatIntervalMS) * time.Millisecond,
	}
}

// SoundConfig builds the audio manager config
// Environment overrides were already folded in by Load
func (c *Config) SoundConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	ac.AssetsDir = c.Audio.AssetsDir
	ac.MusicFile = c.Audio.MusicFile
	for name, v := range c.Audio.EffectVolumes {
		if st, ok := core.ParseSoundType(name); ok {
			ac.EffectVolumes[st] = v
		}
	}
	for name, file := range c.Audio.Files {
		if st, ok := core.ParseSoundType(name); ok {
			ac.Assets[st] = file
		}
	}
	return ac
}
