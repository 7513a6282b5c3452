package constants

import "time"

// Audio output
const (
	// AudioSampleRate is the speaker rate; decoded assets are resampled to it
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultMasterVolume is applied when no override is configured (0.0-1.0)
	DefaultMasterVolume = 0.8
)

// Default asset file names, resolved relative to the assets directory
const (
	MoveSoundFile      = "move.wav"
	LineClearSoundFile = "line_clear.wav"
	BottomHitSoundFile = "bottom_hit.wav"
	GameOverSoundFile  = "game_over.wav"
	MusicFile          = "background_music.mp3"
)

// Move Sound Timing
const (
	MoveSoundDuration = 40 * time.Millisecond
	MoveSoundAttack   = 2 * time.Millisecond
	MoveSoundRelease  = 20 * time.Millisecond
)

// Line Clear Sound Timing
const (
	LineClearSoundNote1Duration = 90 * time.Millisecond
	LineClearSoundNote2Duration = 220 * time.Millisecond
	LineClearSoundAttack        = 5 * time.Millisecond
	LineClearSoundNote1Release  = 40 * time.Millisecond
	LineClearSoundNote2Release  = 180 * time.Millisecond
)

// Bottom Hit Sound Timing
const (
	BottomHitSoundDuration = 120 * time.Millisecond
	BottomHitSoundAttack   = 2 * time.Millisecond
	BottomHitSoundRelease  = 100 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
)
