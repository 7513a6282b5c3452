package constants

import "time"

// Board geometry (reference screen 600x800 at 30px cells)
const (
	// BoardRows is the default grid height
	BoardRows = 26

	// BoardCols is the default grid width
	BoardCols = 20

	// CellSize is the edge of one grid cell in window pixels
	CellSize = 30

	// TerminalCellWidth is the number of terminal columns one grid cell spans
	TerminalCellWidth = 2

	// TerminalCellHeight is the number of terminal rows one grid cell spans
	TerminalCellHeight = 1
)

// Game Loop Timing Constants
const (
	// FramesPerSecond is the fixed controller rate
	FramesPerSecond = 10

	// FrameUpdateInterval is the duration of one controller frame
	FrameUpdateInterval = time.Second / FramesPerSecond

	// RepeatInterval is the minimum gap between continuous-repeat moves in one direction
	RepeatInterval = 50 * time.Millisecond
)

// Gravity
const (
	// BaseFallInterval is the number of frames between automatic downward moves at level 0
	BaseFallInterval = 16

	// MinFallInterval is the floor applied as the level rises
	MinFallInterval = 1
)

// Scoring
const (
	// PointsPerLine is awarded for every row removed in a clearing pass
	PointsPerLine = 10

	// LevelScoreStep is the score distance between consecutive levels
	LevelScoreStep = 1000
)

// Piece colors draw each channel from [ColorChannelMin, ColorChannelMax]
const (
	ColorChannelMin = 50
	ColorChannelMax = 255
)
