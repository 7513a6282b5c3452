package constants

// Window Layout Constants
const (
	// WindowWidth and WindowHeight are the reference window size in pixels
	WindowWidth  = 600
	WindowHeight = 800

	// WindowTitle is shown in the window frontend title bar
	WindowTitle = "blockfall"

	// ScoreTextX and ScoreTextY anchor the score line in the window
	ScoreTextX = 10
	ScoreTextY = 10

	// DebugCharWidth and DebugLineHeight are the ebitenutil debug font metrics
	DebugCharWidth  = 6
	DebugLineHeight = 16
)

// Terminal Layout Constants
const (
	// TerminalHUDGap is the number of columns between the right wall and the status lines
	TerminalHUDGap = 2

	// TerminalHUDY is the row of the first status line
	TerminalHUDY = 1

	// TerminalEventBuffer bounds tcell events buffered between frames
	TerminalEventBuffer = 100
)
