package terminal

import (
	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/core"
	"github.com/lixenwraith/blockfall/render"
)

// NewLayout places a rows x cols board one wall-width from the left edge
// with the status lines to the right of the board
func NewLayout(rows, cols int) render.Layout {
	cw := constants.TerminalCellWidth
	originX := cw
	return render.Layout{
		CellWidth:  cw,
		CellHeight: constants.TerminalCellHeight,
		OriginX:    originX,
		OriginY:    0,
		CharWidth:  1,
		LineHeight: 1,
		HUDX:       originX + cols*cw + cw + constants.TerminalHUDGap,
		HUDY:       constants.TerminalHUDY,
		Background: core.RGBBlack,
		Foreground: core.RGBWhite,
		Wall:       core.RGBGray,
		DrawWalls:  true,
	}
}
