package core

// RGB stores explicit 8-bit color channels, decoupled from tcell and ebiten
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBGray  = RGB{96, 96, 96}
)

// Scale multiplies each channel by factor (used for the ghosted game-over board)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Luma returns perceived brightness in [0, 255]
func (c RGB) Luma() int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
