package core

// Color is a symbolic foreground color for a screen cell. The platform maps
// each value to a concrete terminal color; the simulation only picks from
// this palette.
type Color uint8

// Palette used by game entities, bullets, and HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
