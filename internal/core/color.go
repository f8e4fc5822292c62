package core

// Color is the foreground color of a screen cell. Hosts map it to a
// terminal color; games only pick from this palette.
type Color uint8

// Palette. Tile levels cycle from ColorCyan through ColorBrightWhite; the
// board frame and empty-level HUD text use ColorGray.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorGreen
	ColorYellow
	ColorOrange
	ColorRed
	ColorMagenta
	ColorBrightBlue
	ColorBrightWhite
	ColorGray
)
