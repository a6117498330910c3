package core

// Color is a foreground color for a screen cell.
// The platform maps it onto ANSI 256-color codes.
type Color uint8

// Palette used by the game and menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

// Style combines a color with display attributes for one cell.
type Style struct {
	Color   Color
	Bold    bool
	Reverse bool // Swap foreground/background, used for flashing cells
}
