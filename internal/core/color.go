package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorViolet
	ColorPurple
	ColorPink
)

// colorNames maps the palette names used by games to screen colors.
var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"violet":  ColorViolet,
	"purple":  ColorPurple,
	"pink":    ColorPink,
}

// ColorByName looks up a color by its lowercase name.
// Unknown names map to ColorDefault.
func ColorByName(name string) Color {
	return colorNames[name]
}
