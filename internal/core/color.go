package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
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

	// Smoke shades, darkest first.
	ColorSmoke1
	ColorSmoke2
	ColorSmoke3
	ColorSmoke4
	ColorSmoke5
)

// SmokeShades lists the trail shades from faintest to strongest.
var SmokeShades = []Color{ColorSmoke1, ColorSmoke2, ColorSmoke3, ColorSmoke4, ColorSmoke5}

// ShadeFor maps a trail intensity in [0, 1] onto one of the smoke shades.
// Zero intensity maps to ColorDefault.
func ShadeFor(intensity float64) Color {
	if intensity <= 0 {
		return ColorDefault
	}
	idx := int(intensity * float64(len(SmokeShades)))
	return SmokeShades[Clamp(idx, 0, len(SmokeShades)-1)]
}

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ParseColor resolves a config color name. Unknown names report false.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
