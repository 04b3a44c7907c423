package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// tierPalette is indexed by obstacle tier; higher tiers look hotter.
var tierPalette = []Color{
	ColorCyan,
	ColorGreen,
	ColorYellow,
	ColorOrange,
	ColorMagenta,
	ColorBrightRed,
}

// TierColor returns the obstacle color for a visual tier.
// Tiers beyond the palette reuse its last entry.
func TierColor(tier int) Color {
	if tier < 0 {
		tier = 0
	}
	if tier >= len(tierPalette) {
		tier = len(tierPalette) - 1
	}
	return tierPalette[tier]
}
