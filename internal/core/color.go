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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// heightPalette shades platforms from low (dim) to high (bright).
var heightPalette = []Color{ColorGray, ColorGreen, ColorBrightGreen, ColorCyan, ColorBrightBlue, ColorMagenta}

// HeightColor picks a palette color for a platform at height z,
// given the tallest height in the world.
func HeightColor(z, maxZ float64) Color {
	if maxZ <= 0 {
		return heightPalette[0]
	}
	idx := int(z / maxZ * float64(len(heightPalette)-1))
	return heightPalette[Clamp(idx, 0, len(heightPalette)-1)]
}
