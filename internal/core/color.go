package core

import "strings"

// Color is a semantic color tag carried by game objects and screen cells.
// The platform layer maps tags to terminal colors; game logic compares tags.
type Color uint8

// Color tags used by the arena, levels and HUD.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorPink
)

var colorNames = map[Color]string{
	ColorDefault:  "default",
	ColorBlack:    "black",
	ColorWhite:    "white",
	ColorGray:     "gray",
	ColorDarkGray: "darkgray",
	ColorRed:      "red",
	ColorOrange:   "orange",
	ColorYellow:   "yellow",
	ColorGreen:    "green",
	ColorCyan:     "cyan",
	ColorBlue:     "blue",
	ColorMagenta:  "magenta",
	ColorPink:     "pink",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseColor converts a color name to its tag. Matching is case-insensitive
// and accepts "grey" spellings.
func ParseColor(name string) (Color, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "grey", "gray")
	n = strings.ReplaceAll(n, "_", "")
	for c, cn := range colorNames {
		if cn == n {
			return c, true
		}
	}
	return ColorDefault, false
}
