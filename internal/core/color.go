package core

// Color is the foreground color of a screen cell. The platform decides how
// a color reaches the terminal; Code gives the 256-color palette index it
// should use.
type Color uint8

// Arena, brick rows, paddle, ball and overlay colors.
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
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

var colorCodes = [colorCount]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightYellow: "11",
	ColorBrightWhite:  "15",
	ColorOrange:       "208",
	ColorGray:         "245",
}

// Colors returns every color, ColorDefault first.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Code returns the terminal palette index of c, or "" for the terminal's
// own foreground. Unknown colors map to "".
func (c Color) Code() string {
	if c >= colorCount {
		return ""
	}
	return colorCodes[c]
}

// Bright reports whether c is one of the emphasized overlay colors.
func (c Color) Bright() bool {
	return c == ColorBrightRed || c == ColorBrightYellow
}
