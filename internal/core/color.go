package core

// Color represents a foreground style for a screen cell or a message.
// Values map to ANSI SGR parameters; bright variants are rendered bold.
type Color uint8

// Predefined colors for terminal output.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
)

// Reset ends any SGR styling.
const Reset = "\x1b[0m"

var sgrParams = map[Color]string{
	ColorRed:          "31",
	ColorGreen:        "32",
	ColorYellow:       "33",
	ColorBlue:         "34",
	ColorCyan:         "36",
	ColorBrightRed:    "1;31",
	ColorBrightGreen:  "1;32",
	ColorBrightYellow: "1;33",
	ColorBrightBlue:   "1;34",
	ColorBrightCyan:   "1;36",
}

// SGR returns the escape sequence that selects this color.
// ColorDefault yields an empty string.
func (c Color) SGR() string {
	p, ok := sgrParams[c]
	if !ok {
		return ""
	}
	return "\x1b[" + p + "m"
}

// Paint wraps text in this color followed by a reset.
func (c Color) Paint(text string) string {
	if c == ColorDefault {
		return text
	}
	return c.SGR() + text + Reset
}
