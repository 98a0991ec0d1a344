package core

// DataEvent carries decoded characters typed or pasted into the terminal.
// Value may hold a single control code (carriage return, delete) or an ANSI
// escape sequence for keys that have no printable form.
type DataEvent struct {
	Value string
}

// KeyEvent names a physical key press, e.g. "ArrowUp", "Enter" or "q".
type KeyEvent struct {
	Key string
}

// Key names delivered in KeyEvent.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeyBackspace  = "Backspace"
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
)

// Control codes and sequences carried in DataEvent.
const (
	CarriageReturn = "\r"
	Delete         = "\x7f"
	Backspace      = "\b"
	Escape         = "\x1b"
	// CSI prefixes escape sequences such as the arrow keys' "\x1b[A".
	CSI = "\x1b["
)

// IsPrintable reports whether r echoes as a visible character:
// printable ASCII or anything from U+00A0 upward.
func IsPrintable(r rune) bool {
	return (r >= 0x20 && r <= 0x7e) || r >= 0xa0
}
