package key

// Key identifies a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint8

const (
	// KeyNone represents no key. The decoder returns it for bytes that
	// have no mapping; callers skip these events.
	KeyNone Key = iota

	// KeyRune is used for printable character keys.
	// The actual character is stored in Event.Rune.
	KeyRune

	// Special keys
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyHome
	KeyEnd

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Control keys with readline bindings
	KeyCtrlA
	KeyCtrlC
	KeyCtrlE
	KeyCtrlK
	KeyCtrlN
	KeyCtrlP
	KeyCtrlU
	KeyCtrlW
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyEscape:
		return "Escape"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyCtrlA:
		return "Ctrl+A"
	case KeyCtrlC:
		return "Ctrl+C"
	case KeyCtrlE:
		return "Ctrl+E"
	case KeyCtrlK:
		return "Ctrl+K"
	case KeyCtrlN:
		return "Ctrl+N"
	case KeyCtrlP:
		return "Ctrl+P"
	case KeyCtrlU:
		return "Ctrl+U"
	case KeyCtrlW:
		return "Ctrl+W"
	default:
		return "Unknown"
	}
}

// IsSpecial returns true for non-character, non-none keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}
