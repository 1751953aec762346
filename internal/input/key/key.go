package key

import "fmt"

// Code is a backend-native key code.
// Valid codes are in the range [1, MaxCode].
type Code int

// MaxCode is the highest key code tracked by State.
const MaxCode Code = 1023

// Valid reports whether c can index key state.
func (c Code) Valid() bool {
	return c >= 1 && c <= MaxCode
}

// Key identifies a logical key whose scancode is looked up from the backend.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// Action is the phase of a key or mouse button event.
type Action uint8

const (
	// ActionRelease indicates the key or button went up.
	ActionRelease Action = iota
	// ActionPress indicates the key or button went down.
	ActionPress
	// ActionRepeat indicates an auto-repeat while held.
	ActionRepeat
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("action(%d)", a)
	}
}
