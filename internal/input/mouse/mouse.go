package mouse

import "fmt"

// Button represents a mouse button.
type Button uint8

const (
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft Button = iota
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", b)
	}
}

// Movement reports the cursor crossing the window boundary.
type Movement uint8

const (
	// MovementLeave indicates the cursor left the window.
	MovementLeave Movement = iota
	// MovementEnter indicates the cursor entered the window.
	MovementEnter
)

// String returns a string representation of the movement.
func (m Movement) String() string {
	if m == MovementEnter {
		return "enter"
	}
	return "leave"
}

// Mode is the cursor mode requested from the backend.
type Mode uint8

const (
	// ModeDisabled hides the cursor. Buttons, scroll and motion are
	// still reported.
	ModeDisabled Mode = iota
	// ModeEnabled shows the cursor.
	ModeEnabled
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	if m == ModeEnabled {
		return "enabled"
	}
	return "disabled"
}

// ParseMode parses "enabled" or "disabled".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "enabled":
		return ModeEnabled, nil
	case "disabled":
		return ModeDisabled, nil
	default:
		return ModeEnabled, fmt.Errorf("unknown mouse mode %q", s)
	}
}

// Position represents a cursor coordinate.
type Position struct {
	X float64
	Y float64
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// DistanceSquared returns the squared Euclidean distance between two positions.
func (p Position) DistanceSquared(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}
