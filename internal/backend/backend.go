package backend

import (
	"time"

	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// Sink receives raw events from a Backend.
// Sink methods are called on the goroutine running Poll or Wait.
type Sink interface {
	// Key reports a key press, repeat or release.
	Key(code key.Code, scancode int, action key.Action, mods key.Modifier)

	// MouseButton reports a button press or release.
	MouseButton(button mouse.Button, action key.Action, mods key.Modifier)

	// Scroll reports a scroll offset.
	Scroll(dx, dy float64)

	// CursorMovement reports the cursor entering or leaving the window.
	CursorMovement(m mouse.Movement)

	// CursorPosition reports the cursor position in window coordinates.
	CursorPosition(x, y float64)

	// Resize reports a new window size.
	Resize(width, height int)

	// Drop reports files dropped onto the window.
	Drop(paths []string)
}

// Backend is a source of raw input events.
type Backend interface {
	// Attach sets the sink that receives events. Must be called before
	// Poll or Wait.
	Attach(s Sink)

	// Poll delivers every pending event without blocking.
	Poll()

	// Wait blocks until at least one event is pending or timeout elapses,
	// then delivers the pending events. A timeout <= 0 waits indefinitely.
	Wait(timeout time.Duration)

	// KeyName returns the printable name of a key, if it has one.
	KeyName(code key.Code, scancode int) (string, bool)

	// Scancode returns the platform scancode of a logical key.
	Scancode(k key.Key) int

	// CursorPosition returns the last known cursor position.
	CursorPosition() (x, y float64)

	// SetCursorMode changes cursor visibility and pointer reporting.
	SetCursorMode(m mouse.Mode)

	// Now returns the time elapsed since the backend started.
	Now() time.Duration
}

// Capture reports whether another consumer has claimed an input device.
type Capture interface {
	KeyboardCaptured() bool
	MouseCaptured() bool
}

// NoCapture never captures anything.
type NoCapture struct{}

func (NoCapture) KeyboardCaptured() bool { return false }
func (NoCapture) MouseCaptured() bool    { return false }

// StaticCapture is a Capture whose state is set directly.
type StaticCapture struct {
	Keyboard bool
	Mouse    bool
}

func (c *StaticCapture) KeyboardCaptured() bool { return c.Keyboard }
func (c *StaticCapture) MouseCaptured() bool    { return c.Mouse }
