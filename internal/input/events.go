package input

import (
	"github.com/dshills/inputmux/internal/input/hold"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// KeyEvent is a keyboard event identified by backend scancode.
type KeyEvent struct {
	Code     key.Code
	Scancode int
	Action   key.Action
	Mods     key.Modifier
}

// UTF8KeyEvent is a keyboard event identified by the key's printable name.
type UTF8KeyEvent struct {
	Name   string
	Action key.Action
	Mods   key.Modifier
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Button mouse.Button
	Action key.Action
	Mods   key.Modifier
}

func (e KeyEvent) mods() key.Modifier         { return e.Mods }
func (e KeyEvent) action() key.Action         { return e.Action }
func (e UTF8KeyEvent) mods() key.Modifier     { return e.Mods }
func (e UTF8KeyEvent) action() key.Action     { return e.Action }
func (e MouseButtonEvent) mods() key.Modifier { return e.Mods }
func (e MouseButtonEvent) action() key.Action { return e.Action }

// Handler signatures, one per category.
type (
	KeyFunc            func(KeyEvent)
	UTF8KeyFunc        func(UTF8KeyEvent)
	MouseButtonFunc    func(MouseButtonEvent)
	ScrollFunc         func(dx, dy float64)
	CursorMovementFunc func(mouse.Movement)
	CursorPositionFunc func(x, y float64)
	WindowResizeFunc   func(width, height int)
	CursorHoldFunc     = hold.Func
	PathDropFunc       func(paths []string)
)

// scrollEvent and friends are the values handed to the panic handler.
type (
	scrollEvent         struct{ DX, DY float64 }
	cursorPositionEvent struct{ X, Y float64 }
	resizeEvent         struct{ Width, Height int }
	holdEvent           struct{ At mouse.Position }
	dropEvent           struct{ Paths []string }
)
