package input

import (
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// chord is an event carrying modifiers and an action.
type chord interface {
	KeyEvent | UTF8KeyEvent | MouseButtonEvent
	mods() key.Modifier
	action() key.Action
}

// WithMods wraps fn so it only sees events whose modifiers equal mods
// exactly.
func WithMods[E chord](mods key.Modifier, fn func(E)) func(E) {
	return func(e E) {
		if e.mods() == mods {
			fn(e)
		}
	}
}

// WithAction wraps fn so it only sees events with the given action.
func WithAction[E chord](a key.Action, fn func(E)) func(E) {
	return func(e E) {
		if e.action() == a {
			fn(e)
		}
	}
}

// OnScancode wraps fn so it only sees events for one scancode.
func OnScancode(scancode int, fn func(KeyEvent)) KeyFunc {
	return func(e KeyEvent) {
		if e.Scancode == scancode {
			fn(e)
		}
	}
}

// OnKeyName wraps fn so it only sees events whose name equals name.
func OnKeyName(name string, fn func(UTF8KeyEvent)) UTF8KeyFunc {
	return func(e UTF8KeyEvent) {
		if e.Name == name {
			fn(e)
		}
	}
}

// OnButton wraps fn so it only sees events for one mouse button.
func OnButton(b mouse.Button, fn func(MouseButtonEvent)) MouseButtonFunc {
	return func(e MouseButtonEvent) {
		if e.Button == b {
			fn(e)
		}
	}
}

// OnMovement wraps fn so it runs only for one crossing direction.
func OnMovement(m mouse.Movement, fn func()) CursorMovementFunc {
	return func(got mouse.Movement) {
		if got == m {
			fn()
		}
	}
}
