package input

import (
	"github.com/dshills/inputmux/internal/event"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// The methods in this file implement backend.Sink. Hosts with their own
// event source may call them directly.

// invoke runs one handler call through the executor.
func (m *Manager) invoke(c event.Category, ev any, run func()) {
	if res := m.exec.Execute(ev, run); res.Panicked {
		m.metrics.RecordPanic(c)
	}
}

// runSnapshot runs the handlers of a detached snapshot.
func runSnapshot[T any](m *Manager, c event.Category, s event.Snapshot[T], ev any, call func(T)) {
	n := s.Each(func(h T) {
		m.invoke(c, ev, func() { call(h) })
	})
	m.metrics.RecordPass(c, n)
}

// fire runs one full pass over l. The list is restored even if a handler
// panic propagates.
func fire[T any](m *Manager, l *event.List[T], ev any, call func(T)) {
	s := l.Detach()
	defer l.Restore(s)
	runSnapshot(m, l.Category(), s, ev, call)
}

// admit applies the pause gate.
func (m *Manager) admit(c event.Category) bool {
	m.metrics.RecordEvent(c)
	if m.paused {
		m.metrics.RecordDiscarded(c)
		return false
	}
	return true
}

// admitPointer applies the pause gate and mouse capture.
func (m *Manager) admitPointer(c event.Category) bool {
	if !m.admit(c) {
		return false
	}
	if m.capture.MouseCaptured() {
		m.metrics.RecordSuppressed(c)
		m.logger.Debug().Stringer("category", c).Msg("suppressed by mouse capture")
		return false
	}
	return true
}

// Key dispatches a raw key event.
func (m *Manager) Key(code key.Code, scancode int, action key.Action, mods key.Modifier) {
	if !m.admit(event.CategoryKey) {
		return
	}

	// A captured keyboard still lets through the release of a key this
	// manager saw go down, so no handler is left with a stuck key.
	if m.capture.KeyboardCaptured() && !(action == key.ActionRelease && m.keys.Pressed(code)) {
		m.metrics.RecordSuppressed(event.CategoryKey)
		m.logger.Debug().
			Int("code", int(code)).
			Stringer("action", action).
			Msg("suppressed by keyboard capture")
		return
	}

	if !m.keys.Observe(code, action) {
		m.metrics.RecordDroppedRelease()
		m.logger.Debug().Int("code", int(code)).Msg("dropped release without press")
		return
	}

	ev := KeyEvent{Code: code, Scancode: scancode, Action: action, Mods: mods}

	keySnap := m.keyHandlers.Detach()
	utf8Snap := m.utf8KeyHandlers.Detach()
	defer func() {
		m.keyHandlers.Restore(keySnap)
		m.utf8KeyHandlers.Restore(utf8Snap)
	}()

	runSnapshot(m, event.CategoryKey, keySnap, ev, func(h KeyFunc) { h(ev) })

	if utf8Snap.Len() == 0 {
		return
	}
	name, ok := m.backend.KeyName(code, scancode)
	if !ok {
		return
	}
	uev := UTF8KeyEvent{Name: name, Action: action, Mods: mods}
	runSnapshot(m, event.CategoryUTF8Key, utf8Snap, uev, func(h UTF8KeyFunc) { h(uev) })
}

// MouseButton dispatches a mouse button event.
func (m *Manager) MouseButton(button mouse.Button, action key.Action, mods key.Modifier) {
	if !m.admitPointer(event.CategoryMouseButton) {
		return
	}
	ev := MouseButtonEvent{Button: button, Action: action, Mods: mods}
	fire(m, m.mouseButtonHandlers, ev, func(h MouseButtonFunc) { h(ev) })
}

// Scroll dispatches a scroll event.
func (m *Manager) Scroll(dx, dy float64) {
	if !m.admitPointer(event.CategoryScroll) {
		return
	}
	fire(m, m.scrollHandlers, scrollEvent{DX: dx, DY: dy}, func(h ScrollFunc) { h(dx, dy) })
}

// CursorMovement dispatches the cursor entering or leaving the window.
func (m *Manager) CursorMovement(mv mouse.Movement) {
	if !m.admitPointer(event.CategoryCursorMovement) {
		return
	}
	fire(m, m.cursorMovementHandlers, mv, func(h CursorMovementFunc) { h(mv) })
}

// CursorPosition dispatches cursor motion.
func (m *Manager) CursorPosition(x, y float64) {
	if !m.admitPointer(event.CategoryCursorPosition) {
		return
	}
	fire(m, m.cursorPositionHandlers, cursorPositionEvent{X: x, Y: y}, func(h CursorPositionFunc) { h(x, y) })
}

// Resize dispatches a window size change. Capture never applies.
func (m *Manager) Resize(width, height int) {
	if !m.admit(event.CategoryWindowResize) {
		return
	}
	fire(m, m.windowResizeHandlers, resizeEvent{Width: width, Height: height}, func(h WindowResizeFunc) { h(width, height) })
}

// Drop dispatches dropped paths. Capture never applies.
func (m *Manager) Drop(paths []string) {
	if !m.admit(event.CategoryPathDrop) {
		return
	}
	fire(m, m.pathDropHandlers, dropEvent{Paths: paths}, func(h PathDropFunc) { h(paths) })
}
