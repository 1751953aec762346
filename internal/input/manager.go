package input

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dshills/inputmux/internal/backend"
	"github.com/dshills/inputmux/internal/event"
	"github.com/dshills/inputmux/internal/event/dispatch"
	"github.com/dshills/inputmux/internal/input/drop"
	"github.com/dshills/inputmux/internal/input/hold"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// Manager routes raw backend events to registered handlers.
//
// A Manager is driven from one goroutine, normally the host's main loop,
// through PollEvents or WaitUntilNextEvent. It is not safe for concurrent
// use. Handlers run on the calling goroutine and may register, enable or
// disable handlers, including themselves, while being dispatched.
type Manager struct {
	id      uuid.UUID
	backend backend.Backend
	capture backend.Capture
	logger  zerolog.Logger
	aliases key.AliasResolver

	exec          *dispatch.Executor
	recoverPanics bool
	metrics       *Metrics

	keys   *key.State
	paused bool

	keyHandlers            *event.List[KeyFunc]
	utf8KeyHandlers        *event.List[UTF8KeyFunc]
	mouseButtonHandlers    *event.List[MouseButtonFunc]
	scrollHandlers         *event.List[ScrollFunc]
	cursorMovementHandlers *event.List[CursorMovementFunc]
	cursorPositionHandlers *event.List[CursorPositionFunc]
	windowResizeHandlers   *event.List[WindowResizeFunc]
	pathDropHandlers       *event.List[PathDropFunc]
	holds                  *hold.Detector

	dropSources []DropSource
}

var _ backend.Sink = (*Manager)(nil)

// New creates a manager reading events from b and attaches itself to b.
func New(b backend.Backend, opts ...Option) *Manager {
	m := &Manager{
		id:            uuid.New(),
		backend:       b,
		capture:       backend.NoCapture{},
		logger:        zerolog.Nop(),
		aliases:       key.NewAliasResolver(b.Scancode),
		recoverPanics: true,
		metrics:       NewMetrics(),
		keys:          key.NewState(),

		keyHandlers:            event.NewList[KeyFunc](event.CategoryKey),
		utf8KeyHandlers:        event.NewList[UTF8KeyFunc](event.CategoryUTF8Key),
		mouseButtonHandlers:    event.NewList[MouseButtonFunc](event.CategoryMouseButton),
		scrollHandlers:         event.NewList[ScrollFunc](event.CategoryScroll),
		cursorMovementHandlers: event.NewList[CursorMovementFunc](event.CategoryCursorMovement),
		cursorPositionHandlers: event.NewList[CursorPositionFunc](event.CategoryCursorPosition),
		windowResizeHandlers:   event.NewList[WindowResizeFunc](event.CategoryWindowResize),
		pathDropHandlers:       event.NewList[PathDropFunc](event.CategoryPathDrop),
		holds:                  hold.NewDetector(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With().Str("manager", m.id.String()).Logger()
	m.exec = dispatch.NewExecutor(
		dispatch.WithRecover(m.recoverPanics),
		dispatch.WithPanicHandler(m.logPanic),
	)

	b.Attach(m)
	return m
}

// ID returns the manager's instance id.
func (m *Manager) ID() uuid.UUID {
	return m.id
}

// Backend returns the backend the manager reads from.
func (m *Manager) Backend() backend.Backend {
	return m.backend
}

func (m *Manager) logPanic(ev any, value any, stack []byte) {
	m.logger.Error().
		Str("event", eventName(ev)).
		Interface("data", ev).
		Interface("panic", value).
		Bytes("stack", stack).
		Msg("input handler panicked")
}

func eventName(ev any) string {
	switch ev.(type) {
	case KeyEvent:
		return "key"
	case UTF8KeyEvent:
		return "utf8-key"
	case MouseButtonEvent:
		return "mouse-button"
	case scrollEvent:
		return "scroll"
	case mouse.Movement:
		return "cursor-movement"
	case cursorPositionEvent:
		return "cursor-position"
	case resizeEvent:
		return "window-resize"
	case holdEvent:
		return "cursor-hold"
	case dropEvent:
		return "path-drop"
	default:
		return "unknown"
	}
}

// Registration

// RegisterKeyHandler registers fn for every key event.
func (m *Manager) RegisterKeyHandler(fn KeyFunc) event.Handle {
	return m.keyHandlers.Add(fn)
}

// RegisterUTF8KeyHandler registers fn for every key event whose key has a
// printable name.
func (m *Manager) RegisterUTF8KeyHandler(fn UTF8KeyFunc) event.Handle {
	return m.utf8KeyHandlers.Add(fn)
}

// RegisterKeyNameHandler registers fn for one key name. The alias tokens
// " ", "\n", "->" and "<-" are resolved to scancodes now and registered
// as key handlers, so fn also fires for keys without a printable name.
// Any other name is compared with the key's UTF-8 name at dispatch time.
func (m *Manager) RegisterKeyNameHandler(name string, fn UTF8KeyFunc) event.Handle {
	if scancode, ok := m.aliases.Resolve(name); ok {
		return m.keyHandlers.Add(func(e KeyEvent) {
			if e.Scancode == scancode {
				fn(UTF8KeyEvent{Name: name, Action: e.Action, Mods: e.Mods})
			}
		})
	}
	return m.utf8KeyHandlers.Add(OnKeyName(name, fn))
}

// RegisterMouseButtonHandler registers fn for mouse button events.
func (m *Manager) RegisterMouseButtonHandler(fn MouseButtonFunc) event.Handle {
	return m.mouseButtonHandlers.Add(fn)
}

// RegisterScrollHandler registers fn for scroll events.
func (m *Manager) RegisterScrollHandler(fn ScrollFunc) event.Handle {
	return m.scrollHandlers.Add(fn)
}

// RegisterCursorMovementHandler registers fn for the cursor entering or
// leaving the window.
func (m *Manager) RegisterCursorMovementHandler(fn CursorMovementFunc) event.Handle {
	return m.cursorMovementHandlers.Add(fn)
}

// RegisterCursorPositionHandler registers fn for cursor motion.
func (m *Manager) RegisterCursorPositionHandler(fn CursorPositionFunc) event.Handle {
	return m.cursorPositionHandlers.Add(fn)
}

// RegisterCursorHoldHandler registers fn to fire while the cursor stays
// within radius of one point for at least trigger. It fires on every tick
// for as long as the cursor stays put.
func (m *Manager) RegisterCursorHoldHandler(trigger time.Duration, radius float64, fn CursorHoldFunc) event.Handle {
	return m.holds.Register(trigger, radius, fn)
}

// RegisterWindowResizeHandler registers fn for window size changes.
func (m *Manager) RegisterWindowResizeHandler(fn WindowResizeFunc) event.Handle {
	return m.windowResizeHandlers.Add(fn)
}

// RegisterPathDropHandler registers fn to be called once for each dropped
// path whose extension is one of exts. With no exts every path matches.
func (m *Manager) RegisterPathDropHandler(fn func(path string), exts ...string) event.Handle {
	return m.pathDropHandlers.Add(drop.PerPath(drop.NewFilter(exts...), fn))
}

// RegisterPathDropBatchHandler registers fn to be called once per drop
// with the paths whose extension is one of exts, in drop order. fn is
// called even when no path matches.
func (m *Manager) RegisterPathDropBatchHandler(fn func(paths []string), exts ...string) event.Handle {
	return m.pathDropHandlers.Add(drop.Batch(drop.NewFilter(exts...), fn))
}

// Control

// SetMouseMode forwards m to the backend.
func (m *Manager) SetMouseMode(mode mouse.Mode) {
	m.backend.SetCursorMode(mode)
}

// PauseInputHandling discards every event until ContinueInputHandling.
// Hold ticks are skipped while paused.
func (m *Manager) PauseInputHandling() {
	if !m.paused {
		m.logger.Debug().Msg("input handling paused")
	}
	m.paused = true
}

// ContinueInputHandling resumes dispatch. Key state is left as it was, so
// a key pressed before the pause still delivers its release.
func (m *Manager) ContinueInputHandling() {
	if m.paused {
		m.logger.Debug().Msg("input handling resumed")
	}
	m.paused = false
}

// Paused reports whether input handling is paused.
func (m *Manager) Paused() bool {
	return m.paused
}

// PollEvents dispatches every pending event without blocking, then runs
// one hold tick.
func (m *Manager) PollEvents() {
	m.backend.Poll()
	m.drainDrops()
	m.Tick()
}

// WaitUntilNextEvent blocks until the backend has an event or timeout
// elapses, dispatches what arrived, then runs one hold tick. A timeout
// <= 0 waits indefinitely.
func (m *Manager) WaitUntilNextEvent(timeout time.Duration) {
	m.backend.Wait(timeout)
	m.drainDrops()
	m.Tick()
}

func (m *Manager) drainDrops() {
	for _, s := range m.dropSources {
		s.Drain(m.Drop)
	}
}

// Tick samples the backend clock and cursor for hold detection.
func (m *Manager) Tick() {
	x, y := m.backend.CursorPosition()
	m.TickAt(m.backend.Now(), mouse.Position{X: x, Y: y})
}

// TickAt runs hold detection for a sample taken at now. It does nothing
// while paused or while the mouse is captured.
func (m *Manager) TickAt(now time.Duration, pos mouse.Position) {
	if m.paused || m.capture.MouseCaptured() {
		return
	}
	n := m.holds.Tick(now, pos, func(at mouse.Position, run func()) {
		m.invoke(event.CategoryCursorHold, holdEvent{At: at}, run)
	})
	m.metrics.RecordPass(event.CategoryCursorHold, n)
}

// Clear removes every handler, invalidates every handle and releases
// every key.
func (m *Manager) Clear() {
	m.keyHandlers.Clear()
	m.utf8KeyHandlers.Clear()
	m.mouseButtonHandlers.Clear()
	m.scrollHandlers.Clear()
	m.cursorMovementHandlers.Clear()
	m.cursorPositionHandlers.Clear()
	m.windowResizeHandlers.Clear()
	m.pathDropHandlers.Clear()
	m.holds.Clear()
	m.keys.Reset()
}

// KeyPressed reports whether the manager has recorded code as held down.
func (m *Manager) KeyPressed(code key.Code) bool {
	return m.keys.Pressed(code)
}

// Stats returns a snapshot of the dispatch counters.
func (m *Manager) Stats() Stats {
	return m.metrics.Snapshot()
}

// ResetStats clears the dispatch counters.
func (m *Manager) ResetStats() {
	m.metrics.Reset()
	m.exec.ResetStats()
}

// ExecutorStats returns handler timing statistics.
func (m *Manager) ExecutorStats() dispatch.Stats {
	return m.exec.Stats()
}
