// Package input routes raw input events from a backend to application
// handlers.
//
// A Manager owns one handler list per event category: key, UTF-8 key,
// mouse button, scroll, cursor enter/leave, cursor position, window
// resize, cursor hold and path drop. Registering returns an event.Handle
// used to disable and re-enable the handler later; handlers are never
// removed individually.
//
// # Dispatch
//
// Each event runs one pass over its category. The pass detaches the list,
// calls every handler that was enabled when the pass started, in
// registration order, and then restores the list. Handlers may register
// new handlers or toggle existing ones during a pass; new handlers first
// run on the next event and toggles take effect on the next event.
//
// # Capture
//
// A backend.Capture reports whether another layer owns the keyboard or
// mouse. While the keyboard is captured only releases of keys this
// manager saw pressed are delivered. While the mouse is captured button,
// scroll, cursor position and enter/leave events are dropped and hold
// detection is skipped. Resize and path drop events are never captured.
//
// # Usage
//
//	m := input.New(term, input.WithLogger(logger))
//
//	m.RegisterKeyNameHandler("q", input.WithAction(key.ActionPress, func(input.UTF8KeyEvent) {
//	    quit = true
//	}))
//	m.RegisterCursorHoldHandler(500*time.Millisecond, 2, func(at mouse.Position) {
//	    showTooltip(at)
//	})
//
//	for !quit {
//	    m.WaitUntilNextEvent(16 * time.Millisecond)
//	}
package input
