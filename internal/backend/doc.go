// Package backend defines the boundary between the input dispatcher and the
// window system that produces raw events.
//
// A Backend pushes raw events into a Sink during Poll or Wait, answers
// key-name and scancode queries, reports the cursor position, and provides
// a monotonic clock for hold detection. A Capture reports whether another
// layer, such as an immediate-mode UI, currently owns the keyboard or the
// mouse.
//
// Null is an in-memory backend used by tests and headless hosts.
// Terminal backends live in subpackages.
package backend
