// Package mouse provides the pointer vocabulary of the input dispatcher.
//
// # Core Types
//
// Button identifies a mouse button. Button events carry a key.Action and
// key.Modifier, the same phase and modifier types used for keys.
//
// Movement reports the cursor entering or leaving the window.
//
// Position is a cursor coordinate in backend units (pixels for windowing
// backends, cells for terminals):
//
//	p := mouse.Position{X: 10, Y: 4}
//	if p.DistanceSquared(anchor) > radius*radius {
//	    // cursor moved away
//	}
//
// Mode is forwarded verbatim to the backend's cursor-mode setter.
package mouse
