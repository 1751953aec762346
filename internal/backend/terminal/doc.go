// Package terminal implements backend.Backend on a tcell screen.
//
// Terminals report key presses but not releases, so the backend emits a
// synthetic release right after each press unless EmitRelease is off.
// Mouse buttons are derived from changes in tcell's button mask, the wheel
// becomes scroll events, and focus changes become cursor enter and leave.
// Text pasted with bracketed paste is parsed as a list of file paths and
// delivered as a drop, which is how terminal emulators report files
// dragged onto the window.
//
// Key codes: printable ASCII runes use their rune value, tcell special keys
// use their tcell.Key value, and any other rune has code 0 (untracked).
// Scancodes: runes use their rune value and special keys are offset past
// the Unicode range, see SpecialScancode.
package terminal
