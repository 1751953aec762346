// Package key provides the keyboard vocabulary of the input dispatcher.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Code: A backend-native key code, used to index key state
//   - Key: A small set of logical keys the backend can translate to scancodes
//   - Modifier: Modifier keys held during an event (Shift, Control, Alt, Super)
//   - Action: Press, release or repeat
//   - State: Per-code pressed/released tracking
//   - AliasResolver: Registration-time mapping of string tokens to scancodes
//
// # Key State
//
// State is a fixed-size table indexed by Code. A release for a code that is
// not recorded as pressed is reported as not dispatchable, which keeps a
// capture transition in the middle of a gesture from producing a release
// without its press.
//
// # Aliases
//
// A handful of tokens stand for keys that have no useful UTF-8 name:
//
//	" "   space
//	"\n"  enter
//	"->"  right arrow
//	"<-"  left arrow
//
// Any other token is a literal UTF-8 key name.
package key
