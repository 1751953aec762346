package key

// State tracks which key codes are currently held down.
// It is not safe for concurrent use.
type State struct {
	pressed [MaxCode]bool
}

// NewState creates a key state with every key released.
func NewState() *State {
	return &State{}
}

// Observe records an action for code and reports whether the event should be
// dispatched. A release of a key that is not pressed returns false. Codes
// outside the valid range are not tracked and always return true.
func (s *State) Observe(code Code, action Action) bool {
	if !code.Valid() {
		return true
	}

	idx := code - 1
	switch action {
	case ActionPress:
		s.pressed[idx] = true
	case ActionRelease:
		if !s.pressed[idx] {
			return false
		}
		s.pressed[idx] = false
	}
	return true
}

// Pressed returns true if code is recorded as held down.
func (s *State) Pressed(code Code) bool {
	if !code.Valid() {
		return false
	}
	return s.pressed[code-1]
}

// PressedCount returns the number of keys currently held down.
func (s *State) PressedCount() int {
	n := 0
	for _, p := range s.pressed {
		if p {
			n++
		}
	}
	return n
}

// Reset releases every key.
func (s *State) Reset() {
	s.pressed = [MaxCode]bool{}
}
