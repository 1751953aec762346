package key

import "testing"

func TestStatePressRelease(t *testing.T) {
	s := NewState()

	if !s.Observe(65, ActionPress) {
		t.Fatal("press should dispatch")
	}
	if !s.Pressed(65) {
		t.Error("key should be pressed after press")
	}
	if !s.Observe(65, ActionRelease) {
		t.Error("release after press should dispatch")
	}
	if s.Pressed(65) {
		t.Error("key should be released after release")
	}
}

func TestStateDoubleRelease(t *testing.T) {
	s := NewState()

	s.Observe(10, ActionPress)
	if !s.Observe(10, ActionRelease) {
		t.Error("first release should dispatch")
	}
	if s.Observe(10, ActionRelease) {
		t.Error("second release should be dropped")
	}
}

func TestStateReleaseWithoutPress(t *testing.T) {
	s := NewState()
	if s.Observe(42, ActionRelease) {
		t.Error("release without press should be dropped")
	}
}

func TestStateRepeat(t *testing.T) {
	s := NewState()

	if !s.Observe(7, ActionRepeat) {
		t.Error("repeat should dispatch")
	}
	if s.Pressed(7) {
		t.Error("repeat should not change state")
	}

	s.Observe(7, ActionPress)
	s.Observe(7, ActionRepeat)
	if !s.Pressed(7) {
		t.Error("repeat should not release a pressed key")
	}
}

func TestStateOutOfRange(t *testing.T) {
	s := NewState()

	for _, code := range []Code{0, -5, MaxCode + 1} {
		if !s.Observe(code, ActionRelease) {
			t.Errorf("code %d: out of range release should dispatch", code)
		}
		if !s.Observe(code, ActionPress) {
			t.Errorf("code %d: out of range press should dispatch", code)
		}
		if s.Pressed(code) {
			t.Errorf("code %d: out of range code should never be pressed", code)
		}
	}
	if s.PressedCount() != 0 {
		t.Errorf("PressedCount() = %d, want 0", s.PressedCount())
	}
}

func TestStateBoundaries(t *testing.T) {
	s := NewState()

	s.Observe(1, ActionPress)
	s.Observe(MaxCode, ActionPress)
	if !s.Pressed(1) || !s.Pressed(MaxCode) {
		t.Error("boundary codes should be tracked")
	}
	if s.PressedCount() != 2 {
		t.Errorf("PressedCount() = %d, want 2", s.PressedCount())
	}

	s.Reset()
	if s.PressedCount() != 0 {
		t.Errorf("PressedCount() after Reset = %d, want 0", s.PressedCount())
	}
}
