package backend

import (
	"testing"
	"time"

	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// recorder is a Sink that records event names.
type recorder struct {
	events []string
	x, y   float64
}

func (r *recorder) Key(code key.Code, scancode int, action key.Action, mods key.Modifier) {
	r.events = append(r.events, "key:"+action.String())
}
func (r *recorder) MouseButton(b mouse.Button, action key.Action, mods key.Modifier) {
	r.events = append(r.events, "button:"+b.String())
}
func (r *recorder) Scroll(dx, dy float64)           { r.events = append(r.events, "scroll") }
func (r *recorder) CursorMovement(m mouse.Movement) { r.events = append(r.events, "move:"+m.String()) }
func (r *recorder) CursorPosition(x, y float64) {
	r.events = append(r.events, "pos")
	r.x, r.y = x, y
}
func (r *recorder) Resize(w, h int)     { r.events = append(r.events, "resize") }
func (r *recorder) Drop(paths []string) { r.events = append(r.events, "drop") }

func TestNullPollDeliversInOrder(t *testing.T) {
	b := NewNull(0)
	r := &recorder{}
	b.Attach(r)

	b.PostKey(65, 30, key.ActionPress, 0)
	b.PostMouseButton(mouse.ButtonRight, key.ActionPress, 0)
	b.PostScroll(0, 1)
	b.PostCursorMovement(mouse.MovementEnter)
	b.PostCursorPosition(3, 4)
	b.PostResize(80, 24)
	b.PostDrop("a.png")

	b.Poll()

	want := []string{"key:press", "button:right", "scroll", "move:enter", "pos", "resize", "drop"}
	if len(r.events) != len(want) {
		t.Fatalf("events = %v, want %v", r.events, want)
	}
	for i := range want {
		if r.events[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, r.events[i], want[i])
		}
	}

	x, y := b.CursorPosition()
	if x != 3 || y != 4 {
		t.Errorf("CursorPosition = (%v, %v), want (3, 4)", x, y)
	}
	if b.Pending() != 0 {
		t.Errorf("Pending = %d after Poll", b.Pending())
	}
}

func TestNullPollEmpty(t *testing.T) {
	b := NewNull(1)
	b.Attach(&recorder{})
	b.Poll()
}

func TestNullPostQueueFull(t *testing.T) {
	b := NewNull(1)
	if !b.PostScroll(0, 1) {
		t.Fatal("first post should succeed")
	}
	if b.PostScroll(0, 1) {
		t.Error("post into full queue should fail")
	}
}

func TestNullWaitTimeout(t *testing.T) {
	b := NewNull(1)
	r := &recorder{}
	b.Attach(r)

	start := time.Now()
	b.Wait(20 * time.Millisecond)
	if time.Since(start) < 20*time.Millisecond {
		t.Error("Wait returned before timeout")
	}
	if len(r.events) != 0 {
		t.Errorf("events = %v, want none", r.events)
	}
}

func TestNullWaitWakesOnEvent(t *testing.T) {
	b := NewNull(4)
	r := &recorder{}
	b.Attach(r)

	go func() {
		time.Sleep(10 * time.Millisecond)
		b.PostResize(1, 1)
	}()

	b.Wait(0)
	if len(r.events) != 1 || r.events[0] != "resize" {
		t.Errorf("events = %v, want [resize]", r.events)
	}
}

func TestNullKeyNamesAndScancodes(t *testing.T) {
	b := NewNull(0)

	if _, ok := b.KeyName(65, 30); ok {
		t.Error("unset key name resolved")
	}
	b.SetKeyName(30, "a")
	if name, ok := b.KeyName(65, 30); !ok || name != "a" {
		t.Errorf("KeyName = %q, %v", name, ok)
	}

	if b.Scancode(key.KeySpace) != 57 {
		t.Errorf("Scancode(space) = %d, want 57", b.Scancode(key.KeySpace))
	}
	b.SetScancode(key.KeySpace, 99)
	if b.Scancode(key.KeySpace) != 99 {
		t.Error("SetScancode not applied")
	}
}

func TestNullClockAndMode(t *testing.T) {
	b := NewNull(0)

	b.SetTime(time.Second)
	b.Advance(250 * time.Millisecond)
	if b.Now() != 1250*time.Millisecond {
		t.Errorf("Now = %v", b.Now())
	}

	b.SetCursorMode(mouse.ModeDisabled)
	if b.CursorMode() != mouse.ModeDisabled {
		t.Errorf("CursorMode = %v", b.CursorMode())
	}
}

func TestCaptures(t *testing.T) {
	var none Capture = NoCapture{}
	if none.KeyboardCaptured() || none.MouseCaptured() {
		t.Error("NoCapture captured")
	}

	c := &StaticCapture{Mouse: true}
	var capt Capture = c
	if capt.KeyboardCaptured() || !capt.MouseCaptured() {
		t.Error("StaticCapture state not reported")
	}
	c.Keyboard = true
	if !capt.KeyboardCaptured() {
		t.Error("StaticCapture update not reported")
	}
}
