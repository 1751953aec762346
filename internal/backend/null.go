package backend

import (
	"sync"
	"time"

	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// Null is an in-memory backend. Events are queued with the Post helpers,
// which are safe to call from any goroutine, and delivered on Poll or Wait.
type Null struct {
	mu        sync.Mutex
	sink      Sink
	names     map[int]string
	scancodes map[key.Key]int
	cursorX   float64
	cursorY   float64
	mode      mouse.Mode
	now       time.Duration

	events chan func(Sink)
}

// Default scancodes for the alias keys.
var defaultScancodes = map[key.Key]int{
	key.KeySpace:     57,
	key.KeyEnter:     28,
	key.KeyEscape:    1,
	key.KeyTab:       15,
	key.KeyBackspace: 14,
	key.KeyUp:        328,
	key.KeyDown:      336,
	key.KeyLeft:      331,
	key.KeyRight:     333,
}

// NewNull creates a null backend with room for queueSize pending events.
func NewNull(queueSize int) *Null {
	if queueSize <= 0 {
		queueSize = 100
	}
	sc := make(map[key.Key]int, len(defaultScancodes))
	for k, v := range defaultScancodes {
		sc[k] = v
	}
	return &Null{
		names:     make(map[int]string),
		scancodes: sc,
		mode:      mouse.ModeEnabled,
		events:    make(chan func(Sink), queueSize),
	}
}

func (b *Null) Attach(s Sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sink = s
}

func (b *Null) Poll() {
	for {
		select {
		case ev := <-b.events:
			b.deliver(ev)
		default:
			return
		}
	}
}

func (b *Null) Wait(timeout time.Duration) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case ev := <-b.events:
		b.deliver(ev)
	case <-timer:
		return
	}
	b.Poll()
}

func (b *Null) deliver(ev func(Sink)) {
	b.mu.Lock()
	s := b.sink
	b.mu.Unlock()
	if s != nil {
		ev(s)
	}
}

func (b *Null) KeyName(code key.Code, scancode int) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	name, ok := b.names[scancode]
	return name, ok
}

func (b *Null) Scancode(k key.Key) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scancodes[k]
}

func (b *Null) CursorPosition() (x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY
}

func (b *Null) SetCursorMode(m mouse.Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = m
}

func (b *Null) Now() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.now
}

// CursorMode returns the last mode set with SetCursorMode.
func (b *Null) CursorMode() mouse.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// SetKeyName makes KeyName resolve scancode to name.
func (b *Null) SetKeyName(scancode int, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.names[scancode] = name
}

// SetScancode overrides the scancode reported for k.
func (b *Null) SetScancode(k key.Key, scancode int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scancodes[k] = scancode
}

// SetTime sets the clock returned by Now.
func (b *Null) SetTime(now time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// Advance moves the clock forward by d.
func (b *Null) Advance(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now += d
}

// MoveCursor sets the cursor position without queueing an event.
func (b *Null) MoveCursor(x, y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
}

// Post queues a raw event. Returns false if the queue is full.
func (b *Null) Post(ev func(Sink)) bool {
	select {
	case b.events <- ev:
		return true
	default:
		return false
	}
}

// Pending returns the number of queued events.
func (b *Null) Pending() int {
	return len(b.events)
}

// PostKey queues a key event.
func (b *Null) PostKey(code key.Code, scancode int, action key.Action, mods key.Modifier) bool {
	return b.Post(func(s Sink) { s.Key(code, scancode, action, mods) })
}

// PostMouseButton queues a mouse button event.
func (b *Null) PostMouseButton(button mouse.Button, action key.Action, mods key.Modifier) bool {
	return b.Post(func(s Sink) { s.MouseButton(button, action, mods) })
}

// PostScroll queues a scroll event.
func (b *Null) PostScroll(dx, dy float64) bool {
	return b.Post(func(s Sink) { s.Scroll(dx, dy) })
}

// PostCursorMovement queues an enter or leave event.
func (b *Null) PostCursorMovement(m mouse.Movement) bool {
	return b.Post(func(s Sink) { s.CursorMovement(m) })
}

// PostCursorPosition queues a cursor motion event and updates the
// position reported by CursorPosition when it is delivered.
func (b *Null) PostCursorPosition(x, y float64) bool {
	return b.Post(func(s Sink) {
		b.MoveCursor(x, y)
		s.CursorPosition(x, y)
	})
}

// PostResize queues a window resize.
func (b *Null) PostResize(width, height int) bool {
	return b.Post(func(s Sink) { s.Resize(width, height) })
}

// PostDrop queues a file drop.
func (b *Null) PostDrop(paths ...string) bool {
	return b.Post(func(s Sink) { s.Drop(paths) })
}
