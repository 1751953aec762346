package terminal

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/inputmux/internal/backend"
	"github.com/dshills/inputmux/internal/input/drop"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// specialBase offsets tcell special keys past every valid rune.
const specialBase = 0x110000

// Options configures the terminal backend.
type Options struct {
	// EmitRelease emits a release after every key press.
	EmitRelease bool

	// Mouse enables mouse reporting at startup.
	Mouse bool

	// Paste enables bracketed paste, used for path drops.
	Paste bool

	// Focus enables focus reporting, used for cursor enter and leave.
	Focus bool
}

// DefaultOptions returns options with every feature on.
func DefaultOptions() Options {
	return Options{
		EmitRelease: true,
		Mouse:       true,
		Paste:       true,
		Focus:       true,
	}
}

// Terminal is a backend.Backend reading events from a tcell screen.
type Terminal struct {
	screen tcell.Screen
	opts   Options
	sink   backend.Sink
	start  time.Time

	events chan tcell.Event
	done   chan struct{}

	buttons tcell.ButtonMask
	cursorX float64
	cursorY float64
	moved   bool

	pasting bool
	paste   strings.Builder
}

// New opens the controlling terminal.
func New(opts Options) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, opts)
}

// NewWithScreen initializes screen and starts reading its events.
func NewWithScreen(screen tcell.Screen, opts Options) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}

	if opts.Mouse {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}
	if opts.Paste {
		screen.EnablePaste()
	}
	if opts.Focus {
		screen.EnableFocus()
	}

	t := &Terminal{
		screen: screen,
		opts:   opts,
		start:  time.Now(),
		events: make(chan tcell.Event, 256),
		done:   make(chan struct{}),
	}
	go t.read()
	return t, nil
}

// read forwards screen events until the screen is finalized.
func (t *Terminal) read() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	select {
	case <-t.done:
		return
	default:
	}
	close(t.done)
	t.screen.Fini()
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

func (t *Terminal) Attach(s backend.Sink) {
	t.sink = s
}

func (t *Terminal) Poll() {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return
			}
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) Wait(timeout time.Duration) {
	var timer <-chan time.Time
	if timeout > 0 {
		tm := time.NewTimer(timeout)
		defer tm.Stop()
		timer = tm.C
	}

	select {
	case ev, ok := <-t.events:
		if !ok {
			return
		}
		t.handle(ev)
	case <-timer:
		return
	}
	t.Poll()
}

func (t *Terminal) KeyName(code key.Code, scancode int) (string, bool) {
	if scancode <= 0 || scancode >= specialBase {
		return "", false
	}
	return string(rune(scancode)), true
}

func (t *Terminal) Scancode(k key.Key) int {
	switch k {
	case key.KeySpace:
		return ' '
	case key.KeyEnter:
		return SpecialScancode(tcell.KeyEnter)
	case key.KeyEscape:
		return SpecialScancode(tcell.KeyEscape)
	case key.KeyTab:
		return SpecialScancode(tcell.KeyTab)
	case key.KeyBackspace:
		return SpecialScancode(tcell.KeyBackspace2)
	case key.KeyUp:
		return SpecialScancode(tcell.KeyUp)
	case key.KeyDown:
		return SpecialScancode(tcell.KeyDown)
	case key.KeyLeft:
		return SpecialScancode(tcell.KeyLeft)
	case key.KeyRight:
		return SpecialScancode(tcell.KeyRight)
	default:
		return 0
	}
}

func (t *Terminal) CursorPosition() (x, y float64) {
	return t.cursorX, t.cursorY
}

// SetCursorMode hides or shows the cursor. Mouse reporting is left on in
// both modes, so buttons, wheel and motion keep arriving while hidden.
func (t *Terminal) SetCursorMode(m mouse.Mode) {
	switch m {
	case mouse.ModeDisabled:
		t.screen.HideCursor()
	case mouse.ModeEnabled:
		t.screen.ShowCursor(int(t.cursorX), int(t.cursorY))
		if t.opts.Mouse {
			t.screen.EnableMouse(tcell.MouseMotionEvents)
		}
	}
}

func (t *Terminal) Now() time.Duration {
	return time.Since(t.start)
}

// SpecialScancode returns the scancode the backend reports for a tcell
// special key.
func SpecialScancode(k tcell.Key) int {
	return specialBase + int(k)
}

func (t *Terminal) handle(ev tcell.Event) {
	if t.sink == nil {
		return
	}

	switch e := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(e)
	case *tcell.EventMouse:
		t.handleMouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		t.sink.Resize(w, h)
	case *tcell.EventFocus:
		if e.Focused {
			t.sink.CursorMovement(mouse.MovementEnter)
		} else {
			t.sink.CursorMovement(mouse.MovementLeave)
		}
	case *tcell.EventPaste:
		t.handlePaste(e)
	}
}

func (t *Terminal) handleKey(e *tcell.EventKey) {
	if t.pasting {
		switch e.Key() {
		case tcell.KeyRune:
			t.paste.WriteRune(e.Rune())
		case tcell.KeyEnter, tcell.KeyLF:
			t.paste.WriteByte('\n')
		case tcell.KeyTab:
			t.paste.WriteByte('\t')
		}
		return
	}

	code, scancode := translateKey(e)
	mods := convertMod(e.Modifiers())

	t.sink.Key(code, scancode, key.ActionPress, mods)
	if t.opts.EmitRelease {
		t.sink.Key(code, scancode, key.ActionRelease, mods)
	}
}

func translateKey(e *tcell.EventKey) (key.Code, int) {
	if e.Key() != tcell.KeyRune {
		return key.Code(e.Key()), SpecialScancode(e.Key())
	}

	r := e.Rune()
	if r >= ' ' && r <= '~' {
		return key.Code(r), int(r)
	}
	return 0, int(r)
}

var buttonMap = []struct {
	mask   tcell.ButtonMask
	button mouse.Button
}{
	{tcell.ButtonPrimary, mouse.ButtonLeft},
	{tcell.ButtonSecondary, mouse.ButtonRight},
	{tcell.ButtonMiddle, mouse.ButtonMiddle},
}

func (t *Terminal) handleMouse(e *tcell.EventMouse) {
	ix, iy := e.Position()
	x, y := float64(ix), float64(iy)
	if !t.moved || x != t.cursorX || y != t.cursorY {
		t.cursorX, t.cursorY = x, y
		t.moved = true
		t.sink.CursorPosition(x, y)
	}

	mods := convertMod(e.Modifiers())
	mask := e.Buttons()

	for _, b := range buttonMap {
		was := t.buttons&b.mask != 0
		is := mask&b.mask != 0
		switch {
		case is && !was:
			t.sink.MouseButton(b.button, key.ActionPress, mods)
		case was && !is:
			t.sink.MouseButton(b.button, key.ActionRelease, mods)
		}
	}
	t.buttons = mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)

	var dx, dy float64
	if mask&tcell.WheelUp != 0 {
		dy++
	}
	if mask&tcell.WheelDown != 0 {
		dy--
	}
	if mask&tcell.WheelLeft != 0 {
		dx--
	}
	if mask&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		t.sink.Scroll(dx, dy)
	}
}

func (t *Terminal) handlePaste(e *tcell.EventPaste) {
	if e.Start() {
		t.pasting = true
		t.paste.Reset()
		return
	}
	if !t.pasting {
		return
	}

	t.pasting = false
	paths := drop.SplitPasted(t.paste.String())
	t.paste.Reset()
	if len(paths) > 0 {
		t.sink.Drop(paths)
	}
}

// convertMod converts a tcell modifier mask.
func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModSuper
	}
	return result
}
