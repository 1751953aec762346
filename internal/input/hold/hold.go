package hold

import (
	"time"

	"github.com/dshills/inputmux/internal/event"
	"github.com/dshills/inputmux/internal/input/mouse"
)

// Func is called with the anchor position when a hold fires.
type Func func(at mouse.Position)

// Entry is the dwell state of one registration.
type Entry struct {
	fn      Func
	trigger time.Duration
	radius2 float64

	anchor   mouse.Position
	start    time.Duration
	anchored bool
}

// NewEntry creates an unanchored entry.
func NewEntry(trigger time.Duration, radius float64, fn Func) *Entry {
	return &Entry{
		fn:      fn,
		trigger: trigger,
		radius2: radius * radius,
	}
}

// Sample feeds one cursor sample taken at now and reports whether the
// hold condition holds.
func (e *Entry) Sample(now time.Duration, pos mouse.Position) bool {
	if !e.anchored {
		e.reanchor(now, pos)
		return false
	}

	if e.anchor.DistanceSquared(pos) > e.radius2 {
		e.reanchor(now, pos)
		return false
	}

	return now-e.start >= e.trigger
}

func (e *Entry) reanchor(now time.Duration, pos mouse.Position) {
	e.anchor = pos
	e.start = now
	e.anchored = true
}

// Anchor returns the current anchor and whether one is set.
func (e *Entry) Anchor() (mouse.Position, bool) {
	return e.anchor, e.anchored
}

// Trigger returns the dwell duration.
func (e *Entry) Trigger() time.Duration {
	return e.trigger
}

// Detector owns the hold registrations.
type Detector struct {
	list *event.List[*Entry]
}

// NewDetector creates an empty detector.
func NewDetector() *Detector {
	return &Detector{list: event.NewList[*Entry](event.CategoryCursorHold)}
}

// Register adds a hold handler. Toggling the handle only flips the
// enabled flag; the entry keeps its anchor.
func (d *Detector) Register(trigger time.Duration, radius float64, fn Func) event.Handle {
	return d.list.Add(NewEntry(trigger, radius, fn))
}

// Tick samples every enabled entry at pos. For each entry that fires,
// invoke is called with the anchor passed to the handler and a closure
// running it; a nil invoke runs it directly. Returns the number of
// handlers fired.
func (d *Detector) Tick(now time.Duration, pos mouse.Position, invoke func(at mouse.Position, run func())) int {
	fired := 0
	d.list.Fire(func(e *Entry) {
		if !e.Sample(now, pos) {
			return
		}
		fired++
		at := e.anchor
		run := func() { e.fn(at) }
		if invoke == nil {
			run()
			return
		}
		invoke(at, run)
	})
	return fired
}

// Len returns the number of registrations, enabled or not.
func (d *Detector) Len() int {
	return d.list.Len()
}

// Clear removes every registration.
func (d *Detector) Clear() {
	d.list.Clear()
}
