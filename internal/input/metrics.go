package input

import (
	"sync/atomic"
	"time"

	"github.com/dshills/inputmux/internal/event"
)

// counters are the per-category dispatch counters.
type counters struct {
	events          atomic.Uint64
	passes          atomic.Uint64
	invocations     atomic.Uint64
	suppressed      atomic.Uint64
	discarded       atomic.Uint64
	droppedReleases atomic.Uint64
	panics          atomic.Uint64
}

// Metrics tracks dispatch activity. Counters are atomic so a snapshot may
// be taken from another goroutine while the host loop dispatches.
type Metrics struct {
	categories [event.NumCategories]counters
	startTime  atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.startTime.Store(time.Now().UnixNano())
	return m
}

func (m *Metrics) of(c event.Category) *counters {
	return &m.categories[c]
}

// RecordEvent records a raw event received for c.
func (m *Metrics) RecordEvent(c event.Category) {
	m.of(c).events.Add(1)
}

// RecordPass records a dispatch pass over c that invoked n handlers.
func (m *Metrics) RecordPass(c event.Category, n int) {
	cs := m.of(c)
	cs.passes.Add(1)
	cs.invocations.Add(uint64(n))
}

// RecordSuppressed records an event dropped because input was captured.
func (m *Metrics) RecordSuppressed(c event.Category) {
	m.of(c).suppressed.Add(1)
}

// RecordDiscarded records an event dropped while input was paused.
func (m *Metrics) RecordDiscarded(c event.Category) {
	m.of(c).discarded.Add(1)
}

// RecordDroppedRelease records a key release with no matching press.
func (m *Metrics) RecordDroppedRelease() {
	m.of(event.CategoryKey).droppedReleases.Add(1)
}

// RecordPanic records a recovered handler panic.
func (m *Metrics) RecordPanic(c event.Category) {
	m.of(c).panics.Add(1)
}

// CategoryStats holds the counters of one category.
type CategoryStats struct {
	// Events is the number of raw events received.
	Events uint64

	// Passes is the number of dispatch passes run.
	Passes uint64

	// Invocations is the number of handler calls.
	Invocations uint64

	// Suppressed counts events dropped by keyboard or mouse capture.
	Suppressed uint64

	// Discarded counts events dropped while input handling was paused.
	Discarded uint64

	// DroppedReleases counts key releases without a recorded press.
	DroppedReleases uint64

	// Panics counts recovered handler panics.
	Panics uint64
}

// add accumulates o into s.
func (s *CategoryStats) add(o CategoryStats) {
	s.Events += o.Events
	s.Passes += o.Passes
	s.Invocations += o.Invocations
	s.Suppressed += o.Suppressed
	s.Discarded += o.Discarded
	s.DroppedReleases += o.DroppedReleases
	s.Panics += o.Panics
}

// Stats is a point-in-time view of the metrics.
type Stats struct {
	Categories [event.NumCategories]CategoryStats
	Uptime     time.Duration
}

// Category returns the counters of c.
func (s Stats) Category(c event.Category) CategoryStats {
	if int(c) >= len(s.Categories) {
		return CategoryStats{}
	}
	return s.Categories[c]
}

// Total sums the counters of every category.
func (s Stats) Total() CategoryStats {
	var total CategoryStats
	for _, cs := range s.Categories {
		total.add(cs)
	}
	return total
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() Stats {
	var s Stats
	for i := range m.categories {
		c := &m.categories[i]
		s.Categories[i] = CategoryStats{
			Events:          c.events.Load(),
			Passes:          c.passes.Load(),
			Invocations:     c.invocations.Load(),
			Suppressed:      c.suppressed.Load(),
			Discarded:       c.discarded.Load(),
			DroppedReleases: c.droppedReleases.Load(),
			Panics:          c.panics.Load(),
		}
	}
	s.Uptime = time.Since(time.Unix(0, m.startTime.Load()))
	return s
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	for i := range m.categories {
		c := &m.categories[i]
		c.events.Store(0)
		c.passes.Store(0)
		c.invocations.Store(0)
		c.suppressed.Store(0)
		c.discarded.Store(0)
		c.droppedReleases.Store(0)
		c.panics.Store(0)
	}
	m.startTime.Store(time.Now().UnixNano())
}
