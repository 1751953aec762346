package dispatch

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// Executor calls handlers with panic recovery and timing.
type Executor struct {
	panicHandler  PanicHandler
	recoverPanics bool

	// Stats
	executed    atomic.Uint64
	panicked    atomic.Uint64
	totalTimeNs atomic.Int64
}

// NewExecutor creates a new executor with the given options.
// Panics are recovered by default.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		panicHandler:  defaultPanicHandler,
		recoverPanics: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithPanicHandler sets the panic handler for the executor.
func WithPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		e.panicHandler = h
	}
}

// WithRecover controls whether handler panics are recovered.
func WithRecover(enabled bool) ExecutorOption {
	return func(e *Executor) {
		e.recoverPanics = enabled
	}
}

// Execute calls fn, which invokes a handler for event.
func (e *Executor) Execute(event any, fn func()) (result Result) {
	e.executed.Add(1)
	start := time.Now()

	if !e.recoverPanics {
		fn()
		result.Duration = time.Since(start)
		e.totalTimeNs.Add(result.Duration.Nanoseconds())
		return result
	}

	defer func() {
		result.Duration = time.Since(start)
		e.totalTimeNs.Add(result.Duration.Nanoseconds())

		if r := recover(); r != nil {
			stack := debug.Stack()

			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack
			e.panicked.Add(1)

			// A panicking panic handler must not escape either.
			if e.panicHandler != nil {
				func() {
					defer func() {
						_ = recover()
					}()
					e.panicHandler(event, r, stack)
				}()
			}
		}
	}()

	fn()
	return result
}

// Stats returns execution statistics.
// Values are read individually and may be slightly inconsistent if read
// while a pass is running on another goroutine.
func (e *Executor) Stats() Stats {
	executed := e.executed.Load()
	totalNs := e.totalTimeNs.Load()

	var avgNs int64
	if executed > 0 {
		avgNs = totalNs / int64(executed)
	}

	return Stats{
		Executed:      executed,
		Panicked:      e.panicked.Load(),
		TotalDuration: time.Duration(totalNs),
		AvgDuration:   time.Duration(avgNs),
	}
}

// ResetStats resets all statistics to zero.
func (e *Executor) ResetStats() {
	e.executed.Store(0)
	e.panicked.Store(0)
	e.totalTimeNs.Store(0)
}

// Stats contains statistics for an executor.
type Stats struct {
	// Executed is the total number of handler calls.
	Executed uint64

	// Panicked is the number of calls that panicked.
	Panicked uint64

	// TotalDuration is the cumulative time spent in handlers.
	TotalDuration time.Duration

	// AvgDuration is the average handler execution time.
	AvgDuration time.Duration
}
