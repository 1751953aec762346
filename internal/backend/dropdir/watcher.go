package dropdir

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config configures a Watcher.
type Config struct {
	// Debounce is how long the watcher waits after the last new file
	// before emitting a batch.
	Debounce time.Duration

	// IgnoreHidden skips files whose name starts with '.'.
	IgnoreHidden bool

	// BufferSize is the number of batches held until drained.
	BufferSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Debounce:     150 * time.Millisecond,
		IgnoreHidden: true,
		BufferSize:   16,
	}
}

// Option configures a Watcher.
type Option func(*Config)

// WithDebounce sets the batching delay.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithIgnoreHidden controls whether dot files are reported.
func WithIgnoreHidden(ignore bool) Option {
	return func(c *Config) {
		c.IgnoreHidden = ignore
	}
}

// WithBufferSize sets how many batches are buffered.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		c.BufferSize = n
	}
}

// Watcher reports files created in a directory as batches of paths.
type Watcher struct {
	mu sync.Mutex

	watcher *fsnotify.Watcher
	config  Config
	dir     string

	pending []string
	timer   *time.Timer
	batches chan []string

	// Stats
	totalBatches atomic.Int64
	totalPaths   atomic.Int64
	totalErrors  atomic.Int64
	dropped      atomic.Int64
	lastError    error

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching dir.
func New(dir string, opts ...Option) (*Watcher, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.Debounce <= 0 {
		config.Debounce = DefaultConfig().Debounce
	}
	if config.BufferSize <= 0 {
		config.BufferSize = DefaultConfig().BufferSize
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return nil, fmt.Errorf("drop dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", absDir, ErrNotDirectory)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(absDir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", absDir, err)
	}

	w := &Watcher{
		watcher: fsw,
		config:  config,
		dir:     absDir,
		batches: make(chan []string, config.BufferSize),
		closeCh: make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Dir returns the absolute path of the watched directory.
func (w *Watcher) Dir() string {
	return w.dir
}

// Drain calls fn for every completed batch without blocking.
// Returns the number of batches delivered.
func (w *Watcher) Drain(fn func(paths []string)) int {
	n := 0
	for {
		select {
		case batch, ok := <-w.batches:
			if !ok {
				return n
			}
			fn(batch)
			n++
		default:
			return n
		}
	}
}

// Flush emits the pending batch immediately.
func (w *Watcher) Flush() {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	w.fire()
}

// Close stops the watcher. Batches not yet drained are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = nil
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// Stats returns watcher statistics.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	pending := len(w.pending)
	lastErr := w.lastError
	w.mu.Unlock()

	return Stats{
		Batches:   w.totalBatches.Load(),
		Paths:     w.totalPaths.Load(),
		Pending:   pending,
		Queued:    len(w.batches),
		Dropped:   w.dropped.Load(),
		Errors:    w.totalErrors.Load(),
		LastError: lastErr,
	}
}

// Stats contains watcher statistics.
type Stats struct {
	// Batches is the number of batches emitted.
	Batches int64

	// Paths is the number of paths across all emitted batches.
	Paths int64

	// Pending is the number of paths waiting for the debounce delay.
	Pending int

	// Queued is the number of batches waiting to be drained.
	Queued int

	// Dropped is the number of batches lost because the queue was full.
	Dropped int64

	Errors    int64
	LastError error
}

func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.recordError(err)
		}
	}
}

func (w *Watcher) handleEvent(ev fsnotify.Event) {
	// Files moved in are reported as Create on the new name.
	if !ev.Has(fsnotify.Create) {
		return
	}
	if w.config.IgnoreHidden {
		if base := filepath.Base(ev.Name); len(base) > 0 && base[0] == '.' {
			return
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || slices.Contains(w.pending, ev.Name) {
		return
	}
	w.pending = append(w.pending, ev.Name)

	if w.timer == nil {
		w.timer = time.AfterFunc(w.config.Debounce, w.fire)
		return
	}
	w.timer.Reset(w.config.Debounce)
}

// fire moves the pending paths into a batch.
func (w *Watcher) fire() {
	w.mu.Lock()
	if w.closed || len(w.pending) == 0 {
		w.mu.Unlock()
		return
	}
	batch := w.pending
	w.pending = nil
	w.mu.Unlock()

	select {
	case w.batches <- batch:
		w.totalBatches.Add(1)
		w.totalPaths.Add(int64(len(batch)))
	default:
		// Channel full, drop batch
		w.dropped.Add(1)
	}
}

func (w *Watcher) recordError(err error) {
	w.totalErrors.Add(1)
	w.mu.Lock()
	w.lastError = err
	w.mu.Unlock()
}
