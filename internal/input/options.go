package input

import (
	"github.com/rs/zerolog"

	"github.com/dshills/inputmux/internal/backend"
)

// DropSource supplies path drops from outside the backend, such as a
// watched drop folder. Drain must not block.
type DropSource interface {
	Drain(fn func(paths []string)) int
}

// Option configures a Manager.
type Option func(*Manager)

// WithCapture sets the capture authority. The default never captures.
func WithCapture(c backend.Capture) Option {
	return func(m *Manager) {
		if c != nil {
			m.capture = c
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithPanicRecovery controls whether handler panics are recovered.
// Recovery is on by default.
func WithPanicRecovery(enabled bool) Option {
	return func(m *Manager) {
		m.recoverPanics = enabled
	}
}

// WithDropSource adds a source drained on every poll or wait.
func WithDropSource(s DropSource) Option {
	return func(m *Manager) {
		if s != nil {
			m.dropSources = append(m.dropSources, s)
		}
	}
}

// StartPaused creates the manager with input handling paused.
func StartPaused() Option {
	return func(m *Manager) {
		m.paused = true
	}
}
