package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dshills/inputmux/internal/input/mouse"
)

// Config is the complete inputmux configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Input    InputConfig    `koanf:"input"`
	Hold     HoldConfig     `koanf:"hold"`
	Terminal TerminalConfig `koanf:"terminal"`
	Drop     DropConfig     `koanf:"drop"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
	JSON  bool   `koanf:"json"`
}

// InputConfig configures the input manager.
type InputConfig struct {
	// StartPaused creates the manager with input handling paused.
	StartPaused bool `koanf:"start_paused"`

	// RecoverPanics contains handler panics instead of propagating them.
	RecoverPanics bool `koanf:"recover_panics"`

	// WaitTimeout bounds each wait for events in the host loop.
	// Zero waits indefinitely.
	WaitTimeout time.Duration `koanf:"wait_timeout"`

	// MouseMode is "enabled" or "disabled".
	MouseMode string `koanf:"mouse_mode"`
}

// HoldConfig sets the default cursor hold parameters.
type HoldConfig struct {
	Trigger time.Duration `koanf:"trigger"`
	Radius  float64       `koanf:"radius"`
}

// TerminalConfig configures the terminal backend.
type TerminalConfig struct {
	EmitRelease bool `koanf:"emit_release"`
	Mouse       bool `koanf:"mouse"`
	Paste       bool `koanf:"paste"`
	Focus       bool `koanf:"focus"`
}

// DropConfig configures path drops.
type DropConfig struct {
	// Dir is a drop folder to watch. Empty disables the watcher.
	Dir string `koanf:"dir"`

	// Extensions filters dropped paths. Empty accepts everything.
	Extensions []string `koanf:"extensions"`

	// Debounce groups files arriving in the drop folder into one drop.
	Debounce time.Duration `koanf:"debounce"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
		},
		Input: InputConfig{
			RecoverPanics: true,
			WaitTimeout:   16 * time.Millisecond,
			MouseMode:     mouse.ModeEnabled.String(),
		},
		Hold: HoldConfig{
			Trigger: 500 * time.Millisecond,
			Radius:  2,
		},
		Terminal: TerminalConfig{
			EmitRelease: true,
			Mouse:       true,
			Paste:       true,
			Focus:       true,
		},
		Drop: DropConfig{
			Debounce: 150 * time.Millisecond,
		},
	}
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return &ValidationError{Path: "log.level", Message: "unknown level", Value: c.Log.Level}
	}
	if c.Input.WaitTimeout < 0 {
		return &ValidationError{Path: "input.wait_timeout", Message: "must not be negative", Value: c.Input.WaitTimeout}
	}
	if _, err := c.Input.Mode(); err != nil {
		return &ValidationError{Path: "input.mouse_mode", Message: "must be enabled or disabled", Value: c.Input.MouseMode}
	}
	if c.Hold.Trigger < 0 {
		return &ValidationError{Path: "hold.trigger", Message: "must not be negative", Value: c.Hold.Trigger}
	}
	if c.Hold.Radius < 0 {
		return &ValidationError{Path: "hold.radius", Message: "must not be negative", Value: c.Hold.Radius}
	}
	if c.Drop.Debounce < 0 {
		return &ValidationError{Path: "drop.debounce", Message: "must not be negative", Value: c.Drop.Debounce}
	}
	for _, ext := range c.Drop.Extensions {
		if ext == "" {
			return &ValidationError{Path: "drop.extensions", Message: "empty extension", Value: c.Drop.Extensions}
		}
	}
	return nil
}

// Mode parses MouseMode.
func (c InputConfig) Mode() (mouse.Mode, error) {
	return mouse.ParseMode(c.MouseMode)
}

// toMap converts c to the nested map form used for layering and output.
// Durations are rendered as strings.
func (c Config) toMap() map[string]any {
	exts := make([]any, len(c.Drop.Extensions))
	for i, e := range c.Drop.Extensions {
		exts[i] = e
	}

	return map[string]any{
		"log": map[string]any{
			"level": c.Log.Level,
			"file":  c.Log.File,
			"json":  c.Log.JSON,
		},
		"input": map[string]any{
			"start_paused":   c.Input.StartPaused,
			"recover_panics": c.Input.RecoverPanics,
			"wait_timeout":   c.Input.WaitTimeout.String(),
			"mouse_mode":     c.Input.MouseMode,
		},
		"hold": map[string]any{
			"trigger": c.Hold.Trigger.String(),
			"radius":  c.Hold.Radius,
		},
		"terminal": map[string]any{
			"emit_release": c.Terminal.EmitRelease,
			"mouse":        c.Terminal.Mouse,
			"paste":        c.Terminal.Paste,
			"focus":        c.Terminal.Focus,
		},
		"drop": map[string]any{
			"dir":        c.Drop.Dir,
			"extensions": exts,
			"debounce":   c.Drop.Debounce.String(),
		},
	}
}
