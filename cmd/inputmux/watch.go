package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dshills/inputmux/internal/backend"
	"github.com/dshills/inputmux/internal/backend/dropdir"
	"github.com/dshills/inputmux/internal/backend/terminal"
	"github.com/dshills/inputmux/internal/config"
	"github.com/dshills/inputmux/internal/event"
	"github.com/dshills/inputmux/internal/input"
	"github.com/dshills/inputmux/internal/input/key"
	"github.com/dshills/inputmux/internal/input/mouse"
	"github.com/dshills/inputmux/internal/logging"
)

const historySize = 500

type watchOptions struct {
	exts     []string
	dropDir  string
	mods     string
	pauseFor time.Duration
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show dispatched input events from the terminal",
		Long: `watch opens the terminal and registers a handler for every event
category. Keys: q or Ctrl-C quits, p pauses input handling for --pause-for,
m toggles cursor visibility, c toggles mouse capture.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("ext") {
				cfg.Drop.Extensions = cfg.Drop.Extensions[:0]
				for _, ext := range opts.exts {
					cfg.Drop.Extensions = append(cfg.Drop.Extensions, strings.TrimPrefix(ext, "."))
				}
			}
			if opts.dropDir != "" {
				cfg.Drop.Dir = opts.dropDir
			}
			return runWatch(cfg, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.exts, "ext", nil, "Only report dropped paths with these extensions")
	cmd.Flags().StringVar(&opts.dropDir, "drop-dir", "", "Report files created in this directory as drops")
	cmd.Flags().StringVar(&opts.mods, "mods", "", "Only report keys with exactly these modifiers (e.g. ctrl+shift)")
	cmd.Flags().DurationVar(&opts.pauseFor, "pause-for", 3*time.Second, "How long p pauses input handling")

	return cmd
}

func runWatch(cfg config.Config, opts *watchOptions) error {
	// The screen owns stdout and stderr while watching.
	logger, closer, err := logging.Setup(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		JSON:    cfg.Log.JSON,
		Discard: true,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	mode, err := cfg.Input.Mode()
	if err != nil {
		return err
	}

	term, err := terminal.New(terminal.Options{
		EmitRelease: cfg.Terminal.EmitRelease,
		Mouse:       cfg.Terminal.Mouse,
		Paste:       cfg.Terminal.Paste,
		Focus:       cfg.Terminal.Focus,
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer term.Close()

	capture := &backend.StaticCapture{}
	inputOpts := []input.Option{
		input.WithLogger(logging.Component(logger, "input")),
		input.WithPanicRecovery(cfg.Input.RecoverPanics),
		input.WithCapture(capture),
	}
	if cfg.Input.StartPaused {
		inputOpts = append(inputOpts, input.StartPaused())
	}
	if cfg.Drop.Dir != "" {
		w, err := dropdir.New(cfg.Drop.Dir, dropdir.WithDebounce(cfg.Drop.Debounce))
		if err != nil {
			return err
		}
		defer w.Close()
		inputOpts = append(inputOpts, input.WithDropSource(w))
	}

	m := input.New(term, inputOpts...)
	m.SetMouseMode(mode)

	s := &session{
		cfg:      cfg,
		opts:     opts,
		logger:   logging.Component(logger, "watch"),
		manager:  m,
		capture:  capture,
		view:     newView(term.Screen(), historySize),
		mode:     mode,
		pauseFor: opts.pauseFor,
	}
	s.register()
	s.updateStatus()

	s.logger.Info().
		Str("manager", m.ID().String()).
		Str("drop_dir", cfg.Drop.Dir).
		Strs("extensions", cfg.Drop.Extensions).
		Msg("watching input")

	for !s.quit {
		s.view.draw()
		m.WaitUntilNextEvent(cfg.Input.WaitTimeout)
		s.resumeIfDue()
	}

	stats := m.Stats().Total()
	s.logger.Info().
		Uint64("events", stats.Events).
		Uint64("invocations", stats.Invocations).
		Uint64("suppressed", stats.Suppressed).
		Uint64("discarded", stats.Discarded).
		Uint64("panics", stats.Panics).
		Msg("stopped watching")
	return nil
}

// session holds the state of one watch run.
type session struct {
	cfg     config.Config
	opts    *watchOptions
	logger  zerolog.Logger
	manager *input.Manager
	capture *backend.StaticCapture
	view    *view

	mode       mouse.Mode
	hold       event.Handle
	holdAt     mouse.Position
	pauseFor   time.Duration
	resumeAt   time.Time
	quit       bool
	lastCursor mouse.Position
}

func (s *session) register() {
	m := s.manager

	keys := input.KeyFunc(func(e input.KeyEvent) {
		s.report(event.CategoryKey, "code=%d scancode=%#x %s mods=%s", e.Code, e.Scancode, e.Action, e.Mods)
	})
	if s.opts.mods != "" {
		keys = input.WithMods(key.ParseModifiers(s.opts.mods), keys)
	}
	m.RegisterKeyHandler(keys)

	m.RegisterUTF8KeyHandler(func(e input.UTF8KeyEvent) {
		s.report(event.CategoryUTF8Key, "%q %s mods=%s", e.Name, e.Action, e.Mods)
	})

	m.RegisterKeyNameHandler("q", input.WithAction(key.ActionPress, func(input.UTF8KeyEvent) {
		s.quit = true
	}))
	m.RegisterKeyHandler(input.OnScancode(terminal.SpecialScancode(tcell.KeyCtrlC),
		input.WithAction(key.ActionPress, func(input.KeyEvent) {
			s.quit = true
		})))
	m.RegisterKeyNameHandler("p", input.WithAction(key.ActionPress, func(input.UTF8KeyEvent) {
		s.pause()
	}))
	m.RegisterKeyNameHandler("m", input.WithAction(key.ActionPress, func(input.UTF8KeyEvent) {
		s.toggleMouseMode()
	}))
	m.RegisterKeyNameHandler("c", input.WithAction(key.ActionPress, func(input.UTF8KeyEvent) {
		s.capture.Mouse = !s.capture.Mouse
		s.updateStatus()
	}))

	m.RegisterMouseButtonHandler(func(e input.MouseButtonEvent) {
		s.report(event.CategoryMouseButton, "%s %s mods=%s", e.Button, e.Action, e.Mods)
	})
	m.RegisterScrollHandler(func(dx, dy float64) {
		s.report(event.CategoryScroll, "dx=%g dy=%g", dx, dy)
	})
	m.RegisterCursorMovementHandler(func(mv mouse.Movement) {
		s.report(event.CategoryCursorMovement, "%s", mv)
	})
	m.RegisterCursorPositionHandler(func(x, y float64) {
		s.lastCursor = mouse.Position{X: x, Y: y}
		r := s.cfg.Hold.Radius
		if !s.hold.Enabled() && s.holdAt.DistanceSquared(s.lastCursor) > r*r {
			s.hold.Enable()
		}
		s.updateStatus()
	})
	m.RegisterWindowResizeHandler(func(w, h int) {
		s.report(event.CategoryWindowResize, "%dx%d", w, h)
	})

	// Hold fires on every tick once triggered; report it once until the
	// cursor leaves the radius.
	s.hold = m.RegisterCursorHoldHandler(s.cfg.Hold.Trigger, s.cfg.Hold.Radius, func(at mouse.Position) {
		s.report(event.CategoryCursorHold, "at %g,%g", at.X, at.Y)
		s.holdAt = at
		s.hold.Disable()
	})

	m.RegisterPathDropBatchHandler(func(paths []string) {
		if len(paths) == 0 {
			s.report(event.CategoryPathDrop, "nothing matched %s", strings.Join(s.cfg.Drop.Extensions, ","))
			return
		}
		for _, p := range paths {
			s.report(event.CategoryPathDrop, "%s", p)
		}
	}, s.cfg.Drop.Extensions...)
}

func (s *session) report(c event.Category, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	s.view.printf("%-16s %s", c, msg)
	s.logger.Debug().Stringer("category", c).Msg(msg)
}

func (s *session) pause() {
	s.manager.PauseInputHandling()
	s.resumeAt = time.Now().Add(s.pauseFor)
	s.updateStatus()
}

func (s *session) resumeIfDue() {
	if !s.manager.Paused() || s.resumeAt.IsZero() || time.Now().Before(s.resumeAt) {
		return
	}
	s.resumeAt = time.Time{}
	s.manager.ContinueInputHandling()
	s.updateStatus()
}

func (s *session) toggleMouseMode() {
	if s.mode == mouse.ModeEnabled {
		s.mode = mouse.ModeDisabled
	} else {
		s.mode = mouse.ModeEnabled
	}
	s.manager.SetMouseMode(s.mode)
	s.updateStatus()
}

func (s *session) updateStatus() {
	state := "running"
	if s.manager.Paused() {
		state = "paused"
	}
	s.view.setStatus(" inputmux | %s | mouse %s | capture %t | cursor %g,%g | q quit  p pause  m cursor  c capture",
		state, s.mode, s.capture.Mouse, s.lastCursor.X, s.lastCursor.Y)
}
