// Package shell runs the demo application: it opens the window, declares the
// tabbed UI every frame and tears everything down on exit.
package shell

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/go-theft-auto/standalone/gui"
)

// Shell owns the application state across frames.
type Shell struct {
	cfg      Config
	platform Platform
	log      zerolog.Logger
	guiOpts  []gui.GUIOption

	state State
	fps   *FPSCounter
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Shell) { s.log = log }
}

// WithGUIOptions appends options passed to gui.New after the shell's own.
func WithGUIOptions(opts ...gui.GUIOption) Option {
	return func(s *Shell) { s.guiOpts = append(s.guiOpts, opts...) }
}

// New creates a shell that will run on platform.
func New(cfg Config, platform Platform, opts ...Option) *Shell {
	s := &Shell{
		cfg:      cfg,
		platform: platform,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the UI state as of the last frame.
func (s *Shell) State() State {
	return s.state
}

// Run opens the window and runs the frame loop until the window is asked to
// close. Resources are released in reverse order of acquisition.
func (s *Shell) Run() (err error) {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	if err := s.platform.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrWindowingInit, err)
	}
	defer func() {
		s.platform.Terminate()
		s.log.Debug().Msg("platform terminated")
	}()

	win, err := s.platform.CreateWindow(s.cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	defer win.Destroy()

	fbw, fbh := win.FramebufferSize()
	renderer, err := s.platform.NewRenderer(fbw, fbh)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRendererInit, err)
	}

	ui := gui.New(renderer, s.guiOptions()...)
	defer func() {
		if serr := ui.Shutdown(); serr != nil {
			s.log.Warn().Err(serr).Msg("gui shutdown")
		}
	}()
	defer renderer.Delete()

	s.log.Info().
		Str("title", s.cfg.Title).
		Int("width", s.cfg.Width).
		Int("height", s.cfg.Height).
		Msg("window opened")

	frames, err := s.loop(win, renderer, ui)
	s.log.Info().Int("frames", frames).Msg("window closed")
	return err
}

func (s *Shell) guiOptions() []gui.GUIOption {
	style := gui.DarkStyle()
	style.WindowBgColor = s.cfg.backgroundColor()
	opts := []gui.GUIOption{
		gui.WithStyle(style),
		gui.WithLogger(s.log),
		gui.WithLayoutFile(""),
	}
	return append(opts, s.guiOpts...)
}

// loop runs frames until the window should close and returns how many ran.
func (s *Shell) loop(win Window, renderer Renderer, ui *gui.GUI) (int, error) {
	bg := s.cfg.Background
	last := s.platform.Time()
	s.fps = NewFPSCounter(last)

	frames := 0
	for !win.ShouldClose() {
		win.BeginInput()
		s.platform.PollEvents()
		win.EndInput()
		in := win.Input()

		if quitRequested(in) {
			s.log.Debug().Msg("quit shortcut")
			win.SetShouldClose(true)
		}

		now := s.platform.Time()
		if s.fps.Tick(now) {
			s.log.Debug().Float64("fps", s.fps.FPS()).Msg("fps updated")
		}
		dt := float32(now - last)
		last = now

		fbw, fbh := win.FramebufferSize()
		display := gui.Vec2{X: float32(fbw), Y: float32(fbh)}

		ctx := ui.Begin(in, display, dt)
		drawFrame(ctx, &s.state, display, s.cfg.TabListWidth, s.fps.FPS())

		renderer.BeginFrame(fbw, fbh)
		renderer.Clear(bg[0], bg[1], bg[2], bg[3])
		if err := ui.End(); err != nil {
			return frames, fmt.Errorf("render frame %d: %w", frames, err)
		}
		win.SwapBuffers()
		frames++
	}
	return frames, nil
}
