package gui

import "github.com/rs/zerolog"

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	ctx        *Context
	log        zerolog.Logger
	layoutPath string
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.ctx.SetStyle(style) }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// WithLogger sets the logger for window and layout events.
func WithLogger(log zerolog.Logger) GUIOption {
	return func(g *GUI) { g.log = log }
}

// WithLayoutFile sets the YAML file window positions are loaded from and
// saved to. An empty path disables layout persistence.
func WithLayoutFile(path string) GUIOption {
	return func(g *GUI) { g.layoutPath = path }
}

// New creates a new GUI instance and loads the layout file, if any.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		ctx:        NewContext(),
		log:        zerolog.Nop(),
		layoutPath: DefaultLayoutFile,
	}

	for _, opt := range opts {
		opt(g)
	}

	g.ctx.log = g.log
	g.ctx.stateStore = g.stateStore

	if g.layoutPath != "" {
		settings := newLayoutSettings(g.layoutPath)
		if err := settings.load(); err != nil {
			g.log.Warn().Err(err).Msg("ignoring layout file")
		} else {
			g.log.Debug().Str("path", g.layoutPath).Int("windows", len(settings.windows)).Msg("layout loaded")
		}
		g.ctx.settings = settings
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.FrameCount++
	ctx.baseDrawList = AcquireDrawList()
	ctx.DrawList = ctx.baseDrawList
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.FontTextureID = g.renderer.FontTextureID()

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI: the base layer, then every
// window drawn this frame from back to front, then the foreground layer.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.baseDrawList == nil {
		return nil
	}

	lists := []*DrawList{ctx.baseDrawList}
	var m Metrics
	for _, w := range ctx.windowOrder {
		if w.drawList != nil {
			lists = append(lists, w.drawList)
			w.drawList = nil
			m.Windows++
		}
	}
	lists = append(lists, ctx.ForegroundDrawList)

	var err error
	for _, dl := range lists {
		dl.Finalize()
		m.Vertices += len(dl.VtxBuffer)
		m.Indices += len(dl.IdxBuffer)
		m.Commands += len(dl.CmdBuffer)
		if err == nil && len(dl.CmdBuffer) > 0 {
			err = g.renderer.Render(dl)
		}
		ReleaseDrawList(dl)
	}
	ctx.metrics = m
	ctx.baseDrawList = nil
	ctx.DrawList = nil
	ctx.ForegroundDrawList = nil

	if s := ctx.settings; s != nil && s.tick(ctx.DeltaTime) {
		if serr := s.save(ctx.windowOrder); serr != nil {
			g.log.Warn().Err(serr).Msg("saving layout")
		}
	}

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.ctx.baseStyle
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.ctx.SetStyle(style)
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// Shutdown saves the layout file when persistence is enabled.
func (g *GUI) Shutdown() error {
	s := g.ctx.settings
	if s == nil {
		return nil
	}
	if err := s.save(g.ctx.windowOrder); err != nil {
		return err
	}
	g.log.Debug().Str("path", s.path).Msg("layout saved")
	return nil
}
