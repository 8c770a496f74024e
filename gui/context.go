package gui

import (
	"strings"

	"github.com/rs/zerolog"
)

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// DrawList receives primitives for the current window, or the base
	// layer when drawing outside any window.
	DrawList *DrawList
	// ForegroundDrawList is rendered after every window.
	ForegroundDrawList *DrawList
	baseDrawList       *DrawList

	// Styling
	style      Style
	baseStyle  Style // restored at the start of every frame
	styleStack []Style

	// Layout
	cursor      Vec2
	layoutStack []*Layout
	clipStack   []Rect

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	stateStore StateStore

	idStack []ID

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// activeID is the widget holding the mouse (slider drag, title drag).
	activeID ID
	// wheelUsed is set once a scroll region consumed this frame's wheel.
	wheelUsed bool

	// Windows, back to front.
	windows       map[ID]*window
	windowOrder   []*window
	current       *window // innermost window being built
	hoveredWindow *window // front-most window under the mouse, from last frame's rects
	focusedWindow *window
	next          nextWindowData

	settings *layoutSettings
	demo     demoState
	metrics  Metrics

	// FontTextureID is the built-in font atlas texture, set by the renderer.
	FontTextureID uint32

	// WantCaptureMouse is true when the mouse is over a window.
	WantCaptureMouse bool

	textMeasureCache map[string]Vec2

	log zerolog.Logger
}

// Metrics describes the last rendered frame.
type Metrics struct {
	Windows  int
	Vertices int
	Indices  int
	Commands int
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		baseStyle:        DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]ID, 0, 32),
		windows:          make(map[ID]*window),
		textMeasureCache: make(map[string]Vec2, 64),
		stateStore:       make(MapStateStore),
		log:              zerolog.Nop(),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the style for this and every following frame.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
	ctx.baseStyle = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Metrics returns statistics about the previous frame.
func (ctx *Context) Metrics() Metrics {
	return ctx.metrics
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	NextFrame()

	ctx.cursor = Vec2{0, 0}
	ctx.style = ctx.baseStyle
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.clipStack = ctx.clipStack[:0]
	ctx.current = nil
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false
	ctx.wheelUsed = false
	clear(ctx.textMeasureCache)

	if ctx.Input != nil && ctx.activeID != 0 && !ctx.Input.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}

	ctx.updateHoveredWindow()
}

// updateHoveredWindow finds the front-most window under the mouse using the
// rectangles of the previous frame, and raises it on click.
func (ctx *Context) updateHoveredWindow() {
	ctx.hoveredWindow = nil
	if ctx.Input == nil {
		return
	}
	mouse := ctx.Input.MousePos()
	for i := len(ctx.windowOrder) - 1; i >= 0; i-- {
		w := ctx.windowOrder[i]
		if w.lastFrame+1 < ctx.FrameCount {
			continue
		}
		if w.hitRect().Contains(mouse) {
			ctx.hoveredWindow = w
			break
		}
	}
	ctx.WantCaptureMouse = ctx.hoveredWindow != nil

	// A window being moved or resized keeps the mouse.
	if ctx.activeID != 0 {
		for _, w := range ctx.windowOrder {
			if w.moveID() == ctx.activeID || w.resizeID() == ctx.activeID {
				ctx.hoveredWindow = w
				break
			}
		}
	}

	if ctx.Input.MouseClicked(MouseButtonLeft) && ctx.activeID == 0 {
		ctx.focusWindow(ctx.hoveredWindow)
	}
}

// isHovered returns true if rect is under the mouse and reachable: its
// window is the hovered window, it is inside the current clip rectangle, and
// no other widget holds the mouse.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	if ctx.rootWindow() != ctx.hoveredWindow {
		return false
	}
	if ctx.activeID != 0 && ctx.activeID != id {
		return false
	}
	mouse := ctx.Input.MousePos()
	if !rect.Contains(mouse) {
		return false
	}
	if n := len(ctx.clipStack); n > 0 && !ctx.clipStack[n-1].Contains(mouse) {
		return false
	}
	return true
}

// IsHovered returns true if the widget area is under the mouse cursor (public API).
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked returns true if the widget was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// IsClicked returns true if the widget was clicked this frame (public API).
func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed returns true if the widget is being held down.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// setActive gives the mouse to id until the left button is released.
func (ctx *Context) setActive(id ID) {
	ctx.activeID = id
}

// IsActive returns true if the widget holds the mouse.
func (ctx *Context) IsActive(id ID) bool {
	return ctx.activeID != 0 && ctx.activeID == id
}

// pushClip restricts drawing and hit testing to r.
func (ctx *Context) pushClip(r Rect) {
	if n := len(ctx.clipStack); n > 0 {
		r = r.Intersect(ctx.clipStack[n-1])
	}
	ctx.clipStack = append(ctx.clipStack, r)
	ctx.DrawList.PushClipRect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

func (ctx *Context) popClip() {
	if n := len(ctx.clipStack); n > 0 {
		ctx.clipStack = ctx.clipStack[:n-1]
		ctx.DrawList.PopClipRect()
	}
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// frameHeight is the height of a framed widget (button, slider, checkbox).
func (ctx *Context) frameHeight() float32 {
	return ctx.lineHeight() + ctx.style.FramePadding*2
}

// MeasureText returns the size of rendered text. Lines are separated by '\n'.
// Results are cached per frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	charW := ctx.style.CharWidth * ctx.style.FontScale
	lines := strings.Split(text, "\n")
	var widest int
	for _, line := range lines {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	result := Vec2{X: float32(widest) * charW, Y: float32(len(lines)) * ctx.lineHeight()}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// addText draws text with the built-in font. Lines are separated by '\n'.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.addTextTo(ctx.DrawList, x, y, text, color)
}

// addTextTo draws text to a specific DrawList.
func (ctx *Context) addTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	dl.SetTexture(ctx.FontTextureID)
	for line := range strings.SplitSeq(text, "\n") {
		dl.AddText(x, y, line, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
		y += ctx.lineHeight()
	}
	dl.SetTexture(0)
}

// AddText draws text with current style (public API).
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.addText(x, y, text, color)
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// ContentRegionAvail returns the space left in the current layout from the
// cursor to its bottom-right corner.
func (ctx *Context) ContentRegionAvail() Vec2 {
	layout := ctx.currentLayout()
	if layout == nil {
		return Vec2{
			X: maxf(0, ctx.DisplaySize.X-ctx.cursor.X),
			Y: maxf(0, ctx.DisplaySize.Y-ctx.cursor.Y),
		}
	}
	return Vec2{
		X: maxf(0, layout.StartX+layout.Width-ctx.cursor.X),
		Y: maxf(0, layout.StartY+layout.Height-ctx.cursor.Y),
	}
}
