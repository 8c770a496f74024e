package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Sizing
	Width, Height       float32 // Available size
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap float32 // Space between children

	ItemCount int

	indent   float32
	lineY    float32 // top of the current line
	lineH    float32 // tallest item on the current line
	lastItem Rect
	sameLine bool
	placed   bool // ItemPos ran and the item has not advanced yet
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// pushLayout starts a layout at the cursor. Zero sizes take the space left
// in the parent.
func (ctx *Context) pushLayout(layout *Layout) {
	avail := ctx.ContentRegionAvail()
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	layout.lineY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = avail.X
	}
	if layout.Height == 0 {
		layout.Height = avail.Y
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and returns its content bounds.
// The caller advances the parent by the size it wants to occupy.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
}

func (ctx *Context) layoutGap(layout *Layout) float32 {
	if layout.Gap > 0 {
		return layout.Gap
	}
	return ctx.style.ItemSpacing
}

// ItemPos returns the position for the next widget with gap applied.
// Widgets call it before drawing, then AdvanceCursor with the size they
// occupied. Further calls before AdvanceCursor return the same position.
func (ctx *Context) ItemPos() Vec2 {
	layout := ctx.currentLayout()
	if layout == nil {
		return ctx.cursor
	}
	if layout.placed {
		return ctx.cursor
	}
	layout.placed = true

	if layout.sameLine {
		layout.sameLine = false
		ctx.cursor = Vec2{
			X: layout.lastItem.X + layout.lastItem.W + ctx.style.ItemSpacing,
			Y: layout.lineY,
		}
		return ctx.cursor
	}

	if layout.ItemCount > 0 {
		if layout.Type == LayoutVertical {
			ctx.cursor.Y += ctx.layoutGap(layout)
		} else {
			ctx.cursor.X += ctx.layoutGap(layout)
		}
	}
	layout.lineY = ctx.cursor.Y
	layout.lineH = 0
	return ctx.cursor
}

// AdvanceCursor moves the cursor past an item of the given size placed at
// the position returned by ItemPos.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}

	pos := ctx.cursor
	layout.placed = false
	layout.lastItem = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	layout.lineH = maxf(layout.lineH, size.Y)

	if layout.Type == LayoutVertical {
		ctx.cursor = Vec2{X: layout.StartX + layout.indent, Y: layout.lineY + layout.lineH}
	} else {
		ctx.cursor = Vec2{X: pos.X + size.X, Y: layout.lineY}
	}

	layout.MaxWidth = maxf(layout.MaxWidth, pos.X+size.X-layout.StartX)
	layout.MaxHeight = maxf(layout.MaxHeight, pos.Y+size.Y-layout.StartY)
	layout.ItemCount++
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack(Gap(8))(func() {
//	    ctx.Text("Label:")
//	    ctx.Button("OK")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		pos := ctx.ItemPos()
		layout := &Layout{Type: typ}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		bounds := ctx.popLayout()
		ctx.cursor = pos
		ctx.AdvanceCursor(Vec2{X: bounds.W, Y: bounds.H})
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
	if layout := ctx.currentLayout(); layout != nil {
		layout.MaxHeight = maxf(layout.MaxHeight, ctx.cursor.Y-layout.StartY)
	}
}

// Separator draws a horizontal line across the available width.
// It does not widen auto-sized windows.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.ContentRegionAvail().X
	y := pos.Y + 2
	ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{X: 0, Y: 4})
}

// SameLine places the next widget to the right of the previous one.
func (ctx *Context) SameLine() {
	if layout := ctx.currentLayout(); layout != nil && layout.ItemCount > 0 {
		layout.sameLine = true
		layout.placed = false
	}
}

// Indent shifts subsequent items right.
func (ctx *Context) Indent(pixels float32) {
	if pixels == 0 {
		pixels = ctx.style.IndentSpacing
	}
	if layout := ctx.currentLayout(); layout != nil {
		layout.indent += pixels
	}
	ctx.cursor.X += pixels
}

// Unindent reverts a previous Indent.
func (ctx *Context) Unindent(pixels float32) {
	if pixels == 0 {
		pixels = ctx.style.IndentSpacing
	}
	if layout := ctx.currentLayout(); layout != nil {
		layout.indent -= pixels
	}
	ctx.cursor.X -= pixels
}
