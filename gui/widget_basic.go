package gui

import "fmt"

// textOffsetY centers a text block of height h on a line that already holds
// taller items, so text after SameLine lines up with a button.
func (ctx *Context) textOffsetY(h float32) float32 {
	layout := ctx.currentLayout()
	if layout == nil || ctx.cursor.Y != layout.lineY || layout.lineH <= h {
		return 0
	}
	return (layout.lineH - h) / 2
}

func (ctx *Context) textItem(text string, color uint32) {
	pos := ctx.ItemPos()
	size := ctx.MeasureText(text)
	dy := ctx.textOffsetY(size.Y)
	ctx.addText(pos.X, pos.Y+dy, text, color)
	ctx.AdvanceCursor(Vec2{X: size.X, Y: size.Y + dy})
}

// Text draws text at the current cursor position. Lines are separated by '\n'.
func (ctx *Context) Text(text string) {
	ctx.textItem(text, ctx.style.TextColor)
}

// Textf draws formatted text.
func (ctx *Context) Textf(format string, args ...any) {
	ctx.textItem(fmt.Sprintf(format, args...), ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	ctx.textItem(text, color)
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.textItem(text, ctx.style.TextDisabledColor)
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.Text(value)
	ctx.SameLine()
	ctx.TextDisabled(label)
}

// Button draws a button and returns true on the frame it is pressed.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	textSize := ctx.MeasureText(text)
	size := Vec2{
		X: textSize.X + ctx.style.FramePadding*2,
		Y: textSize.Y + ctx.style.FramePadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	bgColor := ctx.style.ButtonColor
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		textColor = ctx.style.TextDisabledColor
	case ctx.isPressed(id, rect):
		bgColor = ctx.style.ButtonActiveColor
	case ctx.isHovered(id, rect):
		bgColor = ctx.style.ButtonHoveredColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bgColor)
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, text, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(size)
	return clicked
}

// SmallButton draws a button without vertical padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	saved := ctx.style.FramePadding
	ctx.style.FramePadding = 1
	clicked := ctx.Button(label, opts...)
	ctx.style.FramePadding = saved
	return clicked
}

// Selectable draws a full-width list item, highlighted when selected.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	textSize := ctx.MeasureText(text)
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = maxf(ctx.ContentRegionAvail().X, textSize.X)
	}
	h := textSize.Y + ctx.style.ItemSpacing/2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(id, rect)

	var bgColor uint32
	switch {
	case selected:
		bgColor = ctx.style.SelectedBgColor
	case hovered:
		bgColor = ctx.style.HoveredBgColor
	}
	if bgColor != 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X, pos.Y+(h-textSize.Y)/2, text, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return clicked
}

// Checkbox draws a checkbox with label and toggles *value when clicked.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	boxSize := ctx.frameHeight()
	totalWidth := boxSize
	if text != "" {
		totalWidth += ctx.style.ItemSpacing + ctx.MeasureText(text).X
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	disabled := GetOpt(o, OptDisabled)
	boxColor := ctx.style.FrameBgColor
	if !disabled && ctx.isHovered(id, rect) {
		boxColor = ctx.style.FrameBgHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.BorderColor, 1)

	if *value {
		pad := boxSize * 0.25
		ctx.DrawList.AddRect(pos.X+pad, pos.Y+pad, boxSize-pad*2, boxSize-pad*2, ctx.style.CheckMarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y+ctx.style.FramePadding, text, textColor)

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	ctx.AdvanceCursor(Vec2{X: totalWidth, Y: boxSize})
	return changed
}

// RadioButton draws a radio button.
// Returns true if this option was selected.
func (ctx *Context) RadioButton(label string, active bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	boxSize := ctx.frameHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(text).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	disabled := GetOpt(o, OptDisabled)
	boxColor := ctx.style.FrameBgColor
	if !disabled && ctx.isHovered(id, rect) {
		boxColor = ctx.style.FrameBgHoveredColor
	}

	// Drawn as a diamond.
	c := Vec2{X: pos.X + boxSize/2, Y: pos.Y + boxSize/2}
	r := boxSize / 2
	ctx.DrawList.AddTriangle(c.X-r, c.Y, c.X, c.Y-r, c.X+r, c.Y, boxColor)
	ctx.DrawList.AddTriangle(c.X-r, c.Y, c.X+r, c.Y, c.X, c.Y+r, boxColor)
	if active {
		r *= 0.5
		ctx.DrawList.AddTriangle(c.X-r, c.Y, c.X, c.Y-r, c.X+r, c.Y, ctx.style.CheckMarkColor)
		ctx.DrawList.AddTriangle(c.X-r, c.Y, c.X+r, c.Y, c.X, c.Y+r, ctx.style.CheckMarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y+ctx.style.FramePadding, text, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(Vec2{X: totalWidth, Y: boxSize})
	return clicked
}

// RadioButtonInt draws a radio button that sets *value to v when clicked.
func (ctx *Context) RadioButtonInt(label string, value *int, v int, opts ...Option) bool {
	if ctx.RadioButton(label, *value == v, opts...) {
		*value = v
		return true
	}
	return false
}

// ProgressBar draws a progress bar.
// fraction should be between 0.0 and 1.0.
func (ctx *Context) ProgressBar(fraction float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := ctx.ContentRegionAvail().X
	if optWidth := GetOpt(o, OptWidth); optWidth > 0 {
		w = optWidth
	}
	h := ctx.frameHeight()
	if optHeight := GetOpt(o, OptHeight); optHeight > 0 {
		h = optHeight
	}

	fraction = clampf(fraction, 0, 1)
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.FrameBgColor)
	if fillW := w * fraction; fillW > 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, fillW, h, ctx.style.PlotColor)
	}

	overlay := GetOpt(o, OptOverlay)
	if overlay == "" {
		overlay = fmt.Sprintf("%.0f%%", fraction*100)
	}
	ts := ctx.MeasureText(overlay)
	ctx.addText(pos.X+(w-ts.X)/2, pos.Y+(h-ts.Y)/2, overlay, ctx.style.TextColor)

	ctx.AdvanceCursor(Vec2{X: w, Y: h})
}

// Tooltip shows text next to the mouse, above every window.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil || ctx.ForegroundDrawList == nil {
		return
	}

	padding := ctx.style.FramePadding
	textSize := ctx.MeasureText(text)
	w := textSize.X + padding*2
	h := textSize.Y + padding*2

	// Keep on screen.
	x := minf(ctx.Input.MouseX+12, ctx.DisplaySize.X-w)
	y := minf(ctx.Input.MouseY+12, ctx.DisplaySize.Y-h)

	dl := ctx.ForegroundDrawList
	dl.AddRect(x, y, w, h, ctx.style.WindowBgColor|0xFF000000)
	dl.AddRectOutline(x, y, w, h, ctx.style.BorderColor, 1)
	ctx.addTextTo(dl, x+padding, y+padding, text, ctx.style.TextColor)
}

// IsItemHovered reports whether the last item drawn is under the mouse.
func (ctx *Context) IsItemHovered() bool {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return false
	}
	return ctx.isHovered(0, layout.lastItem)
}

// CollapsingHeader draws a full-width header that toggles its section.
// Returns true if the section is expanded. Headers start closed unless
// DefaultOpen is given.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	state := GetState(ctx, id, CollapsingHeaderState{Open: GetOpt(o, OptDefaultOpen)})

	w := ctx.ContentRegionAvail().X
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	bgColor := ctx.style.HeaderColor
	if ctx.isPressed(id, rect) {
		bgColor = ctx.style.ButtonActiveColor
	} else if ctx.isHovered(id, rect) {
		bgColor = ctx.style.HoveredBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)

	// Arrow
	s := ctx.lineHeight() / 2
	cx, cy := pos.X+ctx.style.FramePadding+s, pos.Y+h/2
	if state.Open {
		ctx.DrawList.AddTriangle(cx-s, cy-s/2, cx+s, cy-s/2, cx, cy+s/2, ctx.style.TextColor)
	} else {
		ctx.DrawList.AddTriangle(cx-s/2, cy-s, cx+s/2, cy, cx-s/2, cy+s, ctx.style.TextColor)
	}
	ctx.addText(pos.X+ctx.style.FramePadding*2+s*2, pos.Y+ctx.style.FramePadding, text, ctx.style.TextColor)

	if ctx.isClicked(id, rect) {
		state.Open = !state.Open
		SetState(ctx, id, state)
	}

	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return state.Open
}

// TreeNode draws a collapsible node. When it returns true the caller draws
// the children and then calls TreePop.
func (ctx *Context) TreeNode(label string, opts ...Option) bool {
	open := ctx.CollapsingHeader(label, opts...)
	if open {
		ctx.PushID(label)
		ctx.Indent(0)
	}
	return open
}

// TreePop ends a tree node started with TreeNode.
func (ctx *Context) TreePop() {
	ctx.Unindent(0)
	ctx.PopID()
}

// Bullet draws a bullet point. The next item continues on the same line.
func (ctx *Context) Bullet() {
	pos := ctx.ItemPos()
	h := ctx.lineHeight()
	size := h * 0.4
	ctx.DrawList.AddRect(pos.X+(h-size)/2, pos.Y+(h-size)/2, size, size, ctx.style.TextColor)
	ctx.AdvanceCursor(Vec2{X: h, Y: h})
	ctx.SameLine()
}

// BulletText draws a bullet point with text.
func (ctx *Context) BulletText(text string) {
	ctx.Bullet()
	ctx.Text(text)
}
