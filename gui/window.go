package gui

// WindowFlags customize a window.
type WindowFlags uint32

const (
	WindowNoTitleBar WindowFlags = 1 << iota
	WindowNoMove
	WindowNoResize
	WindowNoCollapse
	// WindowNoBringToFrontOnFocus keeps the window at the back when clicked.
	// Use it for a host window covering the display.
	WindowNoBringToFrontOnFocus
	// WindowNoSavedSettings excludes the window from the layout file.
	WindowNoSavedSettings
)

// Cond selects when SetNextWindowPos and SetNextWindowSize apply.
type Cond uint8

const (
	CondAlways       Cond = iota // every frame
	CondOnce                     // first appearance in this session
	CondFirstUseEver             // first appearance, unless the layout file knows the window
)

const (
	scrollWheelSpeed = 30
	defaultWindowPos = 60
	minScrollbarGrab = 20
)

type window struct {
	id    ID
	name  string
	flags WindowFlags

	pos, size   Vec2
	autoFit     bool // size follows content
	collapsed   bool
	scrollY     float32
	contentSize Vec2

	firstUse     bool // created this frame
	fromSettings bool // position restored from the layout file

	lastFrame  uint64
	drawList   *DrawList
	titleH     float32
	dragOffset Vec2
}

func (w *window) rect() Rect {
	if w.collapsed {
		return Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: w.titleH}
	}
	return Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: w.size.Y}
}

func (w *window) hitRect() Rect { return w.rect() }

func (w *window) moveID() ID   { return hashLabel(w.id, "#MOVE") }
func (w *window) resizeID() ID { return hashLabel(w.id, "#RESIZE") }

type nextWindowData struct {
	pos      Vec2
	posCond  Cond
	hasPos   bool
	size     Vec2
	sizeCond Cond
	hasSize  bool
}

// SetNextWindowPos sets the position of the next window.
func (ctx *Context) SetNextWindowPos(pos Vec2, cond Cond) {
	ctx.next.pos = pos
	ctx.next.posCond = cond
	ctx.next.hasPos = true
}

// SetNextWindowSize sets the size of the next window. A window without a
// size fits its content.
func (ctx *Context) SetNextWindowSize(size Vec2, cond Cond) {
	ctx.next.size = size
	ctx.next.sizeCond = cond
	ctx.next.hasSize = true
}

func condApplies(cond Cond, w *window) bool {
	switch cond {
	case CondOnce:
		return w.firstUse
	case CondFirstUseEver:
		return w.firstUse && !w.fromSettings
	default:
		return true
	}
}

func (ctx *Context) applyNextWindowData(w *window) {
	next := ctx.next
	ctx.next = nextWindowData{}

	if next.hasPos && condApplies(next.posCond, w) {
		w.pos = next.pos
	}
	if next.hasSize && condApplies(next.sizeCond, w) {
		w.size = next.size
		w.autoFit = false
	}
}

func (ctx *Context) findOrCreateWindow(title string, flags WindowFlags) *window {
	id := hashLabel(0, title)
	if w, ok := ctx.windows[id]; ok {
		w.firstUse = false
		return w
	}

	n := float32(len(ctx.windows))
	w := &window{
		id:       id,
		name:     title,
		flags:    flags,
		pos:      Vec2{X: defaultWindowPos + n*20, Y: defaultWindowPos + n*20},
		autoFit:  true,
		firstUse: true,
	}
	if flags&WindowNoSavedSettings == 0 && ctx.settings != nil {
		ctx.settings.apply(w)
	}
	ctx.windows[id] = w

	// New windows open in front, except those that never come forward.
	if flags&WindowNoBringToFrontOnFocus != 0 {
		ctx.windowOrder = append([]*window{w}, ctx.windowOrder...)
	} else {
		ctx.windowOrder = append(ctx.windowOrder, w)
		ctx.focusedWindow = w
	}
	ctx.log.Debug().Str("window", title).Msg("window created")
	return w
}

// focusWindow makes w the focused window and raises it, or clears focus
// when w is nil.
func (ctx *Context) focusWindow(w *window) {
	ctx.focusedWindow = w
	if w == nil || w.flags&WindowNoBringToFrontOnFocus != 0 {
		return
	}
	for i, other := range ctx.windowOrder {
		if other == w {
			copy(ctx.windowOrder[i:], ctx.windowOrder[i+1:])
			ctx.windowOrder[len(ctx.windowOrder)-1] = w
			return
		}
	}
}

// rootWindow returns the window being built, or nil outside any window.
func (ctx *Context) rootWindow() *window {
	return ctx.current
}

func (ctx *Context) markSettingsDirty(w *window) {
	if ctx.settings != nil && w.flags&WindowNoSavedSettings == 0 {
		ctx.settings.dirty = true
	}
}

// windowScope is the builder state saved while a nested window is built.
type windowScope struct {
	cursor   Vec2
	layouts  []*Layout
	ids      []ID
	clips    []Rect
	drawList *DrawList
	current  *window
}

func (ctx *Context) enterWindow(w *window) windowScope {
	s := windowScope{
		cursor:   ctx.cursor,
		layouts:  ctx.layoutStack,
		ids:      ctx.idStack,
		clips:    ctx.clipStack,
		drawList: ctx.DrawList,
		current:  ctx.current,
	}
	ctx.layoutStack = s.layouts[len(s.layouts):]
	ctx.idStack = append(s.ids[len(s.ids):], w.id)
	ctx.clipStack = s.clips[len(s.clips):]
	ctx.DrawList = w.drawList
	ctx.current = w
	return s
}

func (ctx *Context) leaveWindow(s windowScope) {
	ctx.cursor = s.cursor
	ctx.layoutStack = s.layouts
	ctx.idStack = s.ids
	ctx.clipStack = s.clips
	ctx.DrawList = s.drawList
	ctx.current = s.current
}

// Window draws a top-level window. When open is non-nil the title bar has a
// close button that sets *open to false, and nothing is drawn while *open is
// false. The title doubles as the window ID; text after "##" is hidden.
//
// Usage:
//
//	ctx.Window("Settings", &showSettings, 0)(func() {
//	    ctx.Checkbox("VSync", &vsync)
//	})
func (ctx *Context) Window(title string, open *bool, flags WindowFlags) func(func()) {
	return func(contents func()) {
		if open != nil && !*open {
			ctx.next = nextWindowData{}
			return
		}

		w := ctx.findOrCreateWindow(title, flags)
		w.flags = flags
		ctx.applyNextWindowData(w)
		w.lastFrame = ctx.FrameCount
		if w.drawList == nil {
			w.drawList = AcquireDrawList()
		}

		saved := ctx.enterWindow(w)
		defer ctx.leaveWindow(saved)

		w.titleH = 0
		if flags&WindowNoTitleBar == 0 {
			w.titleH = ctx.frameHeight()
			ctx.windowTitleInput(w, open)
		}
		if flags&WindowNoResize == 0 && !w.collapsed {
			ctx.windowResizeInput(w)
		}

		if !w.collapsed {
			ctx.windowBody(w, contents)
		}
		if w.titleH > 0 {
			ctx.drawTitleBar(w, open)
		}
		if ctx.style.BorderSize > 0 {
			r := w.rect()
			w.drawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.style.BorderColor, ctx.style.BorderSize)
		}
	}
}

func (ctx *Context) windowBody(w *window, contents func()) {
	style := ctx.style
	pad := style.WindowPadding

	view := Rect{X: w.pos.X, Y: w.pos.Y + w.titleH, W: w.size.X, H: w.size.Y - w.titleH}
	if w.autoFit {
		view.W = ctx.DisplaySize.X
		view.H = ctx.DisplaySize.Y
	}

	ctx.pushClip(view)
	ctx.cursor = Vec2{X: view.X + pad, Y: view.Y + pad - w.scrollY}
	layoutW := w.size.X - pad*2
	if w.autoFit && w.size.X == 0 {
		layoutW = ctx.DisplaySize.X / 3
	}
	ctx.pushLayout(&Layout{
		Type:   LayoutVertical,
		Width:  maxf(layoutW, 1),
		Height: maxf(view.H-pad*2, 1),
	})

	contents()

	bounds := ctx.popLayout()
	ctx.popClip()
	w.contentSize = Vec2{X: bounds.W, Y: bounds.H}

	if w.autoFit {
		w.size = Vec2{
			X: maxf(bounds.W+pad*2, ctx.minWindowWidth(w)),
			Y: w.titleH + bounds.H + pad*2,
		}
		view.W = w.size.X
		view.H = w.size.Y - w.titleH
	}

	ctx.scrollRegion(view, bounds.H+pad*2, &w.scrollY)
	w.drawList.InsertRect(view.X, view.Y, view.W, view.H, style.WindowBgColor)

	if w.flags&WindowNoResize == 0 {
		ctx.drawResizeGrip(w)
	}
}

// minWindowWidth leaves room for the title and the title bar buttons.
func (ctx *Context) minWindowWidth(w *window) float32 {
	if w.titleH == 0 {
		return 0
	}
	return ctx.MeasureText(displayLabel(w.name)).X + w.titleH*2 + ctx.style.FramePadding*2
}

func (ctx *Context) closeButtonRect(w *window) Rect {
	s := w.titleH
	return Rect{X: w.pos.X + w.size.X - s, Y: w.pos.Y, W: s, H: s}
}

func (ctx *Context) collapseButtonRect(w *window) Rect {
	s := w.titleH
	return Rect{X: w.pos.X, Y: w.pos.Y, W: s, H: s}
}

func (ctx *Context) windowTitleInput(w *window, open *bool) {
	titleRect := Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: w.titleH}

	if open != nil {
		if ctx.isClicked(hashLabel(w.id, "#CLOSE"), ctx.closeButtonRect(w)) {
			*open = false
			return
		}
	}
	if w.flags&WindowNoCollapse == 0 {
		if ctx.isClicked(hashLabel(w.id, "#COLLAPSE"), ctx.collapseButtonRect(w)) {
			w.collapsed = !w.collapsed
			ctx.markSettingsDirty(w)
			return
		}
	}
	if w.flags&WindowNoMove != 0 {
		return
	}

	moveID := w.moveID()
	if ctx.activeID == 0 && ctx.isClicked(moveID, titleRect) {
		ctx.setActive(moveID)
		w.dragOffset = w.pos.Sub(ctx.Input.MousePos())
	}
	if ctx.IsActive(moveID) && ctx.Input.MouseDown(MouseButtonLeft) {
		p := ctx.Input.MousePos().Add(w.dragOffset)
		p.X = clampf(p.X, 0, maxf(0, ctx.DisplaySize.X-w.size.X))
		p.Y = clampf(p.Y, 0, maxf(0, ctx.DisplaySize.Y-w.titleH))
		if p != w.pos {
			w.pos = p
			ctx.markSettingsDirty(w)
		}
	}
}

func (ctx *Context) resizeGripRect(w *window) Rect {
	s := ctx.lineHeight() + ctx.style.FramePadding
	return Rect{X: w.pos.X + w.size.X - s, Y: w.pos.Y + w.size.Y - s, W: s, H: s}
}

func (ctx *Context) windowResizeInput(w *window) {
	id := w.resizeID()
	if ctx.activeID == 0 && ctx.isClicked(id, ctx.resizeGripRect(w)) {
		ctx.setActive(id)
		w.dragOffset = w.pos.Add(w.size).Sub(ctx.Input.MousePos())
	}
	if ctx.IsActive(id) && ctx.Input.MouseDown(MouseButtonLeft) {
		corner := ctx.Input.MousePos().Add(w.dragOffset)
		size := corner.Sub(w.pos)
		size.X = maxf(size.X, ctx.minWindowWidth(w)+ctx.style.WindowPadding)
		size.Y = maxf(size.Y, w.titleH+ctx.frameHeight()+ctx.style.WindowPadding*2)
		if size != w.size {
			w.size = size
			w.autoFit = false
			ctx.markSettingsDirty(w)
		}
	}
}

func (ctx *Context) drawResizeGrip(w *window) {
	r := ctx.resizeGripRect(w)
	color := ctx.style.ButtonColor
	if ctx.IsActive(w.resizeID()) {
		color = ctx.style.ButtonActiveColor
	} else if ctx.isHovered(w.resizeID(), r) {
		color = ctx.style.ButtonHoveredColor
	}
	w.drawList.AddTriangle(r.X+r.W, r.Y, r.X+r.W, r.Y+r.H, r.X, r.Y+r.H, color)
}

func (ctx *Context) drawTitleBar(w *window, open *bool) {
	dl := w.drawList
	style := ctx.style

	bg := style.TitleBgColor
	if ctx.focusedWindow == w {
		bg = style.TitleBgActiveColor
	}
	dl.AddRect(w.pos.X, w.pos.Y, w.size.X, w.titleH, bg)

	textColor := style.TitleTextColor
	if textColor == 0 {
		textColor = style.TextColor
	}

	x := w.pos.X + style.FramePadding
	if w.flags&WindowNoCollapse == 0 {
		r := ctx.collapseButtonRect(w)
		c := r.Center()
		h := ctx.lineHeight() / 2
		if w.collapsed {
			dl.AddTriangle(c.X-h/2, c.Y-h, c.X+h/2, c.Y, c.X-h/2, c.Y+h, textColor)
		} else {
			dl.AddTriangle(c.X-h, c.Y-h/2, c.X+h, c.Y-h/2, c.X, c.Y+h/2, textColor)
		}
		x = r.X + r.W
	}
	ctx.addText(x, w.pos.Y+style.FramePadding, displayLabel(w.name), textColor)

	if open != nil {
		r := ctx.closeButtonRect(w)
		id := hashLabel(w.id, "#CLOSE")
		if ctx.isHovered(id, r) {
			dl.AddRect(r.X+2, r.Y+2, r.W-4, r.H-4, style.ButtonHoveredColor)
		}
		m := style.FramePadding + 1
		dl.AddLine(r.X+m, r.Y+m, r.X+r.W-m, r.Y+r.H-m, textColor, 1)
		dl.AddLine(r.X+r.W-m, r.Y+m, r.X+m, r.Y+r.H-m, textColor, 1)
	}
}

// scrollRegion applies mouse-wheel scrolling to a view whose content is
// contentH tall, and draws a scrollbar when the content overflows.
func (ctx *Context) scrollRegion(view Rect, contentH float32, scrollY *float32) {
	maxScroll := maxf(0, contentH-view.H)
	if in := ctx.Input; in != nil && in.MouseWheelY != 0 && !ctx.wheelUsed && maxScroll > 0 &&
		ctx.rootWindow() == ctx.hoveredWindow && view.Contains(in.MousePos()) {
		*scrollY -= in.MouseWheelY * scrollWheelSpeed
		ctx.wheelUsed = true
	}
	*scrollY = clampf(*scrollY, 0, maxScroll)
	if maxScroll == 0 {
		return
	}

	size := ctx.style.ScrollbarSize
	x := view.X + view.W - size
	grabH := maxf(minScrollbarGrab, view.H*view.H/contentH)
	grabY := view.Y + (*scrollY/maxScroll)*(view.H-grabH)
	ctx.DrawList.AddRect(x, view.Y, size, view.H, ctx.style.ScrollbarBgColor)
	ctx.DrawList.AddRect(x, grabY, size, grabH, ctx.style.ScrollbarGrabColor)
}

// WindowRect returns the rectangle a window occupied when last drawn.
func (ctx *Context) WindowRect(title string) (Rect, bool) {
	w, ok := ctx.windows[hashLabel(0, title)]
	if !ok {
		return Rect{}, false
	}
	return w.rect(), true
}

// IsWindowCollapsed reports whether a window is collapsed to its title bar.
func (ctx *Context) IsWindowCollapsed(title string) bool {
	w, ok := ctx.windows[hashLabel(0, title)]
	return ok && w.collapsed
}

type childState struct {
	scrollY float32
}

var childStore = NewFrameStore[childState]()

// Child draws a scrollable region inside the current window. A zero or
// negative size component takes the space left in the layout, minus its
// magnitude. With border set the region is outlined and padded.
//
// Usage:
//
//	ctx.Child("##list", gui.Vec2{X: 200}, true)(func() {
//	    ctx.Selectable("Item", selected)
//	})
func (ctx *Context) Child(id string, size Vec2, border bool) func(func()) {
	return func(contents func()) {
		pos := ctx.ItemPos()
		avail := ctx.ContentRegionAvail()
		if size.X <= 0 {
			size.X = maxf(1, avail.X+size.X)
		}
		if size.Y <= 0 {
			size.Y = maxf(1, avail.Y+size.Y)
		}

		childID := ctx.GetID(id)
		st := childStore.Get(childID, childState{})

		var pad float32
		if border {
			pad = ctx.style.WindowPadding
		}
		rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

		ctx.PushID(id)
		ctx.pushClip(rect)
		ctx.cursor = Vec2{X: pos.X + pad, Y: pos.Y + pad - st.scrollY}
		ctx.pushLayout(&Layout{
			Type:   LayoutVertical,
			Width:  maxf(size.X-pad*2, 1),
			Height: maxf(size.Y-pad*2, 1),
		})

		contents()

		bounds := ctx.popLayout()
		ctx.popClip()
		ctx.PopID()

		ctx.scrollRegion(rect, bounds.H+pad*2, &st.scrollY)
		if ctx.style.ChildBgColor != 0 {
			ctx.DrawList.InsertRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.ChildBgColor)
		}
		if border && ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.BorderColor, ctx.style.BorderSize)
		}

		ctx.cursor = pos
		ctx.AdvanceCursor(size)
	}
}
