package gui

import "fmt"

const demoFrameHistory = 90

// demoState holds the values edited in the demo window.
type demoState struct {
	frameTimes [demoFrameHistory]float32
	frameNext  int

	clicks    int
	check     bool
	radio     int
	sliderF   float32
	sliderI   int
	selected  int
	style     int // index into demoStyles, -1 until one is picked
	styleInit bool
	progress  float32
}

var demoStyles = []struct {
	name  string
	style func() Style
}{
	{"Dark", DarkStyle},
	{"Light", LightStyle},
	{"Classic", DefaultStyle},
	{"GTA", GTAStyle},
}

func (d *demoState) recordFrameTime(dt float32) {
	d.frameTimes[d.frameNext] = dt
	d.frameNext = (d.frameNext + 1) % demoFrameHistory
}

// orderedFrameTimes returns the history oldest first.
func (d *demoState) orderedFrameTimes() []float32 {
	out := make([]float32, 0, demoFrameHistory)
	out = append(out, d.frameTimes[d.frameNext:]...)
	return append(out, d.frameTimes[:d.frameNext]...)
}

// ShowDemoWindow draws a window showing off the widgets of this package.
// Its close button sets *open to false.
func (ctx *Context) ShowDemoWindow(open *bool) {
	d := &ctx.demo
	if !d.styleInit {
		d.style = -1
		d.styleInit = true
	}
	d.recordFrameTime(ctx.DeltaTime)

	ctx.SetNextWindowPos(Vec2{X: 340, Y: 30}, CondFirstUseEver)
	ctx.SetNextWindowSize(Vec2{X: 520, Y: 440}, CondFirstUseEver)
	ctx.Window("GUI Demo", open, 0)(func() {
		ctx.Text("Immediate-mode widgets drawn with OpenGL.")
		ctx.Separator()

		if ctx.CollapsingHeader("Help") {
			ctx.BulletText("Drag a title bar to move its window.")
			ctx.BulletText("Click the arrow to collapse a window.")
			ctx.BulletText("Drag the bottom-right corner to resize.")
			ctx.BulletText("Scroll with the mouse wheel.")
		}
		if ctx.CollapsingHeader("Widgets", DefaultOpen()) {
			ctx.demoWidgets(d)
		}
		if ctx.CollapsingHeader("Layout") {
			ctx.demoLayout()
		}
		if ctx.CollapsingHeader("Plots") {
			ctx.demoPlots(d)
		}
		if ctx.CollapsingHeader("Style") {
			ctx.demoStyle(d)
		}
		if ctx.CollapsingHeader("Metrics") {
			ctx.demoMetrics()
		}
	})
}

func (ctx *Context) demoWidgets(d *demoState) {
	if ctx.Button("Button") {
		d.clicks++
	}
	if d.clicks%2 == 1 {
		ctx.SameLine()
		ctx.Text("Thanks for clicking me!")
	}

	ctx.Checkbox("checkbox", &d.check)

	ctx.RadioButtonInt("radio a", &d.radio, 0)
	ctx.SameLine()
	ctx.RadioButtonInt("radio b", &d.radio, 1)
	ctx.SameLine()
	ctx.RadioButtonInt("radio c", &d.radio, 2)

	ctx.SliderFloat("slider float", &d.sliderF, 0, 1, WithFormat("ratio = %.3f"))
	ctx.SliderInt("slider int", &d.sliderI, -1, 3)

	ctx.Button("Hover me")
	if ctx.IsItemHovered() {
		ctx.Tooltip("I am a tooltip")
	}

	if ctx.TreeNode("Selectables") {
		for i := range 4 {
			label := fmt.Sprintf("%d. I am selectable", i+1)
			if ctx.Selectable(label, d.selected == i) {
				d.selected = i
			}
		}
		ctx.TreePop()
	}

	ctx.TextDisabled("Disabled text")
	ctx.Button("Disabled button", WithDisabled(true))
}

func (ctx *Context) demoLayout() {
	ctx.Text("Two")
	ctx.SameLine()
	ctx.Text("items")
	ctx.SameLine()
	ctx.Button("on one line")

	ctx.Child("##scrolling", Vec2{X: 0, Y: 80}, true)(func() {
		for i := range 12 {
			ctx.Textf("%04d: scrollable region", i)
		}
	})

	ctx.HStack()(func() {
		ctx.Child("##left", Vec2{X: 120, Y: 50}, true)(func() {
			ctx.Text("Left")
		})
		ctx.Child("##right", Vec2{X: 120, Y: 50}, true)(func() {
			ctx.Text("Right")
		})
	})
}

func (ctx *Context) demoPlots(d *demoState) {
	times := d.orderedFrameTimes()
	var sum float32
	for _, t := range times {
		sum += t
	}
	avg := sum / float32(len(times))
	ctx.PlotHistogram("Frame times", times,
		WithScale(0, 0.05), WithHeight(80), WithOverlay(fmt.Sprintf("avg %.2f ms", avg*1000)))

	d.progress += ctx.DeltaTime * 0.25
	if d.progress > 1 {
		d.progress = 0
	}
	ctx.ProgressBar(d.progress)
}

func (ctx *Context) demoStyle(d *demoState) {
	for i, s := range demoStyles {
		if i > 0 {
			ctx.SameLine()
		}
		if ctx.RadioButtonInt(s.name, &d.style, i) {
			ctx.applyDemoStyle(i)
		}
	}
	ctx.SliderFloat("Window padding", &ctx.baseStyle.WindowPadding, 0, 20, WithFormat("%.0f"), WithStep(1))
	ctx.SliderFloat("Item spacing", &ctx.baseStyle.ItemSpacing, 0, 12, WithFormat("%.0f"), WithStep(1))
}

// applyDemoStyle switches to a preset. The window background is the
// application's setting and carries over.
func (ctx *Context) applyDemoStyle(i int) {
	preset := demoStyles[i]
	style := preset.style()
	style.WindowBgColor = ctx.baseStyle.WindowBgColor
	ctx.SetStyle(style)
	ctx.log.Debug().Str("style", preset.name).Msg("style changed")
}

func (ctx *Context) demoMetrics() {
	m := ctx.metrics
	fps := float32(0)
	if ctx.DeltaTime > 0 {
		fps = 1 / ctx.DeltaTime
	}
	ctx.Textf("Frame %d, %.1f FPS", ctx.FrameCount, fps)
	ctx.Textf("%d windows, %d draw commands", m.Windows, m.Commands)
	ctx.Textf("%d vertices, %d indices", m.Vertices, m.Indices)
	ctx.Textf("%d widget states", childStore.Len()+sliderStore.Len())
	if w := ctx.hoveredWindow; w != nil {
		ctx.Textf("Hovered window: %s", displayLabel(w.name))
	} else {
		ctx.Text("Hovered window: none")
	}
}
