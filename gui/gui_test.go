package gui_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/standalone/gui"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	err         error
}

func (m *mockRenderer) Render(dl *gui.DrawList) error {
	m.renderCalls++
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

var displaySize = gui.Vec2{X: 800, Y: 600}

func newTestGUI(opts ...gui.GUIOption) (*gui.GUI, *mockRenderer) {
	renderer := &mockRenderer{}
	opts = append([]gui.GUIOption{gui.WithLayoutFile("")}, opts...)
	return gui.New(renderer, opts...), renderer
}

// frame runs one Begin/End cycle around draw.
func frame(t *testing.T, ui *gui.GUI, input *gui.InputState, draw func(ctx *gui.Context)) {
	t.Helper()
	ctx := ui.Begin(input, displaySize, 0.016)
	draw(ctx)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestGUIBasicUsage(t *testing.T) {
	ui, renderer := newTestGUI(gui.WithStyle(gui.GTAStyle()))
	input := gui.NewInputState()

	ctx := ui.Begin(input, gui.Vec2{X: 1920, Y: 1080}, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextColored("Colored", gui.ColorYellow)

	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	// Only the base layer has anything to draw.
	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestEndRendersWindowsAndReportsErrors(t *testing.T) {
	ui, renderer := newTestGUI()
	input := gui.NewInputState()

	var metrics gui.Metrics
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.Text("base")
		ctx.Window("One", nil, 0)(func() { ctx.Text("1") })
		ctx.Window("Two", nil, 0)(func() { ctx.Text("2") })
	})
	metrics = ui.Context().Metrics()

	if renderer.renderCalls != 3 {
		t.Errorf("expected 3 render calls, got %d", renderer.renderCalls)
	}
	if metrics.Windows != 2 || metrics.Commands == 0 || metrics.Vertices == 0 {
		t.Errorf("unexpected metrics %+v", metrics)
	}

	renderer.err = errors.New("gpu lost")
	ui.Begin(input, displaySize, 0.016).Text("x")
	if err := ui.End(); !errors.Is(err, renderer.err) {
		t.Errorf("End() = %v, want render error", err)
	}
}

func TestButton(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		if ctx.Button("Test Button") {
			t.Error("button should not be clicked without mouse input")
		}
	})
}

func TestButtonWithClick(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	// The button is drawn at the origin.
	input.SetMousePos(10, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	clicks := 0
	draw := func(ctx *gui.Context) {
		if ctx.Button("Click Me") {
			clicks++
		}
	}
	frame(t, ui, input, draw)

	// Holding the button does not click again.
	input.Reset()
	frame(t, ui, input, draw)

	input.Reset()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	frame(t, ui, input, draw)

	input.Reset()
	input.SetMouseButton(gui.MouseButtonLeft, true)
	frame(t, ui, input, draw)

	if clicks != 2 {
		t.Errorf("expected 2 clicks, got %d", clicks)
	}
}

func TestDisabledButton(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()
	input.SetMousePos(10, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	frame(t, ui, input, func(ctx *gui.Context) {
		if ctx.Button("Nope", gui.WithDisabled(true)) {
			t.Error("disabled button reported a click")
		}
	})
}

func TestCheckbox(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	checked := false
	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.Checkbox("Enable", &checked)
	})
	if checked {
		t.Error("checkbox should remain unchecked without click")
	}

	input.SetMousePos(5, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	frame(t, ui, input, func(ctx *gui.Context) {
		if !ctx.Checkbox("Enable", &checked) {
			t.Error("Checkbox did not report a change")
		}
	})
	if !checked {
		t.Error("click did not check the checkbox")
	}
}

func TestSelectable(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	// Items are 10 pixels tall with 4 pixels between them.
	input.SetMousePos(5, 17)
	input.SetMouseButton(gui.MouseButtonLeft, true)

	selected := 0
	items := []string{"Item 0", "Item 1", "Item 2"}
	frame(t, ui, input, func(ctx *gui.Context) {
		for i, item := range items {
			if ctx.Selectable(item, i == selected) {
				selected = i
			}
		}
	})

	if selected != 1 {
		t.Errorf("selected = %d, want 1", selected)
	}
}

func TestVStackHStack(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		ctx.VStack(gui.Gap(10))(func() {
			ctx.HStack(gui.Gap(5))(func() {
				ctx.Text("Label:")
				ctx.Text("Value")
			})
			ctx.Text("Below")
		})

		// Row of height 8, then the stack's item spacing.
		if got := ctx.GetCursorPos(); got != (gui.Vec2{X: 0, Y: 8 + 10 + 8 + 4}) {
			t.Errorf("cursor after stacks = %+v", got)
		}
	})
}

func TestDrawListPool(t *testing.T) {
	dl1 := gui.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	dl1.AddRect(0, 0, 100, 100, gui.ColorWhite)
	gui.ReleaseDrawList(dl1)

	// Acquire again - might get same or different list
	dl2 := gui.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	gui.ReleaseDrawList(dl2)
}

func TestIDGeneration(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		// IDs are stable so widget state survives between frames.
		if ctx.GetID("button") != ctx.GetID("button") {
			t.Error("same label in the same scope should give the same ID")
		}
		if ctx.GetID("OK##first") == ctx.GetID("OK##second") {
			t.Error("labels differing after ## should give different IDs")
		}
		if ctx.GetIDFromInt(1) == ctx.GetIDFromInt(2) {
			t.Error("different ints should give different IDs")
		}
	})
}

func TestPushPopID(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		root := ctx.CurrentID()

		ctx.PushID("section1")
		id1 := ctx.GetID("item")
		ctx.PopID()

		ctx.PushID("section2")
		id2 := ctx.GetID("item")
		ctx.PopID()

		if id1 == id2 {
			t.Error("same label in different sections should have different IDs")
		}
		if ctx.CurrentID() != root {
			t.Error("PopID did not restore the scope")
		}
	})
}

func TestStateStore(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	frame(t, ui, input, func(ctx *gui.Context) {
		id := ctx.GetID("test_state")

		gui.SetState(ctx, id, float32(42.5))

		if value := gui.GetState(ctx, id, float32(0)); value != 42.5 {
			t.Errorf("expected 42.5, got %v", value)
		}
		if value := gui.GetState(ctx, ctx.GetID("nonexistent"), float32(99)); value != 99 {
			t.Errorf("expected default 99, got %v", value)
		}
	})
}

func TestCollapsingHeaderKeepsState(t *testing.T) {
	ui, _ := newTestGUI()
	input := gui.NewInputState()

	var open bool
	draw := func(ctx *gui.Context) {
		open = ctx.CollapsingHeader("Section", gui.DefaultOpen())
	}
	frame(t, ui, input, draw)
	if !open {
		t.Fatal("DefaultOpen header started closed")
	}

	input.SetMousePos(20, 5)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	frame(t, ui, input, draw)

	input.Reset()
	input.SetMouseButton(gui.MouseButtonLeft, false)
	frame(t, ui, input, draw)
	if open {
		t.Error("clicking the header did not close it")
	}
}

func TestStyles(t *testing.T) {
	styles := []gui.Style{
		gui.DefaultStyle(),
		gui.GTAStyle(),
		gui.DarkStyle(),
		gui.LightStyle(),
	}

	for i, style := range styles {
		if style.TextColor == 0 {
			t.Errorf("style %d has zero TextColor", i)
		}
		if style.CharWidth == 0 {
			t.Errorf("style %d has zero CharWidth", i)
		}
		if style.WindowBgColor == 0 {
			t.Errorf("style %d has zero WindowBgColor", i)
		}
	}
}

func TestWithStyleOverride(t *testing.T) {
	style := gui.DarkStyle()
	style.WindowBgColor = gui.RGBAf(0.1, 0.1, 0.1, 1)
	ui, _ := newTestGUI(gui.WithStyle(style))

	if got := ui.Style().WindowBgColor; got != gui.RGBA(26, 26, 26, 255) {
		t.Errorf("WindowBgColor = %#x", got)
	}

	// The style survives frames.
	frame(t, ui, gui.NewInputState(), func(ctx *gui.Context) {
		if ctx.Style().WindowBgColor != style.WindowBgColor {
			t.Error("frame style lost the override")
		}
	})
}

func TestColorFunctions(t *testing.T) {
	c := gui.RGBA(255, 128, 64, 200)
	if c != 0xC84080FF {
		t.Errorf("RGBA packed to %#x", c)
	}

	r, g, b, a := gui.UnpackRGBAf(gui.RGBAf(1.0, 0.5, 0.25, 0.8))
	near := func(x, want float32) bool { return x > want-0.01 && x < want+0.01 }
	if !near(r, 1) || !near(g, 0.5) || !near(b, 0.25) || !near(a, 0.8) {
		t.Errorf("RGBAf roundtrip: got %v,%v,%v,%v", r, g, b, a)
	}

	if gui.RGBAf(2, -1, 0, 1) != gui.RGBA(255, 0, 0, 255) {
		t.Error("RGBAf did not clamp")
	}
}

func BenchmarkDrawListAddRect(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddRect(float32(i%100), float32(i%100), 50, 50, gui.ColorWhite)
	}
}

func BenchmarkDrawListAddText(b *testing.B) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dl.AddText(0, float32(i%100*10), "Hello World", gui.ColorWhite, 1.0, 8, 8)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	ui := gui.New(&mockRenderer{}, gui.WithLayoutFile(""))
	input := gui.NewInputState()
	displaySize := gui.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		ctx.Window("Menu", nil, 0)(func() {
			ctx.Text("Title")
			for j := 0; j < 10; j++ {
				ctx.Selectable("Item", false, gui.WithID(string(rune('a'+j))))
			}
		})

		_ = ui.End()
	}
}
