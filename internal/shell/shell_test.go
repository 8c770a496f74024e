package shell

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/standalone/gui"
)

func TestRunStartupFailures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(p *fakePlatform)
		wantErr error
		events  []string
	}{
		{
			name:    "init",
			setup:   func(p *fakePlatform) { p.initErr = errFake },
			wantErr: ErrWindowingInit,
			events:  []string{"init"},
		},
		{
			name:    "window",
			setup:   func(p *fakePlatform) { p.createErr = errFake },
			wantErr: ErrWindowCreation,
			events:  []string{"init", "create window", "terminate"},
		},
		{
			name:    "renderer",
			setup:   func(p *fakePlatform) { p.rendererErr = errFake },
			wantErr: ErrRendererInit,
			events:  []string{"init", "create window", "new renderer", "destroy window", "terminate"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakePlatform()
			tt.setup(p)

			err := New(DefaultConfig(), p).Run()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, errFake) {
				t.Errorf("Run() = %v, does not wrap the library error", err)
			}
			if diff := cmp.Diff(tt.events, []string(*p.log)); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunInvalidConfig(t *testing.T) {
	p := newFakePlatform()
	cfg := DefaultConfig()
	cfg.Width = 0
	if err := New(cfg, p).Run(); !errors.Is(err, errInvalidConfig) {
		t.Errorf("Run() = %v, want errInvalidConfig", err)
	}
	if len(*p.log) != 0 {
		t.Errorf("platform touched: %v", *p.log)
	}
}

func TestRunShutdownOrder(t *testing.T) {
	p := newFakePlatform()
	p.win.maxFrames = 3

	if err := New(DefaultConfig(), p).Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := []string{"init", "create window", "new renderer", "delete renderer", "destroy window", "terminate"}
	if diff := cmp.Diff(want, []string(*p.log)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if p.win.swaps != 3 {
		t.Errorf("swaps = %d, want 3", p.win.swaps)
	}
	if p.win.cfg.Width != 900 || p.win.cfg.Height != 500 || !p.win.cfg.VSync {
		t.Errorf("window config = %+v", p.win.cfg)
	}
	if p.renderer.viewport != [2]int{900, 500} {
		t.Errorf("viewport = %v", p.renderer.viewport)
	}
	for _, c := range p.renderer.clears {
		if c != [4]float32{0.1, 0.1, 0.1, 1} {
			t.Errorf("clear color = %v", c)
		}
	}
	if len(p.renderer.clears) != 3 || p.renderer.renders == 0 {
		t.Errorf("clears = %d, renders = %d", len(p.renderer.clears), p.renderer.renders)
	}
}

func TestRunRenderError(t *testing.T) {
	p := newFakePlatform()
	p.renderer.renderErr = errFake
	p.win.maxFrames = 5

	err := New(DefaultConfig(), p).Run()
	if !errors.Is(err, errFake) {
		t.Fatalf("Run() = %v, want render error", err)
	}
	if p.win.swaps != 0 {
		t.Errorf("swaps = %d after failed submit, want 0", p.win.swaps)
	}
	want := []string{"init", "create window", "new renderer", "delete renderer", "destroy window", "terminate"}
	if diff := cmp.Diff(want, []string(*p.log)); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestRunCtrlQClosesInSameIteration(t *testing.T) {
	p := newFakePlatform()
	p.win.maxFrames = 100
	p.win.script = []func(*gui.InputState){
		3: func(in *gui.InputState) {
			in.ModCtrl = true
			in.SetKey(gui.KeyQ, true)
		},
	}

	if err := New(DefaultConfig(), p).Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if p.win.closedAt != 4 {
		t.Errorf("close flag set after poll %d, want 4", p.win.closedAt)
	}
	// The frame that saw the shortcut is still presented.
	if p.win.swaps != 4 {
		t.Errorf("swaps = %d, want 4", p.win.swaps)
	}
}

func TestRunWithoutCtrlQNeverCloses(t *testing.T) {
	p := newFakePlatform()
	p.win.maxFrames = 20
	p.win.script = []func(*gui.InputState){
		2: func(in *gui.InputState) { in.SetKey(gui.KeyQ, true) },
		5: func(in *gui.InputState) {
			in.SetKey(gui.KeyQ, false)
			in.ModCtrl = true
		},
	}

	if err := New(DefaultConfig(), p).Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if p.win.closedAt != 0 {
		t.Errorf("close flag set after poll %d", p.win.closedAt)
	}
}

func TestRunFPSEstimate(t *testing.T) {
	p := newFakePlatform()
	p.step = 0.25
	p.win.maxFrames = 6

	sh := New(DefaultConfig(), p)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	// Four frames a quarter second apart make the first full second.
	if got := sh.fps.FPS(); got != 4 {
		t.Errorf("FPS = %v, want 4", got)
	}
}

// Widget positions for the default config and the dark style: an 8 pixel
// window padding, 4 pixel item spacing and an 8x8 font.
var (
	tab0Pos        = gui.Vec2{X: 40, Y: 20}
	tab1Pos        = gui.Vec2{X: 40, Y: 33}
	sliderPos      = gui.Vec2{X: 300, Y: 40}
	buttonPos      = gui.Vec2{X: 230, Y: 60}
	floatingBoxPos = gui.Vec2{X: 220, Y: 80}
)

func moveTo(p gui.Vec2) func(*gui.InputState) {
	return func(in *gui.InputState) { in.SetMousePos(p.X, p.Y) }
}

func press(in *gui.InputState)   { in.SetMouseButton(gui.MouseButtonLeft, true) }
func release(in *gui.InputState) { in.SetMouseButton(gui.MouseButtonLeft, false) }

func clickAt(p gui.Vec2) func(*gui.InputState) {
	return func(in *gui.InputState) {
		in.SetMousePos(p.X, p.Y)
		press(in)
	}
}

func TestRunTabsAndCounter(t *testing.T) {
	p := newFakePlatform()
	p.win.script = []func(*gui.InputState){
		moveTo(tab1Pos),
		press,
		release,
		clickAt(tab0Pos),
		release,
		clickAt(buttonPos),
		release,
		press,
		release,
	}
	p.win.maxFrames = len(p.win.script)

	sh := New(DefaultConfig(), p)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}

	want := State{SelectedTab: Tab0, Counter: 2}
	if diff := cmp.Diff(want, sh.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestRunSliderStaysInRange(t *testing.T) {
	tests := []struct {
		name  string
		dragX float32
		want  float32
	}{
		{"far left", -5000, 0},
		{"far right", 5000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFakePlatform()
			p.win.script = []func(*gui.InputState){
				moveTo(sliderPos),
				press,
				moveTo(gui.Vec2{X: tt.dragX, Y: sliderPos.Y}),
				moveTo(gui.Vec2{X: tt.dragX, Y: 9000}),
			}
			p.win.maxFrames = len(p.win.script)

			sh := New(DefaultConfig(), p)
			if err := sh.Run(); err != nil {
				t.Fatalf("Run() = %v", err)
			}
			if got := sh.State().SliderValue; got != tt.want {
				t.Errorf("SliderValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunFloatingWindowCheckbox(t *testing.T) {
	p := newFakePlatform()
	p.win.script = []func(*gui.InputState){
		moveTo(floatingBoxPos),
		press,
		release,
	}
	p.win.maxFrames = len(p.win.script)

	sh := New(DefaultConfig(), p)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if !sh.State().ShowFloatingWindow {
		t.Error("checkbox click did not open the floating window")
	}
}
