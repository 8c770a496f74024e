package gui

import "testing"

type stubRenderer struct{}

func (stubRenderer) Render(*DrawList) error { return nil }
func (stubRenderer) FontTextureID() uint32  { return 1 }
func (stubRenderer) Resize(int, int)        {}

// testUI drives a GUI frame by frame with a shared input state.
type testUI struct {
	t     *testing.T
	ui    *GUI
	input *InputState
}

func newTestUI(t *testing.T, opts ...GUIOption) *testUI {
	t.Helper()
	opts = append([]GUIOption{WithLayoutFile("")}, opts...)
	return &testUI{t: t, ui: New(stubRenderer{}, opts...), input: NewInputState()}
}

// frame runs one frame. Events set by the previous frame are cleared first.
func (u *testUI) frame(draw func(ctx *Context)) {
	u.t.Helper()
	ctx := u.ui.Begin(u.input, Vec2{X: 800, Y: 600}, 0.016)
	draw(ctx)
	if err := u.ui.End(); err != nil {
		u.t.Fatalf("End() returned error: %v", err)
	}
	u.input.Reset()
}

func (u *testUI) move(x, y float32) { u.input.SetMousePos(x, y) }

func (u *testUI) press(x, y float32) {
	u.input.SetMousePos(x, y)
	u.input.SetMouseButton(MouseButtonLeft, true)
}

func (u *testUI) release() { u.input.SetMouseButton(MouseButtonLeft, false) }

func (u *testUI) ctx() *Context { return u.ui.ctx }
