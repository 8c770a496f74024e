package shell

import (
	"errors"
	"fmt"

	"github.com/go-theft-auto/standalone/gui"
)

// events records lifecycle calls across the fakes in order.
type events []string

func (e *events) add(name string) { *e = append(*e, name) }

type fakePlatform struct {
	log *events

	initErr     error
	createErr   error
	rendererErr error

	now  float64
	step float64

	win      *fakeWindow
	renderer *fakeRenderer
}

func newFakePlatform() *fakePlatform {
	log := &events{}
	return &fakePlatform{
		log:      log,
		step:     1.0 / 60,
		win:      &fakeWindow{log: log, input: gui.NewInputState(), width: 900, height: 500},
		renderer: &fakeRenderer{log: log},
	}
}

func (p *fakePlatform) Init() error {
	p.log.add("init")
	return p.initErr
}

func (p *fakePlatform) Terminate() { p.log.add("terminate") }

func (p *fakePlatform) CreateWindow(cfg Config) (Window, error) {
	p.log.add("create window")
	if p.createErr != nil {
		return nil, p.createErr
	}
	p.win.cfg = cfg
	return p.win, nil
}

func (p *fakePlatform) NewRenderer(width, height int) (Renderer, error) {
	p.log.add("new renderer")
	if p.rendererErr != nil {
		return nil, p.rendererErr
	}
	return p.renderer, nil
}

func (p *fakePlatform) PollEvents() {
	p.now += p.step
	p.win.poll()
}

func (p *fakePlatform) Time() float64 { return p.now }

// fakeWindow runs script[i] while polling events for frame i (zero-based).
// It closes itself once maxFrames frames were presented.
type fakeWindow struct {
	log    *events
	cfg    Config
	input  *gui.InputState
	width  int
	height int

	script    []func(in *gui.InputState)
	maxFrames int

	polls       int
	swaps       int
	shouldClose bool
	closedAt    int // poll number that set the close flag, 0 if never
}

func (w *fakeWindow) poll() {
	if w.polls < len(w.script) && w.script[w.polls] != nil {
		w.script[w.polls](w.input)
	}
	w.polls++
}

func (w *fakeWindow) Input() *gui.InputState { return w.input }
func (w *fakeWindow) BeginInput()            { w.input.Reset() }
func (w *fakeWindow) EndInput()              {}

func (w *fakeWindow) ShouldClose() bool {
	return w.shouldClose || (w.maxFrames > 0 && w.swaps >= w.maxFrames)
}

func (w *fakeWindow) SetShouldClose(v bool) {
	w.log.add("set should close")
	w.shouldClose = v
	if v && w.closedAt == 0 {
		w.closedAt = w.polls
	}
}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SwapBuffers() {
	w.swaps++
}

func (w *fakeWindow) Destroy() { w.log.add("destroy window") }

type fakeRenderer struct {
	log *events

	renderErr error
	renders   int
	clears    [][4]float32
	viewport  [2]int
}

func (r *fakeRenderer) Render(dl *gui.DrawList) error {
	r.renders++
	return r.renderErr
}

func (r *fakeRenderer) FontTextureID() uint32 { return 1 }

func (r *fakeRenderer) Resize(width, height int) {}

func (r *fakeRenderer) BeginFrame(width, height int) {
	r.viewport = [2]int{width, height}
}

func (r *fakeRenderer) Clear(red, green, blue, alpha float32) {
	r.clears = append(r.clears, [4]float32{red, green, blue, alpha})
}

func (r *fakeRenderer) Delete() { r.log.add("delete renderer") }

var errFake = errors.New("fake failure")

// recordUI is a frameUI that records what a frame declares. Clicks are
// scripted by label.
type recordUI struct {
	texts   []string
	windows []string
	demo    int

	sliders []sliderCall

	clickSelectables map[string]bool
	clickButtons     map[string]bool
	toggleCheckboxes map[string]bool
	closeWindows     map[string]bool
	dragSliderTo     *float32
}

type sliderCall struct {
	label    string
	min, max float32
}

func (u *recordUI) SetNextWindowPos(gui.Vec2, gui.Cond)  {}
func (u *recordUI) SetNextWindowSize(gui.Vec2, gui.Cond) {}

func (u *recordUI) Window(title string, open *bool, flags gui.WindowFlags) func(func()) {
	return func(contents func()) {
		if open != nil && !*open {
			return
		}
		u.windows = append(u.windows, title)
		contents()
		if open != nil && u.closeWindows[title] {
			*open = false
		}
	}
}

func (u *recordUI) Child(id string, size gui.Vec2, border bool) func(func()) {
	return func(contents func()) { contents() }
}

func (u *recordUI) Selectable(label string, selected bool, opts ...gui.Option) bool {
	return u.clickSelectables[label]
}

func (u *recordUI) SameLine() {}

func (u *recordUI) Text(text string) { u.texts = append(u.texts, text) }

func (u *recordUI) Textf(format string, args ...any) {
	u.Text(fmt.Sprintf(format, args...))
}

func (u *recordUI) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...gui.Option) bool {
	u.sliders = append(u.sliders, sliderCall{label, minVal, maxVal})
	if u.dragSliderTo != nil {
		*value = *u.dragSliderTo
		return true
	}
	return false
}

func (u *recordUI) Button(label string, opts ...gui.Option) bool {
	return u.clickButtons[label]
}

func (u *recordUI) Checkbox(label string, value *bool, opts ...gui.Option) bool {
	if u.toggleCheckboxes[label] {
		*value = !*value
		return true
	}
	return false
}

func (u *recordUI) ShowDemoWindow(open *bool) { u.demo++ }

var _ frameUI = (*gui.Context)(nil)
