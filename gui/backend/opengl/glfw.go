package opengl

import (
	"errors"
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/standalone/gui"
)

// WindowConfig describes the window and GL context to create.
type WindowConfig struct {
	Title   string
	Width   int
	Height  int
	GLMajor int
	GLMinor int
	VSync   bool
}

// Platform owns the GLFW library lifetime.
type Platform struct {
	log zerolog.Logger
}

// NewPlatform creates a platform that logs through log.
func NewPlatform(log zerolog.Logger) *Platform {
	return &Platform{log: log}
}

// Init initializes GLFW. Call it from the main OS thread.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		p.logGLFWError(err)
		return fmt.Errorf("glfw init: %w", err)
	}
	p.log.Debug().Str("version", glfw.GetVersionString()).Msg("glfw initialized")
	return nil
}

// Terminate releases GLFW. Every window must be destroyed first.
func (p *Platform) Terminate() {
	glfw.Terminate()
}

// PollEvents processes pending window events.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// Time returns seconds since GLFW was initialized.
func (p *Platform) Time() float64 {
	return glfw.GetTime()
}

// CreateWindow opens a window with a core-profile OpenGL context, makes the
// context current and applies the swap interval.
func (p *Platform) CreateWindow(cfg WindowConfig) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		p.logGLFWError(err)
		return nil, fmt.Errorf("glfw create window: %w", err)
	}

	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{window: win, input: gui.NewInputState()}
	w.updateDisplayScale()
	w.installCallbacks()

	p.log.Debug().
		Str("title", cfg.Title).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Bool("vsync", cfg.VSync).
		Msg("window created")
	return w, nil
}

func (p *Platform) logGLFWError(err error) {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		p.log.Error().Int("code", int(gerr.Code)).Str("desc", gerr.Desc).Msg("glfw error")
	}
}

// Window wraps a GLFW window and feeds its events into a gui.InputState.
type Window struct {
	window *glfw.Window
	input  *gui.InputState
}

func (w *Window) installCallbacks() {
	w.window.SetKeyCallback(w.keyCallback)
	w.window.SetMouseButtonCallback(w.mouseButtonCallback)
	w.window.SetScrollCallback(w.scrollCallback)
	w.window.SetCursorPosCallback(w.cursorPosCallback)
}

// Input returns the input state the window's callbacks write to.
func (w *Window) Input() *gui.InputState {
	return w.input
}

// BeginInput clears last frame's events. Call it before PollEvents.
func (w *Window) BeginInput() {
	w.input.Reset()
	w.updateDisplayScale()
}

// updateDisplayScale lets cursor callbacks report framebuffer pixels, which
// differ from window coordinates on HiDPI displays.
func (w *Window) updateDisplayScale() {
	ww, wh := w.window.GetSize()
	fw, fh := w.window.GetFramebufferSize()
	w.input.SetDisplayScale(ww, wh, fw, fh)
}

// EndInput samples the modifier keys. Call it after PollEvents.
func (w *Window) EndInput() {
	in, win := w.input, w.window
	in.ModCtrl = win.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		win.GetKey(glfw.KeyRightControl) == glfw.Press
	in.ModShift = win.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		win.GetKey(glfw.KeyRightShift) == glfw.Press
	in.ModAlt = win.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		win.GetKey(glfw.KeyRightAlt) == glfw.Press
	in.ModSuper = win.GetKey(glfw.KeyLeftSuper) == glfw.Press ||
		win.GetKey(glfw.KeyRightSuper) == glfw.Press
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Destroy closes the window and its context.
func (w *Window) Destroy() {
	w.window.Destroy()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	guiKey := glfwKeyToGUIKey(key)
	if guiKey == gui.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		w.input.SetKey(guiKey, true)
	case glfw.Release:
		w.input.SetKey(guiKey, false)
	}
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	guiButton := glfwMouseButtonToGUI(button)
	if guiButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		w.input.SetMouseButton(guiButton, true)
	case glfw.Release:
		w.input.SetMouseButton(guiButton, false)
	}
}

func (w *Window) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	w.input.AddMouseWheel(float32(xoff), float32(yoff))
}

func (w *Window) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	w.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToGUIKey maps GLFW keys to GUI keys.
func glfwKeyToGUIKey(key glfw.Key) gui.Key {
	switch key {
	case glfw.KeyTab:
		return gui.KeyTab
	case glfw.KeyLeft:
		return gui.KeyLeft
	case glfw.KeyRight:
		return gui.KeyRight
	case glfw.KeyUp:
		return gui.KeyUp
	case glfw.KeyDown:
		return gui.KeyDown
	case glfw.KeyHome:
		return gui.KeyHome
	case glfw.KeyEnd:
		return gui.KeyEnd
	case glfw.KeyDelete:
		return gui.KeyDelete
	case glfw.KeyBackspace:
		return gui.KeyBackspace
	case glfw.KeySpace:
		return gui.KeySpace
	case glfw.KeyEnter:
		return gui.KeyEnter
	case glfw.KeyEscape:
		return gui.KeyEscape
	case glfw.KeyA:
		return gui.KeyA
	case glfw.KeyC:
		return gui.KeyC
	case glfw.KeyQ:
		return gui.KeyQ
	case glfw.KeyV:
		return gui.KeyV
	case glfw.KeyX:
		return gui.KeyX
	case glfw.KeyZ:
		return gui.KeyZ
	case glfw.KeyF1:
		return gui.KeyF1
	default:
		return gui.KeyNone
	}
}

// glfwMouseButtonToGUI maps GLFW mouse buttons to GUI mouse buttons.
func glfwMouseButtonToGUI(button glfw.MouseButton) gui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle
	default:
		return -1
	}
}
