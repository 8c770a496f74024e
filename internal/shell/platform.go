package shell

import "github.com/go-theft-auto/standalone/gui"

// Platform is the windowing library plus the GL loader.
type Platform interface {
	Init() error
	Terminate()
	CreateWindow(cfg Config) (Window, error)
	// NewRenderer binds a renderer to the current GL context.
	NewRenderer(width, height int) (Renderer, error)
	PollEvents()
	// Time returns monotonic seconds.
	Time() float64
}

// Window is a platform window with a current GL context.
type Window interface {
	Input() *gui.InputState
	// BeginInput and EndInput bracket PollEvents.
	BeginInput()
	EndInput()
	ShouldClose() bool
	SetShouldClose(bool)
	FramebufferSize() (int, int)
	SwapBuffers()
	Destroy()
}

// Renderer draws gui draw lists into the window.
type Renderer interface {
	gui.Renderer
	BeginFrame(width, height int)
	Clear(r, g, b, a float32)
	Delete()
}
