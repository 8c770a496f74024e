package shell

import "github.com/go-theft-auto/standalone/gui"

// frameUI is the part of *gui.Context a frame uses.
type frameUI interface {
	SetNextWindowPos(pos gui.Vec2, cond gui.Cond)
	SetNextWindowSize(size gui.Vec2, cond gui.Cond)
	Window(title string, open *bool, flags gui.WindowFlags) func(func())
	Child(id string, size gui.Vec2, border bool) func(func())
	Selectable(label string, selected bool, opts ...gui.Option) bool
	SameLine()
	Text(text string)
	Textf(format string, args ...any)
	SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...gui.Option) bool
	Button(label string, opts ...gui.Option) bool
	Checkbox(label string, value *bool, opts ...gui.Option) bool
	ShowDemoWindow(open *bool)
}

const (
	hostWindowName     = "##vtabs"
	tabListID          = "##tabs"
	tabContentID       = "Tab Content"
	floatingWindowName = "A Floating Window"
)

const hostWindowFlags = gui.WindowNoTitleBar |
	gui.WindowNoResize |
	gui.WindowNoMove |
	gui.WindowNoCollapse |
	gui.WindowNoBringToFrontOnFocus |
	gui.WindowNoSavedSettings

const floatingWindowText = "This is a floating window!\n" +
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.\n" +
	"Vestibulum ultrices metus non sapien malesuada, quis tempus magna placerat."

// drawFrame declares one frame of the UI for state s.
func drawFrame(ui frameUI, s *State, display gui.Vec2, tabListWidth float32, fps float64) {
	ui.SetNextWindowPos(gui.Vec2{}, gui.CondAlways)
	ui.SetNextWindowSize(display, gui.CondAlways)
	ui.Window(hostWindowName, nil, hostWindowFlags)(func() {
		ui.Child(tabListID, gui.Vec2{X: tabListWidth}, true)(func() {
			for _, t := range Tabs {
				if ui.Selectable(t.String(), s.SelectedTab == t) {
					s.SelectTab(t)
				}
			}
		})

		ui.SameLine()
		ui.Child(tabContentID, gui.Vec2{}, false)(func() {
			drawTabContent(ui, s, fps)
		})
	})

	if s.ShowFloatingWindow {
		ui.Window(floatingWindowName, &s.ShowFloatingWindow, 0)(func() {
			ui.Text(floatingWindowText)
		})
	}

	if s.ShowDemoWindow {
		ui.ShowDemoWindow(&s.ShowDemoWindow)
	}
}

func drawTabContent(ui frameUI, s *State, fps float64) {
	switch s.SelectedTab {
	case Tab0:
		ui.Textf("Render FPS: %.1f", fps)
		ui.Text("This is content for Tab 0.")
		ui.SliderFloat("Float slider", &s.SliderValue, 0, 1)
		if ui.Button("Button") {
			s.Click()
		}
		ui.SameLine()
		ui.Textf("Counter = %d", s.Counter)
		ui.Checkbox("Open a floating window", &s.ShowFloatingWindow)
		ui.Checkbox("Show demo window", &s.ShowDemoWindow)
	case Tab1:
		ui.Text("This is content for Tab 1.")
	case Tab2:
		ui.Text("This is content for Tab 2.")
	}
}
