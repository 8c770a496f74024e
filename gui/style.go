package gui

// Style defines the visual appearance of UI elements.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	// Windows
	WindowBgColor      uint32
	ChildBgColor       uint32 // 0 = transparent
	BorderColor        uint32
	TitleBgColor       uint32
	TitleBgActiveColor uint32 // title bar of the front-most window
	TitleTextColor     uint32 // 0 = TextColor

	// Frames (checkbox boxes, slider tracks, plot backgrounds)
	FrameBgColor        uint32
	FrameBgHoveredColor uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Selectables and collapsing headers
	SelectedBgColor uint32
	HoveredBgColor  uint32
	HeaderColor     uint32

	CheckMarkColor uint32
	SeparatorColor uint32

	SliderGrabColor  uint32
	SliderGrabActive uint32

	PlotColor        uint32
	PlotHoveredColor uint32

	ScrollbarBgColor   uint32
	ScrollbarGrabColor uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32 // gap between items, both axes
	WindowPadding float32
	FramePadding  float32 // inner padding of buttons, frames and title bars
	IndentSpacing float32
	BorderSize    float32
	ScrollbarSize float32
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		WindowBgColor:      RGBA(20, 20, 20, 200),
		ChildBgColor:       0,
		BorderColor:        RGBA(80, 80, 80, 255),
		TitleBgColor:       RGBA(40, 40, 45, 255),
		TitleBgActiveColor: RGBA(50, 80, 120, 255),

		FrameBgColor:        RGBA(30, 30, 30, 255),
		FrameBgHoveredColor: RGBA(40, 40, 50, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),
		HeaderColor:     RGBA(45, 45, 50, 255),

		CheckMarkColor: ColorWhite,
		SeparatorColor: RGBA(80, 80, 80, 255),

		SliderGrabColor:  RGBA(100, 100, 100, 255),
		SliderGrabActive: RGBA(140, 140, 140, 255),

		PlotColor:        RGBA(50, 100, 150, 255),
		PlotHoveredColor: RGBA(230, 180, 40, 255),

		ScrollbarBgColor:   RGBA(30, 30, 30, 255),
		ScrollbarGrabColor: RGBA(80, 80, 80, 255),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		WindowPadding: 8,
		FramePadding:  4,
		IndentSpacing: 16,
		BorderSize:    1,
		ScrollbarSize: 10,
	}
}

// DarkStyle returns a dark theme with blue accents.
func DarkStyle() Style {
	s := DefaultStyle()
	s.WindowBgColor = RGBA(15, 15, 15, 240)
	s.BorderColor = RGBA(110, 110, 128, 128)
	s.TitleBgColor = RGBA(10, 10, 10, 255)
	s.TitleBgActiveColor = RGBA(41, 74, 122, 255)
	s.FrameBgColor = RGBA(41, 74, 122, 138)
	s.FrameBgHoveredColor = RGBA(66, 150, 250, 102)
	s.ButtonColor = RGBA(66, 150, 250, 102)
	s.ButtonHoveredColor = RGBA(66, 150, 250, 255)
	s.ButtonActiveColor = RGBA(15, 135, 250, 255)
	s.SelectedBgColor = RGBA(66, 150, 250, 79)
	s.HoveredBgColor = RGBA(66, 150, 250, 204)
	s.HeaderColor = RGBA(66, 150, 250, 79)
	s.CheckMarkColor = RGBA(66, 150, 250, 255)
	s.SeparatorColor = RGBA(110, 110, 128, 128)
	s.SliderGrabColor = RGBA(61, 133, 224, 255)
	s.SliderGrabActive = RGBA(66, 150, 250, 255)
	s.PlotColor = RGBA(230, 179, 0, 255)
	s.PlotHoveredColor = RGBA(255, 153, 0, 255)
	return s
}

// GTAStyle returns a GTA San Andreas-inspired style: dark panels with
// cyan and yellow accents reminiscent of the game's menus.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TitleTextColor = RGBA(255, 200, 0, 255)
	s.WindowBgColor = RGBA(0, 0, 0, 220)
	s.BorderColor = RGBA(100, 100, 100, 255)
	s.TitleBgColor = RGBA(0, 40, 60, 255)
	s.TitleBgActiveColor = RGBA(0, 60, 90, 255)
	s.FrameBgColor = RGBA(20, 20, 20, 255)
	s.FrameBgHoveredColor = RGBA(30, 40, 50, 255)
	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)
	s.HeaderColor = RGBA(0, 80, 120, 255)
	s.CheckMarkColor = RGBA(255, 200, 0, 255)
	s.SeparatorColor = RGBA(0, 150, 200, 128)
	s.SliderGrabColor = RGBA(0, 150, 200, 255)
	s.SliderGrabActive = RGBA(0, 200, 255, 255)
	s.PlotColor = RGBA(0, 150, 200, 255)
	s.ScrollbarGrabColor = RGBA(0, 100, 150, 255)
	s.ItemSpacing = 6
	s.WindowPadding = 12
	s.FramePadding = 6
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.WindowBgColor = RGBA(240, 240, 240, 255)
	s.BorderColor = RGBA(180, 180, 180, 255)
	s.TitleBgColor = RGBA(220, 220, 225, 255)
	s.TitleBgActiveColor = RGBA(190, 205, 230, 255)
	s.FrameBgColor = ColorWhite
	s.FrameBgHoveredColor = RGBA(225, 235, 250, 255)
	s.ButtonColor = RGBA(210, 210, 210, 255)
	s.ButtonHoveredColor = RGBA(190, 190, 190, 255)
	s.ButtonActiveColor = RGBA(170, 170, 170, 255)
	s.SelectedBgColor = RGBA(150, 190, 240, 255)
	s.HoveredBgColor = RGBA(200, 220, 245, 255)
	s.HeaderColor = RGBA(210, 215, 225, 255)
	s.CheckMarkColor = RGBA(0, 120, 215, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.SliderGrabColor = RGBA(120, 160, 220, 255)
	s.SliderGrabActive = RGBA(0, 120, 215, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	return s
}
