package shell

import (
	"fmt"
	"math"
)

// Tab identifies one entry of the vertical tab list.
type Tab int

const (
	Tab0 Tab = iota
	Tab1
	Tab2

	tabCount
)

// Tabs lists every tab in display order.
var Tabs = [tabCount]Tab{Tab0, Tab1, Tab2}

// String returns the tab's label.
func (t Tab) String() string {
	return fmt.Sprintf("Tab %d", int(t))
}

// State is the UI state the frame reads and writes.
type State struct {
	SelectedTab        Tab
	SliderValue        float32
	Counter            int
	ShowFloatingWindow bool
	ShowDemoWindow     bool
}

// SelectTab makes t the selected tab. The last call in a frame wins.
func (s *State) SelectTab(t Tab) {
	if t < 0 || t >= tabCount {
		return
	}
	s.SelectedTab = t
}

// Click registers one accepted button click. The counter stops at
// math.MaxInt instead of wrapping.
func (s *State) Click() {
	if s.Counter < math.MaxInt {
		s.Counter++
	}
}
