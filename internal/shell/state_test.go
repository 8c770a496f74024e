package shell

import (
	"math"
	"testing"
)

func TestTabString(t *testing.T) {
	for i, tab := range Tabs {
		want := []string{"Tab 0", "Tab 1", "Tab 2"}[i]
		if got := tab.String(); got != want {
			t.Errorf("Tab(%d).String() = %q, want %q", i, got, want)
		}
	}
}

func TestSelectTab(t *testing.T) {
	var s State
	s.SelectTab(Tab1)
	s.SelectTab(Tab2)
	if s.SelectedTab != Tab2 {
		t.Errorf("SelectedTab = %v, want %v", s.SelectedTab, Tab2)
	}

	s.SelectTab(Tab(7))
	if s.SelectedTab != Tab2 {
		t.Errorf("out-of-range tab changed selection to %v", s.SelectedTab)
	}
}

func TestClick(t *testing.T) {
	var s State
	for range 5 {
		prev := s.Counter
		s.Click()
		if s.Counter != prev+1 {
			t.Fatalf("Click moved counter from %d to %d", prev, s.Counter)
		}
	}

	s.Counter = math.MaxInt
	s.Click()
	if s.Counter != math.MaxInt {
		t.Errorf("Counter wrapped to %d", s.Counter)
	}
}
