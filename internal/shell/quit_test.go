package shell

import (
	"testing"

	"github.com/go-theft-auto/standalone/gui"
)

func TestQuitRequested(t *testing.T) {
	tests := []struct {
		name string
		ctrl bool
		key  gui.Key
		want bool
	}{
		{"ctrl+q", true, gui.KeyQ, true},
		{"q alone", false, gui.KeyQ, false},
		{"ctrl alone", true, gui.KeyNone, false},
		{"ctrl+other", true, gui.KeyA, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := gui.NewInputState()
			in.ModCtrl = tt.ctrl
			in.SetKey(tt.key, true)
			if got := quitRequested(in); got != tt.want {
				t.Errorf("quitRequested = %v, want %v", got, tt.want)
			}
		})
	}

	if quitRequested(nil) {
		t.Error("quitRequested(nil) = true")
	}
}
