package shell

import "github.com/go-theft-auto/standalone/gui"

// quitRequested reports whether Q is held together with either Control key.
func quitRequested(in *gui.InputState) bool {
	return in != nil && in.ModCtrl && in.KeyDown(gui.KeyQ)
}
