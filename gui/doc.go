/*
Package gui provides an immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. There is no widget tree to manage: UI code is
called each frame with the current application state and widgets return
interaction results directly.

	renderer, _ := opengl.NewRenderer(win)
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	for !win.ShouldClose() {
	    win.PollEvents()

	    ctx := ui.Begin(win.Input(), gui.Vec2{X: 900, Y: 500}, dt)

	    ctx.SetNextWindowPos(gui.Vec2{X: 20, Y: 20}, gui.CondFirstUseEver)
	    ctx.Window("Settings", &open, 0)(func() {
	        ctx.Text("Hello World")
	        if ctx.Button("Click Me") {
	            clicks++
	        }
	        ctx.SameLine()
	        ctx.Textf("clicks = %d", clicks)
	    })

	    ui.End()
	    win.SwapBuffers()
	}

# Windows

Every widget is drawn into the draw list of the window that encloses it.
Windows are rendered back to front; clicking a window brings it to the front
unless it was created with WindowNoBringToFrontOnFocus. Only the top-most
window under the mouse (as of the previous frame) receives mouse input, so
widgets hidden behind a floating window never react to clicks meant for it.

Window positions are remembered between runs in a small YAML document (see
WithLayoutFile). Passing an empty path disables persistence entirely.

# Labels and IDs

Widget IDs are derived from their label hashed with the enclosing ID scope
(window, child, PushID). A "##" suffix keeps the ID distinct while hiding the
suffix from the rendered text, so "Save##top" and "Save##bottom" are two
different buttons that both display "Save".

# Layout

Containers use closures:

	ctx.Child("list", gui.Vec2{X: 200}, true)(func() {
	    ctx.Selectable("Item", true)
	})
	ctx.SameLine()
	ctx.Child("details", gui.Vec2{}, false)(func() {
	    ctx.Text("Details")
	})

A zero width or height fills the remaining space of the parent.

# Keyboard

The library reads mouse state, the mouse wheel and modifier keys. Application
level shortcuts are handled by the caller using InputState directly, e.g.

	if in.ModCtrl && in.KeyDown(gui.KeyQ) { ... }
*/
package gui
