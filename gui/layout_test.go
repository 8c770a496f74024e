package gui

import "testing"

func TestSameLinePlacesItemsOnOneRow(t *testing.T) {
	u := newTestUI(t)
	var counterPos, nextPos Vec2
	u.frame(func(ctx *Context) {
		ctx.VStack()(func() {
			ctx.Button("Button")
			ctx.SameLine()
			counterPos = ctx.ItemPos()
			ctx.Text("Counter = 0")
			nextPos = ctx.ItemPos()
			ctx.Text("next")
		})
	})

	// "Button" is 56 wide with padding; the text follows after the item spacing.
	if counterPos != (Vec2{X: 60, Y: 0}) {
		t.Errorf("same-line item at %+v", counterPos)
	}
	// The next row starts below the taller button.
	if nextPos != (Vec2{X: 0, Y: 16 + 4}) {
		t.Errorf("next row at %+v", nextPos)
	}
}

func TestSameLineFirstItemIgnored(t *testing.T) {
	u := newTestUI(t)
	u.frame(func(ctx *Context) {
		ctx.VStack()(func() {
			ctx.SameLine()
			if pos := ctx.ItemPos(); pos != (Vec2{}) {
				t.Errorf("first item at %+v", pos)
			}
		})
	})
}

func TestIndent(t *testing.T) {
	u := newTestUI(t)
	u.frame(func(ctx *Context) {
		ctx.VStack()(func() {
			ctx.Text("a")
			ctx.Indent(0)
			ctx.Text("b")
			if got := ctx.GetCursorPos().X; got != 16 {
				t.Errorf("indented cursor x = %v", got)
			}
			ctx.Unindent(0)
			ctx.Text("c")
			if got := ctx.GetCursorPos().X; got != 0 {
				t.Errorf("unindented cursor x = %v", got)
			}
		})
	})
}

func TestTextCenteredOnButtonRow(t *testing.T) {
	u := newTestUI(t)
	u.frame(func(ctx *Context) {
		ctx.VStack()(func() {
			ctx.Button("B")
			ctx.SameLine()
			ctx.Text("t")
			layout := ctx.currentLayout()
			// Text is 8 tall on a 16 tall row: drawn 4 lower.
			if layout.lastItem.H != 12 {
				t.Errorf("text item height = %v", layout.lastItem.H)
			}
		})
	})
}

func TestMeasureTextMultiLine(t *testing.T) {
	u := newTestUI(t)
	u.frame(func(ctx *Context) {
		got := ctx.MeasureText("ab\nlonger\n")
		if got != (Vec2{X: 6 * 8, Y: 3 * 8}) {
			t.Errorf("MeasureText = %+v", got)
		}
	})
}

func TestItemPosStableUntilAdvance(t *testing.T) {
	u := newTestUI(t)
	u.frame(func(ctx *Context) {
		ctx.VStack()(func() {
			ctx.Button("Button")
			ctx.SameLine()
			first := ctx.ItemPos()
			second := ctx.ItemPos()
			if first != second {
				t.Errorf("ItemPos moved from %+v to %+v", first, second)
			}
			ctx.Text("x")

			below := ctx.ItemPos()
			if again := ctx.ItemPos(); again != below || below != (Vec2{X: 0, Y: 20}) {
				t.Errorf("next row at %+v then %+v", below, again)
			}
		})
	})
}
