package gui

import "fmt"

const defaultPlotHeight = 60

// PlotHistogram draws values as vertical bars, one per value, with the label
// on the right. Without WithScale the range is fitted to the data with zero
// as the baseline. Hovering a bar shows its index and value.
//
// Usage:
//
//	ctx.PlotHistogram("Frame times", times, gui.WithScale(0, 0.05), gui.WithHeight(80))
func (ctx *Context) PlotHistogram(label string, values []float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = maxf(ctx.ContentRegionAvail().X*0.65, 40)
	}
	h := GetOpt(o, OptHeight)
	if h <= 0 {
		h = defaultPlotHeight
	}

	yMin, yMax := plotScale(values, o)
	yRange := yMax - yMin
	if yRange <= 0 {
		yRange = 1
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.FrameBgColor)

	hoveredBar := -1
	if n := len(values); n > 0 {
		pad := ctx.style.FramePadding
		inner := Rect{X: pos.X + pad, Y: pos.Y + pad, W: w - pad*2, H: h - pad*2}
		barW := inner.W / float32(n)
		gap := minf(1, barW/4)
		frame := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

		var mouse Vec2
		hovered := ctx.isHovered(id, frame)
		if hovered {
			mouse = ctx.Input.MousePos()
		}

		for i, v := range values {
			x := inner.X + float32(i)*barW
			barH := clampf((v-yMin)/yRange, 0, 1) * inner.H
			color := ctx.style.PlotColor
			if hovered && mouse.X >= x && mouse.X < x+barW {
				hoveredBar = i
				color = ctx.style.PlotHoveredColor
			}
			ctx.DrawList.AddRect(x, inner.Y+inner.H-barH, barW-gap, barH, color)
		}
	}

	if overlay := GetOpt(o, OptOverlay); overlay != "" {
		ts := ctx.MeasureText(overlay)
		ctx.addText(pos.X+(w-ts.X)/2, pos.Y+ctx.style.FramePadding, overlay, ctx.style.TextColor)
	}

	totalW := w
	if text != "" {
		ctx.addText(pos.X+w+ctx.style.ItemSpacing, pos.Y+ctx.style.FramePadding, text, ctx.style.TextColor)
		totalW += ctx.style.ItemSpacing + ctx.MeasureText(text).X
	}

	if hoveredBar >= 0 {
		ctx.Tooltip(fmt.Sprintf("%d: %.4f", hoveredBar, values[hoveredBar]))
	}

	ctx.AdvanceCursor(Vec2{X: totalW, Y: h})
}

// plotScale returns the value range of a plot: WithScale when given,
// otherwise the data range extended to include zero.
func plotScale(values []float32, o options) (float32, float32) {
	if HasOpt(o, OptScaleMin) || HasOpt(o, OptScaleMax) {
		return GetOpt(o, OptScaleMin), GetOpt(o, OptScaleMax)
	}
	var lo, hi float32
	for _, v := range values {
		lo = minf(lo, v)
		hi = maxf(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}
