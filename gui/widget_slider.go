package gui

import (
	"fmt"
	"strings"
)

var sliderStore = NewFrameStore[SliderState]()

const sliderGrabWidth = 10

// SliderFloat draws a horizontal slider for float32 values, with the value
// printed inside the frame and the label on the right. Dragging and the
// mouse wheel keep the value within [minVal, maxVal].
// Returns true if the value was changed.
//
// Usage:
//
//	if ctx.SliderFloat("Volume", &volume, 0, 1) {
//	    updateVolume(volume)
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := displayLabel(label)

	state := sliderStore.Get(id, SliderState{})

	frameW := GetOpt(o, OptWidth)
	if frameW <= 0 {
		frameW = maxf(ctx.ContentRegionAvail().X*0.65, sliderGrabWidth*4)
	}
	h := ctx.frameHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: frameW, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(id, rect)
	changed := false
	step := GetOpt(o, OptStep)

	set := func(v float32) {
		if step > 0 {
			v = minVal + float32(int((v-minVal)/step+0.5))*step
		}
		v = clampf(v, minVal, maxVal)
		if v != *value {
			*value = v
			changed = true
		}
	}

	setFromMouse := func() {
		if maxVal > minVal {
			relX := ctx.Input.MouseX - pos.X - sliderGrabWidth/2
			ratio := clampf(relX/(frameW-sliderGrabWidth), 0, 1)
			set(minVal + ratio*(maxVal-minVal))
		}
	}

	if ctx.Input != nil && !disabled {
		// A press and release within one frame still moves the grab.
		if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
			ctx.setActive(id)
			state.Dragging = true
			setFromMouse()
		}
		if state.Dragging && !ctx.Input.MouseDown(MouseButtonLeft) {
			state.Dragging = false
		}
		// The drag follows the mouse even outside the frame or window.
		if state.Dragging && ctx.IsActive(id) {
			setFromMouse()
		}
		if hovered && !state.Dragging && ctx.Input.MouseWheelY != 0 && !ctx.wheelUsed {
			wheelStep := step
			if wheelStep == 0 {
				wheelStep = (maxVal - minVal) / 100
			}
			set(*value + ctx.Input.MouseWheelY*wheelStep)
			ctx.wheelUsed = true
		}
	}

	frameColor := ctx.style.FrameBgColor
	if hovered || state.Dragging {
		frameColor = ctx.style.FrameBgHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, frameW, h, frameColor)

	var ratio float32
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	grabColor := ctx.style.SliderGrabColor
	if state.Dragging {
		grabColor = ctx.style.SliderGrabActive
	}
	grabX := pos.X + ratio*(frameW-sliderGrabWidth)
	ctx.DrawList.AddRect(grabX, pos.Y+2, sliderGrabWidth, h-4, grabColor)

	valueText := formatSliderValue(GetOpt(o, OptFormat), *value)
	vs := ctx.MeasureText(valueText)
	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+(frameW-vs.X)/2, pos.Y+(h-vs.Y)/2, valueText, textColor)

	totalW := frameW
	if text != "" {
		ctx.addText(pos.X+frameW+ctx.style.ItemSpacing, pos.Y+ctx.style.FramePadding, text, textColor)
		totalW += ctx.style.ItemSpacing + ctx.MeasureText(text).X
	}

	ctx.AdvanceCursor(Vec2{X: totalW, Y: h})
	return changed
}

func formatSliderValue(format string, v float32) string {
	if format == "" {
		format = "%.3f"
	}
	if strings.Contains(format, "%d") {
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}

// SliderInt draws a horizontal slider for int values.
// Returns true if the value was changed.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	floatVal := float32(*value)
	opts = append([]Option{WithFormat("%d")}, opts...)
	opts = append(opts, WithStep(1))

	changed := ctx.SliderFloat(label, &floatVal, float32(minVal), float32(maxVal), opts...)
	if changed {
		*value = int(floatVal)
	}
	return changed
}

// GetSliderState returns the slider's state, or nil if it has not been drawn.
func GetSliderState(ctx *Context, label string) *SliderState {
	return sliderStore.GetIfExists(ctx.GetID(label))
}
