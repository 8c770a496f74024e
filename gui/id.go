package gui

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// IDs are stable across frames for the same label in the same scope.
type ID uint64

// hashLabel combines a parent scope with a label.
func hashLabel(parent ID, label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(parent))
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// GetID returns the ID for label within the current ID scope.
// The full label is hashed, including any "##" suffix.
func (ctx *Context) GetID(label string) ID {
	return hashLabel(ctx.CurrentID(), label)
}

// GetIDFromInt returns the ID for an integer within the current scope.
// Useful for items in slices that share a label.
func (ctx *Context) GetIDFromInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return hashLabel(ctx.CurrentID(), string(buf[:]))
}

// PushID opens a nested ID scope.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt opens a nested ID scope keyed by an integer.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID closes the innermost ID scope.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the innermost scope ID (0 at the root).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// widgetID resolves a widget's ID from its label or an explicit WithID option.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// displayLabel strips the "##" ID suffix from a label.
func displayLabel(label string) string {
	if before, _, ok := strings.Cut(label, "##"); ok {
		return before
	}
	return label
}
