// Package renderer provides raylib-backed drawing for the globe view.
package renderer

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Canvas adapts the raylib frame to the streamline drawing interface.
type Canvas struct {
	w, h float64
}

// NewCanvas creates a canvas with the given dimensions in pixels.
func NewCanvas(w, h int32) *Canvas {
	return &Canvas{w: float64(w), h: float64(h)}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (w, h float64) { return c.w, c.h }

// Resize updates the canvas dimensions.
func (c *Canvas) Resize(w, h int32) {
	c.w, c.h = float64(w), float64(h)
}

// StrokeLine draws one line segment with the given width and color.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, width float32, col color.RGBA) {
	rl.DrawLineEx(
		rl.Vector2{X: float32(x0), Y: float32(y0)},
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		width,
		rl.Color{R: col.R, G: col.G, B: col.B, A: col.A},
	)
}
