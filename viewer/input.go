package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes mouse and keyboard state for the current frame.
func (v *Viewer) handleInput() {
	// Drag to rotate
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		v.dragging = true
		v.lastMouse = rl.GetMousePosition()
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		v.dragging = false
	}
	if v.dragging {
		pos := rl.GetMousePosition()
		v.cam.Drag(float64(pos.X-v.lastMouse.X), float64(pos.Y-v.lastMouse.Y))
		v.lastMouse = pos
	}

	// Wheel to zoom
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomBy(1 + float64(wheel)*0.1)
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		v.paused = !v.paused
	case rl.IsKeyPressed(rl.KeyR):
		v.regenerate()
	case rl.IsKeyPressed(rl.KeyC):
		v.lines.Clear()
	case rl.IsKeyPressed(rl.KeyA):
		v.lines.SetAdaptiveWidth(!v.lines.AdaptiveWidth())
	case rl.IsKeyPressed(rl.KeyHome):
		v.cam.Reset()
	}
}
