// Package ui provides the heads-up display overlays.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	NumPaths    int
	PathLength  int
	Mode        string // "regular" or "random"
	Lon, Lat    float64
	Scale       float64
	FPS         int32
	Paused      bool
	AdaptWidth  bool
	FieldLoaded bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Paths: %d x %d | Seeding: %s", data.NumPaths, data.PathLength, data.Mode),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Center: %.1f, %.1f | Scale: %.0fpx | FPS: %d", data.Lon, data.Lat, data.Scale, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	status := "Running"
	if data.Paused {
		status = "PAUSED"
	}
	if !data.FieldLoaded {
		status += " | field not ready"
	}
	if data.AdaptWidth {
		status += " | adaptive width"
	}
	rl.DrawText(status, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
