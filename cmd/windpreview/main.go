// Wind field preview tool - interactive tuning with sliders.
//
// Usage: go run ./cmd/windpreview
package main

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/danielpeter/earth.tomo.viewer/field"
)

const (
	windowWidth  = 1000
	windowHeight = 600
	previewW     = 720
	previewH     = 360
	panelWidth   = windowWidth - previewW - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Wind Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	cfg := field.DefaultWindConfig()
	wind := field.NewWindField(cfg)

	var time float32
	animating := false

	for !rl.WindowShouldClose() {
		if animating {
			wind.Advance(float64(rl.GetFrameTime()))
			time += rl.GetFrameTime()
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 12, G: 16, B: 24, A: 255})

		drawField(wind)
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Time: %.1f", time), 15, previewH+25, 16, rl.LightGray)

		panelX := float32(previewW + 20)
		panelY := float32(10)

		rl.DrawText("Wind Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		changed := false

		newJet := slider(&panelY, panelX, "Jet strength", cfg.JetStrength, 0, 1, "%.2f")
		if newJet != cfg.JetStrength {
			cfg.JetStrength = newJet
			changed = true
		}

		newScale := slider(&panelY, panelX, "Eddy scale (noise frequency)", cfg.EddyScale, 0.5, 8, "%.1f")
		if newScale != cfg.EddyScale {
			cfg.EddyScale = newScale
			changed = true
		}

		newStrength := slider(&panelY, panelX, "Eddy strength", cfg.EddyStrength, 0, 1, "%.2f")
		if newStrength != cfg.EddyStrength {
			cfg.EddyStrength = newStrength
			changed = true
		}

		newDrift := slider(&panelY, panelX, "Drift speed", cfg.DriftSpeed, 0, 0.2, "%.3f")
		if newDrift != cfg.DriftSpeed {
			cfg.DriftSpeed = newDrift
			changed = true
		}

		newSeed := slider(&panelY, panelX, "Seed", float64(cfg.Seed), 0, 99999, "%.0f")
		if int64(newSeed) != cfg.Seed {
			cfg.Seed = int64(newSeed)
			changed = true
		}

		panelY += 10
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			cfg.Seed = int64(rl.GetRandomValue(0, 99999))
			changed = true
		}
		panelY += 50

		if changed {
			wind = field.NewWindField(cfg)
		}

		// Output YAML snippet
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		yamlLines := []string{
			"wind:",
			fmt.Sprintf("  seed: %d", cfg.Seed),
			fmt.Sprintf("  jet_strength: %.2f", cfg.JetStrength),
			fmt.Sprintf("  eddy_scale: %.1f", cfg.EddyScale),
			fmt.Sprintf("  eddy_strength: %.2f", cfg.EddyStrength),
			fmt.Sprintf("  drift_speed: %.3f", cfg.DriftSpeed),
		}
		for _, line := range yamlLines {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func slider(panelY *float32, panelX float32, label string, val, min, max float64, format string) float64 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	got := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		float32(val), float32(min), float32(max),
	)
	rl.DrawText(fmt.Sprintf(format, val), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.LightGray)
	*panelY += 35
	return float64(got)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// drawField renders the wind as arrow glyphs on an equirectangular grid,
// colored by magnitude.
func drawField(wind *field.WindField) {
	const step = 12 // pixels between glyphs

	for py := step / 2; py < previewH; py += step {
		lat := 90 - 180*float64(py)/previewH
		for px := step / 2; px < previewW; px += step {
			lon := -180 + 360*float64(px)/previewW

			vx, vy := wind.Sample(lon, lat)
			mag := math.Hypot(vx, vy)
			if mag == 0 {
				continue
			}

			// Glyph length proportional to magnitude, capped at one cell.
			l := math.Min(mag*float64(step)*1.5, step)
			dx := vx / mag * l
			dy := -vy / mag * l // screen y grows downward

			t := math.Min(mag/0.6, 1)
			col := rl.Color{
				R: uint8(40 + t*180),
				G: uint8(110 + t*120),
				B: uint8(190 + t*60),
				A: 255,
			}

			x0 := float32(10 + px)
			y0 := float32(10 + py)
			rl.DrawLineV(
				rl.Vector2{X: x0, Y: y0},
				rl.Vector2{X: x0 + float32(dx), Y: y0 + float32(dy)},
				col,
			)
		}
	}
}
