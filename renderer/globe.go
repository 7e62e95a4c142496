package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/danielpeter/earth.tomo.viewer/geo"
)

// GlobeRenderer draws the ocean disc, graticule, and limb behind the
// streamlines.
type GlobeRenderer struct {
	oceanColor rl.Color
	gridColor  rl.Color
	limbColor  rl.Color

	// Graticule spacing in degrees; 0 disables the grid.
	GraticuleDeg float64
}

// NewGlobeRenderer creates a globe renderer with the default palette.
func NewGlobeRenderer(graticuleDeg float64) *GlobeRenderer {
	return &GlobeRenderer{
		oceanColor:   rl.Color{R: 8, G: 16, B: 32, A: 255},
		gridColor:    rl.Color{R: 40, G: 60, B: 85, A: 255},
		limbColor:    rl.Color{R: 90, G: 120, B: 150, A: 255},
		GraticuleDeg: graticuleDeg,
	}
}

// Draw renders the globe background for the current projection state.
func (g *GlobeRenderer) Draw(proj *geo.Orthographic, cx, cy float64) {
	radius := float32(proj.Scale())
	rl.DrawCircle(int32(cx), int32(cy), radius, g.oceanColor)

	if g.GraticuleDeg > 0 {
		g.drawGraticule(proj)
	}

	rl.DrawCircleLines(int32(cx), int32(cy), radius, g.limbColor)
}

// drawGraticule strokes meridians and parallels as short projected
// segments, dropping the ones on the far hemisphere.
func (g *GlobeRenderer) drawGraticule(proj *geo.Orthographic) {
	const step = 2.0 // degrees per segment

	// Meridians
	for lon := -180.0; lon < 180; lon += g.GraticuleDeg {
		for lat := -90.0; lat < 90; lat += step {
			g.strokeArc(proj, lon, lat, lon, lat+step)
		}
	}

	// Parallels (skip the poles themselves)
	for lat := -90.0 + g.GraticuleDeg; lat < 90; lat += g.GraticuleDeg {
		for lon := -180.0; lon < 180; lon += step {
			g.strokeArc(proj, lon, lat, lon+step, lat)
		}
	}
}

func (g *GlobeRenderer) strokeArc(proj *geo.Orthographic, lon0, lat0, lon1, lat1 float64) {
	x0, y0, ok0 := proj.Project(lon0, lat0)
	x1, y1, ok1 := proj.Project(lon1, lat1)
	if !ok0 || !ok1 {
		return
	}
	rl.DrawLineV(
		rl.Vector2{X: float32(x0), Y: float32(y0)},
		rl.Vector2{X: float32(x1), Y: float32(y1)},
		g.gridColor,
	)
}
