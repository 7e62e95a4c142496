package streamline

import (
	"image/color"
	"math"

	"github.com/danielpeter/earth.tomo.viewer/geo"
)

// Projection maps between positions in degrees and canvas pixels. ok=false
// marks a point that cannot be represented (clipped or off the disc).
type Projection interface {
	Project(lon, lat float64) (x, y float64, ok bool)
	Unproject(x, y float64) (lon, lat float64, ok bool)
	SetClipAngle(deg float64)
}

// Canvas is an immediate-mode drawing surface.
type Canvas interface {
	Size() (w, h float64)
	StrokeLine(x0, y0, x1, y1 float64, width float32, col color.RGBA)
}

// ZoomProvider reports the current zoom scale of the view transform. It is
// consulted only when adaptive line width is enabled.
type ZoomProvider interface {
	ZoomScale() float64
}

// Render strokes every valid, visible segment of the buffer. A segment is
// culled when either endpoint falls outside the hemisphere around the
// viewport center, or when the projection cannot map it. Render never
// mutates the buffer and silently returns when it is absent.
func (f *Field) Render(proj Projection, cv Canvas) {
	if f.buf == nil || f.scale == nil || proj == nil || cv == nil {
		return
	}

	w, h := cv.Size()
	proj.SetClipAngle(90)
	cLon, cLat, ok := proj.Unproject(w/2, h/2)
	if !ok {
		return
	}
	center := geo.Cartesian(cLon, cLat)

	width := f.cfg.LineWidth
	if f.cfg.AdaptWidth && f.zoom != nil {
		width = adaptiveWidth(f.zoom.ZoomScale(), w, h)
	}

	pathLen := f.cfg.PathLen
	for i := range f.buf {
		rec := &f.buf[i]
		lon0, lat0 := float64(rec.Lon), float64(rec.Lat)
		lon1 := lon0 + float64(rec.VX)
		lat1 := lat0 + float64(rec.VY)

		if !geo.SameHemisphere(geo.Cartesian(lon0, lat0), center) ||
			!geo.SameHemisphere(geo.Cartesian(lon1, lat1), center) {
			continue
		}

		x0, y0, ok0 := proj.Project(lon0, lat0)
		x1, y1, ok1 := proj.Project(lon1, lat1)
		if !ok0 || !ok1 ||
			math.IsNaN(x0) || math.IsNaN(y0) || math.IsNaN(x1) || math.IsNaN(y1) {
			continue
		}

		// Undo the stretch so the color domain is back near [0, 1].
		norm := math.Hypot(float64(rec.VX), float64(rec.VY)) / f.cfg.Stretch
		col := f.scale.At(norm)

		// Later records of a path draw more opaque.
		val := float64(i%pathLen+1) / float64(pathLen)
		col.A = alphaByte(0.1 + 0.2*val)

		cv.StrokeLine(x0, y0, x1, y1, width, col)
	}
}

// adaptiveWidth derives the stroke width from the zoom scale, floored once
// it reaches a full pixel.
func adaptiveWidth(zoom, w, h float64) float32 {
	lw := zoom / math.Min(w, h)
	if lw >= 1 {
		lw = math.Floor(lw)
	}
	return float32(lw)
}

func alphaByte(a float64) uint8 {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return uint8(a*255 + 0.5)
}
