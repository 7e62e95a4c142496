// Package camera provides the orbit camera controlling the globe view.
package camera

import "math"

// Camera holds the globe rotation and zoom state. Rotation is expressed as
// the lon/lat of the point facing the viewer; zoom is the projected sphere
// radius in pixels.
type Camera struct {
	// Lon and Lat are the view center in degrees.
	Lon, Lat float64

	// Scale is the sphere radius in pixels.
	Scale float64

	// Zoom constraints.
	MinScale, MaxScale float64

	// SpinRate is the auto-rotation speed in degrees per second
	// (positive spins eastward).
	SpinRate float64

	startLon, startLat, startScale float64
}

// New creates a camera looking at (lon, lat) with the given pixel radius.
func New(lon, lat, scale, minScale, maxScale float64) *Camera {
	if maxScale < minScale {
		maxScale = minScale
	}
	c := &Camera{
		Lon:      wrapLon(lon),
		Lat:      clamp(lat, -90, 90),
		MinScale: minScale,
		MaxScale: maxScale,
	}
	c.Scale = clamp(scale, minScale, maxScale)
	c.startLon, c.startLat, c.startScale = c.Lon, c.Lat, c.Scale
	return c
}

// Rotate moves the view center by a delta in degrees. Latitude clamps at
// the poles so the globe cannot flip; longitude wraps.
func (c *Camera) Rotate(dLon, dLat float64) {
	c.Lon = wrapLon(c.Lon + dLon)
	c.Lat = clamp(c.Lat+dLat, -90, 90)
}

// Drag converts a screen-pixel drag into rotation. Sensitivity scales
// inversely with zoom so a drag tracks the surface at any scale.
func (c *Camera) Drag(dxPx, dyPx float64) {
	if c.Scale <= 0 {
		return
	}
	degPerPx := 90 / c.Scale
	c.Rotate(-dxPx*degPerPx, dyPx*degPerPx)
}

// Spin advances the auto-rotation by dt seconds.
func (c *Camera) Spin(dt float64) {
	if c.SpinRate != 0 {
		c.Rotate(c.SpinRate*dt, 0)
	}
}

// ZoomBy multiplies the scale by the given factor, clamped to the limits.
func (c *Camera) ZoomBy(factor float64) {
	c.SetScale(c.Scale * factor)
}

// SetScale sets the sphere radius in pixels, clamped to the limits.
func (c *Camera) SetScale(scale float64) {
	c.Scale = clamp(scale, c.MinScale, c.MaxScale)
}

// Reset returns the camera to its initial rotation and zoom.
func (c *Camera) Reset() {
	c.Lon, c.Lat, c.Scale = c.startLon, c.startLat, c.startScale
}

// ZoomScale reports the current zoom scale for adaptive stroke width.
func (c *Camera) ZoomScale() float64 { return c.Scale }

// wrapLon wraps a longitude to [-180, 180].
func wrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
