package geo

import "math"

// Orthographic projects the globe as seen from infinity above a rotation
// center. The visible area is limited by a clip angle measured from the
// center (90° shows exactly one hemisphere).
type Orthographic struct {
	lon0, lat0 float64 // rotation center in degrees
	scale      float64 // sphere radius in pixels
	cx, cy     float64 // canvas position of the rotation center
	cosClip    float64

	sinLat0, cosLat0 float64
}

// NewOrthographic creates a projection centered on (0, 0) with the given
// pixel radius and translate point, clipped to the visible hemisphere.
func NewOrthographic(scale, cx, cy float64) *Orthographic {
	p := &Orthographic{scale: scale, cx: cx, cy: cy, cosLat0: 1}
	p.SetClipAngle(90)
	return p
}

// SetRotation points the projection at a new center, in degrees.
func (p *Orthographic) SetRotation(lon0, lat0 float64) {
	p.lon0 = lon0
	p.lat0 = lat0
	p.sinLat0 = math.Sin(lat0 * Deg2Rad)
	p.cosLat0 = math.Cos(lat0 * Deg2Rad)
}

// SetScale sets the sphere radius in pixels.
func (p *Orthographic) SetScale(scale float64) { p.scale = scale }

// SetTranslate sets the canvas position of the rotation center.
func (p *Orthographic) SetTranslate(cx, cy float64) { p.cx, p.cy = cx, cy }

// SetClipAngle sets the maximum angular distance from the rotation center,
// in degrees, beyond which Project reports the point as not visible.
func (p *Orthographic) SetClipAngle(deg float64) {
	p.cosClip = math.Cos(deg * Deg2Rad)
}

// Rotation returns the current center in degrees.
func (p *Orthographic) Rotation() (lon0, lat0 float64) { return p.lon0, p.lat0 }

// Scale returns the sphere radius in pixels.
func (p *Orthographic) Scale() float64 { return p.scale }

// Project maps a position in degrees to canvas pixels. ok is false when the
// point lies beyond the clip angle or the inputs are not finite.
func (p *Orthographic) Project(lon, lat float64) (x, y float64, ok bool) {
	if math.IsNaN(lon) || math.IsNaN(lat) {
		return 0, 0, false
	}
	phi := lat * Deg2Rad
	lam := (lon - p.lon0) * Deg2Rad
	sinPhi, cosPhi := math.Sincos(phi)
	sinLam, cosLam := math.Sincos(lam)

	// Cosine of the angular distance to the rotation center.
	cosc := p.sinLat0*sinPhi + p.cosLat0*cosPhi*cosLam
	if cosc < p.cosClip {
		return 0, 0, false
	}

	x = p.cx + p.scale*cosPhi*sinLam
	y = p.cy - p.scale*(p.cosLat0*sinPhi-p.sinLat0*cosPhi*cosLam)
	return x, y, true
}

// Unproject maps canvas pixels back to a position in degrees. ok is false
// when the pixel lies off the projected disc.
func (p *Orthographic) Unproject(x, y float64) (lon, lat float64, ok bool) {
	if p.scale <= 0 {
		return 0, 0, false
	}
	dx := (x - p.cx) / p.scale
	dy := (p.cy - y) / p.scale
	rho := math.Hypot(dx, dy)
	if rho > 1 || math.IsNaN(rho) {
		return 0, 0, false
	}
	if rho == 0 {
		return p.lon0, p.lat0, true
	}

	sinC := rho
	cosC := math.Sqrt(1 - rho*rho)

	lat = math.Asin(cosC*p.sinLat0+dy*sinC*p.cosLat0/rho) * Rad2Deg
	lam := math.Atan2(dx*sinC, rho*cosC*p.cosLat0-dy*sinC*p.sinLat0)
	lon = NormalizeLon(p.lon0 + lam*Rad2Deg)
	return lon, lat, true
}
