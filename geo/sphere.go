// Package geo provides spherical coordinate math and the orthographic
// projection used by the globe view.
package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Deg2Rad converts degrees to radians.
	Deg2Rad = math.Pi / 180
	// Rad2Deg converts radians to degrees.
	Rad2Deg = 180 / math.Pi
)

// Cartesian returns the unit-sphere vector for a position in degrees.
// X points at (0°E, 0°N), Y at (90°E, 0°N), Z at the north pole.
func Cartesian(lon, lat float64) mgl64.Vec3 {
	phi := lat * Deg2Rad
	lam := lon * Deg2Rad
	cosPhi := math.Cos(phi)
	return mgl64.Vec3{
		cosPhi * math.Cos(lam),
		cosPhi * math.Sin(lam),
		math.Sin(phi),
	}
}

// SameHemisphere reports whether p lies in the hemisphere centered on view.
// Points exactly on the terminator count as visible.
func SameHemisphere(p, view mgl64.Vec3) bool {
	return p.Dot(view) >= 0
}

// NormalizeLon wraps a longitude to [-180, 180].
func NormalizeLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
