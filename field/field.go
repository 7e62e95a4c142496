// Package field provides vector field samplers consumed by the streamline
// generator.
package field

// Sampler supplies a velocity vector at a position in degrees. Components
// are expressed in degrees of displacement per advection step. A zero or
// NaN component means "no data here".
type Sampler interface {
	Sample(lon, lat float64) (vx, vy float64)

	// Ready reports whether the sampler has data to serve. Callers must
	// check it before generating or refreshing paths.
	Ready() bool
}
