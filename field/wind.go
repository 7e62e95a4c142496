package field

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/danielpeter/earth.tomo.viewer/geo"
)

// WindConfig holds the synthetic wind parameters.
type WindConfig struct {
	Seed         int64
	JetStrength  float64 // amplitude of the zonal jet bands
	EddyScale    float64 // noise frequency on the unit sphere
	EddyStrength float64 // amplitude of the noise-derived eddies
	DriftSpeed   float64 // noise time drift per second (0 = static field)
}

// DefaultWindConfig returns the tuning used by the viewer when the config
// file does not override it.
func DefaultWindConfig() WindConfig {
	return WindConfig{
		Seed:         12345,
		JetStrength:  0.35,
		EddyScale:    2.5,
		EddyStrength: 0.25,
		DriftSpeed:   0.02,
	}
}

// WindField is a synthetic global wind built from simplex noise sampled on
// the unit sphere, so the field has no seam at the antimeridian. Zonal jet
// bands alternate direction with latitude; eddies come from the noise.
type WindField struct {
	cfg   WindConfig
	noise opensimplex.Noise
	time  float64
}

// NewWindField creates a wind field with the given tuning.
func NewWindField(cfg WindConfig) *WindField {
	if cfg.EddyScale <= 0 {
		cfg.EddyScale = DefaultWindConfig().EddyScale
	}
	return &WindField{
		cfg:   cfg,
		noise: opensimplex.New(cfg.Seed),
	}
}

// Ready implements Sampler. A wind field is ready as soon as it exists.
func (w *WindField) Ready() bool { return w != nil && w.noise != nil }

// Advance moves the noise drift forward by dt seconds.
func (w *WindField) Advance(dt float64) {
	w.time += dt * w.cfg.DriftSpeed
}

// Sample implements Sampler. Components are degrees per advection step.
func (w *WindField) Sample(lon, lat float64) (vx, vy float64) {
	if !w.Ready() {
		return 0, 0
	}

	// Alternating easterly/westerly bands: trades, westerlies, polar
	// easterlies.
	jet := w.cfg.JetStrength * math.Cos(3*lat*geo.Deg2Rad)

	p := geo.Cartesian(lon, lat).Mul(w.cfg.EddyScale)
	nu := w.noise.Eval4(p.X(), p.Y(), p.Z(), w.time)
	nv := w.noise.Eval4(p.X()+37.2, p.Y()-11.8, p.Z()+5.4, w.time)

	vx = jet + w.cfg.EddyStrength*nu
	vy = w.cfg.EddyStrength * nv
	return vx, vy
}
