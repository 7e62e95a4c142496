package field

import (
	"math"
	"testing"
)

func TestWindFieldReady(t *testing.T) {
	w := NewWindField(DefaultWindConfig())
	if !w.Ready() {
		t.Error("a constructed wind field should be ready")
	}

	var nilField *WindField
	if nilField.Ready() {
		t.Error("a nil wind field should not be ready")
	}
}

func TestWindFieldDeterministic(t *testing.T) {
	a := NewWindField(DefaultWindConfig())
	b := NewWindField(DefaultWindConfig())

	for _, p := range [][2]float64{{0, 0}, {120, -45}, {-80, 70}} {
		ax, ay := a.Sample(p[0], p[1])
		bx, by := b.Sample(p[0], p[1])
		if ax != bx || ay != by {
			t.Errorf("same seed diverged at (%f, %f)", p[0], p[1])
		}
	}
}

func TestWindFieldSeedChangesField(t *testing.T) {
	cfg := DefaultWindConfig()
	a := NewWindField(cfg)
	cfg.Seed = 99
	b := NewWindField(cfg)

	ax, ay := a.Sample(42, 17)
	bx, by := b.Sample(42, 17)
	if ax == bx && ay == by {
		t.Error("different seeds should produce different fields")
	}
}

func TestWindFieldFinite(t *testing.T) {
	w := NewWindField(DefaultWindConfig())

	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 30 {
			vx, vy := w.Sample(lon, lat)
			if math.IsNaN(vx) || math.IsNaN(vy) || math.IsInf(vx, 0) || math.IsInf(vy, 0) {
				t.Fatalf("non-finite sample (%f, %f) at (%f, %f)", vx, vy, lon, lat)
			}
		}
	}
}

func TestWindFieldNoAntimeridianSeam(t *testing.T) {
	w := NewWindField(DefaultWindConfig())

	// The noise is sampled on the unit sphere, so ±180° is the same point.
	ax, ay := w.Sample(180, 20)
	bx, by := w.Sample(-180, 20)
	if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
		t.Errorf("seam at the antimeridian: (%f, %f) vs (%f, %f)", ax, ay, bx, by)
	}
}

func TestWindFieldDrift(t *testing.T) {
	cfg := DefaultWindConfig()
	cfg.DriftSpeed = 1
	w := NewWindField(cfg)

	ax, ay := w.Sample(10, 10)
	w.Advance(5)
	bx, by := w.Sample(10, 10)
	if ax == bx && ay == by {
		t.Error("advancing the drift should change the field")
	}
}
