package geo

import (
	"math"
	"testing"
)

func newTestProj() *Orthographic {
	p := NewOrthographic(200, 400, 300)
	p.SetRotation(30, 40)
	return p
}

func TestProjectCenter(t *testing.T) {
	p := newTestProj()

	x, y, ok := p.Project(30, 40)
	if !ok {
		t.Fatal("rotation center should project")
	}
	if math.Abs(x-400) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Errorf("center projected to (%f, %f), want (400, 300)", x, y)
	}
}

func TestUnprojectCenter(t *testing.T) {
	p := newTestProj()

	lon, lat, ok := p.Unproject(400, 300)
	if !ok {
		t.Fatal("canvas center should unproject")
	}
	if math.Abs(lon-30) > 1e-6 || math.Abs(lat-40) > 1e-6 {
		t.Errorf("center unprojected to (%f, %f), want (30, 40)", lon, lat)
	}
}

func TestProjectUnprojectRoundtrip(t *testing.T) {
	p := newTestProj()

	cases := []struct{ lon, lat float64 }{
		{30, 40},
		{0, 0},
		{60, 10},
		{-20, 70},
		{45, -15},
	}

	for _, tc := range cases {
		x, y, ok := p.Project(tc.lon, tc.lat)
		if !ok {
			t.Errorf("(%f, %f) should be visible", tc.lon, tc.lat)
			continue
		}
		lon, lat, ok := p.Unproject(x, y)
		if !ok {
			t.Errorf("unprojecting (%f, %f) failed", x, y)
			continue
		}
		if math.Abs(lon-tc.lon) > 1e-6 || math.Abs(lat-tc.lat) > 1e-6 {
			t.Errorf("roundtrip (%f, %f) -> (%f, %f)", tc.lon, tc.lat, lon, lat)
		}
	}
}

func TestProjectClipsFarHemisphere(t *testing.T) {
	p := newTestProj()

	// The antipode of (30, 40)
	if _, _, ok := p.Project(-150, -40); ok {
		t.Error("antipode should be clipped")
	}
	// More than 90° away
	if _, _, ok := p.Project(-160, 0); ok {
		t.Error("far-side point should be clipped")
	}
}

func TestClipAngleNarrows(t *testing.T) {
	p := newTestProj()
	p.SetClipAngle(30)

	// ~40° from center: outside a 30° cap, inside the hemisphere.
	if _, _, ok := p.Project(30, 80); ok {
		t.Error("point past the clip angle should not project")
	}
	if _, _, ok := p.Project(30, 60); !ok {
		t.Error("point inside the clip angle should project")
	}
}

func TestUnprojectOffDisc(t *testing.T) {
	p := newTestProj()

	// 300px from the center with a 200px radius
	if _, _, ok := p.Unproject(700, 300); ok {
		t.Error("pixel off the disc should not unproject")
	}
}

func TestProjectNaN(t *testing.T) {
	p := newTestProj()

	if _, _, ok := p.Project(math.NaN(), 10); ok {
		t.Error("NaN longitude should not project")
	}
	if _, _, ok := p.Project(10, math.NaN()); ok {
		t.Error("NaN latitude should not project")
	}
}

func TestSetScaleAndTranslate(t *testing.T) {
	p := NewOrthographic(100, 0, 0)
	p.SetScale(50)
	p.SetTranslate(10, 20)

	x, y, ok := p.Project(0, 0)
	if !ok {
		t.Fatal("center should project")
	}
	if math.Abs(x-10) > 1e-9 || math.Abs(y-20) > 1e-9 {
		t.Errorf("center projected to (%f, %f), want (10, 20)", x, y)
	}
	if p.Scale() != 50 {
		t.Errorf("Scale() = %f, want 50", p.Scale())
	}
}
