package geo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vecClose(a, b mgl64.Vec3) bool {
	return a.Sub(b).Len() < 1e-9
}

func TestCartesianAxes(t *testing.T) {
	cases := []struct {
		lon, lat float64
		want     mgl64.Vec3
	}{
		{0, 0, mgl64.Vec3{1, 0, 0}},
		{90, 0, mgl64.Vec3{0, 1, 0}},
		{180, 0, mgl64.Vec3{-1, 0, 0}},
		{0, 90, mgl64.Vec3{0, 0, 1}},
		{0, -90, mgl64.Vec3{0, 0, -1}},
	}

	for _, tc := range cases {
		got := Cartesian(tc.lon, tc.lat)
		if !vecClose(got, tc.want) {
			t.Errorf("Cartesian(%f, %f) = %v, want %v", tc.lon, tc.lat, got, tc.want)
		}
	}
}

func TestCartesianUnitLength(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 30 {
		for lon := -180.0; lon <= 180; lon += 45 {
			if l := Cartesian(lon, lat).Len(); math.Abs(l-1) > 1e-12 {
				t.Errorf("Cartesian(%f, %f) has length %f", lon, lat, l)
			}
		}
	}
}

func TestSameHemisphere(t *testing.T) {
	center := Cartesian(0, 0)

	if !SameHemisphere(Cartesian(45, 30), center) {
		t.Error("(45, 30) should face a (0, 0) center")
	}
	if SameHemisphere(Cartesian(180, 0), center) {
		t.Error("the antipode should not face the center")
	}
	// Terminator counts as visible
	if !SameHemisphere(Cartesian(90, 0), center) {
		t.Error("a point on the terminator should count as visible")
	}
}

func TestNormalizeLon(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{540, -180},
		{361, 1},
	}
	for _, tc := range cases {
		if got := NormalizeLon(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeLon(%f) = %f, want %f", tc.in, got, tc.want)
		}
	}
}
