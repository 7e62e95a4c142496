package streamline

import (
	"fmt"
	"image/color"
	"strings"
)

// ColorScale maps [0, 1] to one of N discrete colors linearly interpolated
// per channel between two endpoints. Quantized buckets rather than
// continuous interpolation: the renderer only ever needs a handful of
// distinct stroke colors.
type ColorScale struct {
	buckets []color.RGBA
}

// NewColorScale builds an n-bucket scale between two rgba(...) endpoint
// strings. Unparseable endpoints fall back to the package defaults.
func NewColorScale(n int, low, high string) *ColorScale {
	if n < 1 {
		n = 1
	}
	lo, err := ParseRGBA(low)
	if err != nil {
		lo, _ = ParseRGBA(DefaultColorLow)
	}
	hi, err := ParseRGBA(high)
	if err != nil {
		hi, _ = ParseRGBA(DefaultColorHigh)
	}

	cs := &ColorScale{buckets: make([]color.RGBA, n)}
	for i := range cs.buckets {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cs.buckets[i] = color.RGBA{
			R: lerpByte(lo.R, hi.R, t),
			G: lerpByte(lo.G, hi.G, t),
			B: lerpByte(lo.B, hi.B, t),
			A: lerpByte(lo.A, hi.A, t),
		}
	}
	return cs
}

// At returns the bucket color for v, clamping the domain to [0, 1].
func (cs *ColorScale) At(v float64) color.RGBA {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	idx := int(v * float64(len(cs.buckets)))
	if idx >= len(cs.buckets) {
		idx = len(cs.buckets) - 1
	}
	return cs.buckets[idx]
}

// Buckets returns the number of discrete colors in the scale.
func (cs *ColorScale) Buckets() int { return len(cs.buckets) }

// ParseRGBA parses "rgba(r, g, b, a)" and "rgb(r, g, b)" color strings with
// byte channels and a fractional alpha.
func ParseRGBA(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	var r, g, b int
	var a float64

	switch {
	case strings.HasPrefix(s, "rgba("):
		if _, err := fmt.Sscanf(s, "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return color.RGBA{}, fmt.Errorf("parsing %q: %w", s, err)
		}
	case strings.HasPrefix(s, "rgb("):
		if _, err := fmt.Sscanf(s, "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parsing %q: %w", s, err)
		}
		a = 1
	default:
		return color.RGBA{}, fmt.Errorf("parsing %q: unsupported color format", s)
	}

	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 || a < 0 || a > 1 {
		return color.RGBA{}, fmt.Errorf("parsing %q: channel out of range", s)
	}
	return color.RGBA{
		R: uint8(r),
		G: uint8(g),
		B: uint8(b),
		A: uint8(a*255 + 0.5),
	}, nil
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
