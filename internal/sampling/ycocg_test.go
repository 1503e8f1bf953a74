package sampling

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func approx4(a, b f32.Vec4, eps float64) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > eps {
			return false
		}
	}
	return true
}

func TestRGBToYCoCg_Primaries(t *testing.T) {
	tests := []struct {
		name   string
		in     f32.Vec4
		expect f32.Vec4
	}{
		{"black", f32.Vec4{0, 0, 0, 1}, f32.Vec4{0, 0, 0, 1}},
		{"red", f32.Vec4{1, 0, 0, 1}, f32.Vec4{1, 2, -1, 1}},
		{"green", f32.Vec4{0, 1, 0, 1}, f32.Vec4{2, 0, 2, 1}},
		{"blue", f32.Vec4{0, 0, 1, 1}, f32.Vec4{1, -2, -1, 1}},
		{"white", f32.Vec4{1, 1, 1, 1}, f32.Vec4{4, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RGBToYCoCg(tt.in)
			if !approx4(got, tt.expect, 1e-6) {
				t.Errorf("RGBToYCoCg(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestYCoCg_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    f32.Vec4
	}{
		{"black", f32.Vec4{0, 0, 0, 0}},
		{"white", f32.Vec4{1, 1, 1, 1}},
		{"red", f32.Vec4{1, 0, 0, 1}},
		{"green", f32.Vec4{0, 1, 0, 1}},
		{"blue", f32.Vec4{0, 0, 1, 1}},
		{"gray", f32.Vec4{0.5, 0.5, 0.5, 0.5}},
		{"mixed", f32.Vec4{0.25, 0.75, 0.125, 0.875}},
		{"hdr", f32.Vec4{3.5, 0.1, 7.25, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := YCoCgToRGB(RGBToYCoCg(tt.c))
			if !approx4(got, tt.c, 1e-6) {
				t.Errorf("round trip of %v = %v", tt.c, got)
			}
		})
	}
}

func TestYCoCg_AlphaPassthrough(t *testing.T) {
	c := f32.Vec4{0.2, 0.4, 0.6, 0.35}
	if got := RGBToYCoCg(c); got[3] != c[3] {
		t.Errorf("forward alpha = %v, want %v", got[3], c[3])
	}
	if got := YCoCgToRGB(c); got[3] != c[3] {
		t.Errorf("inverse alpha = %v, want %v", got[3], c[3])
	}
}
