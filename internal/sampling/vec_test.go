package sampling

import (
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMin3Max3(t *testing.T) {
	a := f32.Vec4{1, 5, 3, 0}
	b := f32.Vec4{2, 4, 9, 1}
	c := f32.Vec4{0, 6, 6, 0.5}

	wantMin := f32.Vec4{0, 4, 3, 0}
	wantMax := f32.Vec4{2, 6, 9, 1}

	if got := Min3(a, b, c); got != wantMin {
		t.Errorf("Min3 = %v, want %v", got, wantMin)
	}
	if got := Max3(a, b, c); got != wantMax {
		t.Errorf("Max3 = %v, want %v", got, wantMax)
	}
}

func TestLerp(t *testing.T) {
	a := f32.Vec4{0, 0, 0, 0}
	b := f32.Vec4{1, 2, 3, 4}

	if got := Lerp(a, b, 0); got != a {
		t.Errorf("Lerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Lerp(a, b, 1); got != b {
		t.Errorf("Lerp(a, b, 1) = %v, want %v", got, b)
	}
	want := f32.Vec4{0.5, 1, 1.5, 2}
	if got := Lerp(a, b, 0.5); !approx4(got, want, 1e-6) {
		t.Errorf("Lerp(a, b, 0.5) = %v, want %v", got, want)
	}
}

func TestClampNonNegative(t *testing.T) {
	in := f32.Vec4{-0.25, 0.5, -1, 2}
	want := f32.Vec4{0, 0.5, 0, 2}
	if got := ClampNonNegative(in); got != want {
		t.Errorf("ClampNonNegative(%v) = %v, want %v", in, got, want)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"below", -3, 0},
		{"zero", 0, 0},
		{"inside", 0.25, 0.25},
		{"one", 1, 1},
		{"above", 42, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.in); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
