// Package sampling provides the pure filtering math used by the temporal
// resolve kernel: component-wise reductions, the YCoCg color transform,
// the ray-box history clamp, and Catmull-Rom resampling weights.
//
// All functions are stateless and safe for concurrent use; per-call scratch
// lives on the stack so the per-pixel kernel stays reentrant.
package sampling

import "golang.org/x/image/math/f32"

// Add returns the component-wise sum of two vectors.
func Add(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns the component-wise difference of two vectors.
func Sub(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Scale returns the vector with every component multiplied by s.
func Scale(v f32.Vec4, s float32) f32.Vec4 {
	return f32.Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Lerp interpolates component-wise between a and b.
// t=0 returns a, t=1 returns b.
func Lerp(a, b f32.Vec4, t float32) f32.Vec4 {
	return f32.Vec4{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// Min returns the component-wise minimum of two vectors.
func Min(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

// Max returns the component-wise maximum of two vectors.
func Max(a, b f32.Vec4) f32.Vec4 {
	return f32.Vec4{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

// Min3 returns the component-wise minimum of three vectors.
// Used to build the neighborhood color box without looping.
func Min3(a, b, c f32.Vec4) f32.Vec4 {
	return Min(Min(a, b), c)
}

// Max3 returns the component-wise maximum of three vectors.
func Max3(a, b, c f32.Vec4) f32.Vec4 {
	return Max(Max(a, b), c)
}

// ClampNonNegative zeroes any negative component.
// Sharpening and Catmull-Rom lobes can undershoot; resolved colors must not.
func ClampNonNegative(v f32.Vec4) f32.Vec4 {
	return f32.Vec4{max(v[0], 0), max(v[1], 0), max(v[2], 0), max(v[3], 0)}
}

// Lerp32 interpolates between two scalars.
func Lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Clamp01 clamps a scalar to the unit interval.
func Clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
