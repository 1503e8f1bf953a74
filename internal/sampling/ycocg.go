package sampling

import "golang.org/x/image/math/f32"

// RGBToYCoCg converts a color to the YCoCg luma/chroma space.
//
//	Y  =  R + 2G + B
//	Co = 2R      - 2B
//	Cg = -R + 2G - B
//
// The transform is intentionally unnormalized (no division) so the forward
// and inverse pair round-trips exactly in floating point. Neighborhood
// clamping in a luma-decorrelated space reduces color bleed compared with
// clamping raw RGB. Alpha passes through untouched.
func RGBToYCoCg(c f32.Vec4) f32.Vec4 {
	return f32.Vec4{
		c[0] + 2*c[1] + c[2],
		2*c[0] - 2*c[2],
		-c[0] + 2*c[1] - c[2],
		c[3],
	}
}

// YCoCgToRGB is the inverse of RGBToYCoCg.
func YCoCgToRGB(c f32.Vec4) f32.Vec4 {
	y := c[0] * 0.25
	co := c[1] * 0.25
	cg := c[2] * 0.25
	return f32.Vec4{
		y + co - cg,
		y + cg,
		y - co - cg,
		c[3],
	}
}
