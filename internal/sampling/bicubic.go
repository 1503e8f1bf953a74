package sampling

import (
	"math"

	"golang.org/x/image/math/f32"
)

// BicubicTap identifies which arm of the plus-shaped 5-tap filter a sample
// belongs to. The center tap covers the merged middle 2x2 region; the four
// arm taps cover the remaining edge regions.
type BicubicTap uint8

const (
	// TapCenter is the merged middle tap.
	TapCenter BicubicTap = iota

	// TapTop is the arm above the center tap.
	TapTop

	// TapLeft is the arm left of the center tap.
	TapLeft

	// TapRight is the arm right of the center tap.
	TapRight

	// TapBottom is the arm below the center tap.
	TapBottom
)

// BicubicSamples holds an optimized 5-tap Catmull-Rom bicubic filter for
// one texture coordinate. Sampling the texture bilinearly at each UV,
// weighting by Weight, summing, and scaling once by FinalMultiplier
// reconstructs the filter response.
type BicubicSamples struct {
	// UV holds the normalized coordinate of each tap.
	UV [5]f32.Vec2

	// Weight holds the unnormalized filter weight of each tap.
	Weight [5]float32

	// Tap tags each sample with its position in the plus shape.
	Tap [5]BicubicTap

	// FinalMultiplier is the reciprocal of the summed kept weights.
	// Applying it once after the weighted sum renormalizes the filter
	// without a per-tap division.
	FinalMultiplier float32
}

// CatmullRomSamples computes the 5-tap plus-shaped Catmull-Rom bicubic
// filter for the normalized coordinate (u, v) on a texture of the given
// pixel dimensions.
//
// A full separable Catmull-Rom filter needs 4 taps per axis (16 fetches).
// The two middle taps per axis always share a sign, so each middle pair
// collapses into a single bilinear fetch placed at the weighted centroid,
// and the four corner taps carry small enough weight to drop outright.
// That leaves 5 bilinear fetches arranged in a plus shape. Dropping the
// corners loses a little energy, which FinalMultiplier restores.
func CatmullRomSamples(u, v float32, width, height int) BicubicSamples {
	w := float32(width)
	h := float32(height)

	// Position in texel space, then the center of the nearest texel whose
	// center lies at or below the sample.
	sx := u * w
	sy := v * h
	cx := float32(math.Floor(float64(sx-0.5))) + 0.5
	cy := float32(math.Floor(float64(sy-0.5))) + 0.5
	fx := sx - cx
	fy := sy - cy

	// Standard Catmull-Rom basis evaluated at the fractional offset.
	wx0, wx1, wx2, wx3 := catmullRomBasis(fx)
	wy0, wy1, wy2, wy3 := catmullRomBasis(fy)

	// Merge the two middle taps per axis into one bilinear fetch.
	wx12 := wx1 + wx2
	wy12 := wy1 + wy2
	ox := wx2 / wx12
	oy := wy2 / wy12

	x0 := (cx - 1) / w
	x12 := (cx + ox) / w
	x3 := (cx + 2) / w
	y0 := (cy - 1) / h
	y12 := (cy + oy) / h
	y3 := (cy + 2) / h

	s := BicubicSamples{
		UV: [5]f32.Vec2{
			{x12, y12},
			{x12, y0},
			{x0, y12},
			{x3, y12},
			{x12, y3},
		},
		Weight: [5]float32{
			wx12 * wy12,
			wx12 * wy0,
			wx0 * wy12,
			wx3 * wy12,
			wx12 * wy3,
		},
		Tap: [5]BicubicTap{TapCenter, TapTop, TapLeft, TapRight, TapBottom},
	}

	sum := s.Weight[0] + s.Weight[1] + s.Weight[2] + s.Weight[3] + s.Weight[4]
	s.FinalMultiplier = 1 / sum
	return s
}

// catmullRomBasis returns the four Catmull-Rom tap weights for a sample at
// fractional offset f in [0,1) from the second tap. The weights sum to 1.
func catmullRomBasis(f float32) (w0, w1, w2, w3 float32) {
	w0 = f * (-0.5 + f*(1.0-0.5*f))
	w1 = 1.0 + f*f*(-2.5+1.5*f)
	w2 = f * (0.5 + f*(2.0-1.5*f))
	w3 = f * f * (-0.5 + 0.5*f)
	return w0, w1, w2, w3
}

// CatmullRomWeight evaluates the Catmull-Rom reconstruction kernel at
// distance t from the sample center. This is the Mitchell-Netravali kernel
// with B=0, C=0.5; support is |t| < 2.
func CatmullRomWeight(t float32) float32 {
	a := t
	if a < 0 {
		a = -a
	}
	switch {
	case a < 1:
		return 1.5*a*a*a - 2.5*a*a + 1.0
	case a < 2:
		return -0.5*a*a*a + 2.5*a*a - 4.0*a + 2.0
	default:
		return 0
	}
}
