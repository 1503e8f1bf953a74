package taa

import (
	"golang.org/x/image/math/f32"

	"github.com/racarone/PostProcessing/internal/sampling"
)

// neighborhood is the per-pixel analysis of the current frame: the
// per-channel color bounding box of the 3x3 region (in the configured
// clamp space) and a reconstruction-filtered current color.
type neighborhood struct {
	boxMin   f32.Vec4 // clamp-space minimum across the gather
	boxMax   f32.Vec4 // clamp-space maximum across the gather
	filtered f32.Vec4 // reconstructed current color, RGB space
	average  f32.Vec4 // plus-shaped 5-tap mean, RGB space, for sharpening
}

// gatherNeighborhood reads the 3x3 region around (x, y) once and derives
// the color box and the filtered color from the same taps.
//
// The filtered color weights each tap with a separable Catmull-Rom falloff
// evaluated at the tap's distance from the jittered sample center, then
// normalizes by the summed weights. This models the true jittered pixel
// footprint, so the resolved frame stays sharper than a box-filtered
// average would. Border taps clamp to the edge.
func gatherNeighborhood(src *Buffer, x, y int, jitter f32.Vec2, space ClampSpace) neighborhood {
	var n neighborhood
	var sum, avg f32.Vec4
	var weightSum float32

	for oy := -1; oy <= 1; oy++ {
		wy := sampling.CatmullRomWeight(float32(oy) - jitter[1])
		for ox := -1; ox <= 1; ox++ {
			c := src.At(x+ox, y+oy)

			boxed := c
			if space == ClampYCoCg {
				boxed = sampling.RGBToYCoCg(c)
			}
			if ox == -1 && oy == -1 {
				n.boxMin = boxed
				n.boxMax = boxed
			} else {
				n.boxMin = sampling.Min(n.boxMin, boxed)
				n.boxMax = sampling.Max(n.boxMax, boxed)
			}

			w := sampling.CatmullRomWeight(float32(ox)-jitter[0]) * wy
			sum = sampling.Add(sum, sampling.Scale(c, w))
			weightSum += w
			// The sharpening reference excludes the corners: the
			// plus-shaped mean blurs less, so the mask lifts real detail
			// instead of amplifying diagonal checker noise.
			if ox == 0 || oy == 0 {
				avg = sampling.Add(avg, c)
			}
		}
	}

	if weightSum > 1e-6 || weightSum < -1e-6 {
		n.filtered = sampling.Scale(sum, 1/weightSum)
	} else {
		// Degenerate weights cannot happen for |jitter| <= 0.5, but a
		// custom sequence may stray; fall back to the center tap.
		n.filtered = src.At(x, y)
	}
	n.filtered = sampling.ClampNonNegative(n.filtered)
	n.average = sampling.Scale(avg, 1.0/5.0)
	return n
}

// sharpen applies an unsharp mask against the neighborhood mean and clamps
// the result so no component goes negative.
func sharpen(filtered, average f32.Vec4, sharpness float32) f32.Vec4 {
	if sharpness <= 0 {
		return filtered
	}
	detail := sampling.Sub(filtered, average)
	boosted := sampling.Add(filtered, sampling.Scale(detail, sharpness*sharpenScale))
	return sampling.ClampNonNegative(boosted)
}

// sharpenScale maps the user-facing sharpness range onto a perceptually
// useful gain; e keeps parity with the familiar tuning of the parameter.
const sharpenScale = 2.718282
