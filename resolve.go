package taa

import (
	"math"

	"golang.org/x/image/math/f32"

	"github.com/racarone/PostProcessing/internal/sampling"
)

// ResolveInput bundles the host-supplied buffers for one frame of one eye.
type ResolveInput struct {
	// Color is the current frame's color buffer. Required.
	Color *Buffer

	// Motion holds per-pixel UV-space displacement from the previous
	// frame to the current one in the R and G channels. Optional; a nil
	// Motion resolves as if the scene were static.
	Motion *Buffer

	// Depth is the current depth buffer. The core resolve does not read
	// it; it is passed through to a registered accelerator for hosts
	// whose kernels add depth-based rejection.
	Depth *Buffer

	// Eye selects the history pair. Mono rendering leaves it EyeLeft.
	Eye Eye
}

// resolveFrame runs the CPU resolve kernel for one frame: for every output
// pixel it analyzes the current neighborhood, reprojects and samples
// history, clamps the history sample into the neighborhood box, and blends
// with a motion-adaptive weight. The resolved color lands in both dst and
// the history write slot.
//
// All inputs are read-only and every pixel writes a disjoint location, so
// the kernel parallelizes freely over row bands. All weight scratch lives
// on the stack; there is no shared mutable state inside the parallel
// region.
func (t *TemporalAntialiasing) resolveFrame(in ResolveInput, dst *Buffer, prep framePrep) {
	width := in.Color.Width()
	height := in.Color.Height()
	params := t.params
	jitter := t.jitter.offset
	space := t.clampSpace

	invW := 1 / float32(width)
	invH := 1 / float32(height)

	t.pool.ForEachBand(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				n := gatherNeighborhood(in.Color, x, y, jitter, space)
				filtered := sharpen(n.filtered, n.average, params.Sharpness)

				if prep.seed {
					dst.Set(x, y, filtered)
					prep.write.Set(x, y, filtered)
					continue
				}

				var motion f32.Vec2
				if in.Motion != nil {
					m := in.Motion.At(x, y)
					motion = f32.Vec2{m[0], m[1]}
				}

				u := (float32(x) + 0.5) * invW
				v := (float32(y) + 0.5) * invH
				history := sampleHistory(prep.read, u-motion[0], v-motion[1])

				out := blendHistory(filtered, history, n, motion, params, space)
				dst.Set(x, y, out)
				prep.write.Set(x, y, out)
			}
		}
	})
}

// blendHistory clamps the reprojected history sample into the neighborhood
// color box and blends it with the filtered current color using a
// motion-adaptive weight.
func blendHistory(filtered, history f32.Vec4, n neighborhood, motion f32.Vec2, params ResolveParameters, space ClampSpace) f32.Vec4 {
	filteredBox := filtered
	historyBox := history
	if space == ClampYCoCg {
		filteredBox = sampling.RGBToYCoCg(filtered)
		historyBox = sampling.RGBToYCoCg(history)
	}

	dist := sampling.HistoryClip(historyBox, filteredBox, n.boxMin, n.boxMax)
	clamped := sampling.Lerp(filteredBox, historyBox, sampling.Clamp01(dist))
	if space == ClampYCoCg {
		clamped = sampling.YCoCgToRGB(clamped)
	}

	// Fast motion makes reprojected history unreliable; slide the weight
	// from the stationary bound toward the motion bound.
	motionLength := float32(math.Sqrt(float64(motion[0]*motion[0] + motion[1]*motion[1])))
	weight := sampling.Lerp32(
		params.StationaryBlending,
		params.MotionBlending,
		sampling.Clamp01(motionLength*params.MotionAmplification),
	)

	return sampling.ClampNonNegative(sampling.Lerp(filtered, clamped, weight))
}

// sampleHistory reads the history buffer at a reprojected coordinate with
// the 5-tap Catmull-Rom filter. Plain bilinear history sampling blurs and
// re-aliases under sub-pixel jitter; the bicubic reconstruction keeps the
// accumulated image stable. Out-of-bounds coordinates clamp to the edge so
// reprojection at frame borders produces colors instead of holes.
func sampleHistory(history *Buffer, u, v float32) f32.Vec4 {
	s := sampling.CatmullRomSamples(u, v, history.Width(), history.Height())

	var acc f32.Vec4
	for i := range s.UV {
		c := history.SampleBilinear(s.UV[i][0], s.UV[i][1])
		acc = sampling.Add(acc, sampling.Scale(c, s.Weight[i]))
	}
	// The negative Catmull-Rom lobes can undershoot; clamp after the
	// single renormalization.
	return sampling.ClampNonNegative(sampling.Scale(acc, s.FinalMultiplier))
}
