package sampling

import "golang.org/x/image/math/f32"

// clipEpsilon is the minimum ray-direction magnitude for HistoryClip.
// Axes with a smaller component are near-parallel to their slab and are
// handled without dividing by the true direction.
const clipEpsilon = 1.0 / 65536.0

// HistoryClip measures how far a history sample sits outside the current
// neighborhood color box.
//
// The segment from filtered toward history is treated as a ray and
// intersected with the box [boxMin, boxMax] using the slab method on the
// first three channels. The return value is the smallest positive distance,
// in units of the segment length, at which the ray leaves the box.
//
// Callers clamp the result to [0,1] and interpolate from filtered toward
// history by that amount: a history sample already inside the box yields a
// distance >= 1 and survives unclamped, while a sample outside the box is
// pulled back to the box surface along the ray. This is the anti-ghosting
// clamp of the temporal resolve.
func HistoryClip(history, filtered, boxMin, boxMax f32.Vec4) float32 {
	t := float32(clipMaxDistance)
	for i := 0; i < 3; i++ {
		d := history[i] - filtered[i]
		if d < clipEpsilon && d > -clipEpsilon {
			// Near-parallel to this slab. If the origin already lies
			// inside it the axis never constrains the ray; this is the
			// normal case for a degenerate box axis, such as the chroma
			// channels of a grayscale neighborhood in YCoCg. Only an
			// origin outside the slab keeps the epsilon division, which
			// then rejects the axis with a negative exit distance.
			if filtered[i] >= boxMin[i]-clipEpsilon && filtered[i] <= boxMax[i]+clipEpsilon {
				continue
			}
			if d < 0 {
				d = -clipEpsilon
			} else {
				d = clipEpsilon
			}
		}
		inv := 1 / d
		t0 := (boxMin[i] - filtered[i]) * inv
		t1 := (boxMax[i] - filtered[i]) * inv
		if t1 < t0 {
			t0, t1 = t1, t0
		}
		// t1 is the exit distance along this axis.
		if t1 < t {
			t = t1
		}
	}
	return t
}

// clipMaxDistance bounds the clip distance when every axis is degenerate.
const clipMaxDistance = 65536.0
