package taa

import "golang.org/x/image/math/f32"

// JitterPeriod is the number of distinct sub-pixel offsets the built-in
// sequence produces before repeating.
const JitterPeriod = 8

// JitterSequence produces deterministic sub-pixel offsets for a given
// sample index. Offsets are centered, each component in [-0.5, 0.5],
// before the jitter spread is applied.
//
// Implementations must be pure: the same index always yields the same
// offset, with no internal randomness, so reprojection math is
// reproducible and tests can replay a frame sequence.
//
// The built-in sequence is a Halton (2,3) sequence; hosts can substitute
// their own through WithJitterSequence.
type JitterSequence interface {
	// Offset returns the centered offset for the given sample index.
	Offset(index int) (x, y float32)
}

// haltonSequence is the default low-discrepancy jitter source.
// The raw Halton index is offset by one so the degenerate zero-offset
// sample at index 0 is never emitted.
type haltonSequence struct{}

func (haltonSequence) Offset(index int) (x, y float32) {
	return haltonValue(index+1, 2) - 0.5, haltonValue(index+1, 3) - 0.5
}

// haltonValue computes the radical inverse of index in the given base,
// yielding a value in [0, 1).
func haltonValue(index, base int) float32 {
	var result float32
	fraction := float32(1) / float32(base)
	for index > 0 {
		result += float32(index%base) * fraction
		index /= base
		fraction /= float32(base)
	}
	return result
}

// jitterState tracks the frame-sequential jitter. It advances exactly once
// per frame: the offset generated for frame N jitters that frame's
// projection matrix and de-jitters the same frame's neighborhood weights.
type jitterState struct {
	sampleIndex int
	offset      f32.Vec2 // current offset in pixels, spread applied
}

// advance computes the offset for the current sample index and steps the
// index, wrapping at the sequence period.
func (j *jitterState) advance(seq JitterSequence, spread float32) f32.Vec2 {
	x, y := seq.Offset(j.sampleIndex)
	j.offset = f32.Vec2{x * spread, y * spread}
	j.sampleIndex++
	if j.sampleIndex >= JitterPeriod {
		j.sampleIndex = 0
	}
	return j.offset
}

// reset rewinds the sequence to its first sample and clears the offset.
func (j *jitterState) reset() {
	j.sampleIndex = 0
	j.offset = f32.Vec2{}
}
