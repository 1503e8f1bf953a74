package taa

// Parameter ranges enforced at the configuration boundary. Out-of-range
// values are clamped, never rejected.
const (
	// MinJitterSpread and MaxJitterSpread bound the sub-pixel jitter radius.
	MinJitterSpread = 0.1
	MaxJitterSpread = 1.0

	// MaxSharpness bounds the post-resolve sharpening strength.
	MaxSharpness = 3.0

	// MaxBlending bounds both history-weight parameters. A weight of 1
	// would never refresh history, so the range stops just short.
	MaxBlending = 0.99
)

// Default parameter values.
const (
	DefaultJitterSpread        = 0.75
	DefaultSharpness           = 0.25
	DefaultStationaryBlending  = 0.95
	DefaultMotionBlending      = 0.85
	DefaultMotionAmplification = 6000
)

// ResolveParameters configures the temporal resolve.
type ResolveParameters struct {
	// JitterSpread scales the sub-pixel jitter radius, in [0.1, 1].
	// Smaller values reduce flicker at the cost of less effective
	// antialiasing.
	JitterSpread float32

	// Sharpness is the strength of the post-resolve unsharp mask, in
	// [0, 3]. Zero disables sharpening.
	Sharpness float32

	// StationaryBlending is the history weight for static pixels, in
	// [0, 0.99]. Higher values keep more history and converge more
	// smoothly.
	StationaryBlending float32

	// MotionBlending is the history weight at high motion, in [0, 0.99].
	// It should be below StationaryBlending: history is less reliable
	// the faster a pixel moves.
	MotionBlending float32

	// MotionAmplification scales UV-space motion magnitude into the
	// interpolant between the two blending weights.
	MotionAmplification float32
}

// DefaultResolveParameters returns the recommended parameter set.
func DefaultResolveParameters() ResolveParameters {
	return ResolveParameters{
		JitterSpread:        DefaultJitterSpread,
		Sharpness:           DefaultSharpness,
		StationaryBlending:  DefaultStationaryBlending,
		MotionBlending:      DefaultMotionBlending,
		MotionAmplification: DefaultMotionAmplification,
	}
}

// clamped returns a copy with every field forced into its valid range.
func (p ResolveParameters) clamped() ResolveParameters {
	p.JitterSpread = clampRange(p.JitterSpread, MinJitterSpread, MaxJitterSpread)
	p.Sharpness = clampRange(p.Sharpness, 0, MaxSharpness)
	p.StationaryBlending = clampRange(p.StationaryBlending, 0, MaxBlending)
	p.MotionBlending = clampRange(p.MotionBlending, 0, MaxBlending)
	p.MotionAmplification = max(p.MotionAmplification, 0)
	return p
}

func clampRange(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpace selects the color space the neighborhood box and history
// clamp operate in.
type ClampSpace uint8

const (
	// ClampYCoCg clamps in the luma-decorrelated YCoCg space. This is
	// the default: it reduces color bleed from the box clamp.
	ClampYCoCg ClampSpace = iota

	// ClampRGB clamps in raw RGB.
	ClampRGB
)

// String returns a string representation of the clamp space.
func (s ClampSpace) String() string {
	switch s {
	case ClampYCoCg:
		return "YCoCg"
	case ClampRGB:
		return "RGB"
	default:
		return "Unknown"
	}
}
