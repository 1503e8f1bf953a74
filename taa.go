package taa

import (
	"errors"
	"fmt"

	"github.com/racarone/PostProcessing/internal/parallel"
)

// Common errors for the resolve entry points.
var (
	// ErrMissingColor is returned when Resolve is called without a
	// current color buffer.
	ErrMissingColor = errors.New("taa: resolve requires a color buffer")

	// ErrMissingOutput is returned when Resolve is called without a
	// destination buffer.
	ErrMissingOutput = errors.New("taa: resolve requires an output buffer")

	// ErrInvalidEye is returned for an eye outside the stereo pair.
	ErrInvalidEye = errors.New("taa: invalid eye index")
)

// TemporalAntialiasing accumulates a history of resolved frames and blends
// each new frame against a motion-compensated, neighborhood-clamped
// history sample.
//
// The host drives it per frame:
//
//	x, y := t.GenerateJitter()           // once per frame
//	// ... render the frame with the projection matrix offset by (x, y) ...
//	err := t.Resolve(taa.ResolveInput{Color: cur, Motion: mv}, dst)
//
// Thread safety: a TemporalAntialiasing instance belongs to one frame
// thread. The parallel work inside Resolve is managed internally.
type TemporalAntialiasing struct {
	params     ResolveParameters
	clampSpace ClampSpace
	sequence   JitterSequence
	device     DeviceHandle

	jitter  jitterState
	history historyManager

	pool    *parallel.Pool
	workers int
}

// New creates a temporal antialiasing stage with default parameters,
// customizable through functional options.
func New(opts ...Option) *TemporalAntialiasing {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &TemporalAntialiasing{
		params:     cfg.params.clamped(),
		clampSpace: cfg.clampSpace,
		sequence:   cfg.sequence,
		device:     cfg.device,
		workers:    cfg.workers,
	}

	if t.device != nil {
		if a := ActiveAccelerator(); a != nil {
			if aware, ok := a.(DeviceProviderAware); ok {
				if err := aware.SetDeviceProvider(t.device); err != nil {
					Logger().Warn("taa: accelerator rejected device provider", "error", err)
				}
			}
		}
	}
	return t
}

// SetParameters replaces the resolve parameters, clamping every field to
// its documented range.
func (t *TemporalAntialiasing) SetParameters(p ResolveParameters) {
	t.params = p.clamped()
}

// Parameters returns the active resolve parameters.
func (t *TemporalAntialiasing) Parameters() ResolveParameters {
	return t.params
}

// GenerateJitter advances the jitter sequence and returns the new
// sub-pixel offset in pixels. Call it exactly once per frame, before
// building the frame's projection matrix: the same offset de-jitters the
// neighborhood weights when that frame is resolved, for however many eyes
// the frame renders.
func (t *TemporalAntialiasing) GenerateJitter() (x, y float32) {
	o := t.jitter.advance(t.sequence, t.params.JitterSpread)
	return o[0], o[1]
}

// Jitter returns the current frame's sub-pixel offset in pixels without
// advancing the sequence.
func (t *TemporalAntialiasing) Jitter() (x, y float32) {
	return t.jitter.offset[0], t.jitter.offset[1]
}

// ProjectionOffset converts the current jitter into the clip-space
// translation the host adds to its projection matrix for a viewport of the
// given pixel dimensions.
func (t *TemporalAntialiasing) ProjectionOffset(width, height int) (x, y float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return t.jitter.offset[0] * 2 / float32(width),
		t.jitter.offset[1] * 2 / float32(height)
}

// Resolve performs the temporal resolve for one frame of one eye, writing
// the result to dst. On the first frame after creation, a reset, or a
// release, the output is the filtered current frame and history is seeded
// from it; afterwards history accumulates frame over frame.
//
// A failed frame (allocation failure, dimension mismatch) commits nothing:
// history keeps its previous state and the next frame can retry.
func (t *TemporalAntialiasing) Resolve(in ResolveInput, dst *Buffer) error {
	if in.Color == nil {
		return ErrMissingColor
	}
	if dst == nil {
		return ErrMissingOutput
	}
	if in.Eye < 0 || in.Eye >= numEyes {
		return fmt.Errorf("%w: %d", ErrInvalidEye, in.Eye)
	}

	width := in.Color.Width()
	height := in.Color.Height()
	if dst.Width() != width || dst.Height() != height {
		return fmt.Errorf("%w: color %dx%d, output %dx%d",
			ErrDimensionMismatch, width, height, dst.Width(), dst.Height())
	}
	if in.Motion != nil && (in.Motion.Width() != width || in.Motion.Height() != height) {
		return fmt.Errorf("%w: color %dx%d, motion %dx%d",
			ErrDimensionMismatch, width, height, in.Motion.Width(), in.Motion.Height())
	}

	prep, err := t.history.prepare(in.Eye, width, height, in.Color, Logger())
	if err != nil {
		return fmt.Errorf("taa: preparing history: %w", err)
	}

	if !t.resolveAccelerated(in, dst, prep) {
		if t.pool == nil {
			t.pool = parallel.NewPool(t.workers)
		}
		t.resolveFrame(in, dst, prep)
	}

	// The frame is complete; only now does the ping-pong swap commit.
	t.history.commit(in.Eye)
	return nil
}

// resolveAccelerated tries a registered accelerator and reports whether it
// produced the frame. Any error falls back to the CPU kernel.
func (t *TemporalAntialiasing) resolveAccelerated(in ResolveInput, dst *Buffer, prep framePrep) bool {
	a := ActiveAccelerator()
	if a == nil || !a.CanAccelerate(AccelResolve) {
		return false
	}

	target := ResolveTarget{
		Source:     in.Color,
		Motion:     in.Motion,
		Depth:      in.Depth,
		History:    prep.read,
		HistoryOut: prep.write,
		Output:     dst,
		Jitter:     [2]float32{t.jitter.offset[0], t.jitter.offset[1]},
		Seed:       prep.seed,
		Params:     t.params,
		ClampSpace: t.clampSpace,
		Descriptor: HistoryTextureDescriptor(in.Color.Width(), in.Color.Height()),
	}

	err := a.Resolve(target)
	if err == nil {
		return true
	}
	if !errors.Is(err, ErrFallbackToCPU) {
		Logger().Warn("taa: accelerated resolve failed, using CPU", "accelerator", a.Name(), "error", err)
	}
	return false
}

// ResetHistory marks all history stale, for camera cuts and scene loads.
// The next resolve of each eye reseeds from its current frame instead of
// blending against unrelated history.
func (t *TemporalAntialiasing) ResetHistory() {
	t.history.reset()
	Logger().Debug("taa: history reset requested")
}

// Release frees all history buffers and stops the internal worker pool.
// The instance remains usable: the next Resolve starts over as if freshly
// created.
func (t *TemporalAntialiasing) Release() {
	t.history.release()
	t.jitter.reset()
	if t.pool != nil {
		t.pool.Close()
		t.pool = nil
	}
	Logger().Debug("taa: released")
}
