package taa

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFallbackToCPU indicates the accelerator cannot handle this frame.
// The caller transparently falls back to the CPU resolve kernel.
var ErrFallbackToCPU = errors.New("taa: falling back to CPU resolve")

// AcceleratedOp describes operation types for capability checking.
type AcceleratedOp uint32

const (
	// AccelResolve represents the full temporal resolve of one frame.
	AccelResolve AcceleratedOp = 1 << iota

	// AccelHistoryBlit represents the resize carry-forward blit.
	AccelHistoryBlit
)

// ResolveTarget gives an accelerator everything it needs to produce one
// frame: the host inputs, both history slots, the destination, and the
// frame's resolve state. The accelerator must write the resolved frame to
// both Output and HistoryOut, exactly as the CPU kernel does; History must
// remain untouched.
type ResolveTarget struct {
	Source  *Buffer
	Motion  *Buffer
	Depth   *Buffer
	History *Buffer

	HistoryOut *Buffer
	Output     *Buffer

	// Jitter is the current sub-pixel offset in pixels.
	Jitter [2]float32

	// Seed is true when history is stale and the frame reseeds.
	Seed bool

	Params     ResolveParameters
	ClampSpace ClampSpace

	// Descriptor describes the texture a GPU accelerator should use for
	// history slots at this frame's dimensions.
	Descriptor TextureDescriptor
}

// Accelerator is an optional resolve acceleration provider.
//
// When registered via RegisterAccelerator, Resolve tries the accelerator
// first for supported operations. If it returns ErrFallbackToCPU or any
// other error, the frame transparently falls back to the CPU kernel.
//
// Implementations typically live in GPU backend packages and register
// themselves from an init function via blank import.
type Accelerator interface {
	// Name returns the accelerator name (e.g., "wgpu", "vulkan").
	Name() string

	// Init initializes accelerator resources. Called once at registration.
	Init() error

	// Close releases accelerator resources.
	Close()

	// CanAccelerate reports whether the accelerator supports the given
	// operation. A fast check used to skip the accelerator entirely.
	CanAccelerate(op AcceleratedOp) bool

	// Resolve produces one frame into the target.
	// Returns ErrFallbackToCPU if this frame cannot be accelerated.
	Resolve(target ResolveTarget) error
}

// DeviceProviderAware is an optional interface for accelerators that can
// share GPU resources with the host. When SetDeviceProvider is called, the
// accelerator reuses the provided device instead of creating its own.
type DeviceProviderAware interface {
	SetDeviceProvider(provider DeviceHandle) error
}

var (
	accelMu sync.RWMutex
	accel   Accelerator
)

// RegisterAccelerator registers an accelerator for optional GPU resolve.
//
// Only one accelerator can be registered; subsequent calls replace the
// previous one (closing it first). The accelerator's Init method runs
// during registration; if it fails, the accelerator is not registered and
// the error is returned.
func RegisterAccelerator(a Accelerator) error {
	if a == nil {
		return errors.New("taa: accelerator must not be nil")
	}
	if err := a.Init(); err != nil {
		return fmt.Errorf("taa: accelerator init: %w", err)
	}

	accelMu.Lock()
	prev := accel
	accel = a
	accelMu.Unlock()

	if prev != nil && prev != a {
		prev.Close()
	}

	propagateLogger(a, Logger())
	Logger().Info("taa: accelerator registered", "name", a.Name())
	return nil
}

// UnregisterAccelerator removes and closes the current accelerator, if any.
func UnregisterAccelerator() {
	accelMu.Lock()
	prev := accel
	accel = nil
	accelMu.Unlock()

	if prev != nil {
		prev.Close()
	}
}

// ActiveAccelerator returns the registered accelerator, or nil.
func ActiveAccelerator() Accelerator {
	accelMu.RLock()
	defer accelMu.RUnlock()
	return accel
}
