package taa

// Option configures a TemporalAntialiasing during creation.
//
// Example:
//
//	// Defaults: Halton jitter, YCoCg clamping, GOMAXPROCS workers.
//	t := taa.New()
//
//	// Custom worker count and RGB clamping.
//	t := taa.New(taa.WithWorkers(4), taa.WithClampSpace(taa.ClampRGB))
type Option func(*config)

// config holds optional configuration for creation.
type config struct {
	params     ResolveParameters
	clampSpace ClampSpace
	sequence   JitterSequence
	workers    int
	device     DeviceHandle
}

func defaultConfig() config {
	return config{
		params:     DefaultResolveParameters(),
		clampSpace: ClampYCoCg,
		sequence:   haltonSequence{},
		workers:    0, // GOMAXPROCS
	}
}

// WithParameters sets the initial resolve parameters.
// Fields are clamped to their documented ranges.
func WithParameters(p ResolveParameters) Option {
	return func(c *config) {
		c.params = p
	}
}

// WithClampSpace selects the color space for the neighborhood box and the
// history clamp. The default is ClampYCoCg.
func WithClampSpace(s ClampSpace) Option {
	return func(c *config) {
		c.clampSpace = s
	}
}

// WithJitterSequence substitutes a custom jitter sequence for the built-in
// Halton (2,3) sequence. A nil sequence keeps the default.
func WithJitterSequence(s JitterSequence) Option {
	return func(c *config) {
		if s != nil {
			c.sequence = s
		}
	}
}

// WithWorkers sets the number of goroutines for the resolve kernel.
// Zero or negative means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithDeviceHandle hands the host's GPU device to a registered
// accelerator. CPU-only hosts never need this.
func WithDeviceHandle(h DeviceHandle) Option {
	return func(c *config) {
		c.device = h
	}
}
