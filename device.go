package taa

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// This library resolves on the CPU; DeviceHandle exists for accelerators
// that dispatch the same kernel on the host's GPU. The key principle: the
// library RECEIVES the device from the host, it never creates one, so
// history textures live alongside the host's other render resources.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, keeping the
// library compatible with hosts that already implement that interface.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle with nil implementations, for
// CPU-only operation where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// TextureDescriptor describes the texture an accelerator should allocate
// for a history slot.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the texture dimensions in pixels.
	Width  uint32
	Height uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be sampled.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows compute-shader writes.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows use as a render attachment.
	TextureUsageRenderAttachment
)

// HistoryTextureDescriptor returns the descriptor for a history slot at
// the given pixel dimensions: a high-precision four-channel float format
// sampled bilinearly, readable and writable by copies for the resize
// carry-forward blit.
func HistoryTextureDescriptor(width, height int) TextureDescriptor {
	return TextureDescriptor{
		Label:  "taa history",
		Width:  uint32(width),
		Height: uint32(height),
		Format: gputypes.TextureFormatRGBA16Float,
		Usage: TextureUsageTextureBinding | TextureUsageStorageBinding |
			TextureUsageCopySrc | TextureUsageCopyDst,
	}
}
