package taa

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/math/f32"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("taa: invalid buffer dimensions")

	// ErrDimensionMismatch is returned when two buffers in the same resolve
	// call have different sizes.
	ErrDimensionMismatch = errors.New("taa: buffer dimensions do not match")
)

// Buffer is a viewport-sized pixel surface with four float32 channels per
// pixel (RGBA layout, row-major). It is the high-precision format shared by
// the current frame, the motion-vector input (displacement in R and G), the
// history buffers, and the resolved output.
//
// Addressing clamps to the edge: reads outside the surface return the
// nearest border pixel, never wrap around.
//
// Thread safety: concurrent reads are safe; writes require external
// synchronization. The resolve kernel only ever writes disjoint rows.
type Buffer struct {
	width  int
	height int
	pix    []float32
}

// NewBuffer allocates a zeroed buffer with the given pixel dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pix returns the raw channel data, 4 float32 per pixel in RGBA order.
func (b *Buffer) Pix() []float32 { return b.pix }

// At returns the pixel at (x, y), clamping coordinates to the edge.
func (b *Buffer) At(x, y int) f32.Vec4 {
	x = clampInt(x, 0, b.width-1)
	y = clampInt(y, 0, b.height-1)
	i := (y*b.width + x) * 4
	return f32.Vec4{b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]}
}

// Set writes the pixel at (x, y). Out-of-bounds writes are dropped.
func (b *Buffer) Set(x, y int, c f32.Vec4) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i] = c[0]
	b.pix[i+1] = c[1]
	b.pix[i+2] = c[2]
	b.pix[i+3] = c[3]
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c f32.Vec4) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i] = c[0]
		b.pix[i+1] = c[1]
		b.pix[i+2] = c[2]
		b.pix[i+3] = c[3]
	}
}

// SampleBilinear samples the buffer at the normalized coordinate (u, v)
// with bilinear filtering. Coordinates outside [0,1] clamp to the edge.
func (b *Buffer) SampleBilinear(u, v float32) f32.Vec4 {
	fx := u*float32(b.width) - 0.5
	fy := v*float32(b.height) - 0.5

	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := b.At(x0, y0)
	c10 := b.At(x0+1, y0)
	c01 := b.At(x0, y0+1)
	c11 := b.At(x0+1, y0+1)

	var out f32.Vec4
	for i := range out {
		top := c00[i] + (c10[i]-c00[i])*tx
		bot := c01[i] + (c11[i]-c01[i])*tx
		out[i] = top + (bot-top)*ty
	}
	return out
}

// CopyFrom copies src into b. The buffers must have identical dimensions.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if src.width != b.width || src.height != b.height {
		return ErrDimensionMismatch
	}
	copy(b.pix, src.pix)
	return nil
}

// BlitScaled stretch-copies src into b with bilinear resampling. Used by
// the history manager to carry accumulated history across a resize.
func (b *Buffer) BlitScaled(src *Buffer) {
	for y := 0; y < b.height; y++ {
		v := (float32(y) + 0.5) / float32(b.height)
		for x := 0; x < b.width; x++ {
			u := (float32(x) + 0.5) / float32(b.width)
			b.Set(x, y, src.SampleBilinear(u, v))
		}
	}
}

// ToImage converts the buffer to a 16-bit image, clamping channels to [0,1].
func (b *Buffer) ToImage() *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.At(x, y)
			img.SetRGBA64(x, y, color.RGBA64{
				R: uint16(clamp01f(c[0]) * 65535),
				G: uint16(clamp01f(c[1]) * 65535),
				B: uint16(clamp01f(c[2]) * 65535),
				A: uint16(clamp01f(c[3]) * 65535),
			})
		}
	}
	return img
}

// FromImage creates a buffer from an image, mapping channels to [0,1].
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := NewBuffer(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r, g, bl, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			b.Set(x, y, f32.Vec4{
				float32(r) / 65535,
				float32(g) / 65535,
				float32(bl) / 65535,
				float32(a) / 65535,
			})
		}
	}
	return b, nil
}

// Bounds returns the pixel bounds of the buffer.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01f(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
