// Package pixel provides the RGBA pixel buffer shared by the resampler,
// the codec and the grid preview renderer.
//
// A Buffer stores non-premultiplied 8-bit RGBA samples in row-major order,
// four bytes per pixel, with no padding between rows. Channel values are
// carried through resizing unchanged, so the buffer never premultiplies or
// converts color.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidSize indicates a buffer whose dimensions or sample slice are
// inconsistent.
var ErrInvalidSize = errors.New("invalid pixel buffer size")

// Buffer is a row-major RGBA pixel buffer.
type Buffer struct {
	Width  int
	Height int

	// Pix holds Width*Height*4 samples: R, G, B, A for each pixel.
	Pix []uint8
}

// New allocates a zeroed buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}, nil
}

// Validate checks that the dimensions are positive and that Pix has
// exactly Width*Height*4 samples.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidSize)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("%w: have %d samples, want %d", ErrInvalidSize, len(b.Pix), want)
	}
	return nil
}

// Stride returns the number of bytes per row.
func (b *Buffer) Stride() int {
	return b.Width * 4
}

// Offset returns the index of the first sample of pixel (x, y).
func (b *Buffer) Offset(x, y int) int {
	return y*b.Width*4 + x*4
}

// At returns the RGBA quadruplet at (x, y).
func (b *Buffer) At(x, y int) [4]uint8 {
	i := b.Offset(x, y)
	return [4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set stores an RGBA quadruplet at (x, y).
func (b *Buffer) Set(x, y int, c [4]uint8) {
	i := b.Offset(x, y)
	b.Pix[i] = c[0]
	b.Pix[i+1] = c[1]
	b.Pix[i+2] = c[2]
	b.Pix[i+3] = c[3]
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Equal reports whether two buffers have the same size and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.Width != other.Width || b.Height != other.Height || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Colors returns the set of distinct RGBA values in the buffer.
func (b *Buffer) Colors() map[[4]uint8]struct{} {
	set := make(map[[4]uint8]struct{})
	for i := 0; i+3 < len(b.Pix); i += 4 {
		set[[4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}] = struct{}{}
	}
	return set
}

// FromImage converts img into a Buffer anchored at (0, 0).
//
// NRGBA sources are copied byte-for-byte and paletted sources are mapped
// through their palette, so decoded pixel art keeps its exact channel
// values. Any other image model goes through color.NRGBAModel.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := &Buffer{Width: w, Height: h, Pix: make([]uint8, w*h*4)}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.Pix[y*w*4:(y+1)*w*4], src.Pix[start:start+w*4])
		}
	case *image.Paletted:
		palette := make([][4]uint8, len(src.Palette))
		for i, c := range src.Palette {
			palette[i] = toNRGBA(c)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := int(src.ColorIndexAt(bounds.Min.X+x, bounds.Min.Y+y))
				if idx < len(palette) {
					buf.Set(x, y, palette[idx])
				}
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf.Set(x, y, toNRGBA(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
	}
	return buf
}

// ToNRGBA returns a copy of the buffer as an *image.NRGBA.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

func toNRGBA(c color.Color) [4]uint8 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]uint8{n.R, n.G, n.B, n.A}
}
