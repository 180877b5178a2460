package grid

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/danieljhkim/pixresize/internal/pixel"
)

// Zoom bounds for preview rendering.
const (
	MinZoom = 1
	MaxZoom = 16
)

// ErrInvalidZoom indicates a zoom factor outside MinZoom..MaxZoom.
var ErrInvalidZoom = errors.New("invalid zoom")

// Pass is one stroke pass of the overlay. Every line is drawn at its
// coordinate plus Offset, Width units wide, in Color.
type Pass struct {
	Name   string
	Offset float64
	Width  float64
	Color  color.NRGBA
}

var (
	// ShadowPass is drawn first, half a unit up/left of each line, as a
	// dark low-opacity stroke that keeps the highlight readable on light
	// art and damps moiré at high zoom.
	ShadowPass = Pass{
		Name:   "shadow",
		Offset: -0.5,
		Width:  1,
		Color:  color.NRGBA{R: 0, G: 0, B: 0, A: 166},
	}

	// HighlightPass is drawn second, on the exact coordinates.
	HighlightPass = Pass{
		Name:   "highlight",
		Offset: 0,
		Width:  1,
		Color:  color.NRGBA{R: 255, G: 225, B: 0, A: 255},
	}
)

// Passes returns the stroke passes in draw order. Both passes use the same
// line positions.
func Passes() []Pass {
	return []Pass{ShadowPass, HighlightPass}
}

// Renderer draws a grid overlay on top of a pixel buffer for on-screen
// verification.
type Renderer struct {
	// Zoom is the integer magnification applied before drawing lines.
	// Zero means 1.
	Zoom int
}

// Render upscales buf by the zoom factor with nearest-neighbor sampling and
// strokes the overlay lines of spec on top. buf is not modified.
func (r Renderer) Render(buf *pixel.Buffer, spec Spec) (*image.RGBA, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	zoom := r.Zoom
	if zoom == 0 {
		zoom = 1
	}
	if zoom < MinZoom || zoom > MaxZoom {
		return nil, fmt.Errorf("%w: %d not in %d..%d", ErrInvalidZoom, zoom, MinZoom, MaxZoom)
	}

	canvasW, canvasH := buf.Width*zoom, buf.Height*zoom
	base := image.NewNRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.NearestNeighbor.Scale(base, base.Bounds(), buf.ToNRGBA(), image.Rect(0, 0, buf.Width, buf.Height), draw.Src, nil)

	if spec.CellSize <= 0 {
		return toRGBA(base), nil
	}

	lines := Layout(buf.Width, buf.Height, spec)

	dc := gg.NewContextForImage(base)
	defer func() {
		_ = dc.Close()
	}()

	z := float64(zoom)
	for _, pass := range Passes() {
		dc.SetRGBA(
			float64(pass.Color.R)/255,
			float64(pass.Color.G)/255,
			float64(pass.Color.B)/255,
			float64(pass.Color.A)/255,
		)
		dc.SetLineWidth(pass.Width)

		for _, x := range lines.Xs {
			px := float64(x)*z + pass.Offset
			dc.DrawLine(px, 0, px, float64(canvasH))
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("failed to stroke %s line x=%d: %w", pass.Name, x, err)
			}
		}
		for _, y := range lines.Ys {
			py := float64(y)*z + pass.Offset
			dc.DrawLine(0, py, float64(canvasW), py)
			if err := dc.Stroke(); err != nil {
				return nil, fmt.Errorf("failed to stroke %s line y=%d: %w", pass.Name, y, err)
			}
		}
	}

	return toRGBA(dc.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}
