package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/grid"
	"github.com/danieljhkim/pixresize/internal/planner"
	"github.com/danieljhkim/pixresize/internal/resample"
)

// Preview resizes one image and writes it, magnified, with the grid
// overlay drawn on top. The overlay is only ever written to the preview
// file, never to resized output.
func (e *Engine) Preview(ctx context.Context, req *PreviewRequest) (*PreviewResult, error) {
	if req.Input == "" || req.Output == "" {
		return nil, fmt.Errorf("%w: preview needs an input and an output path", ErrValidation)
	}
	cfg := req.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	zoom := req.Zoom
	if zoom == 0 {
		zoom = grid.MinZoom
	}
	if zoom < grid.MinZoom || zoom > grid.MaxZoom {
		return nil, fmt.Errorf("%w: %w: %d not in %d..%d", ErrValidation, grid.ErrInvalidZoom, zoom, grid.MinZoom, grid.MaxZoom)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := e.fs.ReadFile(req.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", req.Input, err)
	}
	buf, _, err := codec.DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	dims, err := planner.Plan(buf.Width, buf.Height, cfg)
	if err != nil {
		return nil, err
	}
	resized, err := resample.Resample(buf, dims.Width, dims.Height)
	if err != nil {
		return nil, err
	}

	img, err := grid.Renderer{Zoom: zoom}.Render(resized, req.Grid)
	if err != nil {
		return nil, fmt.Errorf("failed to render preview: %w", err)
	}

	var out bytes.Buffer
	if err := codec.EncodeImage(&out, img); err != nil {
		return nil, err
	}
	if err := e.fs.AtomicWrite(req.Output, out.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", req.Output, err)
	}

	e.logger.Debug("preview rendered", "input", req.Input, "output", req.Output,
		"width", dims.Width, "height", dims.Height, "zoom", zoom, "cell", req.Grid.CellSize)

	return &PreviewResult{
		Input:      req.Input,
		Output:     req.Output,
		Dimensions: dims,
		Zoom:       zoom,
		Lines:      grid.Layout(dims.Width, dims.Height, req.Grid),
		Bytes:      int64(out.Len()),
	}, nil
}
