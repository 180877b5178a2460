package planner

import (
	"fmt"
	"math"
)

// Dimensions is the planned output size.
type Dimensions struct {
	// Width is the output width in pixels (always >= 1)
	Width int `json:"width"`

	// Height is the output height in pixels (always >= 1)
	Height int `json:"height"`

	// Snapped is true when grid snapping changed either axis
	Snapped bool `json:"snapped"`
}

// Plan computes the output dimensions for a srcW x srcH source.
//
// Algorithm steps:
// 1. Percent mode scales both axes by Percent/100
// 2. Pixels mode uses the set axes and derives a missing one from the
// source aspect ratio; with no axis set it falls back to step 1
// 3. With snapping enabled, each axis is rounded to a multiple of GridSize
//
// Every axis is clamped to at least one pixel. Rounding is half away from
// zero.
func Plan(srcW, srcH int, cfg ScaleConfig) (Dimensions, error) {
	if srcW <= 0 || srcH <= 0 {
		return Dimensions{}, fmt.Errorf("%w: source %dx%d", ErrInvalidDimension, srcW, srcH)
	}
	if err := cfg.Validate(); err != nil {
		return Dimensions{}, err
	}

	w, h := baseDims(srcW, srcH, cfg)

	if !cfg.Snaps() {
		return Dimensions{Width: w, Height: h}, nil
	}

	sw := Snap(w, cfg.GridSize)
	sh := Snap(h, cfg.GridSize)
	return Dimensions{
		Width:   sw,
		Height:  sh,
		Snapped: sw != w || sh != h,
	}, nil
}

// baseDims computes the pre-snap dimensions.
func baseDims(srcW, srcH int, cfg ScaleConfig) (int, int) {
	if cfg.Mode == ModePixels {
		switch {
		case cfg.Width != 0 && cfg.Height != 0:
			// An explicit pair always wins, aspect lock or not.
			return atLeastOne(cfg.Width), atLeastOne(cfg.Height)
		case cfg.Width != 0:
			return atLeastOne(cfg.Width), scaleAxis(srcH, cfg.Width, srcW)
		case cfg.Height != 0:
			return scaleAxis(srcW, cfg.Height, srcH), atLeastOne(cfg.Height)
		}
		// Neither axis set: fall through to the percent value.
	}

	return scaleAxis(srcW, cfg.Percent, 100), scaleAxis(srcH, cfg.Percent, 100)
}

// Snap rounds v to the nearest multiple of grid, never below grid.
// A non-positive grid returns v unchanged.
func Snap(v, grid int) int {
	if grid <= 0 {
		return v
	}
	snapped := int(math.Round(float64(v)/float64(grid))) * grid
	if snapped < grid {
		return grid
	}
	return snapped
}

// PairFromWidth returns the exact pair implied by editing the width with
// aspect lock on: the height follows the source aspect ratio.
func PairFromWidth(srcW, srcH, width int) (int, int) {
	width = atLeastOne(width)
	if srcW <= 0 || srcH <= 0 {
		return width, 1
	}
	aspect := float64(srcW) / float64(srcH)
	return width, atLeastOne(int(math.Round(float64(width) / aspect)))
}

// PairFromHeight returns the exact pair implied by editing the height with
// aspect lock on.
func PairFromHeight(srcW, srcH, height int) (int, int) {
	height = atLeastOne(height)
	if srcW <= 0 || srcH <= 0 {
		return 1, height
	}
	aspect := float64(srcW) / float64(srcH)
	return atLeastOne(int(math.Round(float64(height) * aspect))), height
}

// scaleAxis returns max(1, round(v*num/den)).
func scaleAxis(v, num, den int) int {
	return atLeastOne(int(math.Round(float64(v) * float64(num) / float64(den))))
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
