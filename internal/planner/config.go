package planner

import (
	"errors"
	"fmt"
)

// Mode selects how a ScaleConfig describes the target size.
type Mode string

// Scale mode constants
const (
	ModePercent Mode = "percent"
	ModePixels  Mode = "pixels"
)

// Percent bounds accepted by ScaleConfig.
const (
	MinPercent = 1
	MaxPercent = 200
)

var (
	// ErrInvalidConfig indicates a ScaleConfig that fails validation.
	ErrInvalidConfig = errors.New("invalid scale config")

	// ErrInvalidDimension indicates a non-positive source dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
)

// GridSizes is the fixed set of tile sizes. Zero disables the grid.
var GridSizes = []int{0, 8, 16, 32, 64, 128}

// PercentPresets are the commonly used percent values offered as shortcuts.
var PercentPresets = []int{10, 25, 33, 50, 66, 75, 100, 150, 200}

// ScaleConfig describes the requested output size.
//
// In ModePercent only Percent is used. In ModePixels, Width and Height are
// exact targets where zero means unset; if both are unset the planner falls
// back to Percent, which is otherwise ignored. GridSize and SnapToGrid apply to both modes.
type ScaleConfig struct {
	// Mode is the scale mode ("percent" or "pixels")
	Mode Mode `json:"mode"`

	// Percent is the scale in percent, 1..200
	Percent int `json:"percent"`

	// Width is the exact target width (pixels mode, 0 = unset)
	Width int `json:"width,omitempty"`

	// Height is the exact target height (pixels mode, 0 = unset)
	Height int `json:"height,omitempty"`

	// LockAspect pre-fills the paired exact dimension when one is edited
	LockAspect bool `json:"lockAspect"`

	// GridSize is the tile size, one of GridSizes
	GridSize int `json:"gridSize"`

	// SnapToGrid rounds both output axes to a multiple of GridSize
	SnapToGrid bool `json:"snapToGrid"`
}

// Percent returns a percent-mode config.
func Percent(p int) ScaleConfig {
	return ScaleConfig{Mode: ModePercent, Percent: p}
}

// Exact returns a pixels-mode config. Pass zero for an unset axis.
// The percent fallback defaults to 100.
func Exact(width, height int, lockAspect bool) ScaleConfig {
	return ScaleConfig{
		Mode:       ModePixels,
		Percent:    100,
		Width:      width,
		Height:     height,
		LockAspect: lockAspect,
	}
}

// WithGrid returns a copy of c with the given grid settings. Snapping is
// dropped when size is zero.
func (c ScaleConfig) WithGrid(size int, snap bool) ScaleConfig {
	c.GridSize = size
	c.SnapToGrid = snap
	return c.Normalize()
}

// Normalize returns a copy of c with SnapToGrid cleared when the grid is
// disabled.
func (c ScaleConfig) Normalize() ScaleConfig {
	if c.GridSize == 0 {
		c.SnapToGrid = false
	}
	return c
}

// Snaps reports whether planning with c will snap to the grid.
func (c ScaleConfig) Snaps() bool {
	return c.SnapToGrid && c.GridSize > 0
}

// Validate checks the mode, the grid size and, when Plan will read it, the
// percent range.
func (c ScaleConfig) Validate() error {
	switch c.Mode {
	case ModePercent, ModePixels:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}

	if (c.Mode == ModePercent || UsesPercentFallback(c)) && (c.Percent < MinPercent || c.Percent > MaxPercent) {
		return fmt.Errorf("%w: percent %d outside %d..%d", ErrInvalidConfig, c.Percent, MinPercent, MaxPercent)
	}

	if !ValidGridSize(c.GridSize) {
		return fmt.Errorf("%w: grid size %d not one of %v", ErrInvalidConfig, c.GridSize, GridSizes)
	}

	return nil
}

// ValidGridSize reports whether size is one of GridSizes.
func ValidGridSize(size int) bool {
	for _, s := range GridSizes {
		if s == size {
			return true
		}
	}
	return false
}

// UsesPercentFallback reports whether c is in pixels mode with neither
// dimension set. Plan then scales by c.Percent, which callers may want to
// point out since the percent value is not visible in pixels mode.
func UsesPercentFallback(c ScaleConfig) bool {
	return c.Mode == ModePixels && c.Width == 0 && c.Height == 0
}
