// Package settings holds the user-facing resize settings and persists them
// between runs.
//
// Settings is the mutable, persisted surface. A batch never reads it
// directly: it takes a planner.ScaleConfig value from Snapshot before any
// work is dispatched, so later edits cannot change a running batch.
package settings

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danieljhkim/pixresize/internal/grid"
	"github.com/danieljhkim/pixresize/internal/planner"
)

// SchemaVersion is the current settings file version.
const SchemaVersion = 1

var (
	// ErrUnknownKey indicates a settings key that does not exist.
	ErrUnknownKey = errors.New("unknown settings key")

	// ErrNotSourceKey indicates a key that cannot be derived from a source
	// image size.
	ErrNotSourceKey = errors.New("key does not use a source image")
)

// Settings is the persisted configuration.
type Settings struct {
	// Version is the schema version of the settings file
	Version int `json:"version"`

	// ScaleMode is "percent" or "pixels"
	ScaleMode planner.Mode `json:"scaleMode"`

	// Scale is the percent scale, 1..200
	Scale int `json:"scale"`

	// ExactWidth and ExactHeight are the pixels-mode targets (0 = unset)
	ExactWidth  int `json:"exactWidth"`
	ExactHeight int `json:"exactHeight"`

	// LockAspect pre-fills the paired exact dimension
	LockAspect bool `json:"lockAspect"`

	// GridSize is the tile size, 0 disables the grid
	GridSize int `json:"gridSize"`

	// SnapToGrid rounds output dimensions to GridSize
	SnapToGrid bool `json:"snapToGrid"`

	// ShowGrid enables the overlay in previews
	ShowGrid bool `json:"showGrid"`

	// GridOffsetX and GridOffsetY shift the overlay
	GridOffsetX int `json:"gridOffsetX"`
	GridOffsetY int `json:"gridOffsetY"`

	// Zoom is the preview magnification
	Zoom int `json:"zoom"`
}

// Default returns the settings used when nothing has been saved.
func Default() *Settings {
	return &Settings{
		Version:    SchemaVersion,
		ScaleMode:  planner.ModePercent,
		Scale:      50,
		LockAspect: true,
		GridSize:   32,
		SnapToGrid: false,
		ShowGrid:   true,
		Zoom:       1,
	}
}

// Snapshot returns the scale configuration as an immutable value.
func (s *Settings) Snapshot() planner.ScaleConfig {
	return planner.ScaleConfig{
		Mode:       s.ScaleMode,
		Percent:    s.Scale,
		Width:      s.ExactWidth,
		Height:     s.ExactHeight,
		LockAspect: s.LockAspect,
		GridSize:   s.GridSize,
		SnapToGrid: s.SnapToGrid,
	}.Normalize()
}

// Overlay returns the grid overlay for previews. With ShowGrid off the cell
// size is zero and no lines are drawn.
func (s *Settings) Overlay() grid.Spec {
	if !s.ShowGrid {
		return grid.Spec{}
	}
	return grid.Spec{CellSize: s.GridSize, OffsetX: s.GridOffsetX, OffsetY: s.GridOffsetY}
}

// Validate checks every field.
func (s *Settings) Validate() error {
	if err := s.Snapshot().Validate(); err != nil {
		return err
	}
	if s.Scale < planner.MinPercent || s.Scale > planner.MaxPercent {
		return fmt.Errorf("%w: percent %d outside %d..%d", planner.ErrInvalidConfig, s.Scale, planner.MinPercent, planner.MaxPercent)
	}
	if s.ExactWidth < 0 || s.ExactHeight < 0 {
		return fmt.Errorf("%w: negative exact size %dx%d", planner.ErrInvalidConfig, s.ExactWidth, s.ExactHeight)
	}
	if s.Zoom < grid.MinZoom || s.Zoom > grid.MaxZoom {
		return fmt.Errorf("%w: zoom %d not in %d..%d", grid.ErrInvalidZoom, s.Zoom, grid.MinZoom, grid.MaxZoom)
	}
	return nil
}

// SetGridSize changes the tile size. Disabling the grid also disables
// snapping.
func (s *Settings) SetGridSize(n int) error {
	if !planner.ValidGridSize(n) {
		return fmt.Errorf("%w: grid size %d not one of %v", planner.ErrInvalidConfig, n, planner.GridSizes)
	}
	s.GridSize = n
	if n == 0 {
		s.SnapToGrid = false
	}
	return nil
}

// SetSnap enables or disables snapping. Snapping needs a grid.
func (s *Settings) SetSnap(on bool) error {
	if on && s.GridSize == 0 {
		return fmt.Errorf("%w: snapping needs a grid size", planner.ErrInvalidConfig)
	}
	s.SnapToGrid = on
	return nil
}

// SetExactWidth sets the exact width. With aspect lock on and a known
// source size, the height is pre-filled to match the source aspect.
func (s *Settings) SetExactWidth(v, srcW, srcH int) {
	if !s.LockAspect || srcW <= 0 || srcH <= 0 {
		s.ExactWidth = max(v, 0)
		return
	}
	s.ExactWidth, s.ExactHeight = planner.PairFromWidth(srcW, srcH, v)
}

// SetExactHeight sets the exact height, pre-filling the width like
// SetExactWidth.
func (s *Settings) SetExactHeight(v, srcW, srcH int) {
	if !s.LockAspect || srcW <= 0 || srcH <= 0 {
		s.ExactHeight = max(v, 0)
		return
	}
	s.ExactWidth, s.ExactHeight = planner.PairFromHeight(srcW, srcH, v)
}

// Nudge shifts the overlay offset.
func (s *Settings) Nudge(dx, dy int) {
	spec := grid.Spec{CellSize: s.GridSize, OffsetX: s.GridOffsetX, OffsetY: s.GridOffsetY}
	spec.Nudge(dx, dy)
	s.GridOffsetX, s.GridOffsetY = spec.OffsetX, spec.OffsetY
}

// ResetOffset moves the overlay offset back to the origin.
func (s *Settings) ResetOffset() {
	s.GridOffsetX, s.GridOffsetY = 0, 0
}

// setters maps each persisted key to a parser that applies a string value.
var setters = map[string]func(s *Settings, v string) error{
	"scaleMode": func(s *Settings, v string) error {
		mode := planner.Mode(strings.ToLower(v))
		if mode != planner.ModePercent && mode != planner.ModePixels {
			return fmt.Errorf("%w: unknown mode %q", planner.ErrInvalidConfig, v)
		}
		s.ScaleMode = mode
		return nil
	},
	"scale": intSetter(func(s *Settings, n int) error {
		if n < planner.MinPercent || n > planner.MaxPercent {
			return fmt.Errorf("%w: percent %d outside %d..%d", planner.ErrInvalidConfig, n, planner.MinPercent, planner.MaxPercent)
		}
		s.Scale = n
		return nil
	}),
	"exactWidth":  intSetter(func(s *Settings, n int) error { s.SetExactWidth(n, 0, 0); return nil }),
	"exactHeight": intSetter(func(s *Settings, n int) error { s.SetExactHeight(n, 0, 0); return nil }),
	"lockAspect":  boolSetter(func(s *Settings, b bool) error { s.LockAspect = b; return nil }),
	"gridSize":    intSetter((*Settings).SetGridSize),
	"snapToGrid":  boolSetter((*Settings).SetSnap),
	"showGrid":    boolSetter(func(s *Settings, b bool) error { s.ShowGrid = b; return nil }),
	"gridOffsetX": intSetter(func(s *Settings, n int) error { s.GridOffsetX = n; return nil }),
	"gridOffsetY": intSetter(func(s *Settings, n int) error { s.GridOffsetY = n; return nil }),
	"zoom": intSetter(func(s *Settings, n int) error {
		if n < grid.MinZoom || n > grid.MaxZoom {
			return fmt.Errorf("%w: zoom %d not in %d..%d", grid.ErrInvalidZoom, n, grid.MinZoom, grid.MaxZoom)
		}
		s.Zoom = n
		return nil
	}),
}

// Keys returns the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set parses value and assigns it to key.
func (s *Settings) Set(key, value string) error {
	set, ok := setters[key]
	if !ok {
		return fmt.Errorf("%w: %q (valid keys: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
	}
	return set(s, strings.TrimSpace(value))
}

// SetFromSource assigns an exact dimension for a source image of
// srcW x srcH. With aspect lock on, the paired dimension follows the
// source aspect ratio.
func (s *Settings) SetFromSource(key, value string, srcW, srcH int) error {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", planner.ErrInvalidConfig, value)
	}
	if n <= 0 {
		return fmt.Errorf("%w: %s must be positive", planner.ErrInvalidConfig, key)
	}
	switch key {
	case "exactWidth":
		s.SetExactWidth(n, srcW, srcH)
	case "exactHeight":
		s.SetExactHeight(n, srcW, srcH)
	default:
		return fmt.Errorf("%w: %q", ErrNotSourceKey, key)
	}
	return nil
}

func intSetter(apply func(*Settings, int) error) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", planner.ErrInvalidConfig, v)
		}
		return apply(s, n)
	}
}

func boolSetter(apply func(*Settings, bool) error) func(*Settings, string) error {
	return func(s *Settings, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", planner.ErrInvalidConfig, v)
		}
		return apply(s, b)
	}
}
