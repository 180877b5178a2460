package engine

import (
	"github.com/danieljhkim/pixresize/internal/grid"
	"github.com/danieljhkim/pixresize/internal/planner"
)

// ResizeRequest represents a request to resize a batch of images.
type ResizeRequest struct {
	// Inputs are image files or directories. Directories contribute their
	// supported image files, non-recursively.
	Inputs []string

	// OutputDir receives the resized files (empty = next to each source)
	OutputDir string

	// Config is the scale configuration shared by every item
	Config planner.ScaleConfig

	// Workers bounds concurrent items (0 = one per CPU)
	Workers int

	// DryRun decodes and plans without writing anything
	DryRun bool

	// Overwrite allows replacing existing output files
	Overwrite bool
}

// PlanRequest represents a request for output dimensions only.
type PlanRequest struct {
	// Inputs are image files or directories
	Inputs []string

	// Config is the scale configuration
	Config planner.ScaleConfig
}

// PreviewRequest represents a request to render a grid preview.
type PreviewRequest struct {
	// Input is the source image
	Input string

	// Output is the PNG file to write
	Output string

	// Config is the scale configuration applied before rendering
	Config planner.ScaleConfig

	// Grid is the overlay (CellSize 0 = no lines)
	Grid grid.Spec

	// Zoom is the integer magnification (0 = 1)
	Zoom int
}
