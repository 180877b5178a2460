package engine

import (
	"time"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/grid"
	"github.com/danieljhkim/pixresize/internal/planner"
)

// ItemStatus is the outcome of one batch item.
type ItemStatus string

// Item status constants
const (
	StatusOK       ItemStatus = "ok"
	StatusError    ItemStatus = "error"
	StatusCanceled ItemStatus = "canceled"
)

// ItemResult is the tagged outcome of one input.
type ItemResult struct {
	// Input is the source path
	Input string `json:"input"`

	// Output is the written (or planned) output path
	Output string `json:"output,omitempty"`

	// Status is ok, error or canceled
	Status ItemStatus `json:"status"`

	// Kind classifies a failure (empty on success)
	Kind ErrorKind `json:"kind,omitempty"`

	// Error is the failure message (empty on success)
	Error string `json:"error,omitempty"`

	// Err is the underlying failure
	Err error `json:"-"`

	// Format is the source container
	Format codec.Format `json:"format,omitempty"`

	// OutputFormat is the output container
	OutputFormat codec.Format `json:"outputFormat,omitempty"`

	// SourceWidth and SourceHeight are the decoded source dimensions
	SourceWidth  int `json:"sourceWidth,omitempty"`
	SourceHeight int `json:"sourceHeight,omitempty"`

	// Dimensions is the planned output size
	Dimensions planner.Dimensions `json:"dimensions"`

	// Bytes is the encoded output size
	Bytes int64 `json:"bytes,omitempty"`

	// Checksum is the hash of the encoded output
	Checksum string `json:"checksum,omitempty"`

	// Duration is the processing time of the item
	Duration time.Duration `json:"duration,omitempty"`
}

// OK reports whether the item succeeded.
func (r *ItemResult) OK() bool {
	return r.Status == StatusOK
}

func (r *ItemResult) fail(err error) {
	r.Status = StatusError
	r.Kind = classify(err)
	if r.Kind == KindCanceled {
		r.Status = StatusCanceled
	}
	r.Err = err
	r.Error = err.Error()
}

// BatchSummary counts item outcomes.
type BatchSummary struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Canceled  int `json:"canceled"`
}

func summarize(items []ItemResult) BatchSummary {
	s := BatchSummary{Total: len(items)}
	for i := range items {
		switch items[i].Status {
		case StatusOK:
			s.Succeeded++
		case StatusCanceled:
			s.Canceled++
		default:
			s.Failed++
		}
	}
	return s
}

// ResizeResult represents the result of a batch resize.
type ResizeResult struct {
	// Items holds one result per input, in input order
	Items []ItemResult `json:"items"`

	// Summary counts the outcomes
	Summary BatchSummary `json:"summary"`

	// Config is the snapshot every item was planned with
	Config planner.ScaleConfig `json:"config"`

	// DryRun is true when nothing was written
	DryRun bool `json:"dryRun"`
}

// PlanResult represents planned dimensions for a batch.
type PlanResult struct {
	// Items holds one result per input, in input order
	Items []ItemResult `json:"items"`

	// Summary counts the outcomes
	Summary BatchSummary `json:"summary"`

	// Config is the snapshot every item was planned with
	Config planner.ScaleConfig `json:"config"`
}

// PreviewResult represents a rendered grid preview.
type PreviewResult struct {
	// Input is the source image
	Input string `json:"input"`

	// Output is the written PNG
	Output string `json:"output"`

	// Dimensions is the size of the resized image before zoom
	Dimensions planner.Dimensions `json:"dimensions"`

	// Zoom is the applied magnification
	Zoom int `json:"zoom"`

	// Lines are the overlay coordinates in resized-image pixels
	Lines grid.Lines `json:"lines"`

	// Bytes is the size of the written PNG
	Bytes int64 `json:"bytes"`
}
