// Package engine provides the batch orchestration behind every pixresize
// command.
//
// The engine sits between the CLI and the pure packages (codec, planner,
// resample, grid). It expands inputs, takes the configuration snapshot,
// fans images out to a bounded worker pool and collects one tagged result
// per image. A failing image never aborts its siblings.
//
// Key components:
//   - Resize: decode, plan, resample, encode and write every input
//   - Plan: header-only preview of the output dimensions
//   - Preview: render one resized image with the grid overlay
package engine

import (
	"log/slog"
	"runtime"

	"github.com/danieljhkim/pixresize/internal/clock"
	"github.com/danieljhkim/pixresize/internal/fsops"
	"github.com/danieljhkim/pixresize/internal/hash"
	"github.com/danieljhkim/pixresize/internal/logging"
)

// Engine orchestrates all pixresize operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new Engine with the given dependencies. A nil logger
// discards all output.
func New(
	fs fsops.FS,
	hasher hash.Hasher,
	clk clock.Clock,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		logger: logging.OrNop(logger),
	}
}

// workerCount resolves a requested worker count against the number of
// items. Zero means one worker per CPU.
func workerCount(requested, items int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > items {
		n = items
	}
	if n < 1 {
		n = 1
	}
	return n
}
