package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/danieljhkim/pixresize/internal/clock"
	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/planner"
	"github.com/danieljhkim/pixresize/internal/resample"
)

// Resize resizes every input with the same configuration snapshot.
//
// Algorithm steps:
// 1. Validate the request and expand inputs
// 2. Dispatch items to a bounded worker pool
// 3. Per item: read, decode, plan, resample, encode, write atomically
// 4. Collect per-item results in input order
//
// The returned error covers request-level problems only. Item failures are
// reported in the result, and canceled items are marked StatusCanceled.
func (e *Engine) Resize(ctx context.Context, req *ResizeRequest) (*ResizeResult, error) {
	cfg := req.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must not be negative", ErrValidation)
	}

	inputs, err := e.expandInputs(req.Inputs)
	if err != nil {
		return nil, err
	}

	workers := workerCount(req.Workers, len(inputs))
	// Items already run in parallel; only a single-worker batch splits rows.
	resampler := resample.Resampler{Workers: 1}
	if workers == 1 {
		resampler.Workers = runtime.NumCPU()
	}

	e.logger.Info("resize batch started",
		"items", len(inputs), "workers", workers, "mode", cfg.Mode,
		"percent", cfg.Percent, "width", cfg.Width, "height", cfg.Height,
		"grid", cfg.GridSize, "snap", cfg.Snaps(), "dryRun", req.DryRun)

	claims := newClaims()
	items := make([]ItemResult, len(inputs))
	forEach(ctx, len(inputs), workers,
		func(i int) {
			items[i] = e.resizeOne(inputs[i], req, cfg, resampler, claims)
		},
		func(i int) {
			items[i] = ItemResult{Input: inputs[i]}
			items[i].fail(ctx.Err())
		},
	)

	result := &ResizeResult{
		Items:   items,
		Summary: summarize(items),
		Config:  cfg,
		DryRun:  req.DryRun,
	}
	e.logger.Info("resize batch finished",
		"succeeded", result.Summary.Succeeded, "failed", result.Summary.Failed,
		"canceled", result.Summary.Canceled)
	return result, nil
}

func (e *Engine) resizeOne(input string, req *ResizeRequest, cfg planner.ScaleConfig, r resample.Resampler, claims *claims) (item ItemResult) {
	start := e.clock.Now()
	item = ItemResult{Input: input}
	defer func() {
		item.Duration = clock.Since(e.clock, start)
		if item.OK() {
			e.logger.Debug("item resized", "input", input, "output", item.Output,
				"width", item.Dimensions.Width, "height", item.Dimensions.Height,
				"type", item.OutputFormat.MIME(), "duration", item.Duration)
		} else {
			e.logger.Warn("item failed", "input", input, "kind", item.Kind, "error", item.Error)
		}
	}()

	data, err := e.fs.ReadFile(input)
	if err != nil {
		item.fail(fmt.Errorf("failed to read %s: %w", input, err))
		return item
	}

	buf, format, err := codec.DecodeBytes(data)
	if err != nil {
		item.fail(err)
		return item
	}
	item.Format = format
	item.SourceWidth, item.SourceHeight = buf.Width, buf.Height

	dims, err := planner.Plan(buf.Width, buf.Height, cfg)
	if err != nil {
		item.fail(err)
		return item
	}
	item.Dimensions = dims
	item.OutputFormat = codec.OutputFormat(format)
	item.Output = outputPath(input, req.OutputDir, dims.Width, dims.Height, item.OutputFormat)

	if err := e.reserveOutput(item.Output, req.Overwrite, claims); err != nil {
		item.fail(err)
		return item
	}

	if req.DryRun {
		item.Status = StatusOK
		return item
	}

	resized, err := r.Resample(buf, dims.Width, dims.Height)
	if err != nil {
		item.fail(err)
		return item
	}

	encoded, err := codec.EncodeBytes(resized, item.OutputFormat)
	if err != nil {
		item.fail(err)
		return item
	}

	if err := e.fs.AtomicWrite(item.Output, encoded, 0644); err != nil {
		item.fail(fmt.Errorf("failed to write %s: %w", item.Output, err))
		return item
	}

	item.Bytes = int64(len(encoded))
	item.Checksum = e.hasher.HashBytes(encoded)
	item.Status = StatusOK
	return item
}

// reserveOutput claims path for the current batch and refuses existing
// files unless overwriting.
func (e *Engine) reserveOutput(path string, overwrite bool, c *claims) error {
	if !c.claim(path) {
		return fmt.Errorf("%w: %s is produced by another input in this batch", ErrOutputExists, path)
	}
	if overwrite {
		return nil
	}
	exists, err := e.fs.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check output %s: %w", path, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return nil
}

// claims tracks output paths taken within one batch.
type claims struct {
	mu    sync.Mutex
	paths map[string]bool
}

func newClaims() *claims {
	return &claims{paths: make(map[string]bool)}
}

func (c *claims) claim(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paths[path] {
		return false
	}
	c.paths[path] = true
	return true
}
