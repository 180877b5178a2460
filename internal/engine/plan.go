package engine

import (
	"bytes"
	"context"
	"fmt"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/planner"
)

// Plan reports the output dimensions and file name of every input without
// touching pixels. Only image headers are decoded.
func (e *Engine) Plan(ctx context.Context, req *PlanRequest) (*PlanResult, error) {
	cfg := req.Config.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	inputs, err := e.expandInputs(req.Inputs)
	if err != nil {
		return nil, err
	}

	items := make([]ItemResult, len(inputs))
	for i, input := range inputs {
		if ctx.Err() != nil {
			items[i] = ItemResult{Input: input}
			items[i].fail(ctx.Err())
			continue
		}
		items[i] = e.planOne(input, cfg)
	}

	return &PlanResult{
		Items:   items,
		Summary: summarize(items),
		Config:  cfg,
	}, nil
}

func (e *Engine) planOne(input string, cfg planner.ScaleConfig) ItemResult {
	item := ItemResult{Input: input}

	data, err := e.fs.ReadFile(input)
	if err != nil {
		item.fail(fmt.Errorf("failed to read %s: %w", input, err))
		return item
	}

	info, err := codec.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		item.fail(err)
		return item
	}
	item.Format = info.Format
	item.SourceWidth, item.SourceHeight = info.Width, info.Height

	dims, err := planner.Plan(info.Width, info.Height, cfg)
	if err != nil {
		item.fail(err)
		return item
	}
	item.Dimensions = dims
	item.OutputFormat = codec.OutputFormat(info.Format)
	item.Output = codec.OutputName(input, dims.Width, dims.Height, item.OutputFormat)
	item.Status = StatusOK
	return item
}
