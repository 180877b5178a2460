package engine

import (
	"context"
	"errors"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/planner"
	"github.com/danieljhkim/pixresize/internal/resample"
)

var (
	// ErrValidation indicates a request that fails validation.
	ErrValidation = errors.New("validation failed")

	// ErrNoInputs indicates a request whose inputs expand to no files.
	ErrNoInputs = errors.New("no input images")

	// ErrOutputExists indicates an output path that is already taken.
	ErrOutputExists = errors.New("output already exists")
)

// ErrorKind classifies a per-item failure.
type ErrorKind string

// Error kind constants
const (
	KindUnsupportedInput ErrorKind = "unsupported_input"
	KindDecode           ErrorKind = "decode_error"
	KindEncode           ErrorKind = "encode_error"
	KindIO               ErrorKind = "io_error"
	KindCanceled         ErrorKind = "canceled"
)

// classify maps an item error to its kind. Anything not produced by the
// image pipeline is a filesystem problem.
func classify(err error) ErrorKind {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, codec.ErrUnsupportedInput):
		return KindUnsupportedInput
	case errors.Is(err, codec.ErrDecode), errors.Is(err, planner.ErrInvalidDimension):
		return KindDecode
	case errors.Is(err, codec.ErrEncode), errors.Is(err, resample.ErrInvalidTarget):
		return KindEncode
	default:
		return KindIO
	}
}
