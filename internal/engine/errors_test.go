package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/planner"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{err: fmt.Errorf("wrap: %w", codec.ErrUnsupportedInput), want: KindUnsupportedInput},
		{err: fmt.Errorf("wrap: %w", codec.ErrDecode), want: KindDecode},
		{err: planner.ErrInvalidDimension, want: KindDecode},
		{err: fmt.Errorf("wrap: %w", codec.ErrEncode), want: KindEncode},
		{err: fmt.Errorf("read: %w", os.ErrNotExist), want: KindIO},
		{err: ErrOutputExists, want: KindIO},
		{err: context.Canceled, want: KindCanceled},
		{err: context.DeadlineExceeded, want: KindCanceled},
		{err: errors.New("anything else"), want: KindIO},
	}

	for _, tt := range tests {
		if got := classify(tt.err); got != tt.want {
			t.Errorf("classify(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestWorkerCount(t *testing.T) {
	if got := workerCount(8, 3); got != 3 {
		t.Errorf("workerCount(8, 3) = %d, want 3", got)
	}
	if got := workerCount(2, 10); got != 2 {
		t.Errorf("workerCount(2, 10) = %d, want 2", got)
	}
	if got := workerCount(0, 1); got != 1 {
		t.Errorf("workerCount(0, 1) = %d, want 1", got)
	}
	if got := workerCount(0, 0); got != 1 {
		t.Errorf("workerCount(0, 0) = %d, want 1", got)
	}
}
