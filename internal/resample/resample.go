// Package resample implements nearest-neighbor resizing of pixel buffers.
//
// Every destination pixel (x, y) copies the full RGBA quadruplet of source
// pixel (floor(x*srcW/dstW), floor(y*srcH/dstH)). No sample is ever
// blended, so the output only contains colors present in the source and
// hard pixel edges survive any scale factor.
package resample

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/danieljhkim/pixresize/internal/pixel"
)

// ErrInvalidTarget indicates a non-positive destination dimension.
var ErrInvalidTarget = errors.New("invalid target size")

// Resample returns a new dstW x dstH buffer sampled from src. src is not
// modified.
func Resample(src *pixel.Buffer, dstW, dstH int) (*pixel.Buffer, error) {
	return Resampler{}.Resample(src, dstW, dstH)
}

// Resampler resamples buffers, optionally splitting the destination rows
// across worker goroutines. The zero value is sequential.
type Resampler struct {
	// Workers is the maximum number of goroutines used per call. Values
	// below 2 resample on the calling goroutine.
	Workers int
}

// Resample returns a new dstW x dstH buffer sampled from src. The output
// is byte-identical regardless of Workers.
func (r Resampler) Resample(src *pixel.Buffer, dstW, dstH int) (*pixel.Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if dstW <= 0 || dstH <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTarget, dstW, dstH)
	}

	dst, err := pixel.New(dstW, dstH)
	if err != nil {
		return nil, err
	}

	job := newJob(src, dst)

	workers := r.Workers
	if workers > dstH {
		workers = dstH
	}
	if workers < 2 {
		job.rows(0, dstH)
		return dst, nil
	}

	// Split rows into contiguous bands; each worker owns a disjoint slice of
	// dst.Pix, so no locking is needed.
	band := (dstH + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < dstH; start += band {
		end := min(start+band, dstH)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			job.rows(start, end)
		}(start, end)
	}
	wg.Wait()

	return dst, nil
}

// job holds the precomputed sample lookups for one resample call.
type job struct {
	src *pixel.Buffer
	dst *pixel.Buffer

	// srcCol[x] is the byte offset of the source column for destination x.
	srcCol []int
	yRatio float64
}

func newJob(src, dst *pixel.Buffer) *job {
	xRatio := float64(src.Width) / float64(dst.Width)
	srcCol := make([]int, dst.Width)
	for x := range srcCol {
		srcCol[x] = sourceIndex(x, xRatio, src.Width) * 4
	}
	return &job{
		src:    src,
		dst:    dst,
		srcCol: srcCol,
		yRatio: float64(src.Height) / float64(dst.Height),
	}
}

// rows fills destination rows [start, end).
func (j *job) rows(start, end int) {
	srcStride := j.src.Stride()
	dstStride := j.dst.Stride()

	for y := start; y < end; y++ {
		srcRow := j.src.Pix[sourceIndex(y, j.yRatio, j.src.Height)*srcStride:]
		dstRow := j.dst.Pix[y*dstStride : (y+1)*dstStride]
		for x, si := range j.srcCol {
			di := x * 4
			copy(dstRow[di:di+4], srcRow[si:si+4])
		}
	}
}

// sourceIndex maps a destination coordinate to its source coordinate by
// floor(d * ratio), clamped to the last source index.
func sourceIndex(d int, ratio float64, srcN int) int {
	s := int(math.Floor(float64(d) * ratio))
	if s >= srcN {
		return srcN - 1
	}
	return s
}
