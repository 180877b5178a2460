package resample

import (
	"errors"
	"testing"

	"github.com/danieljhkim/pixresize/internal/pixel"
)

// checkerboard builds a w x h buffer whose pixels are all distinct.
func checkerboard(t *testing.T, w, h int) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	if err != nil {
		t.Fatalf("pixel.New(%d, %d): %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, [4]uint8{uint8(x * 7), uint8(y * 13), uint8((x + y) * 3), uint8(255 - x - y)})
		}
	}
	return buf
}

func TestResample_Identity(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 5}, {16, 16}, {37, 11}}
	for _, s := range sizes {
		src := checkerboard(t, s[0], s[1])
		out, err := Resample(src, s[0], s[1])
		if err != nil {
			t.Fatalf("Resample() error = %v", err)
		}
		if !out.Equal(src) {
			t.Errorf("%dx%d: scale-by-1 must return an identical buffer", s[0], s[1])
		}
	}
}

func TestResample_DoesNotMutateSource(t *testing.T) {
	src := checkerboard(t, 8, 8)
	before := src.Clone()

	if _, err := Resample(src, 3, 13); err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if !src.Equal(before) {
		t.Error("source buffer was modified")
	}
}

func TestResample_FloorMapping(t *testing.T) {
	// 4x1 source, upscaled to 10x1: srcX = floor(x * 0.4)
	src, _ := pixel.New(4, 1)
	for x := 0; x < 4; x++ {
		src.Set(x, 0, [4]uint8{uint8(x), 0, 0, 255})
	}

	out, err := Resample(src, 10, 1)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	want := []uint8{0, 0, 0, 1, 1, 2, 2, 2, 3, 3}
	for x, w := range want {
		if got := out.At(x, 0)[0]; got != w {
			t.Errorf("x=%d: got source column %d, want %d", x, got, w)
		}
	}
}

func TestResample_Downscale(t *testing.T) {
	// 2x2 blocks of a 4x4 image collapse to their top-left pixel.
	src := checkerboard(t, 4, 4)
	out, err := Resample(src, 2, 2)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got, want := out.At(x, y), src.At(x*2, y*2); got != want {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResample_IntegerUpscaleRepeatsBlocks(t *testing.T) {
	src := checkerboard(t, 3, 2)
	out, err := Resample(src, 12, 8)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}

	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if got, want := out.At(x, y), src.At(x/4, y/4); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestResample_ChannelFidelity(t *testing.T) {
	src := checkerboard(t, 9, 7)
	srcColors := src.Colors()

	targets := [][2]int{{1, 1}, {4, 3}, {9, 7}, {13, 29}, {18, 14}, {50, 2}}
	for _, tgt := range targets {
		out, err := Resample(src, tgt[0], tgt[1])
		if err != nil {
			t.Fatalf("Resample() error = %v", err)
		}
		for c := range out.Colors() {
			if _, ok := srcColors[c]; !ok {
				t.Fatalf("%dx%d: output color %v not present in source", tgt[0], tgt[1], c)
			}
		}
	}
}

func TestResample_Deterministic(t *testing.T) {
	src := checkerboard(t, 17, 9)
	a, err := Resample(src, 31, 5)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	b, err := Resample(src, 31, 5)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if !a.Equal(b) {
		t.Error("two calls with identical inputs produced different buffers")
	}
}

func TestResampler_ParallelMatchesSequential(t *testing.T) {
	src := checkerboard(t, 23, 19)

	tests := []struct {
		name    string
		workers int
		w, h    int
	}{
		{name: "two workers", workers: 2, w: 40, h: 33},
		{name: "more workers than rows", workers: 64, w: 7, h: 3},
		{name: "uneven bands", workers: 5, w: 11, h: 17},
		{name: "single row", workers: 4, w: 9, h: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Resample(src, tt.w, tt.h)
			if err != nil {
				t.Fatalf("sequential: %v", err)
			}
			par, err := Resampler{Workers: tt.workers}.Resample(src, tt.w, tt.h)
			if err != nil {
				t.Fatalf("parallel: %v", err)
			}
			if !par.Equal(seq) {
				t.Error("parallel output differs from sequential output")
			}
		})
	}
}

func TestResample_Errors(t *testing.T) {
	src := checkerboard(t, 4, 4)

	if _, err := Resample(src, 0, 4); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("zero width: got %v, want ErrInvalidTarget", err)
	}
	if _, err := Resample(src, 4, -2); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("negative height: got %v, want ErrInvalidTarget", err)
	}

	broken := &pixel.Buffer{Width: 4, Height: 4, Pix: make([]uint8, 10)}
	if _, err := Resample(broken, 2, 2); !errors.Is(err, pixel.ErrInvalidSize) {
		t.Errorf("broken source: got %v, want pixel.ErrInvalidSize", err)
	}
}

func TestSourceIndex_StaysInRange(t *testing.T) {
	for srcN := 1; srcN <= 50; srcN++ {
		for dstN := 1; dstN <= 120; dstN++ {
			ratio := float64(srcN) / float64(dstN)
			for d := 0; d < dstN; d++ {
				s := sourceIndex(d, ratio, srcN)
				if s < 0 || s >= srcN {
					t.Fatalf("sourceIndex(%d, %d/%d) = %d out of [0,%d)", d, srcN, dstN, s, srcN)
				}
			}
		}
	}
}
