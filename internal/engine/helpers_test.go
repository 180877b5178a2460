package engine

import (
	"testing"
	"time"

	"github.com/danieljhkim/pixresize/internal/clock"
	"github.com/danieljhkim/pixresize/internal/codec"
	"github.com/danieljhkim/pixresize/internal/fsops"
	"github.com/danieljhkim/pixresize/internal/hash"
	"github.com/danieljhkim/pixresize/internal/pixel"
)

const itemStep = 5 * time.Millisecond

func setupTestEngine(t *testing.T) (*Engine, *fsops.MemFS, *hash.FakeHasher) {
	t.Helper()
	fs := fsops.NewMemFS()
	hasher := hash.NewFakeHasher()
	clk := clock.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clk.SetStep(itemStep)
	return New(fs, hasher, clk, nil), fs, hasher
}

// stripes returns a w x h buffer whose column x has red channel x.
func stripes(t *testing.T, w, h int) *pixel.Buffer {
	t.Helper()
	buf, err := pixel.New(w, h)
	if err != nil {
		t.Fatalf("pixel.New: %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.Set(x, y, [4]uint8{uint8(x), uint8(y), 200, 255})
		}
	}
	return buf
}

func encoded(t *testing.T, buf *pixel.Buffer, f codec.Format) []byte {
	t.Helper()
	data, err := codec.EncodeBytes(buf, f)
	if err != nil {
		t.Fatalf("EncodeBytes: %v", err)
	}
	return data
}

func addImage(t *testing.T, fs *fsops.MemFS, path string, w, h int) *pixel.Buffer {
	t.Helper()
	buf := stripes(t, w, h)
	f, ok := codec.FormatFromName(path)
	if !ok {
		f = codec.PNG
	}
	fs.AddFile(path, encoded(t, buf, f))
	return buf
}

func decodeFile(t *testing.T, fs *fsops.MemFS, path string) *pixel.Buffer {
	t.Helper()
	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("output %s missing: %v", path, err)
	}
	buf, _, err := codec.DecodeBytes(data)
	if err != nil {
		t.Fatalf("output %s not decodable: %v", path, err)
	}
	return buf
}
