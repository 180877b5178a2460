package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/danieljhkim/pixresize/internal/pixel"
)

var (
	// ErrUnsupportedInput indicates bytes that are not a recognized image
	// container.
	ErrUnsupportedInput = errors.New("unsupported input")
	// ErrDecode indicates a recognized container whose pixels could not be
	// read.
	ErrDecode = errors.New("decode failed")
	// ErrEncode indicates a buffer that could not be written in the
	// requested format.
	ErrEncode = errors.New("encode failed")
)

// JPEGQuality is the quality used when the output container is JPEG.
const JPEGQuality = 100

// Info is the header information of an image file.
type Info struct {
	Format Format `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DecodeConfig reads only the image header.
func DecodeConfig(r io.Reader) (Info, error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return Info{}, fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
		}
		return Info{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return Info{Format: Format(name), Width: cfg.Width, Height: cfg.Height}, nil
}

// Decode reads a full image into a pixel buffer. Animated GIFs yield their
// first frame.
func Decode(r io.Reader) (*pixel.Buffer, Format, error) {
	br := bufio.NewReader(r)

	img, name, err := image.Decode(br)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedInput, err)
		}
		return nil, Format(name), fmt.Errorf("%w: %v", ErrDecode, err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, Format(name), fmt.Errorf("%w: empty image %dx%d", ErrDecode, b.Dx(), b.Dy())
	}
	return pixel.FromImage(img), Format(name), nil
}

// DecodeBytes is Decode over an in-memory file.
func DecodeBytes(data []byte) (*pixel.Buffer, Format, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes buf to w in format f. Formats without an encoder fall back
// to OutputFormat(f).
func Encode(w io.Writer, buf *pixel.Buffer, f Format) error {
	if err := buf.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	img := buf.ToNRGBA()

	var err error
	switch OutputFormat(f) {
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		err = bmp.Encode(w, img)
	default:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncode, OutputFormat(f), err)
	}
	return nil
}

// EncodeBytes encodes buf into a new byte slice.
func EncodeBytes(buf *pixel.Buffer, f Format) ([]byte, error) {
	var out bytes.Buffer
	if err := Encode(&out, buf, f); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// EncodeImage writes an arbitrary image as PNG. Used for rendered previews.
func EncodeImage(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("%w: png: %v", ErrEncode, err)
	}
	return nil
}
