// Package codec decodes image files into pixel buffers and encodes resized
// buffers back into files.
//
// Supported inputs are PNG, GIF (first frame), BMP, WebP and JPEG. Outputs
// keep the source container where an encoder exists; GIF and WebP sources
// are written as PNG so resized pixel art is never re-compressed lossily or
// animated.
package codec

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Format is an image container format.
type Format string

// Format constants. The values match the names registered with the image
// package, so image.Decode's format string converts directly.
const (
	PNG  Format = "png"
	GIF  Format = "gif"
	BMP  Format = "bmp"
	WebP Format = "webp"
	JPEG Format = "jpeg"
)

// Formats lists every supported input format.
var Formats = []Format{PNG, GIF, BMP, WebP, JPEG}

var extensions = map[string]Format{
	".png":  PNG,
	".gif":  GIF,
	".bmp":  BMP,
	".webp": WebP,
	".jpg":  JPEG,
	".jpeg": JPEG,
}

// FormatFromName returns the format implied by a file name's extension.
func FormatFromName(name string) (Format, bool) {
	f, ok := extensions[strings.ToLower(filepath.Ext(name))]
	return f, ok
}

// Supported reports whether name has a supported image extension.
func Supported(name string) bool {
	_, ok := FormatFromName(name)
	return ok
}

// Ext returns the canonical file extension, including the dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case "":
		return ".png"
	default:
		return "." + string(f)
	}
}

// MIME returns the media type of the format.
func (f Format) MIME() string {
	return "image/" + string(f)
}

// OutputFormat returns the container used for a resized image decoded
// from src. GIF output would need palette quantization and WebP has no
// encoder here, so both become PNG.
func OutputFormat(src Format) Format {
	switch src {
	case PNG, BMP, JPEG:
		return src
	default:
		return PNG
	}
}

// OutputName returns the file name for a resized copy of original:
// "{base}_{w}x{h}{ext}". The original extension is kept when the container
// is unchanged; a name without an extension gets ".png"; a re-encoded
// container gets its own extension.
func OutputName(original string, w, h int, out Format) string {
	name := filepath.Base(original)
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	switch {
	case ext == "":
		ext = ".png"
		if out != "" && out != PNG {
			ext = out.Ext()
		}
	default:
		if src, ok := FormatFromName(name); !ok || src != out {
			ext = out.Ext()
		}
	}

	return base + "_" + strconv.Itoa(w) + "x" + strconv.Itoa(h) + ext
}
