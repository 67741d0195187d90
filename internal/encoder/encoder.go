// Package encoder rescales the composed raster and encodes it into the
// requested export format, producing the capture result record.
package encoder

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/fpang/snapstudio/internal/snap"
)

// DefaultJPEGQuality is used when the caller leaves quality unset.
const DefaultJPEGQuality = 90

// Encode rescales the raster by opts.Scale, encodes it per opts.Format,
// and returns the result record. Quality applies to jpeg/webp only; png
// ignores it. Destination never changes the return value — it only tells
// the writer layer where to push the bytes.
func Encode(raster *image.RGBA, opts snap.ExportOptions) (snap.CaptureResult, error) {
	mime := opts.Format.MIMEType()
	if mime == "" {
		return snap.CaptureResult{}, fmt.Errorf("%w: %q", snap.ErrUnsupportedFormat, opts.Format)
	}

	b := raster.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return snap.CaptureResult{}, fmt.Errorf("%w: raster is %dx%d", snap.ErrEncodingFailure, b.Dx(), b.Dy())
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	out := raster
	outW := int(math.Round(float64(b.Dx()) * scale))
	outH := int(math.Round(float64(b.Dy()) * scale))
	if outW <= 0 || outH <= 0 {
		return snap.CaptureResult{}, fmt.Errorf("%w: scale %v collapses output to %dx%d",
			snap.ErrEncodingFailure, scale, outW, outH)
	}
	if outW != b.Dx() || outH != b.Dy() {
		resized := image.NewRGBA(image.Rect(0, 0, outW, outH))
		xdraw.CatmullRom.Scale(resized, resized.Bounds(), raster, b, xdraw.Src, nil)
		out = resized
	}

	quality := opts.Quality
	if quality < 0 {
		quality = 0
	} else if quality > 100 {
		quality = 100
	}

	var buf bytes.Buffer
	var err error
	switch opts.Format {
	case snap.FormatPNG:
		err = png.Encode(&buf, out)
	case snap.FormatJPEG:
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		err = jpeg.Encode(&buf, out, &jpeg.Options{Quality: quality})
	case snap.FormatWebP:
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		err = webp.Encode(&buf, out, &webp.Options{Quality: float32(quality), Lossless: quality == 100})
	}
	if err != nil {
		return snap.CaptureResult{}, fmt.Errorf("%w: %s: %v", snap.ErrEncodingFailure, opts.Format, err)
	}
	if buf.Len() == 0 {
		return snap.CaptureResult{}, fmt.Errorf("%w: %s encoder produced no bytes", snap.ErrEncodingFailure, opts.Format)
	}

	log.Debug().
		Str("format", string(opts.Format)).
		Float64("scale", scale).
		Int("width", outW).
		Int("height", outH).
		Int("bytes", buf.Len()).
		Msg("Raster encoded")

	return snap.CaptureResult{
		Success:   true,
		ImageData: DataURL(mime, buf.Bytes()),
		Width:     outW,
		Height:    outH,
	}, nil
}

// DataURL wraps encoded image bytes in a self-describing data URL.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a data URL back into MIME type and raw bytes,
// for writer collaborators that need the bytes themselves.
func DecodeDataURL(url string) (mime string, data []byte, err error) {
	const scheme = "data:"
	if len(url) < len(scheme) || url[:len(scheme)] != scheme {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := url[len(scheme):]
	sep := bytes.IndexByte([]byte(rest), ',')
	if sep < 0 {
		return "", nil, fmt.Errorf("malformed data URL: no comma")
	}
	meta := rest[:sep]
	const b64 = ";base64"
	if len(meta) < len(b64) || meta[len(meta)-len(b64):] != b64 {
		return "", nil, fmt.Errorf("malformed data URL: not base64")
	}
	mime = meta[:len(meta)-len(b64)]
	data, err = base64.StdEncoding.DecodeString(rest[sep+1:])
	if err != nil {
		return "", nil, fmt.Errorf("malformed data URL payload: %w", err)
	}
	return mime, data, nil
}
