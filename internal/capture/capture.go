// Package capture is the capture-source collaborator: it loads raw
// screenshot files into SnapImages and extracts what metadata they carry.
package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/snap"
)

// Load reads an image file from disk and wraps it as a SnapImage with a
// fresh capture id. Supported formats: PNG, JPEG, WebP.
func Load(path string) (snap.SnapImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return snap.SnapImage{}, fmt.Errorf("failed to read capture: %w", err)
	}

	img, err := DecodeBytes(data, path)
	if err != nil {
		return snap.SnapImage{}, err
	}

	b := img.Bounds()
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	log.Debug().
		Str("path", path).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Msg("Capture loaded")

	return snap.SnapImage{
		ID:     snap.NewImageID(),
		Data:   data,
		Width:  b.Dx(),
		Height: b.Dy(),
		Name:   name,
	}, nil
}

// Decode converts a SnapImage's stored bytes back into pixels. This is
// the renderer's Decode hook in production wiring.
func Decode(img snap.SnapImage) (image.Image, error) {
	return DecodeBytes(img.Data, img.Name)
}

// DecodeBytes decodes encoded image bytes, picking the codec from the
// filename extension and falling back to content sniffing.
func DecodeBytes(data []byte, name string) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data for %q", name)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode PNG: %w", err)
		}
		return img, nil
	case ".jpg", ".jpeg":
		img, err := jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode JPEG: %w", err)
		}
		return img, nil
	case ".webp":
		img, err := webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode WebP: %w", err)
		}
		return img, nil
	}

	// Unknown extension: let the registered codecs sniff the content.
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unsupported image format for %q: %w", name, err)
	}
	return img, nil
}

// CaptureTime extracts the original capture timestamp from the file's
// EXIF block, falling back to the file's modification time. Screenshots
// rarely carry full EXIF, so the fallback is the common path.
func CaptureTime(path string) time.Time {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if exif, derr := imagemeta.Decode(f); derr == nil {
			if ts := exif.DateTimeOriginal(); !ts.IsZero() {
				return ts
			}
			if ts := exif.CreateDate(); !ts.IsZero() {
				return ts
			}
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return time.Now()
	}
	return info.ModTime()
}
