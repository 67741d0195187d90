// Package layout computes canvas geometry: canvas dimensions, the image
// draw box, and effective padding, from a settings snapshot and the
// source image size.
package layout

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/snap"
)

// Layout is the computed canvas geometry for one render. ImageX/ImageY
// position the draw box inside the canvas; ImageWidth/ImageHeight are
// the image's final draw dimensions (scaled down from native size only
// when a fixed ratio forces it).
type Layout struct {
	CanvasWidth  int
	CanvasHeight int
	ImageX       int
	ImageY       int
	ImageWidth   int
	ImageHeight  int
}

// ratios is the fixed aspect-ratio table (width : height). Read-only
// after init; social presets alias their platform's post shape.
var ratios = map[snap.AspectRatio]float64{
	snap.RatioSquare:    1,
	snap.Ratio43:        4.0 / 3.0,
	snap.Ratio32:        3.0 / 2.0,
	snap.Ratio169:       16.0 / 9.0,
	snap.Ratio916:       9.0 / 16.0,
	snap.RatioTwitter:   16.0 / 9.0,
	snap.RatioInstagram: 1,
	snap.RatioPinterest: 2.0 / 3.0,
}

// Ratio returns the numeric width:height ratio for a preset, or ok=false
// for auto (and anything unknown, which callers treat as auto).
func Ratio(preset snap.AspectRatio) (float64, bool) {
	r, ok := ratios[preset]
	return r, ok
}

// Compute resolves padding and derives the canvas and draw box.
// Fails with snap.ErrInvalidPadding when any resolved padding is
// negative or the padded geometry leaves a non-positive draw box.
func Compute(img snap.SnapImage, s snap.SnapSettings) (Layout, error) {
	top, right, bottom, left, err := s.Padding.Resolve()
	if err != nil {
		return Layout{}, err
	}

	if img.Width <= 0 || img.Height <= 0 {
		return Layout{}, fmt.Errorf("%w: source image is %dx%d", snap.ErrInvalidPadding, img.Width, img.Height)
	}

	paddedW := img.Width + left + right
	paddedH := img.Height + top + bottom

	l := Layout{ImageWidth: img.Width, ImageHeight: img.Height}

	ratio, fixed := Ratio(s.AspectRatio)
	if !fixed {
		// Auto: canvas hugs the padded image, image at native size.
		l.CanvasWidth = paddedW
		l.CanvasHeight = paddedH
		l.ImageX = left
		l.ImageY = top
	} else {
		// Smallest canvas of the requested ratio containing the padded
		// image: the constraining axis keeps its padded size, the other
		// axis grows to satisfy the ratio.
		if float64(paddedW)/float64(paddedH) >= ratio {
			l.CanvasWidth = paddedW
			l.CanvasHeight = int(math.Round(float64(paddedW) / ratio))
		} else {
			l.CanvasHeight = paddedH
			l.CanvasWidth = int(math.Round(float64(paddedH) * ratio))
		}

		// Scale down, never up, if the padded box cannot hold the image
		// at native size. With the growth rule above this only triggers
		// on rounding edge cases, but the draw box must never overflow.
		availW := l.CanvasWidth - left - right
		availH := l.CanvasHeight - top - bottom
		if availW < l.ImageWidth || availH < l.ImageHeight {
			scale := math.Min(float64(availW)/float64(img.Width), float64(availH)/float64(img.Height))
			l.ImageWidth = int(math.Floor(float64(img.Width) * scale))
			l.ImageHeight = int(math.Floor(float64(img.Height) * scale))
		}

		if s.AutoCenter {
			l.ImageX = (l.CanvasWidth - l.ImageWidth) / 2
			l.ImageY = (l.CanvasHeight - l.ImageHeight) / 2
		} else {
			l.ImageX = left
			l.ImageY = top
		}
	}

	if l.ImageWidth <= 0 || l.ImageHeight <= 0 {
		return Layout{}, fmt.Errorf("%w: draw box is %dx%d", snap.ErrInvalidPadding, l.ImageWidth, l.ImageHeight)
	}

	log.Debug().
		Int("canvasWidth", l.CanvasWidth).
		Int("canvasHeight", l.CanvasHeight).
		Int("imageX", l.ImageX).
		Int("imageY", l.ImageY).
		Int("imageWidth", l.ImageWidth).
		Int("imageHeight", l.ImageHeight).
		Str("aspectRatio", string(s.AspectRatio)).
		Msg("Layout computed")

	return l, nil
}
