// Package shadow computes the drop-shadow layer drawn behind the placed
// image: a blurred, offset, rounded silhouette of the draw box.
package shadow

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/layout"
	"github.com/fpang/snapstudio/internal/raster"
	"github.com/fpang/snapstudio/internal/snap"
)

// Layer is a canvas-sized raster holding the rendered shadow, ready to
// be alpha-composited between the background fill and the image.
type Layer struct {
	Image *image.RGBA
}

// Compute renders the shadow layer for the given geometry, or nil when
// the shadow is disabled (compositing then skips the stage entirely).
// cornerRadius is the image's corner radius; the silhouette follows it,
// expanded by Spread, so the shadow hugs the rounded shape.
func Compute(l layout.Layout, s snap.ShadowSettings, cornerRadius float64) *Layer {
	if !s.Enabled {
		return nil
	}

	c, err := snap.ParseHexColor(s.Color)
	if err != nil {
		// A malformed shadow color is not worth failing the render over;
		// fall back to black, matching what the capture UI previews.
		log.Warn().Str("color", s.Color).Msg("Invalid shadow color, using black")
		c = color.NRGBA{A: 0xff}
	}

	opacity := s.Opacity
	if opacity < 0 {
		opacity = 0
	} else if opacity > 100 {
		opacity = 100
	}

	spread := s.Spread
	if spread < 0 {
		spread = 0
	}
	blur := s.Blur
	if blur < 0 {
		blur = 0
	}

	// Silhouette: the draw box expanded by spread on all sides, shifted
	// by the offsets.
	sw := l.ImageWidth + int(math.Round(2*spread))
	sh := l.ImageHeight + int(math.Round(2*spread))
	sx := l.ImageX - int(math.Round(spread)) + s.OffsetX
	sy := l.ImageY - int(math.Round(spread)) + s.OffsetY

	imgRadius := raster.EffectiveRadius(cornerRadius, l.ImageWidth, l.ImageHeight)
	mask := raster.RoundedMask(sw, sh, imgRadius+spread)

	alpha := uint8(math.Round(float64(opacity) * 255 / 100))
	tint := color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}

	dst := image.NewRGBA(image.Rect(0, 0, l.CanvasWidth, l.CanvasHeight))
	rect := image.Rect(sx, sy, sx+sw, sy+sh)
	draw.DrawMask(dst, rect, image.NewUniform(tint), image.Point{}, mask, image.Point{}, draw.Src)

	raster.BoxBlur(dst, blur)

	log.Debug().
		Int("width", sw).
		Int("height", sh).
		Float64("blur", blur).
		Float64("spread", spread).
		Int("opacity", opacity).
		Msg("Shadow layer rendered")

	return &Layer{Image: dst}
}
