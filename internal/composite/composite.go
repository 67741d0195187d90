// Package composite layers background fill, shadow, and the
// corner-clipped source image into the final canvas raster.
package composite

import (
	"image"
	stddraw "image/draw"

	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/fpang/snapstudio/internal/gradient"
	"github.com/fpang/snapstudio/internal/layout"
	"github.com/fpang/snapstudio/internal/raster"
	"github.com/fpang/snapstudio/internal/shadow"
)

// Compose renders the canvas back to front: fill, then the shadow layer
// if present, then the source image scaled into the draw box and clipped
// to a rounded rectangle. The effective corner radius never exceeds half
// the shorter draw-box dimension. Output is a raw raster at canvas
// resolution; encoding happens later.
func Compose(src image.Image, l layout.Layout, fill gradient.Fill, sh *shadow.Layer, cornerRadius float64) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, l.CanvasWidth, l.CanvasHeight))

	fill.Paint(dst)

	if sh != nil {
		stddraw.Draw(dst, dst.Bounds(), sh.Image, image.Point{}, stddraw.Over)
	}

	// Scale the source into the draw box. Catmull-Rom matches the
	// quality used elsewhere for downscaling screenshots.
	scaled := src
	srcBounds := src.Bounds()
	if srcBounds.Dx() != l.ImageWidth || srcBounds.Dy() != l.ImageHeight {
		buf := image.NewRGBA(image.Rect(0, 0, l.ImageWidth, l.ImageHeight))
		xdraw.CatmullRom.Scale(buf, buf.Bounds(), src, srcBounds, xdraw.Over, nil)
		scaled = buf
	}

	radius := raster.EffectiveRadius(cornerRadius, l.ImageWidth, l.ImageHeight)
	drawRect := image.Rect(l.ImageX, l.ImageY, l.ImageX+l.ImageWidth, l.ImageY+l.ImageHeight)

	if radius > 0 {
		mask := raster.RoundedMask(l.ImageWidth, l.ImageHeight, radius)
		stddraw.DrawMask(dst, drawRect, scaled, scaled.Bounds().Min, mask, image.Point{}, stddraw.Over)
	} else {
		stddraw.Draw(dst, drawRect, scaled, scaled.Bounds().Min, stddraw.Over)
	}

	log.Debug().
		Int("canvasWidth", l.CanvasWidth).
		Int("canvasHeight", l.CanvasHeight).
		Float64("cornerRadius", radius).
		Bool("shadow", sh != nil).
		Msg("Canvas composed")

	return dst
}
