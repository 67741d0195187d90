// Package raster holds the low-level pixel helpers shared by the shadow
// and composite stages: antialiased rounded-rectangle coverage masks and
// a separable box-blur approximation of Gaussian blur.
package raster

import (
	"image"
	"image/color"
	"math"
)

// EffectiveRadius clamps a corner radius so it never exceeds half the
// shorter dimension. At the cap the rounded shape degenerates to a pill.
func EffectiveRadius(radius float64, w, h int) float64 {
	if radius < 0 {
		return 0
	}
	half := math.Min(float64(w), float64(h)) / 2
	return math.Min(radius, half)
}

// RoundedMask returns an antialiased alpha mask for a w x h rounded
// rectangle with the given corner radius. Coverage comes from the signed
// distance to the rounded-rect outline sampled at pixel centers, so the
// path can never self-intersect regardless of the requested radius.
func RoundedMask(w, h int, radius float64) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r := EffectiveRadius(radius, w, h)

	hw := float64(w) / 2
	hh := float64(h) / 2

	for y := 0; y < h; y++ {
		py := math.Abs(float64(y)+0.5-hh) - (hh - r)
		for x := 0; x < w; x++ {
			px := math.Abs(float64(x)+0.5-hw) - (hw - r)

			// Signed distance to the rounded rectangle.
			qx := math.Max(px, 0)
			qy := math.Max(py, 0)
			d := math.Hypot(qx, qy) + math.Min(math.Max(px, py), 0) - r

			cov := 0.5 - d
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}
			mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(cov * 255))})
		}
	}
	return mask
}
