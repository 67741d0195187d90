package raster

import (
	"image"
	"math"
)

// BoxBlur blurs img in place with three separable box-blur passes whose
// widths approximate a Gaussian of the given visual radius in pixels.
// Three passes are enough for a visually smooth, symmetric falloff, and
// the effective radius scales linearly with the parameter. Pixels
// outside the image are treated as transparent black, which is what a
// shadow layer floating over a canvas needs.
func BoxBlur(img *image.RGBA, radius float64) {
	if radius <= 0 {
		return
	}
	sigma := radius / 2
	for _, r := range boxRadii(sigma, 3) {
		if r <= 0 {
			continue
		}
		blurPass(img, r, true)
		blurPass(img, r, false)
	}
}

// boxRadii converts a Gaussian sigma into n box radii using the standard
// "boxes for Gauss" width formula.
func boxRadii(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) /
		(float64(-4*wl) - 4)
	m := int(math.Round(mIdeal))

	radii := make([]int, n)
	for i := 0; i < n; i++ {
		w := wu
		if i < m {
			w = wl
		}
		radii[i] = (w - 1) / 2
	}
	return radii
}

// blurPass runs one horizontal or vertical box-blur pass with a sliding
// window accumulator over all four (premultiplied) channels.
func blurPass(img *image.RGBA, r int, horizontal bool) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	outer, inner := h, w
	if !horizontal {
		outer, inner = w, h
	}

	n := uint32(2*r + 1)
	line := make([]uint8, inner*4)

	at := func(o, i int) int {
		if horizontal {
			return img.PixOffset(b.Min.X+i, b.Min.Y+o)
		}
		return img.PixOffset(b.Min.X+o, b.Min.Y+i)
	}

	for o := 0; o < outer; o++ {
		var sum [4]uint32

		// Prime the window for position 0: samples [-r, r], outside = 0.
		for i := 0; i <= r && i < inner; i++ {
			p := at(o, i)
			for c := 0; c < 4; c++ {
				sum[c] += uint32(img.Pix[p+c])
			}
		}

		for i := 0; i < inner; i++ {
			for c := 0; c < 4; c++ {
				line[i*4+c] = uint8((sum[c] + n/2) / n)
			}

			// Slide: add the entering sample, drop the leaving one.
			if enter := i + r + 1; enter < inner {
				p := at(o, enter)
				for c := 0; c < 4; c++ {
					sum[c] += uint32(img.Pix[p+c])
				}
			}
			if leave := i - r; leave >= 0 {
				p := at(o, leave)
				for c := 0; c < 4; c++ {
					sum[c] -= uint32(img.Pix[p+c])
				}
			}
		}

		for i := 0; i < inner; i++ {
			p := at(o, i)
			copy(img.Pix[p:p+4], line[i*4:i*4+4])
		}
	}
}
