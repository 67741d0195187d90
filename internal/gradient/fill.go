// Package gradient resolves background settings into renderer-ready
// fill descriptors and rasterizes them onto a canvas.
package gradient

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Fill is a resolved background descriptor. Exactly one concrete
// variant exists per background family: LinearGradient, RadialGradient,
// Solid, Transparent.
type Fill interface {
	// Paint rasterizes the fill over the whole destination canvas.
	Paint(dst *image.RGBA)
}

// Stop is a color at a position along a gradient, 0.0 to 1.0.
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// EvenStops spreads colors evenly from offset 0 (first) to 1 (last).
// Color sequence order is significant: it defines interpolation order.
func EvenStops(colors []color.NRGBA) []Stop {
	stops := make([]Stop, len(colors))
	for i, c := range colors {
		offset := 0.0
		if len(colors) > 1 {
			offset = float64(i) / float64(len(colors)-1)
		}
		stops[i] = Stop{Offset: offset, Color: c}
	}
	return stops
}

// Transparent leaves the canvas fully transparent.
type Transparent struct{}

// Paint is a no-op: a fresh RGBA raster is already zeroed.
func (Transparent) Paint(dst *image.RGBA) {}

// Solid fills the canvas with a single opaque color.
type Solid struct {
	Color color.NRGBA
}

// Paint fills every pixel with the solid color.
func (s Solid) Paint(dst *image.RGBA) {
	px := premultiply(s.Color)
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(x, y, px)
		}
	}
}

// LinearGradient is a linear color transition across the canvas.
// Angle is in degrees: 0 points up, increasing clockwise. The gradient
// line passes through the canvas center and spans its bounding box.
type LinearGradient struct {
	Stops []Stop
	Angle float64
}

// Paint rasterizes the gradient by projecting each pixel onto the
// gradient line and interpolating between the surrounding stops.
func (g LinearGradient) Paint(dst *image.RGBA) {
	b := dst.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	cx := float64(b.Min.X) + w/2
	cy := float64(b.Min.Y) + h/2

	// Direction unit vector: 0deg points up, clockwise positive.
	rad := g.Angle * math.Pi / 180
	dx := math.Sin(rad)
	dy := -math.Cos(rad)

	// Half the projection of the bounding box onto the direction, so the
	// stop range exactly spans the canvas.
	half := (math.Abs(w*dx) + math.Abs(h*dy)) / 2
	if half == 0 {
		half = 1
	}

	stops := sortStops(g.Stops)
	length := 2 * half
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Signed distance from the gradient start plane.
			proj := (float64(x)+0.5-cx)*dx + (float64(y)+0.5-cy)*dy + half
			t := proj / length
			dst.SetRGBA(x, y, premultiply(colorAtOffset(stops, t)))
		}
	}
}

// RadialGradient radiates from the canvas center (first color) to the
// circle reaching the farthest corner (last color).
type RadialGradient struct {
	Stops []Stop
}

// Paint rasterizes the gradient as distance-from-center over the radius
// to the farthest corner.
func (g RadialGradient) Paint(dst *image.RGBA) {
	b := dst.Bounds()
	w := float64(b.Dx())
	h := float64(b.Dy())
	cx := float64(b.Min.X) + w/2
	cy := float64(b.Min.Y) + h/2
	maxRadius := math.Hypot(w/2, h/2)
	if maxRadius == 0 {
		maxRadius = 1
	}

	stops := sortStops(g.Stops)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			t := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / maxRadius
			dst.SetRGBA(x, y, premultiply(colorAtOffset(stops, t)))
		}
	}
}

// sortStops returns a copy of stops sorted by offset.
func sortStops(stops []Stop) []Stop {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at offset t.
// t outside [0,1] pads with the edge stop colors.
func colorAtOffset(stops []Stop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	local := (t - s1.Offset) / (s2.Offset - s1.Offset)
	return lerpColor(s1.Color, s2.Color, local)
}

// lerpColor interpolates channel-wise between two colors.
func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + t*(float64(b)-float64(a))))
	}
	return color.NRGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: lerp(c1.A, c2.A),
	}
}

// premultiply converts straight-alpha NRGBA into the premultiplied RGBA
// layout image.RGBA stores.
func premultiply(c color.NRGBA) color.RGBA {
	if c.A == 0xff {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	a := uint32(c.A)
	return color.RGBA{
		R: uint8((uint32(c.R)*a + 127) / 255),
		G: uint8((uint32(c.G)*a + 127) / 255),
		B: uint8((uint32(c.B)*a + 127) / 255),
		A: c.A,
	}
}
