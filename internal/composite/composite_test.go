package composite

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/fpang/snapstudio/internal/gradient"
	"github.com/fpang/snapstudio/internal/layout"
	"github.com/fpang/snapstudio/internal/shadow"
	"github.com/fpang/snapstudio/internal/snap"
)

// solidImage builds a uniformly colored source image.
func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestComposeWhiteFrameScenario(t *testing.T) {
	// 800x600 image, uniform 64 padding, auto ratio, no shadow, solid
	// white background: a flat white frame around the untouched image.
	src := solidImage(800, 600, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	l, err := layout.Compute(
		snap.SnapImage{Width: 800, Height: 600},
		snap.SnapSettings{
			Padding:     snap.PaddingSettings{Mode: snap.PaddingUniform, Uniform: 64},
			AspectRatio: snap.RatioAuto,
		},
	)
	if err != nil {
		t.Fatalf("layout.Compute() error = %v", err)
	}

	got := Compose(src, l, gradient.Solid{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, nil, 0)

	b := got.Bounds()
	if b.Dx() != 928 || b.Dy() != 728 {
		t.Fatalf("canvas = %dx%d, want 928x728", b.Dx(), b.Dy())
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for _, p := range []image.Point{{X: 10, Y: 10}, {X: 927, Y: 727}, {X: 464, Y: 30}} {
		if c := got.RGBAAt(p.X, p.Y); c != white {
			t.Errorf("frame pixel %v = %v, want white", p, c)
		}
	}
	if c := got.RGBAAt(464, 364); c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("image center = %v, want source color", c)
	}
	// Image lands exactly at the padding offset.
	if c := got.RGBAAt(64, 64); c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("image origin = %v, want source color", c)
	}
	if c := got.RGBAAt(63, 64); c != white {
		t.Errorf("pixel left of image = %v, want white", c)
	}
}

func TestComposeCornerRadiusClamp(t *testing.T) {
	// An absurd radius on a 200x100 image clamps to 50: a pill. The
	// extreme corners of the draw box show pure background.
	src := solidImage(200, 100, color.RGBA{R: 200, A: 255})
	l := layout.Layout{
		CanvasWidth: 220, CanvasHeight: 120,
		ImageX: 10, ImageY: 10,
		ImageWidth: 200, ImageHeight: 100,
	}
	bgc := color.RGBA{G: 255, A: 255}
	got := Compose(src, l, gradient.Solid{Color: color.NRGBA{G: 255, A: 255}}, nil, 999)

	if c := got.RGBAAt(10, 10); c != bgc {
		t.Errorf("draw-box corner = %v, want background (clipped away)", c)
	}
	// The pill's round end: center of left edge is inside the shape.
	if c := got.RGBAAt(11, 60); c != (color.RGBA{R: 200, A: 255}) {
		t.Errorf("left edge midpoint = %v, want source color", c)
	}
	if c := got.RGBAAt(110, 60); c != (color.RGBA{R: 200, A: 255}) {
		t.Errorf("pill center = %v, want source color", c)
	}
}

func TestComposeShadowBehindImage(t *testing.T) {
	src := solidImage(100, 80, color.RGBA{B: 255, A: 255})
	l := layout.Layout{
		CanvasWidth: 200, CanvasHeight: 160,
		ImageX: 50, ImageY: 40,
		ImageWidth: 100, ImageHeight: 80,
	}
	sh := shadow.Compute(l, snap.ShadowSettings{
		Enabled: true,
		Color:   "#000000",
		Opacity: 100,
		OffsetX: 20,
	}, 0)

	got := Compose(src, l, gradient.Solid{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}, sh, 0)

	// The image covers the shadow where they overlap.
	if c := got.RGBAAt(100, 80); c != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("image center = %v, want source color", c)
	}
	// Right of the image the offset shadow shows over the background.
	if c := got.RGBAAt(160, 80); c != (color.RGBA{A: 255}) {
		t.Errorf("shadow area = %v, want black", c)
	}
	// Far corner is untouched background.
	if c := got.RGBAAt(5, 5); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("far corner = %v, want white", c)
	}
}

func TestComposeScalesDownIntoDrawBox(t *testing.T) {
	src := solidImage(400, 400, color.RGBA{R: 50, G: 50, B: 50, A: 255})
	l := layout.Layout{
		CanvasWidth: 120, CanvasHeight: 120,
		ImageX: 10, ImageY: 10,
		ImageWidth: 100, ImageHeight: 100,
	}
	got := Compose(src, l, gradient.Transparent{}, nil, 0)

	if c := got.RGBAAt(60, 60); c != (color.RGBA{R: 50, G: 50, B: 50, A: 255}) {
		t.Errorf("scaled image center = %v, want source color", c)
	}
	if c := got.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("outside draw box alpha = %d, want 0 (transparent fill)", c.A)
	}
}

func TestComposeDeterminism(t *testing.T) {
	src := solidImage(120, 90, color.RGBA{R: 90, G: 120, B: 150, A: 255})
	l := layout.Layout{
		CanvasWidth: 180, CanvasHeight: 150,
		ImageX: 30, ImageY: 30,
		ImageWidth: 120, ImageHeight: 90,
	}
	fill := gradient.LinearGradient{
		Stops: gradient.EvenStops([]color.NRGBA{
			{R: 0xff, A: 0xff},
			{B: 0xff, A: 0xff},
		}),
		Angle: 45,
	}
	sh := shadow.Compute(l, snap.ShadowSettings{Enabled: true, Blur: 12, Color: "#000000", Opacity: 40, OffsetY: 6}, 8)

	a := Compose(src, l, fill, sh, 8)
	b := Compose(src, l, fill, sh, 8)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Compose() produced different rasters for identical inputs")
	}
}
