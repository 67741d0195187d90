package shadow

import (
	"testing"

	"github.com/fpang/snapstudio/internal/layout"
	"github.com/fpang/snapstudio/internal/snap"
)

func testLayout() layout.Layout {
	return layout.Layout{
		CanvasWidth:  200,
		CanvasHeight: 160,
		ImageX:       50,
		ImageY:       40,
		ImageWidth:   100,
		ImageHeight:  80,
	}
}

func TestComputeDisabledShadow(t *testing.T) {
	if got := Compute(testLayout(), snap.ShadowSettings{Enabled: false, Blur: 20, Opacity: 80}, 0); got != nil {
		t.Errorf("Compute(disabled) = %v, want nil", got)
	}
}

func TestComputeLayerCoversCanvas(t *testing.T) {
	l := testLayout()
	got := Compute(l, snap.ShadowSettings{
		Enabled: true,
		Blur:    10,
		Color:   "#000000",
		Opacity: 50,
	}, 0)
	if got == nil {
		t.Fatal("Compute() = nil, want layer")
	}
	b := got.Image.Bounds()
	if b.Dx() != l.CanvasWidth || b.Dy() != l.CanvasHeight {
		t.Errorf("layer bounds = %dx%d, want %dx%d", b.Dx(), b.Dy(), l.CanvasWidth, l.CanvasHeight)
	}
}

func TestComputeShadowUnderImage(t *testing.T) {
	l := testLayout()
	got := Compute(l, snap.ShadowSettings{
		Enabled: true,
		Color:   "#000000",
		Opacity: 100,
	}, 0)

	// With no blur, no spread, no offset the shadow exactly covers the
	// draw box.
	center := got.Image.RGBAAt(l.ImageX+l.ImageWidth/2, l.ImageY+l.ImageHeight/2)
	if center.A != 255 {
		t.Errorf("alpha inside draw box = %d, want 255", center.A)
	}
	outside := got.Image.RGBAAt(5, 5)
	if outside.A != 0 {
		t.Errorf("alpha far outside draw box = %d, want 0", outside.A)
	}
}

func TestComputeOffsetShiftsShadow(t *testing.T) {
	l := testLayout()
	s := snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 100, OffsetX: 30, OffsetY: 0}
	got := Compute(l, s, 0)

	// A pixel just left of the draw box is uncovered once the shadow
	// shifts right; a pixel just right of the box becomes covered.
	leftEdge := got.Image.RGBAAt(l.ImageX+2, l.ImageY+l.ImageHeight/2)
	if leftEdge.A != 0 {
		t.Errorf("alpha at unshifted left edge = %d, want 0", leftEdge.A)
	}
	right := got.Image.RGBAAt(l.ImageX+l.ImageWidth+10, l.ImageY+l.ImageHeight/2)
	if right.A != 255 {
		t.Errorf("alpha right of draw box = %d, want 255", right.A)
	}
}

func TestComputeSpreadExpandsShadow(t *testing.T) {
	l := testLayout()
	noSpread := Compute(l, snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 100}, 0)
	spread := Compute(l, snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 100, Spread: 8}, 0)

	x, y := l.ImageX-4, l.ImageY+l.ImageHeight/2
	if a := noSpread.Image.RGBAAt(x, y).A; a != 0 {
		t.Errorf("no-spread alpha outside box = %d, want 0", a)
	}
	if a := spread.Image.RGBAAt(x, y).A; a != 255 {
		t.Errorf("spread alpha outside box = %d, want 255", a)
	}
}

func TestComputeOpacityScalesAlpha(t *testing.T) {
	l := testLayout()
	half := Compute(l, snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 50}, 0)
	full := Compute(l, snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 100}, 0)

	x, y := l.ImageX+l.ImageWidth/2, l.ImageY+l.ImageHeight/2
	ha := half.Image.RGBAAt(x, y).A
	fa := full.Image.RGBAAt(x, y).A
	if fa != 255 {
		t.Fatalf("full opacity alpha = %d, want 255", fa)
	}
	if ha < 126 || ha > 129 {
		t.Errorf("half opacity alpha = %d, want ~128", ha)
	}
}

func TestComputeBlurSoftensEdge(t *testing.T) {
	l := testLayout()
	got := Compute(l, snap.ShadowSettings{Enabled: true, Color: "#000000", Opacity: 100, Blur: 16}, 0)

	y := l.ImageY + l.ImageHeight/2
	// The hard edge is gone: some alpha bleeds outside the box and the
	// pixel on the old boundary is no longer fully opaque.
	inside := got.Image.RGBAAt(l.ImageX+l.ImageWidth/2, y).A
	boundary := got.Image.RGBAAt(l.ImageX, y).A
	outside := got.Image.RGBAAt(l.ImageX-8, y).A

	if inside != 255 {
		t.Errorf("deep-inside alpha = %d, want 255", inside)
	}
	if boundary == 255 || boundary == 0 {
		t.Errorf("boundary alpha = %d, want partial", boundary)
	}
	if outside == 0 {
		t.Errorf("outside alpha = %d, want bleed > 0", outside)
	}
}
