// Package pipeline sequences Layout, Shadow, Gradient, Composite, and
// Encode for one render request and manages cancellation and supersede
// semantics at the pipeline level.
package pipeline

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/composite"
	"github.com/fpang/snapstudio/internal/encoder"
	"github.com/fpang/snapstudio/internal/gradient"
	"github.com/fpang/snapstudio/internal/layout"
	"github.com/fpang/snapstudio/internal/shadow"
	"github.com/fpang/snapstudio/internal/snap"
)

// State tracks where a render is in the pipeline.
type State int

// Pipeline states. Error is reachable from any non-terminal state.
const (
	StateIdle State = iota
	StateComposing
	StateEncoding
	StateDone
	StateError
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComposing:
		return "composing"
	case StateEncoding:
		return "encoding"
	case StateDone:
		return "done"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Renderer runs the full compose-and-encode pipeline for one request.
// Every invocation is pure and stateless: immutable inputs in, a new
// value out, so concurrent renders need no coordination.
type Renderer struct {
	// Decode converts a SnapImage's stored bytes into pixels. Wired to
	// the capture package in production; tests substitute fixed images.
	Decode func(img snap.SnapImage) (image.Image, error)

	// afterStage, when set, runs after every stage boundary check.
	// Test seam for exercising cancellation between stages.
	afterStage func(State)
}

// Render runs one pipeline pass. Validation and encoding failures come
// back as an error-path CaptureResult; a cancelled context comes back as
// a snap.ErrRenderCancelled error so the session layer can drop the
// render without surfacing anything to the user.
func (r *Renderer) Render(ctx context.Context, img snap.SnapImage, settings snap.SnapSettings, opts snap.ExportOptions) (snap.CaptureResult, error) {
	start := time.Now()
	state := StateComposing

	fail := func(err error) (snap.CaptureResult, error) {
		log.Error().Err(err).Str("state", state.String()).Str("image", img.ID).Msg("Render failed")
		return snap.Failure(err), nil
	}

	src, err := r.Decode(img)
	if err != nil {
		return fail(fmt.Errorf("decode source: %w", err))
	}

	lay, err := layout.Compute(img, settings)
	if err != nil {
		return fail(err)
	}
	if err := r.checkpoint(ctx, state); err != nil {
		return snap.CaptureResult{}, err
	}

	// Gradient resolve and shadow render are pure and independent; run
	// them side by side.
	type fillResult struct {
		fill gradient.Fill
		err  error
	}
	fillCh := make(chan fillResult, 1)
	go func() {
		f, ferr := gradient.Resolve(settings.Background)
		fillCh <- fillResult{fill: f, err: ferr}
	}()

	sh := shadow.Compute(lay, settings.Shadow, settings.CornerRadius)

	fr := <-fillCh
	if fr.err != nil {
		return fail(fr.err)
	}
	if err := r.checkpoint(ctx, state); err != nil {
		return snap.CaptureResult{}, err
	}

	raster := composite.Compose(src, lay, fr.fill, sh, settings.CornerRadius)

	state = StateEncoding
	if err := r.checkpoint(ctx, state); err != nil {
		return snap.CaptureResult{}, err
	}

	res, err := encoder.Encode(raster, opts)
	if err != nil {
		return fail(err)
	}

	log.Debug().
		Str("image", img.ID).
		Int("width", res.Width).
		Int("height", res.Height).
		Dur("elapsed", time.Since(start)).
		Msg("Render complete")

	return res, nil
}

// checkpoint implements cooperative cancellation between stages. The
// compositing math itself never sees the context.
func (r *Renderer) checkpoint(ctx context.Context, s State) error {
	if err := ctx.Err(); err != nil {
		log.Debug().Str("state", s.String()).Msg("Render cancelled between stages")
		return fmt.Errorf("%w: %v", snap.ErrRenderCancelled, err)
	}
	if r.afterStage != nil {
		r.afterStage(s)
	}
	return nil
}
