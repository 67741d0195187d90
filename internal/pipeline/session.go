package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/snap"
)

// Session serializes renders for one logical editing session: at most
// one render is authoritative at a time. Starting a new render cancels
// the in-flight one; a superseded render's result is discarded and never
// reaches the caller as either success or error.
type Session struct {
	Renderer *Renderer

	mu     sync.Mutex
	cancel context.CancelFunc
	gen    uint64
}

// NewSession creates a session around the given renderer.
func NewSession(r *Renderer) *Session {
	return &Session{Renderer: r}
}

// Render runs the pipeline for the latest request. ok is false when this
// render was superseded by a newer one before finishing; callers must
// then ignore the zero result. Cancellation is silent: it is never
// reported as a user-facing error.
func (s *Session) Render(ctx context.Context, img snap.SnapImage, settings snap.SnapSettings, opts snap.ExportOptions) (res snap.CaptureResult, ok bool) {
	s.mu.Lock()
	if s.cancel != nil {
		log.Debug().Msg("New render request supersedes in-flight render")
		s.cancel()
	}
	renderCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	defer cancel()

	res, err := s.Renderer.Render(renderCtx, img, settings, opts)

	s.mu.Lock()
	current := s.gen == gen
	if current {
		s.cancel = nil
	}
	s.mu.Unlock()

	if !current || errors.Is(err, snap.ErrRenderCancelled) {
		return snap.CaptureResult{}, false
	}
	if err != nil {
		// Renderer reserves the error return for cancellation; anything
		// else already came back inside the result.
		return snap.Failure(err), true
	}
	return res, true
}
