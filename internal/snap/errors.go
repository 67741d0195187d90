// Package snap defines the screenshot data model shared by every
// pipeline stage: the captured image, the decoration settings snapshot,
// export options, and the terminal capture result.
package snap

import "errors"

// Pipeline error kinds. Stages wrap these with fmt.Errorf("...: %w", ...)
// so callers can discriminate with errors.Is while keeping context.
var (
	// ErrInvalidPadding indicates a resolved padding value below zero or a
	// padded layout that leaves no room for the image.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrInvalidBackground indicates a gradient reference that resolves to
	// no known preset and no usable custom gradient.
	ErrInvalidBackground = errors.New("invalid background")

	// ErrUnsupportedFormat indicates an export format outside png/jpeg/webp.
	// Defensive: the CLI only accepts the closed enumeration.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrEncodingFailure indicates the encoder backend rejected the raster,
	// e.g. a zero-sized canvas.
	ErrEncodingFailure = errors.New("encoding failure")

	// ErrRenderCancelled indicates a render superseded by a newer request.
	// Never surfaced to users; the session layer drops it silently.
	ErrRenderCancelled = errors.New("render cancelled")

	// ErrDestinationFailure indicates the clipboard or file writer failed.
	// Generated by the writer collaborators, not by the pipeline itself.
	ErrDestinationFailure = errors.New("destination failure")
)
