// Package writer holds the destination collaborators that push encoded
// capture results to a channel: filesystem, clipboard, or a ZIP bundle.
// Writers report their own success or failure independently of the
// encoder; the pipeline never sees destination errors.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/encoder"
	"github.com/fpang/snapstudio/internal/snap"
)

// Writer pushes an encoded result to one destination channel.
type Writer interface {
	Write(res snap.CaptureResult, filename string) error
}

// FileWriter writes the encoded bytes to the filesystem.
type FileWriter struct{}

// Write decodes the result's data URL and writes the raw bytes to
// filename, creating parent directories as needed.
func (FileWriter) Write(res snap.CaptureResult, filename string) error {
	if !res.Success {
		return fmt.Errorf("%w: refusing to write failed result", snap.ErrDestinationFailure)
	}
	if filename == "" {
		return fmt.Errorf("%w: file destination requires a filename", snap.ErrDestinationFailure)
	}

	_, data, err := encoder.DecodeDataURL(res.ImageData)
	if err != nil {
		return fmt.Errorf("%w: %v", snap.ErrDestinationFailure, err)
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create output directory: %v", snap.ErrDestinationFailure, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", snap.ErrDestinationFailure, err)
	}

	log.Info().
		Str("path", filename).
		Int("bytes", len(data)).
		Int("width", res.Width).
		Int("height", res.Height).
		Msg("Capture written to file")

	return nil
}
