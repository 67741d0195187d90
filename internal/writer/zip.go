package writer

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"

	"github.com/fpang/snapstudio/internal/encoder"
	"github.com/fpang/snapstudio/internal/snap"
)

// zipMethodZstd is the ZIP compression method ID for Zstandard
// (APPNOTE 6.3.7). Registered in init() at zstd level 12, the highest
// the Go library supports; batch exports trade CPU for smaller bundles.
const zipMethodZstd uint16 = 93

func init() {
	zip.RegisterCompressor(zipMethodZstd, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(12)))
	})
}

// BundleEntry is one named render inside a batch bundle.
type BundleEntry struct {
	Name   string
	Result snap.CaptureResult
}

// WriteBundle writes all entries into a single zstd-compressed ZIP at
// path. Entries with failed results are skipped with a warning rather
// than aborting the whole bundle.
func WriteBundle(path string, entries []BundleEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create bundle: %v", snap.ErrDestinationFailure, err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	written := 0

	for _, e := range entries {
		if !e.Result.Success {
			log.Warn().Str("entry", e.Name).Str("error", e.Result.Error).Msg("Skipping failed render in bundle")
			continue
		}

		_, data, err := encoder.DecodeDataURL(e.Result.ImageData)
		if err != nil {
			log.Warn().Err(err).Str("entry", e.Name).Msg("Skipping undecodable render in bundle")
			continue
		}

		header := &zip.FileHeader{
			Name:     e.Name,
			Method:   zipMethodZstd,
			Modified: time.Now(),
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("%w: create bundle entry %s: %v", snap.ErrDestinationFailure, e.Name, err)
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			return fmt.Errorf("%w: write bundle entry %s: %v", snap.ErrDestinationFailure, e.Name, err)
		}
		written++
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: close bundle: %v", snap.ErrDestinationFailure, err)
	}
	if written == 0 {
		return fmt.Errorf("%w: no renders to bundle", snap.ErrDestinationFailure)
	}

	log.Info().
		Str("path", path).
		Int("entries", written).
		Msg("Batch bundle written")

	return nil
}
