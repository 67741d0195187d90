package writer

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fpang/snapstudio/internal/encoder"
	"github.com/fpang/snapstudio/internal/snap"
)

func testResult() snap.CaptureResult {
	return snap.CaptureResult{
		Success:   true,
		ImageData: encoder.DataURL("image/png", []byte("fake png bytes")),
		Width:     10,
		Height:    10,
	}
}

func TestFileWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "shot.png")

	if err := (FileWriter{}).Write(testResult(), path); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("file contents = %q, want original bytes", data)
	}
}

func TestFileWriterErrors(t *testing.T) {
	tests := []struct {
		name     string
		res      snap.CaptureResult
		filename string
	}{
		{
			name:     "Failed result refused",
			res:      snap.CaptureResult{Success: false, Error: "boom"},
			filename: "x.png",
		},
		{
			name:     "Missing filename",
			res:      testResult(),
			filename: "",
		},
		{
			name:     "Malformed data URL",
			res:      snap.CaptureResult{Success: true, ImageData: "not a data url"},
			filename: "x.png",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := tt.filename
			if filename != "" {
				filename = filepath.Join(t.TempDir(), filename)
			}
			err := (FileWriter{}).Write(tt.res, filename)
			if !errors.Is(err, snap.ErrDestinationFailure) {
				t.Errorf("Write() error = %v, want ErrDestinationFailure", err)
			}
		})
	}
}

func TestWriteBundle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.zip")
	entries := []BundleEntry{
		{Name: "shot-16x9.png", Result: testResult()},
		{Name: "shot-1x1.png", Result: testResult()},
		{Name: "broken.png", Result: snap.CaptureResult{Success: false, Error: "boom"}},
	}

	if err := WriteBundle(path, entries); err != nil {
		t.Fatalf("WriteBundle() error = %v", err)
	}

	r, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("OpenReader() error = %v", err)
	}
	defer r.Close()

	// Failed renders are skipped, successful ones kept in order.
	if len(r.File) != 2 {
		t.Fatalf("bundle has %d entries, want 2", len(r.File))
	}
	wantNames := []string{"shot-16x9.png", "shot-1x1.png"}
	for i, f := range r.File {
		if f.Name != wantNames[i] {
			t.Errorf("entry %d = %q, want %q", i, f.Name, wantNames[i])
		}
		if f.Method != zipMethodZstd {
			t.Errorf("entry %q method = %d, want zstd (%d)", f.Name, f.Method, zipMethodZstd)
		}
	}
}

func TestWriteBundleAllFailed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.zip")
	err := WriteBundle(path, []BundleEntry{
		{Name: "a.png", Result: snap.CaptureResult{Success: false, Error: "boom"}},
	})
	if !errors.Is(err, snap.ErrDestinationFailure) {
		t.Errorf("WriteBundle() error = %v, want ErrDestinationFailure", err)
	}
}
