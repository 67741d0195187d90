package capture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG writes a small PNG into dir and returns its path.
func writeTestPNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "screen capture.png", 64, 48)

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Width != 64 || img.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", img.Width, img.Height)
	}
	if img.Name != "screen capture" {
		t.Errorf("Name = %q, want extension stripped", img.Name)
	}
	if !strings.HasPrefix(img.ID, "snap-") {
		t.Errorf("ID = %q, want snap- prefix", img.ID)
	}
	if len(img.Data) == 0 {
		t.Error("Data is empty, want original encoded bytes")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("Load() error = nil, want error for missing file")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "shot.png", 20, 10)
	snapImg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	decoded, err := Decode(snapImg)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != snapImg.Width || b.Dy() != snapImg.Height {
		t.Errorf("decoded = %dx%d, want %dx%d", b.Dx(), b.Dy(), snapImg.Width, snapImg.Height)
	}
}

func TestDecodeBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		file string
	}{
		{name: "Empty data", data: nil, file: "x.png"},
		{name: "Garbage PNG", data: []byte("not an image"), file: "x.png"},
		{name: "Garbage unknown extension", data: []byte("not an image"), file: "x.bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBytes(tt.data, tt.file); err == nil {
				t.Error("DecodeBytes() error = nil, want error")
			}
		})
	}
}

func TestCaptureTimeFallsBackToModTime(t *testing.T) {
	path := writeTestPNG(t, t.TempDir(), "shot.png", 8, 8)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}

	// PNG without EXIF: the file's mod time is the capture time.
	got := CaptureTime(path)
	if !got.Equal(info.ModTime()) {
		t.Errorf("CaptureTime() = %v, want mod time %v", got, info.ModTime())
	}
}
