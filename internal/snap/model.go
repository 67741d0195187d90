package snap

import "github.com/google/uuid"

// SnapImage is the raw captured bitmap handed to the pipeline.
// Immutable once captured; one per capture session. Data holds the
// original encoded bytes so the capture can be re-rendered losslessly
// under different settings.
type SnapImage struct {
	ID     string `json:"id"`
	Data   []byte `json:"-"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name,omitempty"`
}

// NewImageID returns a fresh capture id.
func NewImageID() string {
	return "snap-" + uuid.NewString()
}

// CaptureResult is the terminal output record of one render.
// Exactly one of the success-path fields (ImageData/Width/Height) or
// Error is populated.
type CaptureResult struct {
	Success   bool   `json:"success"`
	ImageData string `json:"imageData,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Failure builds an error-path CaptureResult from err.
func Failure(err error) CaptureResult {
	return CaptureResult{Success: false, Error: err.Error()}
}
