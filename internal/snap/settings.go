package snap

import "fmt"

// BackgroundType discriminates the background fill family.
type BackgroundType string

// Background types.
const (
	BackgroundGradient    BackgroundType = "gradient"
	BackgroundSolid       BackgroundType = "solid"
	BackgroundTransparent BackgroundType = "transparent"
)

// GradientType discriminates linear from radial gradients.
// Angle is only meaningful for linear gradients.
type GradientType string

// Gradient types.
const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// CustomGradient is a user-supplied gradient: an ordered color sequence
// (first to last stop) plus an angle for the linear case.
type CustomGradient struct {
	Colors []string     `json:"colors"`
	Angle  float64      `json:"angle"`
	Type   GradientType `json:"type"`
}

// GradientPreset is a named built-in gradient. Presets are linear;
// the registry in the gradient package owns the fixed set.
type GradientPreset struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
	Angle  float64  `json:"angle"`
}

// BackgroundSettings selects the canvas fill. When Type is gradient,
// exactly one of GradientID or Custom is meaningful; with both absent
// the gradient engine falls back to its default preset. Color is the
// hex fill for the solid case.
type BackgroundSettings struct {
	Type       BackgroundType  `json:"type"`
	GradientID string          `json:"gradientId,omitempty"`
	Custom     *CustomGradient `json:"customGradient,omitempty"`
	Color      string          `json:"color,omitempty"`
}

// PaddingMode selects whether Uniform or the four directional fields
// are authoritative.
type PaddingMode string

// Padding modes.
const (
	PaddingUniform PaddingMode = "uniform"
	PaddingCustom  PaddingMode = "custom"
)

// PaddingSettings describes the space between the image and the canvas
// edge, in pixels.
type PaddingSettings struct {
	Mode    PaddingMode `json:"mode"`
	Uniform int         `json:"uniform"`
	Top     int         `json:"top"`
	Right   int         `json:"right"`
	Bottom  int         `json:"bottom"`
	Left    int         `json:"left"`
}

// Resolve returns the effective per-side padding. Negative input is
// rejected here, before any layout math runs.
func (p PaddingSettings) Resolve() (top, right, bottom, left int, err error) {
	if p.Mode == PaddingUniform {
		top, right, bottom, left = p.Uniform, p.Uniform, p.Uniform, p.Uniform
	} else {
		top, right, bottom, left = p.Top, p.Right, p.Bottom, p.Left
	}
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return 0, 0, 0, 0, fmt.Errorf("%w: resolved padding (%d, %d, %d, %d) has negative side",
			ErrInvalidPadding, top, right, bottom, left)
	}
	return top, right, bottom, left, nil
}

// ShadowSettings describes the drop shadow behind the image.
// Enabled gates all other fields; a disabled shadow skips the stage.
type ShadowSettings struct {
	Enabled bool    `json:"enabled"`
	Blur    float64 `json:"blur"`
	Spread  float64 `json:"spread"`
	OffsetX int     `json:"offsetX"`
	OffsetY int     `json:"offsetY"`
	Color   string  `json:"color"`
	Opacity int     `json:"opacity"`
}

// AspectRatio is a closed enumeration of output shapes. RatioAuto
// derives the canvas from the content, forcing no ratio.
type AspectRatio string

// Aspect ratio presets. Social presets alias their platform's
// recommended post shape.
const (
	RatioAuto      AspectRatio = "auto"
	RatioSquare    AspectRatio = "1:1"
	Ratio43        AspectRatio = "4:3"
	Ratio32        AspectRatio = "3:2"
	Ratio169       AspectRatio = "16:9"
	Ratio916       AspectRatio = "9:16"
	RatioTwitter   AspectRatio = "twitter"
	RatioInstagram AspectRatio = "instagram"
	RatioPinterest AspectRatio = "pinterest"
)

// SnapSettings is the full decoration configuration, treated as an
// immutable snapshot per render. Changing any field produces a new
// render request, never an in-place mutation of a prior result.
type SnapSettings struct {
	Background   BackgroundSettings `json:"background"`
	Padding      PaddingSettings    `json:"padding"`
	CornerRadius float64            `json:"cornerRadius"`
	Shadow       ShadowSettings     `json:"shadow"`
	AspectRatio  AspectRatio        `json:"aspectRatio"`
	AutoCenter   bool               `json:"autoCenter"`
}

// DefaultSettings returns the decoration applied to a fresh capture.
func DefaultSettings() SnapSettings {
	return SnapSettings{
		Background:   BackgroundSettings{Type: BackgroundGradient},
		Padding:      PaddingSettings{Mode: PaddingUniform, Uniform: 64},
		CornerRadius: 12,
		Shadow: ShadowSettings{
			Enabled: true,
			Blur:    24,
			Spread:  0,
			OffsetY: 8,
			Color:   "#000000",
			Opacity: 35,
		},
		AspectRatio: RatioAuto,
		AutoCenter:  true,
	}
}

// ExportFormat is the encoded output format.
type ExportFormat string

// Export formats.
const (
	FormatPNG  ExportFormat = "png"
	FormatJPEG ExportFormat = "jpeg"
	FormatWebP ExportFormat = "webp"
)

// MIMEType returns the MIME type for the format, or "" when unknown.
func (f ExportFormat) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return ""
	}
}

// Destination selects which channel receives the encoded bytes.
// The encoder ignores it; only the writer layer routes on it.
type Destination string

// Destinations.
const (
	DestClipboard Destination = "clipboard"
	DestFile      Destination = "file"
	DestBoth      Destination = "both"
)

// IncludesFile reports whether the destination requires a filename.
func (d Destination) IncludesFile() bool {
	return d == DestFile || d == DestBoth
}

// IncludesClipboard reports whether the destination pushes to the clipboard.
func (d Destination) IncludesClipboard() bool {
	return d == DestClipboard || d == DestBoth
}

// ExportOptions controls the final encode. Quality is meaningful only
// for jpeg/webp; Scale multiplies the output pixel dimensions.
type ExportOptions struct {
	Format      ExportFormat `json:"format"`
	Quality     int          `json:"quality"`
	Scale       float64      `json:"scale"`
	Destination Destination  `json:"destination"`
	Filename    string       `json:"filename,omitempty"`
}
