package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/snapstudio/internal/capture"
	"github.com/fpang/snapstudio/internal/gradient"
	"github.com/fpang/snapstudio/internal/logging"
	"github.com/fpang/snapstudio/internal/pipeline"
	"github.com/fpang/snapstudio/internal/snap"
	"github.com/fpang/snapstudio/internal/writer"
)

// CLI flags
var (
	inputFlag        string
	outputFlag       string
	formatFlag       string
	qualityFlag      int
	scaleFlag        float64
	destFlag         string
	gradientFlag     string
	bgColorFlag      string
	transparentFlag  bool
	paddingFlag      int
	cornerRadiusFlag float64
	aspectFlag       string
	noCenterFlag     bool
	noShadowFlag     bool
	shadowBlurFlag   float64
	shadowColorFlag  string
	shadowOpacity    int
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "snapstudio",
	Short: "Beautify screenshots with backgrounds, padding, and shadows",
	Long: `snapstudio decorates a raw screenshot with a background fill, padding,
a drop shadow, and rounded corners, fits it into a target aspect ratio,
and exports the result to a file or the clipboard.

Examples:
  snapstudio -i screenshot.png -o framed.png
  snapstudio -i shot.png --gradient sunset --padding 80 --corner-radius 16
  snapstudio -i shot.png --aspect twitter --format jpeg --quality 85
  snapstudio -i shot.png --dest clipboard
  snapstudio  # Interactive mode - opens a file picker`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Screenshot file to beautify (PNG, JPEG, or WebP)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output path (default: <input>-framed.<format>)")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "png", "Export format: png, jpeg, webp")
	rootCmd.Flags().IntVarP(&qualityFlag, "quality", "q", 0, "Encode quality 0-100 (jpeg/webp only, 0 = default)")
	rootCmd.Flags().Float64VarP(&scaleFlag, "scale", "s", 1, "Output scale multiplier")
	rootCmd.Flags().StringVar(&destFlag, "dest", "file", "Destination: clipboard, file, both")
	rootCmd.Flags().StringVarP(&gradientFlag, "gradient", "g", "", "Gradient preset id ("+strings.Join(gradient.PresetIDs(), ", ")+")")
	rootCmd.Flags().StringVar(&bgColorFlag, "bg-color", "", "Solid background color, e.g. #ffffff")
	rootCmd.Flags().BoolVar(&transparentFlag, "transparent", false, "Transparent background")
	rootCmd.Flags().IntVarP(&paddingFlag, "padding", "p", 64, "Uniform padding in pixels")
	rootCmd.Flags().Float64VarP(&cornerRadiusFlag, "corner-radius", "r", 12, "Image corner radius in pixels")
	rootCmd.Flags().StringVarP(&aspectFlag, "aspect", "a", "auto", "Aspect ratio: auto, 1:1, 4:3, 3:2, 16:9, 9:16, twitter, instagram, pinterest")
	rootCmd.Flags().BoolVar(&noCenterFlag, "no-center", false, "Place the image at the padded origin instead of centering")
	rootCmd.Flags().BoolVar(&noShadowFlag, "no-shadow", false, "Disable the drop shadow")
	rootCmd.Flags().Float64Var(&shadowBlurFlag, "shadow-blur", 24, "Shadow blur radius in pixels")
	rootCmd.Flags().StringVar(&shadowColorFlag, "shadow-color", "#000000", "Shadow color")
	rootCmd.Flags().IntVar(&shadowOpacity, "shadow-opacity", 35, "Shadow opacity 0-100")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	logging.Init()

	inputPath := inputFlag
	if inputPath == "" {
		inputPath = promptForScreenshot()
	}

	img, err := capture.Load(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("Failed to load screenshot")
	}

	settings := settingsFromFlags()
	opts, err := exportOptionsFromFlags(img, inputPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid export options")
	}

	sess := pipeline.NewSession(&pipeline.Renderer{Decode: capture.Decode})
	res, ok := sess.Render(context.Background(), img, settings, opts)
	if !ok {
		// Single-shot CLI renders are never superseded.
		log.Fatal().Msg("Render was dropped unexpectedly")
	}
	if !res.Success {
		log.Fatal().Str("error", res.Error).Msg("Render failed")
	}

	if err := dispatch(res, opts); err != nil {
		log.Fatal().Err(err).Msg("Failed to deliver result")
	}
}

// promptForScreenshot opens a native file picker when no input path was
// given on the command line.
func promptForScreenshot() string {
	selected, err := zenity.SelectFile(
		zenity.Title("Select a screenshot"),
		zenity.FileFilters{
			{Name: "Images", Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.webp"}, CaseFold: true},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			log.Info().Msg("File selection cancelled")
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("File picker failed")
	}
	return selected
}

// settingsFromFlags assembles the immutable settings snapshot for this
// render from the CLI flags.
func settingsFromFlags() snap.SnapSettings {
	settings := snap.DefaultSettings()

	switch {
	case transparentFlag:
		settings.Background = snap.BackgroundSettings{Type: snap.BackgroundTransparent}
	case bgColorFlag != "":
		settings.Background = snap.BackgroundSettings{Type: snap.BackgroundSolid, Color: bgColorFlag}
	default:
		settings.Background = snap.BackgroundSettings{Type: snap.BackgroundGradient, GradientID: gradientFlag}
	}

	settings.Padding = snap.PaddingSettings{Mode: snap.PaddingUniform, Uniform: paddingFlag}
	settings.CornerRadius = cornerRadiusFlag
	settings.AspectRatio = snap.AspectRatio(aspectFlag)
	settings.AutoCenter = !noCenterFlag

	settings.Shadow.Enabled = !noShadowFlag
	settings.Shadow.Blur = shadowBlurFlag
	settings.Shadow.Color = shadowColorFlag
	settings.Shadow.Opacity = shadowOpacity

	return settings
}

// exportOptionsFromFlags builds the export options, deriving a default
// output filename from the capture name and timestamp when needed.
func exportOptionsFromFlags(img snap.SnapImage, inputPath string) (snap.ExportOptions, error) {
	format := snap.ExportFormat(formatFlag)
	if format.MIMEType() == "" {
		return snap.ExportOptions{}, fmt.Errorf("%w: %q", snap.ErrUnsupportedFormat, formatFlag)
	}

	dest := snap.Destination(destFlag)
	switch dest {
	case snap.DestClipboard, snap.DestFile, snap.DestBoth:
	default:
		return snap.ExportOptions{}, fmt.Errorf("unknown destination %q", destFlag)
	}

	filename := outputFlag
	if filename == "" && dest.IncludesFile() {
		stamp := capture.CaptureTime(inputPath).Format("20060102-150405")
		filename = fmt.Sprintf("%s-framed-%s.%s", img.Name, stamp, format)
	}

	return snap.ExportOptions{
		Format:      format,
		Quality:     qualityFlag,
		Scale:       scaleFlag,
		Destination: dest,
		Filename:    filename,
	}, nil
}

// dispatch routes the encoded result to its destination writers.
// Destination failures are merged into one user-visible error here; the
// pipeline itself never sees them.
func dispatch(res snap.CaptureResult, opts snap.ExportOptions) error {
	var errs []string

	if opts.Destination.IncludesFile() {
		if err := (writer.FileWriter{}).Write(res, opts.Filename); err != nil {
			errs = append(errs, err.Error())
		} else {
			fmt.Printf("Saved %s (%dx%d)\n", opts.Filename, res.Width, res.Height)
		}
	}
	if opts.Destination.IncludesClipboard() {
		if err := (writer.ClipboardWriter{}).Write(res, ""); err != nil {
			errs = append(errs, err.Error())
		} else {
			fmt.Println("Copied to clipboard")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
