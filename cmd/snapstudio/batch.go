package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fpang/snapstudio/internal/capture"
	"github.com/fpang/snapstudio/internal/logging"
	"github.com/fpang/snapstudio/internal/pipeline"
	"github.com/fpang/snapstudio/internal/snap"
	"github.com/fpang/snapstudio/internal/writer"
)

var (
	batchInputFlag  string
	batchOutputFlag string
)

// batchRatios is the set of aspect presets rendered by the batch command,
// one variant per social platform shape.
var batchRatios = []snap.AspectRatio{
	snap.RatioAuto,
	snap.RatioSquare,
	snap.Ratio169,
	snap.Ratio916,
	snap.RatioPinterest,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Render one screenshot across all aspect presets into a zip",
	Long: `batch beautifies a single screenshot once per aspect-ratio preset
(auto, 1:1, 16:9, 9:16, pinterest) and bundles the results into a
zstd-compressed zip archive, ready to post to multiple platforms.

Examples:
  snapstudio batch -i screenshot.png -o variants.zip
  snapstudio batch -i shot.png --gradient aurora --padding 80`,
	Run: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputFlag, "input", "i", "", "Screenshot file to beautify")
	batchCmd.Flags().StringVarP(&batchOutputFlag, "output", "o", "", "Zip archive path (default: <input>-variants.zip)")
	batchCmd.Flags().StringVarP(&gradientFlag, "gradient", "g", "", "Gradient preset id")
	batchCmd.Flags().IntVarP(&paddingFlag, "padding", "p", 64, "Uniform padding in pixels")
	batchCmd.Flags().Float64VarP(&cornerRadiusFlag, "corner-radius", "r", 12, "Image corner radius in pixels")
	batchCmd.Flags().StringVarP(&formatFlag, "format", "f", "png", "Export format: png, jpeg, webp")
	batchCmd.Flags().IntVarP(&qualityFlag, "quality", "q", 0, "Encode quality 0-100 (jpeg/webp only)")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) {
	logging.Init()

	inputPath := batchInputFlag
	if inputPath == "" {
		inputPath = promptForScreenshot()
	}

	img, err := capture.Load(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("Failed to load screenshot")
	}

	format := snap.ExportFormat(formatFlag)
	if format.MIMEType() == "" {
		log.Fatal().Str("format", formatFlag).Msg("Unsupported export format")
	}

	outPath := batchOutputFlag
	if outPath == "" {
		outPath = img.Name + "-variants.zip"
	}

	settings := settingsFromFlags()
	opts := snap.ExportOptions{Format: format, Quality: qualityFlag, Scale: 1}

	renderer := &pipeline.Renderer{Decode: capture.Decode}
	entries := make([]writer.BundleEntry, 0, len(batchRatios))
	for _, ratio := range batchRatios {
		settings.AspectRatio = ratio
		res, err := renderer.Render(context.Background(), img, settings, opts)
		if err != nil {
			log.Fatal().Err(err).Str("ratio", string(ratio)).Msg("Render failed")
		}
		if !res.Success {
			log.Warn().Str("ratio", string(ratio)).Str("error", res.Error).Msg("Skipping variant")
			continue
		}
		entries = append(entries, writer.BundleEntry{
			Name:   fmt.Sprintf("%s-%s.%s", img.Name, ratioSlug(ratio), format),
			Result: res,
		})
	}

	if err := writer.WriteBundle(outPath, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to write bundle")
	}
	fmt.Printf("Wrote %d variants to %s\n", len(entries), outPath)
}

// ratioSlug turns an aspect preset into a filename-safe token.
func ratioSlug(r snap.AspectRatio) string {
	switch r {
	case snap.RatioAuto:
		return "auto"
	case snap.RatioSquare:
		return "square"
	case snap.Ratio43:
		return "4x3"
	case snap.Ratio32:
		return "3x2"
	case snap.Ratio169:
		return "16x9"
	case snap.Ratio916:
		return "9x16"
	default:
		return string(r)
	}
}
