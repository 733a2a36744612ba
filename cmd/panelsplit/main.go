// Command panelsplit splits a multi-panel comic page into individual
// panel images.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"comic-splitter/internal/enhance"
	"comic-splitter/internal/ocr"
	"comic-splitter/internal/segment"
)

func main() {
	imagePath := flag.String("image", "", "Path to comic page (PNG, JPEG, or TIFF)")
	outDir := flag.String("out", "", "Output directory (default: {stem}_segments next to the image)")
	debug := flag.Bool("debug", false, "Write intermediate debug visualizations")
	sheet := flag.Bool("sheet", false, "Write a contact sheet of the final panels")
	noUpscale := flag.Bool("no-upscale", false, "Skip super-resolution even if weights are present")
	weights := flag.String("weights", enhance.DefaultWeightsPath, "FSRCNN weights file")
	scale := flag.Int("scale", enhance.DefaultScale, "Super-resolution scale factor")
	withOCR := flag.Bool("ocr", false, "Extract balloon text into captions (requires Tesseract)")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Usage: panelsplit -image <path> [-out dir] [-debug] [-sheet] [-no-upscale] [-ocr]")
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	params := segment.DefaultParams()
	fmt.Printf("Segmentation parameters:\n")
	fmt.Printf("  Adaptive threshold: block %d, C %.0f\n", params.AdaptiveBlockSize, params.AdaptiveC)
	fmt.Printf("  Area ratio: %.2f - %.2f\n", params.MinAreaRatio, params.MaxAreaRatio)
	fmt.Printf("  Aspect ratio: %.1f - %.1f\n", params.MinAspectRatio, params.MaxAspectRatio)
	fmt.Printf("  Min solidity: %.2f\n", params.MinSolidity)
	fmt.Printf("  NMS IoU threshold: %.2f\n", params.NMSIoUThreshold)
	fmt.Printf("  Panel floor: %d (quadrant grid below)\n", params.MinPanels)

	splitter := segment.New(params)
	splitter.Log = log
	splitter.WriteDebug = *debug
	splitter.WriteSheet = *sheet

	if !*noUpscale {
		splitter.Upscaler = enhance.Open(*weights, *scale, log)
		defer splitter.Upscaler.Close()
	}
	if *withOCR {
		splitter.Captioner = ocr.Open(log)
		defer splitter.Captioner.Close()
	}

	result, err := splitter.SplitFile(*imagePath, *outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Split failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%d panels written to %s", len(result.Panels), result.OutputDir)
	if result.UsedFallback {
		fmt.Printf(" (fixed quadrant grid)")
	}
	fmt.Printf("\n\n%-6s %-24s %12s %12s  %s\n", "Panel", "Box", "Original", "Output", "Caption")
	for _, p := range result.Panels {
		box := fmt.Sprintf("(%d,%d)-(%d,%d)", p.Box.X1, p.Box.Y1, p.Box.X2, p.Box.Y2)
		fmt.Printf("%-6d %-24s %12s %12s  %s\n",
			p.Index, box,
			fmt.Sprintf("%dx%d", p.OriginalWidth, p.OriginalHeight),
			fmt.Sprintf("%dx%d", p.Width, p.Height),
			p.Caption)
	}
}
