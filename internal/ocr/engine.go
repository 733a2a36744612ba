package ocr

import (
	"fmt"
	"image"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// Engine recognizes balloon text using Tesseract.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates a Tesseract-backed engine. Balloon lettering is
// prose, so dictionary-based correction stays enabled, unlike OCR of
// part numbers or codes.
func NewEngine() (*Engine, error) {
	client := gosseract.NewClient()

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set OCR language: %w", err)
	}

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// PanelText performs OCR over a whole panel crop.
func (e *Engine) PanelText(panel gocv.Mat) (string, error) {
	if panel.Empty() {
		return "", fmt.Errorf("empty panel image")
	}

	processed := preprocessForOCR(panel)
	defer processed.Close()

	buf, err := gocv.IMEncode(gocv.PNGFileExt, processed)
	if err != nil {
		return "", fmt.Errorf("failed to encode panel: %w", err)
	}
	defer buf.Close()

	// Balloon text comes in short blocks scattered around the panel;
	// automatic segmentation handles that better than single-block mode.
	if err := e.client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return "", fmt.Errorf("failed to set PSM: %w", err)
	}

	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return CleanText(text), nil
}

// CleanText collapses OCR output into a single whitespace-normalized
// line.
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// preprocessForOCR prepares a panel crop for recognition: upscale small
// crops, grayscale, then Otsu binarization for a clean text/background
// separation. Balloon text is dark-on-light already, so no polarity
// check is needed.
func preprocessForOCR(panel gocv.Mat) gocv.Mat {
	h, w := panel.Rows(), panel.Cols()

	var scaled gocv.Mat
	if minDim := min(h, w); minDim < 300 {
		scale := 300.0 / float64(minDim)
		scaled = gocv.NewMat()
		gocv.Resize(panel, &scaled, image.Point{}, scale, scale, gocv.InterpolationCubic)
	} else {
		scaled = panel.Clone()
	}
	defer scaled.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	if scaled.Channels() == 1 {
		scaled.CopyTo(&gray)
	} else {
		gocv.CvtColor(scaled, &gray, gocv.ColorBGRToGray)
	}

	binary := gocv.NewMat()
	gocv.Threshold(gray, &binary, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
	return binary
}
