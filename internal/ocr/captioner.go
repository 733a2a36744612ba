// Package ocr provides optional balloon-text extraction for panel
// captions. Like super-resolution, text extraction is a capability
// with an always-available no-op stand-in: a missing or broken
// Tesseract installation must not keep the splitter from running.
package ocr

import (
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// Captioner extracts readable text from a cropped panel.
type Captioner interface {
	// PanelText returns the text found in the panel, cleaned of
	// whitespace noise. An empty string means nothing legible.
	PanelText(panel gocv.Mat) (string, error)
	Close() error
}

// None is the no-op captioner.
type None struct{}

// PanelText always returns an empty string.
func (None) PanelText(gocv.Mat) (string, error) { return "", nil }

// Close is a no-op.
func (None) Close() error { return nil }

// Open creates a Tesseract-backed captioner, degrading to None with a
// logged warning when the OCR stack is unavailable.
func Open(log zerolog.Logger) Captioner {
	engine, err := NewEngine()
	if err != nil {
		log.Warn().Err(err).Msg("OCR unavailable, captions will be geometric only")
		return None{}
	}
	return engine
}
