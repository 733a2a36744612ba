// Package segment splits a multi-panel comic page into individual panel
// images. The pipeline is deterministic: border/gutter extraction,
// contour filtering, overlap suppression, and a validation pass that
// falls back to a fixed quadrant grid when detection comes up short.
package segment

import (
	"comic-splitter/pkg/geometry"
)

// Candidate is a panel candidate produced by contour extraction. The
// contour area (not the bounding-box area) ranks candidates during
// overlap suppression.
type Candidate struct {
	Box  geometry.Box
	Area float64 // Contour area in pixels
}

// Panel describes one exported panel.
type Panel struct {
	Index          int          // 1-based, in reading order
	Box            geometry.Box // Padded crop region in source coordinates
	Path           string       // Written file path; empty if the save failed
	OriginalWidth  int          // Crop dimensions before upscaling
	OriginalHeight int
	Width          int // Final output dimensions
	Height         int
	Caption        string
}

// Result holds the outcome of a split run.
type Result struct {
	Panels       []Panel
	UsedFallback bool // True when the fixed quadrant grid replaced detection
	Candidates   int  // Candidate count before overlap suppression
	OutputDir    string
}
