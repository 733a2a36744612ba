package segment

import (
	"image/color"
	"path/filepath"

	"gocv.io/x/gocv"

	"comic-splitter/pkg/geometry"
)

// writeDebugImages saves the three intermediate visualizations: the
// closed binary mask, the pre-suppression candidate boxes, and the
// final panel boxes. Failures here are log-only; debug output never
// blocks the split.
func (s *Splitter) writeDebugImages(src, mask gocv.Mat, candidates []Candidate, final []geometry.Box, outDir string) {
	write := func(name string, m gocv.Mat) {
		path := filepath.Join(outDir, name)
		if ok := gocv.IMWrite(path, m); !ok {
			s.Log.Error().Str("path", path).Msg("debug image write failed")
		}
	}

	write("debug_01_binary_closed.png", mask)

	green := color.RGBA{0, 255, 0, 255}
	potential := src.Clone()
	defer potential.Close()
	for _, c := range candidates {
		gocv.Rectangle(&potential, c.Box.ToRect(), green, 2)
	}
	write("debug_02_potential_boxes.png", potential)

	red := color.RGBA{255, 0, 0, 255}
	panels := src.Clone()
	defer panels.Close()
	for _, b := range final {
		gocv.Rectangle(&panels, b.ToRect(), red, 4)
	}
	write("debug_03_final_panels.png", panels)
}
