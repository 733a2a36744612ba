package segment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"comic-splitter/internal/enhance"
	"comic-splitter/internal/ocr"
	"comic-splitter/pkg/geometry"
)

// Splitter runs the full panel segmentation pipeline. The zero value is
// not usable; construct with New and override fields before the first
// Split call.
type Splitter struct {
	Params    Params
	Upscaler  enhance.Upscaler // Defaults to the identity upscaler
	Captioner ocr.Captioner    // Defaults to the no-op captioner
	Log       zerolog.Logger

	// WriteDebug emits the three intermediate visualizations next to
	// the panel files.
	WriteDebug bool
	// WriteSheet emits a contact sheet of the final panels.
	WriteSheet bool
}

// New creates a Splitter with the given parameters and no optional
// capabilities.
func New(params Params) *Splitter {
	return &Splitter{
		Params:    params,
		Upscaler:  enhance.Identity{},
		Captioner: ocr.None{},
		Log:       zerolog.Nop(),
	}
}

// SplitFile loads the image at path and splits it into panel files
// under outDir. An empty outDir selects a sibling directory named
// "{stem}_segments". An unreadable source image is the only fatal
// error; every later shortfall degrades with a log entry.
func (s *Splitter) SplitFile(path, outDir string) (*Result, error) {
	src := gocv.IMRead(path, gocv.IMReadColor)
	if src.Empty() {
		return nil, fmt.Errorf("cannot read image %s", path)
	}
	defer src.Close()

	if outDir == "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		outDir = filepath.Join(filepath.Dir(path), stem+"_segments")
	}

	return s.Split(src, outDir)
}

// Split segments a loaded page and writes the panel files to outDir,
// creating it if needed. Files from a previous run are overwritten.
func (s *Splitter) Split(src gocv.Mat, outDir string) (*Result, error) {
	if src.Empty() {
		return nil, fmt.Errorf("empty source image")
	}
	width, height := src.Cols(), src.Rows()

	mask := BinarizeBorders(src, s.Params)
	defer mask.Close()

	candidates := ExtractCandidates(mask, s.Params)
	s.Log.Debug().Int("candidates", len(candidates)).Msg("contour extraction done")

	merged := SuppressOverlaps(candidates, s.Params.NMSIoUThreshold)

	boxes := make([]geometry.Box, len(merged))
	for i, c := range merged {
		boxes[i] = c.Box
	}

	final, usedFallback := ValidatePanels(boxes, width, height, s.Params)
	if usedFallback {
		s.Log.Warn().
			Int("surviving_boxes", len(boxes)).
			Int("min_panels", s.Params.MinPanels).
			Msg("too few panels detected, using fixed quadrant grid")
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	if s.WriteDebug {
		s.writeDebugImages(src, mask, candidates, final, outDir)
	}

	panels := s.exportPanels(src, final, outDir)

	if s.WriteSheet {
		if err := WriteContactSheet(src, panels, filepath.Join(outDir, "contact_sheet.png")); err != nil {
			s.Log.Error().Err(err).Msg("contact sheet failed")
		}
	}

	s.Log.Info().
		Int("panels", len(panels)).
		Bool("fallback_grid", usedFallback).
		Str("dir", outDir).
		Msg("page split complete")

	return &Result{
		Panels:       panels,
		UsedFallback: usedFallback,
		Candidates:   len(candidates),
		OutputDir:    outDir,
	}, nil
}
