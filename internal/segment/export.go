package segment

import (
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"

	"comic-splitter/pkg/geometry"
)

// exportPanels crops, upscales, captions, and saves each validated box
// in reading order. A single panel's upscale, OCR, or save failure is
// logged and the batch continues; the failed panel is dropped from the
// result rather than aborting the remaining saves.
func (s *Splitter) exportPanels(src gocv.Mat, boxes []geometry.Box, outDir string) []Panel {
	width, height := src.Cols(), src.Rows()

	panels := make([]Panel, 0, len(boxes))
	for i, box := range boxes {
		index := i + 1
		padded := box.Pad(s.Params.PadPx, width, height)

		panel, err := s.exportOne(src, padded, index, outDir)
		if err != nil {
			s.Log.Error().Int("panel", index).Err(err).Msg("panel export failed")
			continue
		}
		panels = append(panels, panel)
	}
	return panels
}

func (s *Splitter) exportOne(src gocv.Mat, box geometry.Box, index int, outDir string) (Panel, error) {
	region := src.Region(box.ToRect())
	crop := region.Clone()
	region.Close()
	defer crop.Close()

	origW, origH := crop.Cols(), crop.Rows()

	out, err := s.Upscaler.Upscale(crop)
	if err != nil {
		// Enhancement is optional; keep the raw crop.
		s.Log.Warn().Int("panel", index).Err(err).Msg("upscale failed, saving original crop")
		out.Close()
		out = crop.Clone()
	}
	defer out.Close()

	path := filepath.Join(outDir, fmt.Sprintf("segment_%02d.png", index))
	if ok := gocv.IMWrite(path, out); !ok {
		return Panel{}, fmt.Errorf("cannot write %s", path)
	}

	panel := Panel{
		Index:          index,
		Box:            box,
		Path:           path,
		OriginalWidth:  origW,
		OriginalHeight: origH,
		Width:          out.Cols(),
		Height:         out.Rows(),
	}
	panel.Caption = s.caption(panel, crop)
	return panel, nil
}

// caption builds the panel's caption string: index and dimensions,
// plus any balloon text the captioner can read out of the crop.
func (s *Splitter) caption(p Panel, crop gocv.Mat) string {
	caption := fmt.Sprintf("Panel %d (%dx%d", p.Index, p.OriginalWidth, p.OriginalHeight)
	if p.Width != p.OriginalWidth || p.Height != p.OriginalHeight {
		caption += fmt.Sprintf(", upscaled to %dx%d", p.Width, p.Height)
	}
	caption += ")"

	text, err := s.Captioner.PanelText(crop)
	if err != nil {
		s.Log.Warn().Int("panel", p.Index).Err(err).Msg("balloon text extraction failed")
		return caption
	}
	if text != "" {
		caption += ": " + text
	}
	return caption
}
