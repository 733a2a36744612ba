package segment

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"comic-splitter/pkg/geometry"
)

// ValidatePanels removes boxes that look like truncated panels at the
// image bottom, substitutes the fixed quadrant grid when detection
// yields too few panels, and orders the survivors for reading.
//
// The truncation heuristic targets a quirk of generated pages: the
// bottom margin is often slightly taller than the others, leaving a
// last panel clipped mid-row. A box touching the bottom margin that is
// much shorter than the tallest panel is assumed clipped. Whether this
// holds for scanned print comics is unverified.
func ValidatePanels(boxes []geometry.Box, imgWidth, imgHeight int, params Params) (final []geometry.Box, usedFallback bool) {
	kept := trimTruncatedBottom(boxes, imgHeight, params)

	if len(kept) < params.MinPanels {
		// Detection is untrustworthy below the floor; a fixed grid is
		// wrong but usable, and usable always wins here.
		kept = QuadrantGrid(imgWidth, imgHeight)
		usedFallback = true
	}

	sortReadingOrder(kept, params.RowTolerance)
	return kept, usedFallback
}

func trimTruncatedBottom(boxes []geometry.Box, imgHeight int, params Params) []geometry.Box {
	if len(boxes) == 0 {
		return nil
	}

	heights := make([]float64, len(boxes))
	for i, b := range boxes {
		heights[i] = float64(b.Height())
	}
	maxHeight := floats.Max(heights)

	kept := make([]geometry.Box, 0, len(boxes))
	for _, b := range boxes {
		touchesBottom := b.Y2 >= imgHeight-params.BottomMarginPx
		tooShort := float64(b.Height()) < params.MinHeightRatio*maxHeight
		if touchesBottom && tooShort {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// QuadrantGrid returns the four equal quadrants of a width x height
// image, the fallback layout when contour detection fails.
func QuadrantGrid(width, height int) []geometry.Box {
	halfW, halfH := width/2, height/2
	return []geometry.Box{
		geometry.NewBox(0, 0, halfW, halfH),
		geometry.NewBox(halfW, 0, width, halfH),
		geometry.NewBox(0, halfH, halfW, height),
		geometry.NewBox(halfW, halfH, width, height),
	}
}

// sortReadingOrder sorts boxes top-to-bottom, then left-to-right within
// a row.
func sortReadingOrder(boxes []geometry.Box, rowTolerance int) {
	sort.SliceStable(boxes, func(i, j int) bool {
		return boxes[i].ReadingOrderLess(boxes[j], rowTolerance)
	})
}
