package segment

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

var white = color.RGBA{255, 255, 255, 255}

// borderMask returns an all-black single-channel mask of the given size.
// Border pixels are painted white by the callers.
func borderMask(t *testing.T, w, h int) gocv.Mat {
	t.Helper()
	mask := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC1)
	t.Cleanup(func() { mask.Close() })
	return mask
}

func TestExtractCandidatesFromGutterLattice(t *testing.T) {
	// A 10px-wide cross splits the mask into four cells, the shape a
	// shared-gutter page produces after thresholding.
	mask := borderMask(t, 200, 200)
	gocv.Rectangle(&mask, image.Rect(95, 0, 105, 200), white, -1)
	gocv.Rectangle(&mask, image.Rect(0, 95, 200, 105), white, -1)

	candidates := ExtractCandidates(mask, DefaultParams())
	require.Len(t, candidates, 4)

	for _, c := range candidates {
		require.InDelta(t, 95, c.Box.Width(), 2)
		require.InDelta(t, 95, c.Box.Height(), 2)
		require.Greater(t, c.Area, 0.0)
	}
}

func TestExtractCandidatesRejectsNoiseSpecks(t *testing.T) {
	// One real cell plus a speck well under the 1% area floor.
	mask := borderMask(t, 200, 200)
	gocv.Rectangle(&mask, image.Rect(0, 0, 200, 200), white, -1)
	gocv.Rectangle(&mask, image.Rect(40, 40, 160, 160), color.RGBA{}, -1) // 120x120 cell
	gocv.Rectangle(&mask, image.Rect(10, 10, 15, 15), color.RGBA{}, -1)   // 5x5 speck

	candidates := ExtractCandidates(mask, DefaultParams())
	require.Len(t, candidates, 1)
	require.InDelta(t, 120, candidates[0].Box.Width(), 2)
}

func TestExtractCandidatesRejectsFullImageRegion(t *testing.T) {
	// All-black mask: the complement is one region covering the whole
	// image, above the 95% area ceiling.
	mask := borderMask(t, 200, 200)
	require.Empty(t, ExtractCandidates(mask, DefaultParams()))
}

func TestExtractCandidatesRejectsSlivers(t *testing.T) {
	// A 190x20 region has aspect ratio 9.5, outside [0.2, 5.0].
	mask := borderMask(t, 200, 200)
	gocv.Rectangle(&mask, image.Rect(0, 0, 200, 200), white, -1)
	gocv.Rectangle(&mask, image.Rect(5, 90, 195, 110), color.RGBA{}, -1)

	require.Empty(t, ExtractCandidates(mask, DefaultParams()))
}

func TestExtractCandidatesRejectsConcaveRegions(t *testing.T) {
	// An L-shaped region: solidity ~0.7, well under the 0.9 floor.
	mask := borderMask(t, 200, 200)
	gocv.Rectangle(&mask, image.Rect(0, 0, 200, 200), white, -1)
	gocv.Rectangle(&mask, image.Rect(40, 40, 60, 160), color.RGBA{}, -1)
	gocv.Rectangle(&mask, image.Rect(40, 140, 160, 160), color.RGBA{}, -1)

	require.Empty(t, ExtractCandidates(mask, DefaultParams()))
}

func TestExtractCandidatesEmptyMask(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()
	require.Empty(t, ExtractCandidates(empty, DefaultParams()))
}
