package segment

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestBinarizeBordersMarksInkLines(t *testing.T) {
	page := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0),
		200, 200, gocv.MatTypeCV8UC3)
	defer page.Close()
	gocv.Rectangle(&page, image.Rect(95, 0, 105, 200), color.RGBA{0, 0, 0, 255}, -1)

	mask := BinarizeBorders(page, DefaultParams())
	defer mask.Close()

	require.Equal(t, 1, mask.Channels())
	require.Equal(t, 200, mask.Rows())
	require.Equal(t, 200, mask.Cols())

	// The dark line is marked, far-away paper is not.
	require.EqualValues(t, 255, mask.GetUCharAt(100, 100))
	require.EqualValues(t, 0, mask.GetUCharAt(100, 30))
}

func TestBinarizeBordersAcceptsGrayscaleInput(t *testing.T) {
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0),
		100, 100, gocv.MatTypeCV8UC1)
	defer gray.Close()

	mask := BinarizeBorders(gray, DefaultParams())
	defer mask.Close()
	require.Equal(t, 1, mask.Channels())
	require.EqualValues(t, 0, gocv.CountNonZero(mask), "uniform input produces an empty mask")
}
