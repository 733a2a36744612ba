package segment

import (
	"image"

	"gocv.io/x/gocv"
)

// BinarizeBorders converts a color page into a binary mask where 255
// marks probable panel borders and gutters. Adaptive mean thresholding
// handles both black ink borders and white gutters under the lighting
// gradients common in generated pages; the closing pass bridges small
// gaps so panel regions form closed contours.
// The caller owns the returned Mat.
func BinarizeBorders(src gocv.Mat, params Params) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()

	if src.Channels() == 1 {
		src.CopyTo(&gray)
	} else {
		gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)
	}

	binary := gocv.NewMat()
	gocv.AdaptiveThreshold(gray, &binary, 255,
		gocv.AdaptiveThresholdMean, gocv.ThresholdBinaryInv,
		params.AdaptiveBlockSize, params.AdaptiveC)

	kernel := gocv.GetStructuringElement(gocv.MorphRect,
		image.Point{X: params.CloseKernelSize, Y: params.CloseKernelSize})
	defer kernel.Close()

	for i := 0; i < params.CloseIterations; i++ {
		gocv.MorphologyEx(binary, &binary, gocv.MorphClose, kernel)
	}

	return binary
}
