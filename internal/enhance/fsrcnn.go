package enhance

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// FSRCNN runs the FSRCNN super-resolution network on the luma channel
// of a panel. gocv exposes the OpenCV DNN module but not dnn_superres,
// so the standard luma scheme is spelled out here: the network enlarges
// Y, chroma is enlarged bicubically, and the three planes are merged
// back to BGR.
type FSRCNN struct {
	net   gocv.Net
	scale int
}

// NewFSRCNN loads a TensorFlow FSRCNN graph from weightsPath. scale
// must match the factor the weights were trained for.
func NewFSRCNN(weightsPath string, scale int) (*FSRCNN, error) {
	if scale < 2 {
		return nil, fmt.Errorf("invalid scale factor %d", scale)
	}
	if _, err := os.Stat(weightsPath); err != nil {
		return nil, fmt.Errorf("weights not found: %w", err)
	}

	net := gocv.ReadNet(weightsPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load network from %s", weightsPath)
	}

	return &FSRCNN{net: net, scale: scale}, nil
}

// Scale returns the linear scale factor.
func (f *FSRCNN) Scale() int { return f.scale }

// Close releases the network.
func (f *FSRCNN) Close() error {
	return f.net.Close()
}

// Upscale enlarges src by the model's scale factor. src must be a
// 3-channel BGR image. OpenCV raises native exceptions as panics
// through cgo; they are converted to errors so one bad panel cannot
// abort a batch.
func (f *FSRCNN) Upscale(src gocv.Mat) (result gocv.Mat, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = gocv.NewMat()
			err = fmt.Errorf("super-resolution inference failed: %v", r)
		}
	}()

	if src.Empty() {
		return gocv.NewMat(), fmt.Errorf("empty input")
	}
	if src.Channels() != 3 {
		return gocv.NewMat(), fmt.Errorf("expected 3-channel BGR input, got %d channels", src.Channels())
	}

	ycrcb := gocv.NewMat()
	defer ycrcb.Close()
	gocv.CvtColor(src, &ycrcb, gocv.ColorBGRToYCrCb)

	planes := gocv.Split(ycrcb)
	defer func() {
		for i := range planes {
			planes[i].Close()
		}
	}()

	// Network input: normalized luma, NCHW [1,1,H,W]
	blob := gocv.BlobFromImage(planes[0], 1.0/255.0,
		image.Point{X: src.Cols(), Y: src.Rows()},
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	f.net.SetInput(blob, "")
	out := f.net.Forward("")
	defer out.Close()

	lumaF := gocv.GetBlobChannel(out, 0, 0)
	defer lumaF.Close()

	luma := gocv.NewMat()
	defer luma.Close()
	lumaF.ConvertToWithParams(&luma, gocv.MatTypeCV8U, 255, 0)

	outSize := image.Point{X: luma.Cols(), Y: luma.Rows()}

	cr := gocv.NewMat()
	defer cr.Close()
	gocv.Resize(planes[1], &cr, outSize, 0, 0, gocv.InterpolationCubic)

	cb := gocv.NewMat()
	defer cb.Close()
	gocv.Resize(planes[2], &cb, outSize, 0, 0, gocv.InterpolationCubic)

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.Merge([]gocv.Mat{luma, cr, cb}, &merged)

	result = gocv.NewMat()
	gocv.CvtColor(merged, &result, gocv.ColorYCrCbToBGR)
	return result, nil
}
