// Package enhance provides optional super-resolution upscaling for
// cropped panels. Upscaling is a capability, not a requirement: when
// the model cannot be loaded the identity upscaler takes its place and
// the pipeline runs unenhanced.
package enhance

import (
	"github.com/rs/zerolog"
	"gocv.io/x/gocv"
)

// DefaultWeightsPath is where the pretrained FSRCNN model is expected,
// relative to the working directory.
const DefaultWeightsPath = "models/weights/FSRCNN-small_x4.pb"

// DefaultScale is the linear upscale factor of the bundled model.
const DefaultScale = 4

// Upscaler enlarges a cropped panel image.
type Upscaler interface {
	// Upscale returns an enlarged copy of src. The caller owns the
	// returned Mat.
	Upscale(src gocv.Mat) (gocv.Mat, error)
	// Scale returns the linear scale factor in each dimension.
	Scale() int
	Close() error
}

// Identity is the no-op upscaler used when no model is available.
type Identity struct{}

// Upscale returns an unmodified clone of src.
func (Identity) Upscale(src gocv.Mat) (gocv.Mat, error) {
	return src.Clone(), nil
}

// Scale returns 1.
func (Identity) Scale() int { return 1 }

// Close is a no-op.
func (Identity) Close() error { return nil }

// Open loads the FSRCNN model at weightsPath. If loading fails the
// error is logged once and the Identity upscaler is returned; the
// caller never needs to distinguish the two cases. Model loading is
// attempted exactly once per Open call, matching the once-at-startup
// policy.
func Open(weightsPath string, scale int, log zerolog.Logger) Upscaler {
	up, err := NewFSRCNN(weightsPath, scale)
	if err != nil {
		log.Warn().
			Str("weights", weightsPath).
			Err(err).
			Msg("super-resolution unavailable, panels will not be upscaled")
		return Identity{}
	}
	log.Debug().
		Str("weights", weightsPath).
		Int("scale", scale).
		Msg("super-resolution model loaded")
	return up
}
