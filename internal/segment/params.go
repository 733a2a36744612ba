package segment

// Params controls the panel segmentation behavior. All thresholds are
// empirically tuned for synthetically generated comic pages with clean
// gutters; treat them as the first suspects when applying the splitter
// to scanned print material.
type Params struct {
	// Adaptive threshold settings for border/gutter extraction
	AdaptiveBlockSize int     // Neighborhood size for the local mean; must be odd
	AdaptiveC         float32 // Offset subtracted from the local mean

	// Morphological closing applied to the binary mask
	CloseKernelSize int // Structuring element side length
	CloseIterations int // Closing passes; bridges gaps in border lines

	// Contour filters
	MinAreaRatio   float64 // Minimum contour area as a fraction of image area
	MaxAreaRatio   float64 // Maximum contour area as a fraction of image area
	MinAspectRatio float64 // Minimum bounding-box width/height
	MaxAspectRatio float64 // Maximum bounding-box width/height
	MinSolidity    float64 // Minimum contour_area/convex_hull_area (rectangularity)

	// Overlap suppression
	NMSIoUThreshold float64 // Boxes overlapping a kept box beyond this are dropped

	// Truncated-panel trim at the image bottom. A panel touching the
	// bottom margin that is much shorter than the tallest panel is
	// assumed to be cut off by the generator's inconsistent bottom edge.
	BottomMarginPx int     // "Touching" distance from the image bottom
	MinHeightRatio float64 // Minimum height relative to the tallest panel

	// Output shaping
	MinPanels    int // Below this count the fixed quadrant grid takes over
	PadPx        int // Crop padding on every side, clamped to image bounds
	RowTolerance int // Top-edge tolerance when grouping panels into rows
}

// DefaultParams returns the default segmentation parameters.
func DefaultParams() Params {
	return Params{
		AdaptiveBlockSize: 21,
		AdaptiveC:         8,

		CloseKernelSize: 5,
		CloseIterations: 2,

		MinAreaRatio:   0.01, // Reject noise specks
		MaxAreaRatio:   0.95, // Reject near-full-image artifacts
		MinAspectRatio: 0.2,  // Reject degenerate slivers
		MaxAspectRatio: 5.0,
		MinSolidity:    0.9, // Panels are rectangular; concave blobs are not panels

		NMSIoUThreshold: 0.3,

		BottomMarginPx: 10,
		MinHeightRatio: 0.8,

		MinPanels:    4,
		PadPx:        3,
		RowTolerance: 10,
	}
}

// WithMinPanels returns a copy of params with a custom panel-count floor.
func (p Params) WithMinPanels(n int) Params {
	p.MinPanels = n
	return p
}

// WithNMSThreshold returns a copy of params with a custom IoU threshold.
func (p Params) WithNMSThreshold(iou float64) Params {
	p.NMSIoUThreshold = iou
	return p
}

// WithAreaRatios returns a copy of params with custom contour area bounds.
func (p Params) WithAreaRatios(minRatio, maxRatio float64) Params {
	p.MinAreaRatio = minRatio
	p.MaxAreaRatio = maxRatio
	return p
}
