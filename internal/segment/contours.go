package segment

import (
	"gocv.io/x/gocv"

	"comic-splitter/pkg/geometry"
)

// ExtractCandidates finds panel candidates in the binary border mask
// and filters them down to plausible rectangles. Panels are the
// connected regions of the mask's complement: contouring the border
// pixels directly would fuse every panel sharing a gutter line into one
// lattice-shaped blob, while the complement keeps each panel interior
// as its own region whether borders are drawn per panel or shared.
// Candidates are returned in contour traversal order; no ordering is
// guaranteed.
func ExtractCandidates(mask gocv.Mat, params Params) []Candidate {
	imgArea := float64(mask.Rows() * mask.Cols())
	if imgArea == 0 {
		return nil
	}

	interior := gocv.NewMat()
	defer interior.Close()
	gocv.BitwiseNot(mask, &interior)

	contours := gocv.FindContours(interior, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	var candidates []Candidate
	for i := 0; i < contours.Size(); i++ {
		contour := contours.At(i)

		area := gocv.ContourArea(contour)
		if area < params.MinAreaRatio*imgArea || area > params.MaxAreaRatio*imgArea {
			continue
		}

		box := geometry.FromRect(gocv.BoundingRect(contour))
		aspect := box.AspectRatio()
		if aspect < params.MinAspectRatio || aspect > params.MaxAspectRatio {
			continue
		}

		if solidity(contour, area) < params.MinSolidity {
			continue
		}

		candidates = append(candidates, Candidate{Box: box, Area: area})
	}

	return candidates
}

// solidity returns contour_area/convex_hull_area, a rectangularity
// measure. Highly concave shapes (speech balloon tails, figure
// silhouettes) score low; panel borders score near 1.
func solidity(contour gocv.PointVector, area float64) float64 {
	hull := gocv.NewMat()
	defer hull.Close()
	gocv.ConvexHull(contour, &hull, true, true)

	hullPoints := gocv.NewPointVectorFromMat(hull)
	defer hullPoints.Close()

	hullArea := gocv.ContourArea(hullPoints)
	if hullArea <= 0 {
		return 0
	}
	return area / hullArea
}
