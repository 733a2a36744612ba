package segment

import "sort"

// SuppressOverlaps performs greedy non-maximum suppression on panel
// candidates. Contour area stands in for detection confidence: true
// panels are large well-formed shapes, while nested duplicates (inner
// ink border inside the gutter edge) and noise contours are smaller.
// For each kept box, every remaining box whose IoU with it exceeds the
// threshold is treated as a duplicate of the same physical panel and
// dropped.
func SuppressOverlaps(candidates []Candidate, iouThreshold float64) []Candidate {
	if len(candidates) <= 1 {
		return candidates
	}

	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Area > ranked[j].Area
	})

	kept := make([]Candidate, 0, len(ranked))
	suppressed := make([]bool, len(ranked))

	for i := range ranked {
		if suppressed[i] {
			continue
		}
		kept = append(kept, ranked[i])
		for j := i + 1; j < len(ranked); j++ {
			if suppressed[j] {
				continue
			}
			if ranked[i].Box.IoU(ranked[j].Box) > iouThreshold {
				suppressed[j] = true
			}
		}
	}

	return kept
}
