package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"comic-splitter/pkg/geometry"
)

func cand(x1, y1, x2, y2 int, area float64) Candidate {
	return Candidate{Box: geometry.NewBox(x1, y1, x2, y2), Area: area}
}

func TestSuppressOverlapsEmpty(t *testing.T) {
	require.Empty(t, SuppressOverlaps(nil, 0.3))
	require.Len(t, SuppressOverlaps([]Candidate{cand(0, 0, 10, 10, 100)}, 0.3), 1)
}

func TestSuppressOverlapsKeepsLargerOfDuplicates(t *testing.T) {
	// Nested boxes for the same panel: inner ink border inside the
	// outer gutter edge. IoU = 0.81 > 0.3.
	outer := cand(0, 0, 100, 100, 10000)
	inner := cand(5, 5, 95, 95, 8100)

	kept := SuppressOverlaps([]Candidate{inner, outer}, 0.3)
	require.Len(t, kept, 1)
	require.Equal(t, outer.Box, kept[0].Box, "larger-area box must win")
}

func TestSuppressOverlapsRetainsDisjointBoxes(t *testing.T) {
	a := cand(0, 0, 100, 100, 10000)
	b := cand(110, 0, 210, 100, 10000)
	c := cand(0, 110, 100, 210, 9000)

	kept := SuppressOverlaps([]Candidate{a, b, c}, 0.3)
	require.Len(t, kept, 3)
}

func TestSuppressOverlapsBelowThresholdKeepsBoth(t *testing.T) {
	// IoU exactly at the threshold is not suppressed; only strictly
	// greater overlap counts as a duplicate.
	a := cand(0, 0, 100, 100, 10000)
	b := cand(70, 0, 170, 100, 9999) // IoU = 3000/17000 ~ 0.176

	kept := SuppressOverlaps([]Candidate{a, b}, 0.3)
	require.Len(t, kept, 2)
}

func TestSuppressOverlapsChain(t *testing.T) {
	// b overlaps a heavily and is suppressed; c overlaps b but not a,
	// so c survives: suppression is against kept boxes only.
	a := cand(0, 0, 100, 100, 10000)
	b := cand(20, 0, 120, 100, 9000)  // IoU(a,b) = 8000/12000 = 0.67
	c := cand(105, 0, 205, 100, 8000) // IoU(a,c) = 0, IoU(b,c) = 0.08

	kept := SuppressOverlaps([]Candidate{c, b, a}, 0.3)
	require.Len(t, kept, 2)
	require.Equal(t, a.Box, kept[0].Box)
	require.Equal(t, c.Box, kept[1].Box)
}

func TestSuppressOverlapsDoesNotMutateInput(t *testing.T) {
	in := []Candidate{cand(0, 0, 10, 10, 50), cand(0, 0, 100, 100, 10000)}
	SuppressOverlaps(in, 0.3)
	require.Equal(t, cand(0, 0, 10, 10, 50), in[0], "input order must be preserved")
}
