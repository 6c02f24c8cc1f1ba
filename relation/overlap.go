package relation

import (
	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/plane"
)

// Overlaps implements spec.md §4.4's brushes_overlap: for each plane of a,
// compute the accepted vertex set of b; if every vertex of b satisfies
// signed_distance(plane, v) >= -eps, that plane separates a and b and the
// brushes do not overlap. The test is repeated with roles exchanged.
// Touching (shared boundary, zero-volume intersection) returns false by
// construction of the strict ">= -eps" comparison. epsInside and
// epsDeterminant are forwarded to brush.VertexSet for the other brush's
// vertex enumeration.
func Overlaps(a, b []plane.Plane, eps, epsInside, epsDeterminant float64) bool {
	return !separated(a, b, eps, epsInside, epsDeterminant) && !separated(b, a, eps, epsInside, epsDeterminant)
}

func separated(self, other []plane.Plane, eps, epsInside, epsDeterminant float64) bool {
	otherVertices := brush.VertexSet(other, epsInside, epsDeterminant)
	if len(otherVertices) == 0 {
		return false
	}
	for _, p := range self {
		if p.Degenerate {
			continue
		}
		allOutsideOrOn := true
		for _, v := range otherVertices {
			if p.SignedDistance(v) < -eps {
				allOutsideOrOn = false
				break
			}
		}
		if allOutsideOrOn {
			return true
		}
	}
	return false
}
