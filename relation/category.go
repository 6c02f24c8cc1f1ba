// Package relation implements pairwise brush relations: the
// separating-axis-like overlap test and the point/polygon categorisation
// lattice used by the chain evaluator (spec.md §4.4).
package relation

import (
	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Category is the four-valued PolygonCategory lattice of spec.md §3.
type Category int

const (
	Inside Category = iota
	Aligned
	ReverseAligned
	Outside
)

func (c Category) String() string {
	switch c {
	case Inside:
		return "Inside"
	case Aligned:
		return "Aligned"
	case ReverseAligned:
		return "ReverseAligned"
	case Outside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// CategorizePoint classifies point p against a brush's plane set,
// per spec.md §4.4: Outside if any signed distance exceeds eps; Aligned /
// ReverseAligned if it lies on some face (within eps) depending on normal
// agreement with normalPoly; Inside otherwise.
func CategorizePoint(p mgl64.Vec3, planes []plane.Plane, normalPoly mgl64.Vec3, eps float64) Category {
	onFaceIdx := -1
	for i, pl := range planes {
		if pl.Degenerate {
			continue
		}
		d := pl.SignedDistance(p)
		if d > eps {
			return Outside
		}
		if d >= -eps && onFaceIdx == -1 {
			onFaceIdx = i
		}
	}
	if onFaceIdx == -1 {
		return Inside
	}
	if normalPoly.Dot(planes[onFaceIdx].Normal()) > 0 {
		return Aligned
	}
	return ReverseAligned
}

// CategorizePolygon delegates to CategorizePoint on q's centroid (not any
// vertex — edge/corner vertices of one brush can coincidentally lie on a
// face of another, which would make vertex-based majority rules
// misclassify; spec.md §4.4 and §9's tiebreaker note).
//
// Precondition: q has already been split so it does not span any plane in
// planes (see polygon.SplitAll); otherwise the result is ill-defined.
func CategorizePolygon(q *polygon.Polygon, planes []plane.Plane, eps float64) Category {
	return CategorizePoint(q.Centroid(), planes, q.SupportingPlane.Normal(), eps)
}
