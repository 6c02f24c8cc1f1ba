package brush

import (
	"math"

	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box, mirroring the teacher's
// actor.AABB but over brush vertex sets rather than rigid-body shapes.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// Overlaps reports whether two AABBs intersect on all three axes.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// ComputeAABB derives a brush's world-space AABB from its plane set's
// accepted vertex set (spec.md §4.3's enumeration, not the face polygons,
// so it is correct even for a brush whose Construct call was skipped).
// epsInside and epsDeterminant are forwarded to VertexSet; callers without a
// tuned Config pass EpsInside and plane.DeterminantEpsilon.
// Returns the zero AABB when the plane set has no accepted vertex
// (degenerate brush).
func ComputeAABB(planes []plane.Plane, epsInside, epsDeterminant float64) AABB {
	points := VertexSet(planes, epsInside, epsDeterminant)
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = mgl64.Vec3{math.Min(min.X(), p.X()), math.Min(min.Y(), p.Y()), math.Min(min.Z(), p.Z())}
		max = mgl64.Vec3{math.Max(max.X(), p.X()), math.Max(max.Y(), p.Y()), math.Max(max.Z(), p.Z())}
	}
	return AABB{Min: min, Max: max}
}
