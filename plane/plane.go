// Package plane implements oriented half-space arithmetic: the leaf
// component of the CSG evaluator. A Plane is the boundary of a half-space
// `A*x + B*y + C*z + D = 0`, oriented so the front half-space is
// `A*x+B*y+C*z+D > 0`.
//
// All arithmetic is done in float64 (mgl64), as in the brush and relation
// packages; polygon vertices store positions and normals in float32.
package plane

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the default tolerance for point/plane classification.
// Tuned for world scales in the range 1e-2 .. 1e3; scale it for other ranges.
const Epsilon = 1e-5

// DeterminantEpsilon is the minimum |determinant| for a triple of planes to
// be considered solvable for an intersection point.
const DeterminantEpsilon = 1e-10

// Classification is the result of classifying a point against a plane.
type Classification int

const (
	Front Classification = iota
	Back
	OnPlane
)

// PolygonClassification is the result of classifying a set of points
// (a polygon's vertices) against a plane.
type PolygonClassification int

const (
	ClassFront PolygonClassification = iota
	ClassBack
	ClassSpanning
	ClassOnPlane
)

// Plane is an oriented half-space. Degenerate is set when construction
// failed to produce a unit normal (colinear points, near-zero normal);
// a degenerate plane classifies nothing meaningfully and callers that can
// distinguish it should skip the element that produced it.
type Plane struct {
	A, B, C, D float64
	Degenerate bool
}

// New builds a Plane from a normal and a D term, normalising the normal.
// A near-zero normal yields the degenerate sentinel.
func New(normal mgl64.Vec3, d float64) Plane {
	length := normal.Len()
	if length < 1e-12 {
		return Plane{Degenerate: true}
	}
	inv := 1.0 / length
	return Plane{A: normal.X() * inv, B: normal.Y() * inv, C: normal.Z() * inv, D: d * inv}
}

// FromPointNormal builds a Plane passing through point with the given
// (not necessarily normalised) normal.
func FromPointNormal(point, normal mgl64.Vec3) Plane {
	length := normal.Len()
	if length < 1e-12 {
		return Plane{Degenerate: true}
	}
	unit := normal.Mul(1.0 / length)
	return Plane{A: unit.X(), B: unit.Y(), C: unit.Z(), D: -unit.Dot(point)}
}

// FromPoints builds a Plane from three points using the normalised cross
// product of two edge vectors. Colinear inputs produce the degenerate
// sentinel.
func FromPoints(p0, p1, p2 mgl64.Vec3) Plane {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	normal := e1.Cross(e2)
	return FromPointNormal(p0, normal)
}

// Normal returns the plane's unit outward normal.
func (p Plane) Normal() mgl64.Vec3 {
	return mgl64.Vec3{p.A, p.B, p.C}
}

// Flip returns the plane with its half-space reversed.
func (p Plane) Flip() Plane {
	if p.Degenerate {
		return p
	}
	return Plane{A: -p.A, B: -p.B, C: -p.C, D: -p.D, Degenerate: false}
}

// SignedDistance returns A*x+B*y+C*z+D for point p, computed in doubles.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.A*point.X() + p.B*point.Y() + p.C*point.Z() + p.D
}

// ClassifyPoint classifies a point against the plane with tolerance eps.
func (p Plane) ClassifyPoint(point mgl64.Vec3, eps float64) Classification {
	d := p.SignedDistance(point)
	switch {
	case d > eps:
		return Front
	case d < -eps:
		return Back
	default:
		return OnPlane
	}
}

// ClassifyPoints classifies a set of points (a polygon ring) against the
// plane, aggregating per spec: Front iff some Front and no Back, Back iff
// some Back and no Front, Spanning iff both, OnPlane otherwise.
func (p Plane) ClassifyPoints(points []mgl64.Vec3, eps float64) PolygonClassification {
	hasFront, hasBack := false, false
	for _, pt := range points {
		switch p.ClassifyPoint(pt, eps) {
		case Front:
			hasFront = true
		case Back:
			hasBack = true
		}
	}
	switch {
	case hasFront && hasBack:
		return ClassSpanning
	case hasFront:
		return ClassFront
	case hasBack:
		return ClassBack
	default:
		return ClassOnPlane
	}
}

// Equal reports whether two planes agree on all four components within eps.
func (p Plane) Equal(other Plane, eps float64) bool {
	return math.Abs(p.A-other.A) <= eps &&
		math.Abs(p.B-other.B) <= eps &&
		math.Abs(p.C-other.C) <= eps &&
		math.Abs(p.D-other.D) <= eps
}

// Intersect3 computes the intersection point of three planes via the
// cross-product formula, in doubles. ok is false when the planes are
// degenerate or near-parallel (|determinant| <= detEps) or the result is
// non-finite. Callers wanting the documented default pass DeterminantEpsilon.
func Intersect3(p0, p1, p2 Plane, detEps float64) (point mgl64.Vec3, ok bool) {
	if p0.Degenerate || p1.Degenerate || p2.Degenerate {
		return mgl64.Vec3{}, false
	}
	n0, n1, n2 := p0.Normal(), p1.Normal(), p2.Normal()

	denom := n0.Dot(n1.Cross(n2))
	if math.Abs(denom) <= detEps {
		return mgl64.Vec3{}, false
	}

	numerator := n1.Cross(n2).Mul(-p0.D).
		Add(n2.Cross(n0).Mul(-p1.D)).
		Add(n0.Cross(n1).Mul(-p2.D))

	result := numerator.Mul(1.0 / denom)
	if !finiteVec3(result) {
		return mgl64.Vec3{}, false
	}
	return result, true
}

func finiteVec3(v mgl64.Vec3) bool {
	return isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z())
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
