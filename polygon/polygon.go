// Package polygon implements convex polygons on a supporting plane and
// their Sutherland-Hodgman-style splitting against an arbitrary plane.
package polygon

import (
	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl64"
)

// MinAreaEpsilon is the default minimum area below which a polygon is
// considered degenerate and must be discarded before emission.
const MinAreaEpsilon = 1e-6

// Polygon is an ordered ring of >= 3 vertices lying on SupportingPlane,
// plus a material tag. Winding yields a face normal parallel to (and
// agreeing in orientation with) SupportingPlane's normal.
type Polygon struct {
	Vertices        []Vertex
	SupportingPlane plane.Plane
	MaterialTag     int
}

// New builds a Polygon, it does not validate winding or area; callers
// that need the degeneracy check should call IsDegenerate.
func New(vertices []Vertex, supportingPlane plane.Plane, materialTag int) *Polygon {
	return &Polygon{Vertices: vertices, SupportingPlane: supportingPlane, MaterialTag: materialTag}
}

// Flip reverses the ring, flips each vertex's normal, and flips the
// supporting plane.
func (p *Polygon) Flip() *Polygon {
	n := len(p.Vertices)
	flipped := make([]Vertex, n)
	for i, v := range p.Vertices {
		flipped[n-1-i] = v.Flip()
	}
	return &Polygon{
		Vertices:        flipped,
		SupportingPlane: p.SupportingPlane.Flip(),
		MaterialTag:     p.MaterialTag,
	}
}

// Centroid returns the arithmetic mean of the polygon's vertex positions,
// widened to doubles for downstream plane classification.
func (p *Polygon) Centroid() mgl64.Vec3 {
	if len(p.Vertices) == 0 {
		return mgl64.Vec3{}
	}
	sum := mgl64.Vec3{}
	for _, v := range p.Vertices {
		sum = sum.Add(v.PositionF64())
	}
	return sum.Mul(1.0 / float64(len(p.Vertices)))
}

// Area computes the polygon's area via the sum of cross products of
// successive edge vectors about the centroid (works for any convex
// planar polygon regardless of which axis it lies most flat against).
func (p *Polygon) Area() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	centroid := p.Centroid()
	var sum mgl64.Vec3
	for i := 0; i < n; i++ {
		a := p.Vertices[i].PositionF64().Sub(centroid)
		b := p.Vertices[(i+1)%n].PositionF64().Sub(centroid)
		sum = sum.Add(a.Cross(b))
	}
	return 0.5 * sum.Len()
}

// IsDegenerate reports whether the polygon has fewer than 3 vertices or
// an area below areaEps.
func (p *Polygon) IsDegenerate(areaEps float64) bool {
	if len(p.Vertices) < 3 {
		return true
	}
	return p.Area() < areaEps
}

// IsConvex walks the ring and checks that consecutive edge cross products
// all point to the same side of the supporting plane's normal (testable
// property 3 of spec.md §8).
func (p *Polygon) IsConvex(eps float64) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	normal := p.SupportingPlane.Normal()
	for i := 0; i < n; i++ {
		a := p.Vertices[i].PositionF64()
		b := p.Vertices[(i+1)%n].PositionF64()
		c := p.Vertices[(i+2)%n].PositionF64()
		e1 := b.Sub(a)
		e2 := c.Sub(b)
		cross := e1.Cross(e2)
		if cross.Dot(normal) < -eps {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the polygon (vertices are value types, so a
// fresh backing slice is sufficient).
func (p *Polygon) Clone() *Polygon {
	vertices := make([]Vertex, len(p.Vertices))
	copy(vertices, p.Vertices)
	return &Polygon{Vertices: vertices, SupportingPlane: p.SupportingPlane, MaterialTag: p.MaterialTag}
}
