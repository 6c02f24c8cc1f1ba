// Package primitive builds convex plane sets for common brush shapes,
// grounded on the teacher's actor.Box/actor.Sphere/actor.Plane shape
// constructors, which build collision geometry from a small parameter
// set using mgl64. Every function here returns a plane set ready for
// brush.Construct.
package primitive

import (
	"fmt"
	"math"

	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl64"
)

// Box returns the 6 axis-aligned planes of a box centred on the origin
// with the given half-extents.
func Box(halfExtents mgl64.Vec3) []plane.Plane {
	return []plane.Plane{
		plane.FromPointNormal(mgl64.Vec3{halfExtents.X(), 0, 0}, mgl64.Vec3{1, 0, 0}),
		plane.FromPointNormal(mgl64.Vec3{-halfExtents.X(), 0, 0}, mgl64.Vec3{-1, 0, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, halfExtents.Y(), 0}, mgl64.Vec3{0, 1, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, -halfExtents.Y(), 0}, mgl64.Vec3{0, -1, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, 0, halfExtents.Z()}, mgl64.Vec3{0, 0, 1}),
		plane.FromPointNormal(mgl64.Vec3{0, 0, -halfExtents.Z()}, mgl64.Vec3{0, 0, -1}),
	}
}

// Wedge returns a 5-plane ramp: the box's top (+Y) face and the face on
// the ramp's low side are replaced by a single plane sloping from the
// bottom edge of the low side up to the top edge of the far side.
// slopeAxis selects the horizontal axis the ramp runs along (2=Z; any
// other value, including 0, means X); the ramp always rises in Y. A slope
// plane that fails to normalise (degenerate half-extents) is omitted.
func Wedge(halfExtents mgl64.Vec3, slopeAxis int) []plane.Plane {
	box := Box(halfExtents)

	var lowEdge, highEdge mgl64.Vec3
	switch slopeAxis {
	case 0:
		lowEdge = mgl64.Vec3{-halfExtents.X(), -halfExtents.Y(), 0}
		highEdge = mgl64.Vec3{halfExtents.X(), halfExtents.Y(), 0}
	case 2:
		lowEdge = mgl64.Vec3{0, -halfExtents.Y(), -halfExtents.Z()}
		highEdge = mgl64.Vec3{0, halfExtents.Y(), halfExtents.Z()}
	default:
		lowEdge = mgl64.Vec3{-halfExtents.X(), -halfExtents.Y(), 0}
		highEdge = mgl64.Vec3{halfExtents.X(), halfExtents.Y(), 0}
	}

	along := highEdge.Sub(lowEdge)
	across := mgl64.Vec3{0, 0, -1}
	lowSide := mgl64.Vec3{-1, 0, 0}
	if slopeAxis == 2 {
		across = mgl64.Vec3{1, 0, 0}
		lowSide = mgl64.Vec3{0, 0, -1}
	}
	normal := along.Cross(across)
	slopePlane := plane.FromPointNormal(lowEdge, normal)

	planes := make([]plane.Plane, 0, 5)
	if !slopePlane.Degenerate {
		planes = append(planes, slopePlane)
	}
	for _, p := range box {
		n := p.Normal()
		if n.Dot(mgl64.Vec3{0, 1, 0}) > 0.99 || n.Dot(lowSide) > 0.99 {
			continue // replaced by the slope
		}
		planes = append(planes, p)
	}
	return planes
}

// Cylinder returns the lateral and cap planes of a regular sides-gon
// prism of the given radius and half-height, approximating a cylinder
// as a convex polytope (spec.md's curved-surface non-goal applies to the
// evaluator's core, not to how a caller chooses to approximate one as
// planes).
func Cylinder(radius, halfHeight float64, sides int) ([]plane.Plane, error) {
	if sides < 3 {
		return nil, fmt.Errorf("primitive: cylinder needs sides >= 3, got %d", sides)
	}

	planes := make([]plane.Plane, 0, sides+2)
	for i := 0; i < sides; i++ {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		normal := mgl64.Vec3{math.Cos(theta), 0, math.Sin(theta)}
		point := normal.Mul(radius)
		planes = append(planes, plane.FromPointNormal(point, normal))
	}
	planes = append(planes,
		plane.FromPointNormal(mgl64.Vec3{0, halfHeight, 0}, mgl64.Vec3{0, 1, 0}),
		plane.FromPointNormal(mgl64.Vec3{0, -halfHeight, 0}, mgl64.Vec3{0, -1, 0}),
	)
	return planes, nil
}

// Arch returns the outer boundary planes of an arch segment: an
// outerRadius cylinder capped front and back to halfDepth. The inner
// bore is not subtracted here; callers compose it as a separate
// Subtractive brush built from Cylinder(innerRadius, halfHeight, sides),
// since a single plane set can only describe one convex solid.
func Arch(innerRadius, outerRadius, halfHeight, halfDepth float64, sides int) ([]plane.Plane, error) {
	if innerRadius <= 0 || innerRadius >= outerRadius {
		return nil, fmt.Errorf("primitive: arch needs 0 < innerRadius < outerRadius, got inner=%v outer=%v", innerRadius, outerRadius)
	}
	outer, err := Cylinder(outerRadius, halfHeight, sides)
	if err != nil {
		return nil, fmt.Errorf("primitive: arch outer cylinder: %w", err)
	}
	outer = append(outer,
		plane.FromPointNormal(mgl64.Vec3{0, 0, halfDepth}, mgl64.Vec3{0, 0, 1}),
		plane.FromPointNormal(mgl64.Vec3{0, 0, -halfDepth}, mgl64.Vec3{0, 0, -1}),
	)
	return outer, nil
}

// Sphere returns one plane per latitude/longitude subdivision face,
// approximating a sphere of the given radius as a convex polytope. Each
// plane passes through the corresponding point on the sphere's surface
// with that point's radial direction as its normal.
func Sphere(radius float64, latSegments, lonSegments int) ([]plane.Plane, error) {
	if latSegments < 1 || lonSegments < 1 {
		return nil, fmt.Errorf("primitive: sphere needs latSegments >= 1 and lonSegments >= 1, got lat=%d lon=%d", latSegments, lonSegments)
	}

	planes := make([]plane.Plane, 0, (latSegments+1)*lonSegments)
	planes = append(planes, plane.FromPointNormal(mgl64.Vec3{0, radius, 0}, mgl64.Vec3{0, 1, 0}))
	planes = append(planes, plane.FromPointNormal(mgl64.Vec3{0, -radius, 0}, mgl64.Vec3{0, -1, 0}))

	for lat := 1; lat < latSegments+1; lat++ {
		phi := math.Pi * float64(lat) / float64(latSegments+1)
		y := math.Cos(phi)
		ringRadius := math.Sin(phi)
		for lon := 0; lon < lonSegments; lon++ {
			theta := 2 * math.Pi * float64(lon) / float64(lonSegments)
			direction := mgl64.Vec3{ringRadius * math.Cos(theta), y, ringRadius * math.Sin(theta)}
			point := direction.Mul(radius)
			planes = append(planes, plane.FromPointNormal(point, direction))
		}
	}
	return planes, nil
}
