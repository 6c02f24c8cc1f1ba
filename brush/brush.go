// Package brush defines the convex polyhedron primitive of the CSG
// evaluator and its geometry construction from a half-space plane set.
package brush

import (
	"fmt"

	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
)

// Operation is the CSG boolean operation tag. A closed, exhaustive
// enumeration (tagged union), not an inheritance hierarchy, per spec.md
// §9's dispatch note.
type Operation int

const (
	Additive Operation = iota
	Subtractive
	Intersect
)

func (op Operation) String() string {
	switch op {
	case Additive:
		return "Additive"
	case Subtractive:
		return "Subtractive"
	case Intersect:
		return "Intersect"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Brush is the core evaluator's unit of input, exactly spec.md §6's
// entry-point element type. No brush owns or aliases another's geometry;
// ownership is exclusive to a single csgkernel.Process invocation.
type Brush struct {
	FacePolygons []*polygon.Polygon
	WorldPlanes  []plane.Plane
	Operation    Operation
	Order        int
	MaterialTag  int
}
