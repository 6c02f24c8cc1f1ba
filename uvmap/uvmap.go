// Package uvmap assigns texture coordinates to evaluator output by
// projecting onto the two world axes most orthogonal to each face's
// normal, the UV contract spec.md §6 leaves to a collaborator.
package uvmap

import (
	"math"

	"github.com/brushforge/csgkernel/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

// Project picks the dominant axis of poly's supporting-plane normal
// (largest |component|, ties favouring X over Y over Z), drops it, and
// maps the remaining two world axes to a UV pair per vertex, each
// divided by scale.
func Project(poly *polygon.Polygon, scale float64) []mgl64.Vec2 {
	normal := poly.SupportingPlane.Normal()
	uvs := make([]mgl64.Vec2, len(poly.Vertices))
	for i, v := range poly.Vertices {
		pos := v.PositionF64()
		uvs[i] = projectPoint(pos, normal, scale)
	}
	return uvs
}

// ProjectAndAssign calls Project and writes the results back into the
// polygon's vertex UVs in place.
func ProjectAndAssign(poly *polygon.Polygon, scale float64) {
	normal := poly.SupportingPlane.Normal()
	for i := range poly.Vertices {
		pos := poly.Vertices[i].PositionF64()
		poly.Vertices[i].UV = projectPoint(pos, normal, scale)
	}
}

func projectPoint(pos, normal mgl64.Vec3, scale float64) mgl64.Vec2 {
	ax, ay, az := math.Abs(normal.X()), math.Abs(normal.Y()), math.Abs(normal.Z())
	switch {
	case ax >= ay && ax >= az:
		return mgl64.Vec2{pos.Y() / scale, pos.Z() / scale}
	case ay >= az:
		return mgl64.Vec2{pos.X() / scale, pos.Z() / scale}
	default:
		return mgl64.Vec2{pos.X() / scale, pos.Y() / scale}
	}
}
