package polygon

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vertex is a position on a convex polygon's boundary, with its shading
// normal and a UV coordinate. Position and normal are stored in float32
// (mgl32) per spec: plane arithmetic is doubles, vertex data is floats.
// The clip parameter t (see Split) is always computed in doubles.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl64.Vec2
}

// PositionF64 widens the vertex position to doubles for plane/distance math.
func (v Vertex) PositionF64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.Position.X()), float64(v.Position.Y()), float64(v.Position.Z())}
}

// NormalF64 widens the vertex normal to doubles.
func (v Vertex) NormalF64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.Normal.X()), float64(v.Normal.Y()), float64(v.Normal.Z())}
}

// Flip negates the vertex normal; position and UV are unaffected.
func (v Vertex) Flip() Vertex {
	v.Normal = v.Normal.Mul(-1)
	return v
}

// Lerp interpolates two vertices per-component at parameter t in [0,1],
// re-normalising the interpolated normal.
func Lerp(a, b Vertex, t float64) Vertex {
	tf := float32(t)
	pos := a.Position.Add(b.Position.Sub(a.Position).Mul(tf))
	normal := a.Normal.Add(b.Normal.Sub(a.Normal).Mul(tf))
	if l := normal.Len(); l > 1e-12 {
		normal = normal.Mul(1 / l)
	}
	uv := a.UV.Add(b.UV.Sub(a.UV).Mul(t))
	return Vertex{Position: pos, Normal: normal, UV: uv}
}
