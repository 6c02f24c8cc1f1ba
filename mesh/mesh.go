// Package mesh fan-triangulates the evaluator's convex output polygons
// into an indexed triangle buffer, the rendering-ready form spec.md §6
// names as a collaborator contract.
package mesh

import "github.com/brushforge/csgkernel/polygon"

// Mesh is a flat vertex buffer plus an index buffer. Indices holds
// []uint16 when Wide reports false, []uint32 when it reports true.
type Mesh struct {
	Vertices []polygon.Vertex
	Indices  any
}

// Wide reports whether Indices holds []uint32 (vertex count > 65535).
func (m Mesh) Wide() bool {
	_, wide := m.Indices.([]uint32)
	return wide
}

// Triangulate fan-triangulates every polygon (v0, vi, vi+1 for i in
// [1, n-2]) and concatenates the results into a single indexed mesh,
// choosing 16-bit indices when the total vertex count fits and 32-bit
// otherwise.
func Triangulate(polygons []*polygon.Polygon) Mesh {
	var vertices []polygon.Vertex
	var triangles [][3]int

	base := 0
	for _, p := range polygons {
		n := len(p.Vertices)
		if n < 3 {
			continue
		}
		vertices = append(vertices, p.Vertices...)
		for i := 1; i < n-1; i++ {
			triangles = append(triangles, [3]int{base, base + i, base + i + 1})
		}
		base += n
	}

	if len(vertices) <= 65535 {
		indices := make([]uint16, 0, len(triangles)*3)
		for _, tri := range triangles {
			indices = append(indices, uint16(tri[0]), uint16(tri[1]), uint16(tri[2]))
		}
		return Mesh{Vertices: vertices, Indices: indices}
	}

	indices := make([]uint32, 0, len(triangles)*3)
	for _, tri := range triangles {
		indices = append(indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
	}
	return Mesh{Vertices: vertices, Indices: indices}
}
