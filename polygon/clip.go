package polygon

import (
	"github.com/brushforge/csgkernel/plane"
)

// SplitResult holds the up-to-four outputs of Split. A nil field means
// that output is empty for this input.
type SplitResult struct {
	Front, Back   *Polygon
	CoplanarFront *Polygon
	CoplanarBack  *Polygon
}

// Split clips polygon q against plane p with tolerance eps, per spec.md
// §4.2. Output polygons inherit q's supporting plane and material tag
// (q's own supporting plane, not p — only the spanning case manufactures
// new geometry and it keeps q's plane too, since the split only trims q's
// boundary, it never changes the plane q lies on). Any output with fewer
// than three vertices is discarded (left nil).
func Split(q *Polygon, p plane.Plane, eps float64) SplitResult {
	positions := make([]float64, len(q.Vertices))
	for i, v := range q.Vertices {
		positions[i] = p.SignedDistance(v.PositionF64())
	}
	classification := classifyDistances(positions, eps)

	switch classification {
	case plane.ClassFront:
		return SplitResult{Front: q}
	case plane.ClassBack:
		return SplitResult{Back: q}
	case plane.ClassOnPlane:
		if q.SupportingPlane.Normal().Dot(p.Normal()) > 0 {
			return SplitResult{CoplanarFront: q}
		}
		return SplitResult{CoplanarBack: q}
	default: // Spanning
		return splitSpanning(q, p, positions, eps)
	}
}

func classifyDistances(distances []float64, eps float64) plane.PolygonClassification {
	hasFront, hasBack := false, false
	for _, d := range distances {
		switch {
		case d > eps:
			hasFront = true
		case d < -eps:
			hasBack = true
		}
	}
	switch {
	case hasFront && hasBack:
		return plane.ClassSpanning
	case hasFront:
		return plane.ClassFront
	case hasBack:
		return plane.ClassBack
	default:
		return plane.ClassOnPlane
	}
}

func splitSpanning(q *Polygon, p plane.Plane, distances []float64, eps float64) SplitResult {
	n := len(q.Vertices)
	front := make([]Vertex, 0, n+1)
	back := make([]Vertex, 0, n+1)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := q.Vertices[i], q.Vertices[j]
		di, dj := distances[i], distances[j]

		classI := classifyOne(di, eps)
		classJ := classifyOne(dj, eps)

		if classI != plane.Back {
			front = append(front, vi)
		}
		if classI != plane.Front {
			back = append(back, vi)
		}

		if classI != plane.OnPlane && classJ != plane.OnPlane && sign(di) != sign(dj) {
			t := di / (di - dj)
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			crossing := Lerp(vi, vj, t)
			front = append(front, crossing)
			back = append(back, crossing)
		}
	}

	result := SplitResult{}
	if len(front) >= 3 {
		result.Front = &Polygon{Vertices: front, SupportingPlane: q.SupportingPlane, MaterialTag: q.MaterialTag}
	}
	if len(back) >= 3 {
		result.Back = &Polygon{Vertices: back, SupportingPlane: q.SupportingPlane, MaterialTag: q.MaterialTag}
	}
	return result
}

func classifyOne(d, eps float64) plane.Classification {
	switch {
	case d > eps:
		return plane.Front
	case d < -eps:
		return plane.Back
	default:
		return plane.OnPlane
	}
}

func sign(f float64) float64 {
	if f > 0 {
		return 1
	}
	if f < 0 {
		return -1
	}
	return 0
}

// SplitAll iteratively splits q against every plane in planes, passing
// every surviving fragment (front, back, coplanar-front, coplanar-back)
// forward to the next plane. Degenerate fragments (area < areaEps) are
// dropped. This implements the per-face fragment accumulation of spec.md
// §4.5 step 3c.
func SplitAll(q *Polygon, planes []plane.Plane, eps, areaEps float64) []*Polygon {
	fragments := []*Polygon{q}
	for _, p := range planes {
		next := make([]*Polygon, 0, len(fragments))
		for _, fragment := range fragments {
			result := Split(fragment, p, eps)
			for _, out := range []*Polygon{result.Front, result.Back, result.CoplanarFront, result.CoplanarBack} {
				if out != nil && !out.IsDegenerate(areaEps) {
					next = append(next, out)
				}
			}
		}
		fragments = next
		if len(fragments) == 0 {
			break
		}
	}
	return fragments
}
