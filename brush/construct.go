package brush

import (
	"fmt"
	"math"

	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// EpsInside is the tolerance for accepting a triple-intersection point as
// lying on every plane of the brush. Deliberately looser than plane.Epsilon
// (spec.md §9): polytope vertices shared by many faces must be accepted.
const EpsInside = 1e-4

// DedupeEpsilonSq is the squared distance tolerance for deduplicating
// candidate face vertices.
const DedupeEpsilonSq = 1e-8

// VertexSet enumerates every C(n,3) triple of planes, keeps the
// intersection points that lie within epsInside of every plane in planes
// (triples are solved with epsDeterminant as the minimum |determinant|),
// and returns the (possibly duplicated) accepted points. This is the
// vertex-enumeration half of spec.md §4.3, reused by the overlap test of
// §4.4 (brushes_overlap needs the vertex set of the *other* brush, not its
// faces).
func VertexSet(planes []plane.Plane, epsInside, epsDeterminant float64) []mgl64.Vec3 {
	n := len(planes)
	points := make([]mgl64.Vec3, 0, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				pt, ok := plane.Intersect3(planes[i], planes[j], planes[k], epsDeterminant)
				if !ok {
					continue
				}
				if insideAll(pt, planes, epsInside) {
					points = append(points, pt)
				}
			}
		}
	}
	return points
}

func insideAll(pt mgl64.Vec3, planes []plane.Plane, epsInside float64) bool {
	for _, p := range planes {
		if p.Degenerate {
			continue
		}
		if p.SignedDistance(pt) > epsInside {
			return false
		}
	}
	return true
}

// Construct builds a brush's face polygons from its plane set via
// three-plane-intersection vertex enumeration, inside-test filtering,
// centroid-based winding sort, and degeneracy rejection (spec.md §4.3).
// epsInside and epsDeterminant are the same tolerances internal/config.Config
// exposes (EpsInside, EpsDeterminant); callers without a tuned Config pass
// the package defaults EpsInside and plane.DeterminantEpsilon.
//
// Returns an error only when the plane set violates the §3 invariant of
// having at least 4 planes; every other failure mode (colinear triples,
// near-singular determinants, degenerate per-face windings) is the
// silent-skip policy of spec.md §7 and simply yields fewer faces.
func Construct(planes []plane.Plane, operation Operation, order int, materialTag int, epsInside, epsDeterminant float64) (Brush, error) {
	if len(planes) < 4 {
		return Brush{}, fmt.Errorf("brush: need at least 4 planes, got %d", len(planes))
	}

	buckets := make([][]mgl64.Vec3, len(planes))
	n := len(planes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				pt, ok := plane.Intersect3(planes[i], planes[j], planes[k], epsDeterminant)
				if !ok {
					continue
				}
				if !insideAll(pt, planes, epsInside) {
					continue
				}
				buckets[i] = append(buckets[i], pt)
				buckets[j] = append(buckets[j], pt)
				buckets[k] = append(buckets[k], pt)
			}
		}
	}

	faces := make([]*polygon.Polygon, 0, n)
	for i, p := range planes {
		if p.Degenerate {
			continue
		}
		unique := dedupe(buckets[i])
		if len(unique) < 3 {
			continue
		}
		ordered := windingSort(unique, p.Normal())
		face := buildFace(ordered, p, materialTag)
		if face != nil {
			faces = append(faces, face)
		}
	}

	return Brush{
		FacePolygons: faces,
		WorldPlanes:  append([]plane.Plane(nil), planes...),
		Operation:    operation,
		Order:        order,
		MaterialTag:  materialTag,
	}, nil
}

func dedupe(points []mgl64.Vec3) []mgl64.Vec3 {
	unique := make([]mgl64.Vec3, 0, len(points))
	for _, p := range points {
		duplicate := false
		for _, u := range unique {
			if p.Sub(u).LenSqr() <= DedupeEpsilonSq {
				duplicate = true
				break
			}
		}
		if !duplicate {
			unique = append(unique, p)
		}
	}
	return unique
}

// windingSort orders points into a winding order on the face plane: builds
// a tangent frame (T, B) from the face normal and sorts by atan2(d.B, d.T)
// around the centroid, then reverses if the first triangle's signed area
// opposes the normal.
func windingSort(points []mgl64.Vec3, normal mgl64.Vec3) []mgl64.Vec3 {
	centroid := mgl64.Vec3{}
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Mul(1.0 / float64(len(points)))

	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(normal.Y()) >= 0.9 {
		up = mgl64.Vec3{1, 0, 0}
	}
	tangent := normal.Cross(up).Normalize()
	bitangent := normal.Cross(tangent)

	type angled struct {
		pt    mgl64.Vec3
		angle float64
	}
	entries := make([]angled, len(points))
	for i, p := range points {
		d := p.Sub(centroid)
		entries[i] = angled{pt: p, angle: math.Atan2(d.Dot(bitangent), d.Dot(tangent))}
	}
	// Insertion sort: winding buckets are small (typically < 12 points).
	for i := 1; i < len(entries); i++ {
		j := i
		for j > 0 && entries[j-1].angle > entries[j].angle {
			entries[j-1], entries[j] = entries[j], entries[j-1]
			j--
		}
	}

	ordered := make([]mgl64.Vec3, len(entries))
	for i, e := range entries {
		ordered[i] = e.pt
	}

	if len(ordered) >= 3 {
		e1 := ordered[1].Sub(ordered[0])
		e2 := ordered[2].Sub(ordered[0])
		if e1.Cross(e2).Dot(normal) < 0 {
			reverse(ordered)
		}
	}
	return ordered
}

func reverse(pts []mgl64.Vec3) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

func buildFace(points []mgl64.Vec3, supportingPlane plane.Plane, materialTag int) *polygon.Polygon {
	normal := supportingPlane.Normal()
	normal32 := mgl32.Vec3{float32(normal.X()), float32(normal.Y()), float32(normal.Z())}

	vertices := make([]polygon.Vertex, len(points))
	for i, p := range points {
		vertices[i] = polygon.Vertex{
			Position: mgl32.Vec3{float32(p.X()), float32(p.Y()), float32(p.Z())},
			Normal:   normal32,
			UV:       mgl64.Vec2{0, 0},
		}
	}

	face := polygon.New(vertices, supportingPlane, materialTag)
	if face.IsDegenerate(polygon.MinAreaEpsilon) {
		return nil
	}
	return face
}
