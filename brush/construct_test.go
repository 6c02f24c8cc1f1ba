package brush

import (
	"math"
	"testing"

	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl64"
)

// cubePlanes returns the 6 outward planes of an axis-aligned cube centred
// at center with the given half-extent.
func cubePlanes(center mgl64.Vec3, half float64) []plane.Plane {
	return []plane.Plane{
		plane.FromPointNormal(center.Add(mgl64.Vec3{half, 0, 0}), mgl64.Vec3{1, 0, 0}),
		plane.FromPointNormal(center.Add(mgl64.Vec3{-half, 0, 0}), mgl64.Vec3{-1, 0, 0}),
		plane.FromPointNormal(center.Add(mgl64.Vec3{0, half, 0}), mgl64.Vec3{0, 1, 0}),
		plane.FromPointNormal(center.Add(mgl64.Vec3{0, -half, 0}), mgl64.Vec3{0, -1, 0}),
		plane.FromPointNormal(center.Add(mgl64.Vec3{0, 0, half}), mgl64.Vec3{0, 0, 1}),
		plane.FromPointNormal(center.Add(mgl64.Vec3{0, 0, -half}), mgl64.Vec3{0, 0, -1}),
	}
}

func TestConstruct_UnitCube(t *testing.T) {
	b, err := Construct(cubePlanes(mgl64.Vec3{}, 0.5), Additive, 0, 1, EpsInside, plane.DeterminantEpsilon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.FacePolygons) != 6 {
		t.Fatalf("expected 6 faces, got %d", len(b.FacePolygons))
	}

	total := 0.0
	for _, f := range b.FacePolygons {
		if len(f.Vertices) != 4 {
			t.Errorf("expected quad face, got %d vertices", len(f.Vertices))
		}
		if !f.IsConvex(1e-6) {
			t.Errorf("face is not convex: %+v", f)
		}
		total += f.Area()
	}
	if math.Abs(total-6.0) > 1e-6 {
		t.Fatalf("expected total surface area 6.0, got %v", total)
	}
}

func TestConstruct_TooFewPlanes(t *testing.T) {
	_, err := Construct(cubePlanes(mgl64.Vec3{}, 0.5)[:3], Additive, 0, 0, EpsInside, plane.DeterminantEpsilon)
	if err == nil {
		t.Fatal("expected error for fewer than 4 planes")
	}
}

func TestConstruct_EveryFaceVertexOnEveryPlane(t *testing.T) {
	planes := cubePlanes(mgl64.Vec3{1, 2, 3}, 1.5)
	b, err := Construct(planes, Additive, 0, 0, EpsInside, plane.DeterminantEpsilon)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, face := range b.FacePolygons {
		for _, v := range face.Vertices {
			for _, p := range planes {
				if d := p.SignedDistance(v.PositionF64()); d > EpsInside {
					t.Errorf("vertex %v violates plane %+v by %v", v.Position, p, d)
				}
			}
		}
	}
}

func TestComputeAABB(t *testing.T) {
	planes := cubePlanes(mgl64.Vec3{0, 0, 0}, 0.5)
	aabb := ComputeAABB(planes, EpsInside, plane.DeterminantEpsilon)
	want := AABB{Min: mgl64.Vec3{-0.5, -0.5, -0.5}, Max: mgl64.Vec3{0.5, 0.5, 0.5}}
	if aabb.Min.Sub(want.Min).Len() > 1e-6 || aabb.Max.Sub(want.Max).Len() > 1e-6 {
		t.Fatalf("got %+v want %+v", aabb, want)
	}
}
