package polygon

import (
	"testing"

	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

func squareAtZ(z float32, normalZ float32) *Polygon {
	p := plane.New(mgl64.Vec3{0, 0, float64(normalZ)}, -float64(z)*float64(normalZ))
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, -1, z}, Normal: mgl32.Vec3{0, 0, normalZ}},
		{Position: mgl32.Vec3{1, -1, z}, Normal: mgl32.Vec3{0, 0, normalZ}},
		{Position: mgl32.Vec3{1, 1, z}, Normal: mgl32.Vec3{0, 0, normalZ}},
		{Position: mgl32.Vec3{-1, 1, z}, Normal: mgl32.Vec3{0, 0, normalZ}},
	}
	return New(vertices, p, 7)
}

func TestSplit_EntirelyFront(t *testing.T) {
	q := squareAtZ(5, 1)
	cut := plane.New(mgl64.Vec3{0, 0, 1}, 0) // z = 0, front is z > 0

	result := Split(q, cut, plane.Epsilon)
	if result.Front != q {
		t.Fatalf("expected Front == q, got %+v", result.Front)
	}
	if result.Back != nil || result.CoplanarFront != nil || result.CoplanarBack != nil {
		t.Fatal("expected only Front populated")
	}
}

func TestSplit_EntirelyBack(t *testing.T) {
	q := squareAtZ(-5, 1)
	cut := plane.New(mgl64.Vec3{0, 0, 1}, 0)

	result := Split(q, cut, plane.Epsilon)
	if result.Back != q {
		t.Fatal("expected Back == q")
	}
	if result.Front != nil {
		t.Fatal("expected Front nil")
	}
}

func TestSplit_CoplanarSameOrientation(t *testing.T) {
	q := squareAtZ(0, 1)
	cut := plane.New(mgl64.Vec3{0, 0, 1}, 0)

	result := Split(q, cut, plane.Epsilon)
	if result.CoplanarFront != q {
		t.Fatal("expected CoplanarFront == q")
	}
	if result.CoplanarBack != nil || result.Front != nil || result.Back != nil {
		t.Fatal("expected only CoplanarFront populated")
	}
}

func TestSplit_CoplanarOppositeOrientation(t *testing.T) {
	q := squareAtZ(0, -1) // polygon's own plane normal points -Z
	cut := plane.New(mgl64.Vec3{0, 0, 1}, 0)

	result := Split(q, cut, plane.Epsilon)
	if result.CoplanarBack != q {
		t.Fatal("expected CoplanarBack == q")
	}
	if result.CoplanarFront != nil {
		t.Fatal("expected CoplanarFront nil")
	}
}

func TestSplit_Spanning(t *testing.T) {
	// A square in the XY plane (z = 0, y in [-1,1]) spanning y=0.
	p := plane.New(mgl64.Vec3{0, 1, 0}, 0)
	vertices := []Vertex{
		{Position: mgl32.Vec3{-1, -1, 0}},
		{Position: mgl32.Vec3{1, -1, 0}},
		{Position: mgl32.Vec3{1, 1, 0}},
		{Position: mgl32.Vec3{-1, 1, 0}},
	}
	q := New(vertices, p, 3)

	cut := plane.New(mgl64.Vec3{0, 1, 0}, 0) // y = 0

	result := Split(q, cut, plane.Epsilon)
	if result.Front == nil || result.Back == nil {
		t.Fatal("expected both Front and Back populated for a spanning polygon")
	}
	if result.CoplanarFront != nil || result.CoplanarBack != nil {
		t.Fatal("spanning split must not populate coplanar outputs")
	}
	if len(result.Front.Vertices) < 3 || len(result.Back.Vertices) < 3 {
		t.Fatal("split fragments must have >= 3 vertices")
	}
	// Both halves should inherit the original supporting plane and tag.
	if result.Front.MaterialTag != 3 || result.Back.MaterialTag != 3 {
		t.Fatal("split fragments must inherit material tag")
	}
	if result.Front.SupportingPlane != q.SupportingPlane || result.Back.SupportingPlane != q.SupportingPlane {
		t.Fatal("split fragments must inherit supporting plane")
	}
	if result.Front.Area()+result.Back.Area() < q.Area()-1e-9 {
		t.Fatalf("split fragments should roughly preserve area: got %v+%v vs %v",
			result.Front.Area(), result.Back.Area(), q.Area())
	}
}

func TestSplitAll_KeepsNonDegenerateFragments(t *testing.T) {
	q := squareAtZ(0, 1) // a 2x2 square in z=0 plane centred at origin
	boxPlanes := []plane.Plane{
		plane.New(mgl64.Vec3{1, 0, 0}, -0.5), // x = 0.5, front is x > 0.5; both sides are kept
	}
	fragments := SplitAll(q, boxPlanes, plane.Epsilon, MinAreaEpsilon)
	if len(fragments) == 0 {
		t.Fatal("expected at least one fragment to survive a single clip")
	}
	for _, f := range fragments {
		if f.IsDegenerate(MinAreaEpsilon) {
			t.Fatal("SplitAll must not return degenerate fragments")
		}
	}
}
