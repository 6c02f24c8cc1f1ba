package primitive

import (
	"testing"

	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/plane"
	"github.com/go-gl/mathgl/mgl64"
)

func TestBox_ConstructsUnitCube(t *testing.T) {
	planes := Box(mgl64.Vec3{0.5, 0.5, 0.5})
	if len(planes) != 6 {
		t.Fatalf("got %d planes, want 6", len(planes))
	}
	b, err := brush.Construct(planes, brush.Additive, 0, 0, brush.EpsInside, plane.DeterminantEpsilon)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if len(b.FacePolygons) != 6 {
		t.Fatalf("got %d faces, want 6", len(b.FacePolygons))
	}
}

func TestWedge_FivePlanes(t *testing.T) {
	planes := Wedge(mgl64.Vec3{0.5, 0.5, 0.5}, 0)
	if len(planes) != 5 {
		t.Fatalf("got %d planes, want 5", len(planes))
	}
	if _, err := brush.Construct(planes, brush.Additive, 0, 0, brush.EpsInside, plane.DeterminantEpsilon); err != nil {
		t.Fatalf("Construct: %v", err)
	}
}

func TestCylinder_RejectsTooFewSides(t *testing.T) {
	if _, err := Cylinder(1, 1, 2); err == nil {
		t.Fatal("expected error for sides < 3")
	}
}

func TestCylinder_ConstructsPrism(t *testing.T) {
	planes, err := Cylinder(1, 1, 8)
	if err != nil {
		t.Fatalf("Cylinder: %v", err)
	}
	if len(planes) != 10 {
		t.Fatalf("got %d planes, want 10", len(planes))
	}
	b, err := brush.Construct(planes, brush.Additive, 0, 0, brush.EpsInside, plane.DeterminantEpsilon)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	if len(b.FacePolygons) != 10 {
		t.Fatalf("got %d faces, want 10", len(b.FacePolygons))
	}
}

func TestSphere_RejectsBadSubdivision(t *testing.T) {
	if _, err := Sphere(1, 0, 4); err == nil {
		t.Fatal("expected error for latSegments < 1")
	}
	if _, err := Sphere(1, 4, 0); err == nil {
		t.Fatal("expected error for lonSegments < 1")
	}
}

func TestSphere_ConstructsPolytope(t *testing.T) {
	planes, err := Sphere(1, 3, 6)
	if err != nil {
		t.Fatalf("Sphere: %v", err)
	}
	want := 2 + 3*6
	if len(planes) != want {
		t.Fatalf("got %d planes, want %d", len(planes), want)
	}
	if _, err := brush.Construct(planes, brush.Additive, 0, 0, brush.EpsInside, plane.DeterminantEpsilon); err != nil {
		t.Fatalf("Construct: %v", err)
	}
}

func TestArch_RejectsBadRadii(t *testing.T) {
	if _, err := Arch(2, 1, 1, 1, 8); err == nil {
		t.Fatal("expected error for innerRadius >= outerRadius")
	}
}

func TestArch_ConstructsOuterShell(t *testing.T) {
	planes, err := Arch(0.5, 1, 1, 0.5, 8)
	if err != nil {
		t.Fatalf("Arch: %v", err)
	}
	// 8 lateral + 2 cylinder caps + 2 depth caps.
	if len(planes) != 12 {
		t.Fatalf("got %d planes, want 12", len(planes))
	}
}
