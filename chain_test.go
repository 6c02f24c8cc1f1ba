package csgkernel

import (
	"math"
	"testing"

	"github.com/brushforge/csgkernel/brush"
	"github.com/brushforge/csgkernel/internal/config"
	"github.com/brushforge/csgkernel/plane"
	"github.com/brushforge/csgkernel/polygon"
	"github.com/go-gl/mathgl/mgl64"
)

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

func mustCube(t *testing.T, center mgl64.Vec3, half float64, op brush.Operation, order int) brush.Brush {
	t.Helper()
	b, err := brush.Construct(cubePlanes(center, half), op, order, 0, brush.EpsInside, plane.DeterminantEpsilon)
	if err != nil {
		t.Fatalf("Construct: %v", err)
	}
	return b
}

func totalArea(polys []*polygon.Polygon) float64 {
	sum := 0.0
	for _, p := range polys {
		sum += p.Area()
	}
	return sum
}

// S1: a lone additive unit cube passes through unchanged: 6 faces, area 6.
func TestProcess_SingleAdditiveCube(t *testing.T) {
	b := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, brush.Additive, 0)
	out := Process([]brush.Brush{b})
	if len(out) != 6 {
		t.Fatalf("got %d faces, want 6", len(out))
	}
	if area := totalArea(out); math.Abs(area-6.0) > 1e-6 {
		t.Fatalf("got area %v, want 6", area)
	}
}

// A lone subtractive or intersecting brush can never produce surface: there
// is nothing preceding it in the chain to act on.
func TestProcess_SingleNonAdditiveCube(t *testing.T) {
	for _, op := range []brush.Operation{brush.Subtractive, brush.Intersect} {
		b := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, op, 0)
		out := Process([]brush.Brush{b})
		if len(out) != 0 {
			t.Fatalf("op %v: got %d faces, want 0", op, len(out))
		}
	}
}

// S2: two disjoint additive cubes union to the sum of their surfaces
// untouched (no overlap means no splitting planes for either owner).
func TestProcess_DisjointUnion(t *testing.T) {
	a := mustCube(t, mgl64.Vec3{-2, 0, 0}, 0.5, brush.Additive, 0)
	b := mustCube(t, mgl64.Vec3{2, 0, 0}, 0.5, brush.Additive, 1)
	out := ProcessWithConfig([]brush.Brush{a, b}, config.Default())
	if len(out) != 12 {
		t.Fatalf("got %d faces, want 12", len(out))
	}
	if area := totalArea(out); math.Abs(area-12.0) > 1e-6 {
		t.Fatalf("got area %v, want 12", area)
	}
}

// Two overlapping additive unit cubes, offset by half an edge, must yield
// a closed union surface strictly smaller than the sum of the two surfaces
// (the shared interior faces are consumed) and strictly larger than either
// cube alone.
func TestProcess_OverlappingUnion(t *testing.T) {
	a := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, brush.Additive, 0)
	b := mustCube(t, mgl64.Vec3{0.5, 0, 0}, 0.5, brush.Additive, 1)
	out := Process([]brush.Brush{a, b})
	area := totalArea(out)
	if area <= 6.0 || area >= 12.0 {
		t.Fatalf("union area %v out of expected (6, 12) range", area)
	}
	for _, p := range out {
		if p.IsDegenerate(polygon.MinAreaEpsilon) {
			t.Fatalf("emitted degenerate fragment")
		}
	}
}

// Subtracting a unit cube from an identical, coincident one leaves nothing:
// every face of the additive cube is exactly coplanar with, and aligned
// with, the subtractive cube's matching face.
func TestProcess_SelfSubtractionIsEmpty(t *testing.T) {
	a := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, brush.Additive, 0)
	b := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, brush.Subtractive, 1)
	out := Process([]brush.Brush{a, b})
	if len(out) != 0 {
		t.Fatalf("got %d faces, want 0 (self-subtraction)", len(out))
	}
}

// Subtracting a smaller cube fully inside a larger additive one carves a
// cavity: each of the larger cube's 6 faces is split by the inner cube's
// four planes that cross it into 9 fragments, all kept, plus 6 new
// inward-facing faces from the subtractive brush's boundary.
func TestProcess_SubtractiveCavity(t *testing.T) {
	outer := mustCube(t, mgl64.Vec3{0, 0, 0}, 1.0, brush.Additive, 0)
	inner := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.25, brush.Subtractive, 1)
	out := Process([]brush.Brush{outer, inner})
	if len(out) != 60 {
		t.Fatalf("got %d faces, want 60 (54 outer fragments + 6 cavity)", len(out))
	}
	outerArea := 4.0 * 6.0 // (2*half)^2 * 6 faces, half=1.0 -> edge 2.0
	cavityArea := (0.5 * 0.5) * 6.0
	if area := totalArea(out); math.Abs(area-(outerArea+cavityArea)) > 1e-4 {
		t.Fatalf("got area %v, want %v", area, outerArea+cavityArea)
	}
}

// Intersecting two cubes offset by half an edge yields the smaller overlap
// box: 6 faces bounded by the tighter of each axis pair.
func TestProcess_Intersection(t *testing.T) {
	a := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.5, brush.Additive, 0)
	b := mustCube(t, mgl64.Vec3{0.5, 0, 0}, 0.5, brush.Intersect, 1)
	out := Process([]brush.Brush{a, b})
	if len(out) != 6 {
		t.Fatalf("got %d faces, want 6", len(out))
	}
	// overlap region: x in [0, 0.5], y,z in [-0.5, 0.5] -> a 0.5x1x1 box.
	want := 2 * (0.5*1 + 0.5*1 + 1*1)
	if area := totalArea(out); math.Abs(area-want) > 1e-6 {
		t.Fatalf("got area %v, want %v", area, want)
	}
}

// Chain order matters: an Additive brush after a Subtractive one that
// removed the same region restores it (later brushes dominate ties, and
// union with empty is identity for disjoint volumes).
func TestProcess_OrderSensitive(t *testing.T) {
	outer := mustCube(t, mgl64.Vec3{0, 0, 0}, 1.0, brush.Additive, 0)
	carve := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.25, brush.Subtractive, 1)
	refill := mustCube(t, mgl64.Vec3{0, 0, 0}, 0.25, brush.Additive, 2)

	withoutRefill := Process([]brush.Brush{outer, carve})
	withRefill := Process([]brush.Brush{outer, carve, refill})

	if len(withRefill) == len(withoutRefill) {
		t.Fatalf("expected refilled chain to differ in face count from carved-only chain")
	}
}

func TestProcess_EmptyChain(t *testing.T) {
	if out := Process(nil); out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}
