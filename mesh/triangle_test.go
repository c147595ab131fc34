package mesh

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func rightTriangle() Triangle {
	return Triangle{
		A: mgl64.Vec3{0, 0, 0},
		B: mgl64.Vec3{1, 0, 0},
		C: mgl64.Vec3{0, 1, 0},
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := rightTriangle()
	n := tri.Normal()
	want := mgl64.Vec3{0, 0, 1}
	if n.Sub(want).Len() > 1e-9 {
		t.Fatalf("Normal() = %v, want %v", n, want)
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	tri := Triangle{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{1, 0, 0}, C: mgl64.Vec3{2, 0, 0}}
	n := tri.Normal()
	if n.Len() != 0 {
		t.Fatalf("Normal() of degenerate triangle = %v, want zero vector", n)
	}
}

func TestTriangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want bool
	}{
		{"non-degenerate", rightTriangle(), false},
		{"collinear", Triangle{A: mgl64.Vec3{0, 0, 0}, B: mgl64.Vec3{1, 0, 0}, C: mgl64.Vec3{2, 0, 0}}, true},
		{"coincident", Triangle{A: mgl64.Vec3{1, 1, 1}, B: mgl64.Vec3{1, 1, 1}, C: mgl64.Vec3{1, 1, 1}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tri.Degenerate(); got != tt.want {
				t.Errorf("Degenerate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangleBarycentricVertices(t *testing.T) {
	tri := rightTriangle()
	tests := []struct {
		name string
		p    mgl64.Vec3
		want BarycentricCoords
	}{
		{"at A", tri.A, BarycentricCoords{1, 0, 0}},
		{"at B", tri.B, BarycentricCoords{0, 1, 0}},
		{"at C", tri.C, BarycentricCoords{0, 0, 1}},
		{"centroid", mgl64.Vec3{1.0 / 3, 1.0 / 3, 0}, BarycentricCoords{1.0 / 3, 1.0 / 3, 1.0 / 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tri.Barycentric(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 || math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("Barycentric(%v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestTriangleClosestPointOnFace(t *testing.T) {
	tri := rightTriangle()
	p := mgl64.Vec3{0.2, 0.2, 0.5}
	cp, _ := tri.ClosestPoint(p)
	want := mgl64.Vec3{0.2, 0.2, 0}
	if cp.Sub(want).Len() > 1e-9 {
		t.Fatalf("ClosestPoint(%v) = %v, want %v", p, cp, want)
	}
}

func TestTriangleClosestPointOutsideVertexRegion(t *testing.T) {
	tri := rightTriangle()
	p := mgl64.Vec3{-1, -1, 0}
	cp, bary := tri.ClosestPoint(p)
	if cp.Sub(tri.A).Len() > 1e-9 {
		t.Fatalf("ClosestPoint(%v) = %v, want vertex A %v", p, cp, tri.A)
	}
	if bary.X != 1 || bary.Y != 0 || bary.Z != 0 {
		t.Errorf("Barycentric at vertex A = %+v, want {1,0,0}", bary)
	}
}

func TestTriangleClosestPointOutsideEdgeRegion(t *testing.T) {
	tri := rightTriangle()
	p := mgl64.Vec3{0.5, -1, 0}
	cp, _ := tri.ClosestPoint(p)
	want := mgl64.Vec3{0.5, 0, 0}
	if cp.Sub(want).Len() > 1e-9 {
		t.Fatalf("ClosestPoint(%v) = %v, want %v (on edge A-B)", p, cp, want)
	}
}
