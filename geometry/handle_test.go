package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCreateCustomAndTotalMargin(t *testing.T) {
	m := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	g := NewTriangleMeshGeometry(m, 0.25)
	h := CreateCustom(g, 0.1)

	if got, want := h.totalMargin(), 0.35; got != want {
		t.Fatalf("totalMargin() = %v, want %v", got, want)
	}
}

func TestAABBInflatesByOuterMargin(t *testing.T) {
	m := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}, [][3]int{{0, 1, 2}})
	g := NewTriangleMeshGeometry(m, 0)
	h := CreateCustom(g, 1.0)

	got := AABB(h)
	want := [6]float64{-1, 3, -1, 3, -1, 1}
	if got != want {
		t.Fatalf("AABB() = %v, want %v", got, want)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init()
	if !initialized {
		t.Fatalf("Init() did not record initialization")
	}
}
