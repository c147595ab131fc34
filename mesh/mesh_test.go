package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// quad returns two triangles sharing edge (1,2): a unit square split along
// its diagonal.
//
//	2---3
//	|\  |
//	| \ |
//	0---1
func quad() ([]mgl64.Vec3, [][3]int) {
	verts := []mgl64.Vec3{
		{0, 0, 0}, // 0
		{1, 0, 0}, // 1
		{0, 1, 0}, // 2
		{1, 1, 0}, // 3
	}
	tris := [][3]int{
		{0, 1, 2}, // t0
		{1, 3, 2}, // t1
	}
	return verts, tris
}

func TestNewMeshRejectsInvalidVertexID(t *testing.T) {
	verts, _ := quad()
	_, err := NewMesh(verts, [][3]int{{0, 1, 9}})
	if !errors.Is(err, ErrInvalidVertexID) {
		t.Fatalf("NewMesh() error = %v, want ErrInvalidVertexID", err)
	}
}

func TestNewMeshRejectsDegenerateTriangle(t *testing.T) {
	verts := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	_, err := NewMesh(verts, [][3]int{{0, 1, 2}})
	if !errors.Is(err, ErrDegenerateTriangle) {
		t.Fatalf("NewMesh() error = %v, want ErrDegenerateTriangle", err)
	}
}

func TestMeshTopologyIncidentTriangles(t *testing.T) {
	verts, tris := quad()
	m, err := NewMesh(verts, tris)
	if err != nil {
		t.Fatalf("NewMesh() error = %v", err)
	}

	// vertices 1 and 2 are shared by both triangles; 0 and 3 each belong
	// to exactly one.
	if got := m.IncidentTriangles(0); len(got) != 1 {
		t.Errorf("IncidentTriangles(0) = %v, want 1 triangle", got)
	}
	if got := m.IncidentTriangles(1); len(got) != 2 {
		t.Errorf("IncidentTriangles(1) = %v, want 2 triangles", got)
	}
	if got := m.IncidentTriangles(2); len(got) != 2 {
		t.Errorf("IncidentTriangles(2) = %v, want 2 triangles", got)
	}
	if got := m.IncidentTriangles(3); len(got) != 1 {
		t.Errorf("IncidentTriangles(3) = %v, want 1 triangle", got)
	}
}

func TestMeshTopologyNeighbors(t *testing.T) {
	verts, tris := quad()
	m, err := NewMesh(verts, tris)
	if err != nil {
		t.Fatalf("NewMesh() error = %v", err)
	}

	// t0 = (0,1,2): edge1 is B-C = (1,2), shared with t1.
	if got := m.Neighbor(0, 1); got != 1 {
		t.Errorf("Neighbor(t0, edge B-C) = %v, want t1", got)
	}
	// t0's other two edges are boundary.
	if got := m.Neighbor(0, 0); got != noNeighbor {
		t.Errorf("Neighbor(t0, edge A-B) = %v, want noNeighbor", got)
	}
	if got := m.Neighbor(0, 2); got != noNeighbor {
		t.Errorf("Neighbor(t0, edge C-A) = %v, want noNeighbor", got)
	}

	// t1 = (1,3,2): edge2 is C-A = (2,1), shared with t0.
	if got := m.Neighbor(1, 2); got != 0 {
		t.Errorf("Neighbor(t1, edge C-A) = %v, want t0", got)
	}
}

func TestMeshWorldTriangleAppliesTransform(t *testing.T) {
	verts, tris := quad()
	m, err := NewMesh(verts, tris)
	if err != nil {
		t.Fatalf("NewMesh() error = %v", err)
	}
	m.Transform.Position = mgl64.Vec3{5, 0, 0}

	wt := m.WorldTriangle(0)
	lt := m.LocalTriangle(0)
	want := lt.A.Add(mgl64.Vec3{5, 0, 0})
	if wt.A.Sub(want).Len() > 1e-9 {
		t.Errorf("WorldTriangle(0).A = %v, want %v", wt.A, want)
	}
}
