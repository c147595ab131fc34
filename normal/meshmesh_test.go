package normal

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

func mustMesh(t *testing.T, verts []mgl64.Vec3, tris [][3]int) *mesh.Mesh {
	t.Helper()
	m, err := mesh.NewMesh(verts, tris)
	if err != nil {
		t.Fatalf("NewMesh() error = %v", err)
	}
	return m
}

func closeEnough(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestMeshMeshVertexVertex(t *testing.T) {
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	// Reverse winding so the triangle's normal points -Z.
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, -1, 0}}, [][3]int{{0, 1, 2}})

	got := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !closeEnough(got, want, 1e-9) {
		t.Fatalf("MeshMesh vertex-vertex = %v, want %v", got, want)
	}
}

func TestMeshMeshEdgeEdge(t *testing.T) {
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}, [][3]int{{0, 1, 2}})
	m2.Transform.Position = mgl64.Vec3{0, 0, 2}

	// p1 = midpoint of m1's edge A-B; p2 = midpoint of m2's edge A-B.
	got := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{0, 0.5, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !closeEnough(got, want, 1e-9) {
		t.Fatalf("MeshMesh edge-edge = %v, want %v", got, want)
	}
}

func TestMeshMeshVertexEdgeAndEdgeVertexAreNotSymmetric(t *testing.T) {
	// Same two triangles used for both cases below: a non-symmetric
	// formula should give different results from the vertex-edge and
	// edge-vertex dispatches even though the underlying mesh geometry is
	// the same in both calls.
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {0, 1, 0}, {1, 0, 1}}, [][3]int{{0, 1, 2}})
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})

	// vertex-edge: p1 at m1's vertex A, p2 at the midpoint of m2's edge A-B.
	ve := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0.5, 0, 0})
	wantVE := mgl64.Vec3{0, 0, 1}
	if !closeEnough(ve, wantVE, 1e-6) {
		t.Fatalf("vertex-edge normal = %v, want %v", ve, wantVE)
	}

	// edge-vertex: p1 at the midpoint of m1's edge A-B, p2 at m2's vertex A.
	ev := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{0, 0, 0})
	// normalize((0,0,1) - (1,0,-1)/sqrt2): the vertex normal minus m1's
	// edge normal, nothing projected out since the edge is orthogonal to
	// the vertex normal here.
	wantEV := mgl64.Vec3{-0.3826834323650898, 0, 0.9238795325112867}
	if !closeEnough(ev, wantEV, 1e-6) {
		t.Fatalf("edge-vertex normal = %v, want %v", ev, wantEV)
	}

	if closeEnough(ve, ev, 1e-3) {
		t.Fatalf("vertex-edge and edge-vertex produced the same normal (%v); they must not be symmetrized", ve)
	}
}

func TestMeshMeshVertexFaceReturnsOtherFaceNormalUnnegated(t *testing.T) {
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, -1, 0}}, [][3]int{{0, 1, 2}})

	// p1 at m1's vertex A; p2 at m2's centroid (A2=(0,0,0), B2=(1,0,0),
	// C2=(0,-1,0), so the centroid is (1/3,-1/3,0)), interior to its face.
	got := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1.0 / 3, -1.0 / 3, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !closeEnough(got, want, 1e-9) {
		t.Fatalf("MeshMesh vertex-face = %v, want %v", got, want)
	}
}

func TestMeshMeshFaceFaceNegatesTri1Normal(t *testing.T) {
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})

	got := MeshMesh(m1, m2, 0, 0, mgl64.Vec3{1.0 / 3, 1.0 / 3, 0}, mgl64.Vec3{1.0 / 3, 1.0 / 3, 0})
	want := mgl64.Vec3{0, 0, -1}
	if !closeEnough(got, want, 1e-9) {
		t.Fatalf("MeshMesh face-face = %v, want %v", got, want)
	}
}

func TestEdgeEdgeDegenerateParallelEdges(t *testing.T) {
	m1 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	m2 := mustMesh(t, []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, [][3]int{{0, 1, 2}})
	m2.Transform.Position = mgl64.Vec3{0, 0, 1}

	// Both edges are A-B and parallel in world space: the cross product
	// degenerates to zero length, which must not panic or divide by zero.
	b1 := mesh.BarycentricCoords{X: 0.5, Y: 0.5, Z: 0}
	b2 := mesh.BarycentricCoords{X: 0.5, Y: 0.5, Z: 0}
	got := edgeEdge(m1, m2, 0, 0, m1.LocalTriangle(0), m2.LocalTriangle(0), b1, b2)
	if got.Len() > 1e-9 {
		t.Fatalf("edgeEdge with parallel edges = %v, want zero vector", got)
	}
}
