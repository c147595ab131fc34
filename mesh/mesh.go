package mesh

import "github.com/go-gl/mathgl/mgl64"

// TriIndex indexes Mesh.Triangles. VertIndex indexes Mesh.Vertices.
type TriIndex int
type VertIndex int

// noNeighbor marks a triangle edge with no adjacent triangle in
// Mesh.triNeighbors.
const noNeighbor = TriIndex(-1)

// triVerts is a triangle's three vertex indices into a Mesh's vertex list.
type triVerts [3]VertIndex

// Mesh is a triangle mesh in a local frame, together with its world
// transform and the adjacency tables built once at registration. Triangle
// and vertex data never change after NewMesh returns; only Transform does.
type Mesh struct {
	vertices  []mgl64.Vec3
	triangles []triVerts

	// incidentTris[v] lists every triangle containing vertex v.
	incidentTris [][]TriIndex
	// triNeighbors[t][e] is the triangle sharing triangle t's edge e
	// (e=0: A-B, e=1: B-C, e=2: C-A), or noNeighbor if the edge is a
	// mesh boundary.
	triNeighbors [][3]TriIndex

	Transform Transform
}

// NewMesh builds a mesh from a vertex list and triangles given as vertex
// index triples, validating indices and rejecting degenerate triangles, and
// computes the incident-triangle and edge-neighbor tables once. The
// resulting topology is immutable; only m.Transform should change
// thereafter.
func NewMesh(vertices []mgl64.Vec3, triangles [][3]int) (*Mesh, error) {
	m := &Mesh{
		vertices:  append([]mgl64.Vec3(nil), vertices...),
		Transform: NewTransform(),
	}

	for _, tv := range triangles {
		for _, vi := range tv {
			if vi < 0 || vi >= len(m.vertices) {
				return nil, ErrInvalidVertexID
			}
		}
		tri := triVerts{VertIndex(tv[0]), VertIndex(tv[1]), VertIndex(tv[2])}
		if m.triangle(tri).Degenerate() {
			return nil, ErrDegenerateTriangle
		}
		m.triangles = append(m.triangles, tri)
	}

	m.buildTopology()
	return m, nil
}

// triangle returns the Triangle for a given vertex-index triple, resolved
// against m.vertices.
func (m *Mesh) triangle(tv triVerts) Triangle {
	return Triangle{A: m.vertices[tv[0]], B: m.vertices[tv[1]], C: m.vertices[tv[2]]}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.triangles) }

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// LocalTriangle returns the local-frame Triangle at index t.
func (m *Mesh) LocalTriangle(t TriIndex) Triangle {
	return m.triangle(m.triangles[t])
}

// WorldTriangle returns the Triangle at index t transformed into world
// space by m.Transform.
func (m *Mesh) WorldTriangle(t TriIndex) Triangle {
	tv := m.triangles[t]
	return Triangle{
		A: m.Transform.TransformPoint(m.vertices[tv[0]]),
		B: m.Transform.TransformPoint(m.vertices[tv[1]]),
		C: m.Transform.TransformPoint(m.vertices[tv[2]]),
	}
}

// IncidentTriangles returns the triangles containing vertex v.
func (m *Mesh) IncidentTriangles(v VertIndex) []TriIndex {
	return m.incidentTris[v]
}

// Neighbor returns the triangle sharing triangle t's edge e (0: A-B, 1: B-C,
// 2: C-A), or noNeighbor if that edge is a mesh boundary.
func (m *Mesh) Neighbor(t TriIndex, e int) TriIndex {
	return m.triNeighbors[t][e]
}

// VertexIndices returns triangle t's three vertex indices.
func (m *Mesh) VertexIndices(t TriIndex) [3]VertIndex {
	return [3]VertIndex(m.triangles[t])
}

// WorldAABB returns the bounding box of every triangle in the mesh,
// transformed to world space.
func (m *Mesh) WorldAABB() AABB {
	wt := m.Transform.TransformPoint(m.vertices[0])
	box := AABB{Min: wt, Max: wt}
	for _, v := range m.vertices[1:] {
		wv := m.Transform.TransformPoint(v)
		box.Min = mgl64.Vec3{
			minF(box.Min.X(), wv.X()),
			minF(box.Min.Y(), wv.Y()),
			minF(box.Min.Z(), wv.Z()),
		}
		box.Max = mgl64.Vec3{
			maxF(box.Max.X(), wv.X()),
			maxF(box.Max.Y(), wv.Y()),
			maxF(box.Max.Z(), wv.Z()),
		}
	}
	return box
}

// WorldTriangleAABB returns triangle t's bounding box in world space.
func (m *Mesh) WorldTriangleAABB(t TriIndex) AABB {
	tri := m.WorldTriangle(t)
	min := mgl64.Vec3{
		minF(minF(tri.A.X(), tri.B.X()), tri.C.X()),
		minF(minF(tri.A.Y(), tri.B.Y()), tri.C.Y()),
		minF(minF(tri.A.Z(), tri.B.Z()), tri.C.Z()),
	}
	max := mgl64.Vec3{
		maxF(maxF(tri.A.X(), tri.B.X()), tri.C.X()),
		maxF(maxF(tri.A.Y(), tri.B.Y()), tri.C.Y()),
		maxF(maxF(tri.A.Z(), tri.B.Z()), tri.C.Z()),
	}
	return AABB{Min: min, Max: max}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// edgeKey canonically orders an undirected edge's two vertex indices so it
// can be used as a map key regardless of winding direction.
type edgeKey struct{ lo, hi VertIndex }

func makeEdgeKey(a, b VertIndex) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// buildTopology computes incidentTris and triNeighbors from the current
// triangle list. Called once by NewMesh.
func (m *Mesh) buildTopology() {
	m.incidentTris = make([][]TriIndex, len(m.vertices))
	m.triNeighbors = make([][3]TriIndex, len(m.triangles))
	for i := range m.triNeighbors {
		m.triNeighbors[i] = [3]TriIndex{noNeighbor, noNeighbor, noNeighbor}
	}

	for ti, tv := range m.triangles {
		for _, vi := range tv {
			m.incidentTris[vi] = append(m.incidentTris[vi], TriIndex(ti))
		}
	}

	// edgeOwners maps each undirected edge to the (triangle, local edge
	// index) pairs that reference it, so each edge finds its other side
	// in a single pass.
	type owner struct {
		tri  TriIndex
		edge int
	}
	edgeOwners := make(map[edgeKey][]owner)
	for ti, tv := range m.triangles {
		edges := [3][2]VertIndex{{tv[0], tv[1]}, {tv[1], tv[2]}, {tv[2], tv[0]}}
		for e, ev := range edges {
			k := makeEdgeKey(ev[0], ev[1])
			edgeOwners[k] = append(edgeOwners[k], owner{tri: TriIndex(ti), edge: e})
		}
	}

	for _, owners := range edgeOwners {
		if len(owners) != 2 {
			continue
		}
		a, b := owners[0], owners[1]
		m.triNeighbors[a.tri][a.edge] = b.tri
		m.triNeighbors[b.tri][b.edge] = a.tri
	}
}
