package normal

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/feature"
	"github.com/akmonengine/geocontact/mesh"
)

// degenerateWarnPeriod throttles the "degenerate feature pair" warning to
// once every 10000 occurrences, matching the frequency a hot contact
// generator would otherwise flood the log at.
const degenerateWarnPeriod = 10000

var degenerateWarn = NewThrottle(degenerateWarnPeriod)

// MeshMesh resolves the contact normal between triangle t1 of m1 and
// triangle t2 of m2, given the contact points p1 and p2 in their
// respective meshes' local frames. It dispatches on the barycentric
// feature each point lands on (vertex, edge, or face) and combines local
// mesh normals accordingly; the nine feature-pair cases are not
// symmetric under swapping m1/m2 — in particular vertex-edge and
// edge-vertex use distinct formulas, not swapped arguments: vertex-edge
// subtracts the part of m1's vertex normal perpendicular to m2's edge from
// m2's edge normal, while edge-vertex subtracts m1's edge normal from the
// part of m2's vertex normal perpendicular to m1's edge.
func MeshMesh(m1, m2 *mesh.Mesh, t1, t2 mesh.TriIndex, p1, p2 mgl64.Vec3) mgl64.Vec3 {
	tri1 := m1.LocalTriangle(t1)
	tri2 := m2.LocalTriangle(t2)
	b1 := tri1.Barycentric(p1)
	b2 := tri2.Barycentric(p2)
	type1 := feature.Classify(b1)
	type2 := feature.Classify(b2)

	switch type1 {
	case feature.Vertex:
		switch type2 {
		case feature.Vertex:
			return vertexVertex(m1, m2, t1, t2, b1, b2)
		case feature.Edge:
			return vertexEdge(m1, m2, t1, t2, tri2, b1, b2)
		case feature.Face:
			return m2.Transform.TransformVector(tri2.Normal())
		}
	case feature.Edge:
		switch type2 {
		case feature.Vertex:
			return edgeVertex(m1, m2, t1, t2, tri1, b1, b2)
		case feature.Edge:
			return edgeEdge(m1, m2, t1, t2, tri1, tri2, b1, b2)
		case feature.Face:
			return m2.Transform.TransformVector(tri2.Normal())
		}
	case feature.Face:
		if type2 == feature.Face {
			slog.Warn("normal.MeshMesh: face-face contact", "tri1", t1, "tri2", t2)
		}
		return m1.Transform.TransformVector(tri1.Normal().Mul(-1))
	}

	if degenerateWarn.Allow() {
		slog.Warn("normal.MeshMesh: degenerate feature pair", "type1", type1, "type2", type2)
	}
	return mgl64.Vec3{}
}

// vertexVertex resolves the point-point case: the direction from m1's
// vertex normal toward m2's.
func vertexVertex(m1, m2 *mesh.Mesh, t1, t2 mesh.TriIndex, b1, b2 mesh.BarycentricCoords) mgl64.Vec3 {
	n1 := VertexNormal(m1, t1, feature.VertexIndex(b1))
	n2 := VertexNormal(m2, t2, feature.VertexIndex(b2))
	return normalize(n2.Sub(n1))
}

// vertexEdge resolves the point-edge case: m2's edge normal, with m1's
// vertex normal's component along the edge direction subtracted out (i.e.
// n1 projected onto the plane perpendicular to the edge) removed from it.
func vertexEdge(m1, m2 *mesh.Mesh, t1, t2 mesh.TriIndex, tri2 mesh.Triangle, b1, b2 mesh.BarycentricCoords) mgl64.Vec3 {
	n1 := VertexNormal(m1, t1, feature.VertexIndex(b1))
	e := feature.EdgeIndex(b2)
	ea, eb := tri2.Edge(e)
	ev := m2.Transform.TransformVector(eb.Sub(ea))
	n2 := EdgeNormal(m2, t2, e)
	n2 = n2.Sub(n1.Sub(ev.Mul(ev.Dot(n1) / ev.Dot(ev))))
	return normalize(n2)
}

// edgeVertex resolves the edge-point case. It is NOT vertexEdge with its
// arguments swapped: here it is m2's vertex normal that gets projected
// perpendicular to m1's edge before m1's own edge normal is subtracted.
func edgeVertex(m1, m2 *mesh.Mesh, t1, t2 mesh.TriIndex, tri1 mesh.Triangle, b1, b2 mesh.BarycentricCoords) mgl64.Vec3 {
	n2 := VertexNormal(m2, t2, feature.VertexIndex(b2))
	e := feature.EdgeIndex(b1)
	ea, eb := tri1.Edge(e)
	ev := m1.Transform.TransformVector(eb.Sub(ea))
	n1 := EdgeNormal(m1, t1, e)
	n2 = n2.Sub(ev.Mul(ev.Dot(n2) / ev.Dot(ev)))
	n2 = n2.Sub(n1)
	return normalize(n2)
}

// edgeEdge resolves the edge-edge case: the cross product of the two edge
// directions, oriented so it points away from m2's edge and into m1's.
func edgeEdge(m1, m2 *mesh.Mesh, t1, t2 mesh.TriIndex, tri1, tri2 mesh.Triangle, b1, b2 mesh.BarycentricCoords) mgl64.Vec3 {
	e1 := feature.EdgeIndex(b1)
	s1a, s1b := tri1.Edge(e1)
	ev1 := normalize(m1.Transform.TransformVector(s1b.Sub(s1a)))

	e2 := feature.EdgeIndex(b2)
	s2a, s2b := tri2.Edge(e2)
	ev2 := normalize(m2.Transform.TransformVector(s2b.Sub(s2a)))

	n := ev1.Cross(ev2)
	l := n.Len()
	if l < ZeroNormalTolerance {
		// Edges are parallel or anti-parallel; the cross product has no
		// well-defined direction. An exactly zero cross product returns the
		// zero vector, which the caller's zero-length check drops; any other
		// length is divided out below, so a nearly parallel pair still
		// yields a unit normal whose direction is numerically unreliable.
		if l == 0 {
			return mgl64.Vec3{}
		}
	}
	n = n.Mul(1 / l)

	// Orient n so it points into m1's edge and out of m2's.
	p1 := m1.Transform.TransformPoint(s1a)
	p2 := m2.Transform.TransformPoint(s2a)
	if n.Dot(p1) < n.Dot(p2) {
		n = n.Mul(-1)
	}
	return n
}
