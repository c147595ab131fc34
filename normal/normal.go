// Package normal resolves a contact normal from the local mesh geometry
// around a feature pair, following the same vertex/edge/face case analysis
// a narrow phase would use when the two colliding triangles share (or
// nearly share) a feature rather than meeting cleanly face-to-face.
package normal

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// ZeroNormalTolerance is the length below which a computed normal is
// considered degenerate (e.g. two edges that turned out to be parallel).
const ZeroNormalTolerance = 1e-4

func normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// VertexNormal returns the world-space normal at vertex vnum (0, 1, or 2)
// of triangle t in m, averaged over every triangle incident to that vertex
// in the mesh's fixed topology.
func VertexNormal(m *mesh.Mesh, t mesh.TriIndex, vnum int) mgl64.Vec3 {
	v := m.VertexIndices(t)[vnum]
	var n mgl64.Vec3
	for _, it := range m.IncidentTriangles(v) {
		n = n.Add(m.LocalTriangle(it).Normal())
	}
	return m.Transform.TransformVector(normalize(n))
}

// EdgeNormal returns the world-space normal along edge e of triangle t in
// m: the triangle's own face normal, averaged with its neighbor's face
// normal across that edge if one exists.
func EdgeNormal(m *mesh.Mesh, t mesh.TriIndex, e int) mgl64.Vec3 {
	n := m.LocalTriangle(t).Normal()
	if nb := m.Neighbor(t, e); nb >= 0 {
		n = normalize(n.Add(m.LocalTriangle(nb).Normal()))
	}
	return m.Transform.TransformVector(n)
}
