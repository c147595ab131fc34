package normal

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/feature"
	"github.com/akmonengine/geocontact/mesh"
)

var degenerateMeshPointWarn = NewThrottle(degenerateWarnPeriod)

// MeshPoint resolves the contact normal for the closest point on triangle t
// of m to an external point, given p — that closest point expressed in m's
// local frame — and closestPt, the external point that produced it. The
// returned direction is the one triangle t's mesh would need to move in to
// separate from closestPt.
//
// closestPt is accepted for parity with the feature-dispatch signature used
// throughout this package, but it does not affect the result: the normal is
// derived purely from which feature of t the point p landed on.
func MeshPoint(m *mesh.Mesh, t mesh.TriIndex, p mgl64.Vec3, closestPt mgl64.Vec3) mgl64.Vec3 {
	_ = closestPt
	tri := m.LocalTriangle(t)
	b := tri.Barycentric(p)

	switch feature.Classify(b) {
	case feature.Vertex:
		return VertexNormal(m, t, feature.VertexIndex(b)).Mul(-1)
	case feature.Edge:
		e := feature.EdgeIndex(b)
		return EdgeNormal(m, t, e).Mul(-1)
	case feature.Face:
		return m.Transform.TransformVector(tri.Normal().Mul(-1))
	}

	if degenerateMeshPointWarn.Allow() {
		slog.Warn("normal.MeshPoint: degenerate feature", "tri", t)
	}
	return mgl64.Vec3{}
}
