package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/contact"
	"github.com/akmonengine/geocontact/mesh"
	"github.com/akmonengine/geocontact/normal"
)

// MeshPointCloud generates contacts between triangle mesh m and point cloud
// pc: for each point, it queries nearby triangles and emits a contact for
// every one close enough, following the same coincident/beyond-margin/
// ordinary branching as MeshMesh.
func MeshPointCloud(m *mesh.Mesh, marginM float64, pc *mesh.PointCloud, marginPC float64, cfg Config, contacts []contact.Geom) int {
	tol := marginM + marginPC
	oracle := cfg.oracleFor(tol)

	n := 0
	for i := 0; i < pc.Count(); i++ {
		if n == len(contacts) {
			break
		}
		p := pc.WorldPoint(i)

		for _, tp := range oracle.NearbyTriangles(m, p, tol) {
			if n == len(contacts) {
				break
			}

			c := m.Transform.TransformPoint(tp.CP)
			v := c.Sub(p)
			d := v.Len()

			var nrm mgl64.Vec3
			switch {
			case d < coincidentWitnessTolerance:
				nrm = normal.MeshPoint(m, tp.T, tp.CP, p)
			case d > tol:
				continue
			default:
				nrm = v.Mul(1 / d)
			}

			l := nrm.Len()
			if l < zeroNormalTolerance || math.IsNaN(l) || math.IsInf(l, 0) {
				continue
			}

			pos := c.Add(p).Mul(0.5).Add(nrm.Mul((marginPC - marginM) * 0.5))
			depth := tol - d
			if depth < 0 {
				depth = 0
			}

			contacts[n] = contact.Geom{
				Pos:    pos,
				Normal: nrm,
				Depth:  depth,
				Side1:  int(tp.T),
				Side2:  i,
			}
			n++
		}
	}
	return n
}

// PointCloudMesh generates contacts between point cloud pc and triangle
// mesh m by running MeshPointCloud and reversing every resulting contact,
// so side indices and the contact normal stay oriented relative to (pc, m)
// rather than (m, pc).
func PointCloudMesh(pc *mesh.PointCloud, marginPC float64, m *mesh.Mesh, marginM float64, cfg Config, contacts []contact.Geom) int {
	n := MeshPointCloud(m, marginM, pc, marginPC, cfg, contacts)
	for i := 0; i < n; i++ {
		contact.Reverse(&contacts[i])
	}
	return n
}
