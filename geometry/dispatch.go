package geometry

import (
	"log/slog"

	"github.com/akmonengine/geocontact/contact"
	"github.com/akmonengine/geocontact/mesh"
)

// Collide dispatches the pair (h1, h2) using DefaultConfig. See
// CollideWithConfig.
func Collide(h1, h2 *CustomGeometryData, t1, t2 mesh.Transform, contacts []contact.Geom) int {
	return CollideWithConfig(h1, h2, t1, t2, contacts, DefaultConfig())
}

// CollideWithConfig sets h1 and h2's geometries to transforms t1 and t2,
// then dispatches on the pair of geometry types. Only three type pairs are
// implemented (mesh-mesh, mesh-cloud, cloud-mesh); the remaining thirteen of
// the 4x4 type matrix log an "unsupported pair" warning and return zero
// contacts. len(contacts) is the max-contact bound; every contact written
// has both G1 and G2 stamped with h1 and h2.
func CollideWithConfig(h1, h2 *CustomGeometryData, t1, t2 mesh.Transform, contacts []contact.Geom, cfg Config) int {
	h1.Geometry.SetTransform(t1)
	h2.Geometry.SetTransform(t2)

	n := 0
	switch h1.Geometry.Type {
	case TriangleMesh:
		switch h2.Geometry.Type {
		case TriangleMesh:
			m1, _ := h1.Geometry.Mesh()
			m2, _ := h2.Geometry.Mesh()
			n = MeshMesh(m1, m2, h1.totalMargin(), h2.totalMargin(), cfg, contacts)
		case PointCloud:
			m1, _ := h1.Geometry.Mesh()
			pc2, _ := h2.Geometry.PointCloud()
			n = MeshPointCloud(m1, h1.totalMargin(), pc2, h2.totalMargin(), cfg, contacts)
		default:
			warnUnsupported(h1.Geometry.Type, h2.Geometry.Type)
		}
	case PointCloud:
		switch h2.Geometry.Type {
		case TriangleMesh:
			pc1, _ := h1.Geometry.PointCloud()
			m2, _ := h2.Geometry.Mesh()
			n = PointCloudMesh(pc1, h1.totalMargin(), m2, h2.totalMargin(), cfg, contacts)
		default:
			warnUnsupported(h1.Geometry.Type, h2.Geometry.Type)
		}
	default:
		warnUnsupported(h1.Geometry.Type, h2.Geometry.Type)
	}

	for i := 0; i < n; i++ {
		contacts[i].G1 = h1
		contacts[i].G2 = h2
	}
	return n
}

func warnUnsupported(t1, t2 Type) {
	slog.Warn("geometry.Collide: unsupported geometry pair", "type1", t1, "type2", t2)
}
