// Package geometry ties a concrete shape (mesh, point cloud, or — as
// dispatch stubs only — a primitive or implicit surface) to a world
// transform and an inner margin, and dispatches pairs of such geometries to
// the right contact generator.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// Type tags which payload a Geometry carries. It is immutable after
// construction: a Geometry built as a TriangleMesh never becomes a
// PointCloud.
type Type int

const (
	// Primitive covers spheres, boxes, planes and similar analytic shapes.
	// No primitive collision routine is implemented; dispatch involving a
	// Primitive always falls through to the unsupported-pair stub.
	Primitive Type = iota
	// TriangleMesh is a mesh.Mesh payload.
	TriangleMesh
	// PointCloud is a mesh.PointCloud payload.
	PointCloud
	// ImplicitSurface covers signed-distance or similar implicit shapes.
	// Like Primitive, it is a dispatch stub only.
	ImplicitSurface
)

func (t Type) String() string {
	switch t {
	case Primitive:
		return "Primitive"
	case TriangleMesh:
		return "TriangleMesh"
	case PointCloud:
		return "PointCloud"
	case ImplicitSurface:
		return "ImplicitSurface"
	default:
		return "Unknown"
	}
}

// Geometry is a tagged variant over the shape kinds the collision core
// knows about, together with the per-geometry inner margin the host engine
// adds on top of CustomGeometryData's outer margin.
type Geometry struct {
	Type   Type
	Margin float64

	tmesh *mesh.Mesh
	cloud *mesh.PointCloud
}

// NewTriangleMeshGeometry wraps m as a TriangleMesh Geometry.
func NewTriangleMeshGeometry(m *mesh.Mesh, margin float64) *Geometry {
	return &Geometry{Type: TriangleMesh, Margin: margin, tmesh: m}
}

// NewPointCloudGeometry wraps pc as a PointCloud Geometry.
func NewPointCloudGeometry(pc *mesh.PointCloud, margin float64) *Geometry {
	return &Geometry{Type: PointCloud, Margin: margin, cloud: pc}
}

// NewPrimitiveGeometry builds a dispatch-stub-only Primitive Geometry; no
// collision routine consumes its payload.
func NewPrimitiveGeometry(margin float64) *Geometry {
	return &Geometry{Type: Primitive, Margin: margin}
}

// NewImplicitSurfaceGeometry builds a dispatch-stub-only ImplicitSurface
// Geometry; no collision routine consumes its payload.
func NewImplicitSurfaceGeometry(margin float64) *Geometry {
	return &Geometry{Type: ImplicitSurface, Margin: margin}
}

// SetTransform records g's current world transform. For a TriangleMesh or
// PointCloud this is forwarded to the payload; it is a no-op for the
// dispatch-stub types.
func (g *Geometry) SetTransform(t mesh.Transform) {
	switch g.Type {
	case TriangleMesh:
		g.tmesh.Transform = t
	case PointCloud:
		g.cloud.Transform = t
	}
}

// Mesh returns g's mesh payload and true if g.Type is TriangleMesh.
func (g *Geometry) Mesh() (*mesh.Mesh, bool) {
	if g.Type != TriangleMesh {
		return nil, false
	}
	return g.tmesh, true
}

// PointCloud returns g's point cloud payload and true if g.Type is
// PointCloud.
func (g *Geometry) PointCloud() (*mesh.PointCloud, bool) {
	if g.Type != PointCloud {
		return nil, false
	}
	return g.cloud, true
}

// AABB returns g's local-to-world bounding box, or the zero AABB for the
// dispatch-stub types (Primitive, ImplicitSurface), which carry no shape
// data to bound.
func (g *Geometry) AABB() mesh.AABB {
	switch g.Type {
	case TriangleMesh:
		return g.tmesh.WorldAABB()
	case PointCloud:
		return pointCloudAABB(g.cloud)
	default:
		return mesh.AABB{}
	}
}

func pointCloudAABB(pc *mesh.PointCloud) mesh.AABB {
	box := mesh.AABB{Min: pc.WorldPoint(0), Max: pc.WorldPoint(0)}
	for i := 1; i < pc.Count(); i++ {
		p := pc.WorldPoint(i)
		box.Min = mgl64.Vec3{minF(box.Min.X(), p.X()), minF(box.Min.Y(), p.Y()), minF(box.Min.Z(), p.Z())}
		box.Max = mgl64.Vec3{maxF(box.Max.X(), p.X()), maxF(box.Max.Y(), p.Y()), maxF(box.Max.Z(), p.Z())}
	}
	return box
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
