package broadphase

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// baryTolerance is the slack allowed on barycentric coordinates when
// deciding whether a plane/segment intersection point lies inside a
// triangle, to avoid rejecting intersections exactly on an edge.
const baryTolerance = 1e-9

// Intersect reports whether triangles a and b overlap in 3D, used by the
// penetration filter to detect broad-phase witnesses that have collapsed
// past the contact margin. It tests each triangle's three edges as
// segments against the other triangle's plane and interior, which finds
// every intersection of non-coplanar triangles. Two coplanar triangles are
// never reported as intersecting, however much they overlap.
func Intersect(a, b mesh.Triangle) bool {
	if edgesCrossTriangle(a, b) {
		return true
	}
	return edgesCrossTriangle(b, a)
}

func edgesCrossTriangle(from, into mesh.Triangle) bool {
	for e := 0; e < 3; e++ {
		s0, s1 := from.Edge(e)
		if segmentCrossesTriangle(s0, s1, into) {
			return true
		}
	}
	return false
}

// segmentCrossesTriangle tests whether segment p0-p1 pierces triangle tri:
// it finds where the segment crosses tri's plane and checks that crossing
// point's barycentric coordinates against tri.
func segmentCrossesTriangle(p0, p1 mgl64.Vec3, tri mesh.Triangle) bool {
	n := tri.Normal()
	if n.Len() == 0 {
		return false
	}

	d0 := n.Dot(p0.Sub(tri.A))
	d1 := n.Dot(p1.Sub(tri.A))
	if d0 > 0 && d1 > 0 {
		return false
	}
	if d0 < 0 && d1 < 0 {
		return false
	}
	if d0 == d1 {
		// Segment parallel to (or lying in) the plane; coplanar overlap
		// is not handled here.
		return false
	}

	t := d0 / (d0 - d1)
	p := p0.Add(p1.Sub(p0).Mul(t))
	b := tri.Barycentric(p)
	return b.X >= -baryTolerance && b.Y >= -baryTolerance && b.Z >= -baryTolerance
}
