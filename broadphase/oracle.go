// Package broadphase supplies the candidate-pair and nearby-triangle
// queries the contact generators drive: the generators never walk mesh
// topology looking for close features themselves, they ask an Oracle.
//
// The default Oracle implementation is a uniform spatial hash over triangle
// AABBs, trading broad-phase precision for a cheap, conservative
// within-distance pre-check.
package broadphase

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// Oracle is the broad-phase collaborator the contact generators consume.
// Implementations may use any acceleration structure; the default in this
// package is a uniform spatial hash over triangle AABBs.
type Oracle interface {
	// WithinDistanceAll reports whether any part of m1 and m2 might lie
	// within tol of each other. It is a cheap, possibly conservative
	// pre-check: false negatives are not allowed, false positives are
	// acceptable (TolerancePairs is the precise query).
	WithinDistanceAll(m1, m2 *mesh.Mesh, tol float64) bool

	// TolerancePairs returns every triangle pair (one from m1, one from
	// m2) whose closest points lie within tol, together with those
	// closest points expressed in each mesh's own local frame.
	TolerancePairs(m1, m2 *mesh.Mesh, tol float64) []MeshPair

	// NearbyTriangles returns every triangle of m whose closest point to
	// the world-frame point p is within tol, together with that closest
	// point in m's local frame.
	NearbyTriangles(m *mesh.Mesh, p mgl64.Vec3, tol float64) []TrianglePoint
}

// MeshPair is one candidate triangle pair returned by TolerancePairs. CP1
// and CP2 are the pair's closest points, each in its own mesh's local
// frame.
type MeshPair struct {
	T1, T2 mesh.TriIndex
	CP1    mgl64.Vec3
	CP2    mgl64.Vec3
}

// TrianglePoint is one candidate triangle returned by NearbyTriangles. CP
// is the triangle's closest point to the query point, in the mesh's local
// frame.
type TrianglePoint struct {
	T  mesh.TriIndex
	CP mgl64.Vec3
}
