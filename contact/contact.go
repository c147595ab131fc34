// Package contact defines the contact point type the collision core emits
// and hands back to the host engine's constraint solver.
package contact

import "github.com/go-gl/mathgl/mgl64"

// Handle identifies one of the two geometries a Geom was generated from.
// The collision core treats it as an opaque token it stamps onto every
// contact it emits for a given dispatch call; it never dereferences it.
type Handle interface{}

// Geom is one contact point in world space, equivalent to the host engine's
// dContactGeom: a position on the surface between the two geometries, a
// unit normal pointing out of G2 into G1, and a penetration depth. Side1
// and Side2 are feature indices (e.g. triangle index) on each geometry,
// useful to the engine for warm-starting or debugging; the core does not
// interpret them itself.
type Geom struct {
	Pos    mgl64.Vec3
	Normal mgl64.Vec3
	Depth  float64

	Side1, Side2 int
	G1, G2       Handle
}

// Reverse swaps the two sides of a contact in place: G1/G2 and Side1/Side2
// trade places and Normal is negated, so the contact reads as having been
// generated with the geometries in the opposite order. Used to derive
// PointCloud-Mesh contacts from the Mesh-PointCloud generator without a
// separate implementation.
func Reverse(c *Geom) {
	c.G1, c.G2 = c.G2, c.G1
	c.Side1, c.Side2 = c.Side2, c.Side1
	c.Normal = c.Normal.Mul(-1)
}
