package mesh

import "github.com/go-gl/mathgl/mgl64"

// degenerateAreaTolerance bounds the squared length of a triangle's cross
// product below which it is considered to have zero area.
const degenerateAreaTolerance = 1e-12

// BarycentricCoords is a triple (x,y,z) with x+y+z = 1 expressing a point as
// a weighted combination of a triangle's three vertices: p = x*a + y*b + z*c.
// Components may fall slightly outside [0,1] under floating-point error; see
// the feature package for the tolerance applied when classifying them.
type BarycentricCoords struct {
	X, Y, Z float64
}

// Array returns the coordinates as an indexable triple, component i
// corresponding to vertex i of the triangle.
func (b BarycentricCoords) Array() [3]float64 {
	return [3]float64{b.X, b.Y, b.Z}
}

// Triangle is three vertices in a mesh's local frame, wound so that
// Normal() points outward from the front face.
type Triangle struct {
	A, B, C mgl64.Vec3
}

// Normal returns the triangle's unit face normal, (B-A) x (C-A) normalized.
// It is the zero vector for a degenerate triangle.
func (t Triangle) Normal() mgl64.Vec3 {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	l := n.Len()
	if l < 1e-12 {
		return mgl64.Vec3{}
	}
	return n.Mul(1 / l)
}

// Edge returns the two endpoints of triangle edge e, using the same
// numbering as Mesh.Neighbor: 0 is A-B, 1 is B-C, 2 is C-A.
func (t Triangle) Edge(e int) (start, end mgl64.Vec3) {
	switch e {
	case 0:
		return t.A, t.B
	case 1:
		return t.B, t.C
	default:
		return t.C, t.A
	}
}

// Degenerate reports whether the triangle's vertices are collinear or
// coincident, i.e. it spans zero area.
func (t Triangle) Degenerate() bool {
	n := t.B.Sub(t.A).Cross(t.C.Sub(t.A))
	return n.Dot(n) < degenerateAreaTolerance
}

// Barycentric computes p's barycentric coordinates with respect to the
// triangle's plane, using the standard area-ratio method. p is assumed to
// already lie in (or near) the triangle's plane; callers that need the
// in-plane projection should use ClosestPoint first.
func (t Triangle) Barycentric(p mgl64.Vec3) BarycentricCoords {
	v0 := t.B.Sub(t.A)
	v1 := t.C.Sub(t.A)
	v2 := p.Sub(t.A)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return BarycentricCoords{}
	}

	y := (d11*d20 - d01*d21) / denom
	z := (d00*d21 - d01*d20) / denom
	x := 1 - y - z
	return BarycentricCoords{X: x, Y: y, Z: z}
}

// ClosestPoint returns the point on the (solid) triangle closest to p, in
// the same frame as the triangle's vertices, along with its barycentric
// coordinates. This is the standard Ericson-style region test against the
// triangle's three edges and vertices.
func (t Triangle) ClosestPoint(p mgl64.Vec3) (mgl64.Vec3, BarycentricCoords) {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ap := p.Sub(t.A)

	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return t.A, BarycentricCoords{X: 1, Y: 0, Z: 0}
	}

	bp := p.Sub(t.B)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return t.B, BarycentricCoords{X: 0, Y: 1, Z: 0}
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return t.A.Add(ab.Mul(v)), BarycentricCoords{X: 1 - v, Y: v, Z: 0}
	}

	cp := p.Sub(t.C)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return t.C, BarycentricCoords{X: 0, Y: 0, Z: 1}
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return t.A.Add(ac.Mul(w)), BarycentricCoords{X: 1 - w, Y: 0, Z: w}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && (d4-d3) >= 0 && (d5-d6) >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return t.B.Add(t.C.Sub(t.B).Mul(w)), BarycentricCoords{X: 0, Y: 1 - w, Z: w}
	}

	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return t.A.Add(ab.Mul(v)).Add(ac.Mul(w)), BarycentricCoords{X: 1 - v - w, Y: v, Z: w}
}
