package broadphase

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// cellKey is a cell coordinate in the uniform grid.
type cellKey struct{ X, Y, Z int }

// SpatialHash is the default Oracle: a uniform grid over triangle world
// AABBs, hashed into a power-of-two bucket array. It is rebuilt per query
// rather than incrementally maintained, since a collision call between two
// meshes is a one-shot, stateless operation with no persistent pair state
// to amortize the index over.
type SpatialHash struct {
	cellSize float64
}

// NewSpatialHash creates a SpatialHash with the given cell size. Cell size
// should be on the order of the query tolerance; a size of zero or less
// falls back to 1.0.
func NewSpatialHash(cellSize float64) *SpatialHash {
	if cellSize <= 0 {
		cellSize = 1.0
	}
	return &SpatialHash{cellSize: cellSize}
}

func (h *SpatialHash) worldToCell(p mgl64.Vec3) cellKey {
	return cellKey{
		X: int(math.Floor(p.X() / h.cellSize)),
		Y: int(math.Floor(p.Y() / h.cellSize)),
		Z: int(math.Floor(p.Z() / h.cellSize)),
	}
}

// hashCell spreads cell coordinates across a bucket array using large
// pairwise-coprime multipliers, so adjacent cells rarely collide.
func hashCell(k cellKey, mask int) int {
	h := (k.X * 73856093) ^ (k.Y * 19349663) ^ (k.Z * 83492791)
	if h < 0 {
		h = -h
	}
	return h & mask
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// buildIndex buckets m's triangles (inflated by tol/2 on each axis) into a
// grid sized for this query, and returns it along with the mask to hash
// against.
func (h *SpatialHash) buildIndex(m *mesh.Mesh, tol float64) (buckets map[int][]mesh.TriIndex, mask int) {
	n := nextPowerOfTwo(m.TriangleCount()*2 + 1)
	mask = n - 1
	buckets = make(map[int][]mesh.TriIndex, m.TriangleCount())

	half := tol / 2
	for t := mesh.TriIndex(0); int(t) < m.TriangleCount(); t++ {
		box := m.WorldTriangleAABB(t).Inflate(half)
		minCell := h.worldToCell(box.Min)
		maxCell := h.worldToCell(box.Max)
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					idx := hashCell(cellKey{x, y, z}, mask)
					buckets[idx] = append(buckets[idx], t)
				}
			}
		}
	}
	return buckets, mask
}

// WithinDistanceAll performs a cheap whole-mesh AABB overlap check,
// inflating each mesh's bounding box by tol before testing.
func (h *SpatialHash) WithinDistanceAll(m1, m2 *mesh.Mesh, tol float64) bool {
	b1 := m1.WorldAABB().Inflate(tol)
	b2 := m2.WorldAABB().Inflate(tol)
	return b1.Overlaps(b2)
}

// TolerancePairs finds every triangle-pair candidate whose inflated world
// AABBs overlap, then narrows to the pairs whose closest points, as
// approximated by closestPointsBetweenTriangles, are within tol.
func (h *SpatialHash) TolerancePairs(m1, m2 *mesh.Mesh, tol float64) []MeshPair {
	buckets, mask := h.buildIndex(m2, tol)

	var out []MeshPair
	seen := make(map[[2]mesh.TriIndex]bool)
	for t1 := mesh.TriIndex(0); int(t1) < m1.TriangleCount(); t1++ {
		box := m1.WorldTriangleAABB(t1).Inflate(tol / 2)
		minCell := h.worldToCell(box.Min)
		maxCell := h.worldToCell(box.Max)

		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					idx := hashCell(cellKey{x, y, z}, mask)
					for _, t2 := range buckets[idx] {
						key := [2]mesh.TriIndex{t1, t2}
						if seen[key] {
							continue
						}
						seen[key] = true

						wcp1, wcp2, d := closestPointsBetweenTriangles(m1.WorldTriangle(t1), m2.WorldTriangle(t2))
						if d > tol {
							continue
						}
						out = append(out, MeshPair{
							T1:  t1,
							T2:  t2,
							CP1: m1.Transform.InverseTransformPoint(wcp1),
							CP2: m2.Transform.InverseTransformPoint(wcp2),
						})
					}
				}
			}
		}
	}
	return out
}

// NearbyTriangles scans m's triangles directly: a single query point
// rarely benefits from building a grid first.
func (h *SpatialHash) NearbyTriangles(m *mesh.Mesh, p mgl64.Vec3, tol float64) []TrianglePoint {
	var out []TrianglePoint
	for t := mesh.TriIndex(0); int(t) < m.TriangleCount(); t++ {
		wc, _ := m.WorldTriangle(t).ClosestPoint(p)
		if wc.Sub(p).Len() > tol {
			continue
		}
		out = append(out, TrianglePoint{
			T:  t,
			CP: m.Transform.InverseTransformPoint(wc),
		})
	}
	return out
}

// closestPointsBetweenTriangles approximates the closest pair of points
// between two triangles by checking each triangle's vertices against the
// other's ClosestPoint and keeping the best of the six candidates. It does
// not resolve true edge-edge closest points, so when two triangles come
// closest between their edges (or cross each other) the returned distance
// can be much larger than the true one, and TolerancePairs then drops a
// pair that is actually within tol.
func closestPointsBetweenTriangles(a, b mesh.Triangle) (pa, pb mgl64.Vec3, dist float64) {
	best := math.Inf(1)
	var bestA, bestB mgl64.Vec3

	tryVertex := func(v mgl64.Vec3, onB bool) {
		var cp mgl64.Vec3
		if onB {
			cp, _ = b.ClosestPoint(v)
		} else {
			cp, _ = a.ClosestPoint(v)
		}
		d := cp.Sub(v).Len()
		if d < best {
			best = d
			if onB {
				bestA, bestB = v, cp
			} else {
				bestA, bestB = cp, v
			}
		}
	}

	tryVertex(a.A, true)
	tryVertex(a.B, true)
	tryVertex(a.C, true)
	tryVertex(b.A, false)
	tryVertex(b.B, false)
	tryVertex(b.C, false)

	return bestA, bestB, best
}
