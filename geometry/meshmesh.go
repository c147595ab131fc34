package geometry

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/broadphase"
	"github.com/akmonengine/geocontact/contact"
	"github.com/akmonengine/geocontact/mesh"
	"github.com/akmonengine/geocontact/normal"
)

// penetrationWarnPeriod throttles the "triangles penetrate margin" warning
// to once every 1000 occurrences.
const penetrationWarnPeriod = 1000

var penetrationWarn = normal.NewThrottle(penetrationWarnPeriod)

// MeshMesh generates contacts between two triangle meshes. m1/m2 carry
// their own current world transform; margin1/margin2 are each mesh's
// combined (geometry margin + outer margin) tolerance. It writes up to
// len(contacts) entries and returns the number written.
//
// The pipeline runs a broad-phase tolerance query, an optional
// triangle-vertex augmentation pass, a penetration filter that only warns by
// default (cfg.DropPenetratingContacts opts into dropping), then contact
// synthesis with the coincident-witness / beyond-margin / ordinary-distance
// branches.
func MeshMesh(m1, m2 *mesh.Mesh, margin1, margin2 float64, cfg Config, contacts []contact.Geom) int {
	tol := margin1 + margin2
	oracle := cfg.oracleFor(tol)

	if !oracle.WithinDistanceAll(m1, m2, tol) {
		return 0
	}

	pairs := oracle.TolerancePairs(m1, m2, tol)
	pairs = broadphase.Augment(m1, m2, pairs, tol, cfg.Broadphase)
	pairs = filterPenetrating(m1, m2, pairs, tol, cfg.DropPenetratingContacts)

	n := 0
	for _, pr := range pairs {
		if n == len(contacts) {
			break
		}

		w1 := m1.Transform.TransformPoint(pr.CP1)
		w2 := m2.Transform.TransformPoint(pr.CP2)
		v := w1.Sub(w2)
		d := v.Len()

		var nrm mgl64.Vec3
		switch {
		case d < coincidentWitnessTolerance:
			nrm = normal.MeshMesh(m1, m2, pr.T1, pr.T2, pr.CP1, pr.CP2)
		case d > tol:
			continue
		default:
			nrm = v.Mul(1 / d)
		}

		l := nrm.Len()
		if l < zeroNormalTolerance || math.IsNaN(l) || math.IsInf(l, 0) {
			continue
		}

		pos := w1.Add(w2).Mul(0.5).Add(nrm.Mul((margin2 - margin1) * 0.5))
		depth := tol - d
		if depth < 0 {
			depth = 0
		}

		contacts[n] = contact.Geom{
			Pos:    pos,
			Normal: nrm,
			Depth:  depth,
			Side1:  int(pr.T1),
			Side2:  int(pr.T2),
		}
		n++
	}
	return n
}

// filterPenetrating checks each candidate pair's triangles for actual
// overlap past the margin (triangle 1 transformed into mesh 2's local
// frame), which means the broad phase's witness is unreliable. It always
// warns; it only removes the pair from the result when drop is true.
func filterPenetrating(m1, m2 *mesh.Mesh, pairs []broadphase.MeshPair, tol float64, drop bool) []broadphase.MeshPair {
	var kept []broadphase.MeshPair
	removed := 0
	for _, pr := range pairs {
		tri1 := m1.LocalTriangle(pr.T1)
		tri1In2 := mesh.Triangle{
			A: m1.Transform.PointInOther(tri1.A, m2.Transform),
			B: m1.Transform.PointInOther(tri1.B, m2.Transform),
			C: m1.Transform.PointInOther(tri1.C, m2.Transform),
		}
		tri2 := m2.LocalTriangle(pr.T2)

		if broadphase.Intersect(tri1In2, tri2) {
			if penetrationWarn.Allow() {
				slog.Warn("geometry.MeshMesh: triangles penetrate margin, contact detector unreliable", "tol", tol, "tri1", pr.T1, "tri2", pr.T2)
			}
			if drop {
				removed++
				continue
			}
		}
		kept = append(kept, pr)
	}
	if removed > 0 {
		slog.Warn("geometry.MeshMesh: candidate points removed due to penetration", "count", removed)
	}
	return kept
}
