package broadphase

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/akmonengine/geocontact/mesh"
)

// cptol is the distance below which two candidate witness points are
// considered the same point, so the augmentation pass does not add a
// duplicate of a pair the broad phase already found.
const cptol = 1e-5

// Augment extends pairs with extra candidates found by probing each
// triangle's own vertices against the opposing triangle: for every pair the
// broad phase already returned, each of triangle 1's vertices is tested
// against triangle 2 (and vice versa), and admitted as a new candidate pair
// if it is closer than tol and not already within cptol of an
// already-accepted witness for that pair. The dedup bookkeeping has one
// known quirk; see cfg.ReplicateAugmentationTypo.
//
// Augment is a no-op unless cfg.Augment is set; it is off by default
// because the broad phase's own witnesses are normally sufficient and this
// pass can add up to six candidates for every broad-phase pair.
func Augment(m1, m2 *mesh.Mesh, pairs []MeshPair, tol float64, cfg Config) []MeshPair {
	if !cfg.Augment {
		return pairs
	}

	out := append([]MeshPair(nil), pairs...)

	for _, pr := range pairs {
		tri1 := m1.LocalTriangle(pr.T1)
		tri2 := m2.LocalTriangle(pr.T2)

		tri1In2 := mesh.Triangle{
			A: m1.Transform.PointInOther(tri1.A, m2.Transform),
			B: m1.Transform.PointInOther(tri1.B, m2.Transform),
			C: m1.Transform.PointInOther(tri1.C, m2.Transform),
		}
		tri2In1 := mesh.Triangle{
			A: m2.Transform.PointInOther(tri2.A, m1.Transform),
			B: m2.Transform.PointInOther(tri2.B, m1.Transform),
			C: m2.Transform.PointInOther(tri2.C, m1.Transform),
		}

		cpa, _ := tri1.ClosestPoint(tri2In1.A)
		cpb, _ := tri1.ClosestPoint(tri2In1.B)
		cpc, _ := tri1.ClosestPoint(tri2In1.C)
		cpa2, _ := tri2.ClosestPoint(tri1In2.A)
		cpb2, _ := tri2.ClosestPoint(tri1In2.B)
		cpc2, _ := tri2.ClosestPoint(tri1In2.C)

		usecpa := closeWithin(cpa, tri2In1.A, tol)
		usecpb := closeWithin(cpb, tri2In1.B, tol)
		usecpc := closeWithin(cpc, tri2In1.C, tol)
		usecpa2 := closeWithin(cpa2, tri1In2.A, tol)
		usecpb2 := closeWithin(cpb2, tri1In2.B, tol)
		usecpc2 := closeWithin(cpc2, tri1In2.C, tol)

		if usecpa && closeWithin(cpa, pr.CP1, cptol) {
			usecpa = false
		}
		if usecpb && closeWithin(cpb, pr.CP1, cptol) {
			usecpb = false
		}
		if usecpc && closeWithin(cpc, pr.CP1, cptol) {
			usecpc = false
		}
		if usecpa2 && closeWithin(cpa2, pr.CP2, cptol) {
			usecpa2 = false
		}
		if usecpb2 && closeWithin(cpb2, pr.CP2, cptol) {
			usecpb2 = false
		}
		if usecpc2 && closeWithin(cpc2, pr.CP2, cptol) {
			usecpc2 = false
		}

		if usecpa {
			if usecpb && closeWithin(cpb, cpa, cptol) {
				usecpb = false
			}
			if usecpc && closeWithin(cpc, cpa, cptol) {
				usecpc = false
			}
		}
		if usecpb {
			if usecpc && closeWithin(cpc, cpb, cptol) {
				usecpc = false
			}
		}
		if usecpa2 {
			if usecpb2 && closeWithin(cpb2, cpa2, cptol) {
				usecpb2 = false
			}
			if usecpc2 && closeWithin(cpc2, cpa2, cptol) {
				usecpc2 = false
			}
		}
		// By default this guard checks usecpb (triangle 1's flag) instead of
		// usecpb2, so whether triangle 2's third-vertex candidate is dropped
		// as a duplicate of its second-vertex candidate depends on triangle
		// 1's flag. Set ReplicateAugmentationTypo=false to guard on usecpb2.
		guard := usecpb2
		if cfg.ReplicateAugmentationTypo {
			guard = usecpb
		}
		if guard {
			if usecpc2 && closeWithin(cpc, cpb2, cptol) {
				usecpc2 = false
			}
		}

		if usecpa {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: cpa, CP2: tri2.A})
		}
		if usecpb {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: cpb, CP2: tri2.B})
		}
		if usecpc {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: cpc, CP2: tri2.C})
		}
		if usecpa2 {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: tri1.A, CP2: cpa2})
		}
		if usecpb2 {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: tri1.B, CP2: cpb2})
		}
		if usecpc2 {
			out = append(out, MeshPair{T1: pr.T1, T2: pr.T2, CP1: tri1.C, CP2: cpc2})
		}
	}

	return out
}

func closeWithin(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() < tol
}
