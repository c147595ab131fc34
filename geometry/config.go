package geometry

import "github.com/akmonengine/geocontact/broadphase"

// coincidentWitnessTolerance is the distance below which two broad-phase
// witness points are treated as touching exactly, so the normal must be
// derived from mesh topology instead of from their (near-zero) difference.
const coincidentWitnessTolerance = 1e-5

// zeroNormalTolerance is the length below which a computed normal is
// treated as degenerate and the contact it would have produced is dropped.
const zeroNormalTolerance = 1e-4

// Config controls the optional behaviors around contact generation: which
// broad-phase oracle drives candidate queries, whether the augmentation
// pass runs, and how penetrating candidate pairs are handled.
type Config struct {
	// Oracle is the broad-phase collaborator driving candidate-pair and
	// nearby-triangle queries. A nil Oracle is replaced with a fresh
	// broadphase.SpatialHash sized to the query tolerance at call time.
	Oracle broadphase.Oracle

	// Broadphase controls the optional augmentation pass and its
	// replicated bookkeeping quirk; see broadphase.Config.
	Broadphase broadphase.Config

	// DropPenetratingContacts discards contacts whose source triangles
	// were found to intersect past the margin (see the penetration
	// filter in MeshMesh), rather than keeping them with only a warning.
	// Off by default: a penetrating pair's witness is unreliable but still
	// usable by most solvers, so contacts are kept unless a caller opts
	// into the stricter behavior.
	DropPenetratingContacts bool
}

// DefaultConfig returns the conservative defaults: no augmentation, the
// augmentation dedup quirk left in place, and penetrating contacts kept
// rather than dropped.
func DefaultConfig() Config {
	return Config{Broadphase: broadphase.DefaultConfig()}
}

func (c Config) oracleFor(tol float64) broadphase.Oracle {
	if c.Oracle != nil {
		return c.Oracle
	}
	return broadphase.NewSpatialHash(tol)
}
