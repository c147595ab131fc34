package broadphase

// Config controls the optional passes around the core TolerancePairs
// query. Both default to off/replicated: augmentation off, and its
// vertex-to-closest-point bookkeeping quirk replicated rather than
// corrected.
type Config struct {
	// Augment enables the triangle-vertex closest-point augmentation pass:
	// for each broad-phase pair, probe each triangle's vertices against
	// the opposing triangle for closer witnesses than the broad phase
	// found. Off by default, since it can add up to six candidates per
	// broad-phase pair for marginal benefit once the broad phase already
	// found a witness.
	Augment bool

	// ReplicateAugmentationTypo, when Augment is enabled, reproduces a
	// bookkeeping quirk in the augmentation pass: the check that drops
	// triangle 2's third-vertex candidate (usecpc2) as a duplicate of its
	// second-vertex candidate is guarded by triangle 1's flag (usecpb)
	// rather than triangle 2's (usecpb2), so that check runs or is skipped
	// according to triangle 1's second-vertex candidate. Set false to guard
	// on usecpb2.
	ReplicateAugmentationTypo bool
}

// DefaultConfig returns augmentation off and the bookkeeping quirk
// replicated, the conservative combination that changes broad-phase
// behavior the least.
func DefaultConfig() Config {
	return Config{Augment: false, ReplicateAugmentationTypo: true}
}
