// Package geocontact is the root batch-dispatch entry point: it hands many
// independent geometry pairs to geometry.Collide across a worker pool. A
// single pair's own contact generation always stays synchronous and
// single-threaded, per the concurrency model; only the fan-out across pairs
// is parallel. Callers remain responsible for never passing two pairs that
// touch the same geometry, since transforms are mutable, per-geometry
// state.
package geocontact

import (
	"log/slog"
	"sync"

	"github.com/akmonengine/geocontact/contact"
	"github.com/akmonengine/geocontact/geometry"
	"github.com/akmonengine/geocontact/mesh"
)

// DefaultWorkers is used when Batch is called with workers <= 0.
const DefaultWorkers = 1

// Pair is one geometry pair queued for a Batch call: the two registered
// handles, their current world transforms, and the caller-owned contact
// buffer to fill.
type Pair struct {
	H1, H2   *geometry.CustomGeometryData
	T1, T2   mesh.Transform
	Contacts []contact.Geom
}

// Batch dispatches every pair in pairs, spreading the work across workers
// goroutines in contiguous chunks. It returns, for each pair, the number of
// contacts geometry.CollideWithConfig wrote into that pair's Contacts
// slice — the slice itself is filled in place. A pair whose Contacts buffer
// filled exactly (no room left for a further contact the generator might
// otherwise have emitted) is logged, since the caller may want a larger
// buffer for that geometry pair.
func Batch(pairs []Pair, workers int, cfg geometry.Config) []int {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	counts := make([]int, len(pairs))

	chunkSize := (len(pairs) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min((w+1)*chunkSize, len(pairs))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				p := &pairs[i]
				n := geometry.CollideWithConfig(p.H1, p.H2, p.T1, p.T2, p.Contacts, cfg)
				counts[i] = n
				if len(p.Contacts) > 0 && n == len(p.Contacts) {
					slog.Warn("geocontact.Batch: contact buffer filled, pair may have been truncated", "pair", i, "capacity", len(p.Contacts))
				}
			}
		}(start, end)
	}
	wg.Wait()

	return counts
}
