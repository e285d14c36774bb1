// Package random provides the seeded generators and unbiased shuffles used
// for board sampling and answer ordering.
package random

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// New returns a generator for seed. A zero seed draws a fresh seed from the
// runtime source so every process plays a different game.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		// #nosec G404 -- game randomness, not security sensitive.
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

// Shuffle permutes items in place with a Fisher–Yates shuffle.
func Shuffle[T any](rng *rand.Rand, items []T) {
	if rng == nil {
		rng = New(0)
	}
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}
