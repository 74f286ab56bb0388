// SPDX-License-Identifier: MIT
// Package: genetik/gene
//
// rand.go: the generator used when a caller passes a nil *rand.Rand.
//
// Contract:
//   • A non-nil generator is always used as given.
//   • nil resolves to a private generator seeded from one process-wide
//     stream (seed FallbackSeed). Each resolution gets its own seed, so two
//     nil calls never replay the same draws, while a process replays the
//     same sequence of nil calls identically.
//   • Resolve once per public call and pass the result down; resolving per
//     draw would restart a stream for every gene.

package gene

import (
	"math/rand"
	"sync"
)

// FallbackSeed seeds the process-wide stream behind nil generators.
const FallbackSeed int64 = 1

var fallback = struct {
	sync.Mutex
	src rand.Source
}{src: rand.NewSource(FallbackSeed)}

// ResolveRand returns rng, or a fresh generator drawn from the process-wide
// fallback stream when rng is nil. Safe for concurrent use.
// Complexity: O(1) time, O(1) space.
func ResolveRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	fallback.Lock()
	seed := fallback.src.Int63()
	fallback.Unlock()
	return rand.New(rand.NewSource(seed))
}
