// SPDX-License-Identifier: MIT

package evolution

import (
	"math/rand"

	"github.com/google/uuid"
)

// defaultRNGSeed is used when no generator is configured.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic generator. seed==0 maps to defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// newID draws a version-4 UUID from rng, so identifiers replay under a seed.
func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// math/rand never fails to read
		return uuid.Nil
	}
	return id
}
