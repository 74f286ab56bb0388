// SPDX-License-Identifier: MIT

package evolution

import "cmp"

// Compare orders individuals by fitness, lexicographically: the first
// differing position decides. It returns -1, 0 or +1.
//
// When one vector is a prefix of the other the shorter one is smaller.
// Genotypes are ignored, so different individuals may compare equal.
// Complexity: O(len(fitness)).
func (ind *Individual) Compare(other *Individual) int {
	n := min(len(ind.fitness), len(other.fitness))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(ind.fitness[i], other.fitness[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ind.fitness), len(other.fitness))
}

// Equal reports structural equality: same chromosome count and pairwise
// equal chromosomes. Fitness and ID are not compared.
func (ind *Individual) Equal(other *Individual) bool {
	if other == nil || len(ind.genotype) != len(other.genotype) {
		return false
	}
	for i := range ind.genotype {
		if !ind.genotype[i].Equal(other.genotype[i]) {
			return false
		}
	}
	return true
}
