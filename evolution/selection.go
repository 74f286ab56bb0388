// SPDX-License-Identifier: MIT

package evolution

// tournamentSelection runs a size-2 tournament with replacement: two uniform
// draws, the larger index wins. The slice is sorted ascending, so the winner
// is at least as fit as the loser.
// Complexity: O(1).
func (p *Population) tournamentSelection() *Individual {
	n := len(p.individuals)
	return p.individuals[max(p.rng.Intn(n), p.rng.Intn(n))]
}
