// SPDX-License-Identifier: MIT

// Package evolution implements individuals and the generational loop of the
// genetik engine.
//
// 🧬 Individual
//
//	An Individual owns an ordered genotype of chromosomes (kinds may differ),
//	a fitness vector and a mutation rate. Optional callbacks customize it:
//
//	  • FitnessFunc: maps the individual to its fitness vector. The default
//	    scores, per chromosome, the number of positions that match the target.
//	  • FilterFunc : repairs or validates the individual in place. It runs
//	    after construction and after every mutation, before fitness.
//
//	Individuals are ordered lexicographically by fitness (Compare) and are
//	equal when their genotypes are equal (Equal); fitness is derived data and
//	does not take part in equality.
//
// 🌱 Reproduction
//
//	Crossover(other, m) clones the receiver's chromosomes and overwrites
//	every gene with index > m by the partner's gene. Neither parent changes.
//	Mutate regenerates genes with the individual's mutation rate, then runs
//	the filter and recomputes fitness.
//
// 👥 Population
//
//	A Population holds a fixed number of individuals sorted ascending by
//	fitness, so Fittest is the last element. Evolve advances one generation:
//
//	  1. the top ⌊N/4⌋ individuals are carried over unchanged (elitism);
//	  2. the other slots are filled pairwise: two tournament winners, one
//	     shared mixing point in [0, chromosome count), two reciprocal
//	     children, each mutated;
//	  3. a surplus child (odd slot count) is dropped, so the size stays N;
//	  4. the new generation is sorted again.
//
// Determinism:
//
//	All randomness comes from the population's *rand.Rand (WithSeed /
//	WithRand). Without options a fixed seed is used, so two populations built
//	with the same factory and options evolve identically.
//
// Concurrency:
//
//	Nothing here is safe for concurrent use. Give each goroutine its own
//	Population.
package evolution
