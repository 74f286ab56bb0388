// SPDX-License-Identifier: MIT

package evolution

import "errors"

// Sentinel errors for individuals and populations.
var (
	// ErrSizeMismatch indicates crossover partners with different chromosome
	// counts, or chromosomes of different lengths at the same position.
	ErrSizeMismatch = errors.New("evolution: genotype sizes do not match")

	// ErrEmptyGenotype indicates an individual built without chromosomes.
	ErrEmptyGenotype = errors.New("evolution: genotype is empty")

	// ErrInvalidProbability indicates a mutation rate outside [0,1].
	ErrInvalidProbability = errors.New("evolution: mutation rate out of range")

	// ErrPopulationTooSmall indicates a population size below one.
	ErrPopulationTooSmall = errors.New("evolution: population size must be at least 1")

	// ErrIndexOutOfRange indicates a chromosome index outside the genotype.
	ErrIndexOutOfRange = errors.New("evolution: chromosome index out of range")
)
