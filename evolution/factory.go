// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/genetik/chromosome"
	"github.com/katalvlaran/genetik/gene"
)

// IndividualFactory builds individuals sharing one chromosome layout, one
// mutation rate and the same callbacks.
type IndividualFactory struct {
	factories    []chromosome.Factory
	mutationRate float64
	opts         []IndividualOption
}

// NewIndividualFactory validates the layout and the rate.
func NewIndividualFactory(mutationRate float64, factories []chromosome.Factory, opts ...IndividualOption) (*IndividualFactory, error) {
	if len(factories) == 0 {
		return nil, ErrEmptyGenotype
	}
	if !(mutationRate >= 0 && mutationRate <= 1) {
		return nil, fmt.Errorf("mutation rate %v: %w", mutationRate, ErrInvalidProbability)
	}
	return &IndividualFactory{
		factories:    slices.Clone(factories),
		mutationRate: mutationRate,
		opts:         slices.Clone(opts),
	}, nil
}

// Build draws a fresh random individual, including its ID, from rng.
// A nil rng is resolved once through gene.ResolveRand.
func (f *IndividualFactory) Build(rng *rand.Rand) (*Individual, error) {
	rng = gene.ResolveRand(rng)
	genotype := make([]chromosome.Chromosome, len(f.factories))
	for i, cf := range f.factories {
		c, err := cf.Build(rng)
		if err != nil {
			return nil, fmt.Errorf("build chromosome %d: %w", i, err)
		}
		genotype[i] = c
	}
	opts := append(slices.Clone(f.opts), WithID(newID(rng)))
	return NewIndividual(genotype, f.mutationRate, opts...)
}
