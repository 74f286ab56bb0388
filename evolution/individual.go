// SPDX-License-Identifier: MIT

package evolution

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/genetik/chromosome"
	"github.com/katalvlaran/genetik/gene"
)

// Individual is one candidate solution: a genotype plus its fitness.
type Individual struct {
	id           uuid.UUID
	genotype     []chromosome.Chromosome
	fitness      []float64
	mutationRate float64
	fitnessFn    FitnessFunc
	filterFn     FilterFunc
}

// NewIndividual takes ownership of genotype, applies the filter and computes
// fitness. mutationRate must lie in [0,1].
func NewIndividual(genotype []chromosome.Chromosome, mutationRate float64, opts ...IndividualOption) (*Individual, error) {
	if len(genotype) == 0 {
		return nil, ErrEmptyGenotype
	}
	if !(mutationRate >= 0 && mutationRate <= 1) {
		return nil, fmt.Errorf("mutation rate %v: %w", mutationRate, ErrInvalidProbability)
	}
	cfg := newIndividualConfig(opts...)
	return assemble(cfg.id, slices.Clone(genotype), mutationRate, cfg.fitness, cfg.filter), nil
}

// assemble runs the construction lifecycle: filter, then fitness.
func assemble(id uuid.UUID, genotype []chromosome.Chromosome, rate float64, fitness FitnessFunc, filter FilterFunc) *Individual {
	ind := &Individual{
		id:           id,
		genotype:     genotype,
		mutationRate: rate,
		fitnessFn:    fitness,
		filterFn:     filter,
	}
	ind.filterFn(ind)
	ind.updateFitness()
	return ind
}

// ID returns the identifier; uuid.Nil unless one was assigned.
func (ind *Individual) ID() uuid.UUID { return ind.id }

// Len returns the number of chromosomes.
func (ind *Individual) Len() int { return len(ind.genotype) }

// Chromosome returns the chromosome at i. Edits made through it bypass
// fitness bookkeeping; prefer ReplaceGeneAt.
func (ind *Individual) Chromosome(i int) chromosome.Chromosome { return ind.genotype[i] }

// Genotype returns the chromosomes in order. The slice is a copy, the
// chromosomes are not.
func (ind *Individual) Genotype() []chromosome.Chromosome { return slices.Clone(ind.genotype) }

// Fitness returns a copy of the fitness vector.
func (ind *Individual) Fitness() []float64 { return slices.Clone(ind.fitness) }

// MutationRate returns the per-gene mutation probability.
func (ind *Individual) MutationRate() float64 { return ind.mutationRate }

// Crossover builds a child from the receiver and other: for every chromosome
// position the receiver's chromosome is cloned and genes with index greater
// than mixingPoint are overwritten with the partner's genes.
//
// The child inherits the receiver's mutation rate and callbacks. Neither
// parent is modified, also when an error is returned.
//
// Errors: ErrSizeMismatch, gene.ErrTypeMismatch, gene.ErrKeyNotFound.
// Complexity: O(total genes) plus one filter and one fitness call.
func (ind *Individual) Crossover(other *Individual, mixingPoint int) (*Individual, error) {
	if len(ind.genotype) != len(other.genotype) {
		return nil, fmt.Errorf("crossover %d with %d chromosomes: %w",
			len(ind.genotype), len(other.genotype), ErrSizeMismatch)
	}
	offspring := make([]chromosome.Chromosome, len(ind.genotype))
	for i := range ind.genotype {
		child, err := crossChromosome(ind.genotype[i], other.genotype[i], mixingPoint)
		if err != nil {
			return nil, fmt.Errorf("crossover chromosome %d: %w", i, err)
		}
		offspring[i] = child
	}
	return assemble(uuid.Nil, offspring, ind.mutationRate, ind.fitnessFn, ind.filterFn), nil
}

// crossChromosome returns a copy of a whose genes past mixingPoint come from b.
func crossChromosome(a, b chromosome.Chromosome, mixingPoint int) (chromosome.Chromosome, error) {
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("gene counts %d and %d: %w", a.Len(), b.Len(), ErrSizeMismatch)
	}
	child := a.Copy()
	for j := max(mixingPoint+1, 0); j < child.Len(); j++ {
		if err := b.Gene(j).CopyTo(child.Gene(j)); err != nil {
			return nil, fmt.Errorf("gene %d: %w", j, err)
		}
	}
	return child, nil
}

// Mutate mutates every chromosome with the individual's rate, then reapplies
// the filter and recomputes fitness.
func (ind *Individual) Mutate(rng *rand.Rand) {
	rng = gene.ResolveRand(rng)
	for _, c := range ind.genotype {
		c.Mutate(ind.mutationRate, rng)
	}
	ind.filterFn(ind)
	ind.updateFitness()
}

// ReplaceGeneAt edits one gene in place and recomputes fitness. The filter is
// not rerun, so filters may call it.
func (ind *Individual) ReplaceGeneAt(chromosomeIndex, geneIndex int, value any) error {
	if chromosomeIndex < 0 || chromosomeIndex >= len(ind.genotype) {
		return fmt.Errorf("chromosome %d of %d: %w", chromosomeIndex, len(ind.genotype), ErrIndexOutOfRange)
	}
	if err := ind.genotype[chromosomeIndex].ReplaceGeneAt(geneIndex, value); err != nil {
		return fmt.Errorf("chromosome %d: %w", chromosomeIndex, err)
	}
	ind.updateFitness()
	return nil
}

func (ind *Individual) updateFitness() {
	ind.fitness = ind.fitnessFn(ind)
}

// defaultFitness scores each chromosome by the number of positions, within
// the target length, whose gene equals the target gene.
func defaultFitness(ind *Individual) []float64 {
	fit := make([]float64, len(ind.genotype))
	for i, c := range ind.genotype {
		target := c.Target()
		n := min(len(target), c.Len())
		for j := 0; j < n; j++ {
			if c.Gene(j).Equal(target[j]) {
				fit[i]++
			}
		}
	}
	return fit
}

func noFilter(*Individual) {}

// String renders each chromosome, separated by ", ".
func (ind *Individual) String() string {
	parts := make([]string, len(ind.genotype))
	for i, c := range ind.genotype {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
