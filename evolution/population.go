// SPDX-License-Identifier: MIT
// Package: genetik/evolution
//
// population.go: the generational loop.
//
// Contract:
//   • Individuals stay sorted ascending by fitness; Fittest is the last one.
//   • Evolve keeps the top ⌊N/4⌋ by reference and fills the rest with
//     mutated children, two per tournament pair; the size stays exactly N.
//   • One generator drives selection, cut points, mutation and IDs, so a
//     seed replays a run.
//   • A failed Evolve leaves the population as it was.

package evolution

import (
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
)

// survivorDivisor sets elitism: ⌊N/survivorDivisor⌋ individuals survive.
const survivorDivisor = 4

// Population is a fixed-size set of individuals kept sorted ascending by
// fitness.
type Population struct {
	individuals []*Individual
	rng         *rand.Rand
	logger      *slog.Logger
	generation  int
}

// NewPopulation builds size random individuals with factory and sorts them.
func NewPopulation(size int, factory *IndividualFactory, opts ...Option) (*Population, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewPopulation(%d): %w", size, ErrPopulationTooSmall)
	}
	cfg := newPopulationConfig(opts...)
	p := &Population{
		individuals: make([]*Individual, 0, size),
		rng:         cfg.rng,
		logger:      cfg.logger,
	}
	for i := 0; i < size; i++ {
		ind, err := factory.Build(p.rng)
		if err != nil {
			return nil, fmt.Errorf("NewPopulation: individual %d: %w", i, err)
		}
		p.individuals = append(p.individuals, ind)
	}
	sortAscending(p.individuals)
	p.logger.Debug("population initialized",
		slog.Int("size", size),
		slog.Any("best", p.Fittest().fitness))
	return p, nil
}

// Evolve replaces the population with the next generation.
//
// The best ⌊N/4⌋ individuals survive untouched. The remaining slots receive
// mutated children of tournament-selected parent pairs; when the slot count
// is odd the last surplus child is discarded. On error the population is
// left as it was.
//
// Complexity: O(N·G + N log N) for N individuals of G genes, plus fitness
// and filter costs.
func (p *Population) Evolve() error {
	n := len(p.individuals)
	survivors := n / survivorDivisor
	needed := n - survivors

	children := make([]*Individual, 0, needed+1)
	for len(children) < needed {
		parent1 := p.tournamentSelection()
		parent2 := p.tournamentSelection()
		mixingPoint := p.rng.Intn(mixingRange(parent1))

		child1, err := parent1.Crossover(parent2, mixingPoint)
		if err != nil {
			return fmt.Errorf("evolve generation %d: %w", p.generation+1, err)
		}
		child2, err := parent2.Crossover(parent1, mixingPoint)
		if err != nil {
			return fmt.Errorf("evolve generation %d: %w", p.generation+1, err)
		}
		child1.Mutate(p.rng)
		child1.id = newID(p.rng)
		child2.Mutate(p.rng)
		child2.id = newID(p.rng)
		children = append(children, child1, child2)
	}
	surplus := len(children) - needed
	children = children[:needed]

	next := make([]*Individual, 0, n)
	next = append(next, p.individuals[n-survivors:]...)
	next = append(next, children...)
	sortAscending(next)

	p.individuals = next
	p.generation++
	p.logger.Debug("generation evolved",
		slog.Int("generation", p.generation),
		slog.Int("survivors", survivors),
		slog.Int("children", needed),
		slog.Int("discarded", surplus),
		slog.Any("best", p.Fittest().fitness))
	return nil
}

// Fittest returns the individual with the highest fitness.
func (p *Population) Fittest() *Individual {
	return p.individuals[len(p.individuals)-1]
}

// Size returns the number of individuals.
func (p *Population) Size() int { return len(p.individuals) }

// Generation returns how many times Evolve has succeeded.
func (p *Population) Generation() int { return p.generation }

// Individuals returns the individuals in ascending fitness order.
// The slice is a copy; the individuals are shared.
func (p *Population) Individuals() []*Individual {
	return slices.Clone(p.individuals)
}

// mixingRange is the exclusive upper bound for crossover cut points: the
// genotype length, i.e. the chromosome count. The cut applies to the gene
// indices of every chromosome.
func mixingRange(ind *Individual) int {
	return max(ind.Len(), 1)
}

func sortAscending(individuals []*Individual) {
	slices.SortStableFunc(individuals, func(a, b *Individual) int {
		return a.Compare(b)
	})
}
