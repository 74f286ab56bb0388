// SPDX-License-Identifier: MIT

package evolution

import (
	"io"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"
)

// FitnessFunc computes the fitness vector of an individual.
// It must not mutate the genotype.
type FitnessFunc func(ind *Individual) []float64

// FilterFunc repairs or validates an individual in place.
type FilterFunc func(ind *Individual)

// IndividualOption customizes a new Individual.
type IndividualOption func(*individualConfig)

type individualConfig struct {
	fitness FitnessFunc
	filter  FilterFunc
	id      uuid.UUID
}

func newIndividualConfig(opts ...IndividualOption) individualConfig {
	cfg := individualConfig{fitness: defaultFitness, filter: noFilter}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFitness replaces the default target-match fitness. Panics on nil.
func WithFitness(fn FitnessFunc) IndividualOption {
	if fn == nil {
		panic("evolution: WithFitness(nil)")
	}
	return func(c *individualConfig) { c.fitness = fn }
}

// WithFilter installs a repair step run after construction and mutation.
// Panics on nil.
func WithFilter(fn FilterFunc) IndividualOption {
	if fn == nil {
		panic("evolution: WithFilter(nil)")
	}
	return func(c *individualConfig) { c.filter = fn }
}

// WithID sets the identifier of the individual.
func WithID(id uuid.UUID) IndividualOption {
	return func(c *individualConfig) { c.id = id }
}

// Option customizes a Population.
type Option func(*populationConfig)

type populationConfig struct {
	rng    *rand.Rand
	logger *slog.Logger
}

func newPopulationConfig(opts ...Option) populationConfig {
	cfg := populationConfig{
		rng:    rngFromSeed(0),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed seeds the population generator. Seed 0 maps to the default seed.
func WithSeed(seed int64) Option {
	return func(c *populationConfig) { c.rng = rngFromSeed(seed) }
}

// WithRand hands an existing generator to the population. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("evolution: WithRand(nil)")
	}
	return func(c *populationConfig) { c.rng = rng }
}

// WithLogger routes generation reports to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("evolution: WithLogger(nil)")
	}
	return func(c *populationConfig) { c.logger = logger }
}
