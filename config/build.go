// SPDX-License-Identifier: MIT
// Package: genetik/config
//
// build.go: turns a validated File into factories and a seeded population.
//
// Contract:
//   • One alphabet per chromosome slot, shared by every individual.
//   • Keyed slots always use float64 values.
//   • The population seed comes from the file unless a later option
//     overrides it.

package config

import (
	"fmt"

	"github.com/katalvlaran/genetik/chromosome"
	"github.com/katalvlaran/genetik/evolution"
	"github.com/katalvlaran/genetik/gene"
)

// ChromosomeFactories returns one factory per described chromosome.
// Alphabets are built once and shared by every chromosome of a slot.
func (f *File) ChromosomeFactories() ([]chromosome.Factory, error) {
	out := make([]chromosome.Factory, len(f.Chromosomes))
	for i, c := range f.Chromosomes {
		switch c.Kind {
		case KindChar:
			out[i] = chromosome.CharFactory{
				Size:    c.Size,
				Target:  c.Target,
				Charset: gene.NewCharset(c.Alphabet),
			}
		case KindKeyed:
			out[i] = chromosome.KeyedFactory[float64]{
				Size:       c.Size,
				Target:     c.TargetKeys,
				Dictionary: gene.NewDictionary(c.Values),
			}
		default:
			return nil, fmt.Errorf("chromosomes[%d] kind %q: %w", i, c.Kind, ErrUnknownKind)
		}
	}
	return out, nil
}

// IndividualFactory wires the chromosome layout and the mutation rate.
// opts can supply custom fitness and filter callbacks.
func (f *File) IndividualFactory(opts ...evolution.IndividualOption) (*evolution.IndividualFactory, error) {
	factories, err := f.ChromosomeFactories()
	if err != nil {
		return nil, err
	}
	return evolution.NewIndividualFactory(f.MutationRate, factories, opts...)
}

// NewPopulation builds the described population seeded with f.Seed.
// Complexity: O(Population × total chromosome size), plus fitness costs.
// Options given by the caller are applied after the seed and may override it.
func (f *File) NewPopulation(indOpts []evolution.IndividualOption, popOpts ...evolution.Option) (*evolution.Population, error) {
	factory, err := f.IndividualFactory(indOpts...)
	if err != nil {
		return nil, err
	}
	opts := append([]evolution.Option{evolution.WithSeed(f.Seed)}, popOpts...)
	return evolution.NewPopulation(f.Population, factory, opts...)
}

// TargetFitness is the default-fitness score of a perfect individual: the
// target length of every chromosome.
func (f *File) TargetFitness() []float64 {
	out := make([]float64, len(f.Chromosomes))
	for i, c := range f.Chromosomes {
		switch c.Kind {
		case KindChar:
			out[i] = float64(len([]rune(c.Target)))
		case KindKeyed:
			out[i] = float64(len(c.TargetKeys))
		}
	}
	return out
}
