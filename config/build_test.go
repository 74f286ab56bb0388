package config_test

import (
	"testing"

	"github.com/katalvlaran/genetik/config"
	"github.com/katalvlaran/genetik/evolution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewPopulation_FromFile wires a decoded run into a working population.
func TestNewPopulation_FromFile(t *testing.T) {
	f, err := config.Load("testdata/word.yaml")
	require.NoError(t, err)

	pop, err := f.NewPopulation(nil)
	require.NoError(t, err)
	assert.Equal(t, 50, pop.Size())

	fittest := pop.Fittest()
	require.Equal(t, 2, fittest.Len())
	assert.Equal(t, 5, fittest.Chromosome(0).Len())
	assert.Equal(t, 3, fittest.Chromosome(1).Len())

	for g := 0; g < 5; g++ {
		require.NoError(t, pop.Evolve())
	}
	assert.Equal(t, 5, pop.Generation())
}

// TestNewPopulation_SeedReplays builds identical populations from one file.
func TestNewPopulation_SeedReplays(t *testing.T) {
	f, err := config.Load("testdata/word.toml")
	require.NoError(t, err)

	a, err := f.NewPopulation(nil)
	require.NoError(t, err)
	b, err := f.NewPopulation(nil)
	require.NoError(t, err)
	assert.Equal(t, a.Fittest().String(), b.Fittest().String())
	assert.Equal(t, a.Fittest().ID(), b.Fittest().ID())

	c, err := f.NewPopulation(nil, evolution.WithSeed(f.Seed+1))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fittest().ID(), c.Fittest().ID(), "caller options override the file seed")
}

// TestNewPopulation_CustomFitness passes callbacks through the factory.
func TestNewPopulation_CustomFitness(t *testing.T) {
	f, err := config.Load("testdata/word.yaml")
	require.NoError(t, err)

	constant := evolution.WithFitness(func(*evolution.Individual) []float64 { return []float64{1, 1} })
	pop, err := f.NewPopulation([]evolution.IndividualOption{constant})
	require.NoError(t, err)
	for _, ind := range pop.Individuals() {
		assert.Equal(t, []float64{1, 1}, ind.Fitness())
	}
}

// TestTargetFitness reports the perfect score per chromosome.
func TestTargetFitness(t *testing.T) {
	f, err := config.Load("testdata/word.yaml")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3}, f.TargetFitness())
}

// TestChromosomeFactories_UnknownKind guards hand-built files that skip Validate.
func TestChromosomeFactories_UnknownKind(t *testing.T) {
	f := config.File{Chromosomes: []config.Chromosome{{Kind: "bits", Size: 1}}}
	_, err := f.ChromosomeFactories()
	assert.ErrorIs(t, err, config.ErrUnknownKind)
}
