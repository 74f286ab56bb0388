package evolution_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/genetik/chromosome"
	"github.com/katalvlaran/genetik/evolution"
	"github.com/katalvlaran/genetik/gene"
	"github.com/stretchr/testify/require"
)

const seedDet = 20240501

var letters = gene.NewCharset("abcdefghij")

func newRNG() *rand.Rand { return rand.New(rand.NewSource(seedDet)) }

// chars builds a character chromosome whose genes spell s.
func chars(t testing.TB, s, target string) *chromosome.Sequence[*gene.CharGene] {
	t.Helper()
	runes := []rune(s)
	c, err := chromosome.NewChars(len(runes), target, letters, newRNG())
	require.NoError(t, err)
	for i, r := range runes {
		require.NoError(t, c.ReplaceGeneAt(i, r))
	}
	return c
}

func weekdays() *gene.Dictionary[int] {
	return gene.NewDictionary(map[string]int{"mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5})
}

// keyed builds a keyed chromosome holding keys in order.
func keyed(t testing.TB, keys []string, target []string) *chromosome.Sequence[*gene.KeyedGene[int]] {
	t.Helper()
	c, err := chromosome.NewKeyed(len(keys), target, weekdays(), newRNG())
	require.NoError(t, err)
	for i, k := range keys {
		require.NoError(t, c.ReplaceGeneAt(i, k))
	}
	return c
}

func individual(t testing.TB, rate float64, genotype ...chromosome.Chromosome) *evolution.Individual {
	t.Helper()
	ind, err := evolution.NewIndividual(genotype, rate)
	require.NoError(t, err)
	return ind
}

// wordFactory builds individuals with one character chromosome aiming at target.
func wordFactory(t testing.TB, target string, rate float64, opts ...evolution.IndividualOption) *evolution.IndividualFactory {
	t.Helper()
	f, err := evolution.NewIndividualFactory(rate, []chromosome.Factory{
		chromosome.CharFactory{Size: len(target), Target: target, Charset: letters},
	}, opts...)
	require.NoError(t, err)
	return f
}

// alternating yields char and keyed chromosomes on successive builds so that
// individuals of one population have incompatible layouts.
type alternating struct{ n int }

func (a *alternating) Build(rng *rand.Rand) (chromosome.Chromosome, error) {
	a.n++
	if a.n%2 == 0 {
		return chromosome.NewKeyed(3, nil, weekdays(), rng)
	}
	return chromosome.NewChars(3, "", letters, rng)
}
