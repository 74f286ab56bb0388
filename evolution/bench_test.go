package evolution_test

import (
	"testing"

	"github.com/katalvlaran/genetik/chromosome"
	"github.com/katalvlaran/genetik/evolution"
	"github.com/katalvlaran/genetik/gene"
)

func benchmarkEvolve(b *testing.B, size int, target string) {
	factory, err := evolution.NewIndividualFactory(0.05, []chromosome.Factory{
		chromosome.CharFactory{Size: len(target), Target: target, Charset: gene.NewCharset("")},
	})
	if err != nil {
		b.Fatalf("factory: %v", err)
	}
	pop, err := evolution.NewPopulation(size, factory, evolution.WithSeed(1))
	if err != nil {
		b.Fatalf("population: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = pop.Evolve(); err != nil {
			b.Fatalf("Evolve: %v", err)
		}
	}
}

// BenchmarkEvolve_Small: 50 individuals, 11 genes.
func BenchmarkEvolve_Small(b *testing.B) { benchmarkEvolve(b, 50, "hello world") }

// BenchmarkEvolve_Large: 500 individuals, 64 genes.
func BenchmarkEvolve_Large(b *testing.B) {
	benchmarkEvolve(b, 500, "The quick brown fox jumps over the lazy dog, then sleeps a while.")
}

func BenchmarkCrossover(b *testing.B) {
	rng := newRNG()
	build := func() *evolution.Individual {
		c, _ := chromosome.NewChars(256, "", nil, rng)
		ind, _ := evolution.NewIndividual([]chromosome.Chromosome{c}, 0.01)
		return ind
	}
	x, y := build(), build()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Crossover(y, i%256); err != nil {
			b.Fatal(err)
		}
	}
}
