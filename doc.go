// SPDX-License-Identifier: MIT

// Package genetik is a small genetic-algorithm engine: it evolves a
// population of candidate solutions toward a target through tournament
// selection, single-point crossover, mutation and elitism.
//
// 🚀 What is inside?
//
//	• gene/      : genes over a character set or a keyed dictionary,
//	                with a type-safe double-dispatch overwrite
//	• chromosome/: fixed-length gene sequences, mutation, factories
//	• evolution/ : individuals (crossover, mutation, lexicographic fitness)
//	                and the generational population loop
//	• config/    : YAML / TOML run files turned into factories and populations
//	• cmd/genetik: a command-line host for run files
//
// ✨ Design
//
//   - Deterministic – every random draw comes from an explicit *rand.Rand;
//     the same seed replays the same evolution, identifiers included
//   - Pluggable – custom fitness vectors and repair filters per individual
//   - Strict – structural and key violations are errors; characters outside
//     their alphabet are kept and flagged
//   - Single-threaded – a Population is owned by one goroutine
//
// Quick example:
//
//	factory, _ := evolution.NewIndividualFactory(0.1, []chromosome.Factory{
//		chromosome.CharFactory{Size: 5, Target: "abcde", Charset: gene.NewCharset("abcdefghij")},
//	})
//	pop, _ := evolution.NewPopulation(50, factory, evolution.WithSeed(42))
//	for pop.Fittest().Fitness()[0] < 5 {
//		_ = pop.Evolve()
//	}
//	fmt.Println(pop.Fittest()) // abcde
//
//	go get github.com/katalvlaran/genetik
package genetik
