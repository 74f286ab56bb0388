// SPDX-License-Identifier: MIT

// Package chromosome defines fixed-length gene sequences and the factories
// that build them.
//
// A Chromosome is an ordered run of genes of a single kind plus an optional
// target sequence used by the default fitness function. Its length never
// changes after construction.
//
// Concrete chromosomes are *Sequence[G] values:
//
//	chars, _ := chromosome.NewChars(5, "abcde", gene.NewCharset("abcde"), rng)
//	keyed, _ := chromosome.NewKeyed(3, nil, gene.NewDictionary(ops), rng)
//
// Both satisfy Chromosome, so an individual can hold them side by side.
//
// Mutation vs. replacement:
//
//	Mutate regenerates a slot: the old gene is dropped and a freshly drawn
//	gene takes its place. ReplaceGeneAt edits the existing gene in place
//	through its ReplaceWith method. Callers can observe the difference, and
//	tests rely on it.
//
// Sharing:
//
//	Copy clones every gene. The target and the alphabet are immutable and are
//	shared between a chromosome and its copies.
package chromosome
