// SPDX-License-Identifier: MIT

package chromosome

import (
	"math/rand"

	"github.com/katalvlaran/genetik/gene"
)

// Chromosome is the capability an individual relies on.
type Chromosome interface {
	// Len returns the fixed number of genes.
	Len() int

	// Gene returns the gene at i. The gene is owned by the chromosome;
	// writing to it (e.g. through gene.Gene.CopyTo) edits the chromosome.
	Gene(i int) gene.Gene

	// Target returns the target genes. Empty means "no target".
	Target() []gene.Gene

	// Mutate regenerates each slot independently with probability rate.
	Mutate(rate float64, rng *rand.Rand)

	// Copy returns an independent chromosome with cloned genes.
	Copy() Chromosome

	// ReplaceGeneAt substitutes the value of the gene at i in place.
	ReplaceGeneAt(i int, value any) error

	// Equal reports same concrete kind, same length and pairwise equal genes.
	Equal(other Chromosome) bool

	// String concatenates the rendered genes.
	String() string
}

// Factory builds chromosomes of one configured layout.
type Factory interface {
	Build(rng *rand.Rand) (Chromosome, error)
}
