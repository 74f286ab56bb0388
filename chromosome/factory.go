// SPDX-License-Identifier: MIT

package chromosome

import (
	"math/rand"

	"github.com/katalvlaran/genetik/gene"
)

// CharFactory builds character chromosomes.
type CharFactory struct {
	Size    int
	Target  string
	Charset *gene.Charset // nil means gene.DefaultCharset
}

// Build implements Factory.
func (f CharFactory) Build(rng *rand.Rand) (Chromosome, error) {
	c, err := NewChars(f.Size, f.Target, f.Charset, rng)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// KeyedFactory builds keyed chromosomes over one dictionary.
type KeyedFactory[D comparable] struct {
	Size       int
	Target     []string
	Dictionary *gene.Dictionary[D]
}

// Build implements Factory.
func (f KeyedFactory[D]) Build(rng *rand.Rand) (Chromosome, error) {
	c, err := NewKeyed(f.Size, f.Target, f.Dictionary, rng)
	if err != nil {
		return nil, err
	}
	return c, nil
}
