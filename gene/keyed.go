// SPDX-License-Identifier: MIT

package gene

import (
	"fmt"
	"math/rand"
)

// KeyedGene holds a value of type D resolved by key from a Dictionary.
// The dictionary is part of the gene identity.
type KeyedGene[D comparable] struct {
	alphabet *Dictionary[D]
	key      string
	dna      D
}

// NewRandomKeyed draws a uniformly random key from d.
// Returns ErrEmptyDictionary when d is nil or holds no entry.
func NewRandomKeyed[D comparable](d *Dictionary[D], rng *rand.Rand) (*KeyedGene[D], error) {
	if d == nil || d.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	key, value := d.draw(ResolveRand(rng))
	return &KeyedGene[D]{alphabet: d, key: key, dna: value}, nil
}

// NewKeyed builds the gene stored under key.
// Returns ErrKeyNotFound, and no gene, if d has no such key.
func NewKeyed[D comparable](key string, d *Dictionary[D]) (*KeyedGene[D], error) {
	value, ok := d.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}
	return &KeyedGene[D]{alphabet: d, key: key, dna: value}, nil
}

// DNA returns the resolved value.
func (g *KeyedGene[D]) DNA() D { return g.dna }

// Key returns the name the value was resolved from.
func (g *KeyedGene[D]) Key() string { return g.key }

// Alphabet returns the gene's Dictionary.
func (g *KeyedGene[D]) Alphabet() *Dictionary[D] { return g.alphabet }

// Kind implements Gene.
func (g *KeyedGene[D]) Kind() Kind { return KindKeyed }

// Copy implements Gene.
func (g *KeyedGene[D]) Copy() Gene { return g.Clone() }

// Clone is Copy with the concrete type preserved.
func (g *KeyedGene[D]) Clone() *KeyedGene[D] {
	return &KeyedGene[D]{alphabet: g.alphabet, key: g.key, dna: g.dna}
}

// CopyTo implements Gene.
func (g *KeyedGene[D]) CopyTo(dst Gene) error {
	return dst.copyFromKeyed(g)
}

// ReplaceWith re-resolves the gene from key, in place.
// On ErrKeyNotFound the gene is left unchanged.
func (g *KeyedGene[D]) ReplaceWith(key string) error {
	value, ok := g.alphabet.Lookup(key)
	if !ok {
		return fmt.Errorf("replace with %q: %w", key, ErrKeyNotFound)
	}
	g.key = key
	g.dna = value
	return nil
}

// Equal implements Gene.
func (g *KeyedGene[D]) Equal(other Gene) bool {
	o, ok := other.(*KeyedGene[D])
	if !ok || o == nil {
		return false
	}
	return g.dna == o.dna && g.alphabet.Equal(o.alphabet)
}

// String implements Gene.
func (g *KeyedGene[D]) String() string { return g.key }

func (g *KeyedGene[D]) sourceKey() string { return g.key }

func (g *KeyedGene[D]) sourceDictionary() any { return g.alphabet }

func (g *KeyedGene[D]) copyFromChar(src *CharGene) error {
	return mismatch(src, g)
}

// copyFromKeyed accepts only a source over the same value type D.
func (g *KeyedGene[D]) copyFromKeyed(src keyedSource) error {
	d, ok := src.sourceDictionary().(*Dictionary[D])
	if !ok {
		return fmt.Errorf("copy keyed gene of %T into %T: %w", src.sourceDictionary(), g, ErrTypeMismatch)
	}
	value, ok := d.Lookup(src.sourceKey())
	if !ok {
		return fmt.Errorf("copy key %q: %w", src.sourceKey(), ErrKeyNotFound)
	}
	g.alphabet = d
	g.key = src.sourceKey()
	g.dna = value
	return nil
}
