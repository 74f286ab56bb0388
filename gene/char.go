// SPDX-License-Identifier: MIT

package gene

import (
	"fmt"
	"math/rand"
)

// CharGene holds a single rune checked against a Charset.
type CharGene struct {
	alphabet *Charset
	dna      rune
	valid    bool
}

var _ Gene = (*CharGene)(nil)

// NewRandomChar draws a uniformly random rune from cs. The gene is always valid.
// A nil cs means DefaultCharset.
func NewRandomChar(cs *Charset, rng *rand.Rand) *CharGene {
	if cs == nil {
		cs = NewCharset("")
	}
	return &CharGene{alphabet: cs, dna: cs.draw(ResolveRand(rng)), valid: true}
}

// NewChar wraps r. A rune outside cs is accepted and flagged invalid.
func NewChar(r rune, cs *Charset) *CharGene {
	if cs == nil {
		cs = NewCharset("")
	}
	return &CharGene{alphabet: cs, dna: r, valid: cs.Contains(r)}
}

// DNA returns the stored rune.
func (g *CharGene) DNA() rune { return g.dna }

// Alphabet returns the Charset the gene is checked against.
func (g *CharGene) Alphabet() *Charset { return g.alphabet }

// IsValid reports whether DNA belongs to Alphabet.
func (g *CharGene) IsValid() bool { return g.valid }

// Kind implements Gene.
func (g *CharGene) Kind() Kind { return KindChar }

// Copy implements Gene.
func (g *CharGene) Copy() Gene { return g.Clone() }

// Clone is Copy with the concrete type preserved.
func (g *CharGene) Clone() *CharGene {
	return &CharGene{alphabet: g.alphabet, dna: g.dna, valid: g.valid}
}

// CopyTo implements Gene.
func (g *CharGene) CopyTo(dst Gene) error {
	return dst.copyFromChar(g)
}

// ReplaceWith sets the rune in place and re-evaluates validity.
func (g *CharGene) ReplaceWith(r rune) {
	g.dna = r
	g.valid = g.alphabet.Contains(r)
}

// Equal implements Gene.
func (g *CharGene) Equal(other Gene) bool {
	o, ok := other.(*CharGene)
	if !ok || o == nil {
		return false
	}
	return g.dna == o.dna && g.alphabet.Equal(o.alphabet)
}

// String implements Gene.
func (g *CharGene) String() string { return string(g.dna) }

// GoString helps when genes show up in test failures.
func (g *CharGene) GoString() string {
	return fmt.Sprintf("CharGene(%q valid=%t)", g.dna, g.valid)
}

func (g *CharGene) copyFromChar(src *CharGene) error {
	g.alphabet = src.alphabet
	g.dna = src.dna
	g.valid = src.valid
	return nil
}

func (g *CharGene) copyFromKeyed(src keyedSource) error {
	return fmt.Errorf("copy keyed gene into %T: %w", g, ErrTypeMismatch)
}
