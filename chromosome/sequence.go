// SPDX-License-Identifier: MIT

package chromosome

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/genetik/gene"
)

// Sequence is the concrete Chromosome over genes of type G.
type Sequence[G gene.Gene] struct {
	genes  []G
	target []G

	// spawn draws a brand-new random gene from the alphabet.
	spawn func(rng *rand.Rand) G
	// assign writes a caller-supplied value into an existing gene.
	assign func(g G, value any) error
}

var (
	_ Chromosome = (*Sequence[*gene.CharGene])(nil)
	_ Chromosome = (*Sequence[*gene.KeyedGene[int]])(nil)
)

// NewChars builds a character chromosome of size random genes over cs.
// A nil rng is resolved once through gene.ResolveRand, so the genes still
// come from a single stream.
// Each rune of target becomes a target gene by exact value; runes outside cs
// are kept and flagged invalid.
func NewChars(size int, target string, cs *gene.Charset, rng *rand.Rand) (*Sequence[*gene.CharGene], error) {
	if size < 1 {
		return nil, fmt.Errorf("NewChars(%d): %w", size, ErrBadSize)
	}
	if cs == nil {
		cs = gene.NewCharset("")
	}
	rng = gene.ResolveRand(rng)
	runes := []rune(target)
	tgt := make([]*gene.CharGene, len(runes))
	for i, r := range runes {
		tgt[i] = gene.NewChar(r, cs)
	}
	s := &Sequence[*gene.CharGene]{
		target: tgt,
		spawn:  func(rng *rand.Rand) *gene.CharGene { return gene.NewRandomChar(cs, rng) },
		assign: assignChar,
	}
	s.fill(size, rng)
	return s, nil
}

// NewKeyed builds a keyed chromosome of size random genes over d.
// Every target key must exist in d.
func NewKeyed[D comparable](size int, target []string, d *gene.Dictionary[D], rng *rand.Rand) (*Sequence[*gene.KeyedGene[D]], error) {
	if size < 1 {
		return nil, fmt.Errorf("NewKeyed(%d): %w", size, ErrBadSize)
	}
	if d == nil || d.Len() == 0 {
		return nil, fmt.Errorf("NewKeyed: %w", ErrEmptyAlphabet)
	}
	rng = gene.ResolveRand(rng)
	tgt := make([]*gene.KeyedGene[D], len(target))
	for i, key := range target {
		g, err := gene.NewKeyed(key, d)
		if err != nil {
			return nil, fmt.Errorf("NewKeyed: target[%d]: %w", i, err)
		}
		tgt[i] = g
	}
	s := &Sequence[*gene.KeyedGene[D]]{
		target: tgt,
		spawn: func(rng *rand.Rand) *gene.KeyedGene[D] {
			g, _ := gene.NewRandomKeyed(d, rng) // d is non-empty, checked above
			return g
		},
		assign: assignKeyed[D],
	}
	s.fill(size, rng)
	return s, nil
}

func (s *Sequence[G]) fill(size int, rng *rand.Rand) {
	s.genes = make([]G, size)
	for i := range s.genes {
		s.genes[i] = s.spawn(rng)
	}
}

// Len implements Chromosome.
func (s *Sequence[G]) Len() int { return len(s.genes) }

// Gene implements Chromosome.
func (s *Sequence[G]) Gene(i int) gene.Gene { return s.genes[i] }

// At is Gene with the concrete type preserved.
func (s *Sequence[G]) At(i int) G { return s.genes[i] }

// Target implements Chromosome.
func (s *Sequence[G]) Target() []gene.Gene {
	out := make([]gene.Gene, len(s.target))
	for i, g := range s.target {
		out[i] = g
	}
	return out
}

// Mutate implements Chromosome. A slot picked for mutation gets a new gene;
// the previous gene value is discarded, not edited.
// Complexity: O(Len) time.
func (s *Sequence[G]) Mutate(rate float64, rng *rand.Rand) {
	rng = gene.ResolveRand(rng)
	for i := range s.genes {
		if rng.Float64() < rate {
			s.genes[i] = s.spawn(rng)
		}
	}
}

// Copy implements Chromosome.
func (s *Sequence[G]) Copy() Chromosome { return s.Clone() }

// Clone is Copy with the concrete type preserved.
func (s *Sequence[G]) Clone() *Sequence[G] {
	genes := make([]G, len(s.genes))
	for i, g := range s.genes {
		genes[i] = g.Copy().(G)
	}
	return &Sequence[G]{genes: genes, target: s.target, spawn: s.spawn, assign: s.assign}
}

// ReplaceGeneAt implements Chromosome. The value type must match the gene
// kind (rune for characters, string key for keyed genes), otherwise
// gene.ErrTypeMismatch is returned.
func (s *Sequence[G]) ReplaceGeneAt(i int, value any) error {
	if i < 0 || i >= len(s.genes) {
		return fmt.Errorf("ReplaceGeneAt(%d) on length %d: %w", i, len(s.genes), ErrIndexOutOfRange)
	}
	if err := s.assign(s.genes[i], value); err != nil {
		return fmt.Errorf("ReplaceGeneAt(%d): %w", i, err)
	}
	return nil
}

// Equal implements Chromosome.
func (s *Sequence[G]) Equal(other Chromosome) bool {
	o, ok := other.(*Sequence[G])
	if !ok || o == nil || len(o.genes) != len(s.genes) {
		return false
	}
	for i := range s.genes {
		if !s.genes[i].Equal(o.genes[i]) {
			return false
		}
	}
	return true
}

// String implements Chromosome.
func (s *Sequence[G]) String() string {
	var sb strings.Builder
	for _, g := range s.genes {
		sb.WriteString(g.String())
	}
	return sb.String()
}

func assignChar(g *gene.CharGene, value any) error {
	switch v := value.(type) {
	case rune:
		g.ReplaceWith(v)
	case string:
		// a one-rune string is accepted for convenience
		r := []rune(v)
		if len(r) != 1 {
			return fmt.Errorf("value %q is not a single rune: %w", v, gene.ErrTypeMismatch)
		}
		g.ReplaceWith(r[0])
	default:
		return fmt.Errorf("value of type %T for char gene: %w", value, gene.ErrTypeMismatch)
	}
	return nil
}

func assignKeyed[D comparable](g *gene.KeyedGene[D], value any) error {
	key, ok := value.(string)
	if !ok {
		return fmt.Errorf("value of type %T for keyed gene: %w", value, gene.ErrTypeMismatch)
	}
	return g.ReplaceWith(key)
}
