// SPDX-License-Identifier: MIT

package gene

import (
	"maps"
	"math/rand"
	"slices"
	"strings"
)

// DefaultCharset is the symbol set used when a character alphabet is not given.
const DefaultCharset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ !\"%$&/()=?`{[]}\\+~*#';.:,-_<>|@^'"

// Charset is the legal set of runes for a CharGene.
// It is immutable once built and safe to share between genes.
type Charset struct {
	symbols string
	runes   []rune
}

// NewCharset builds a Charset from the runes of s.
// An empty s yields DefaultCharset.
func NewCharset(s string) *Charset {
	if s == "" {
		s = DefaultCharset
	}
	return &Charset{symbols: s, runes: []rune(s)}
}

// Contains reports whether r belongs to the set.
func (c *Charset) Contains(r rune) bool {
	return strings.ContainsRune(c.symbols, r)
}

// Len returns the number of runes in the set (duplicates included).
func (c *Charset) Len() int { return len(c.runes) }

// String returns the symbols the set was built from.
func (c *Charset) String() string { return c.symbols }

// Equal compares two sets by value.
func (c *Charset) Equal(other *Charset) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.symbols == other.symbols
}

// draw picks a uniformly random rune.
func (c *Charset) draw(rng *rand.Rand) rune {
	return c.runes[rng.Intn(len(c.runes))]
}

// Dictionary is the legal name→value mapping for a KeyedGene.
// Keys are kept sorted so that seeded draws are reproducible.
type Dictionary[D comparable] struct {
	values map[string]D
	keys   []string
}

// NewDictionary copies m into a new Dictionary.
func NewDictionary[D comparable](m map[string]D) *Dictionary[D] {
	values := maps.Clone(m)
	if values == nil {
		values = make(map[string]D)
	}
	keys := slices.Sorted(maps.Keys(values))
	return &Dictionary[D]{values: values, keys: keys}
}

// Lookup returns the value stored under key.
func (d *Dictionary[D]) Lookup(key string) (D, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the sorted keys. The slice is a copy.
func (d *Dictionary[D]) Keys() []string {
	return slices.Clone(d.keys)
}

// Len returns the number of entries.
func (d *Dictionary[D]) Len() int { return len(d.keys) }

// Equal compares two dictionaries by value.
func (d *Dictionary[D]) Equal(other *Dictionary[D]) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil {
		return false
	}
	return maps.Equal(d.values, other.values)
}

func (d *Dictionary[D]) draw(rng *rand.Rand) (string, D) {
	key := d.keys[rng.Intn(len(d.keys))]
	return key, d.values[key]
}
