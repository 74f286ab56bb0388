// SPDX-License-Identifier: MIT

package gene

import "fmt"

// Kind tags the concrete variant of a Gene.
type Kind int

const (
	// KindChar tags CharGene.
	KindChar Kind = iota
	// KindKeyed tags KeyedGene.
	KindKeyed
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "char"
	case KindKeyed:
		return "keyed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gene is the capability shared by every gene kind.
//
// The interface is sealed: the unexported copyFrom* methods are the second
// half of the CopyTo double dispatch and can only be implemented here.
type Gene interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Copy returns an independent clone that shares the alphabet.
	Copy() Gene

	// CopyTo overwrites dst with the receiver's value and alphabet.
	// Returns ErrTypeMismatch if dst is of an incompatible kind.
	CopyTo(dst Gene) error

	// Equal reports same kind, same value and equal alphabets.
	Equal(other Gene) bool

	// String renders the gene (character: the rune, keyed: the key).
	String() string

	copyFromChar(src *CharGene) error
	copyFromKeyed(src keyedSource) error
}

// keyedSource is the type-erased view of a KeyedGene used during dispatch.
type keyedSource interface {
	sourceKey() string
	sourceDictionary() any
}

// mismatch builds the error returned for an illegal kind pairing.
func mismatch(src, dst Gene) error {
	return fmt.Errorf("copy %s gene into %T: %w", src.Kind(), dst, ErrTypeMismatch)
}
