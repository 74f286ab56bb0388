// SPDX-License-Identifier: MIT

package gene

import "errors"

// Sentinel errors for gene operations. Match them with errors.Is.
var (
	// ErrTypeMismatch indicates an overwrite between incompatible gene kinds,
	// or a value of the wrong Go type passed to a replacement.
	ErrTypeMismatch = errors.New("gene: incompatible gene kinds")

	// ErrKeyNotFound indicates a key absent from the gene's Dictionary.
	ErrKeyNotFound = errors.New("gene: key not found in dictionary")

	// ErrEmptyDictionary indicates a random draw from a nil or empty Dictionary.
	ErrEmptyDictionary = errors.New("gene: empty dictionary")
)
