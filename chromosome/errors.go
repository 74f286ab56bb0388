// SPDX-License-Identifier: MIT

package chromosome

import "errors"

var (
	// ErrBadSize indicates a chromosome length smaller than one.
	ErrBadSize = errors.New("chromosome: size must be at least 1")

	// ErrEmptyAlphabet indicates a dictionary without entries.
	ErrEmptyAlphabet = errors.New("chromosome: alphabet is empty")

	// ErrIndexOutOfRange indicates a gene index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("chromosome: gene index out of range")
)
