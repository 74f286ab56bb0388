// SPDX-License-Identifier: MIT

// Package gene defines the smallest unit of information handled by genetik.
//
// A Gene carries one value ("DNA") drawn from a bounded alphabet. Two kinds
// exist and the set is closed:
//
//   - CharGene    : a rune drawn from a Charset.
//   - KeyedGene[D]: a value of type D looked up by a string key in a Dictionary[D].
//
// Construction:
//
//	cs := gene.NewCharset("abcde")
//	g := gene.NewRandomChar(cs, rng)  // uniform draw, always valid
//	h := gene.NewChar('z', cs)        // accepted, but h.IsValid() == false
//
//	d := gene.NewDictionary(map[string]int{"one": 1, "two": 2})
//	k, err := gene.NewKeyed("three", d) // err wraps ErrKeyNotFound, k == nil
//
// Overwriting (double dispatch):
//
//	CopyTo(dst) writes the receiver's value into dst. The operation resolves
//	the concrete kind of dst through sealed per-kind methods, so a CharGene
//	can only overwrite a CharGene and a KeyedGene[D] only a KeyedGene[D].
//	Any other combination returns ErrTypeMismatch and leaves dst untouched.
//
// Error policy:
//
//	Characters outside their Charset are represented and flagged (IsValid),
//	never rejected. Keys absent from a Dictionary are rejected with
//	ErrKeyNotFound. Both policies are intentional and tested.
//
// Randomness:
//
//	Every random constructor takes an explicit *rand.Rand. A nil generator
//	is resolved by ResolveRand into a private generator seeded from one
//	process-wide stream (FallbackSeed): draws vary between calls, and a
//	process replays the same sequence of nil calls identically. Pass a
//	seeded generator for run-to-run reproducibility.
package gene
