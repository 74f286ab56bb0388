// SPDX-License-Identifier: MIT

// Package config decodes a genetik run description from YAML or TOML and
// turns it into factories and a seeded population.
//
// A run file describes the population and the chromosome layout:
//
//	population: 50
//	mutation_rate: 0.1
//	seed: 42
//	generations: 500
//	chromosomes:
//	  - kind: char
//	    size: 5
//	    target: abcde
//	    alphabet: abcdefghij
//	  - kind: keyed
//	    size: 3
//	    target_keys: [low, high, low]
//	    values: {low: 0.1, high: 0.9}
//
// The same keys are used in TOML ([[chromosomes]] tables). Unknown keys are
// rejected in both formats.
package config
