// SPDX-License-Identifier: MIT
// Package: genetik/config
//
// config.go: run-file decoding and validation.
//
// Contract:
//   • The format follows the file extension (.yaml/.yml or .toml).
//   • Unknown keys are errors in both formats (yaml KnownFields,
//     toml MetaData.Undecoded).
//   • An omitted generations key means DefaultGenerations; an explicit
//     zero is kept.
//   • Every failure wraps ErrUnknownFormat, ErrUnknownKind or
//     ErrInvalidConfig.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrUnknownKind indicates a chromosome kind other than "char" or "keyed".
	ErrUnknownKind = errors.New("config: unknown chromosome kind")

	// ErrInvalidConfig indicates a value that cannot describe a run.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Format names a supported encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Chromosome kinds accepted in run files.
const (
	KindChar  = "char"
	KindKeyed = "keyed"
)

// DefaultGenerations is used when a run file omits the generation budget.
// An explicit zero is kept.
const DefaultGenerations = 100

// File is a decoded run description.
type File struct {
	Population   int          `yaml:"population" toml:"population"`
	MutationRate float64      `yaml:"mutation_rate" toml:"mutation_rate"`
	Seed         int64        `yaml:"seed" toml:"seed"`
	Generations  int          `yaml:"generations" toml:"generations"`
	Chromosomes  []Chromosome `yaml:"chromosomes" toml:"chromosomes"`
}

// Chromosome describes one genotype slot.
type Chromosome struct {
	Kind string `yaml:"kind" toml:"kind"`
	Size int    `yaml:"size" toml:"size"`

	// char chromosomes
	Target   string `yaml:"target,omitempty" toml:"target,omitempty"`
	Alphabet string `yaml:"alphabet,omitempty" toml:"alphabet,omitempty"`

	// keyed chromosomes
	TargetKeys []string           `yaml:"target_keys,omitempty" toml:"target_keys,omitempty"`
	Values     map[string]float64 `yaml:"values,omitempty" toml:"values,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads, decodes and validates the run file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open: %w", err)
	}
	defer fh.Close()

	f, err := Decode(fh, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a run description in the given format and validates it.
// Complexity: O(size of the input).
func Decode(r io.Reader, format Format) (*File, error) {
	// absent keys leave the prefilled default in place
	f := File{Generations: DefaultGenerations}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode yaml: %w: %v", ErrInvalidConfig, err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w: %v", ErrInvalidConfig, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown keys %v: %w", undecoded, ErrInvalidConfig)
		}
	default:
		return nil, fmt.Errorf("format %q: %w", format, ErrUnknownFormat)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the run-level values and every chromosome description.
// Complexity: O(total target length).
func (f *File) Validate() error {
	if f.Population < 1 {
		return fmt.Errorf("population %d: %w", f.Population, ErrInvalidConfig)
	}
	if !(f.MutationRate >= 0 && f.MutationRate <= 1) {
		return fmt.Errorf("mutation_rate %v: %w", f.MutationRate, ErrInvalidConfig)
	}
	if f.Generations < 0 {
		return fmt.Errorf("generations %d: %w", f.Generations, ErrInvalidConfig)
	}
	if len(f.Chromosomes) == 0 {
		return fmt.Errorf("no chromosomes: %w", ErrInvalidConfig)
	}
	for i, c := range f.Chromosomes {
		if err := c.validate(); err != nil {
			return fmt.Errorf("chromosomes[%d]: %w", i, err)
		}
	}
	return nil
}

func (c Chromosome) validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size %d: %w", c.Size, ErrInvalidConfig)
	}
	switch c.Kind {
	case KindChar:
		if len(c.TargetKeys) > 0 || len(c.Values) > 0 {
			return fmt.Errorf("char chromosome with keyed fields: %w", ErrInvalidConfig)
		}
		if n := len([]rune(c.Target)); n > c.Size {
			return fmt.Errorf("target length %d exceeds size %d: %w", n, c.Size, ErrInvalidConfig)
		}
	case KindKeyed:
		if len(c.Values) == 0 {
			return fmt.Errorf("keyed chromosome without values: %w", ErrInvalidConfig)
		}
		if c.Target != "" || c.Alphabet != "" {
			return fmt.Errorf("keyed chromosome with char fields: %w", ErrInvalidConfig)
		}
		if len(c.TargetKeys) > c.Size {
			return fmt.Errorf("target length %d exceeds size %d: %w", len(c.TargetKeys), c.Size, ErrInvalidConfig)
		}
		for _, k := range c.TargetKeys {
			if _, ok := c.Values[k]; !ok {
				return fmt.Errorf("target key %q not in values: %w", k, ErrInvalidConfig)
			}
		}
	default:
		return fmt.Errorf("kind %q: %w", c.Kind, ErrUnknownKind)
	}
	return nil
}
