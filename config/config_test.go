package config_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/genetik/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_YAMLAndTOMLAgree decodes the same run in both formats.
func TestLoad_YAMLAndTOMLAgree(t *testing.T) {
	fromYAML, err := config.Load("testdata/word.yaml")
	require.NoError(t, err)
	fromTOML, err := config.Load("testdata/word.toml")
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.Equal(t, 50, fromYAML.Population)
	assert.Equal(t, 0.1, fromYAML.MutationRate)
	assert.Equal(t, int64(42), fromYAML.Seed)
	assert.Equal(t, 400, fromYAML.Generations)
	require.Len(t, fromYAML.Chromosomes, 2)
	assert.Equal(t, "abcde", fromYAML.Chromosomes[0].Target)
	assert.Equal(t, []string{"low", "high", "low"}, fromYAML.Chromosomes[1].TargetKeys)
	assert.Equal(t, map[string]float64{"low": 0.1, "high": 0.9}, fromYAML.Chromosomes[1].Values)
}

// TestLoad_Errors covers format, unknown keys and missing files.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load("testdata/word.json")
	assert.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load("testdata/unknown_key.yaml")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load("testdata/missing.yaml")
	assert.Error(t, err)
}

// TestDecode_TOMLUnknownKey rejects keys the run file does not define.
func TestDecode_TOMLUnknownKey(t *testing.T) {
	src := `
population = 4
mutation_rate = 0.2
crossover = "uniform"

[[chromosomes]]
kind = "char"
size = 2
`
	_, err := config.Decode(strings.NewReader(src), config.FormatTOML)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestDecode_Generations fills an omitted budget and keeps an explicit zero.
func TestDecode_Generations(t *testing.T) {
	const yamlBase = "population: 4\nmutation_rate: 0.2\nchromosomes:\n  - kind: char\n    size: 2\n"
	const tomlBase = "population = 4\nmutation_rate = 0.2\n"
	const tomlChromosome = "[[chromosomes]]\nkind = \"char\"\nsize = 2\n"
	tests := []struct {
		name   string
		src    string
		format config.Format
		want   int
	}{
		{"yaml omitted", yamlBase, config.FormatYAML, config.DefaultGenerations},
		{"yaml zero", "generations: 0\n" + yamlBase, config.FormatYAML, 0},
		{"yaml set", "generations: 7\n" + yamlBase, config.FormatYAML, 7},
		{"toml omitted", tomlBase + tomlChromosome, config.FormatTOML, config.DefaultGenerations},
		{"toml zero", tomlBase + "generations = 0\n" + tomlChromosome, config.FormatTOML, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := config.Decode(strings.NewReader(tt.src), tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Generations)
		})
	}
}

// TestValidate is a table over invalid run descriptions.
func TestValidate(t *testing.T) {
	valid := func() config.File {
		return config.File{
			Population:   10,
			MutationRate: 0.1,
			Generations:  5,
			Chromosomes: []config.Chromosome{
				{Kind: config.KindChar, Size: 3, Target: "abc"},
				{Kind: config.KindKeyed, Size: 2, TargetKeys: []string{"x"}, Values: map[string]float64{"x": 1}},
			},
		}
	}
	cases := []struct {
		name   string
		mutate func(f *config.File)
		want   error
	}{
		{"ok", func(*config.File) {}, nil},
		{"population", func(f *config.File) { f.Population = 0 }, config.ErrInvalidConfig},
		{"rate", func(f *config.File) { f.MutationRate = 1.5 }, config.ErrInvalidConfig},
		{"generations", func(f *config.File) { f.Generations = -1 }, config.ErrInvalidConfig},
		{"no chromosomes", func(f *config.File) { f.Chromosomes = nil }, config.ErrInvalidConfig},
		{"size", func(f *config.File) { f.Chromosomes[0].Size = 0 }, config.ErrInvalidConfig},
		{"kind", func(f *config.File) { f.Chromosomes[0].Kind = "bits" }, config.ErrUnknownKind},
		{"char target too long", func(f *config.File) { f.Chromosomes[0].Target = "abcd" }, config.ErrInvalidConfig},
		{"char with values", func(f *config.File) { f.Chromosomes[0].Values = map[string]float64{"a": 1} }, config.ErrInvalidConfig},
		{"keyed without values", func(f *config.File) { f.Chromosomes[1].Values = nil }, config.ErrInvalidConfig},
		{"keyed with alphabet", func(f *config.File) { f.Chromosomes[1].Alphabet = "ab" }, config.ErrInvalidConfig},
		{"keyed unknown target", func(f *config.File) { f.Chromosomes[1].TargetKeys = []string{"y"} }, config.ErrInvalidConfig},
		{"keyed target too long", func(f *config.File) { f.Chromosomes[1].TargetKeys = []string{"x", "x", "x"} }, config.ErrInvalidConfig},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			tc.mutate(&f)
			err := f.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestFormatFromPath maps extensions case-insensitively.
func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]config.Format{
		"run.yaml": config.FormatYAML,
		"run.YML":  config.FormatYAML,
		"run.toml": config.FormatTOML,
	} {
		got, err := config.FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
}
