// SPDX-License-Identifier: MIT
// Package: genetik/cmd/genetik
//
// main.go: command-line host for run files.
//
// Contract:
//   • The run file (YAML or TOML) describes the population; -seed and
//     -generations override it when given.
//   • The loop stops at the generation budget, or earlier once the fittest
//     individual scores every target position.
//   • Progress goes to stderr through slog; the result line goes to stdout.

// Command genetik evolves a population described by a YAML or TOML run file
// and prints the fittest individual.
//
// Usage:
//
//	genetik -config run.yaml [-generations N] [-seed S] [-v]
//
// The run stops after the generation budget, or earlier once the fittest
// individual matches every target.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/katalvlaran/genetik/config"
	"github.com/katalvlaran/genetik/evolution"
)

func main() {
	var (
		path        = flag.String("config", "genetik.yaml", "run file (.yaml, .yml or .toml)")
		generations = flag.Int("generations", -1, "override the generation budget of the run file (-1 keeps it)")
		seed        = flag.Int64("seed", 0, "override the seed of the run file")
		verbose     = flag.Bool("v", false, "log every generation")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Stdout, *path, *generations, *seed, logger); err != nil {
		logger.Error("run failed", slog.String("config", *path), slog.Any("err", err))
		os.Exit(1)
	}
}

// run evolves the population of the run file at path and writes the fittest
// individual to out. A negative generations keeps the file's budget; a zero
// seed keeps the file's seed.
func run(out io.Writer, path string, generations int, seed int64, logger *slog.Logger) error {
	f, err := config.Load(path)
	if err != nil {
		return err
	}
	if generations >= 0 {
		f.Generations = generations
	}
	if seed != 0 {
		f.Seed = seed
	}

	pop, err := f.NewPopulation(nil, evolution.WithLogger(logger))
	if err != nil {
		return err
	}
	goal := f.TargetFitness()
	logger.Info("run started",
		slog.Int("population", f.Population),
		slog.Float64("mutation_rate", f.MutationRate),
		slog.Int64("seed", f.Seed),
		slog.Int("generations", f.Generations))

	best := pop.Fittest().Fitness()
	for pop.Generation() < f.Generations && !slices.Equal(best, goal) {
		if err = pop.Evolve(); err != nil {
			return err
		}
		if fit := pop.Fittest().Fitness(); slices.Compare(fit, best) > 0 {
			best = fit
			logger.Info("improved",
				slog.Int("generation", pop.Generation()),
				slog.Any("fitness", best),
				slog.String("individual", pop.Fittest().String()))
		}
	}
	if slices.Equal(best, goal) {
		logger.Info("target reached", slog.Int("generation", pop.Generation()))
	}

	fittest := pop.Fittest()
	_, err = fmt.Fprintf(out, "generation %d: %s %v (id %s)\n", pop.Generation(), fittest, fittest.Fitness(), fittest.ID())
	return err
}
