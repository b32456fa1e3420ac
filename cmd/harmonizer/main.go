// Copyright 2025 JJaniel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/JJaniel/dataset-analyzer/ai"
	"github.com/JJaniel/dataset-analyzer/analysis"
	"github.com/JJaniel/dataset-analyzer/config"
	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
	"github.com/JJaniel/dataset-analyzer/harmonize"
	"github.com/JJaniel/dataset-analyzer/manipulate"
	"github.com/JJaniel/dataset-analyzer/storage/badger"
)

const defaultMapFile = "harmonization_map.json"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "harmonizer",
		Usage: "LLM-assisted harmonization of tabular datasets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to TOML configuration file",
				Value:   "harmonizer.toml",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze every dataset in a folder and synthesize a harmonization map",
				ArgsUsage: "<folder>",
				Action:    analyzeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Where to write the harmonization map JSON",
						Value:   defaultMapFile,
					},
					&cli.IntFlag{
						Name:  "sample-rows",
						Usage: "Data rows sampled per dataset for the LLM",
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Concurrent dataset analyses",
					},
					&cli.StringFlag{
						Name:    "instructions",
						Aliases: []string{"i"},
						Usage:   "Extra instructions appended to the synthesis prompt",
					},
					&cli.StringSliceFlag{
						Name:  "provider",
						Usage: "Provider fallback order (repeatable: google, nvidia, groq)",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "Bypass the analysis cache for this run",
					},
				},
			},
			{
				Name:      "unique-values",
				Usage:     "List the distinct values of a canonical feature across all mapped datasets",
				ArgsUsage: "<map.json> <folder>",
				Action:    uniqueValuesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feature",
						Aliases:  []string{"f"},
						Usage:    "Canonical feature name",
						Required: true,
					},
				},
			},
			{
				Name:      "merge",
				Usage:     "Outer-merge all datasets in a folder on a canonical key",
				ArgsUsage: "<map.json> <folder>",
				Action:    mergeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Usage:    "Canonical feature to join on",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the merged table to this CSV file instead of previewing",
					},
				},
			},
			{
				Name:      "filter",
				Usage:     "Merge all datasets and keep rows where a canonical feature equals a value",
				ArgsUsage: "<map.json> <folder>",
				Action:    filterCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "feature",
						Aliases:  []string{"f"},
						Usage:    "Canonical feature to filter on",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Usage:    "Value to keep",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "key",
						Usage: "Canonical feature to merge on (default: first feature in the map)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the filtered table to this CSV file instead of previewing",
					},
				},
			},
			{
				Name:      "extract",
				Usage:     "Consolidate the unique values of a raw column across files into a CSV",
				ArgsUsage: "<files...>",
				Action:    extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "column",
						Usage:    "Raw column name to extract",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"o"},
						Usage:    "Output CSV (existing values are merged in)",
						Required: true,
					},
				},
			},
			{
				Name:  "providers",
				Usage: "Provider diagnostics",
				Subcommands: []*cli.Command{
					{
						Name:   "test",
						Usage:  "Exercise each configured provider with a trivial prompt",
						Action: providersTestCommand,
					},
				},
			},
		},
	}
}

func analyzeCommand(c *cli.Context) error {
	ctx := context.Background()

	folder := c.Args().First()
	if folder == "" {
		return fmt.Errorf("a dataset folder is required")
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("sample-rows") {
		cfg.Analysis.SampleRows = c.Int("sample-rows")
	}
	if c.IsSet("pool-size") {
		cfg.Analysis.PoolSize = c.Int("pool-size")
	}
	if c.IsSet("provider") {
		cfg.LLM.Providers = c.StringSlice("provider")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	chain, err := config.BuildChain(ctx, cfg.AIConfig())
	if err != nil {
		return err
	}

	opts := []analysis.Option{
		analysis.WithSampleRows(cfg.Analysis.SampleRows),
		analysis.WithPoolSize(cfg.Analysis.PoolSize),
		analysis.WithProgress(progressWriter()),
	}

	if cfg.Cache.Enabled && !c.Bool("no-cache") {
		cache, err := badger.Open(cfg.Cache.Dir, false)
		if err != nil {
			return fmt.Errorf("opening analysis cache: %w", err)
		}
		defer cache.Close()
		opts = append(opts, analysis.WithCache(cache))
	}

	analyzer, err := analysis.NewAnalyzer(chain)
	if err != nil {
		return err
	}
	pipeline, err := analysis.NewPipeline(analyzer, opts...)
	if err != nil {
		return err
	}

	analyses, err := pipeline.Run(ctx, folder)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	synth, err := harmonize.NewSynthesizer(chain)
	if err != nil {
		return err
	}
	m, err := synth.Synthesize(ctx, analyses, c.String("instructions"))
	if err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	output := c.String("output")
	if err := m.Save(output); err != nil {
		return err
	}

	fmt.Printf("Harmonization map with %d features across %d datasets written to %s\n",
		len(m), len(m.Datasets()), output)
	for _, name := range m.CanonicalNames() {
		fmt.Printf("- %s\n", name)
	}
	return nil
}

func uniqueValuesCommand(c *cli.Context) error {
	m, folder, err := mapAndFolderArgs(c)
	if err != nil {
		return err
	}

	feature := c.String("feature")
	values, err := manipulate.UniqueValues(m, folder, feature)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		fmt.Printf("No values found for %q.\n", feature)
		return nil
	}

	fmt.Printf("Unique values for %q:\n", feature)
	for _, v := range values {
		fmt.Printf("- %s\n", v)
	}
	return nil
}

func mergeCommand(c *cli.Context) error {
	m, folder, err := mapAndFolderArgs(c)
	if err != nil {
		return err
	}

	merged, err := manipulate.Merge(m, folder, c.String("key"))
	if err != nil {
		return err
	}
	return emitTable(merged, c.String("output"))
}

func filterCommand(c *cli.Context) error {
	m, folder, err := mapAndFolderArgs(c)
	if err != nil {
		return err
	}

	key := c.String("key")
	if key == "" {
		key = m[0].CanonicalName
	}

	merged, err := manipulate.Merge(m, folder, key)
	if err != nil {
		return err
	}
	filtered, err := manipulate.Filter(merged, c.String("feature"), c.String("value"))
	if err != nil {
		return err
	}
	if filtered.Len() == 0 {
		fmt.Printf("No rows match %s == %q.\n", c.String("feature"), c.String("value"))
		return nil
	}
	return emitTable(filtered, c.String("output"))
}

func extractCommand(c *cli.Context) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one input file is required")
	}

	column := c.String("column")
	output := c.String("output")
	values, err := manipulate.ExtractColumn(paths, column, output)
	if err != nil {
		return err
	}

	fmt.Printf("Consolidated %d unique %s values to %s\n", len(values), column, output)
	return nil
}

func providersTestCommand(c *cli.Context) error {
	ctx := context.Background()

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	providers, err := config.BuildProviders(ctx, cfg.AIConfig())
	if err != nil {
		return err
	}

	req := ai.Request{Prompt: "Reply with the single word OK."}
	failed := 0
	for _, p := range providers {
		if _, err := p.Complete(ctx, req); err != nil {
			failed++
			fmt.Printf("%-8s FAIL  %v\n", p.Name(), err)
			continue
		}
		fmt.Printf("%-8s OK\n", p.Name())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d providers failed", failed, len(providers))
	}
	return nil
}

// mapAndFolderArgs loads the harmonization map and data folder that the
// manipulation commands all take as positional arguments.
func mapAndFolderArgs(c *cli.Context) (core.HarmonizationMap, string, error) {
	if c.Args().Len() != 2 {
		return nil, "", fmt.Errorf("expected <map.json> <folder> arguments")
	}

	m, err := core.LoadHarmonizationMap(c.Args().Get(0))
	if err != nil {
		return nil, "", err
	}

	folder := c.Args().Get(1)
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, "", fmt.Errorf("%s is not a folder", folder)
	}
	return m, folder, nil
}

// emitTable writes the table to a CSV file when an output path is set,
// otherwise prints a 5-row preview and the table's shape.
func emitTable(tbl *dataset.Table, output string) error {
	if output != "" {
		if err := dataset.WriteCSV(tbl, output); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows x %d columns to %s\n", tbl.Len(), len(tbl.Headers), output)
		return nil
	}

	fmt.Println(tbl.Head(5).Render())
	fmt.Printf("%d rows x %d columns\n", tbl.Len(), len(tbl.Headers))
	return nil
}

// progressWriter returns stderr when it is a terminal, so progress
// lines never end up in redirected output or logs.
func progressWriter() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return os.Stderr
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
