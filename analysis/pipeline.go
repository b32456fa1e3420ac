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


package analysis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
	"github.com/JJaniel/dataset-analyzer/storage"
)

// DefaultSampleRows is how many data rows of each dataset are shown to
// the LLM. Three rows are enough to infer column semantics without
// blowing up the prompt.
const DefaultSampleRows = 3

// Pipeline runs the per-dataset analysis phase over a folder. Files are
// analyzed concurrently on a bounded worker pool; per-file failures are
// collected instead of aborting the run.
type Pipeline struct {
	analyzer   *Analyzer
	cache      storage.AnalysisCache
	poolSize   int
	sampleRows int
	progressTo io.Writer
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size. Default is 2: concurrent
// enough to hide request latency without tripping provider rate limits.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.poolSize = size
		return nil
	}
}

// WithSampleRows sets how many data rows are sampled per dataset.
func WithSampleRows(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			n = DefaultSampleRows
		}
		p.sampleRows = n
		return nil
	}
}

// WithCache attaches an analysis cache. Files whose content-derived key
// is cached skip the LLM entirely.
func WithCache(cache storage.AnalysisCache) Option {
	return func(p *Pipeline) error {
		p.cache = cache
		return nil
	}
}

// WithProgress sends progress output to the given writer.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) error {
		p.progressTo = w
		return nil
	}
}

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an analysis pipeline over the given analyzer.
func NewPipeline(analyzer *Analyzer, opts ...Option) (*Pipeline, error) {
	if analyzer == nil {
		return nil, ErrCompleterRequired
	}

	p := &Pipeline{
		analyzer:   analyzer,
		poolSize:   2,
		sampleRows: DefaultSampleRows,
		logger:     slog.Default().With("component", "analysis-pipeline"),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run analyzes every dataset in folder and returns analyses keyed by
// file name. Files that fail to read, fail to analyze, or produce
// unusable output are logged and skipped; Run errors only when nothing
// was analyzed, wrapping the per-file failures.
func (p *Pipeline) Run(ctx context.Context, folder string) (map[string]core.DatasetAnalysis, error) {
	paths, err := dataset.Discover(folder)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no dataset files in %s", ErrNoDatasetsAnalyzed, folder)
	}

	pool, err := ants.NewPool(p.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	progress := NewProgressTracker(p.progressTo, len(paths))
	progress.Start()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  = make(map[string]core.DatasetAnalysis, len(paths))
		failures []error
	)

	for _, path := range paths {
		path := path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			defer progress.Increment()

			name := filepath.Base(path)
			analysis, err := p.analyzeFile(ctx, path)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Warn("skipping dataset", "dataset", name, "err", err)
				failures = append(failures, fmt.Errorf("%s: %w", name, err))
				return
			}
			results[name] = analysis
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			failures = append(failures, submitErr)
			mu.Unlock()
		}
	}

	wg.Wait()
	progress.Finish()

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoDatasetsAnalyzed, errors.Join(failures...))
	}

	p.logger.Info("analysis phase complete",
		"analyzed", len(results),
		"failed", len(failures),
		"elapsed", progress.Elapsed())
	return results, nil
}

// analyzeFile samples one file, consults the cache, and falls through
// to the LLM on a miss.
func (p *Pipeline) analyzeFile(ctx context.Context, path string) (core.DatasetAnalysis, error) {
	tbl, err := dataset.ReadSample(path, p.sampleRows)
	if err != nil {
		return nil, err
	}
	sidecar, err := dataset.Sidecar(path)
	if err != nil {
		return nil, err
	}

	// The cache key covers everything that shapes the prompt, so a
	// changed sample, sidecar or prompt template always misses.
	cacheID := core.IDFromContent([]byte(promptVersion + "\x00" + tbl.Name + "\x00" + tbl.Render() + "\x00" + sidecar))

	if p.cache != nil {
		if cached, err := p.cache.GetAnalysis(ctx, cacheID); err == nil {
			p.logger.Debug("analysis served from cache", "dataset", tbl.Name)
			return cached, nil
		} else if !errors.Is(err, storage.ErrNotFound) {
			p.logger.Warn("cache read failed", "dataset", tbl.Name, "err", err)
		}
	}

	result, err := p.analyzer.AnalyzeTable(ctx, tbl, sidecar)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.PutAnalysis(ctx, cacheID, result); err != nil {
			p.logger.Warn("cache write failed", "dataset", tbl.Name, "err", err)
		}
	}
	return result, nil
}
