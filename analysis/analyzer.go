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
	"log/slog"

	"github.com/JJaniel/dataset-analyzer/ai"
	"github.com/JJaniel/dataset-analyzer/core"
	"github.com/JJaniel/dataset-analyzer/dataset"
)

// Completer is the slice of the LLM chain the analyzer needs.
// *ai.Chain satisfies it; tests substitute mocks.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

// Analyzer asks the LLM to semantically describe the columns of one
// dataset sample.
type Analyzer struct {
	completer Completer
	logger    *slog.Logger
}

// NewAnalyzer creates an analyzer over the given completer.
func NewAnalyzer(completer Completer) (*Analyzer, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	return &Analyzer{
		completer: completer,
		logger:    slog.Default().With("component", "analyzer"),
	}, nil
}

// AnalyzeTable analyzes a sampled dataset table, optionally enriched
// with sidecar metadata, and returns the per-column analysis.
//
// Malformed JSON responses are retried up to 3 times with a fresh LLM
// call; transport-level failures are returned immediately (the chain
// has already exhausted its provider fallback by then).
func (a *Analyzer) AnalyzeTable(ctx context.Context, tbl *dataset.Table, sidecar string) (core.DatasetAnalysis, error) {
	prompt := buildAnalysisPrompt(tbl.Name, tbl.Render(), sidecar)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		response, err := a.completer.Complete(ctx, ai.Request{Prompt: prompt, JSONMode: true})
		if err != nil {
			a.logger.Error("analysis completion failed", "dataset", tbl.Name, "attempt", attempt, "err", err)
			return nil, err
		}

		var result core.DatasetAnalysis
		if err := ai.DecodeJSON(response, &result); err != nil {
			lastErr = err
			a.logger.Warn("malformed analysis response",
				"dataset", tbl.Name,
				"attempt", attempt,
				"err", err)
			continue
		}

		if err := core.ValidateDatasetAnalysis(result); err != nil {
			lastErr = err
			a.logger.Warn("analysis failed validation", "dataset", tbl.Name, "attempt", attempt, "err", err)
			continue
		}

		a.logger.Debug("dataset analyzed", "dataset", tbl.Name, "columns", len(result))
		return result, nil
	}

	return nil, lastErr
}
