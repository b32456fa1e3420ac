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

// Package harmonize synthesizes per-dataset column analyses into a
// cross-dataset harmonization map via a single LLM call.
package harmonize

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/JJaniel/dataset-analyzer/ai"
	"github.com/JJaniel/dataset-analyzer/core"
)

// ErrCompleterRequired is returned when a synthesizer is built without
// an LLM completer.
var ErrCompleterRequired = errors.New("an LLM completer is required")

// Completer is the slice of the LLM chain the synthesizer needs.
type Completer interface {
	Complete(ctx context.Context, req ai.Request) (string, error)
}

// Synthesizer asks the LLM to unify per-dataset column analyses into
// one harmonization map.
type Synthesizer struct {
	completer Completer
	logger    *slog.Logger
}

// NewSynthesizer creates a synthesizer over the given completer.
func NewSynthesizer(completer Completer) (*Synthesizer, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	return &Synthesizer{
		completer: completer,
		logger:    slog.Default().With("component", "synthesizer"),
	}, nil
}

// Synthesize combines the given per-dataset analyses, keyed by file
// name, into a harmonization map. Extra carries optional additional
// instructions that are appended to the prompt verbatim.
//
// Malformed or invalid responses are retried up to 3 times with a
// fresh LLM call.
func (s *Synthesizer) Synthesize(ctx context.Context, analyses map[string]core.DatasetAnalysis, extra string) (core.HarmonizationMap, error) {
	if len(analyses) == 0 {
		return nil, core.ErrEmptyAnalysis
	}

	combined, err := json.MarshalIndent(analyses, "", "  ")
	if err != nil {
		return nil, err
	}
	prompt := buildSynthesisPrompt(string(combined), extra)

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		response, err := s.completer.Complete(ctx, ai.Request{Prompt: prompt, JSONMode: true})
		if err != nil {
			s.logger.Error("synthesis completion failed", "attempt", attempt, "err", err)
			return nil, err
		}

		var m core.HarmonizationMap
		if err := ai.DecodeJSON(response, &m); err != nil {
			lastErr = err
			s.logger.Warn("malformed synthesis response", "attempt", attempt, "err", err)
			continue
		}

		if err := core.ValidateHarmonizationMap(m); err != nil {
			lastErr = err
			s.logger.Warn("synthesis output failed validation", "attempt", attempt, "err", err)
			continue
		}

		s.logger.Info("harmonization map synthesized",
			"features", len(m),
			"datasets", len(m.Datasets()))
		return m, nil
	}

	return nil, lastErr
}
