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


// Package gemini implements ai.Provider for Google Gemini models.
package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/JJaniel/dataset-analyzer/ai"
)

// Provider implements ai.Provider using the Gemini API through langchaingo.
type Provider struct {
	client      llms.Model
	temperature float64
	logger      *slog.Logger
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	model       string
	temperature float64
}

// WithModel sets the Gemini model identifier. Default: "gemini-1.5-flash".
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithTemperature sets the sampling temperature. Default: 0.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// New creates a Gemini provider. The API key is required; the chain
// builder skips this provider entirely when GOOGLE_API_KEY is unset.
//
// Returns ai.Provider to keep callers decoupled from the Gemini client.
func New(ctx context.Context, apiKey string, opts ...Option) (ai.Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", ai.ProviderGoogle, ai.ErrMissingAPIKey)
	}

	o := options{model: "gemini-1.5-flash", temperature: 0}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(o.model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &Provider{
		client:      client,
		temperature: o.temperature,
		logger:      slog.Default().With("component", "gemini-provider"),
	}, nil
}

// Name returns "google".
func (p *Provider) Name() string {
	return ai.ProviderGoogle
}

// Complete sends the request to Gemini and returns the response text.
func (p *Provider) Complete(ctx context.Context, req ai.Request) (string, error) {
	var content []llms.MessageContent
	if req.System != "" {
		content = append(content, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(req.System)},
		})
	}
	content = append(content, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(req.Prompt)},
	})

	callOpts := []llms.CallOption{llms.WithTemperature(p.temperature)}
	if req.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	response, err := p.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		p.logger.Debug("generation failed", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("gemini returned no choices")
	}
	return response.Choices[0].Content, nil
}
