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


// Package openaicompat implements ai.Provider for any OpenAI-compatible
// chat API. NVIDIA's integrate endpoint and Groq both speak this
// protocol, as do local servers like Ollama and vLLM.
package openaicompat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/JJaniel/dataset-analyzer/ai"
)

// Provider implements ai.Provider against an OpenAI-compatible endpoint.
type Provider struct {
	name        string
	client      llms.Model
	temperature float64
	topP        float64
	maxTokens   int
	logger      *slog.Logger
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	temperature float64
	topP        float64
	maxTokens   int
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(o *options) {
		o.temperature = t
	}
}

// WithTopP sets nucleus sampling. Zero leaves the endpoint default.
func WithTopP(p float64) Option {
	return func(o *options) {
		o.topP = p
	}
}

// WithMaxTokens caps the completion length. Default: 1024.
func WithMaxTokens(n int) Option {
	return func(o *options) {
		o.maxTokens = n
	}
}

// New creates a provider for an OpenAI-compatible chat endpoint.
// name is the provider's identity in configuration and logs.
//
// Returns ai.Provider to keep callers decoupled from the client.
func New(name, host, model, apiKey string, opts ...Option) (ai.Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %w", name, ai.ErrMissingAPIKey)
	}

	o := options{temperature: 0, maxTokens: 1024}
	for _, opt := range opts {
		opt(&o)
	}

	client, err := openai.New(
		openai.WithBaseURL(host),
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", name, err)
	}

	return &Provider{
		name:        name,
		client:      client,
		temperature: o.temperature,
		topP:        o.topP,
		maxTokens:   o.maxTokens,
		logger:      slog.Default().With("component", "openaicompat-provider", "provider", name),
	}, nil
}

// NewNVIDIA creates a provider for NVIDIA's hosted inference endpoint
// with its documented defaults.
func NewNVIDIA(host, model, apiKey string) (ai.Provider, error) {
	return New(ai.ProviderNVIDIA, host, model, apiKey,
		WithTemperature(0.2),
		WithTopP(0.7),
		WithMaxTokens(1024),
	)
}

// NewGroq creates a provider for Groq's OpenAI-compatible endpoint.
func NewGroq(host, model, apiKey string) (ai.Provider, error) {
	return New(ai.ProviderGroq, host, model, apiKey,
		WithTemperature(1),
		WithMaxTokens(1024),
	)
}

// Name returns the provider name given at construction.
func (p *Provider) Name() string {
	return p.name
}

// Complete sends the request and returns the response text.
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

	callOpts := []llms.CallOption{
		llms.WithTemperature(p.temperature),
		llms.WithMaxTokens(p.maxTokens),
	}
	if p.topP > 0 {
		callOpts = append(callOpts, llms.WithTopP(p.topP))
	}
	if req.JSONMode {
		callOpts = append(callOpts, llms.WithJSONMode())
	}

	response, err := p.client.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		p.logger.Debug("generation failed", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("%s returned no choices", p.name)
	}
	return response.Choices[0].Content, nil
}
