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


package ai

import (
	"fmt"
	"strings"
)

// Known provider names, in the default fallback order.
const (
	ProviderGoogle = "google"
	ProviderNVIDIA = "nvidia"
	ProviderGroq   = "groq"
)

// Environment variables holding the per-provider API keys.
const (
	GoogleAPIKeyEnv = "GOOGLE_API_KEY"
	NVIDIAAPIKeyEnv = "NVIDIA_API_KEY"
	GroqAPIKeyEnv   = "GROQ_API_KEY"
)

// Config holds the provider selection and per-provider generation
// settings used to build a fallback chain.
type Config struct {
	// Providers is the fallback order. Valid entries: "google",
	// "nvidia", "groq". Providers without an API key in the environment
	// are skipped at chain construction time.
	Providers []string

	// GoogleModel is the Gemini model identifier.
	// Example: "gemini-1.5-flash"
	GoogleModel string

	// NVIDIAHost is the base URL of the NVIDIA OpenAI-compatible API.
	NVIDIAHost string

	// NVIDIAModel is the model served through the NVIDIA endpoint.
	// Example: "meta/llama-3.3-70b-instruct"
	NVIDIAModel string

	// GroqHost is the base URL of the Groq OpenAI-compatible API.
	GroqHost string

	// GroqModel is the model served through the Groq endpoint.
	// Example: "llama-3.1-8b-instant"
	GroqModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithProviders sets the fallback order.
func WithProviders(providers ...string) ConfigOption {
	return func(c *Config) {
		c.Providers = providers
	}
}

// WithGoogleModel sets the Gemini model identifier.
func WithGoogleModel(model string) ConfigOption {
	return func(c *Config) {
		c.GoogleModel = model
	}
}

// WithNVIDIAHost sets the NVIDIA endpoint base URL.
func WithNVIDIAHost(host string) ConfigOption {
	return func(c *Config) {
		c.NVIDIAHost = host
	}
}

// WithNVIDIAModel sets the NVIDIA model identifier.
func WithNVIDIAModel(model string) ConfigOption {
	return func(c *Config) {
		c.NVIDIAModel = model
	}
}

// WithGroqHost sets the Groq endpoint base URL.
func WithGroqHost(host string) ConfigOption {
	return func(c *Config) {
		c.GroqHost = host
	}
}

// WithGroqModel sets the Groq model identifier.
func WithGroqModel(model string) ConfigOption {
	return func(c *Config) {
		c.GroqModel = model
	}
}

// DefaultConfig returns a Config with the default provider order and
// the default model for each provider.
func DefaultConfig() *Config {
	return &Config{
		Providers:   []string{ProviderGoogle, ProviderNVIDIA, ProviderGroq},
		GoogleModel: "gemini-1.5-flash",
		NVIDIAHost:  "https://integrate.api.nvidia.com/v1",
		NVIDIAModel: "meta/llama-3.3-70b-instruct",
		GroqHost:    "https://api.groq.com/openai/v1",
		GroqModel:   "llama-3.1-8b-instant",
	}
}

// NewConfig creates a Config with default values and applies the
// provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in canonical form. It adds the
// /v1 suffix to OpenAI-compatible hosts if missing, which the chat
// endpoints require.
func (c *Config) Normalize() {
	c.NVIDIAHost = ensureV1(c.NVIDIAHost)
	c.GroqHost = ensureV1(c.GroqHost)
}

func ensureV1(host string) string {
	if host == "" || strings.HasSuffix(host, "/v1") {
		return host
	}
	return strings.TrimSuffix(host, "/") + "/v1"
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if len(c.Providers) == 0 {
		return fmt.Errorf("ai config: %w", ErrNoProviders)
	}
	for _, name := range c.Providers {
		switch name {
		case ProviderGoogle, ProviderNVIDIA, ProviderGroq:
		default:
			return fmt.Errorf("ai config: %w: %q", ErrUnknownProvider, name)
		}
	}
	if c.GoogleModel == "" {
		return fmt.Errorf("ai config: GoogleModel is required")
	}
	if c.NVIDIAHost == "" || c.NVIDIAModel == "" {
		return fmt.Errorf("ai config: NVIDIA host and model are required")
	}
	if c.GroqHost == "" || c.GroqModel == "" {
		return fmt.Errorf("ai config: Groq host and model are required")
	}
	return nil
}
