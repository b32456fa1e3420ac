package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/JJaniel/dataset-analyzer/ai"
	"github.com/JJaniel/dataset-analyzer/ai/gemini"
	"github.com/JJaniel/dataset-analyzer/ai/openaicompat"
)

// BuildProviders constructs one ai.Provider per configured provider, in
// fallback order. Providers whose API key environment variable is unset
// are skipped with a log line rather than failing the whole run.
func BuildProviders(ctx context.Context, cfg *ai.Config) ([]ai.Provider, error) {
	logger := slog.Default().With("component", "provider-builder")

	var providers []ai.Provider
	for _, name := range cfg.Providers {
		var (
			p      ai.Provider
			err    error
			keyEnv string
		)
		switch name {
		case ai.ProviderGoogle:
			keyEnv = ai.GoogleAPIKeyEnv
			if key := os.Getenv(keyEnv); key != "" {
				p, err = gemini.New(ctx, key, gemini.WithModel(cfg.GoogleModel))
			}
		case ai.ProviderNVIDIA:
			keyEnv = ai.NVIDIAAPIKeyEnv
			if key := os.Getenv(keyEnv); key != "" {
				p, err = openaicompat.NewNVIDIA(cfg.NVIDIAHost, cfg.NVIDIAModel, key)
			}
		case ai.ProviderGroq:
			keyEnv = ai.GroqAPIKeyEnv
			if key := os.Getenv(keyEnv); key != "" {
				p, err = openaicompat.NewGroq(cfg.GroqHost, cfg.GroqModel, key)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ai.ErrUnknownProvider, name)
		}

		if err != nil {
			return nil, fmt.Errorf("building provider %s: %w", name, err)
		}
		if p == nil {
			logger.Warn("provider skipped, API key not set", "provider", name, "env", keyEnv)
			continue
		}
		providers = append(providers, p)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: no configured provider has an API key", ai.ErrNoProviders)
	}
	return providers, nil
}

// BuildChain constructs the fallback chain for the configured providers.
func BuildChain(ctx context.Context, cfg *ai.Config) (*ai.Chain, error) {
	providers, err := BuildProviders(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return ai.NewChain(providers...)
}
