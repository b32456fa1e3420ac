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

// Package config loads the harmonizer's TOML configuration file and
// builds the LLM provider chain from it. API keys are never stored in
// the file; they come from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/JJaniel/dataset-analyzer/ai"
)

// LLM holds the provider selection and per-provider overrides.
type LLM struct {
	// Providers is the fallback order. Valid entries: "google",
	// "nvidia", "groq".
	Providers   []string `toml:"providers"`
	GoogleModel string   `toml:"google_model"`
	NVIDIAHost  string   `toml:"nvidia_host"`
	NVIDIAModel string   `toml:"nvidia_model"`
	GroqHost    string   `toml:"groq_host"`
	GroqModel   string   `toml:"groq_model"`
}

// Analysis holds the tunables of the analysis pipeline.
type Analysis struct {
	SampleRows int `toml:"sample_rows"`
	PoolSize   int `toml:"pool_size"`
}

// Cache holds the analysis cache settings.
type Cache struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Config is the root of the TOML configuration file.
type Config struct {
	LogLevel string   `toml:"log_level"`
	LLM      LLM      `toml:"llm"`
	Analysis Analysis `toml:"analysis"`
	Cache    Cache    `toml:"cache"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	aiDefaults := ai.DefaultConfig()
	return &Config{
		LogLevel: "info",
		LLM: LLM{
			Providers:   aiDefaults.Providers,
			GoogleModel: aiDefaults.GoogleModel,
			NVIDIAHost:  aiDefaults.NVIDIAHost,
			NVIDIAModel: aiDefaults.NVIDIAModel,
			GroqHost:    aiDefaults.GroqHost,
			GroqModel:   aiDefaults.GroqModel,
		},
		Analysis: Analysis{
			SampleRows: 3,
			PoolSize:   2,
		},
		Cache: Cache{
			Enabled: true,
			Dir:     ".harmonizer-cache",
		},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AIConfig converts the LLM section into the ai package's config form,
// normalized and ready for chain construction.
func (c *Config) AIConfig() *ai.Config {
	aiCfg := &ai.Config{
		Providers:   c.LLM.Providers,
		GoogleModel: c.LLM.GoogleModel,
		NVIDIAHost:  c.LLM.NVIDIAHost,
		NVIDIAModel: c.LLM.NVIDIAModel,
		GroqHost:    c.LLM.GroqHost,
		GroqModel:   c.LLM.GroqModel,
	}
	aiCfg.Normalize()
	return aiCfg
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if err := c.AIConfig().Validate(); err != nil {
		return err
	}
	if c.Analysis.SampleRows < 1 {
		return fmt.Errorf("config: sample_rows must be at least 1")
	}
	if c.Analysis.PoolSize < 1 {
		return fmt.Errorf("config: pool_size must be at least 1")
	}
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return fmt.Errorf("config: cache.dir is required when the cache is enabled")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
