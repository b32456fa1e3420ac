package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJaniel/dataset-analyzer/ai"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"google", "nvidia", "groq"}, cfg.LLM.Providers)
	assert.Equal(t, 3, cfg.Analysis.SampleRows)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "harmonizer.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[llm]
providers = ["groq"]
groq_model = "llama-3.3-70b-versatile"

[analysis]
sample_rows = 5
pool_size = 4

[cache]
enabled = false
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"groq"}, cfg.LLM.Providers)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.LLM.GroqModel)
	// Untouched sections keep their defaults.
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.GoogleModel)
	assert.Equal(t, 5, cfg.Analysis.SampleRows)
	assert.Equal(t, 4, cfg.Analysis.PoolSize)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown provider", "[llm]\nproviders = [\"openai\"]\n"},
		{"bad sample rows", "[analysis]\nsample_rows = 0\n"},
		{"bad log level", "log_level = \"verbose\"\n"},
		{"not toml", "{\"json\": true}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "harmonizer.toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestAIConfigNormalizesHosts(t *testing.T) {
	cfg := Default()
	cfg.LLM.NVIDIAHost = "https://integrate.api.nvidia.com"

	aiCfg := cfg.AIConfig()
	assert.Equal(t, "https://integrate.api.nvidia.com/v1", aiCfg.NVIDIAHost)
}

func TestBuildProvidersSkipsMissingKeys(t *testing.T) {
	t.Setenv(ai.GoogleAPIKeyEnv, "")
	t.Setenv(ai.NVIDIAAPIKeyEnv, "")
	t.Setenv(ai.GroqAPIKeyEnv, "test-key")

	providers, err := BuildProviders(context.Background(), Default().AIConfig())
	require.NoError(t, err)
	require.Len(t, providers, 1)
	assert.Equal(t, "groq", providers[0].Name())
}

func TestBuildProvidersAllKeysMissing(t *testing.T) {
	t.Setenv(ai.GoogleAPIKeyEnv, "")
	t.Setenv(ai.NVIDIAAPIKeyEnv, "")
	t.Setenv(ai.GroqAPIKeyEnv, "")

	_, err := BuildProviders(context.Background(), Default().AIConfig())
	assert.ErrorIs(t, err, ai.ErrNoProviders)
}

func TestBuildChain(t *testing.T) {
	t.Setenv(ai.GoogleAPIKeyEnv, "")
	t.Setenv(ai.NVIDIAAPIKeyEnv, "nv-key")
	t.Setenv(ai.GroqAPIKeyEnv, "groq-key")

	chain, err := BuildChain(context.Background(), Default().AIConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"nvidia", "groq"}, chain.Providers())
}
