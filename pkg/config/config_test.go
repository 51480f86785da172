package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedEnv = []string{
	"ENVIRONMENT", "LOG_LEVEL", "SENTRY_DSN", "HTTP_PORT",
	"REDIS_URL", "ENCRYPTION_KEY", "ADMIN_USER_IDS", "SECTORS_PATH",
	"DB_PASSWORD",
	"ENABLE_SOURCE_PNCP", "ENABLE_SOURCE_COMPRASGOV", "ENABLE_SOURCE_PCP",
	"PCP_API_KEY", "PCP_API_SECRET",
	"PNCP_TIMEOUT_PER_UF",
	"CONSOLIDATION_TIMEOUT_PER_SOURCE", "CONSOLIDATION_TIMEOUT_GLOBAL",
	"CONSOLIDATION_DEGRADED_GLOBAL_TIMEOUT", "CONSOLIDATION_FAILOVER_TIMEOUT_PER_SOURCE",
	"CONSOLIDATION_FALLBACK_TIMEOUT", "CONSOLIDATION_FAIL_ON_ALL",
	"CONSOLIDATION_DEDUP_STRATEGY", "CONSOLIDATION_MAX_CONCURRENT",
	"SEARCH_FETCH_TIMEOUT",
	"LLM_ARBITER_ENABLED", "LLM_ARBITER_MODEL", "LLM_ARBITER_MAX_TOKENS",
	"LLM_ARBITER_TEMPERATURE", "OPENAI_API_KEY", "OPENAI_BASE_URL",
	"SEARCH_RATE_LIMIT_PER_MINUTE", "LOGIN_RATE_LIMIT", "SSE_MAX_CONNECTIONS",
	"RATE_LIMITING_ENABLED",
}

func resetEnv(t *testing.T, vars map[string]string) {
	for _, key := range managedEnv {
		os.Unsetenv(key)
	}
	os.Setenv("DB_PASSWORD", "test") // database config requires it
	for key, val := range vars {
		os.Setenv(key, val)
	}
	t.Cleanup(func() {
		for _, key := range managedEnv {
			os.Unsetenv(key)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	resetEnv(t, nil)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "first_seen", cfg.Consolidation.DedupStrategy)
	assert.Equal(t, 180, int(cfg.Consolidation.PerSourceTimeout.Seconds()))
	assert.Equal(t, 300, int(cfg.Consolidation.GlobalTimeout.Seconds()))
	assert.Equal(t, 360, int(cfg.SearchFetchTimeout.Seconds()))
	assert.True(t, cfg.Consolidation.FailOnAll)
	assert.Equal(t, 5, cfg.Consolidation.MaxConcurrent)

	// Open sources on, credentialed off.
	assert.True(t, cfg.Sources["pncp"].Enabled)
	assert.True(t, cfg.Sources["comprasgov"].Enabled)
	assert.False(t, cfg.Sources["pcp"].Enabled)

	assert.True(t, cfg.Arbiter.Enabled)
	assert.Equal(t, "gpt-4o-mini", cfg.Arbiter.Model)
	assert.Equal(t, 1, cfg.Arbiter.MaxTokens)

	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.SearchPerMinute)
	assert.Equal(t, 3, cfg.RateLimit.SSEMaxConnections)
}

func TestLoad_Overrides(t *testing.T) {
	resetEnv(t, map[string]string{
		"ENVIRONMENT":                      "staging",
		"HTTP_PORT":                        "9090",
		"ENABLE_SOURCE_PNCP":               "false",
		"ENABLE_SOURCE_PCP":                "true",
		"PCP_API_KEY":                      "key",
		"PCP_API_SECRET":                   "secret",
		"CONSOLIDATION_TIMEOUT_PER_SOURCE": "60",
		"SEARCH_FETCH_TIMEOUT":             "400",
		"LLM_ARBITER_ENABLED":              "false",
		"SEARCH_RATE_LIMIT_PER_MINUTE":     "2",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.False(t, cfg.Sources["pncp"].Enabled)
	assert.True(t, cfg.Sources["pcp"].Enabled)
	assert.Equal(t, "key", cfg.Sources["pcp"].APIKey)
	assert.Equal(t, 60, int(cfg.Consolidation.PerSourceTimeout.Seconds()))
	assert.False(t, cfg.Arbiter.Enabled)
	assert.Equal(t, 2, cfg.RateLimit.SearchPerMinute)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "production requires encryption key",
			env:     map[string]string{"ENVIRONMENT": "production"},
			wantErr: "ENCRYPTION_KEY",
		},
		{
			name:    "credentialed source without key",
			env:     map[string]string{"ENABLE_SOURCE_PCP": "true"},
			wantErr: "PCP_API_KEY",
		},
		{
			name:    "invalid timeout",
			env:     map[string]string{"SEARCH_FETCH_TIMEOUT": "abc"},
			wantErr: "SEARCH_FETCH_TIMEOUT",
		},
		{
			name:    "negative timeout",
			env:     map[string]string{"CONSOLIDATION_TIMEOUT_GLOBAL": "-5"},
			wantErr: "CONSOLIDATION_TIMEOUT_GLOBAL",
		},
		{
			name: "fetch budget below global timeout",
			env: map[string]string{
				"SEARCH_FETCH_TIMEOUT":         "200",
				"CONSOLIDATION_TIMEOUT_GLOBAL": "300",
			},
			wantErr: "must exceed",
		},
		{
			name:    "unknown dedup strategy",
			env:     map[string]string{"CONSOLIDATION_DEDUP_STRATEGY": "last_seen"},
			wantErr: "dedup strategy",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv(t, tt.env)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsProduction(t *testing.T) {
	cfg := &Config{Environment: "Production"}
	assert.True(t, cfg.IsProduction())
	cfg.Environment = "development"
	assert.False(t, cfg.IsProduction())
}
