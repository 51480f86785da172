// Package config loads and validates the process configuration from the
// environment. All knobs have defaults; only credentials are required, and
// only where the environment demands them.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bidiq/bidiq/pkg/database"
)

// Source codes as used in ENABLE_SOURCE_<CODE> and <CODE>_API_KEY.
var sourceCodes = []string{"pncp", "comprasgov", "pcp"}

// openSources are enabled by default; credentialed sources default to off.
var openSources = map[string]bool{"pncp": true, "comprasgov": true}

// SourceConfig is one adapter's toggle and credentials.
type SourceConfig struct {
	Enabled   bool
	APIKey    string
	APISecret string
}

// ConsolidationConfig mirrors the engine's deadline hierarchy.
type ConsolidationConfig struct {
	PerSourceTimeout         time.Duration
	GlobalTimeout            time.Duration
	DegradedGlobalTimeout    time.Duration
	FailoverPerSourceTimeout time.Duration
	FallbackTimeout          time.Duration
	FailOnAll                bool
	DedupStrategy            string
	MaxConcurrent            int
}

// ArbiterConfig configures the LLM arbiter.
type ArbiterConfig struct {
	Enabled     bool
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

// RateLimitConfig configures the per-user limiter and the SSE cap.
type RateLimitConfig struct {
	Enabled           bool
	SearchPerMinute   int
	LoginPerMinute    int
	SSEMaxConnections int
}

// Config is the full process configuration.
type Config struct {
	Environment string
	LogLevel    string
	SentryDSN   string
	HTTPPort    int

	RedisURL      string
	EncryptionKey string
	AdminUserIDs  string
	SectorsPath   string

	Database database.Config

	Sources          map[string]SourceConfig
	PNCPTimeoutPerUF time.Duration

	Consolidation      ConsolidationConfig
	SearchFetchTimeout time.Duration

	Arbiter   ArbiterConfig
	RateLimit RateLimitConfig
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	httpPort, err := envInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	perUF, err := envSeconds("PNCP_TIMEOUT_PER_UF", 90*time.Second)
	if err != nil {
		return nil, err
	}

	cons, err := loadConsolidation()
	if err != nil {
		return nil, err
	}

	fetchTimeout, err := envSeconds("SEARCH_FETCH_TIMEOUT", 360*time.Second)
	if err != nil {
		return nil, err
	}

	arb, err := loadArbiter()
	if err != nil {
		return nil, err
	}

	rl, err := loadRateLimit()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:        envOr("ENVIRONMENT", "development"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		HTTPPort:           httpPort,
		RedisURL:           os.Getenv("REDIS_URL"),
		EncryptionKey:      os.Getenv("ENCRYPTION_KEY"),
		AdminUserIDs:       os.Getenv("ADMIN_USER_IDS"),
		SectorsPath:        envOr("SECTORS_PATH", "deploy/config/sectors.yaml"),
		Database:           dbCfg,
		Sources:            loadSources(),
		PNCPTimeoutPerUF:   perUF,
		Consolidation:      cons,
		SearchFetchTimeout: fetchTimeout,
		Arbiter:            arb,
		RateLimit:          rl,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the cross-field constraints.
func (c *Config) Validate() error {
	if c.IsProduction() && c.EncryptionKey == "" {
		return fmt.Errorf("ENCRYPTION_KEY is required in production")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("HTTP_PORT must be in (0, 65535], got %d", c.HTTPPort)
	}
	if c.SearchFetchTimeout <= c.Consolidation.GlobalTimeout {
		return fmt.Errorf("SEARCH_FETCH_TIMEOUT (%s) must exceed the global consolidation timeout (%s)",
			c.SearchFetchTimeout, c.Consolidation.GlobalTimeout)
	}
	if c.Consolidation.DedupStrategy != "first_seen" && c.Consolidation.DedupStrategy != "priority" {
		return fmt.Errorf("unknown dedup strategy %q", c.Consolidation.DedupStrategy)
	}
	for code, src := range c.Sources {
		if src.Enabled && !openSources[code] && src.APIKey == "" {
			return fmt.Errorf("source %s is enabled but %s_API_KEY is not set",
				code, strings.ToUpper(code))
		}
	}
	return nil
}

// IsProduction reports whether the process runs with production hardening.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// LogStartupSummary emits the one-line configuration echo logged at boot.
// Secrets never appear here.
func (c *Config) LogStartupSummary(sectorCount, planCount int) {
	enabled := make([]string, 0, len(c.Sources))
	for code, src := range c.Sources {
		if src.Enabled {
			enabled = append(enabled, code)
		}
	}

	slog.Info("Configuration loaded",
		"environment", c.Environment,
		"log_level", c.LogLevel,
		"http_port", c.HTTPPort,
		"sources_enabled", len(enabled),
		"sectors", sectorCount,
		"plans", planCount,
		"redis", c.RedisURL != "",
		"sentry", c.SentryDSN != "",
		"arbiter_enabled", c.Arbiter.Enabled,
		"rate_limiting_enabled", c.RateLimit.Enabled,
		"search_fetch_timeout", c.SearchFetchTimeout,
	)
}

func loadSources() map[string]SourceConfig {
	out := make(map[string]SourceConfig, len(sourceCodes))
	for _, code := range sourceCodes {
		upper := strings.ToUpper(code)
		out[code] = SourceConfig{
			Enabled:   envBool("ENABLE_SOURCE_"+upper, openSources[code]),
			APIKey:    os.Getenv(upper + "_API_KEY"),
			APISecret: os.Getenv(upper + "_API_SECRET"),
		}
	}
	return out
}

func loadConsolidation() (ConsolidationConfig, error) {
	perSource, err := envSeconds("CONSOLIDATION_TIMEOUT_PER_SOURCE", 180*time.Second)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	global, err := envSeconds("CONSOLIDATION_TIMEOUT_GLOBAL", 300*time.Second)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	degraded, err := envSeconds("CONSOLIDATION_DEGRADED_GLOBAL_TIMEOUT", 360*time.Second)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	failover, err := envSeconds("CONSOLIDATION_FAILOVER_TIMEOUT_PER_SOURCE", 120*time.Second)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	fallback, err := envSeconds("CONSOLIDATION_FALLBACK_TIMEOUT", 40*time.Second)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	maxConc, err := envInt("CONSOLIDATION_MAX_CONCURRENT", 5)
	if err != nil {
		return ConsolidationConfig{}, err
	}
	return ConsolidationConfig{
		PerSourceTimeout:         perSource,
		GlobalTimeout:            global,
		DegradedGlobalTimeout:    degraded,
		FailoverPerSourceTimeout: failover,
		FallbackTimeout:          fallback,
		FailOnAll:                envBool("CONSOLIDATION_FAIL_ON_ALL", true),
		DedupStrategy:            envOr("CONSOLIDATION_DEDUP_STRATEGY", "first_seen"),
		MaxConcurrent:            maxConc,
	}, nil
}

func loadArbiter() (ArbiterConfig, error) {
	maxTokens, err := envInt("LLM_ARBITER_MAX_TOKENS", 1)
	if err != nil {
		return ArbiterConfig{}, err
	}
	temp, err := envFloat("LLM_ARBITER_TEMPERATURE", 0)
	if err != nil {
		return ArbiterConfig{}, err
	}
	return ArbiterConfig{
		Enabled:     envBool("LLM_ARBITER_ENABLED", true),
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     os.Getenv("OPENAI_BASE_URL"),
		Model:       envOr("LLM_ARBITER_MODEL", "gpt-4o-mini"),
		MaxTokens:   maxTokens,
		Temperature: temp,
	}, nil
}

func loadRateLimit() (RateLimitConfig, error) {
	search, err := envInt("SEARCH_RATE_LIMIT_PER_MINUTE", 10)
	if err != nil {
		return RateLimitConfig{}, err
	}
	login, err := envInt("LOGIN_RATE_LIMIT", 5)
	if err != nil {
		return RateLimitConfig{}, err
	}
	sse, err := envInt("SSE_MAX_CONNECTIONS", 3)
	if err != nil {
		return RateLimitConfig{}, err
	}
	return RateLimitConfig{
		Enabled:           envBool("RATE_LIMITING_ENABLED", true),
		SearchPerMinute:   search,
		LoginPerMinute:    login,
		SSEMaxConnections: sse,
	}, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// envSeconds reads an env var given in whole seconds.
func envSeconds(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	secs, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, secs)
	}
	return time.Duration(secs) * time.Second, nil
}
