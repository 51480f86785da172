// Package arbiter is the LLM relevance oracle: a single-token SIM/NAO
// classification for bids the lexical layers cannot decide, with process-wide
// memoization and a conservative fallback on any oracle problem.
package arbiter

import (
	"context"
	"crypto/md5"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// Mode selects which question the oracle is asked.
type Mode string

const (
	// ModePrimaryMatch asks whether the bid is primarily about the sector
	// or custom terms (uncertain-zone arbitration).
	ModePrimaryMatch Mode = "primary_match"
	// ModeRecovery asks whether a previously rejected bid is nevertheless
	// relevant, given the rejection reason.
	ModeRecovery Mode = "recovery"
)

// PromptLevel tunes how strict the primary-match prompt is.
type PromptLevel string

const (
	LevelConservative PromptLevel = "conservative"
	LevelStandard     PromptLevel = "standard"
)

// MaxObjectChars caps the object description sent to the oracle.
const MaxObjectChars = 500

// Request is one classification question.
type Request struct {
	Mode        Mode
	PromptLevel PromptLevel

	Objeto string
	Valor  float64

	// Exactly one of SectorName or CustomTerms provides context.
	SectorName  string
	CustomTerms []string

	// Recovery mode only.
	RejectionReason string
	NearMissInfo    string
}

// Oracle is the classification contract the filter engine consumes.
type Oracle interface {
	Decide(ctx context.Context, req Request) bool
}

// Config carries the oracle settings (LLM_ARBITER_* environment).
type Config struct {
	Enabled     bool
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// DefaultConfig returns the oracle defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Model:       "gpt-4o-mini",
		MaxTokens:   1,
		Temperature: 0,
	}
}

// Arbiter implements Oracle against an OpenAI-compatible endpoint.
type Arbiter struct {
	client *openai.Client
	cfg    Config

	// Memo cache keyed by md5 of the request. Unbounded by design; it only
	// grows with distinct (object, context) pairs and is cleared explicitly.
	mu    sync.Mutex
	cache map[string]bool
}

// New builds the oracle. A disabled or key-less configuration produces an
// oracle that always returns the safe default.
func New(cfg Config) *Arbiter {
	a := &Arbiter{cfg: cfg, cache: make(map[string]bool)}
	if !cfg.Enabled || cfg.APIKey == "" {
		if cfg.Enabled {
			slog.Warn("LLM arbiter enabled but no API key configured, falling back to safe defaults")
		}
		a.cfg.Enabled = false
		return a
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	a.client = openai.NewClientWithConfig(clientCfg)
	return a
}

// Decide returns the oracle's verdict. The safe default — false for both
// modes — is returned when the arbiter is disabled or the oracle errs.
func (a *Arbiter) Decide(ctx context.Context, req Request) bool {
	if !a.cfg.Enabled {
		return false
	}

	req.Objeto = truncate(req.Objeto, MaxObjectChars)
	key := a.cacheKey(req)

	a.mu.Lock()
	if verdict, ok := a.cache[key]; ok {
		a.mu.Unlock()
		return verdict
	}
	a.mu.Unlock()

	verdict, err := a.ask(ctx, req)
	if err != nil {
		slog.Warn("LLM arbiter call failed, returning safe default",
			"mode", req.Mode, "error", err)
		return false
	}

	a.mu.Lock()
	a.cache[key] = verdict
	a.mu.Unlock()
	return verdict
}

// ClearCache drops every memoized verdict.
func (a *Arbiter) ClearCache() {
	a.mu.Lock()
	a.cache = make(map[string]bool)
	a.mu.Unlock()
}

// CacheSize returns the number of memoized verdicts.
func (a *Arbiter) CacheSize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.cache)
}

func (a *Arbiter) ask(ctx context.Context, req Request) (bool, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       a.cfg.Model,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt(req)},
		},
	})
	if err != nil {
		return false, err
	}
	if len(resp.Choices) == 0 {
		return false, fmt.Errorf("empty completion")
	}

	answer := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	verdict := answer == "SIM"
	if answer != "SIM" && answer != "NAO" {
		slog.Warn("LLM arbiter returned unexpected token, interpreting as NAO",
			"mode", req.Mode, "answer", answer)
	}
	return verdict, nil
}

func (a *Arbiter) cacheKey(req Request) string {
	context := req.SectorName
	if context == "" {
		context = strings.Join(req.CustomTerms, ",")
	}
	sum := md5.Sum([]byte(fmt.Sprintf("%s:%s:%.2f:%s:%s",
		req.Mode, context, req.Valor, req.Objeto, req.PromptLevel)))
	return fmt.Sprintf("%x", sum)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
