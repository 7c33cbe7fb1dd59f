// Package setup verifies the environment before a chat session: API keys,
// provider configuration, and the optional log file.
package setup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/eduquest/internal/llm"
)

// Check is one environment verification result.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Run performs the offline checks: key discovery, provider configuration,
// and log destination. It never calls a provider.
func Run() []Check {
	checks := []Check{keyCheck()}

	cfg, err := discover()
	if err != nil {
		checks = append(checks, Check{
			Name:   "provider configuration",
			Detail: err.Error(),
		})
	} else {
		checks = append(checks, Check{
			Name:   "provider configuration",
			OK:     true,
			Detail: fmt.Sprintf("provider %s", cfg.Provider),
		})
	}

	checks = append(checks, logCheck())
	return checks
}

func discover() (llm.Config, error) {
	if os.Getenv("EDUQUEST_LLM_PROVIDER") != "" {
		cfg := llm.ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	cfg, ok := llm.DiscoverConfig()
	if !ok {
		return cfg, errors.New("no API key found in the environment")
	}
	return cfg, cfg.Validate()
}

func keyCheck() Check {
	keys := []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"}
	for _, k := range keys {
		if os.Getenv(k) != "" {
			return Check{Name: "API key", OK: true, Detail: k + " is set"}
		}
	}
	return Check{
		Name:   "API key",
		Detail: "no API key found: set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY",
	}
}

func logCheck() Check {
	path := os.Getenv("EDUQUEST_LOG")
	if path == "" {
		return Check{Name: "logging", OK: true, Detail: "disabled (set EDUQUEST_LOG to enable)"}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Check{Name: "logging", Detail: fmt.Sprintf("cannot open %s: %v", path, err)}
	}
	f.Close()
	return Check{Name: "logging", OK: true, Detail: "writing to " + path}
}

// Probe sends a one-token request through the provider to confirm the key
// and model actually work.
func Probe(ctx context.Context, provider llm.Provider) Check {
	ctx = llm.WithPurpose(ctx, "doctor-probe")
	_, err := provider.Generate(ctx, llm.Request{
		Prompt:      "Reply with the single word: ok",
		Temperature: 0,
		MaxTokens:   8,
	})
	if err != nil {
		return Check{Name: "live probe", Detail: err.Error()}
	}
	return Check{Name: "live probe", OK: true, Detail: "model " + provider.ModelID() + " responded"}
}

// AllOK reports whether every check passed.
func AllOK(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}
