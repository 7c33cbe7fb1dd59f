package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// NewProvider creates a Provider from configuration, wrapped with
// request logging.
func NewProvider(ctx context.Context, cfg Config, logger *slog.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, logger), nil
}

// NewProviderFromEnv builds a provider from EDUQUEST_* env vars, falling
// back to probing the standard vendor key variables (GEMINI_API_KEY first,
// matching the assistant's default backend).
func NewProviderFromEnv(ctx context.Context, logger *slog.Logger) (Provider, error) {
	var cfg Config
	if os.Getenv("EDUQUEST_LLM_PROVIDER") != "" {
		cfg = ConfigFromEnv()
	} else {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found: set GEMINI_API_KEY (or OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY)")
		}
		cfg = discovered
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return NewProvider(ctx, cfg, logger)
}
