package intent

import (
	"context"
	"log/slog"

	"github.com/abhisek/eduquest/internal/llm"
)

const routingTemperature = 0.3

// Classifier routes a user turn to one of the assistant's modes.
type Classifier struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewClassifier builds a Classifier over the given provider.
func NewClassifier(provider llm.Provider, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{provider: provider, logger: logger}
}

// Classify decides where the turn goes. It never returns an error: any
// failure in generation or parsing degrades to the chat fallback so the
// conversation continues.
func (c *Classifier) Classify(ctx context.Context, turn, conversationContext string) Result {
	ctx = llm.WithPurpose(ctx, "intent-routing")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Prompt:         buildPrompt(turn, conversationContext),
		Temperature:    routingTemperature,
		CandidateCount: 1,
	})
	if err != nil {
		c.logger.Warn("intent routing failed, falling back to chat", "error", err)
		return Fallback()
	}

	res, err := parseReply(resp.Text)
	if err != nil {
		c.logger.Warn("unparseable routing reply, falling back to chat", "error", err)
		return Fallback()
	}
	return res
}
