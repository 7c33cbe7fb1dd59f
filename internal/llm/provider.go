package llm

import "context"

// Provider is the core abstraction for text generation.
// Every external generation call in EduQuest goes through this interface,
// which keeps the orchestration core testable with a deterministic mock.
type Provider interface {
	// Generate sends a single prompt to the model and returns its text reply.
	// Each logical request is attempted exactly once; failures are converted
	// to typed errors and handled at the call site.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Prompt is the user-facing content of the request.
	Prompt string

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Each agent uses its own setting (router low, quiz high).
	Temperature float64

	// MaxTokens limits the response length. Zero means the provider default.
	MaxTokens int

	// CandidateCount is the number of completions to request.
	// Zero means 1. Only the first candidate is ever returned.
	CandidateCount int
}

// Response holds the model's output.
type Response struct {
	// Text is the generated reply, stripped of surrounding whitespace.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// defaultMaxTokens is applied when a request does not set MaxTokens.
const defaultMaxTokens = 2048
