package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/eduquest/internal/llm"
)

const (
	questionTemperature = 0.7
	evalTemperature     = 0.3
	hintTemperature     = 0.5
)

// HintFallback is shown when hint generation fails.
const HintFallback = "Hint: Think about the fundamental concepts of this topic."

// Service generates questions, grades answers, and produces hints through
// the generation provider.
type Service struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewService builds a quiz Service.
func NewService(provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// GenerateQuestion asks the provider for the session's next question. The
// returned question is not yet added to the session. Errors are returned
// so the caller can consume the slot and move on.
func (s *Service) GenerateQuestion(ctx context.Context, sess *Session) (Question, error) {
	topic := sess.NextTopic()
	difficulty := sess.NextDifficulty()

	previous := make([]string, 0, len(sess.Questions))
	for _, q := range sess.Questions {
		previous = append(previous, q.Text)
	}

	ctx = llm.WithPurpose(ctx, "quiz-question")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      questionPrompt(sess.Subject, topic, difficulty, previous, sess.AskedTopics()),
		Temperature: questionTemperature,
	})
	if err != nil {
		return Question{}, fmt.Errorf("generate question on %q: %w", topic, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Question{}, fmt.Errorf("generate question on %q: %w", topic, &llm.ErrEmptyResponse{})
	}

	return Question{Topic: topic, Difficulty: difficulty, Text: text}, nil
}

// EvaluateAnswer grades an answer. It never fails the turn: if the grader
// is unreachable the answer is recorded as incorrect with an apology, so a
// provider outage can cost the user a point but not the session.
func (s *Service) EvaluateAnswer(ctx context.Context, q *Question, answer string) Evaluation {
	ctx = llm.WithPurpose(ctx, "answer-evaluation")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      evaluationPrompt(q, answer),
		Temperature: evalTemperature,
	})
	if err != nil {
		s.logger.Warn("answer evaluation failed", "topic", q.Topic, "error", err)
		return Evaluation{
			Verdict:     VerdictIncorrect,
			Explanation: "I couldn't evaluate that answer, so it wasn't counted. Let's keep going.",
		}
	}
	return ParseEvaluation(resp.Text)
}

// Hint produces a hint for the pending question, falling back to a generic
// nudge when generation fails. Hints have no effect on scoring.
func (s *Service) Hint(ctx context.Context, q *Question) string {
	ctx = llm.WithPurpose(ctx, "quiz-hint")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      hintPrompt(q),
		Temperature: hintTemperature,
	})
	if err != nil {
		s.logger.Warn("hint generation failed", "topic", q.Topic, "error", err)
		return HintFallback
	}
	if text := strings.TrimSpace(resp.Text); text != "" {
		return text
	}
	return HintFallback
}

// Intro renders the session's opening banner.
func Intro(sess *Session) string {
	var b strings.Builder

	b.WriteString("Let's start your quiz!\n\n")
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(sess.Topics, ", "))
	fmt.Fprintf(&b, "Questions: %d\n\n", sess.TotalQuestions)
	b.WriteString("Answer each question, or type 'hint' for a nudge, 'skip' to move on, or 'quit quiz' to stop early.")

	return b.String()
}

// SummaryText renders the end-of-session report.
func SummaryText(sum Summary) string {
	var b strings.Builder

	b.WriteString("Quiz Complete!\n\n")
	fmt.Fprintf(&b, "Final Score: %d/%d (%.1f%%)\n", sum.Score, sum.Asked, sum.Percentage)
	fmt.Fprintf(&b, "Performance: %s\n", performanceBand(sum.Percentage))

	if len(sum.WeakAreas) > 0 {
		fmt.Fprintf(&b, "\nAreas to review: %s\n", strings.Join(sum.WeakAreas, ", "))
	}
	b.WriteString("\nWant another round? Just say 'quiz me' anytime.")

	return b.String()
}

func performanceBand(pct float64) string {
	switch {
	case pct >= 90:
		return "Excellent"
	case pct >= 75:
		return "Good"
	case pct >= 60:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
