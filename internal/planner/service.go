package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/eduquest/internal/llm"
)

const planTemperature = 0.5

// Service generates study plans through the generation provider.
type Service struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewService builds a planner Service.
func NewService(provider llm.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{provider: provider, logger: logger}
}

// CreatePlan normalizes the input and generates its schedule. The returned
// plan carries the full schedule text.
func (s *Service) CreatePlan(ctx context.Context, in Input) (*StudyPlan, error) {
	plan := NewStudyPlan(in)

	ctx = llm.WithPurpose(ctx, "study-plan")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      planPrompt(plan, in.Notes),
		Temperature: planTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("create study plan for %q: %w", plan.Subject, err)
	}

	plan.Schedule = strings.TrimSpace(resp.Text)
	if plan.Schedule == "" {
		return nil, fmt.Errorf("create study plan for %q: %w", plan.Subject, &llm.ErrEmptyResponse{})
	}

	s.logger.Info("study plan created",
		"subject", plan.Subject,
		"topics", len(plan.Topics),
		"days", plan.DaysAvailable,
	)
	return plan, nil
}

// RefinePlan rewrites an existing plan's schedule per the user's feedback,
// returning a new plan and leaving the original untouched.
func (s *Service) RefinePlan(ctx context.Context, plan *StudyPlan, feedback string) (*StudyPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan-refinement")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      refinePrompt(plan, feedback),
		Temperature: planTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("refine study plan: %w", err)
	}

	schedule := strings.TrimSpace(resp.Text)
	if schedule == "" {
		return nil, fmt.Errorf("refine study plan: %w", &llm.ErrEmptyResponse{})
	}

	refined := *plan
	refined.Schedule = schedule
	return &refined, nil
}

// QuickTips returns a few study tips tuned to the plan's urgency. Failures
// degrade to an empty string; tips are garnish, not substance.
func (s *Service) QuickTips(ctx context.Context, plan *StudyPlan) string {
	ctx = llm.WithPurpose(ctx, "study-tips")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      tipsPrompt(plan),
		Temperature: planTemperature,
	})
	if err != nil {
		s.logger.Warn("study tips generation failed", "error", err)
		return ""
	}
	return strings.TrimSpace(resp.Text)
}

// Banner renders the plan header shown above the schedule.
func Banner(p *StudyPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Study Plan: %s\n", p.Subject)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(p.Topics, ", "))
	fmt.Fprintf(&b, "Timeframe: %d days (exam: %s)", p.DaysAvailable, p.ExamDate)
	return b.String()
}
