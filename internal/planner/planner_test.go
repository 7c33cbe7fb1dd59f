package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/log"
)

func TestNewStudyPlan_Defaults(t *testing.T) {
	p := NewStudyPlan(Input{})

	assert.Equal(t, "General Studies", p.Subject)
	assert.Equal(t, []string{"General Studies"}, p.Topics)
	assert.Equal(t, DefaultDays, p.DaysAvailable)

	wantDate := time.Now().AddDate(0, 0, DefaultDays).Format("January 2, 2006")
	assert.Equal(t, wantDate, p.ExamDate)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestNewStudyPlan_TopicsFallBackToSubject(t *testing.T) {
	p := NewStudyPlan(Input{Subject: "Java", Topics: []string{"", "  "}})
	assert.Equal(t, []string{"Java"}, p.Topics)
}

func TestNewStudyPlan_KeepsExplicitFields(t *testing.T) {
	p := NewStudyPlan(Input{
		Subject:       "Physics",
		Topics:        []string{"Optics", "Waves"},
		DaysAvailable: 3,
		ExamDate:      "next Friday",
	})
	assert.Equal(t, "Physics", p.Subject)
	assert.Equal(t, []string{"Optics", "Waves"}, p.Topics)
	assert.Equal(t, 3, p.DaysAvailable)
	assert.Equal(t, "next Friday", p.ExamDate)
}

func TestNewStudyPlan_NegativeDaysDefaulted(t *testing.T) {
	p := NewStudyPlan(Input{Subject: "Go", DaysAvailable: -2})
	assert.Equal(t, DefaultDays, p.DaysAvailable)
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, UrgencyUrgent, UrgencyFor(1))
	assert.Equal(t, UrgencyUrgent, UrgencyFor(3))
	assert.Equal(t, UrgencyModerate, UrgencyFor(4))
	assert.Equal(t, UrgencyModerate, UrgencyFor(7))
	assert.Equal(t, UrgencyRelaxed, UrgencyFor(8))
}

func TestCreatePlan(t *testing.T) {
	p := llm.NewMockProvider(llm.MockResponse{Text: "Day 1: Optics basics\nDay 2: Waves\n"})
	svc := NewService(p, log.Nop())

	plan, err := svc.CreatePlan(context.Background(), Input{
		Subject:       "Physics",
		Topics:        []string{"Optics", "Waves"},
		DaysAvailable: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Day 1: Optics basics\nDay 2: Waves", plan.Schedule)

	req := p.Calls[0]
	assert.InDelta(t, 0.5, req.Temperature, 1e-9)
	assert.Contains(t, req.Prompt, "Physics")
	assert.Contains(t, req.Prompt, "Optics, Waves")
	assert.Contains(t, req.Prompt, "Days available: 2")
}

func TestCreatePlan_ProviderError(t *testing.T) {
	p := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	svc := NewService(p, log.Nop())

	_, err := svc.CreatePlan(context.Background(), Input{Subject: "Go"})
	assert.Error(t, err)
}

func TestRefinePlan_LeavesOriginalUntouched(t *testing.T) {
	p := llm.NewMockProvider(llm.MockResponse{Text: "Day 1: lighter load"})
	svc := NewService(p, log.Nop())

	orig := NewStudyPlan(Input{Subject: "Go"})
	orig.Schedule = "Day 1: heavy load"

	refined, err := svc.RefinePlan(context.Background(), orig, "make day 1 easier")
	require.NoError(t, err)

	assert.Equal(t, "Day 1: lighter load", refined.Schedule)
	assert.Equal(t, "Day 1: heavy load", orig.Schedule)
	assert.Contains(t, p.Calls[0].Prompt, "make day 1 easier")
}

func TestQuickTips_FailureIsEmpty(t *testing.T) {
	p := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	svc := NewService(p, log.Nop())

	assert.Empty(t, svc.QuickTips(context.Background(), NewStudyPlan(Input{Subject: "Go"})))
}

func TestBanner(t *testing.T) {
	p := NewStudyPlan(Input{Subject: "Go", Topics: []string{"maps"}, DaysAvailable: 3, ExamDate: "June 1, 2026"})
	got := Banner(p)
	assert.Contains(t, got, "Study Plan: Go")
	assert.Contains(t, got, "3 days")
	assert.Contains(t, got, "June 1, 2026")
}
