// Package planner creates and refines study plans.
package planner

import (
	"strings"
	"time"
)

// DefaultDays is assumed when the user gives no timeframe.
const DefaultDays = 7

// Input is the raw planning request extracted from a user turn.
type Input struct {
	Subject       string
	Topics        []string
	DaysAvailable int
	ExamDate      string
	Notes         string
}

// StudyPlan is a normalized plan request plus the generated schedule text.
type StudyPlan struct {
	Subject       string
	Topics        []string
	DaysAvailable int
	ExamDate      string
	Schedule      string
	CreatedAt     time.Time
}

// NewStudyPlan normalizes an Input into a StudyPlan shell, before schedule
// generation. Missing fields get workable defaults: a week of prep, the
// subject standing in for topics, and a generic subject as a last resort.
func NewStudyPlan(in Input) *StudyPlan {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		subject = "General Studies"
	}

	topics := make([]string, 0, len(in.Topics))
	for _, t := range in.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		topics = []string{subject}
	}

	days := in.DaysAvailable
	if days <= 0 {
		days = DefaultDays
	}

	examDate := strings.TrimSpace(in.ExamDate)
	if examDate == "" {
		examDate = time.Now().AddDate(0, 0, days).Format("January 2, 2006")
	}

	return &StudyPlan{
		Subject:       subject,
		Topics:        topics,
		DaysAvailable: days,
		ExamDate:      examDate,
		CreatedAt:     time.Now(),
	}
}

// Urgency buckets the timeframe for tone and pacing.
type Urgency string

const (
	UrgencyUrgent   Urgency = "urgent"
	UrgencyModerate Urgency = "moderate"
	UrgencyRelaxed  Urgency = "relaxed"
)

// UrgencyFor maps days of prep time to an urgency bucket.
func UrgencyFor(days int) Urgency {
	switch {
	case days <= 3:
		return UrgencyUrgent
	case days <= 7:
		return UrgencyModerate
	default:
		return UrgencyRelaxed
	}
}
