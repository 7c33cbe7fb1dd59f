package planner

import (
	"fmt"
	"strings"
)

const plannerRole = `You are an expert study planner. You create realistic, motivating study schedules that balance coverage with rest.`

func planPrompt(p *StudyPlan, notes string) string {
	var b strings.Builder

	b.WriteString(plannerRole)
	fmt.Fprintf(&b, "\n\nCreate a day-by-day study plan.\n")
	fmt.Fprintf(&b, "\nSubject: %s\n", p.Subject)
	fmt.Fprintf(&b, "Topics: %s\n", strings.Join(p.Topics, ", "))
	fmt.Fprintf(&b, "Days available: %d\n", p.DaysAvailable)
	fmt.Fprintf(&b, "Exam date: %s\n", p.ExamDate)
	if notes != "" {
		fmt.Fprintf(&b, "Additional context: %s\n", notes)
	}
	b.WriteString(`
Requirements:
- One section per day, labeled "Day 1", "Day 2", and so on
- Assume about 3 hours of study per day
- Cover every topic at least once, weighting harder material earlier
- End each day with a short review or self-test item
- Keep it plain text, no markdown tables`)

	return b.String()
}

func refinePrompt(p *StudyPlan, feedback string) string {
	var b strings.Builder

	b.WriteString(plannerRole)
	b.WriteString("\n\nHere is the current study plan:\n\n")
	b.WriteString(p.Schedule)
	fmt.Fprintf(&b, "\n\nThe student asked for this change: %s\n", feedback)
	b.WriteString("\nRewrite the full plan with the change applied. Keep the same day-by-day format and overall timeframe.")

	return b.String()
}

func tipsPrompt(p *StudyPlan) string {
	return fmt.Sprintf(`%s

Give 3 short study tips for a student preparing for %s in %d days (%s timeframe). One line per tip, no numbering preamble beyond "1.", "2.", "3.".`,
		plannerRole, p.Subject, p.DaysAvailable, UrgencyFor(p.DaysAvailable))
}
