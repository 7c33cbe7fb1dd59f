package quiz

import "strings"

// Verdict is the grading outcome for a single answer.
type Verdict int

const (
	VerdictIncorrect Verdict = iota
	VerdictPartial
	VerdictCorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictPartial:
		return "partially correct"
	default:
		return "incorrect"
	}
}

// Evaluation is a graded answer: the verdict plus the grader's explanation.
type Evaluation struct {
	Verdict     Verdict
	Explanation string
}

// ParseEvaluation reads the grader's plain-text reply. The reply is expected
// to contain a "VERDICT: ..." line; anything unrecognized grades as
// incorrect rather than failing the turn.
func ParseEvaluation(raw string) Evaluation {
	upper := strings.ToUpper(raw)

	verdict := VerdictIncorrect
	switch {
	case strings.Contains(upper, "VERDICT: CORRECT"):
		verdict = VerdictCorrect
	case strings.Contains(upper, "PARTIALLY CORRECT"):
		verdict = VerdictPartial
	}

	return Evaluation{
		Verdict:     verdict,
		Explanation: stripVerdictLine(raw),
	}
}

// stripVerdictLine drops the VERDICT line so the explanation reads cleanly.
func stripVerdictLine(raw string) string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "VERDICT:") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
