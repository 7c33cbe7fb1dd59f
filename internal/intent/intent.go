// Package intent classifies free-text user turns into routing intents by
// delegating to the generation provider and parsing a constrained JSON
// contract.
package intent

// Kind is the routing decision for a turn.
type Kind int

const (
	// KindChat keeps the turn in general conversation.
	KindChat Kind = iota
	// KindPlan routes the turn to study-plan creation.
	KindPlan
	// KindQuiz routes the turn to quiz start.
	KindQuiz
)

func (k Kind) String() string {
	switch k {
	case KindPlan:
		return "plan"
	case KindQuiz:
		return "quiz"
	default:
		return "chat"
	}
}

// PlanRequest carries the slots extracted for a planning turn.
type PlanRequest struct {
	Subject       string
	Topics        []string
	DaysAvailable int    // 0 when not mentioned
	ExamDate      string // empty when not mentioned
	Notes         string
}

// QuizRequest carries the slots extracted for a quiz turn.
type QuizRequest struct {
	Subject string
	Topics  []string
}

// Result is the classifier's decision: a tagged variant with exactly the
// payload for its kind, plus the router's user-facing message.
type Result struct {
	Kind    Kind
	Plan    *PlanRequest // set iff Kind == KindPlan
	Quiz    *QuizRequest // set iff Kind == KindQuiz
	Message string
}

// FallbackMessage is returned verbatim whenever classification fails.
const FallbackMessage = "I'm having trouble understanding. Could you rephrase that?"

// Fallback is the fixed result used when the generation call or contract
// parsing fails. It never varies with the cause.
func Fallback() Result {
	return Result{Kind: KindChat, Message: FallbackMessage}
}
