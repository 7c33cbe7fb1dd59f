package quiz

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultQuestions is used when the requested count is zero or negative.
	DefaultQuestions = 5
	// MaxQuestions caps a session regardless of the requested count.
	MaxQuestions = 10
)

// Session is the state of one quiz run. It is a plain state machine with no
// I/O; generation and grading live in Service.
type Session struct {
	ID             string
	Subject        string
	Topics         []string
	Questions      []Question
	CurrentIndex   int
	Score          int
	TotalQuestions int
	Active         bool
	StartedAt      time.Time
}

// NewSession starts a quiz over the given topics. The count is defaulted
// and capped; topics must be non-empty.
func NewSession(subject string, topics []string, count int) *Session {
	if count <= 0 {
		count = DefaultQuestions
	}
	if count > MaxQuestions {
		count = MaxQuestions
	}
	return &Session{
		ID:             uuid.NewString(),
		Subject:        subject,
		Topics:         topics,
		TotalQuestions: count,
		Active:         true,
		StartedAt:      time.Now(),
	}
}

// DifficultyFor maps question position to a difficulty tier: the first 30%
// of the session is easy, up to 70% medium, the rest hard.
func DifficultyFor(index, total int) Difficulty {
	if total <= 0 {
		return DifficultyEasy
	}
	progress := float64(index) / float64(total)
	switch {
	case progress < 0.3:
		return DifficultyEasy
	case progress < 0.7:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// NextDifficulty returns the tier for the question about to be asked.
func (s *Session) NextDifficulty() Difficulty {
	return DifficultyFor(s.CurrentIndex, s.TotalQuestions)
}

// NextTopic returns the topic for the question about to be asked, rotating
// through the session's topics in order.
func (s *Session) NextTopic() string {
	return s.Topics[s.CurrentIndex%len(s.Topics)]
}

// AskedTopics returns the distinct topics asked so far, in first-seen order.
func (s *Session) AskedTopics() []string {
	var out []string
	seen := make(map[string]bool)
	for _, q := range s.Questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			out = append(out, q.Topic)
		}
	}
	return out
}

// AddQuestion appends a freshly asked question awaiting an answer.
func (s *Session) AddQuestion(q Question) {
	q.Answered = false
	s.Questions = append(s.Questions, q)
}

// CurrentQuestion returns the question awaiting an answer, or nil when
// none is pending.
func (s *Session) CurrentQuestion() *Question {
	if len(s.Questions) == 0 {
		return nil
	}
	last := &s.Questions[len(s.Questions)-1]
	if last.Answered {
		return nil
	}
	return last
}

// RecordAnswer grades the pending question with the given evaluation and
// advances the session. Correct answers score one point; partial answers
// score nothing.
func (s *Session) RecordAnswer(answer string, eval Evaluation) {
	q := s.CurrentQuestion()
	if q == nil {
		return
	}
	q.UserAnswer = answer
	q.IsCorrect = eval.Verdict == VerdictCorrect
	q.IsPartial = eval.Verdict == VerdictPartial
	q.Feedback = eval.Explanation
	q.Answered = true

	if q.IsCorrect {
		s.Score++
	}
	s.CurrentIndex++
}

// RecordSkip marks the pending question as skipped and advances. Skips
// never score and leave both verdict flags false.
func (s *Session) RecordSkip() {
	q := s.CurrentQuestion()
	if q == nil {
		return
	}
	q.UserAnswer = SkipMarker
	q.CorrectAnswer = "Question was skipped"
	q.Feedback = "You chose to skip this question."
	q.Answered = true
	s.CurrentIndex++
}

// AdvanceWithoutQuestion consumes a question slot without asking anything.
// Used when question generation fails so the session still terminates.
func (s *Session) AdvanceWithoutQuestion() {
	s.CurrentIndex++
}

// IsComplete reports whether every question slot has been consumed.
func (s *Session) IsComplete() bool {
	return s.CurrentIndex >= s.TotalQuestions
}

// End deactivates the session. Idempotent.
func (s *Session) End() {
	s.Active = false
}
