// Package quiz implements interactive quiz sessions: question generation,
// answer grading, score tracking, and end-of-session summaries.
package quiz

// Difficulty is the requested difficulty tier for a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// SkipMarker is recorded as the user's answer for skipped questions.
const SkipMarker = "[Skipped]"

// Question is one asked question together with its grading outcome.
// A question is appended when asked and filled in when answered or skipped.
type Question struct {
	Topic         string
	Difficulty    Difficulty
	Text          string
	CorrectAnswer string
	UserAnswer    string
	IsCorrect     bool
	IsPartial     bool
	Feedback      string
	Answered      bool
}
