// Package session holds the conversational state shared across turns: the
// current mode, the active quiz, the latest study plan, and the
// conversation history.
package session

import (
	"github.com/abhisek/eduquest/internal/history"
	"github.com/abhisek/eduquest/internal/planner"
	"github.com/abhisek/eduquest/internal/quiz"
)

// Mode is the assistant's current conversational mode.
type Mode int

const (
	// ModeManager is the default conversational mode.
	ModeManager Mode = iota
	// ModePlanning is entered after a study plan is delivered.
	ModePlanning
	// ModeQuizzing is active while a quiz session runs.
	ModeQuizzing
)

func (m Mode) String() string {
	switch m {
	case ModePlanning:
		return "planning"
	case ModeQuizzing:
		return "quizzing"
	default:
		return "manager"
	}
}

// State is the per-conversation state machine. It is not safe for
// concurrent use; the orchestrator serializes turns.
type State struct {
	mode    Mode
	quiz    *quiz.Session
	plan    *planner.StudyPlan
	history *history.History
}

// New creates a fresh State in manager mode with an empty history.
func New() *State {
	return &State{history: history.New()}
}

// Mode returns the current conversational mode.
func (s *State) Mode() Mode {
	return s.mode
}

// History returns the conversation log.
func (s *State) History() *history.History {
	return s.history
}

// Quiz returns the current quiz session, active or not, or nil.
func (s *State) Quiz() *quiz.Session {
	return s.quiz
}

// QuizActive reports whether a quiz is in progress.
func (s *State) QuizActive() bool {
	return s.quiz != nil && s.quiz.Active
}

// StartQuiz installs a new quiz session and enters quizzing mode. Any
// previous session is discarded, finished or not.
func (s *State) StartQuiz(q *quiz.Session) {
	s.quiz = q
	s.mode = ModeQuizzing
}

// EndQuiz deactivates the current quiz and returns to manager mode. The
// session is kept for summarization.
func (s *State) EndQuiz() {
	if s.quiz != nil {
		s.quiz.End()
	}
	s.mode = ModeManager
}

// Plan returns the most recent study plan, or nil.
func (s *State) Plan() *planner.StudyPlan {
	return s.plan
}

// SetPlan stores a delivered study plan and enters planning mode.
func (s *State) SetPlan(p *planner.StudyPlan) {
	s.plan = p
	s.mode = ModePlanning
}

// ResetMode returns to manager mode without touching quiz or plan state.
func (s *State) ResetMode() {
	s.mode = ModeManager
}
