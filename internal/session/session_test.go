package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/eduquest/internal/planner"
	"github.com/abhisek/eduquest/internal/quiz"
)

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, ModeManager, s.Mode())
	assert.Nil(t, s.Quiz())
	assert.Nil(t, s.Plan())
	assert.False(t, s.QuizActive())
	assert.NotNil(t, s.History())
}

func TestStartQuiz_DiscardsPrevious(t *testing.T) {
	s := New()
	first := quiz.NewSession("Go", []string{"maps"}, 3)
	s.StartQuiz(first)

	assert.Equal(t, ModeQuizzing, s.Mode())
	assert.True(t, s.QuizActive())

	second := quiz.NewSession("Go", []string{"slices"}, 3)
	s.StartQuiz(second)
	assert.Same(t, second, s.Quiz())
}

func TestEndQuiz(t *testing.T) {
	s := New()
	s.StartQuiz(quiz.NewSession("Go", []string{"maps"}, 3))
	s.EndQuiz()

	assert.Equal(t, ModeManager, s.Mode())
	assert.False(t, s.QuizActive())
	assert.NotNil(t, s.Quiz(), "finished session stays readable for summaries")

	// EndQuiz with no session is a no-op.
	New().EndQuiz()
}

func TestSetPlan(t *testing.T) {
	s := New()
	p := planner.NewStudyPlan(planner.Input{Subject: "Go"})
	s.SetPlan(p)

	assert.Equal(t, ModePlanning, s.Mode())
	assert.Same(t, p, s.Plan())

	s.ResetMode()
	assert.Equal(t, ModeManager, s.Mode())
	assert.Same(t, p, s.Plan(), "plan survives mode reset")
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "manager", ModeManager.String())
	assert.Equal(t, "planning", ModePlanning.String())
	assert.Equal(t, "quizzing", ModeQuizzing.String())
}
