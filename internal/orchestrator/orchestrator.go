// Package orchestrator drives the conversation: it routes each user turn to
// chat, planning, or quizzing and runs the quiz state machine across turns.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abhisek/eduquest/internal/history"
	"github.com/abhisek/eduquest/internal/intent"
	"github.com/abhisek/eduquest/internal/planner"
	"github.com/abhisek/eduquest/internal/quiz"
	"github.com/abhisek/eduquest/internal/session"
)

var exitWords = map[string]bool{
	"exit":    true,
	"quit":    true,
	"bye":     true,
	"goodbye": true,
}

var helpWords = map[string]bool{
	"help":    true,
	"?":       true,
	"help me": true,
}

// Orchestrator owns the conversation state and dispatches turns.
type Orchestrator struct {
	state      *session.State
	classifier *intent.Classifier
	planner    *planner.Service
	quiz       *quiz.Service
	logger     *slog.Logger
}

// New builds an Orchestrator with fresh conversation state.
func New(classifier *intent.Classifier, plannerSvc *planner.Service, quizSvc *quiz.Service, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		state:      session.New(),
		classifier: classifier,
		planner:    plannerSvc,
		quiz:       quizSvc,
		logger:     logger,
	}
}

// State exposes the conversation state, mainly for tests and diagnostics.
func (o *Orchestrator) State() *session.State {
	return o.state
}

// WelcomeMessage is shown once when the conversation opens.
func (o *Orchestrator) WelcomeMessage() Turn {
	var t Turn
	t.say(KindInfo, welcomeText)
	return t
}

// HandleTurn processes one user input and returns everything the assistant
// says in response. Exit and help words are handled locally; quiz turns go
// to the quiz state machine; everything else is routed by the classifier.
func (o *Orchestrator) HandleTurn(ctx context.Context, input string) Turn {
	input = strings.TrimSpace(input)
	if input == "" {
		return Turn{}
	}
	lower := strings.ToLower(input)

	if exitWords[lower] {
		var t Turn
		if o.state.QuizActive() {
			o.endQuiz(&t)
		}
		t.say(KindAssistant, farewellText)
		t.Quit = true
		return t
	}
	if helpWords[lower] {
		var t Turn
		t.say(KindInfo, helpText)
		return t
	}

	if o.state.QuizActive() {
		return o.handleQuizTurn(ctx, input, lower)
	}
	if strings.HasPrefix(lower, "refine") && o.state.Plan() != nil {
		return o.refinePlan(ctx, input)
	}
	return o.route(ctx, input)
}

// refinePlan rewrites the current study plan per the user's feedback. The
// whole turn is the feedback ("refine: move revision earlier").
func (o *Orchestrator) refinePlan(ctx context.Context, input string) Turn {
	var t Turn

	feedback := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input[len("refine"):]), ":"))
	if feedback == "" {
		t.say(KindAssistant, "What would you like me to change about the plan?")
		return t
	}

	refined, err := o.planner.RefinePlan(ctx, o.state.Plan(), feedback)
	if err != nil {
		o.logger.Warn("plan refinement failed", "error", err)
		t.say(KindError, planFailedText)
		return t
	}

	o.state.SetPlan(refined)
	t.say(KindInfo, planner.Banner(refined))
	t.say(KindBody, refined.Schedule)
	return t
}

// route classifies the turn and dispatches to the matching handler. The
// user turn and the router's reply are appended to the conversation history
// so later turns carry context.
func (o *Orchestrator) route(ctx context.Context, input string) Turn {
	res := o.classifier.Classify(ctx, input, o.state.History().Window(0))
	o.logger.Info("turn routed", "intent", res.Kind.String(), "mode", o.state.Mode().String())

	o.state.History().Append(history.RoleUser, input)
	if res.Message != "" {
		o.state.History().Append(history.RoleAssistant, res.Message)
	}

	switch res.Kind {
	case intent.KindPlan:
		return o.handlePlan(ctx, res)
	case intent.KindQuiz:
		return o.startQuiz(ctx, res)
	default:
		var t Turn
		t.say(KindAssistant, res.Message)
		return t
	}
}

func (o *Orchestrator) handlePlan(ctx context.Context, res intent.Result) Turn {
	var t Turn
	t.say(KindAssistant, res.Message)

	plan, err := o.planner.CreatePlan(ctx, planner.Input{
		Subject:       res.Plan.Subject,
		Topics:        res.Plan.Topics,
		DaysAvailable: res.Plan.DaysAvailable,
		ExamDate:      res.Plan.ExamDate,
		Notes:         res.Plan.Notes,
	})
	if err != nil {
		o.logger.Warn("plan creation failed", "error", err)
		t.say(KindError, planFailedText)
		return t
	}

	o.state.SetPlan(plan)
	t.say(KindInfo, planner.Banner(plan))
	t.say(KindBody, plan.Schedule)
	if tips := o.planner.QuickTips(ctx, plan); tips != "" {
		t.say(KindInfo, "Quick tips:\n"+tips)
	}
	t.say(KindAssistant, planFollowupText)
	return t
}

// startQuiz opens a quiz session. Topics come from the extracted slots,
// then the subject, then the latest study plan; with none of those the
// assistant asks instead of guessing.
func (o *Orchestrator) startQuiz(ctx context.Context, res intent.Result) Turn {
	var t Turn
	t.say(KindAssistant, res.Message)

	subject := res.Quiz.Subject
	topics := res.Quiz.Topics
	if len(topics) == 0 && subject != "" {
		topics = []string{subject}
	}
	if len(topics) == 0 {
		if plan := o.state.Plan(); plan != nil {
			subject = plan.Subject
			topics = plan.Topics
		}
	}
	if len(topics) == 0 {
		t.say(KindAssistant, askQuizTopicsText)
		return t
	}

	sess := quiz.NewSession(subject, topics, quiz.DefaultQuestions)
	o.state.StartQuiz(sess)
	o.logger.Info("quiz started", "session", sess.ID, "topics", len(topics))

	t.say(KindInfo, quiz.Intro(sess))
	o.askNext(ctx, &t)
	return t
}

// handleQuizTurn runs one turn of an active quiz: a command (hint, skip,
// quit quiz) or an answer to the pending question.
func (o *Orchestrator) handleQuizTurn(ctx context.Context, input, lower string) Turn {
	var t Turn
	sess := o.state.Quiz()

	switch lower {
	case "quit quiz":
		t.say(KindWarn, "Ending the quiz early.")
		o.endQuiz(&t)
		return t

	case "hint":
		q := sess.CurrentQuestion()
		if q == nil {
			o.askNext(ctx, &t)
			return t
		}
		t.say(KindInfo, o.quiz.Hint(ctx, q))
		return t

	case "skip":
		sess.RecordSkip()
		t.say(KindWarn, "Skipped. On to the next one.")
		o.advance(ctx, &t)
		return t
	}

	q := sess.CurrentQuestion()
	if q == nil {
		o.askNext(ctx, &t)
		return t
	}

	eval := o.quiz.EvaluateAnswer(ctx, q, input)
	sess.RecordAnswer(input, eval)

	switch eval.Verdict {
	case quiz.VerdictCorrect:
		t.say(KindSuccess, "Correct!")
	case quiz.VerdictPartial:
		t.say(KindWarn, "Partially correct.")
	default:
		t.say(KindError, "Not quite.")
	}
	t.say(KindBody, eval.Explanation)
	t.say(KindInfo, fmt.Sprintf("Score: %d/%d", sess.Score, len(sess.Questions)))

	o.advance(ctx, &t)
	return t
}

// advance either ends the session or asks the next question.
func (o *Orchestrator) advance(ctx context.Context, t *Turn) {
	sess := o.state.Quiz()
	if sess.IsComplete() {
		o.endQuiz(t)
		return
	}
	o.askNext(ctx, t)
}

// askNext asks the next question. Generation failures consume the slot and
// retry the next one, so a flaky provider shortens the quiz instead of
// wedging it.
func (o *Orchestrator) askNext(ctx context.Context, t *Turn) {
	sess := o.state.Quiz()

	for !sess.IsComplete() {
		q, err := o.quiz.GenerateQuestion(ctx, sess)
		if err != nil {
			o.logger.Warn("question generation failed", "session", sess.ID, "error", err)
			t.say(KindWarn, questionFailedText)
			sess.AdvanceWithoutQuestion()
			continue
		}

		sess.AddQuestion(q)
		t.say(KindInfo, fmt.Sprintf("Question %d/%d (%s) on %s:",
			sess.CurrentIndex+1, sess.TotalQuestions, q.Difficulty, q.Topic))
		t.say(KindBody, q.Text)
		return
	}

	o.endQuiz(t)
}

// endQuiz closes the session and reports the summary.
func (o *Orchestrator) endQuiz(t *Turn) {
	sess := o.state.Quiz()
	sum := quiz.Summarize(sess)
	o.state.EndQuiz()

	o.logger.Info("quiz ended",
		"session", sess.ID,
		"score", sum.Score,
		"asked", sum.Asked,
	)
	t.say(KindInfo, quiz.SummaryText(sum))
}
