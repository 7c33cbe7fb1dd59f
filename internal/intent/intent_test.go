package intent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/log"
)

const plannerReply = `{
	"intent": "PLANNER",
	"extracted_info": {
		"subject": "Java",
		"topics": ["OOP", "Collections"],
		"days_available": 3,
		"exam_date": null,
		"additional_context": "final exam"
	},
	"user_message": "Got it, let's plan your Java prep!"
}`

func classify(t *testing.T, reply string) Result {
	t.Helper()
	p := llm.NewMockProvider()
	p.AddResponse(llm.MockResponse{Text: reply})
	c := NewClassifier(p, log.Nop())
	return c.Classify(context.Background(), "help me study", "")
}

func TestClassify_Planner(t *testing.T) {
	res := classify(t, plannerReply)

	require.Equal(t, KindPlan, res.Kind)
	require.NotNil(t, res.Plan)
	assert.Nil(t, res.Quiz)
	assert.Equal(t, "Java", res.Plan.Subject)
	assert.Equal(t, []string{"OOP", "Collections"}, res.Plan.Topics)
	assert.Equal(t, 3, res.Plan.DaysAvailable)
	assert.Empty(t, res.Plan.ExamDate)
	assert.Equal(t, "final exam", res.Plan.Notes)
	assert.Equal(t, "Got it, let's plan your Java prep!", res.Message)
}

func TestClassify_FencedAndUnfencedAgree(t *testing.T) {
	fenced := "```json\n" + plannerReply + "\n```"

	assert.Equal(t, classify(t, plannerReply), classify(t, fenced))
}

func TestClassify_Quizzer(t *testing.T) {
	res := classify(t, `{
		"intent": "QUIZZER",
		"extracted_info": {"subject": "Go", "topics": ["goroutines"]},
		"user_message": "Time to test your Go knowledge!"
	}`)

	require.Equal(t, KindQuiz, res.Kind)
	require.NotNil(t, res.Quiz)
	assert.Nil(t, res.Plan)
	assert.Equal(t, "Go", res.Quiz.Subject)
	assert.Equal(t, []string{"goroutines"}, res.Quiz.Topics)
}

func TestClassify_Manager(t *testing.T) {
	res := classify(t, `{"intent": "MANAGER", "user_message": "Hello! How can I help?"}`)

	assert.Equal(t, KindChat, res.Kind)
	assert.Nil(t, res.Plan)
	assert.Nil(t, res.Quiz)
	assert.Equal(t, "Hello! How can I help?", res.Message)
}

func TestClassify_MalformedFallsBack(t *testing.T) {
	for name, reply := range map[string]string{
		"not json":       "Sure, I can help with that!",
		"unknown intent": `{"intent": "SCHEDULER", "user_message": "ok"}`,
		"missing intent": `{"user_message": "ok"}`,
		"empty":          "",
	} {
		t.Run(name, func(t *testing.T) {
			res := classify(t, reply)
			assert.Equal(t, Fallback(), res)
		})
	}
}

func TestClassify_ProviderErrorFallsBack(t *testing.T) {
	p := llm.NewMockProvider()
	p.AddResponse(llm.MockResponse{Err: &llm.ErrEmptyResponse{}})
	c := NewClassifier(p, log.Nop())

	res := c.Classify(context.Background(), "hi", "")
	assert.Equal(t, Fallback(), res)
}

func TestClassify_NullSlots(t *testing.T) {
	res := classify(t, `{
		"intent": "PLANNER",
		"extracted_info": {
			"subject": "Physics",
			"topics": null,
			"days_available": null,
			"exam_date": null,
			"additional_context": ""
		},
		"user_message": "Planning for Physics."
	}`)

	require.Equal(t, KindPlan, res.Kind)
	require.NotNil(t, res.Plan)
	assert.Zero(t, res.Plan.DaysAvailable)
	assert.Empty(t, res.Plan.Topics)
	assert.Empty(t, res.Plan.ExamDate)
}

func TestClassify_RequestShape(t *testing.T) {
	p := llm.NewMockProvider()
	p.AddResponse(llm.MockResponse{Text: plannerReply})
	c := NewClassifier(p, log.Nop())
	c.Classify(context.Background(), "I have a Java exam in 3 days", "user: hi")

	require.Equal(t, 1, p.CallCount())
	req := p.Calls[0]
	assert.InDelta(t, 0.3, req.Temperature, 1e-9)
	assert.Contains(t, req.Prompt, "I have a Java exam in 3 days")
	assert.Contains(t, req.Prompt, "user: hi")
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
		"  {\"a\":1}  ":           `{"a":1}`,
	}
	for in, want := range cases {
		assert.Equal(t, want, stripFences(in))
	}
}
