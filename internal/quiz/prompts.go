package quiz

import (
	"fmt"
	"strings"
)

const quizzerRole = `You are an expert quiz master and educator. You create engaging, educational quiz questions and give fair, encouraging feedback.`

func questionPrompt(subject, topic string, difficulty Difficulty, previous, covered []string) string {
	var b strings.Builder

	b.WriteString(quizzerRole)
	fmt.Fprintf(&b, "\n\nGenerate ONE %s difficulty quiz question about %q", difficulty, topic)
	if subject != "" {
		fmt.Fprintf(&b, " in the subject of %s", subject)
	}
	b.WriteString(".\n\nRequirements:\n")
	b.WriteString("- The question must be answerable in one or two sentences\n")
	b.WriteString("- Test understanding, not trivia\n")
	b.WriteString("- Do not include the answer, hints, or multiple-choice options\n")
	b.WriteString("- Respond with the question text only, no preamble\n")

	if len(covered) > 0 {
		fmt.Fprintf(&b, "\nTopics already covered this session: %s\n", strings.Join(covered, ", "))
	}
	if len(previous) > 0 {
		b.WriteString("\nDo NOT repeat any of these already-asked questions:\n")
		for _, q := range previous {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}

	return b.String()
}

func evaluationPrompt(q *Question, answer string) string {
	var b strings.Builder

	b.WriteString(quizzerRole)
	b.WriteString("\n\nEvaluate the student's answer to this quiz question.\n")
	fmt.Fprintf(&b, "\nQuestion: %s\n", q.Text)
	fmt.Fprintf(&b, "Topic: %s\n", q.Topic)
	fmt.Fprintf(&b, "Student's answer: %s\n", answer)
	b.WriteString(`
Respond in exactly this format:
VERDICT: CORRECT or VERDICT: PARTIALLY CORRECT or VERDICT: INCORRECT
Then a short, encouraging explanation of the correct answer and, if the
student was wrong, where they went astray.`)

	return b.String()
}

func hintPrompt(q *Question) string {
	return fmt.Sprintf(`%s

Give a short hint for this quiz question without revealing the answer:

Question: %s
Topic: %s

Respond with one or two sentences starting with "Hint:".`, quizzerRole, q.Text, q.Topic)
}
