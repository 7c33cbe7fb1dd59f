package orchestrator

// MessageKind tags a message for presentation. The chat layer maps kinds to
// styles; the orchestrator itself never renders.
type MessageKind int

const (
	// KindAssistant is a conversational reply.
	KindAssistant MessageKind = iota
	// KindInfo is a banner or section header.
	KindInfo
	// KindBody is long-form content such as a schedule or question text.
	KindBody
	// KindSuccess marks a positive outcome.
	KindSuccess
	// KindWarn marks a degraded but recoverable outcome.
	KindWarn
	// KindError marks a failed operation.
	KindError
)

// Message is one unit of assistant output within a turn.
type Message struct {
	Kind MessageKind
	Text string
}

// Turn is everything the assistant says in response to one user input.
// Quit signals that the conversation is over.
type Turn struct {
	Messages []Message
	Quit     bool
}

func (t *Turn) say(kind MessageKind, text string) {
	if text == "" {
		return
	}
	t.Messages = append(t.Messages, Message{Kind: kind, Text: text})
}
