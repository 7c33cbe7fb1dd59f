package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// wirePayload is the JSON contract the routing prompt asks the model to
// produce. All slots are optional except the intent itself.
type wirePayload struct {
	Intent        string    `json:"intent"`
	ExtractedInfo *wireInfo `json:"extracted_info"`
	UserMessage   string    `json:"user_message"`
}

type wireInfo struct {
	Subject           string   `json:"subject"`
	Topics            []string `json:"topics"`
	DaysAvailable     *float64 `json:"days_available"`
	ExamDate          *string  `json:"exam_date"`
	AdditionalContext string   `json:"additional_context"`
}

const routingSchema = `{
	"type": "object",
	"required": ["intent"],
	"properties": {
		"intent": {"type": "string", "enum": ["PLANNER", "QUIZZER", "MANAGER"]},
		"extracted_info": {
			"type": ["object", "null"],
			"properties": {
				"subject": {"type": ["string", "null"]},
				"topics": {"type": ["array", "null"], "items": {"type": "string"}},
				"days_available": {"type": ["number", "null"]},
				"exam_date": {"type": ["string", "null"]},
				"additional_context": {"type": ["string", "null"]}
			}
		},
		"user_message": {"type": ["string", "null"]}
	}
}`

var (
	schemaOnce    sync.Once
	compiledRoute *jsonschema.Schema
	schemaErr     error
)

func routeSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		var doc any
		if err := json.Unmarshal([]byte(routingSchema), &doc); err != nil {
			schemaErr = fmt.Errorf("parse routing schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("eduquest://routing.json", doc); err != nil {
			schemaErr = fmt.Errorf("add routing schema: %w", err)
			return
		}
		compiledRoute, schemaErr = c.Compile("eduquest://routing.json")
	})
	return compiledRoute, schemaErr
}

// stripFences removes a leading ```json or ``` fence and a trailing ```
// fence, tolerating whitespace. Unfenced input passes through unchanged.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}

// parseReply decodes the model's routing reply into a Result. Any contract
// violation is an error; the caller substitutes the fallback.
func parseReply(raw string) (Result, error) {
	text := stripFences(raw)
	if text == "" {
		return Result{}, errors.New("empty routing reply")
	}

	schema, err := routeSchema()
	if err != nil {
		return Result{}, err
	}
	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return Result{}, fmt.Errorf("decode routing reply: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return Result{}, fmt.Errorf("routing reply does not match contract: %w", err)
	}

	var payload wirePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return Result{}, fmt.Errorf("decode routing reply: %w", err)
	}

	info := payload.ExtractedInfo
	if info == nil {
		info = &wireInfo{}
	}

	res := Result{Message: strings.TrimSpace(payload.UserMessage)}

	switch payload.Intent {
	case "PLANNER":
		res.Kind = KindPlan
		res.Plan = &PlanRequest{
			Subject: strings.TrimSpace(info.Subject),
			Topics:  cleanTopics(info.Topics),
			Notes:   strings.TrimSpace(info.AdditionalContext),
		}
		if info.DaysAvailable != nil {
			res.Plan.DaysAvailable = int(*info.DaysAvailable)
		}
		if info.ExamDate != nil {
			res.Plan.ExamDate = strings.TrimSpace(*info.ExamDate)
		}
	case "QUIZZER":
		res.Kind = KindQuiz
		res.Quiz = &QuizRequest{
			Subject: strings.TrimSpace(info.Subject),
			Topics:  cleanTopics(info.Topics),
		}
	case "MANAGER":
		res.Kind = KindChat
	default:
		return Result{}, fmt.Errorf("unknown intent %q", payload.Intent)
	}

	return res, nil
}

func cleanTopics(in []string) []string {
	var out []string
	for _, t := range in {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
