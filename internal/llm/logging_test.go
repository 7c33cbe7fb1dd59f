package llm

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggingProvider_RecordsPurposeAndTokens(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mock := NewMockProvider(MockResponse{Text: "hello"})
	p := WithLogging(mock, logger)

	ctx := WithPurpose(context.Background(), "intent-routing")
	if _, err := p.Generate(ctx, Request{Prompt: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "purpose=intent-routing") {
		t.Errorf("log missing purpose: %s", out)
	}
	if !strings.Contains(out, "model=mock") {
		t.Errorf("log missing model: %s", out)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mock := NewMockProvider() // empty queue → ErrProviderUnavailable
	p := WithLogging(mock, logger)

	if _, err := p.Generate(context.Background(), Request{Prompt: "hi"}); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(buf.String(), "llm request failed") {
		t.Errorf("log missing failure record: %s", buf.String())
	}
}
