package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"TextHumanizer/internal/domain"
)

func formalStyle(t *testing.T) domain.RewriteStyle {
	t.Helper()
	style, err := domain.NewRewriteStyle(domain.ModeFormal, domain.DefaultParams(domain.ModeFormal))
	if err != nil {
		t.Fatalf("NewRewriteStyle: %v", err)
	}
	return style
}

func TestRewriteReturnsText(t *testing.T) {
	t.Parallel()

	client := &scriptedClient{response: "rewritten chunk"}
	r := NewRewriteInvoker(client, 2048, nil)

	got, err := r.Rewrite(context.Background(), "the chunk", formalStyle(t))
	if err != nil {
		t.Fatalf("Rewrite: %v", err)
	}
	if got != "rewritten chunk" {
		t.Fatalf("unexpected result: %q", got)
	}
	if !strings.Contains(client.prompts[0], "Text:\nthe chunk") {
		t.Fatal("chunk missing from prompt")
	}
}

func TestRewritePropagatesFailure(t *testing.T) {
	t.Parallel()

	upstream := errors.New("non-text content block")
	client := &scriptedClient{err: upstream}
	r := NewRewriteInvoker(client, 2048, nil)

	_, err := r.Rewrite(context.Background(), "the chunk", formalStyle(t))
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}
