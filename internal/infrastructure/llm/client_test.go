package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"TextHumanizer/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.LLMConfig{
		Endpoint:       url,
		Model:          "test-model",
		APIKey:         "sk-test",
		TimeoutSeconds: 5,
	})
}

func TestCompleteReturnsTrimmedText(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  rewritten text \n"}}]}`))
	}))
	defer server.Close()

	out, err := newTestClient(server.URL).Complete(context.Background(), "the prompt", 128)
	if err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if out != "rewritten text" {
		t.Fatalf("unexpected text: %q", out)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("missing bearer auth: %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Fatalf("model not forwarded: %v", gotBody["model"])
	}
	if gotBody["max_completion_tokens"] != float64(128) {
		t.Fatalf("token budget not forwarded: %v", gotBody["max_completion_tokens"])
	}
}

func TestCompleteNonTextContent(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":[{"type":"text","text":"nested"}]}}]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", 64)
	if !errors.Is(err, ErrUnexpectedResponseShape) {
		t.Fatalf("expected ErrUnexpectedResponseShape, got %v", err)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", 64)
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestCompleteBlankText(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"   "}}]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Complete(context.Background(), "p", 64)
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestCompleteServiceError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	if _, err := newTestClient(server.URL).Complete(context.Background(), "p", 64); err == nil {
		t.Fatal("expected error on 429 response")
	}
}

func TestCompleteHonorsContextCancel(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := newTestClient(server.URL).Complete(ctx, "p", 64); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
