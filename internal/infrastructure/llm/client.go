package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"TextHumanizer/internal/config"
	"TextHumanizer/internal/ports"
)

// ErrUnexpectedResponseShape marks a completion whose message content is
// not a plain text block.
var ErrUnexpectedResponseShape = errors.New("completion content is not plain text")

// ErrEmptyCompletion marks a completion that carried no usable text.
var ErrEmptyCompletion = errors.New("completion returned no text")

// Client implements ports.CompletionClient backed by OpenAI-compatible
// chat-completion APIs. Each call carries the configured timeout via the
// underlying http.Client; callers may additionally cancel through ctx.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ ports.CompletionClient = (*Client)(nil)

// NewClient builds a client from configuration.
func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_completion_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete posts the prompt as a single user message and returns the
// trimmed text of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", fmt.Errorf("completion client is nil")
	}
	if c.endpoint == "" || c.model == "" {
		return "", fmt.Errorf("completion client misconfigured")
	}

	body, err := json.Marshal(chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		preview, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("completion service error %s: %s", resp.Status, strings.TrimSpace(string(preview)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	// The content block must be a plain JSON string; structured blocks
	// (arrays of parts, tool calls) are a shape the pipeline cannot use.
	var text string
	if err := json.Unmarshal(decoded.Choices[0].Message.Content, &text); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedResponseShape, previewRaw(decoded.Choices[0].Message.Content))
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyCompletion
	}
	return trimmed, nil
}

func previewRaw(raw json.RawMessage) string {
	const limit = 240
	s := string(raw)
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
