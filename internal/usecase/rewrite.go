package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"TextHumanizer/internal/domain"
	"TextHumanizer/internal/ports"
	"TextHumanizer/internal/prompts"
)

// RewriteInvoker sends one chunk plus a style to the completion service.
// Failures propagate: a lost chunk would corrupt ordering, so the caller
// must fail the whole pipeline instead.
type RewriteInvoker struct {
	client    ports.CompletionClient
	maxTokens int
	logger    *slog.Logger
}

var _ ports.ChunkRewriter = (*RewriteInvoker)(nil)

// NewRewriteInvoker wires the completion client and token budget.
func NewRewriteInvoker(client ports.CompletionClient, maxTokens int, logger *slog.Logger) *RewriteInvoker {
	return &RewriteInvoker{client: client, maxTokens: maxTokens, logger: logger}
}

// Rewrite issues one completion call for the chunk and returns the
// rewritten text.
func (r *RewriteInvoker) Rewrite(ctx context.Context, chunk string, style domain.RewriteStyle) (string, error) {
	out, err := r.client.Complete(ctx, prompts.Rewrite(chunk, style), r.maxTokens)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("rewrite call failed", "mode", style.Mode, "chunk_bytes", len(chunk), "error", err)
		}
		return "", fmt.Errorf("rewrite chunk: %w", err)
	}
	return out, nil
}
