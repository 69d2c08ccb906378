package usecase

import (
	"context"
	"log/slog"

	"TextHumanizer/internal/domain"
	"TextHumanizer/internal/ports"
	"TextHumanizer/internal/prompts"
)

// RefineInvoker drives the second rewrite round with the triggering
// verdict's score and patterns. Refinement is best-effort: losing a
// chunk's content is strictly worse than leaving it un-refined, so every
// failure degrades to the original chunk.
type RefineInvoker struct {
	client    ports.CompletionClient
	maxTokens int
	logger    *slog.Logger
}

var _ ports.Refiner = (*RefineInvoker)(nil)

// NewRefineInvoker wires the completion client and token budget.
func NewRefineInvoker(client ports.CompletionClient, maxTokens int, logger *slog.Logger) *RefineInvoker {
	return &RefineInvoker{client: client, maxTokens: maxTokens, logger: logger}
}

// Refine returns the further-rewritten chunk, or the chunk unchanged when
// the call fails.
func (r *RefineInvoker) Refine(ctx context.Context, chunk string, verdict domain.DetectionVerdict) string {
	out, err := r.client.Complete(ctx, prompts.Refine(chunk, verdict.AIScore, verdict.Patterns), r.maxTokens)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("refinement call failed, keeping original chunk", "chunk_bytes", len(chunk), "error", err)
		}
		return chunk
	}
	return out
}
