package ports

import (
	"context"
	"time"

	"TextHumanizer/internal/domain"
)

// CompletionClient is the external LLM completion service: prompt in,
// plain text out. Safe for concurrent use; each call carries its own
// timeout and fails opaquely (timeout, transport, non-text content).
type CompletionClient interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// ChunkRewriter rewrites one chunk toward a style. A failure is fatal for
// the whole pipeline run.
type ChunkRewriter interface {
	Rewrite(ctx context.Context, chunk string, style domain.RewriteStyle) (string, error)
}

// Detector scores a text sample. It never fails: an unusable upstream
// response yields the domain.FailedVerdict sentinel.
type Detector interface {
	Detect(ctx context.Context, sample string) domain.DetectionVerdict
}

// Refiner further rewrites one chunk using the triggering verdict. It
// degrades to the original chunk on any failure.
type Refiner interface {
	Refine(ctx context.Context, chunk string, verdict domain.DetectionVerdict) string
}

// Humanizer runs the full chunk/rewrite/detect/refine pipeline.
type Humanizer interface {
	Run(ctx context.Context, text string, style domain.RewriteStyle) (domain.PipelineResult, error)
}

// RateDecision is the outcome of one admission check.
type RateDecision struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter is the per-key sliding-window admission control consulted
// once per inbound request, before the pipeline runs.
type RateLimiter interface {
	Check(key string, limit int, window time.Duration) RateDecision
}

// Extractor turns an uploaded document into plain text.
type Extractor interface {
	FromUpload(name string, data []byte) (string, error)
}
