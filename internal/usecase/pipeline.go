package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"TextHumanizer/internal/chunker"
	"TextHumanizer/internal/domain"
	"TextHumanizer/internal/ports"
)

// PipelineDeps wires the invokers into the orchestration pipeline.
type PipelineDeps struct {
	Rewriter        ports.ChunkRewriter
	Detector        ports.Detector
	Refiner         ports.Refiner
	ChunkSize       int
	RefineThreshold int
	Logger          *slog.Logger
}

// Pipeline is the top-level orchestrator:
// chunk -> parallel rewrite -> detect -> conditional parallel refine -> join.
// It holds no state between requests; every run owns its chunk lists and
// intermediate results exclusively.
type Pipeline struct {
	rewriter  ports.ChunkRewriter
	detector  ports.Detector
	refiner   ports.Refiner
	chunkSize int
	threshold int
	logger    *slog.Logger
}

var _ ports.Humanizer = (*Pipeline)(nil)

// NewPipeline constructs the orchestrator with defaults for unset knobs.
func NewPipeline(deps PipelineDeps) *Pipeline {
	chunkSize := deps.ChunkSize
	if chunkSize <= 0 {
		chunkSize = chunker.DefaultChunkSize
	}
	threshold := deps.RefineThreshold
	if threshold <= 0 {
		threshold = 50
	}
	return &Pipeline{
		rewriter:  deps.Rewriter,
		detector:  deps.Detector,
		refiner:   deps.Refiner,
		chunkSize: chunkSize,
		threshold: threshold,
		logger:    deps.Logger,
	}
}

// Run executes one orchestration over sanitized text. The text is assumed
// non-empty; callers validate and sanitize upstream.
func (p *Pipeline) Run(ctx context.Context, text string, style domain.RewriteStyle) (domain.PipelineResult, error) {
	chunks := chunker.Split(text, p.chunkSize)
	if len(chunks) == 0 {
		return domain.PipelineResult{}, fmt.Errorf("no chunks produced from input")
	}

	rewritten, err := p.rewriteAll(ctx, chunks, style)
	if err != nil {
		return domain.PipelineResult{}, fmt.Errorf("rewrite pass: %w", err)
	}
	joined := chunker.Join(rewritten)

	verdict := p.detector.Detect(ctx, joined)
	p.debug("detection scored", "ai_score", verdict.AIScore, "label", verdict.Label, "patterns", len(verdict.Patterns))

	// The sentinel (-1) falls through here: a clean score cannot be told
	// apart from a broken detector, and withholding output over a detector
	// outage would be worse than skipping the quality gate.
	if verdict.AIScore <= p.threshold {
		if verdict.Failed() {
			return domain.UnscoredResult(joined), nil
		}
		return domain.MeasuredResult(joined, verdict.AIScore), nil
	}

	// Fresh chunk boundaries: rewriting changed the lengths, so the pass-1
	// chunk list no longer fits the joined text.
	refined := p.refineAll(ctx, chunker.Split(joined, p.chunkSize), verdict)

	// The refined text is never re-scored; its score is unknown.
	return domain.UnscoredResult(chunker.Join(refined)), nil
}

// rewriteAll fans out one rewrite call per chunk and joins by original
// index, never by completion order. Any single failure aborts the whole
// pass; the shared cancel stops in-flight siblings to bound wasted cost.
func (p *Pipeline) rewriteAll(ctx context.Context, chunks []string, style domain.RewriteStyle) ([]string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]string, len(chunks))

	var (
		wg       sync.WaitGroup
		failOnce sync.Once
		firstErr error
	)
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			out, err := p.rewriter.Rewrite(ctx, chunk, style)
			if err != nil {
				// Keep the error that triggered cancellation, not the
				// siblings' context errors.
				failOnce.Do(func() { firstErr = err })
				cancel()
				return
			}
			results[i] = out
		}(i, chunk)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// refineAll fans out one refinement call per chunk; the invoker already
// degrades per-chunk failures to the original text, so the pass cannot
// fail.
func (p *Pipeline) refineAll(ctx context.Context, chunks []string, verdict domain.DetectionVerdict) []string {
	results := make([]string, len(chunks))

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk string) {
			defer wg.Done()
			results[i] = p.refiner.Refine(ctx, chunk, verdict)
		}(i, chunk)
	}
	wg.Wait()

	return results
}

func (p *Pipeline) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
