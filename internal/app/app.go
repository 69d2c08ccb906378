package app

import (
	"context"
	"log/slog"

	"TextHumanizer/internal/config"
	"TextHumanizer/internal/infrastructure/extract"
	"TextHumanizer/internal/infrastructure/httpserver"
	"TextHumanizer/internal/infrastructure/llm"
	"TextHumanizer/internal/infrastructure/ratelimit"
	"TextHumanizer/internal/logging"
	"TextHumanizer/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	server  *httpserver.Server
	limiter *ratelimit.SlidingWindow
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	client := llm.NewClient(cfg.LLM)

	rewriter := usecase.NewRewriteInvoker(client, cfg.LLM.RewriteMaxTokens, baseLogger.With("component", "rewrite"))
	detector := usecase.NewDetectInvoker(client, cfg.Pipeline.DetectSampleLimit, cfg.LLM.DetectMaxTokens, baseLogger.With("component", "detect"))
	refiner := usecase.NewRefineInvoker(client, cfg.LLM.RewriteMaxTokens, baseLogger.With("component", "refine"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Rewriter:        rewriter,
		Detector:        detector,
		Refiner:         refiner,
		ChunkSize:       cfg.Pipeline.ChunkSize,
		RefineThreshold: cfg.Pipeline.RefineThreshold,
		Logger:          baseLogger.With("component", "pipeline"),
	})

	limiter := ratelimit.NewSlidingWindow()
	extractor := extract.NewService()

	handlers := httpserver.NewHandlers(pipeline, detector, extractor, cfg.Upload.MaxBytes, baseLogger.With("component", "http"))
	server := httpserver.New(cfg, handlers, limiter, baseLogger.With("component", "http"))

	return &Application{cfg: cfg, server: server, limiter: limiter}
}

// Run serves HTTP until ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	go a.limiter.Janitor(ctx, a.cfg.RateLimit.Window(), a.cfg.RateLimit.Window())
	return a.server.Run(ctx)
}
