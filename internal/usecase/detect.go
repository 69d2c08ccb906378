package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"TextHumanizer/internal/domain"
	"TextHumanizer/internal/ports"
	"TextHumanizer/internal/prompts"
)

// DetectInvoker scores a text sample through the completion service and
// parses the structured verdict defensively. It never returns an error:
// anything unusable becomes the domain.FailedVerdict sentinel, because a
// detector outage must not block delivering output.
type DetectInvoker struct {
	client      ports.CompletionClient
	sampleLimit int
	maxTokens   int
	logger      *slog.Logger
}

var _ ports.Detector = (*DetectInvoker)(nil)

// NewDetectInvoker wires the completion client, sampling cap, and token
// budget.
func NewDetectInvoker(client ports.CompletionClient, sampleLimit, maxTokens int, logger *slog.Logger) *DetectInvoker {
	return &DetectInvoker{client: client, sampleLimit: sampleLimit, maxTokens: maxTokens, logger: logger}
}

// Detect sends at most sampleLimit bytes of the text and returns a valid
// verdict or the failure sentinel.
func (d *DetectInvoker) Detect(ctx context.Context, sample string) domain.DetectionVerdict {
	sample = capSample(sample, d.sampleLimit)

	raw, err := d.client.Complete(ctx, prompts.Detect(sample), d.maxTokens)
	if err != nil {
		d.warn("detection call failed", err)
		return domain.FailedVerdict()
	}

	verdict, err := parseVerdict(raw)
	if err != nil {
		d.warn("detection response unusable", err)
		return domain.FailedVerdict()
	}
	return verdict
}

func (d *DetectInvoker) warn(msg string, err error) {
	if d.logger != nil {
		d.logger.Warn(msg, "error", err)
	}
}

// capSample cuts the sample at the byte limit without splitting a rune.
// Detection is a heuristic gate; it does not need the whole document.
func capSample(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

type verdictPayload struct {
	AIScore    int      `json:"aiScore"`
	HumanScore int      `json:"humanScore"`
	Confidence string   `json:"confidence"`
	Patterns   []string `json:"patterns"`
	Verdict    string   `json:"verdict"`
}

// parseVerdict extracts the first brace-delimited JSON substring (the
// service may wrap JSON in commentary), parses it, and validates every
// field against the verdict invariants.
func parseVerdict(raw string) (domain.DetectionVerdict, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return domain.DetectionVerdict{}, fmt.Errorf("no JSON object in detection response")
	}

	var payload verdictPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return domain.DetectionVerdict{}, fmt.Errorf("parse detection JSON: %w", err)
	}

	verdict := domain.DetectionVerdict{
		AIScore:    payload.AIScore,
		HumanScore: payload.HumanScore,
		Confidence: domain.Confidence(payload.Confidence),
		Patterns:   payload.Patterns,
		Label:      domain.VerdictLabel(payload.Verdict),
	}
	if err := verdict.Validate(); err != nil {
		return domain.DetectionVerdict{}, fmt.Errorf("invalid detection verdict: %w", err)
	}
	return verdict, nil
}
