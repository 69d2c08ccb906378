// Package prompts builds the completion-service instructions for the
// rewrite, detect, and refine calls. Every prompt ends with a "Text:"
// section carrying the user payload, after the instruction frame.
package prompts

import (
	"fmt"
	"strings"

	"TextHumanizer/internal/domain"
)

const (
	lowThreshold  = 0.4
	highThreshold = 0.7
)

// Rewrite describes the target style in natural language and attaches the
// chunk to rewrite.
func Rewrite(chunk string, style domain.RewriteStyle) string {
	var b strings.Builder
	b.WriteString("Rewrite the following text as ")
	b.WriteString(style.Mode.Description())
	b.WriteString(".\n")
	fmt.Fprintf(&b, "Apply %s rewriting with %s phrasing, a %s tone, and %s vocabulary.\n",
		qualitative(style.Params.Intensity, "light", "moderate", "aggressive"),
		qualitative(style.Params.Creativity, "conservative", "balanced", "inventive"),
		qualitative(style.Params.Naturalness, "neutral", "conversational", "markedly human"),
		qualitative(style.Params.Complexity, "plain", "varied", "sophisticated"),
	)
	b.WriteString("Preserve the meaning and all facts. Reply with the rewritten text only, no preamble.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(chunk)
	return b.String()
}

// Detect instructs the service to score a sample and reply with a strict
// JSON verdict.
func Detect(sample string) string {
	var b strings.Builder
	b.WriteString("You are an AI-content detector. Assess whether the following text was written by a language model.\n")
	b.WriteString("Reply with a single strict JSON object and nothing else, shaped exactly like:\n")
	b.WriteString(`{"aiScore": <integer 0-100>, "humanScore": <integer 0-100>, "confidence": "low"|"medium"|"high", "patterns": [<up to 5 short strings>], "verdict": "human-written"|"likely-human"|"uncertain"|"likely-ai"|"ai-generated"}`)
	b.WriteString("\n\nText:\n")
	b.WriteString(sample)
	return b.String()
}

// Refine turns the triggering verdict into concrete stylistic fixes for a
// second rewrite round.
func Refine(chunk string, aiScore int, patterns []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The following text was flagged as likely AI-generated (score %d/100).\n", aiScore)
	if len(patterns) > 0 {
		b.WriteString("Detected patterns:\n")
		for _, p := range patterns {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	b.WriteString("Rewrite it so it reads as natural human writing:\n")
	b.WriteString("- break uniform sentence structure, mix long and short sentences\n")
	b.WriteString("- insert an occasional very short sentence\n")
	b.WriteString("- replace stock transition words with plainer connectives\n")
	b.WriteString("- allow informal markers where the register permits\n")
	b.WriteString("Keep the meaning intact. Reply with the rewritten text only.\n\n")
	b.WriteString("Text:\n")
	b.WriteString(chunk)
	return b.String()
}

// qualitative maps a [0,1] parameter to one of three labels, thresholded
// at 0.4 and 0.7.
func qualitative(v float64, low, mid, high string) string {
	switch {
	case v < lowThreshold:
		return low
	case v < highThreshold:
		return mid
	default:
		return high
	}
}
