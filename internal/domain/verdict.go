package domain

import "fmt"

// Confidence grades how sure the detector is about its verdict.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// VerdictLabel is the categorical summary attached to a detection result.
type VerdictLabel string

const (
	LabelHumanWritten VerdictLabel = "human-written"
	LabelLikelyHuman  VerdictLabel = "likely-human"
	LabelUncertain    VerdictLabel = "uncertain"
	LabelLikelyAI     VerdictLabel = "likely-ai"
	LabelAIGenerated  VerdictLabel = "ai-generated"
)

// MaxVerdictPatterns caps the detected-pattern list.
const MaxVerdictPatterns = 5

// DetectionVerdict is the structured AI-likelihood assessment of a text
// sample. A verdict is usable only when Validate returns nil; anything
// else is discarded and replaced by FailedVerdict.
type DetectionVerdict struct {
	AIScore    int
	HumanScore int
	Confidence Confidence
	Patterns   []string
	Label      VerdictLabel
}

// Validate checks every field against the verdict invariants.
func (v DetectionVerdict) Validate() error {
	if v.AIScore < 0 || v.AIScore > 100 {
		return fmt.Errorf("ai score %d out of range [0,100]", v.AIScore)
	}
	if v.HumanScore < 0 || v.HumanScore > 100 {
		return fmt.Errorf("human score %d out of range [0,100]", v.HumanScore)
	}
	switch v.Confidence {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
	default:
		return fmt.Errorf("confidence %q not in enum", v.Confidence)
	}
	if len(v.Patterns) > MaxVerdictPatterns {
		return fmt.Errorf("pattern list has %d entries, max %d", len(v.Patterns), MaxVerdictPatterns)
	}
	switch v.Label {
	case LabelHumanWritten, LabelLikelyHuman, LabelUncertain, LabelLikelyAI, LabelAIGenerated:
	default:
		return fmt.Errorf("verdict label %q not in enum", v.Label)
	}
	return nil
}

// FailedVerdict is the sentinel returned when detection cannot produce a
// valid verdict. Downstream treats it as "treat as passing": a broken
// detector must not block output.
func FailedVerdict() DetectionVerdict {
	return DetectionVerdict{
		AIScore:    -1,
		HumanScore: -1,
		Confidence: ConfidenceLow,
		Patterns:   []string{},
		Label:      LabelUncertain,
	}
}

// Failed reports whether the verdict is the detection-failure sentinel.
func (v DetectionVerdict) Failed() bool {
	return v.AIScore < 0
}
