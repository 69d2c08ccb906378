package domain

// PipelineResult is the terminal output of one orchestration run. AIScore
// is nil when the measured score is unknown: either refinement ran (the
// refined text is never re-scored) or detection returned its failure
// sentinel.
type PipelineResult struct {
	Text    string
	AIScore *int
}

// MeasuredResult builds a result carrying the detector's score.
func MeasuredResult(text string, score int) PipelineResult {
	return PipelineResult{Text: text, AIScore: &score}
}

// UnscoredResult builds a result whose AI score is unknown.
func UnscoredResult(text string) PipelineResult {
	return PipelineResult{Text: text}
}
