package prompts

import (
	"strings"
	"testing"

	"TextHumanizer/internal/domain"
)

func TestQualitativeThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value float64
		want  string
	}{
		{0.0, "low"},
		{0.39, "low"},
		{0.4, "mid"},
		{0.69, "mid"},
		{0.7, "high"},
		{1.0, "high"},
	}
	for _, tc := range cases {
		if got := qualitative(tc.value, "low", "mid", "high"); got != tc.want {
			t.Fatalf("qualitative(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestRewritePromptCarriesStyleAndChunk(t *testing.T) {
	t.Parallel()

	style, err := domain.NewRewriteStyle(domain.ModeFormal, domain.NewStyleParams(0.9, 0.1, 0.5, 0.5))
	if err != nil {
		t.Fatalf("NewRewriteStyle: %v", err)
	}

	prompt := Rewrite("the chunk body", style)
	if !strings.Contains(prompt, domain.ModeFormal.Description()) {
		t.Fatal("prompt missing mode description")
	}
	if !strings.Contains(prompt, "aggressive rewriting") {
		t.Fatal("intensity 0.9 should label as aggressive")
	}
	if !strings.Contains(prompt, "conservative phrasing") {
		t.Fatal("creativity 0.1 should label as conservative")
	}
	if !strings.HasSuffix(prompt, "Text:\nthe chunk body") {
		t.Fatalf("chunk must close the prompt, got tail %q", prompt[len(prompt)-40:])
	}
}

func TestDetectPromptDemandsStrictJSON(t *testing.T) {
	t.Parallel()

	prompt := Detect("sample body")
	for _, key := range []string{`"aiScore"`, `"humanScore"`, `"confidence"`, `"patterns"`, `"verdict"`} {
		if !strings.Contains(prompt, key) {
			t.Fatalf("prompt missing %s in the schema description", key)
		}
	}
	if !strings.HasSuffix(prompt, "Text:\nsample body") {
		t.Fatal("sample must close the prompt")
	}
}

func TestRefinePromptListsPatterns(t *testing.T) {
	t.Parallel()

	prompt := Refine("flagged chunk", 81, []string{"uniform cadence", "stock transitions"})
	if !strings.Contains(prompt, "score 81/100") {
		t.Fatal("prompt missing triggering score")
	}
	if !strings.Contains(prompt, "- uniform cadence\n") || !strings.Contains(prompt, "- stock transitions\n") {
		t.Fatal("prompt missing detected patterns")
	}
	if !strings.HasSuffix(prompt, "Text:\nflagged chunk") {
		t.Fatal("chunk must close the prompt")
	}

	noPatterns := Refine("chunk", 60, nil)
	if strings.Contains(noPatterns, "Detected patterns") {
		t.Fatal("pattern section must be omitted when the list is empty")
	}
}
