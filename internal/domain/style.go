package domain

import "fmt"

// Mode identifies one of the fixed rewriting styles exposed by the API.
type Mode string

const (
	ModeHumanize     Mode = "humanize"
	ModeFormal       Mode = "formal"
	ModeCasual       Mode = "casual"
	ModeAcademic     Mode = "academic"
	ModeProfessional Mode = "professional"
	ModeCreative     Mode = "creative"
	ModeTechnical    Mode = "technical"
	ModeSimplify     Mode = "simplify"
	ModeExpand       Mode = "expand"
)

// StyleParams is the 4-dimensional tuning vector of a rewrite request.
// Every dimension lives in [0,1]; construction clamps, never rejects.
type StyleParams struct {
	Intensity   float64
	Creativity  float64
	Naturalness float64
	Complexity  float64
}

// NewStyleParams clamps each dimension into [0,1].
func NewStyleParams(intensity, creativity, naturalness, complexity float64) StyleParams {
	return StyleParams{
		Intensity:   clamp01(intensity),
		Creativity:  clamp01(creativity),
		Naturalness: clamp01(naturalness),
		Complexity:  clamp01(complexity),
	}
}

// RewriteStyle couples a mode with its parameter vector. Immutable once
// constructed.
type RewriteStyle struct {
	Mode   Mode
	Params StyleParams
}

// NewRewriteStyle validates the mode and clamps the parameters.
func NewRewriteStyle(mode Mode, params StyleParams) (RewriteStyle, error) {
	if _, ok := styleTable[mode]; !ok {
		return RewriteStyle{}, fmt.Errorf("unknown rewrite mode %q", mode)
	}
	return RewriteStyle{
		Mode:   mode,
		Params: NewStyleParams(params.Intensity, params.Creativity, params.Naturalness, params.Complexity),
	}, nil
}

// ParseMode resolves a raw string to a known Mode.
func ParseMode(raw string) (Mode, error) {
	mode := Mode(raw)
	if _, ok := styleTable[mode]; !ok {
		return "", fmt.Errorf("unknown rewrite mode %q", raw)
	}
	return mode, nil
}

// Description returns the natural-language summary used in prompts.
func (m Mode) Description() string {
	return styleTable[m].description
}

// DefaultParams returns the mode's default parameter vector.
func DefaultParams(m Mode) StyleParams {
	return styleTable[m].defaults
}

type modeProfile struct {
	description string
	defaults    StyleParams
}

// Behavior differs across modes only by data, so a keyed table replaces
// any per-mode dispatch.
var styleTable = map[Mode]modeProfile{
	ModeHumanize: {
		description: "natural human writing with varied rhythm, occasional asides, and imperfect but fluent phrasing",
		defaults:    StyleParams{Intensity: 0.8, Creativity: 0.6, Naturalness: 0.9, Complexity: 0.4},
	},
	ModeFormal: {
		description: "formal register with precise wording and measured, impersonal tone",
		defaults:    StyleParams{Intensity: 0.6, Creativity: 0.3, Naturalness: 0.5, Complexity: 0.7},
	},
	ModeCasual: {
		description: "relaxed conversational writing, contractions welcome, light and direct",
		defaults:    StyleParams{Intensity: 0.7, Creativity: 0.5, Naturalness: 0.8, Complexity: 0.2},
	},
	ModeAcademic: {
		description: "scholarly prose with hedged claims, discipline-neutral terminology, and cohesive argument flow",
		defaults:    StyleParams{Intensity: 0.5, Creativity: 0.2, Naturalness: 0.4, Complexity: 0.9},
	},
	ModeProfessional: {
		description: "clear business writing: confident, courteous, free of filler",
		defaults:    StyleParams{Intensity: 0.6, Creativity: 0.3, Naturalness: 0.6, Complexity: 0.5},
	},
	ModeCreative: {
		description: "expressive writing with vivid imagery and unexpected word choices",
		defaults:    StyleParams{Intensity: 0.8, Creativity: 0.9, Naturalness: 0.7, Complexity: 0.6},
	},
	ModeTechnical: {
		description: "exact technical writing that keeps terminology, units, and identifiers intact",
		defaults:    StyleParams{Intensity: 0.4, Creativity: 0.2, Naturalness: 0.4, Complexity: 0.8},
	},
	ModeSimplify: {
		description: "plain language: short sentences, common words, one idea at a time",
		defaults:    StyleParams{Intensity: 0.7, Creativity: 0.3, Naturalness: 0.7, Complexity: 0.1},
	},
	ModeExpand: {
		description: "elaborated prose that develops each point with supporting detail and examples",
		defaults:    StyleParams{Intensity: 0.6, Creativity: 0.5, Naturalness: 0.6, Complexity: 0.6},
	},
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
