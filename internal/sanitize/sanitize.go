package sanitize

import (
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")
	blankLineRuns = regexp.MustCompile(`\n{3,}`)

	// Sequences a pasted text could use to break out of the prompt frame:
	// code fences and special-token delimiters.
	delimiters = strings.NewReplacer(
		"```", "",
		"<|", "",
		"|>", "",
	)
)

// Clean normalizes raw user text before validation and chunking: line
// endings become LF, control characters (except newline and tab) are
// stripped, prompt-delimiter sequences are neutralized, and blank-line
// runs collapse to a single paragraph break.
func Clean(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = controlChars.ReplaceAllString(text, "")
	text = delimiters.Replace(text)
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
