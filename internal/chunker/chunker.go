package chunker

import (
	"regexp"
	"strings"
)

// DefaultChunkSize is the soft per-chunk budget in bytes of UTF-8 text.
const DefaultChunkSize = 3000

// Separator joins chunks back into a document.
const Separator = "\n\n"

var (
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n+`)
	// End of sentence: terminal punctuation, optionally a closing quote
	// or bracket, followed by whitespace.
	sentenceEnd = regexp.MustCompile(`[.!?]["'”’)\]]?(\s+|$)`)
)

type piece struct {
	text string
	// newParagraph marks a piece that starts a paragraph; continuation
	// sentences of an oversized paragraph rejoin with a single space.
	newParagraph bool
}

// Split cuts text into ordered chunks of at most size bytes, preferring
// paragraph then sentence boundaries. The bound is best-effort: a single
// piece with no usable boundary is emitted oversized rather than cut
// mid-word. Empty input yields no chunks.
func Split(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var pieces []piece
	for _, paragraph := range paragraphBreak.Split(text, -1) {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		if len(paragraph) <= size {
			pieces = append(pieces, piece{text: paragraph, newParagraph: true})
			continue
		}
		for i, sentence := range splitSentences(paragraph) {
			pieces = append(pieces, piece{text: sentence, newParagraph: i == 0})
		}
	}

	var chunks []string
	var current strings.Builder
	for _, p := range pieces {
		if current.Len() == 0 {
			current.WriteString(p.text)
			continue
		}
		sep := " "
		if p.newParagraph {
			sep = Separator
		}
		if current.Len()+len(sep)+len(p.text) <= size {
			current.WriteString(sep)
			current.WriteString(p.text)
			continue
		}
		chunks = append(chunks, current.String())
		current.Reset()
		current.WriteString(p.text)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	out := chunks[:0]
	for _, c := range chunks {
		if strings.TrimSpace(c) != "" {
			out = append(out, c)
		}
	}
	return out
}

// Join reassembles chunks in order with the standard separator.
func Join(chunks []string) string {
	return strings.Join(chunks, Separator)
}

// splitSentences cuts a paragraph after each end-of-sentence mark. A
// paragraph with no such boundary comes back whole.
func splitSentences(paragraph string) []string {
	matches := sentenceEnd.FindAllStringIndex(paragraph, -1)
	if len(matches) == 0 {
		return []string{paragraph}
	}

	var sentences []string
	start := 0
	for _, m := range matches {
		sentence := strings.TrimSpace(paragraph[start:m[1]])
		if sentence != "" {
			sentences = append(sentences, sentence)
		}
		start = m[1]
	}
	if tail := strings.TrimSpace(paragraph[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}
