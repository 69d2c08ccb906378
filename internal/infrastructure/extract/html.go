package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceRuns = regexp.MustCompile(`[ \t]+`)

func fromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	// Block elements become paragraph breaks so the chunker sees the
	// document's structure.
	var b strings.Builder
	root.Find("p, h1, h2, h3, h4, h5, h6, li, pre").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n\n")
		}
	})

	text := strings.TrimSpace(b.String())
	if text == "" {
		text = strings.TrimSpace(root.Text())
	}
	return spaceRuns.ReplaceAllString(text, " "), nil
}
