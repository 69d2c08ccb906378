// Package extract turns uploaded documents into plain text suitable for
// the rewriting pipeline.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"TextHumanizer/internal/ports"
)

// Service dispatches extraction on the uploaded file's extension.
type Service struct{}

var _ ports.Extractor = (*Service)(nil)

// NewService builds the extractor.
func NewService() *Service {
	return &Service{}
}

// FromUpload returns the document's plain text. Unsupported or undecodable
// files yield an error the handler maps to a client-facing message.
func (s *Service) FromUpload(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return fromPDF(data)
	case ".html", ".htm":
		return fromHTML(data)
	case ".docx":
		return fromDOCX(data)
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("file %s is not valid UTF-8 text", name)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type %q", filepath.Ext(name))
	}
}
