package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// fromDOCX reads word/document.xml out of the archive and flattens runs
// of text, one paragraph per w:p element. No third-party DOCX reader is
// involved; the format is just zipped XML.
func fromDOCX(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var document io.ReadCloser
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			document, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("open docx document part: %w", err)
			}
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx archive has no document part")
	}
	defer document.Close()

	text, err := flattenDocumentXML(document)
	if err != nil {
		return "", fmt.Errorf("parse docx document part: %w", err)
	}
	return text, nil
}

func flattenDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		b        strings.Builder
		inText   bool
		haveBody bool
	)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if haveBody {
					b.WriteString("\n\n")
				}
			}
		case xml.CharData:
			if inText {
				b.Write(t)
				haveBody = true
			}
		}
	}

	return strings.TrimSpace(b.String()), nil
}
