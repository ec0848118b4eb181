package report

import (
	"bytes"
	"fmt"
	"strings"

	docx "github.com/fumiama/go-docx"
)

// DownloadNotFoundText is the document body used when a trait code resolves
// to no narrative.
const DownloadNotFoundText = "Detailed text not found."

const (
	downloadSuffix  = "_Detailed_Report.docx"
	headingFontSize = "36"
)

// BuildDocument renders the downloadable .docx for a trait code: the
// archetype name as a heading paragraph followed by the narrative body.
// Unknown codes still produce a document, titled "Unknown" with placeholder
// body text. Returns the attachment filename and the encoded document.
func (s *Service) BuildDocument(code string) (string, []byte, error) {
	name := UnknownArchetype
	if n, ok := s.registry.Name(code); ok {
		name = n
	}

	text := s.narratives.ByCode[code]
	if text == "" {
		text = s.narratives.ByName[name]
	}
	if text == "" {
		text = DownloadNotFoundText
	}

	doc := docx.New().WithDefaultTheme()
	doc.AddParagraph().AddText(name).Size(headingFontSize)
	doc.AddParagraph().AddText(text)

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return "", nil, fmt.Errorf("encode report document: %w", err)
	}

	filename := strings.ReplaceAll(name, " ", "_") + downloadSuffix
	return filename, buf.Bytes(), nil
}
