package archetype

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentXMLPath = "word/document.xml"

// readDocxParagraphs returns the plain text of every paragraph in a .docx
// file, in document order. Empty paragraphs are kept: the extractor relies on
// paragraph positions for its name lookahead and on blank lines surviving into
// the narrative buffer.
func readDocxParagraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != documentXMLPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", documentXMLPath, err)
		}
		defer rc.Close()
		return scanParagraphs(rc)
	}
	return nil, errors.New("document has no " + documentXMLPath)
}

// scanParagraphs walks the WordprocessingML token stream, concatenating the
// text runs (<w:t>) of each paragraph (<w:p>).
func scanParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = inPara
			case "tab":
				if inPara {
					current.WriteByte('\t')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara {
					paragraphs = append(paragraphs, current.String())
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
