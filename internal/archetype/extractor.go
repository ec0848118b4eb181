package archetype

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
)

// Narratives holds the long-form report text recovered from the source
// document, keyed both by trait code ("O-C-E-A-N" levels) and by archetype
// display name. Built once at startup and read-only afterwards.
type Narratives struct {
	ByCode map[string]string
	ByName map[string]string
}

// headerRe matches a five-trait header line. The five trait names must appear
// in order, each followed by a level; separators between fields are permissive
// (colon, dash, or arbitrary text).
var headerRe = regexp.MustCompile(
	`(?i)openness\s*[:\-–—]?\s*(low|medium|high).*?` +
		`conscientiousness\s*[:\-–—]?\s*(low|medium|high).*?` +
		`extraversion\s*[:\-–—]?\s*(low|medium|high).*?` +
		`agreeableness\s*[:\-–—]?\s*(low|medium|high).*?` +
		`neuroticism\s*[:\-–—]?\s*(low|medium|high)`)

// nameRe matches an "Archetype: <name>" label line.
var nameRe = regexp.MustCompile(`(?i)^archetype\s*[:\-–—]?\s*(.+?)\s*$`)

// nameLookahead is how many paragraphs after a header are scanned for the
// archetype name label.
const nameLookahead = 3

// Extract runs a single forward pass over the document paragraphs and returns
// the two narrative lookup maps.
//
// Header and name detection run on trimmed text; buffered narrative content
// keeps the raw paragraph text so the original formatting survives. A header
// with no narrative text before the next header produces no record, and a
// repeated trait code overwrites the earlier record.
func Extract(paragraphs []string) Narratives {
	n := Narratives{
		ByCode: make(map[string]string),
		ByName: make(map[string]string),
	}

	trimmed := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		trimmed[i] = strings.TrimSpace(p)
	}

	var (
		currentCode string
		currentName string
		buffer      []string
	)

	flush := func() {
		if currentCode != "" && len(buffer) > 0 {
			text := strings.TrimSpace(strings.Join(buffer, "\n"))
			n.ByCode[currentCode] = text
			if currentName != "" {
				n.ByName[currentName] = text
			}
		}
		buffer = buffer[:0]
	}

	for i := 0; i < len(paragraphs); i++ {
		m := headerRe.FindStringSubmatch(trimmed[i])
		if m == nil {
			if currentCode != "" {
				buffer = append(buffer, paragraphs[i])
			}
			continue
		}

		flush()
		currentCode = codeFromLevels(m[1:])
		currentName = ""

		// The name label usually sits within a few paragraphs of the header.
		// When found, the cursor jumps past it so the label line never lands
		// in the narrative buffer.
		for j := 1; j <= nameLookahead && i+j < len(paragraphs); j++ {
			if nm := nameRe.FindStringSubmatch(trimmed[i+j]); nm != nil {
				currentName = strings.TrimSpace(nm[1])
				i += j
				break
			}
		}
		if currentName == "" {
			currentName = fmt.Sprintf("Unknown_%d", i)
		}
	}
	flush()

	return n
}

// codeFromLevels joins captured trait levels into the canonical
// "O-C-E-A-N" trait code, capitalizing each level.
func codeFromLevels(levels []string) string {
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = capitalize(l)
	}
	return strings.Join(parts, "-")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// LoadDocument reads the source .docx and extracts all archetype narratives.
// A missing or unreadable document is a recoverable startup condition: the
// service degrades to "report not found" responses, so this logs and returns
// empty maps instead of failing.
func LoadDocument(path string) Narratives {
	paragraphs, err := readDocxParagraphs(path)
	if err != nil {
		slog.Warn("Source document unavailable, no narratives loaded",
			"path", path,
			"error", err)
		return Narratives{
			ByCode: make(map[string]string),
			ByName: make(map[string]string),
		}
	}

	n := Extract(paragraphs)
	slog.Info("Loaded archetype narratives",
		"count", len(n.ByCode),
		"file", filepath.Base(path))
	return n
}
