package report

import (
	"github.com/morrowland/archetype-report/internal/archetype"
)

// Report display texts.
const (
	NotFoundText = "Detailed report not found."
	PreviewText  = "Preview only. Purchase or use a free code to unlock the full report."
	FooterQuote  = "“Depth rewards patience.”"

	UnknownArchetype = "Unknown"

	fullSectionTitle    = "Detailed Report"
	previewSectionTitle = "Summary"

	subtypeUnlocked = "N/A"
	subtypeLocked   = "Locked"
)

// Section is one titled block of report text.
type Section struct {
	Title string
	Body  string
}

// Report is everything the report page displays for one trait code.
type Report struct {
	Archetype string
	Traits    string
	Subtype   string
	Sections  []Section
	Quote     string
}

// Service resolves trait codes to report content. The narrative maps and the
// registry are built at startup and injected; the service never mutates them.
type Service struct {
	narratives archetype.Narratives
	registry   archetype.Registry
}

// NewService creates a report service over the loaded narratives and registry.
func NewService(narratives archetype.Narratives, registry archetype.Registry) *Service {
	return &Service{narratives: narratives, registry: registry}
}

// BuildReport resolves the narrative for a trait code and shapes it for
// display. Lookup order: by code, then by the registry name. Unknown codes
// never fail; they fall back to placeholder text. The full narrative appears
// only when paid is true — the locked variant carries the fixed preview
// message instead.
func (s *Service) BuildReport(code string, paid bool) Report {
	text, name := s.resolve(code)

	rep := Report{
		Archetype: name,
		Traits:    code,
		Quote:     FooterQuote,
	}
	if rep.Archetype == "" {
		rep.Archetype = UnknownArchetype
	}

	if paid {
		rep.Subtype = subtypeUnlocked
		rep.Sections = []Section{{Title: fullSectionTitle, Body: text}}
	} else {
		rep.Subtype = subtypeLocked
		rep.Sections = []Section{{Title: previewSectionTitle, Body: PreviewText}}
	}
	return rep
}

// resolve finds the narrative text and archetype name for a trait code. The
// returned text is never empty; the name is empty when the registry has no
// entry for the code.
func (s *Service) resolve(code string) (text, name string) {
	text = s.narratives.ByCode[code]
	name, _ = s.registry.Name(code)
	if text == "" && name != "" {
		text = s.narratives.ByName[name]
	}
	if text == "" {
		text = NotFoundText
	}
	return text, name
}
