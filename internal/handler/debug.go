package handler

import (
	"fmt"
	"html"
	"net/http"
	"sort"

	"github.com/morrowland/archetype-report/internal/archetype"
)

// debugTruncateAt limits how much of each narrative the dump shows.
const debugTruncateAt = 800

// HandleDebugAllReports dumps every extracted narrative as raw HTML, one
// heading per trait code with the first 800 characters of its text.
// Unauthenticated diagnostic endpoint; narratives are paid content, so this
// should not be exposed on a public deployment.
func HandleDebugAllReports(narratives archetype.Narratives) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		codes := make([]string, 0, len(narratives.ByCode))
		for code := range narratives.ByCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<h1>All Archetypes</h1>")
		for _, code := range codes {
			text := narratives.ByCode[code]
			name := nameForText(narratives, text)
			truncated := text
			if len(truncated) > debugTruncateAt {
				truncated = truncated[:debugTruncateAt]
			}
			fmt.Fprintf(w, "<h2>%s (%s)</h2><pre>%s...</pre><hr>",
				html.EscapeString(name),
				html.EscapeString(code),
				html.EscapeString(truncated))
		}
	}
}

// nameForText reverse-looks-up the archetype name whose narrative matches.
func nameForText(narratives archetype.Narratives, text string) string {
	for name, t := range narratives.ByName {
		if t == text {
			return name
		}
	}
	return "Unknown"
}
