package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/report"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Social links shown in every page footer.
const (
	TikTokURL    = "https://www.tiktok.com/@neptunee7777"
	InstagramURL = "https://www.instagram.com/kendallm16"
)

// SocialLinks is embedded in every template's data.
type SocialLinks struct {
	TikTokURL    string
	InstagramURL string
}

func socials() SocialLinks {
	return SocialLinks{TikTokURL: TikTokURL, InstagramURL: InstagramURL}
}

// pageData backs the static pages.
type pageData struct {
	SocialLinks
}

// reportPage backs the report template.
type reportPage struct {
	SocialLinks
	report.Report
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.FromContext(r.Context()).Error("Template render failed",
			"template", name,
			"error", err)
	}
}
