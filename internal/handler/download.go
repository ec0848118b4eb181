package handler

import (
	"fmt"
	"net/http"

	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/metrics"
	"github.com/morrowland/archetype-report/internal/report"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// HandleDownloadReport streams the report for a trait code as a .docx
// attachment. Unknown codes still download a document with placeholder text.
func HandleDownloadReport(svc *report.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		code := r.URL.Query().Get("code")

		filename, data, err := svc.BuildDocument(code)
		if err != nil {
			log.Error("Failed to build report document", "trait_code", code, "error", err)
			http.Error(w, ErrMsgBuildDocumentFailed, http.StatusInternalServerError)
			return
		}

		metrics.ReportsDownloaded.Inc()
		log.Info("Report downloaded", "trait_code", code, "filename", filename)

		w.Header().Set("Content-Type", docxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if _, err := w.Write(data); err != nil {
			log.Error("Failed to write report document", "error", err)
		}
	}
}
