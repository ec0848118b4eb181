package handler

import (
	"archive/zip"
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/morrowland/archetype-report/internal/report"
)

func downloadedDocxText(t *testing.T, body []byte) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		raw, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(raw)
	}
	t.Fatal("response is not a docx package")
	return ""
}

func TestHandleDownloadReport(t *testing.T) {
	svc := newTestReportService(t)

	t.Run("known code downloads the narrative", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/download-report?code=High-Low-Medium-High-Low", nil)
		w := httptest.NewRecorder()

		HandleDownloadReport(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, docxContentType, w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Starlight_Wanderer_Detailed_Report.docx"`,
			w.Header().Get("Content-Disposition"))
		assert.Contains(t, downloadedDocxText(t, w.Body.Bytes()), "You drift between worlds of thought.")
	})

	t.Run("unknown code downloads placeholder document", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/download-report?code=Unknown-Code", nil)
		w := httptest.NewRecorder()

		HandleDownloadReport(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `attachment; filename="Unknown_Detailed_Report.docx"`,
			w.Header().Get("Content-Disposition"))
		assert.Contains(t, downloadedDocxText(t, w.Body.Bytes()), report.DownloadNotFoundText)
	})
}
