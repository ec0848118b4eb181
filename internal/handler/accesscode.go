package handler

import (
	"encoding/json"
	"net/http"

	"github.com/morrowland/archetype-report/internal/accesscode"
	"github.com/morrowland/archetype-report/internal/logger"
	"github.com/morrowland/archetype-report/internal/metrics"
)

// FreeCodeResponse is the body returned when a new free-access code is minted.
type FreeCodeResponse struct {
	NewCode string `json:"new_code"`
}

// HandleGenerateFreeCode mints a single-use free-access code and returns it
// as JSON. Administrative action; the code starts unused and can unlock
// exactly one report.
func HandleGenerateFreeCode(store accesscode.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		code, err := store.Generate(r.Context())
		if err != nil {
			log.Error("Failed to generate free code", "error", err)
			http.Error(w, ErrMsgGenerateCodeFailed, http.StatusInternalServerError)
			return
		}

		metrics.FreeCodesGenerated.Inc()
		log.Info("Generated free access code", "code", code)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(FreeCodeResponse{NewCode: code}); err != nil {
			log.Error("Failed to encode free code response", "error", err)
		}
	}
}
