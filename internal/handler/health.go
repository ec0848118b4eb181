package handler

import (
	"encoding/json"
	"net/http"
)

// HandleHealthz reports process liveness.
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

// VersionResponse is the body of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}

// HandleVersion exposes the deployed version for deployment verification.
func HandleVersion(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(VersionResponse{Version: version})
	}
}
