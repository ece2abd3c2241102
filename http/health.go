package http

import "net/http"

func handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "loan-engine",
	})
}

func handleReadiness(w http.ResponseWriter, _ *http.Request) {
	// The engine is pure computation; once serving it is ready.
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ready",
		"service": "loan-engine",
	})
}
