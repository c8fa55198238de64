package api

import (
	"encoding/json"
	"net/http"
)

func jsonResponse(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func jsonError(w http.ResponseWriter, msg, stage string, status int) {
	body := map[string]string{"error": msg}
	if stage != "" {
		body["stage"] = stage
	}
	jsonResponse(w, body, status)
}
