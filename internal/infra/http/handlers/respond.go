package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AKastantin/BPP-LP/internal/usecase"
)

// Every endpoint answers the same envelope: {success:true, ...} on the happy
// path, {success:false, error} otherwise.

func respondJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondSuccess(w http.ResponseWriter, payload map[string]any) {
	body := map[string]any{"success": true}
	for key, value := range payload {
		body[key] = value
	}
	respondJSON(w, http.StatusOK, body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// respondUseCaseError maps validation failures to 400 and everything else
// to 500, carrying the error message verbatim (the site shows it in a toast).
func respondUseCaseError(w http.ResponseWriter, err error) {
	if usecase.IsValidationError(err) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
