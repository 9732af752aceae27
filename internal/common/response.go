package common

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON shape every API response uses.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		Log.WithError(err).Error("failed to encode response")
	}
}

func WriteSuccess(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func WriteCreated(w http.ResponseWriter, message string, data interface{}) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Message: message})
}

// WriteValidationError reports field-level messages alongside the failure.
func WriteValidationError(w http.ResponseWriter, errors map[string]string) {
	WriteJSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "Validation failed",
		Errors:  errors,
	})
}
