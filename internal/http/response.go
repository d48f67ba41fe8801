package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"universe-backend-go/internal/services"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// WriteServiceError maps a services.ServiceError to its HTTP status; any
// other error becomes a 500.
func WriteServiceError(w http.ResponseWriter, err error) {
	var serr services.ServiceError
	if errors.As(err, &serr) {
		WriteError(w, serr.Status, serr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

func parseInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
