package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"llcart/services"
)

// Per-request store round-trip budget, applied on top of the client's
// own deadline.
const requestTimeout = 5 * time.Second

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP
// statuses. Unexpected errors are logged and surfaced as a generic 500
// so store internals never leak to clients.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument), errors.Is(err, services.ErrAlreadyExists):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("unexpected service error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
