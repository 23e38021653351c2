package handler

// RESPONSE HELPERS:
// These functions standardise how we send JSON responses and errors.
//
// Success responses carry the store's native result shape (record, array
// of records, or acknowledgment) with no envelope — the deployed client
// parses those shapes directly. Error responses all share one format:
//
//	{"error": "forbidden", "message": "forbidden access"}
//
// so the frontend always knows what fields to expect regardless of status.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mahdirahman356/electro-evo-server/internal/apperror"
)

// ErrorResponse is the standard error format returned by all API endpoints.
type ErrorResponse struct {
	Error   string `json:"error"`   // Machine-readable error type (e.g., "forbidden")
	Message string `json:"message"` // Human-readable description
}

// writeJSON sends a JSON response with the given status code.
//
// Headers and status code MUST be set before writing the body — once
// Encode calls w.Write(), the headers are sent and further changes are
// silently ignored.
//
// Note that writeJSON(w, status, nil) still writes "null": the single-item
// query route relies on that to signal an absent record with a 200.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent — we can only log it.
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError maps a domain error to the appropriate HTTP status code.
//
// This is the single place where the service layer's apperror taxonomy
// becomes HTTP: validation → 400, unauthorized → 401, forbidden → 403,
// not found → 404, anything unrecognised → 500 with a generic body.
// The raw error text of unknown failures is never exposed to the client —
// it might contain SQL fragments or file paths.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperror.AppError

	// errors.As walks the wrap chain and extracts the *AppError if one is
	// anywhere inside; errors.Is then picks the sentinel category.
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		errorType := "internal_error"

		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
			errorType = "validation_error"
		case errors.Is(err, apperror.ErrUnauthorized):
			status = http.StatusUnauthorized
			errorType = "unauthorized"
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
			errorType = "forbidden"
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
			errorType = "not_found"
		}

		writeJSON(w, status, ErrorResponse{
			Error:   errorType,
			Message: appErr.Message,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred",
	})
}
