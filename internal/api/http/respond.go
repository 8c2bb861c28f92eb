package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"cashbook-backend/internal/joincode"
	"cashbook-backend/internal/ledger"
	"cashbook-backend/internal/logger"
	"cashbook-backend/internal/repository"
	"cashbook-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps service errors to status codes. Unexpected errors are logged and hidden.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, ledger.ErrNotOwner), errors.Is(err, ledger.ErrNotMember):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidCode):
		writeMessage(w, http.StatusNotFound, "invalid code")
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrAlreadyMember):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledger.ErrMalformedInput):
		logger.Warn("Stored data failed ledger validation", "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, joincode.ErrExhausted):
		logger.Error("Join code space exhausted", "path", r.URL.Path)
		writeMessage(w, http.StatusServiceUnavailable, "could not allocate a join code, try again")
	default:
		logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
