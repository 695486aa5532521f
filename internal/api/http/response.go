package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"rentgear-backend/internal/logger"
	"rentgear-backend/internal/service"
)

// successResponse wraps every successful payload
type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// errorResponse carries a readable message plus per-field details for
// validation failures
type errorResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Fields  []service.FieldError `json:"fields,omitempty"`
}

func respondSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(successResponse{Success: true, Data: data}); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(errorResponse{Success: status < 400, Message: message})
	if err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// respondError maps service errors onto HTTP statuses: validation failures
// become 400 with field details, unknown ids 404, business-rule conflicts 409,
// everything else 500 with a generic message.
func respondError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	var cerr *service.ConflictError

	switch {
	case errors.As(err, &verr):
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(errorResponse{
			Success: false,
			Message: "validation failed",
			Fields:  verr.Fields,
		})
		if encodeErr != nil {
			logger.Error("failed to encode response", "error", encodeErr)
		}
	case errors.Is(err, service.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		respondMessage(w, http.StatusNotFound, "not found")
	case errors.As(err, &cerr):
		respondMessage(w, http.StatusConflict, cerr.Reason)
	case errors.Is(err, service.ErrInvalidCredentials):
		respondMessage(w, http.StatusUnauthorized, "invalid username or password")
	default:
		logger.Error("request failed", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a request body into dst, rejecting unknown garbage early
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		verr := &service.ValidationError{}
		verr.Fields = append(verr.Fields, service.FieldError{Field: "body", Message: "invalid JSON payload"})
		return verr
	}
	return nil
}
