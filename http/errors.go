package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"property-estimator/estimator"
	"property-estimator/service"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeError(w http.ResponseWriter, status int, code, message string, details map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: errorDetail{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// writeServiceError maps service failures onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var inputErr *estimator.InvalidInputError
	switch {
	case errors.As(err, &inputErr):
		writeError(w, http.StatusUnprocessableEntity, "invalid_input", inputErr.Error(), map[string]any{
			"field": inputErr.Field,
		})
	case errors.Is(err, service.ErrNoEligibleTerm):
		writeError(w, http.StatusUnprocessableEntity, "no_eligible_term", err.Error(), nil)
	default:
		log.Error().Err(err).Msg("estimate failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
	}
}

// decodeJSON rejects non-JSON content types, unknown fields and oversized
// bodies. It writes the error response itself and reports whether to go on.
func decodeJSON(w http.ResponseWriter, r *http.Request, log zerolog.Logger, dst any) bool {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "Content-Type must be application/json", nil)
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		log.Debug().Err(err).Msg("invalid request body")
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return false
	}
	return true
}

// writeJSON encodes into a buffer first so a failed encode never leaves a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error", nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
