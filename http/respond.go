package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"roi-calculator/domain"
)

var (
	errRateLimited  = errors.New("rate limit exceeded")
	errInvalidBody  = errors.New("invalid request body")
	errInvalidLimit = errors.New("invalid limit")
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes into a buffer first so a failed encode never leaves a half-written 200.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

// writeDomainError maps service errors onto status codes.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrSessionComputed):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrMissingField),
		errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrUnknownField),
		errors.Is(err, domain.ErrNotReady),
		errors.Is(err, domain.ErrZeroCurrentReturn):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, r, status, errors.New("internal server error"))
		return
	}
	writeError(w, r, status, err)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errInvalidBody
	}
	return nil
}
