package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/fontify/internal/application/usecase"
	"github.com/bnema/fontify/internal/infrastructure/pages"
	"github.com/bnema/fontify/internal/logging"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

var errBadBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errBadBody, err)
	}
	return nil
}

// statusFor maps use case errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrPresetNotFound),
		errors.Is(err, usecase.ErrExclusionNotFound),
		errors.Is(err, pages.ErrPageNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrExclusionExists),
		errors.Is(err, usecase.ErrAlreadyExcluded):
		return http.StatusConflict
	case errors.Is(err, errBadBody),
		errors.Is(err, usecase.ErrEmptyFontURL),
		errors.Is(err, usecase.ErrInvalidFontURL),
		errors.Is(err, usecase.ErrInvalidExclusionURL),
		errors.Is(err, usecase.ErrEmptyPresetName),
		errors.Is(err, usecase.ErrInvalidImport):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	log := logging.FromContext(r.Context())

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		message = "internal server error"
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	writeJSON(w, status, ErrorResponse{Message: message})
}
