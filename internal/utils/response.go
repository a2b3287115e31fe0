package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"NOTES_BACK-END/internal/dto"
)

// MaxRequestBodyBytes caps the size of JSON request bodies.
const MaxRequestBodyBytes = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Int("status", status).Msg("Failed to encode response")
	}
}

// WriteErrorResponse writes an error body in the common error format
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes the request body into dst. On failure it has
// already written a 400 response and the caller only needs to return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil {
		msg := err.Error()
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			msg = "request body is empty"
		case errors.As(err, &maxErr):
			msg = fmt.Sprintf("request body must not exceed %d bytes", maxErr.Limit)
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", msg)
		return err
	}
	if dec.More() {
		err := errors.New("request body must contain a single JSON object")
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
