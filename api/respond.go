package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Samandar-Komilov/voidpdev/errs"
	"github.com/rs/zerolog"
)

// Responses above this size are replaced by an error body.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus writes data with status. Headers are set before the status
// line goes out.
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large, truncating")

		status = http.StatusRequestEntityTooLarge
		jsonData, _ = json.Marshal(ErrorResponse{
			Error:   "Response too large",
			Status:  "error",
			Details: "The requested data exceeds the maximum response size",
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Status:  "error",
			Details: "An unexpected error occurred",
		})
		return
	}

	// Build response based on error details
	response := ErrorResponse{
		Error:   apiErr.Error(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		// Causes of server-side failures stay in the logs.
		r.logger.Error().Str("error", apiErr.GetFullError()).Int("status", apiErr.StatusCode).Msg("request failed")
	} else if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}

	r.WriteJSONStatus(w, apiErr.StatusCode, response)
}
