package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"mintospay/internal/marzpay"
)

// Error categories exposed to callers.
const (
	errCategoryBadRequest  = "bad_request"
	errCategoryPhoneNumber = "invalid_phone_number"
	errCategoryReference   = "invalid_reference"
	errCategoryValidation  = "validation_error"
	errCategoryProvider    = "provider_error"
	errCategoryUnavailable = "provider_unavailable"
	errCategoryInternal    = "internal_error"
	errCategoryRateLimited = "rate_limit_exceeded"
)

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusBadRequest, errCategoryBadRequest, err.Error())
}

func (app *application) validationErrorResponse(w http.ResponseWriter, r *http.Request, category string, err error) {
	app.logger.Warnw("validation failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusUnprocessableEntity, category, err.Error())
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusInternalServerError, errCategoryInternal, "an unexpected error occurred")
}

func (app *application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("provider unreachable", "method", r.Method, "path", r.URL.Path, "error", err.Error())
	writeJSONError(w, http.StatusServiceUnavailable, errCategoryUnavailable, "failed to connect to Marz Pay API")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	w.Header().Set("Retry-After", retryAfter)
	writeJSONError(w, http.StatusTooManyRequests, errCategoryRateLimited, "rate limit exceeded, retry after: "+retryAfter)
}

// upstreamErrorResponse translates a failed outbound call. Provider non-2xx
// JSON bodies are relayed unchanged; empty or non-JSON bodies are wrapped in
// the envelope; anything else is a transport failure mapped to 503.
func (app *application) upstreamErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *marzpay.APIError
	if errors.As(err, &apiErr) {
		app.logger.Warnw("provider error relayed", "method", r.Method, "path", r.URL.Path, "status", apiErr.StatusCode)
		if len(apiErr.Body) == 0 || !json.Valid(apiErr.Body) {
			message := strings.TrimSpace(string(apiErr.Body))
			if message == "" {
				message = http.StatusText(apiErr.StatusCode)
			}
			writeJSONError(w, apiErr.StatusCode, errCategoryProvider, message)
			return
		}
		writeRawJSON(w, apiErr.StatusCode, apiErr.Body)
		return
	}
	app.serviceUnavailableResponse(w, r, err)
}
