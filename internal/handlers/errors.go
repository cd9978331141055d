package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/newsverify/api-backend/internal/classifier"
	"github.com/newsverify/api-backend/internal/validators"
)

// Error messages returned to API callers
const (
	MsgInvalidJSON         = "Invalid JSON body"
	MsgBodyTooLarge        = "Request body too large"
	MsgModelUnavailable    = "Model unavailable"
	MsgInternalError       = "Internal server error"
	MsgHealthCheckFailed   = "Internal server error during health check"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgOnlyGetAccepted     = "Method not allowed. Only GET requests are accepted."
	MsgOnlyPostAccepted    = "Method not allowed. Only POST requests are accepted."
	MsgNotFound            = "Not found"
	MsgRequestCanceled     = "Request canceled"
	msgFieldlessValidation = "Invalid request"
)

// statusClientClosedRequest is the nginx convention for a client that
// disconnected before the response was written.
const statusClientClosedRequest = 499

// determineErrorStatusCode maps error types to HTTP status codes and the
// message shown to the caller
func determineErrorStatusCode(err error) (int, string) {
	// Validation errors -> 400 Bad Request
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Message == "" {
			return http.StatusBadRequest, msgFieldlessValidation
		}
		return http.StatusBadRequest, clientMessage(vErr)
	}

	// Backend down or timed out -> 503 Service Unavailable
	if errors.Is(err, classifier.ErrModelUnavailable) {
		return http.StatusServiceUnavailable, MsgModelUnavailable
	}

	// Caller gave up -> 499, not a server fault
	if errors.Is(err, context.Canceled) {
		return statusClientClosedRequest, MsgRequestCanceled
	}

	// Default to 500 Internal Server Error
	return http.StatusInternalServerError, MsgInternalError
}

// clientMessage shows the "No text provided" style messages verbatim and
// prefixes the others with their field.
func clientMessage(vErr *validators.ValidationError) string {
	if vErr.Message == validators.MsgNoTextProvided {
		return vErr.Message
	}
	return vErr.Error()
}
