package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed scan. Every retrieval failure maps to exactly
// one kind; absence of arbitrage opportunities is never an error.
type ErrorKind string

const (
	ErrorKindUnauthorized ErrorKind = "unauthorized"    // HTTP 401 from provider
	ErrorKindRateLimited  ErrorKind = "rate_limited"    // HTTP 429 from provider
	ErrorKindForbidden    ErrorKind = "forbidden"       // HTTP 403 from provider
	ErrorKindProvider     ErrorKind = "provider_error"  // Any other non-2xx or unparseable body
	ErrorKindNetwork      ErrorKind = "network_failure" // DNS, connection, timeout
)

// ScanError is the typed error crossing the scanner boundary. It replaces
// ad-hoc status handling with an explicit result kind the caller can switch on.
type ScanError struct {
	Kind       ErrorKind
	StatusCode int    // Provider HTTP status, 0 for network failures
	Reason     string // Status reason text or transport cause description
	Err        error  // Underlying cause, if any
}

func (e *ScanError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: HTTP %d %s", e.Kind, e.StatusCode, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message shown to the dashboard user for this kind
func (e *ScanError) UserMessage() string {
	switch e.Kind {
	case ErrorKindUnauthorized:
		return "401 - Unauthorized. The API key is invalid or expired."
	case ErrorKindRateLimited:
		return "429 - Rate limit exceeded. Slow down or upgrade your OddsAPI plan."
	case ErrorKindForbidden:
		return "403 - Forbidden. This key may not have soccer access."
	case ErrorKindNetwork:
		return fmt.Sprintf("Network error: %s", e.Reason)
	default:
		return fmt.Sprintf("%d - %s", e.StatusCode, e.Reason)
	}
}

// HTTPStatus maps the kind to the status the API surface responds with
func (e *ScanError) HTTPStatus() int {
	switch e.Kind {
	case ErrorKindUnauthorized:
		return http.StatusUnauthorized
	case ErrorKindRateLimited:
		return http.StatusTooManyRequests
	case ErrorKindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadGateway
	}
}

// ClassifyStatus converts a non-2xx provider response into a ScanError
func ClassifyStatus(statusCode int, reason string) *ScanError {
	kind := ErrorKindProvider
	switch statusCode {
	case http.StatusUnauthorized:
		kind = ErrorKindUnauthorized
	case http.StatusTooManyRequests:
		kind = ErrorKindRateLimited
	case http.StatusForbidden:
		kind = ErrorKindForbidden
	}

	return &ScanError{
		Kind:       kind,
		StatusCode: statusCode,
		Reason:     reason,
	}
}

// NewNetworkError wraps a transport-level failure (DNS, connection, timeout)
func NewNetworkError(err error) *ScanError {
	return &ScanError{
		Kind:   ErrorKindNetwork,
		Reason: err.Error(),
		Err:    err,
	}
}

// NewProviderError wraps a provider-side failure that is not an HTTP status,
// such as an unparseable response body
func NewProviderError(reason string, err error) *ScanError {
	return &ScanError{
		Kind:   ErrorKindProvider,
		Reason: reason,
		Err:    err,
	}
}

// AsScanError unwraps err to a *ScanError if one is in the chain
func AsScanError(err error) (*ScanError, bool) {
	var scanErr *ScanError
	if errors.As(err, &scanErr) {
		return scanErr, true
	}
	return nil, false
}
