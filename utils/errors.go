package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or missing input. Always a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// InvariantViolationError reports a write that would break a stored
// invariant, such as exposing a meeting link before payment has succeeded.
type InvariantViolationError struct {
	Message string
}

func (e *InvariantViolationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, e.g. a second session for
// the same booking or a duplicate service name.
type ConflictError struct {
	Resource string
	Message  string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// NotFoundError reports a missing referenced entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// UnauthorizedError reports a failed authentication check: bad credentials,
// an invalid token, or a webhook signature that does not match.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string { return e.Message }

// AuthConfigError reports meeting-provider credentials missing from
// configuration. It fails the operation that needed the provider, never the
// process.
type AuthConfigError struct {
	Message string
}

func (e *AuthConfigError) Error() string { return e.Message }

// ProviderAPIError reports an upstream meeting-provider call that failed
// after the single retry allowed on credential expiry.
type ProviderAPIError struct {
	StatusCode int
	Message    string
}

func (e *ProviderAPIError) Error() string {
	return fmt.Sprintf("provider api error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsProviderStatus reports whether err is a ProviderAPIError carrying the
// given upstream status code.
func IsProviderStatus(err error, status int) bool {
	var pe *ProviderAPIError
	return errors.As(err, &pe) && pe.StatusCode == status
}

// HTTPStatus maps a service error onto the status code the API answers with.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		iv *InvariantViolationError
		ce *ConflictError
		nf *NotFoundError
		ua *UnauthorizedError
		ac *AuthConfigError
		pe *ProviderAPIError
	)
	switch {
	case errors.As(err, &ve), errors.As(err, &iv):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusConflict
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &ua):
		return http.StatusUnauthorized
	case errors.As(err, &ac):
		return http.StatusInternalServerError
	case errors.As(err, &pe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ErrorCode returns the short machine tag included in failure envelopes.
func ErrorCode(err error) string {
	var (
		ve *ValidationError
		iv *InvariantViolationError
		ce *ConflictError
		nf *NotFoundError
		ua *UnauthorizedError
		ac *AuthConfigError
		pe *ProviderAPIError
	)
	switch {
	case errors.As(err, &ve):
		return "validation_error"
	case errors.As(err, &iv):
		return "invariant_violation"
	case errors.As(err, &ce):
		return "conflict"
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &ua):
		return "unauthorized"
	case errors.As(err, &ac):
		return "auth_config_error"
	case errors.As(err, &pe):
		return "provider_api_error"
	default:
		return "internal_error"
	}
}
