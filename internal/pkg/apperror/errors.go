package apperror

import "errors"

// The deletion workflow (and the rest of the API) reports failures through a small
// set of typed errors so the HTTP layer can pick the right status and message
// without string matching.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidStateError means the target record exists but is not in a state that
// allows the requested transition (e.g. a deletion token already consumed).
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string { return e.Message }

// ExpiredTokenError means a token was presented after its TTL elapsed.
type ExpiredTokenError struct {
	Message string
}

func (e *ExpiredTokenError) Error() string { return e.Message }

// DeliveryError wraps a failed outbound email. It is logged server-side and
// never surfaced to the caller that triggered the send.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return "failed to deliver email to " + e.Recipient + ": " + e.Err.Error()
}

func (e *DeliveryError) Unwrap() error { return e.Err }

func NewValidation(msg string) error   { return &ValidationError{Message: msg} }
func NewNotFound(msg string) error     { return &NotFoundError{Message: msg} }
func NewInvalidState(msg string) error { return &InvalidStateError{Message: msg} }
func NewExpiredToken(msg string) error { return &ExpiredTokenError{Message: msg} }

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsInvalidState(err error) bool {
	var target *InvalidStateError
	return errors.As(err, &target)
}

func IsExpiredToken(err error) bool {
	var target *ExpiredTokenError
	return errors.As(err, &target)
}

func IsDelivery(err error) bool {
	var target *DeliveryError
	return errors.As(err, &target)
}
