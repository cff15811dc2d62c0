package crm

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized matches any *AuthError via errors.Is.
	ErrUnauthorized = errors.New("crm: unauthorized")
	// ErrTimeout marks calls that ran past the client timeout.
	ErrTimeout = errors.New("crm: timeout")
)

// AuthError is returned when the CRM answers 401 or 403.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("CRM rejected the access token (HTTP %d); check your token and location id", e.StatusCode)
}

func (e *AuthError) Is(target error) bool { return target == ErrUnauthorized }

// StatusError is returned for any other non-2xx answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("CRM returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("CRM returned HTTP %d: %s", e.StatusCode, e.Body)
}
