package flows

import (
	"errors"
	"fmt"
)

const (
	FieldIdentifier = "identifier"
	FieldSecret     = "secret"

	MsgIdentifierRequired = "Email is required"
	MsgSecretRequired     = "Password is required"
	MsgLoginFailedDefault = "invalid credentials or server unavailable"
	MsgNoCredential       = "No token found. Please log in."
	MsgFetchFailed        = "Failed to fetch user details"
)

var (
	// ErrSubmitDisabled is returned when submit is triggered while the form
	// is invalid or a submission is already in flight.
	ErrSubmitDisabled = errors.New("submit disabled")

	// ErrSuperseded is returned by a fetch whose result was discarded
	// because a newer fetch or a logout started after it.
	ErrSuperseded = errors.New("superseded by a newer request")
)

// ValidationError is a client-side, pre-network rejection of the form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError is a rejected or failed credential exchange.
type AuthenticationError struct {
	Message string
	Err     error
}

func (e *AuthenticationError) Error() string {
	return "login failed: " + e.Message
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// MissingCredentialError means the protected resource was requested without
// a stored token.
type MissingCredentialError struct{}

func (e *MissingCredentialError) Error() string {
	return MsgNoCredential
}

// FetchError is a failed protected-resource call.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", MsgFetchFailed, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
