// Package common contains constants and small helpers shared across the
// client packages.
package common

const (
	// TokenStorageKey is the key of the single persistent slot holding the
	// session token.
	TokenStorageKey = "token"

	// AuthorizationHeaderName carries the bearer credential on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token in the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"
)
