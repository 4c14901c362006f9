package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Username extracts the "username" claim from a JWT session token without
// verifying it. It is display-only: the token stays opaque to every
// decision the flows make. Returns "" for anything that does not parse.
func Username(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	if name, ok := claims["username"].(string); ok {
		return name
	}
	if sub, err := claims.GetSubject(); err == nil {
		return sub
	}
	return ""
}
