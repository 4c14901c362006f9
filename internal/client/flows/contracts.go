package flows

import "context"

// Route addresses a screen.
type Route string

const (
	RouteLogin   Route = "/login"
	RouteProfile Route = "/profile"
)

// Navigator switches the visible screen. Navigation reports no outcome.
type Navigator interface {
	Navigate(route Route)
}

// Notifier shows transient, fire-and-forget messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// TokenStore is the persistent single-slot credential storage.
// Get reports ok=false when no token is stored. Delete of an absent token
// succeeds.
type TokenStore interface {
	Get(ctx context.Context) (token string, ok bool, err error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
