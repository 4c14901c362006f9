package profile

import "github.com/dmitrijs2005/gophprofile/internal/client/models"

// Status is the phase of the profile screen.
type Status int

const (
	Empty Status = iota
	Loading
	Loaded
	Error
	Unauthenticated
)

func (s Status) String() string {
	switch s {
	case Empty:
		return "empty"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the screen. User is meaningful only for
// Loaded, Message only for Error and Unauthenticated.
type State struct {
	Status  Status
	User    models.User
	Message string
}

// HasUser reports whether a record is rendered.
func (s State) HasUser() bool {
	return s.Status == Loaded
}
