package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophprofile/internal/client/flows/login"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows/profile"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
)

const (
	loadingText       = "Loading..."
	noDataText        = "No user data available"
	placeholderAvatar = "https://via.placeholder.com/96"
	credentialsHint   = "Don't have login details? Get a username and password from https://dummyjson.com/users"
)

// renderProfile prints exactly one of: loading indicator, error message,
// placeholder or the user's fields.
func renderProfile(w io.Writer, s profile.State) {
	switch s.Status {
	case profile.Loading:
		fmt.Fprintln(w, loadingText)
	case profile.Error, profile.Unauthenticated:
		fmt.Fprintln(w, s.Message)
	case profile.Loaded:
		renderHeading(w, s.User)
		fmt.Fprintln(w, "User Details")
		for _, f := range s.User.Fields() {
			fmt.Fprintf(w, "  %-11s %s\n", f.Label+":", f.Value)
		}
	default:
		fmt.Fprintln(w, noDataText)
	}
}

// renderHeading prints the username, the full name when known, and the
// avatar URL.
func renderHeading(w io.Writer, u models.User) {
	if name := u.FullName(); name != "" {
		fmt.Fprintf(w, "%s (%s)\n", u.Username, name)
	} else {
		fmt.Fprintln(w, u.Username)
	}
	avatar := u.Image
	if avatar == "" {
		avatar = placeholderAvatar
	}
	fmt.Fprintf(w, "Avatar: %s\n", avatar)
}

// renderLogin prints transient progress of the login form. Outcomes are
// reported by the notifier.
func renderLogin(w io.Writer, s login.State) {
	if s.Status == login.Submitting {
		fmt.Fprintln(w, "Logging in...")
	}
}

func loginIntro(w io.Writer) {
	fmt.Fprintln(w, "Please sign in. Type 'login' to enter your credentials.")
	fmt.Fprintln(w, credentialsHint)
}

func loginHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands: login, help, exit")
	fmt.Fprintln(w, credentialsHint)
}

func profileHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands: (r)efresh, show, logout, help, exit")
}
