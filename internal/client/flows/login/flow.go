// Package login implements the credential acquisition flow: it collects a
// username and password, exchanges them for a token, persists the token and
// moves the user to the profile screen.
package login

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/client"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/common"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// Authenticator exchanges credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

type Flow struct {
	auth     Authenticator
	store    flows.TokenStore
	nav      flows.Navigator
	notifier flows.Notifier
	log      logging.Logger

	mu        sync.Mutex
	username  string
	password  string
	state     State
	observers []func(State)
}

func New(auth Authenticator, store flows.TokenStore, nav flows.Navigator, notifier flows.Notifier, logger logging.Logger) *Flow {
	if notifier == nil {
		notifier = flows.NopNotifier{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Flow{
		auth:     auth,
		store:    store,
		nav:      nav,
		notifier: notifier,
		log:      logger.With("flow", "login"),
	}
}

func (f *Flow) SetUsername(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.username = s
}

func (f *Flow) SetPassword(s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.password = s
}

// Username returns the current identifier field.
func (f *Flow) Username() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.username
}

// HasPassword reports whether the secret field is filled in.
func (f *Flow) HasPassword() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.password != ""
}

// CanSubmit reports whether the submit control is enabled.
func (f *Flow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Status != Submitting && validate(f.username, f.password) == nil
}

// Validate checks the fields in order and reports only the first missing one.
func (f *Flow) Validate() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return validate(f.username, f.password)
}

func validate(username, password string) error {
	if common.IsBlank(username) {
		return &flows.ValidationError{Field: flows.FieldIdentifier, Message: flows.MsgIdentifierRequired}
	}
	if common.IsBlank(password) {
		return &flows.ValidationError{Field: flows.FieldSecret, Message: flows.MsgSecretRequired}
	}
	return nil
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers fn to be called with every new state.
func (f *Flow) Subscribe(fn func(State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

// setState must be called with f.mu held. It returns the observers to be
// notified once the lock is released.
func (f *Flow) setState(s State) []func(State) {
	f.state = s
	return slices.Clone(f.observers)
}

func publish(observers []func(State), s State) {
	for _, fn := range observers {
		fn(s)
	}
}

// Submit performs one login attempt.
func (f *Flow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Status == Submitting {
		f.mu.Unlock()
		return flows.ErrSubmitDisabled
	}
	if err := validate(f.username, f.password); err != nil {
		f.mu.Unlock()
		f.notifier.Error(err.Error())
		return err
	}
	creds := models.Credentials{Username: strings.TrimSpace(f.username), Password: f.password}
	submitting := State{Status: Submitting}
	obs := f.setState(submitting)
	f.mu.Unlock()

	publish(obs, submitting)
	f.log.Debug(ctx, "submitting credentials", "username", creds.Username)

	token, err := f.auth.Login(ctx, creds)
	if err != nil {
		authErr := &flows.AuthenticationError{Message: failureMessage(err), Err: err}
		f.fail(authErr.Message)
		f.log.Warn(ctx, "login rejected", "error", err)
		return authErr
	}

	if err := f.store.Set(ctx, token); err != nil {
		f.fail(err.Error())
		f.log.Error(ctx, "token not persisted", "error", err)
		return err
	}

	f.mu.Lock()
	f.username = ""
	f.password = ""
	success := State{Status: Success}
	obs = f.setState(success)
	f.mu.Unlock()

	publish(obs, success)
	f.log.Info(ctx, "login succeeded", "username", creds.Username)
	f.notifier.Success("Login successful")
	f.nav.Navigate(flows.RouteProfile)
	return nil
}

func (f *Flow) fail(msg string) {
	f.mu.Lock()
	failure := State{Status: Failure, Message: msg}
	obs := f.setState(failure)
	f.mu.Unlock()

	publish(obs, failure)
	f.notifier.Error("Login failed: " + msg)
}

// failureMessage prefers the server-supplied reason.
func failureMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return flows.MsgLoginFailedDefault
}
