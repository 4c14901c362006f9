// Package profile implements the protected resource flow: it reads the
// stored token, fetches the current user, refreshes on demand and logs out.
//
// Fetches may overlap. Each one takes a ticket when it starts and only the
// newest ticket may publish its outcome; logout also invalidates outstanding
// tickets.
package profile

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// Fetcher loads the user the token belongs to.
type Fetcher interface {
	Me(ctx context.Context, token string) (models.User, error)
}

type Flow struct {
	api      Fetcher
	store    flows.TokenStore
	nav      flows.Navigator
	notifier flows.Notifier
	log      logging.Logger

	mu        sync.Mutex
	seq       uint64
	state     State
	observers []func(State)
}

func New(api Fetcher, store flows.TokenStore, nav flows.Navigator, notifier flows.Notifier, logger logging.Logger) *Flow {
	if notifier == nil {
		notifier = flows.NopNotifier{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Flow{
		api:      api,
		store:    store,
		nav:      nav,
		notifier: notifier,
		log:      logger.With("flow", "profile"),
	}
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

// Enter is the first display of the screen.
func (f *Flow) Enter(ctx context.Context) error {
	return f.Refresh(ctx)
}

// Refresh re-reads the token and re-fetches the user from scratch.
func (f *Flow) Refresh(ctx context.Context) error {
	ticket := f.begin()

	token, ok, err := f.store.Get(ctx)
	if err != nil {
		f.log.Warn(ctx, "token read failed", "error", err)
		if !f.commit(ticket, State{Status: Error, Message: flows.MsgFetchFailed}) {
			return flows.ErrSuperseded
		}
		f.notifier.Error(flows.MsgFetchFailed)
		return &flows.FetchError{Err: err}
	}
	if !ok {
		if !f.commit(ticket, State{Status: Unauthenticated, Message: flows.MsgNoCredential}) {
			return flows.ErrSuperseded
		}
		f.log.Debug(ctx, "no stored token")
		return &flows.MissingCredentialError{}
	}

	if !f.commit(ticket, State{Status: Loading}) {
		return flows.ErrSuperseded
	}

	user, err := f.api.Me(ctx, token)
	if err != nil {
		if !f.commit(ticket, State{Status: Error, Message: flows.MsgFetchFailed}) {
			f.log.Debug(ctx, "stale fetch failure dropped", "error", err)
			return flows.ErrSuperseded
		}
		f.log.Warn(ctx, "fetch failed", "error", err)
		f.notifier.Error(flows.MsgFetchFailed)
		return &flows.FetchError{Err: err}
	}

	if !f.commit(ticket, State{Status: Loaded, User: user}) {
		f.log.Debug(ctx, "stale fetch result dropped", "user_id", user.ID)
		return flows.ErrSuperseded
	}
	f.log.Debug(ctx, "user loaded", "user_id", user.ID)
	return nil
}

// Logout removes the stored token and leaves for the login screen. The
// rendered record is kept until the screen is left. Outstanding fetches are
// invalidated only once the token is gone; a failed logout lets them settle.
func (f *Flow) Logout(ctx context.Context) error {
	if err := f.store.Delete(ctx); err != nil {
		f.log.Error(ctx, "logout failed", "error", err)
		f.notifier.Error("Logout failed. Please try again.")
		return err
	}
	f.begin()

	f.log.Info(ctx, "logged out")
	f.notifier.Success("Logout successful")
	f.nav.Navigate(flows.RouteLogin)
	return nil
}

// begin invalidates all outstanding fetches and returns a fresh ticket.
func (f *Flow) begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq
}

// commit publishes s if ticket is still the newest one.
func (f *Flow) commit(ticket uint64, s State) bool {
	f.mu.Lock()
	if ticket != f.seq {
		f.mu.Unlock()
		return false
	}
	f.state = s
	obs := slices.Clone(f.observers)
	f.mu.Unlock()

	for _, fn := range obs {
		fn(s)
	}
	return true
}
