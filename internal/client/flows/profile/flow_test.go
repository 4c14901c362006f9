package profile

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophprofile/internal/client/client"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
	"github.com/dmitrijs2005/gophprofile/internal/client/flows/flowstest"
	"github.com/dmitrijs2005/gophprofile/internal/client/models"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu      sync.Mutex
	tokens  []string
	respond func(call int) (models.User, error)
}

func (f *fakeFetcher) Me(_ context.Context, token string) (models.User, error) {
	f.mu.Lock()
	f.tokens = append(f.tokens, token)
	call := len(f.tokens)
	respond := f.respond
	f.mu.Unlock()

	return respond(call)
}

func (f *fakeFetcher) Tokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.tokens...)
}

func returns(user models.User, err error) func(int) (models.User, error) {
	return func(int) (models.User, error) { return user, err }
}

var (
	emily   = models.User{ID: 1, Username: "emilys", Email: "emily.johnson@x.dummyjson.com", FirstName: "Emily", LastName: "Johnson"}
	michael = models.User{ID: 2, Username: "michaelw", Email: "michael.williams@x.dummyjson.com", FirstName: "Michael", LastName: "Williams"}
)

type fixture struct {
	api   *fakeFetcher
	store *flowstest.Store
	nav   *flowstest.Navigator
	note  *flowstest.Notifier
	flow  *Flow
}

func newFixture(storedToken string) *fixture {
	fx := &fixture{
		api:   &fakeFetcher{respond: returns(emily, nil)},
		store: flowstest.NewStore(storedToken),
		nav:   &flowstest.Navigator{},
		note:  &flowstest.Notifier{},
	}
	fx.flow = New(fx.api, fx.store, fx.nav, fx.note, logging.Discard())
	return fx
}

func TestFlow_InitialStateIsEmpty(t *testing.T) {
	fx := newFixture("tok")
	assert.Equal(t, Empty, fx.flow.State().Status)
	assert.False(t, fx.flow.State().HasUser())
}

func TestFlow_EnterWithoutTokenMakesNoRequest(t *testing.T) {
	fx := newFixture("")

	err := fx.flow.Enter(context.Background())

	var missing *flows.MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Empty(t, fx.api.Tokens())
	assert.Equal(t, State{Status: Unauthenticated, Message: "No token found. Please log in."}, fx.flow.State())
	assert.Empty(t, fx.nav.Routes())
}

func TestFlow_EnterLoadsUser(t *testing.T) {
	fx := newFixture("tok")

	var seen []Status
	fx.flow.Subscribe(func(s State) { seen = append(seen, s.Status) })

	require.NoError(t, fx.flow.Enter(context.Background()))

	assert.Equal(t, []string{"tok"}, fx.api.Tokens())
	assert.Equal(t, []Status{Loading, Loaded}, seen)
	assert.Equal(t, State{Status: Loaded, User: emily}, fx.flow.State())
	assert.True(t, fx.flow.State().HasUser())
	assert.Empty(t, fx.note.Errors())
}

func TestFlow_RefreshFailure(t *testing.T) {
	fx := newFixture("tok")
	fx.api.respond = returns(models.User{}, &client.APIError{Status: 401})

	var seen []Status
	fx.flow.Subscribe(func(s State) { seen = append(seen, s.Status) })

	err := fx.flow.Refresh(context.Background())

	var fetchErr *flows.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, []Status{Loading, Error}, seen)
	assert.Equal(t, State{Status: Error, Message: "Failed to fetch user details"}, fx.flow.State())
	assert.Equal(t, []string{"Failed to fetch user details"}, fx.note.Errors())

	// the token is left alone on fetch failure
	_, ok := fx.store.Token()
	assert.True(t, ok)
	assert.Empty(t, fx.nav.Routes())
}

func TestFlow_RefreshDiscardsPreviousRecord(t *testing.T) {
	fx := newFixture("tok")
	require.NoError(t, fx.flow.Enter(context.Background()))

	var seen []State
	fx.flow.Subscribe(func(s State) { seen = append(seen, s) })
	fx.api.respond = returns(models.User{}, client.ErrUnavailable)

	_ = fx.flow.Refresh(context.Background())

	require.Len(t, seen, 2)
	assert.Equal(t, State{Status: Loading}, seen[0])
	assert.False(t, fx.flow.State().HasUser())
	assert.Equal(t, models.User{}, fx.flow.State().User)
}

func TestFlow_RefreshReplacesRecord(t *testing.T) {
	fx := newFixture("tok")
	require.NoError(t, fx.flow.Enter(context.Background()))

	fx.api.respond = returns(michael, nil)
	require.NoError(t, fx.flow.Refresh(context.Background()))

	assert.Equal(t, michael, fx.flow.State().User)
	assert.Len(t, fx.api.Tokens(), 2)
}

func TestFlow_RefreshStoreReadFailure(t *testing.T) {
	fx := newFixture("tok")
	fx.store.GetErr = errors.New("database is locked")

	err := fx.flow.Refresh(context.Background())

	var fetchErr *flows.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Empty(t, fx.api.Tokens())
	assert.Equal(t, Error, fx.flow.State().Status)
}

func TestFlow_StaleResponseIsDiscarded(t *testing.T) {
	fx := newFixture("tok")
	started := make(chan struct{})
	gate := make(chan struct{})
	fx.api.respond = func(call int) (models.User, error) {
		if call == 1 {
			close(started)
			<-gate
			return emily, nil
		}
		return michael, nil
	}

	first := make(chan error, 1)
	go func() { first <- fx.flow.Refresh(context.Background()) }()
	<-started

	require.NoError(t, fx.flow.Refresh(context.Background()))
	assert.Equal(t, michael, fx.flow.State().User)

	close(gate)
	assert.ErrorIs(t, <-first, flows.ErrSuperseded)
	assert.Equal(t, State{Status: Loaded, User: michael}, fx.flow.State())
}

func TestFlow_StaleFailureIsDiscarded(t *testing.T) {
	fx := newFixture("tok")
	started := make(chan struct{})
	gate := make(chan struct{})
	fx.api.respond = func(call int) (models.User, error) {
		if call == 1 {
			close(started)
			<-gate
			return models.User{}, client.ErrUnavailable
		}
		return michael, nil
	}

	first := make(chan error, 1)
	go func() { first <- fx.flow.Refresh(context.Background()) }()
	<-started

	require.NoError(t, fx.flow.Refresh(context.Background()))
	close(gate)

	assert.ErrorIs(t, <-first, flows.ErrSuperseded)
	assert.Equal(t, Loaded, fx.flow.State().Status)
	assert.Empty(t, fx.note.Errors())
}

func TestFlow_Logout(t *testing.T) {
	fx := newFixture("tok")
	require.NoError(t, fx.flow.Enter(context.Background()))

	require.NoError(t, fx.flow.Logout(context.Background()))

	_, ok := fx.store.Token()
	assert.False(t, ok)
	assert.Equal(t, []flows.Route{flows.RouteLogin}, fx.nav.Routes())
	assert.Equal(t, []string{"Logout successful"}, fx.note.Successes())
	assert.Equal(t, emily, fx.flow.State().User)

	err := fx.flow.Enter(context.Background())
	assert.ErrorAs(t, err, new(*flows.MissingCredentialError))
	assert.Len(t, fx.api.Tokens(), 1)
}

func TestFlow_LogoutWithoutToken(t *testing.T) {
	fx := newFixture("")

	require.NoError(t, fx.flow.Logout(context.Background()))
	require.NoError(t, fx.flow.Logout(context.Background()))

	assert.Equal(t, []flows.Route{flows.RouteLogin, flows.RouteLogin}, fx.nav.Routes())
	assert.Empty(t, fx.note.Errors())
}

func TestFlow_LogoutStorageFailure(t *testing.T) {
	fx := newFixture("tok")
	fx.store.DeleteErr = errors.New("readonly database")

	err := fx.flow.Logout(context.Background())

	assert.EqualError(t, err, "readonly database")
	assert.Empty(t, fx.nav.Routes())
	assert.Empty(t, fx.note.Successes())
	assert.Equal(t, []string{"Logout failed. Please try again."}, fx.note.Errors())
}

func TestFlow_FailedLogoutLetsInFlightFetchSettle(t *testing.T) {
	fx := newFixture("tok")
	fx.store.DeleteErr = errors.New("readonly database")
	started := make(chan struct{})
	gate := make(chan struct{})
	fx.api.respond = func(int) (models.User, error) {
		close(started)
		<-gate
		return emily, nil
	}

	fetch := make(chan error, 1)
	go func() { fetch <- fx.flow.Refresh(context.Background()) }()
	<-started

	assert.EqualError(t, fx.flow.Logout(context.Background()), "readonly database")
	close(gate)

	require.NoError(t, <-fetch)
	assert.Equal(t, State{Status: Loaded, User: emily}, fx.flow.State())
	assert.Empty(t, fx.nav.Routes())
}

func TestFlow_LogoutInvalidatesInFlightFetch(t *testing.T) {
	fx := newFixture("tok")
	started := make(chan struct{})
	gate := make(chan struct{})
	fx.api.respond = func(int) (models.User, error) {
		close(started)
		<-gate
		return emily, nil
	}

	fetch := make(chan error, 1)
	go func() { fetch <- fx.flow.Refresh(context.Background()) }()
	<-started

	require.NoError(t, fx.flow.Logout(context.Background()))
	close(gate)

	assert.ErrorIs(t, <-fetch, flows.ErrSuperseded)
	assert.Equal(t, Loading, fx.flow.State().Status)
	assert.False(t, fx.flow.State().HasUser())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "loaded", Loaded.String())
	assert.Equal(t, "error", Error.String())
	assert.Equal(t, "unauthenticated", Unauthenticated.String())
	assert.Equal(t, "unknown", Status(9).String())
}
