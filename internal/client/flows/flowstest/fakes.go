// Package flowstest provides recording fakes for the flow collaborators.
package flowstest

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
)

// Store is an in-memory TokenStore with injectable failures and call
// counters.
type Store struct {
	mu        sync.Mutex
	token     string
	has       bool
	GetErr    error
	SetErr    error
	DeleteErr error
	Gets      int
	Sets      int
	Deletes   int
}

// NewStore returns a store holding token, or an empty one when token is "".
func NewStore(token string) *Store {
	return &Store{token: token, has: token != ""}
}

func (s *Store) Get(context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Gets++
	if s.GetErr != nil {
		return "", false, s.GetErr
	}
	return s.token, s.has, nil
}

func (s *Store) Set(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sets++
	if s.SetErr != nil {
		return s.SetErr
	}
	s.token, s.has = token, true
	return nil
}

func (s *Store) Delete(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deletes++
	if s.DeleteErr != nil {
		return s.DeleteErr
	}
	s.token, s.has = "", false
	return nil
}

// Token returns the stored token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.has
}

// Navigator records every navigation.
type Navigator struct {
	mu     sync.Mutex
	routes []flows.Route
}

func (n *Navigator) Navigate(route flows.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

func (n *Navigator) Routes() []flows.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]flows.Route(nil), n.routes...)
}

// Notifier records every message by kind.
type Notifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *Notifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *Notifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *Notifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *Notifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}
