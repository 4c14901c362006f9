package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophprofile/internal/client/flows"
	"github.com/dmitrijs2005/gophprofile/internal/logging"
)

// Router tracks the visible screen. The REPL picks up route changes before
// it prints the next prompt.
type Router struct {
	mu      sync.Mutex
	current flows.Route
	log     logging.Logger
}

func NewRouter(logger logging.Logger) *Router {
	return &Router{log: logger}
}

func (r *Router) Navigate(route flows.Route) {
	r.mu.Lock()
	prev := r.current
	r.current = route
	r.mu.Unlock()

	r.log.Debug(context.Background(), "navigate", "from", prev, "to", route)
}

func (r *Router) Current() flows.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
