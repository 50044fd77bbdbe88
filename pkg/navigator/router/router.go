package router

import (
	"fmt"
	"sort"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

// BuildFunc creates the content of a destination.
// It receives the params passed to Push or Replace.
type BuildFunc func(params any) (navigator.Content, error)

// Router maps destination names to the functions that build them.
// It implements navigator.ContentProvider and navigator.RouteLister.
type Router struct {
	routes map[string]BuildFunc
}

// New creates a new Router.
func New() *Router {
	return &Router{
		routes: make(map[string]BuildFunc),
	}
}

// Register adds a destination to the router.
// Registering a name twice replaces the previous builder.
func (r *Router) Register(name string, fn BuildFunc) *Router {
	r.routes[name] = fn
	return r
}

// Has reports whether name is registered.
func (r *Router) Has(name string) bool {
	_, ok := r.routes[name]
	return ok
}

// Materialize builds the content for name.
// Unknown names return an error wrapping navigator.ErrRouteNotFound.
func (r *Router) Materialize(name string, params any) (navigator.Content, error) {
	fn, ok := r.routes[name]
	if !ok {
		return navigator.Content{}, fmt.Errorf("router: destination %q not registered: %w", name, navigator.ErrRouteNotFound)
	}

	content, err := fn(params)
	if err != nil {
		return navigator.Content{}, fmt.Errorf("router: destination %q build error: %w", name, err)
	}
	if content.Title == "" {
		content.Title = name
	}
	return content, nil
}

// Routes returns the registered names in sorted order.
func (r *Router) Routes() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
