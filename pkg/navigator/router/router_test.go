package router

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

func TestMaterializeDefaultsTitleToName(t *testing.T) {
	r := New().Register("about", func(any) (navigator.Content, error) {
		return navigator.Content{Root: 7}, nil
	})

	content, err := r.Materialize("about", nil)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if content.Title != "about" {
		t.Fatalf("title mismatch: %s", content.Title)
	}
	if content.Root != 7 {
		t.Fatalf("root mismatch: %d", content.Root)
	}
}

func TestMaterializeWrapsBuildErrors(t *testing.T) {
	boom := errors.New("boom")
	r := New().Register("broken", func(any) (navigator.Content, error) {
		return navigator.Content{}, boom
	})

	_, err := r.Materialize("broken", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected build error to be wrapped, got %v", err)
	}
	if errors.Is(err, navigator.ErrRouteNotFound) {
		t.Fatalf("build error must not look like an unknown route")
	}
}

func TestRouterSuggestionThroughStack(t *testing.T) {
	r := New().
		Register("library", func(any) (navigator.Content, error) { return navigator.Content{Root: 1}, nil }).
		Register("settings", func(any) (navigator.Content, error) { return navigator.Content{Root: 2}, nil })

	stack := navigator.NewStack(r)
	_, err := stack.Reconcile([]navigator.PathInfo{{Name: "libary"}}, false)

	var routeErr *navigator.RouteError
	if !errors.As(err, &routeErr) {
		t.Fatalf("expected RouteError, got %v", err)
	}
	if routeErr.Suggestion != "library" {
		t.Fatalf("suggestion mismatch: %q", routeErr.Suggestion)
	}
	if stack.Len() != 0 {
		t.Fatalf("stack should stay empty, got %d", stack.Len())
	}
}
