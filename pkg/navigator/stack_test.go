package navigator

import (
	"errors"
	"testing"
)

func names(paths ...string) []PathInfo {
	out := make([]PathInfo, len(paths))
	for i, p := range paths {
		out[i] = PathInfo{Name: p}
	}
	return out
}

func TestReconcileReusesByRefAndName(t *testing.T) {
	p := newFakeProvider("home", "detail", "settings")
	s := NewStack(p)

	if _, err := s.Reconcile(names("home", "detail"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	home, detail := s.At(0), s.At(1)

	if _, err := s.Reconcile(append(s.Paths(), PathInfo{Name: "settings"}), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if s.At(0) != home || s.At(1) != detail {
		t.Fatalf("existing records were not reused")
	}
	if p.calls != 3 {
		t.Fatalf("materialize calls mismatch: got %d want 3", p.calls)
	}

	settings := s.Top()
	if _, err := s.Reconcile(names("home", "detail"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if s.At(0) != home || s.At(1) != detail {
		t.Fatalf("name match did not reuse records")
	}
	if !s.InBackup(settings) {
		t.Fatalf("removed record should be in backup")
	}

	if _, err := s.Reconcile(names("home", "detail", "settings"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if s.Top() != settings {
		t.Fatalf("backup record was not revived")
	}
	if s.InBackup(settings) || len(s.Backup()) != 0 {
		t.Fatalf("revived record still in backup")
	}
	if p.calls != 3 {
		t.Fatalf("revive should not materialize: got %d calls", p.calls)
	}
}

func TestReconcileDuplicateNamesLastWins(t *testing.T) {
	s := NewStack(newFakeProvider("home", "detail"))
	if _, err := s.Reconcile(names("home", "detail", "home"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	first, upper := s.At(0), s.At(2)
	if first == upper {
		t.Fatalf("standard entries must be distinct records")
	}

	if _, err := s.Reconcile(names("home"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if s.Top() != upper {
		t.Fatalf("expected the topmost record to be kept")
	}
	if !s.InBackup(first) {
		t.Fatalf("lower duplicate should be in backup")
	}
}

func TestReconcileUnknownRouteLeavesStackUnchanged(t *testing.T) {
	s := NewStack(newFakeProvider("home", "settings"))
	if _, err := s.Reconcile(names("home"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	before := s.Destinations()

	_, err := s.Reconcile(names("setings"), false)
	if !IsRouteNotFound(err) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
	var routeErr *RouteError
	if !errors.As(err, &routeErr) {
		t.Fatalf("expected *RouteError, got %T", err)
	}
	if routeErr.Suggestion != "settings" {
		t.Fatalf("suggestion mismatch: %q", routeErr.Suggestion)
	}

	if s.Len() != 1 || s.Top() != before[0] {
		t.Fatalf("stack changed after failed reconcile: %v", s.Names())
	}
	if len(s.Backup()) != 0 {
		t.Fatalf("failed reconcile must not move records to backup")
	}
}

func TestReconcileReplaceAlwaysCreatesRecord(t *testing.T) {
	s := NewStack(newFakeProvider("home", "detail"))
	if _, err := s.Reconcile(names("home", "detail"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	old := s.Top()

	paths := s.Paths()
	paths[1] = PathInfo{Name: "detail", Params: 42}
	if _, err := s.Reconcile(paths, true); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if s.Top() == old || s.Top().ID() == old.ID() {
		t.Fatalf("replace reused the old record")
	}
	if s.Top().Params() != 42 {
		t.Fatalf("params mismatch: %v", s.Top().Params())
	}
	if !s.InBackup(old) {
		t.Fatalf("replaced record should be in backup")
	}
}

func TestReconcileUpdatesParamsOnReuse(t *testing.T) {
	s := NewStack(newFakeProvider("home"))
	if _, err := s.Reconcile([]PathInfo{{Name: "home", Params: "a"}}, false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	home := s.Top()
	if _, err := s.Reconcile([]PathInfo{{Name: "home", Params: "b"}}, false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if s.Top() != home || home.Params() != "b" {
		t.Fatalf("expected reused record with new params, got %v", home.Params())
	}
}

func TestStackReleaseAndReset(t *testing.T) {
	s := NewStack(newFakeProvider("home", "detail"))
	if _, err := s.Reconcile(names("home", "detail"), false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	detail := s.Top()
	if _, err := s.Reconcile(s.Paths()[:1], false); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	if !s.Release(detail) {
		t.Fatalf("expected release to succeed")
	}
	if s.Release(detail) {
		t.Fatalf("second release should report false")
	}

	s.Reset()
	if !s.IsEmpty() || s.Top() != nil || s.Find("home") != -1 {
		t.Fatalf("reset left entries: %v", s.Names())
	}
}

func TestClosestRoute(t *testing.T) {
	routes := []string{"library", "settings", "about"}
	cases := map[string]string{
		"libary":   "library",
		"setings":  "settings",
		"abot":     "about",
		"zzzzzzzz": "",
		"library":  "",
	}
	for in, want := range cases {
		if got := ClosestRoute(in, routes); got != want {
			t.Fatalf("ClosestRoute(%q) mismatch: got %q want %q", in, got, want)
		}
	}
}

func TestReconcileBuildErrorIsNotRouteNotFound(t *testing.T) {
	boom := errors.New("boom")
	s := NewStack(ContentProviderFunc(func(string, any) (Content, error) {
		return Content{}, boom
	}))
	_, err := s.Reconcile(names("home"), false)
	if !errors.Is(err, boom) || IsRouteNotFound(err) {
		t.Fatalf("build error mismatch: %v", err)
	}
	if !s.IsEmpty() {
		t.Fatalf("stack must stay empty")
	}
}
