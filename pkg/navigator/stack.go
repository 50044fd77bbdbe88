package navigator

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

// PathInfo is one requested entry of a reconciliation pass.
type PathInfo struct {
	Name   string
	Params any

	ref *Destination // existing record this entry stands for, if any
}

// pathOf returns the entry that keeps d in place.
func pathOf(d *Destination) PathInfo {
	return PathInfo{Name: d.name, Params: d.params, ref: d}
}

// Stack is the ordered list of destinations; the last one is the top.
// Records removed by a reconciliation pass are kept in a backup until their
// exit animation completes, so a quick re-add reuses their content.
type Stack struct {
	entries  []*Destination
	backup   []*Destination
	provider ContentProvider
}

// NewStack creates an empty stack that materializes content through provider.
func NewStack(provider ContentProvider) *Stack {
	return &Stack{
		entries:  make([]*Destination, 0),
		provider: provider,
	}
}

// Reconcile replaces the stack with the requested sequence.
//
// Each entry resolves, in order of preference, to the record it references,
// an unclaimed record on the stack with the same name, a backup record with
// the same name, or newly materialized content. When several entries share a
// name, later entries claim reusable records first. With replace set, the
// last entry always gets a new record.
//
// On error the stack is left unchanged.
func (s *Stack) Reconcile(requested []PathInfo, replace bool) ([]*Destination, error) {
	n := len(requested)
	result := make([]*Destination, n)
	claimed := make(map[*Destination]bool, n)
	fresh := func(i int) bool { return replace && i == n-1 }

	for i, entry := range requested {
		if entry.ref == nil || fresh(i) || claimed[entry.ref] || s.IndexOf(entry.ref) < 0 {
			continue
		}
		result[i] = entry.ref
		claimed[entry.ref] = true
	}

	for i := n - 1; i >= 0; i-- {
		if result[i] != nil || fresh(i) {
			continue
		}
		if d := lastUnclaimed(s.entries, requested[i].Name, claimed); d != nil {
			result[i] = d
			claimed[d] = true
		}
	}

	var revived []*Destination
	for i := n - 1; i >= 0; i-- {
		if result[i] != nil || fresh(i) {
			continue
		}
		if d := lastUnclaimed(s.backup, requested[i].Name, claimed); d != nil {
			result[i] = d
			claimed[d] = true
			revived = append(revived, d)
		}
	}

	for i, entry := range requested {
		if result[i] != nil {
			continue
		}
		content, err := s.materialize(entry.Name, entry.Params)
		if err != nil {
			return nil, err
		}
		result[i] = newDestination(entry.Name, entry.Params, content)
	}

	for i, d := range result {
		d.params = requested[i].Params
	}

	for _, d := range revived {
		s.removeBackup(d)
		d.inBackup = false
		d.st.cancel()
	}

	for _, d := range s.entries {
		if !claimed[d] {
			d.inBackup = true
			s.backup = append(s.backup, d)
		}
	}

	s.entries = result
	return s.Destinations(), nil
}

func (s *Stack) materialize(name string, params any) (Content, error) {
	if s.provider == nil {
		return Content{}, NewRouteError(name, "", nil)
	}
	content, err := s.provider.Materialize(name, params)
	if errors.Is(err, ErrRouteNotFound) {
		return Content{}, NewRouteError(name, s.suggest(name), err)
	}
	if err != nil {
		return Content{}, fmt.Errorf("navigator: materialize %q: %w", name, err)
	}
	return content, nil
}

// suggest returns the closest known route name, if the provider can list them.
func (s *Stack) suggest(name string) string {
	lister, ok := s.provider.(RouteLister)
	if !ok {
		return ""
	}
	return ClosestRoute(name, lister.Routes())
}

// ClosestRoute returns the candidate with the smallest edit distance to name,
// or "" when nothing is reasonably close.
func ClosestRoute(name string, candidates []string) string {
	best, bestDist := "", -1
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		dist := levenshtein.ComputeDistance(name, candidate)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

func lastUnclaimed(list []*Destination, name string, claimed map[*Destination]bool) *Destination {
	for i := len(list) - 1; i >= 0; i-- {
		if d := list[i]; d.name == name && !claimed[d] {
			return d
		}
	}
	return nil
}

func (s *Stack) removeBackup(d *Destination) bool {
	for i, b := range s.backup {
		if b == d {
			s.backup = append(s.backup[:i], s.backup[i+1:]...)
			return true
		}
	}
	return false
}

// Release drops d from the backup once its exit animation has completed.
// It reports false if d was revived in the meantime.
func (s *Stack) Release(d *Destination) bool {
	if !s.removeBackup(d) {
		return false
	}
	d.inBackup = false
	return true
}

// InBackup reports whether d was removed but not yet released.
func (s *Stack) InBackup(d *Destination) bool {
	return d != nil && d.inBackup
}

// Backup returns the removed records still awaiting release.
func (s *Stack) Backup() []*Destination {
	out := make([]*Destination, len(s.backup))
	copy(out, s.backup)
	return out
}

// Top returns the top destination, or nil if the stack is empty.
func (s *Stack) Top() *Destination {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// IndexOf returns the position of d, or -1 if it is not on the stack.
func (s *Stack) IndexOf(d *Destination) int {
	if d == nil {
		return -1
	}
	for i, e := range s.entries {
		if e == d {
			return i
		}
	}
	return -1
}

// Find returns the index of the topmost destination named name, or -1.
func (s *Stack) Find(name string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].name == name {
			return i
		}
	}
	return -1
}

// At returns the destination at index i, or nil when out of range.
func (s *Stack) At(i int) *Destination {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// Len returns the number of destinations on the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsEmpty returns true if the stack has no destinations.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Names returns the destination names from bottom to top.
func (s *Stack) Names() []string {
	names := make([]string, len(s.entries))
	for i, d := range s.entries {
		names[i] = d.name
	}
	return names
}

// Destinations returns a copy of the stack from bottom to top.
func (s *Stack) Destinations() []*Destination {
	out := make([]*Destination, len(s.entries))
	copy(out, s.entries)
	return out
}

// Paths returns the current stack as reconciliation entries.
func (s *Stack) Paths() []PathInfo {
	paths := make([]PathInfo, len(s.entries))
	for i, d := range s.entries {
		paths[i] = pathOf(d)
	}
	return paths
}

// Reset empties the stack and the backup without animating anything.
func (s *Stack) Reset() {
	for _, d := range s.backup {
		d.inBackup = false
	}
	s.entries = s.entries[:0]
	s.backup = nil
}
