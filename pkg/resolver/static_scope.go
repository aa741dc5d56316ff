package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stackb/scoperank/pkg/tower"
)

// StaticScope implements Scope over a fixed map of candidates.
type StaticScope struct {
	name       string
	key        tower.Key
	candidates map[string][]*Candidate
}

// NewStaticScope constructs a new StaticScope with the given name and key.
func NewStaticScope(name string, key tower.Key) *StaticScope {
	return &StaticScope{
		name:       name,
		key:        key,
		candidates: make(map[string][]*Candidate),
	}
}

// Name implements part of the Scope interface.
func (s *StaticScope) Name() string {
	return s.name
}

// Key implements part of the Scope interface.
func (s *StaticScope) Key() tower.Key {
	return s.key
}

// PutCandidate adds a candidate to the scope.  The candidate key is
// overwritten with the scope key, boosted by the given invoke priority.
func (s *StaticScope) PutCandidate(c *Candidate, invoke tower.InvokeResolvePriority) error {
	if c.Name == "" {
		return fmt.Errorf("scope %s: candidate name must not be empty", s.name)
	}
	c.Key = s.key.WithInvokePriority(invoke)
	s.candidates[c.Name] = append(s.candidates[c.Name], c)
	return nil
}

// Candidates implements part of the Scope interface.
func (s *StaticScope) Candidates(name string) []*Candidate {
	return s.candidates[name]
}

// String implements the fmt.Stringer interface
func (s *StaticScope) String() string {
	names := make([]string, 0, len(s.candidates))
	for name := range s.candidates {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("%s %v [%s]", s.name, s.key, strings.Join(names, " "))
}
