package resolver

import (
	"fmt"

	"github.com/stackb/scoperank/pkg/tower"
	"github.com/stackb/scoperank/pkg/visibility"
)

// Candidate is a declaration found in some scope that may satisfy a name
// lookup.
type Candidate struct {
	// Name is the simple name the candidate is found under.
	Name string
	// Origin is a human readable description of where the candidate comes
	// from, such as "local foo" or "member of Base".
	Origin string
	// Key is the tower priority of the scope the candidate was found in.
	Key tower.Key
	// Visibility is the effective visibility of the candidate.  A nil value
	// is treated as public.
	Visibility visibility.Effective
	// Declared is where the candidate's declaration lives.
	Declared visibility.Origin
}

// String implements fmt.Stringer
func (c *Candidate) String() string {
	vis := visibility.Public
	if c.Visibility != nil {
		vis = c.Visibility
	}
	if c.Origin == "" {
		return fmt.Sprintf("%s (%v)", c.Name, vis)
	}
	return fmt.Sprintf("%s (%v) %s", c.Name, vis, c.Origin)
}

// CandidateSource provides candidates for a name.
type CandidateSource interface {
	// Candidates returns the candidates declared under the given name.  The
	// order of the result is not significant.
	Candidates(name string) []*Candidate
}

// Accessibility returns a predicate that checks candidates against the
// lattice's accessibility rules from the given use site.
func Accessibility(lattice *visibility.Lattice, site visibility.UseSite) func(*Candidate) bool {
	return func(c *Candidate) bool {
		if c.Visibility == nil {
			return true
		}
		return lattice.IsAccessible(c.Visibility, c.Declared, site)
	}
}
