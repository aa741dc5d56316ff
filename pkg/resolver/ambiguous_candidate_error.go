package resolver

import (
	"fmt"

	"github.com/stackb/scoperank/pkg/tower"
)

// AmbiguousCandidateError is returned when more than one applicable candidate
// is found at the winning tower level.
type AmbiguousCandidateError struct {
	// Name is the name that is ambiguous.
	Name string
	// Key is the tower level where the ambiguity was found.
	Key tower.Key
	// Candidates is the list of equally good candidates.
	Candidates []*Candidate
}

func (e *AmbiguousCandidateError) Error() string {
	return fmt.Sprintf("found multiple candidates for %q at %v: %v", e.Name, e.Key, e.Candidates)
}
