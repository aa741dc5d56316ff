package resolver

import (
	"fmt"

	"github.com/stackb/scoperank/pkg/tower"
)

// Scope is a source of candidates at a single tower level.
type Scope interface {
	fmt.Stringer
	CandidateSource

	// Name is the name of the scope, for diagnostics.
	Name() string

	// Key is the priority of the scope.  Candidates found in the scope carry
	// this key, optionally boosted by an invoke priority.
	Key() tower.Key
}
