package mocks

import (
	"testing"

	resolver "github.com/stackb/scoperank/pkg/resolver"
	mock "github.com/stretchr/testify/mock"
)

// LookupCapturer records the names looked up in a mock scope.
type LookupCapturer struct {
	Scope *Scope
	Got   []string
}

func (k *LookupCapturer) capture(name string) bool {
	k.Got = append(k.Got, name)
	return true
}

// NewLookupCapturer returns a capturer whose scope answers every lookup
// with the given candidates.
func NewLookupCapturer(t *testing.T, candidates ...*resolver.Candidate) *LookupCapturer {
	c := &LookupCapturer{
		Scope: NewScope(t),
	}

	c.Scope.
		On("Candidates", mock.MatchedBy(c.capture)).
		Maybe().
		Return(candidates)

	return c
}
