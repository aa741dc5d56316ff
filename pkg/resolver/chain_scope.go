package resolver

import (
	"strings"
)

// ChainScope implements CandidateSource over a chain of scopes.  Scopes may
// be added in any order; the resolver orders candidates by key, not by their
// position in the chain.
type ChainScope struct {
	chain []Scope
}

func NewChainScope(chain ...Scope) *ChainScope {
	return &ChainScope{
		chain: chain,
	}
}

// Add appends a scope to the chain.
func (r *ChainScope) Add(scope Scope) {
	r.chain = append(r.chain, scope)
}

// Len returns the number of scopes in the chain.
func (r *ChainScope) Len() int {
	return len(r.chain)
}

// Candidates implements the CandidateSource interface
func (r *ChainScope) Candidates(name string) []*Candidate {
	var candidates []*Candidate
	for _, next := range r.chain {
		candidates = append(candidates, next.Candidates(name)...)
	}
	return candidates
}

// String implements the fmt.Stringer interface
func (r *ChainScope) String() string {
	var buf strings.Builder
	for _, next := range r.chain {
		buf.WriteString(next.String())
		buf.WriteRune('\n')
	}
	return buf.String()
}
