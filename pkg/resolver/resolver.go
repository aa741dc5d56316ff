package resolver

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Result is a successful resolution.
type Result struct {
	// Candidate is the winning candidate.
	Candidate *Candidate
	// Bucket is the tower level the candidate was found at.
	Bucket *Bucket
	// Walked is the number of tower levels visited, including the winning
	// one.
	Walked int
}

type ResolverOption func(*Resolver) *Resolver

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.logger = logger
		return r
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(metrics *Metrics) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.metrics = metrics
		return r
	}
}

// WithAccessibility sets the accessibility predicate.  Applicable but
// inaccessible candidates never win; they are only reported when nothing
// else is found.
func WithAccessibility(accessible func(*Candidate) bool) ResolverOption {
	return func(r *Resolver) *Resolver {
		r.accessible = accessible
		return r
	}
}

// Resolver picks the winning candidate for a name by walking tower levels
// from the highest priority to the lowest.
type Resolver struct {
	logger     zerolog.Logger
	metrics    *Metrics
	accessible func(*Candidate) bool
}

// NewResolver constructs a new Resolver with the given options.
func NewResolver(options ...ResolverOption) *Resolver {
	r := &Resolver{
		logger:     zerolog.Nop(),
		accessible: func(*Candidate) bool { return true },
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

// Resolve resolves name against the candidates of source.  A nil applicable
// accepts every candidate.
func (r *Resolver) Resolve(ctx context.Context, name string, source CandidateSource, applicable func(*Candidate) bool) (*Result, error) {
	return r.ResolveCandidates(ctx, name, source.Candidates(name), applicable)
}

// ResolveCandidates resolves name against an explicit candidate list.
// Candidates whose name differs from name are ignored.
//
// Levels are visited in ascending key order.  The first level holding an
// applicable and accessible candidate wins; if it holds more than one the
// result is an *AmbiguousCandidateError.  When nothing wins, the first level
// with applicable but inaccessible candidates is reported as an
// *InaccessibleCandidateError, and otherwise ErrCandidateNotFound is
// returned.
func (r *Resolver) ResolveCandidates(ctx context.Context, name string, candidates []*Candidate, applicable func(*Candidate) bool) (*Result, error) {
	if applicable == nil {
		applicable = func(*Candidate) bool { return true }
	}

	buckets := NewBuckets()
	var considered int
	for _, c := range candidates {
		if c.Name != name {
			continue
		}
		buckets.Add(c)
		considered++
	}

	var walked int
	var inaccessible []*Candidate
	for _, bucket := range buckets.Sorted() {
		if err := ctx.Err(); err != nil {
			r.metrics.observe(OutcomeCanceled, walked, considered)
			return nil, err
		}
		walked++

		var winners []*Candidate
		var hidden []*Candidate
		for _, c := range bucket.Candidates {
			if !applicable(c) {
				continue
			}
			if !r.accessible(c) {
				hidden = append(hidden, c)
				continue
			}
			winners = append(winners, c)
		}

		r.logger.Debug().
			Str("name", name).
			Stringer("level", bucket.Key).
			Int("candidates", len(bucket.Candidates)).
			Int("applicable", len(winners)).
			Int("inaccessible", len(hidden)).
			Msg("visiting tower level")

		switch len(winners) {
		case 0:
			if inaccessible == nil && len(hidden) > 0 {
				inaccessible = hidden
			}
			continue
		case 1:
			r.metrics.observe(OutcomeResolved, walked, considered)
			return &Result{Candidate: winners[0], Bucket: bucket, Walked: walked}, nil
		default:
			r.metrics.observe(OutcomeAmbiguous, walked, considered)
			return nil, &AmbiguousCandidateError{Name: name, Key: bucket.Key, Candidates: winners}
		}
	}

	if len(inaccessible) > 0 {
		r.metrics.observe(OutcomeInaccessible, walked, considered)
		return nil, &InaccessibleCandidateError{Name: name, Candidates: inaccessible}
	}
	r.metrics.observe(OutcomeNotFound, walked, considered)
	return nil, fmt.Errorf("%q: %w", name, ErrCandidateNotFound)
}
