package scenario

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/stackb/scoperank/pkg/resolver"
	"github.com/stackb/scoperank/pkg/tower"
	"github.com/stackb/scoperank/pkg/visibility"
)

type EvaluatorOption func(*Evaluator) *Evaluator

// WithLogger sets the logger of the evaluator and of the lattice and
// resolver it creates.
func WithLogger(logger zerolog.Logger) EvaluatorOption {
	return func(e *Evaluator) *Evaluator {
		e.logger = logger
		return e
	}
}

// WithInterner shares a key interner between evaluators.
func WithInterner(interner *tower.Interner) EvaluatorOption {
	return func(e *Evaluator) *Evaluator {
		e.interner = interner
		return e
	}
}

// WithMetrics sets the metrics of the resolvers created by the evaluator.
func WithMetrics(metrics *resolver.Metrics) EvaluatorOption {
	return func(e *Evaluator) *Evaluator {
		e.metrics = metrics
		return e
	}
}

// Evaluator computes effective visibilities and resolves calls of a
// scenario.
type Evaluator struct {
	scenario  *Scenario
	hierarchy *Hierarchy
	lattice   *visibility.Lattice
	interner  *tower.Interner
	metrics   *resolver.Metrics
	logger    zerolog.Logger
}

// NewEvaluator constructs an Evaluator for the given scenario.
func NewEvaluator(s *Scenario, options ...EvaluatorOption) (*Evaluator, error) {
	e := &Evaluator{
		scenario: s,
		logger:   zerolog.Nop(),
	}
	for _, opt := range options {
		e = opt(e)
	}
	if e.interner == nil {
		e.interner = tower.NewInterner()
	}

	hierarchy, err := NewHierarchy(s.Types)
	if err != nil {
		return nil, err
	}
	e.hierarchy = hierarchy
	e.lattice = visibility.NewLattice(visibility.NewMemoOracle(hierarchy), visibility.WithLogger(e.logger))
	return e, nil
}

// Hierarchy returns the type hierarchy of the scenario.
func (e *Evaluator) Hierarchy() *Hierarchy {
	return e.hierarchy
}

// Lattice returns the lattice backed by the scenario hierarchy.
func (e *Evaluator) Lattice() *visibility.Lattice {
	return e.lattice
}

// EffectiveVisibility computes the effective visibility of a declaration.
func (e *Evaluator) EffectiveVisibility(d *Declaration) (visibility.Effective, error) {
	return e.lattice.EffectiveVisibility(d.Build())
}

// Candidates converts the candidates of a call.  The returned predicate
// rejects candidates marked inapplicable.
func (e *Evaluator) Candidates(call *Call) ([]*resolver.Candidate, func(*resolver.Candidate) bool, error) {
	candidates := make([]*resolver.Candidate, 0, len(call.Candidates))
	inapplicable := make(map[*resolver.Candidate]bool)
	for i, sc := range call.Candidates {
		key, err := e.interner.Intern(sc.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("call %q candidate #%d: %w", call.Name, i, err)
		}
		c := &resolver.Candidate{
			Name:   call.Name,
			Origin: sc.Origin,
			Key:    key,
			Declared: visibility.Origin{
				Module:  sc.Module,
				Package: sc.Package,
				Owner:   sc.Owner,
			},
		}
		if sc.Visibility != visibility.VisUnknown {
			eff, err := visibility.FromSurface(sc.Visibility, typeHandle(sc.Container))
			if err != nil {
				return nil, nil, fmt.Errorf("call %q candidate #%d: %w", call.Name, i, err)
			}
			c.Visibility = eff
		}
		if sc.Inapplicable {
			inapplicable[c] = true
		}
		candidates = append(candidates, c)
	}
	return candidates, func(c *resolver.Candidate) bool { return !inapplicable[c] }, nil
}

// Resolve resolves a call from its use site.
func (e *Evaluator) Resolve(ctx context.Context, call *Call) (*resolver.Result, error) {
	candidates, applicable, err := e.Candidates(call)
	if err != nil {
		return nil, err
	}
	r := resolver.NewResolver(
		resolver.WithLogger(e.logger.With().Str("call", call.Name).Logger()),
		resolver.WithMetrics(e.metrics),
		resolver.WithAccessibility(resolver.Accessibility(e.lattice, call.Site.UseSite())),
	)
	return r.ResolveCandidates(ctx, call.Name, candidates, applicable)
}

// Buckets returns the candidates of a call grouped by tower level.
func (e *Evaluator) Buckets(call *Call) (*resolver.Buckets, error) {
	candidates, _, err := e.Candidates(call)
	if err != nil {
		return nil, err
	}
	buckets := resolver.NewBuckets()
	buckets.Add(candidates...)
	return buckets, nil
}

// Check evaluates every declaration and call that states an expectation
// and returns the mismatches.  Errors unrelated to expectations, such as a
// malformed key, are returned as is.
func (e *Evaluator) Check(ctx context.Context) ([]*MismatchError, error) {
	var mismatches []*MismatchError

	for _, d := range e.scenario.Declarations {
		got, err := e.EffectiveVisibility(d)
		if err != nil {
			return nil, fmt.Errorf("declaration %q: %w", d.Name, err)
		}
		e.logger.Debug().Str("declaration", d.Name).Stringer("effective", got).Msg("computed effective visibility")
		if d.Expect != "" && d.Expect != got.String() {
			mismatches = append(mismatches, &MismatchError{Subject: "declaration " + d.Name, Want: d.Expect, Got: got.String()})
		}
	}

	for _, call := range e.scenario.Calls {
		result, err := e.Resolve(ctx, call)
		if err != nil && !isResolutionError(err) {
			return nil, fmt.Errorf("call %q: %w", call.Name, err)
		}
		if m := checkCall(call, result, err); m != nil {
			mismatches = append(mismatches, m)
		}
	}

	return mismatches, nil
}

func checkCall(call *Call, result *resolver.Result, err error) *MismatchError {
	subject := "call " + call.Name
	switch {
	case call.ExpectError != "":
		if err == nil {
			return &MismatchError{Subject: subject, Want: "error containing " + call.ExpectError, Got: result.Candidate.Origin}
		}
		if !strings.Contains(err.Error(), call.ExpectError) {
			return &MismatchError{Subject: subject, Want: "error containing " + call.ExpectError, Got: err.Error()}
		}
	case call.Expect != "":
		if err != nil {
			return &MismatchError{Subject: subject, Want: call.Expect, Got: err.Error()}
		}
		if result.Candidate.Origin != call.Expect {
			return &MismatchError{Subject: subject, Want: call.Expect, Got: result.Candidate.Origin}
		}
	}
	return nil
}

func isResolutionError(err error) bool {
	var ambiguous *resolver.AmbiguousCandidateError
	return errors.As(err, &ambiguous) || resolver.IsNotFound(err)
}

// MismatchError reports an expectation of a scenario that does not hold.
type MismatchError struct {
	Subject string
	Want    string
	Got     string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: want %q, got %q", e.Subject, e.Want, e.Got)
}
