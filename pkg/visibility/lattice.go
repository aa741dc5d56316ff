package visibility

import (
	"github.com/rs/zerolog"
)

// SubtypeOracle answers subtyping questions about container types.  A false
// answer means "not known to be a subtype".
type SubtypeOracle interface {
	IsSubtypeOf(a, b TypeHandle) bool
}

// SubtypeOracleFunc adapts a function to the SubtypeOracle interface.
type SubtypeOracleFunc func(a, b TypeHandle) bool

// IsSubtypeOf implements SubtypeOracle.
func (f SubtypeOracleFunc) IsSubtypeOf(a, b TypeHandle) bool {
	return f(a, b)
}

// LatticeOption configures a Lattice.
type LatticeOption func(*Lattice) *Lattice

// WithLogger sets the logger used to trace conservative fallbacks.
func WithLogger(logger zerolog.Logger) LatticeOption {
	return func(l *Lattice) *Lattice {
		l.logger = logger
		return l
	}
}

// Lattice computes relations and meets of Effective values.  It holds no
// mutable state and is safe for concurrent use as long as its oracle is.
type Lattice struct {
	oracle SubtypeOracle
	logger zerolog.Logger
}

// NewLattice constructs a Lattice over the given oracle.  A nil oracle knows
// no subtyping relations at all.
func NewLattice(oracle SubtypeOracle, options ...LatticeOption) *Lattice {
	l := &Lattice{
		oracle: oracle,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		l = opt(l)
	}
	return l
}

// ContainerRelation compares the protected scopes of two container types.
// A subtype has the narrower scope, so a <: b yields Less.
func (l *Lattice) ContainerRelation(a, b TypeHandle) Permissiveness {
	switch {
	case a == nil || b == nil:
		return Unknown
	case a == b:
		return Same
	case l.oracle == nil:
		return Unknown
	case l.oracle.IsSubtypeOf(a, b):
		return Less
	case l.oracle.IsSubtypeOf(b, a):
		return More
	default:
		return Unknown
	}
}

// Relation compares the permissiveness of a relative to b.  It panics with
// an *InvariantError when either argument is nil.
func (l *Lattice) Relation(a, b Effective) Permissiveness {
	mustBeValid("relation", a)
	mustBeValid("relation", b)

	switch av := a.(type) {
	case privateVisibility, localVisibility:
		if isPrivateOrLocal(b) {
			return Same
		}
		return Less

	case publicVisibility:
		if b == Public {
			return Same
		}
		return More

	case internalVisibility, packagePrivateVisibility:
		switch b.(type) {
		case publicVisibility:
			return Less
		case privateVisibility, localVisibility, internalProtectedBoundVisibility, InternalProtected:
			return More
		case internalVisibility, packagePrivateVisibility:
			return Same
		case protectedBoundVisibility, Protected:
			return Unknown
		}

	case Protected:
		switch bv := b.(type) {
		case publicVisibility:
			return Less
		case privateVisibility, localVisibility, protectedBoundVisibility, internalProtectedBoundVisibility:
			return More
		case Protected:
			return l.ContainerRelation(av.Container, bv.Container)
		case InternalProtected:
			// protected is never less permissive than internal & protected
			switch l.ContainerRelation(av.Container, bv.Container) {
			case Same, More:
				return More
			default:
				return Unknown
			}
		case internalVisibility, packagePrivateVisibility:
			return Unknown
		}

	case protectedBoundVisibility:
		switch b.(type) {
		case publicVisibility, Protected:
			return Less
		case privateVisibility, localVisibility, internalProtectedBoundVisibility:
			return More
		case protectedBoundVisibility:
			return Same
		case internalVisibility, packagePrivateVisibility, InternalProtected:
			return Unknown
		}

	case InternalProtected:
		switch bv := b.(type) {
		case publicVisibility, internalVisibility, packagePrivateVisibility:
			return Less
		case privateVisibility, localVisibility, internalProtectedBoundVisibility:
			return More
		case InternalProtected:
			return l.ContainerRelation(av.Container, bv.Container)
		case Protected:
			// internal & protected is never more permissive than protected
			switch l.ContainerRelation(av.Container, bv.Container) {
			case Same, Less:
				return Less
			default:
				return Unknown
			}
		case protectedBoundVisibility:
			return Unknown
		}

	case internalProtectedBoundVisibility:
		switch b.(type) {
		case publicVisibility, Protected, InternalProtected, protectedBoundVisibility,
			internalVisibility, packagePrivateVisibility:
			return Less
		case privateVisibility, localVisibility:
			return More
		case internalProtectedBoundVisibility:
			return Same
		}
	}

	panic(&InvariantError{Op: "relation", Value: [2]Effective{a, b}})
}

// LowerBound returns the meet of a and b: the most permissive element that
// is at or below both.  When a and b are incomparable the result is a
// conservative bound element; it is never more permissive than either input.
func (l *Lattice) LowerBound(a, b Effective) Effective {
	mustBeValid("lower bound", a)
	mustBeValid("lower bound", b)

	switch av := a.(type) {
	case internalVisibility, packagePrivateVisibility:
		switch bv := b.(type) {
		case publicVisibility:
			return a
		case privateVisibility, localVisibility, internalProtectedBoundVisibility,
			internalVisibility, packagePrivateVisibility, InternalProtected:
			return b
		case Protected:
			return NewInternalProtected(bv.Container)
		case protectedBoundVisibility:
			return InternalProtectedBound
		}

	case Protected:
		switch bv := b.(type) {
		case publicVisibility:
			return a
		case privateVisibility, localVisibility, protectedBoundVisibility, internalProtectedBoundVisibility:
			return b
		case Protected:
			return l.boundOf(a, b, ProtectedBound)
		case InternalProtected:
			return l.internalProtectedMeet(av.Container, bv.Container)
		case internalVisibility, packagePrivateVisibility:
			return NewInternalProtected(av.Container)
		}

	case protectedBoundVisibility:
		switch b.(type) {
		case publicVisibility, Protected:
			return a
		case privateVisibility, localVisibility, protectedBoundVisibility, internalProtectedBoundVisibility:
			return b
		case internalVisibility, packagePrivateVisibility, InternalProtected:
			return InternalProtectedBound
		}

	case InternalProtected:
		switch bv := b.(type) {
		case publicVisibility, internalVisibility, packagePrivateVisibility:
			return a
		case privateVisibility, localVisibility, internalProtectedBoundVisibility:
			return b
		case Protected:
			return l.internalProtectedMeet(bv.Container, av.Container)
		case InternalProtected:
			return l.boundOf(a, b, InternalProtectedBound)
		case protectedBoundVisibility:
			return InternalProtectedBound
		}

	case privateVisibility, localVisibility, publicVisibility, internalProtectedBoundVisibility:
		return l.boundOf(a, b, Private)
	}

	panic(&InvariantError{Op: "lower bound", Value: [2]Effective{a, b}})
}

// boundOf returns the less permissive of a and b, or fallback when they are
// incomparable.
func (l *Lattice) boundOf(a, b, fallback Effective) Effective {
	switch l.Relation(a, b) {
	case Same, Less:
		return a
	case More:
		return b
	default:
		l.logger.Debug().
			Stringer("a", a).
			Stringer("b", b).
			Stringer("bound", fallback).
			Msg("incomparable visibilities, using conservative bound")
		return fallback
	}
}

// internalProtectedMeet is the meet of protected(in protected) and internal &
// protected(in internal): internal & protected in the narrower of the two
// containers.
func (l *Lattice) internalProtectedMeet(protected, internal TypeHandle) Effective {
	switch l.ContainerRelation(protected, internal) {
	case Same, Less:
		return NewInternalProtected(protected)
	case More:
		return NewInternalProtected(internal)
	}
	l.logger.Debug().
		Interface("protected", protected).
		Interface("internal", internal).
		Msg("unrelated containers, using conservative bound")
	return InternalProtectedBound
}

// Fold returns the meet of all the given elements, starting from Public.
func (l *Lattice) Fold(values ...Effective) Effective {
	result := Public
	for _, v := range values {
		result = l.LowerBound(result, v)
	}
	return result
}

// Validate returns an *InvariantError if v is not a lattice element.
func Validate(v Effective) error {
	switch v.(type) {
	case privateVisibility, localVisibility, publicVisibility, internalVisibility,
		packagePrivateVisibility, Protected, protectedBoundVisibility,
		InternalProtected, internalProtectedBoundVisibility:
		return nil
	}
	return &InvariantError{Op: "validate", Value: v}
}

func mustBeValid(op string, v Effective) {
	if err := Validate(v); err != nil {
		panic(&InvariantError{Op: op, Value: v})
	}
}
