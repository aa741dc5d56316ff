package visibility

import "fmt"

// RelationToType says how an exposed type is related to the declaration
// that exposes it.
type RelationToType int

const (
	RelationConstructor RelationToType = iota
	RelationContainer
	RelationArgument
	RelationArgumentContainer
)

// ContainerRelation returns the relation to use for the container of a
// type with this relation.
func (r RelationToType) ContainerRelation() RelationToType {
	switch r {
	case RelationArgument, RelationArgumentContainer:
		return RelationArgumentContainer
	default:
		return RelationContainer
	}
}

// String returns the description used in diagnostics.
func (r RelationToType) String() string {
	switch r {
	case RelationConstructor:
		return ""
	case RelationContainer:
		return " containing declaration"
	case RelationArgument:
		return " argument"
	case RelationArgumentContainer:
		return " argument containing declaration"
	default:
		return fmt.Sprintf(" RelationToType(%d)", int(r))
	}
}

// ExposedType is a type that appears in the signature of a declaration.
type ExposedType struct {
	// Name of the type.
	Name string
	// Visibility is the effective visibility of the type.
	Visibility Effective
	// Relation says where the type appears.
	Relation RelationToType
}

// ExposureError reports a declaration that exposes a type less visible than
// itself, for example a public function returning an internal type.
type ExposureError struct {
	// Declaration is the name of the exposing declaration.
	Declaration string
	// Base is the effective visibility of the exposing declaration.
	Base Effective
	// Exposed is the offending type.
	Exposed ExposedType
	// Relation is the relation of Base to the exposed visibility; either
	// More or Unknown.
	Relation Permissiveness
}

func (e *ExposureError) Error() string {
	return fmt.Sprintf("'%v' declaration %q exposes its '%v' type%s %q",
		ToSurface(e.Base), e.Declaration, ToSurface(e.Exposed.Visibility), e.Exposed.Relation, e.Exposed.Name)
}

// CheckExposure returns an error for each exposed type whose visibility is
// not known to be at least as permissive as base.
func (l *Lattice) CheckExposure(declaration string, base Effective, exposed ...ExposedType) []*ExposureError {
	var errs []*ExposureError
	for _, t := range exposed {
		switch rel := l.Relation(base, t.Visibility); rel {
		case More, Unknown:
			l.logger.Debug().
				Str("declaration", declaration).
				Stringer("base", base).
				Stringer("exposed", t.Visibility).
				Stringer("relation", rel).
				Msg("exposed type")
			errs = append(errs, &ExposureError{
				Declaration: declaration,
				Base:        base,
				Exposed:     t,
				Relation:    rel,
			})
		}
	}
	return errs
}
