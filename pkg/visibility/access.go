package visibility

// Origin is where a declaration lives, as far as accessibility is
// concerned.
type Origin struct {
	// Module is the compilation module of the declaration.
	Module string
	// Package is the package of the declaration.
	Package string
	// Owner identifies the scope a private or local declaration is visible
	// in: its class, or its file for top-level declarations.
	Owner string
}

// UseSite describes the place a name is referenced from.
type UseSite struct {
	Module  string
	Package string
	// Owners are the enclosing classes and file of the use site.
	Owners []string
	// Classes are the types of the enclosing classes, innermost first.
	Classes []TypeHandle
}

// IsAccessible reports whether a declaration with effective visibility e,
// declared at origin, can be referenced from site.  The bound elements are
// never accessible: there is no single container to check against.
func (l *Lattice) IsAccessible(e Effective, origin Origin, site UseSite) bool {
	switch v := e.(type) {
	case publicVisibility:
		return true
	case internalVisibility:
		return origin.Module == site.Module
	case packagePrivateVisibility:
		return origin.Module == site.Module && origin.Package == site.Package
	case Protected:
		return l.inSubclass(v.Container, site)
	case InternalProtected:
		return origin.Module == site.Module && l.inSubclass(v.Container, site)
	case protectedBoundVisibility, internalProtectedBoundVisibility:
		return false
	case privateVisibility, localVisibility:
		if origin.Owner == "" {
			return false
		}
		for _, owner := range site.Owners {
			if owner == origin.Owner {
				return true
			}
		}
		return false
	}
	panic(&InvariantError{Op: "is accessible", Value: e})
}

func (l *Lattice) inSubclass(container TypeHandle, site UseSite) bool {
	if container == nil {
		return false
	}
	for _, class := range site.Classes {
		switch l.ContainerRelation(class, container) {
		case Same, Less:
			return true
		}
	}
	return false
}
