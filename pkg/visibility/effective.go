// Package visibility implements the effective visibility lattice: the
// transitively correct accessibility of a declaration once its containers
// are folded in, together with the relation and meet operators used by
// accessibility checks and API exposure validation.
//
//	                  Public
//	              /--/   |  \-------------\
//	Protected(Base)       |                 \
//	      |         Protected(Other)        Internal = PackagePrivate
//	Protected(Derived) |                   /     \
//	            |      |                  /    InternalProtected(Base)
//	      ProtectedBound                 /        \
//	                   \                /       /InternalProtected(Derived)
//	                    \InternalProtectedBound/
//	                             |
//	                          Private = Local
package visibility

import "fmt"

// TypeHandle is an opaque reference to the type of a class that contains a
// protected declaration.  Handles are compared with ==, so implementations
// must be comparable.  A nil handle means the container is unknown.
type TypeHandle interface {
	fmt.Stringer
}

// NamedType is a TypeHandle identified by name.
type NamedType string

func (t NamedType) String() string {
	return string(t)
}

// Effective is an element of the lattice.  The set of implementations is
// closed: Private, Local, Public, Internal, PackagePrivate, Protected,
// ProtectedBound, InternalProtected and InternalProtectedBound.
type Effective interface {
	fmt.Stringer
	// Name is the short, container-free name of the element.
	Name() string
	// PublicAPI reports whether the element is part of the public API.
	PublicAPI() bool
	// PrivateAPI reports whether the element is private API.
	PrivateAPI() bool

	effective()
}

type (
	privateVisibility                struct{}
	localVisibility                  struct{}
	publicVisibility                 struct{}
	internalVisibility               struct{}
	packagePrivateVisibility         struct{}
	protectedBoundVisibility         struct{}
	internalProtectedBoundVisibility struct{}
)

var (
	// Private is the bottom of the lattice.
	Private Effective = privateVisibility{}
	// Local is effectively the same as Private.
	Local Effective = localVisibility{}
	// Public is the top of the lattice.
	Public         Effective = publicVisibility{}
	Internal       Effective = internalVisibility{}
	PackagePrivate Effective = packagePrivateVisibility{}
	// ProtectedBound is the lower bound for all protected visibilities.
	ProtectedBound Effective = protectedBoundVisibility{}
	// InternalProtectedBound is the lower bound for internal and the
	// protected lower bound.
	InternalProtectedBound Effective = internalProtectedBoundVisibility{}
)

// Protected is visible to subclasses of Container.
type Protected struct {
	Container TypeHandle
}

// NewProtected constructs a Protected visibility for the given container.
func NewProtected(container TypeHandle) Protected {
	return Protected{Container: container}
}

// InternalProtected is the intersection of Internal and Protected(Container).
type InternalProtected struct {
	Container TypeHandle
}

// NewInternalProtected constructs an InternalProtected visibility for the
// given container.
func NewInternalProtected(container TypeHandle) InternalProtected {
	return InternalProtected{Container: container}
}

func (privateVisibility) Name() string                { return "private" }
func (localVisibility) Name() string                  { return "local" }
func (publicVisibility) Name() string                 { return "public" }
func (internalVisibility) Name() string               { return "internal" }
func (packagePrivateVisibility) Name() string         { return "public/*package*/" }
func (Protected) Name() string                        { return "protected" }
func (protectedBoundVisibility) Name() string         { return "protected (in different classes)" }
func (InternalProtected) Name() string                { return "internal & protected" }
func (internalProtectedBoundVisibility) Name() string { return "internal & protected (in different classes)" }

func (v privateVisibility) String() string                { return v.Name() }
func (v localVisibility) String() string                  { return v.Name() }
func (v publicVisibility) String() string                 { return v.Name() }
func (v internalVisibility) String() string               { return v.Name() }
func (v packagePrivateVisibility) String() string         { return v.Name() }
func (v protectedBoundVisibility) String() string         { return v.Name() }
func (v internalProtectedBoundVisibility) String() string { return v.Name() }

func (v Protected) String() string {
	return fmt.Sprintf("%s (in %s)", v.Name(), containerName(v.Container))
}

func (v InternalProtected) String() string {
	return fmt.Sprintf("%s (in %s)", v.Name(), containerName(v.Container))
}

func containerName(t TypeHandle) string {
	if t == nil {
		return "?"
	}
	return t.String()
}

func (privateVisibility) PublicAPI() bool                { return false }
func (localVisibility) PublicAPI() bool                  { return false }
func (publicVisibility) PublicAPI() bool                 { return true }
func (internalVisibility) PublicAPI() bool               { return false }
func (packagePrivateVisibility) PublicAPI() bool         { return false }
func (Protected) PublicAPI() bool                        { return true }
func (protectedBoundVisibility) PublicAPI() bool         { return true }
func (InternalProtected) PublicAPI() bool                { return false }
func (internalProtectedBoundVisibility) PublicAPI() bool { return false }

func (privateVisibility) PrivateAPI() bool                { return true }
func (localVisibility) PrivateAPI() bool                  { return false }
func (publicVisibility) PrivateAPI() bool                 { return false }
func (internalVisibility) PrivateAPI() bool               { return false }
func (packagePrivateVisibility) PrivateAPI() bool         { return false }
func (Protected) PrivateAPI() bool                        { return false }
func (protectedBoundVisibility) PrivateAPI() bool         { return false }
func (InternalProtected) PrivateAPI() bool                { return false }
func (internalProtectedBoundVisibility) PrivateAPI() bool { return false }

func (privateVisibility) effective()                {}
func (localVisibility) effective()                  {}
func (publicVisibility) effective()                 {}
func (internalVisibility) effective()               {}
func (packagePrivateVisibility) effective()         {}
func (Protected) effective()                        {}
func (protectedBoundVisibility) effective()         {}
func (InternalProtected) effective()                {}
func (internalProtectedBoundVisibility) effective() {}

// Equal reports structural equality.  Protected and InternalProtected are
// equal when their containers are.
func Equal(a, b Effective) bool {
	return a == b
}

// isInternalOrPackage groups Internal and PackagePrivate, which share a
// permissiveness class.
func isInternalOrPackage(v Effective) bool {
	switch v.(type) {
	case internalVisibility, packagePrivateVisibility:
		return true
	}
	return false
}

func isPrivateOrLocal(v Effective) bool {
	switch v.(type) {
	case privateVisibility, localVisibility:
		return true
	}
	return false
}
