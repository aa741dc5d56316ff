package visibility

import (
	"fmt"
	"strings"
)

// Visibility is the surface visibility modifier written on (or implied for)
// a declaration.  It is also the category used when rendering diagnostics.
type Visibility int

const (
	VisUnknown Visibility = iota
	VisPrivate
	VisPrivateToThis
	VisProtected
	VisInternal
	VisPublic
	VisLocal
	VisInvisibleFake
	// VisPackagePrivate is a platform visibility (Java package-private).
	VisPackagePrivate
)

var visibilityNames = map[Visibility]string{
	VisUnknown:        "unknown",
	VisPrivate:        "private",
	VisPrivateToThis:  "private_to_this",
	VisProtected:      "protected",
	VisInternal:       "internal",
	VisPublic:         "public",
	VisLocal:          "local",
	VisInvisibleFake:  "invisible_fake",
	VisPackagePrivate: "package_private",
}

// String implements fmt.Stringer
func (v Visibility) String() string {
	if name, ok := visibilityNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// ParseVisibility is the inverse of String.  It is case-insensitive and
// also accepts "package" for package-private.
func ParseVisibility(name string) (Visibility, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "package" {
		return VisPackagePrivate, nil
	}
	for v, n := range visibilityNames {
		if n == name {
			return v, nil
		}
	}
	return VisUnknown, fmt.Errorf("unknown visibility: %q", name)
}

// MarshalYAML implements yaml.Marshaler.
func (v Visibility) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler using the ParseVisibility names.
func (v *Visibility) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseVisibility(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ToSurface maps a lattice element to the category used in diagnostics.
// PackagePrivate, InternalProtected and InternalProtectedBound surface as
// private: no finer category exists and they are at least that restrictive.
func ToSurface(e Effective) Visibility {
	switch e.(type) {
	case privateVisibility:
		return VisPrivate
	case localVisibility:
		return VisLocal
	case publicVisibility:
		return VisPublic
	case internalVisibility:
		return VisInternal
	case packagePrivateVisibility:
		return VisPrivate
	case Protected, protectedBoundVisibility:
		return VisProtected
	case InternalProtected, internalProtectedBoundVisibility:
		return VisPrivate
	}
	panic(&InvariantError{Op: "to surface", Value: e})
}

// FromSurface returns the lattice element for a declaration's own modifier,
// before its containers are taken into account.  The container is only used
// for protected declarations.
func FromSurface(v Visibility, container TypeHandle) (Effective, error) {
	switch v {
	case VisPublic:
		return Public, nil
	case VisProtected:
		return NewProtected(container), nil
	case VisInternal:
		return Internal, nil
	case VisPackagePrivate:
		return PackagePrivate, nil
	case VisPrivate, VisPrivateToThis:
		return Private, nil
	case VisLocal:
		return Local, nil
	case VisUnknown, VisInvisibleFake:
		return nil, &InvariantError{Op: "from surface", Value: v}
	}
	return nil, &InvariantError{Op: "from surface", Value: v}
}
