package visibility

// DescriptorVisibility is the visibility name used by code generation
// backends.
type DescriptorVisibility string

const (
	DescriptorPrivate       DescriptorVisibility = "PRIVATE"
	DescriptorPrivateToThis DescriptorVisibility = "PRIVATE_TO_THIS"
	DescriptorProtected     DescriptorVisibility = "PROTECTED"
	DescriptorInternal      DescriptorVisibility = "INTERNAL"
	DescriptorPublic        DescriptorVisibility = "PUBLIC"
	DescriptorLocal         DescriptorVisibility = "LOCAL"
	DescriptorInvisibleFake DescriptorVisibility = "INVISIBLE_FAKE"
	DescriptorUnknown       DescriptorVisibility = "UNKNOWN"
)

// PlatformConverter converts visibilities that only exist on a particular
// platform, such as package-private.
type PlatformConverter func(v Visibility) (DescriptorVisibility, error)

// DefaultPlatformConverter knows no platform visibilities.
func DefaultPlatformConverter(v Visibility) (DescriptorVisibility, error) {
	return "", &InvariantError{Op: "convert platform visibility", Value: v}
}

// Converter maps surface visibilities to backend descriptor visibilities.
type Converter struct {
	platform PlatformConverter
}

// NewConverter constructs a Converter.  A nil platform converter is
// replaced by DefaultPlatformConverter.
func NewConverter(platform PlatformConverter) *Converter {
	if platform == nil {
		platform = DefaultPlatformConverter
	}
	return &Converter{platform: platform}
}

// Convert maps v to its descriptor visibility.
func (c *Converter) Convert(v Visibility) (DescriptorVisibility, error) {
	switch v {
	case VisPrivate:
		return DescriptorPrivate, nil
	case VisPrivateToThis:
		return DescriptorPrivateToThis, nil
	case VisProtected:
		return DescriptorProtected, nil
	case VisInternal:
		return DescriptorInternal, nil
	case VisPublic:
		return DescriptorPublic, nil
	case VisLocal:
		return DescriptorLocal, nil
	case VisInvisibleFake:
		return DescriptorInvisibleFake, nil
	case VisUnknown:
		return DescriptorUnknown, nil
	default:
		return c.platform(v)
	}
}

// JavaPlatformConverter maps package-private to the descriptor name used by
// the JVM backend.
func JavaPlatformConverter(v Visibility) (DescriptorVisibility, error) {
	if v == VisPackagePrivate {
		return "PACKAGE_VISIBILITY", nil
	}
	return DefaultPlatformConverter(v)
}
