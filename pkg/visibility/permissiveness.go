package visibility

import "fmt"

// Permissiveness is the result of comparing two lattice elements.  It is
// not a total order: Unknown is a legitimate answer.
type Permissiveness int

const (
	// Less means the first element is strictly less permissive.
	Less Permissiveness = iota
	Same
	// More means the first element is strictly more permissive.
	More
	// Unknown means the elements are incomparable with local information.
	Unknown
)

// String implements fmt.Stringer
func (p Permissiveness) String() string {
	switch p {
	case Less:
		return "LESS"
	case Same:
		return "SAME"
	case More:
		return "MORE"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("Permissiveness(%d)", int(p))
	}
}

// Invert swaps Less and More.
func (p Permissiveness) Invert() Permissiveness {
	switch p {
	case Less:
		return More
	case More:
		return Less
	default:
		return p
	}
}
