// Package tower implements the priority key used to order the levels of a
// name-resolution tower, from the most preferred scope to the least.
package tower

import "fmt"

// KindIndex is the fixed rank of a Kind.  It occupies four bits of a Key.
type KindIndex uint8

const (
	StartIndex                 KindIndex = 0b0
	ClassifierPrioritizedIndex KindIndex = 1
	QualifierIndex             KindIndex = 2
	ClassifierIndex            KindIndex = 3
	TopPrioritizedIndex        KindIndex = 4
	MemberIndex                KindIndex = 5
	LocalIndex                 KindIndex = 6
	ImplicitOrNonLocalIndex    KindIndex = 7
	InvokeExtensionIndex       KindIndex = 8
	QualifierValueIndex        KindIndex = 9
	LastIndex                  KindIndex = 0b1111
)

// HasDepth reports whether kinds of this index carry a depth.
func (i KindIndex) HasDepth() bool {
	switch i {
	case TopPrioritizedIndex, LocalIndex, ImplicitOrNonLocalIndex:
		return true
	case StartIndex, ClassifierPrioritizedIndex, QualifierIndex, ClassifierIndex,
		MemberIndex, InvokeExtensionIndex, QualifierValueIndex, LastIndex:
		return false
	default:
		return false
	}
}

// Valid reports whether the index names a known kind.
func (i KindIndex) Valid() bool {
	switch i {
	case StartIndex, ClassifierPrioritizedIndex, QualifierIndex, ClassifierIndex,
		TopPrioritizedIndex, MemberIndex, LocalIndex, ImplicitOrNonLocalIndex,
		InvokeExtensionIndex, QualifierValueIndex, LastIndex:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (i KindIndex) String() string {
	switch i {
	case StartIndex:
		return "Start"
	case ClassifierPrioritizedIndex:
		return "ClassifierPrioritized"
	case QualifierIndex:
		return "Qualifier"
	case ClassifierIndex:
		return "Classifier"
	case TopPrioritizedIndex:
		return "TopPrioritized"
	case MemberIndex:
		return "Member"
	case LocalIndex:
		return "Local"
	case ImplicitOrNonLocalIndex:
		return "ImplicitOrNonLocal"
	case InvokeExtensionIndex:
		return "InvokeExtension"
	case QualifierValueIndex:
		return "QualifierValue"
	case LastIndex:
		return "Last"
	default:
		return fmt.Sprintf("KindIndex(%d)", uint8(i))
	}
}

// Kind is one discriminator of a tower Key: the category of scope a
// candidate comes from and, for some categories, the number of enclosing
// scope hops.
type Kind struct {
	// Index is the rank of the kind.
	Index KindIndex
	// Depth is only meaningful when Index.HasDepth().
	Depth int
	// origin distinguishes Implicit from NonLocal.  It is for diagnostics
	// only and never takes part in comparison.
	origin string
}

var (
	KindStart                 = Kind{Index: StartIndex}
	KindClassifierPrioritized = Kind{Index: ClassifierPrioritizedIndex}
	KindQualifier             = Kind{Index: QualifierIndex}
	KindClassifier            = Kind{Index: ClassifierIndex}
	KindMember                = Kind{Index: MemberIndex}
	KindInvokeExtension       = Kind{Index: InvokeExtensionIndex}
	KindQualifierValue        = Kind{Index: QualifierValueIndex}
	KindLast                  = Kind{Index: LastIndex}
)

// KindTopPrioritized constructs a TopPrioritized kind at the given depth.
func KindTopPrioritized(depth int) Kind {
	return Kind{Index: TopPrioritizedIndex, Depth: depth}
}

// KindLocal constructs a Local kind at the given depth.
func KindLocal(depth int) Kind {
	return Kind{Index: LocalIndex, Depth: depth}
}

// KindImplicit and KindNonLocal intentionally share the same priority.
func KindImplicit(depth int) Kind {
	return Kind{Index: ImplicitOrNonLocalIndex, Depth: depth, origin: "Implicit"}
}

func KindNonLocal(depth int) Kind {
	return Kind{Index: ImplicitOrNonLocalIndex, Depth: depth, origin: "NonLocal"}
}

// Origin returns the debug tag of an ImplicitOrNonLocal kind, or "".
func (k Kind) Origin() string {
	return k.origin
}

// Compare orders kinds by index and then, for kinds with a depth, by depth.
// The origin tag is ignored.
func (k Kind) Compare(other Kind) int {
	if k.Index != other.Index {
		if k.Index < other.Index {
			return -1
		}
		return 1
	}
	if k.Index.HasDepth() && other.Index.HasDepth() {
		switch {
		case k.Depth < other.Depth:
			return -1
		case k.Depth > other.Depth:
			return 1
		}
	}
	return 0
}

// String implements fmt.Stringer
func (k Kind) String() string {
	name := k.Index.String()
	if k.origin != "" {
		name = k.origin
	}
	if k.Index.HasDepth() {
		return fmt.Sprintf("%s(%d)", name, k.Depth)
	}
	return name
}
