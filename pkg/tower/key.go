package tower

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	kindMask     = 0b1111
	depthMask    = 0b1111111111
	usedBitsMask = uint64(0b111111)
	totalBits    = 64
)

var (
	kindSizeBits  = bits.OnesCount(kindMask)
	depthSizeBits = bits.OnesCount(depthMask)
	// usableBits is what remains once the low bits holding the "used bits"
	// counter are reserved.
	usableBits = bits.LeadingZeros64(usedBitsMask)
)

// MaxDepth is the largest depth a Kind can carry.
const MaxDepth = depthMask

// Key is an immutable, totally ordered priority of a tower level.  Smaller
// keys are more preferred.  Refinements are packed from the most significant
// bit downward, so an unsigned comparison of the code is a lexicographic
// comparison of the refinement path.  The low six bits count the bits in
// use.
//
// Key is comparable and may be used as a map key.
type Key struct {
	code   uint64
	invoke InvokeResolvePriority
}

// EmptyRoot is the least refined key.
var EmptyRoot = Key{}

// Root returns EmptyRoot.
func Root() Key {
	return EmptyRoot
}

func kindOf(kind Kind) Key {
	return EmptyRoot.MustRefine(kind)
}

var (
	Start                 = kindOf(KindStart)
	ClassifierPrioritized = kindOf(KindClassifierPrioritized)
	Qualifier             = kindOf(KindQualifier)
	Classifier            = kindOf(KindClassifier)
	QualifierValue        = kindOf(KindQualifierValue)
	Member                = kindOf(KindMember)
	Last                  = kindOf(KindLast)
)

func Local(depth int) Key          { return kindOf(KindLocal(depth)) }
func Implicit(depth int) Key       { return kindOf(KindImplicit(depth)) }
func NonLocal(depth int) Key       { return kindOf(KindNonLocal(depth)) }
func TopPrioritized(depth int) Key { return kindOf(KindTopPrioritized(depth)) }

func (k Key) usedBits() int {
	return int(k.code & usedBitsMask)
}

// Refine returns a new key that extends k with one more discriminator.  The
// refined key starts over with InvokeNone.  It returns a *CapacityError when
// the kind does not fit.
func (k Key) Refine(kind Kind) (Key, error) {
	if !kind.Index.Valid() {
		return k, &CapacityError{Kind: kind, UsedBits: k.usedBits(), Reason: "invalid kind index"}
	}
	used := k.usedBits()
	high := k.code &^ usedBitsMask

	kindUsedBits := used + kindSizeBits
	if !kind.Index.HasDepth() {
		if kindUsedBits > usableBits {
			return k, &CapacityError{
				Kind:     kind,
				UsedBits: used,
				Reason:   fmt.Sprintf("new used bits %d exceed %d", kindUsedBits, usableBits),
			}
		}
		code := high | uint64(kind.Index)<<(totalBits-kindUsedBits) | uint64(kindUsedBits)
		return Key{code: code}, nil
	}

	if kind.Depth < 0 || kind.Depth > depthMask {
		return k, &CapacityError{
			Kind:     kind,
			UsedBits: used,
			Reason:   fmt.Sprintf("depth overflow: requested %d, allowed 0..%d", kind.Depth, depthMask),
		}
	}
	depthUsedBits := kindUsedBits + depthSizeBits
	if depthUsedBits > usableBits {
		return k, &CapacityError{
			Kind:     kind,
			UsedBits: used,
			Reason:   fmt.Sprintf("new used bits %d exceed %d", depthUsedBits, usableBits),
		}
	}
	code := high |
		uint64(kind.Index)<<(totalBits-kindUsedBits) |
		uint64(kind.Depth)<<(totalBits-depthUsedBits) |
		uint64(depthUsedBits)
	return Key{code: code}, nil
}

// MustRefine is like Refine but panics on overflow.
func (k Key) MustRefine(kind Kind) Key {
	next, err := k.Refine(kind)
	if err != nil {
		panic(err)
	}
	return next
}

func (k Key) Member() Key                  { return k.MustRefine(KindMember) }
func (k Key) Local(depth int) Key          { return k.MustRefine(KindLocal(depth)) }
func (k Key) Implicit(depth int) Key       { return k.MustRefine(KindImplicit(depth)) }
func (k Key) NonLocal(depth int) Key       { return k.MustRefine(KindNonLocal(depth)) }
func (k Key) InvokeExtension() Key         { return k.MustRefine(KindInvokeExtension) }
func (k Key) TopPrioritized(depth int) Key { return k.MustRefine(KindTopPrioritized(depth)) }

// WithInvokePriority returns k with its invoke axis replaced.  InvokeNone
// returns k unchanged.
func (k Key) WithInvokePriority(p InvokeResolvePriority) Key {
	if p == InvokeNone {
		return k
	}
	return Key{code: k.code, invoke: p}
}

// InvokePriority returns the invoke axis of the key.
func (k Key) InvokePriority() InvokeResolvePriority {
	return k.invoke
}

// Compare returns -1, 0 or +1.  The tower code is compared as an unsigned
// magnitude first; the invoke axis breaks ties.
func Compare(a, b Key) int {
	switch {
	case a.code < b.code:
		return -1
	case a.code > b.code:
		return 1
	case a.invoke < b.invoke:
		return -1
	case a.invoke > b.invoke:
		return 1
	}
	return 0
}

// Compare is the method form of Compare.
func (k Key) Compare(other Key) int {
	return Compare(k, other)
}

// Less reports whether k is strictly more preferred than other.
func (k Key) Less(other Key) bool {
	return Compare(k, other) < 0
}

// Equal reports whether both the tower code and the invoke axis match.
func (k Key) Equal(other Key) bool {
	return k == other
}

// Len returns the number of refinements applied to the key.
func (k Key) Len() int {
	return len(k.Path())
}

// Path decodes the refinements of the key, in the order applied.  Origin
// tags are not encoded, so ImplicitOrNonLocal kinds come back untagged.
func (k Key) Path() []Kind {
	used := k.usedBits()
	var path []Kind
	for offset := 0; offset < used; {
		offset += kindSizeBits
		index := KindIndex((k.code >> (totalBits - offset)) & kindMask)
		kind := Kind{Index: index}
		if index.HasDepth() {
			offset += depthSizeBits
			kind.Depth = int((k.code >> (totalBits - offset)) & depthMask)
		}
		path = append(path, kind)
	}
	return path
}

// String renders the key as a path, for example "Local(2)/Member+CommonInvoke".
func (k Key) String() string {
	var buf strings.Builder
	path := k.Path()
	if len(path) == 0 {
		buf.WriteString(rootName)
	}
	for i, kind := range path {
		if i > 0 {
			buf.WriteRune(pathSeparator)
		}
		buf.WriteString(kind.String())
	}
	if k.invoke != InvokeNone {
		buf.WriteRune(invokeSeparator)
		buf.WriteString(k.invoke.String())
	}
	return buf.String()
}

// GoString shows the raw code, which is handy when debugging ordering.
func (k Key) GoString() string {
	return fmt.Sprintf("tower.Key{code: %064b, invoke: %v}", k.code, k.invoke)
}
