package tower

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	rootName        = "<root>"
	pathSeparator   = '/'
	invokeSeparator = '+'
)

// ParseKind parses a single path segment such as "Member" or "Local(2)".
func ParseKind(segment string) (Kind, error) {
	name := segment
	depth := -1
	if open := strings.IndexByte(segment, '('); open != -1 {
		if !strings.HasSuffix(segment, ")") {
			return Kind{}, fmt.Errorf("malformed kind %q: missing ')'", segment)
		}
		d, err := strconv.Atoi(segment[open+1 : len(segment)-1])
		if err != nil {
			return Kind{}, fmt.Errorf("malformed kind %q: %w", segment, err)
		}
		name = segment[:open]
		depth = d
	}

	var kind Kind
	switch name {
	case "Start":
		kind = KindStart
	case "ClassifierPrioritized":
		kind = KindClassifierPrioritized
	case "Qualifier":
		kind = KindQualifier
	case "Classifier":
		kind = KindClassifier
	case "Member":
		kind = KindMember
	case "InvokeExtension":
		kind = KindInvokeExtension
	case "QualifierValue":
		kind = KindQualifierValue
	case "Last":
		kind = KindLast
	case "TopPrioritized":
		kind = KindTopPrioritized(depth)
	case "Local":
		kind = KindLocal(depth)
	case "Implicit":
		kind = KindImplicit(depth)
	case "NonLocal":
		kind = KindNonLocal(depth)
	case "ImplicitOrNonLocal":
		kind = Kind{Index: ImplicitOrNonLocalIndex, Depth: depth}
	default:
		return Kind{}, fmt.Errorf("unknown kind %q", name)
	}

	if kind.Index.HasDepth() && depth < 0 {
		return Kind{}, fmt.Errorf("kind %q requires a depth", name)
	}
	if !kind.Index.HasDepth() && depth >= 0 {
		return Kind{}, fmt.Errorf("kind %q does not take a depth", name)
	}
	return kind, nil
}

// splitInvoke separates the optional "+Priority" suffix of a path.
func splitInvoke(path string) (string, InvokeResolvePriority, error) {
	i := strings.IndexRune(path, invokeSeparator)
	if i == -1 {
		return path, InvokeNone, nil
	}
	p, err := ParseInvokeResolvePriority(path[i+1:])
	if err != nil {
		return "", InvokeNone, err
	}
	return path[:i], p, nil
}

// ParsePath parses the String form of a Key.  Capacity violations are
// returned as *CapacityError.
func ParsePath(path string) (Key, error) {
	primary, invoke, err := splitInvoke(strings.TrimSpace(path))
	if err != nil {
		return EmptyRoot, err
	}
	key := EmptyRoot
	if primary != "" && primary != rootName {
		for _, segment := range strings.Split(primary, string(pathSeparator)) {
			kind, err := ParseKind(segment)
			if err != nil {
				return EmptyRoot, err
			}
			if key, err = key.Refine(kind); err != nil {
				return EmptyRoot, err
			}
		}
	}
	return key.WithInvokePriority(invoke), nil
}
