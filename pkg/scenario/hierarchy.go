package scenario

import (
	"fmt"
	"sort"

	"github.com/stackb/scoperank/pkg/visibility"
)

// Hierarchy implements visibility.SubtypeOracle over a declared map of
// supertypes.  Subtyping is the strict transitive closure of that map.
type Hierarchy struct {
	supertypes map[string]map[string]bool
}

// NewHierarchy computes the hierarchy of the given types, where each entry
// maps a type name to its direct supertypes.  Cycles are an error.
func NewHierarchy(types map[string][]string) (*Hierarchy, error) {
	h := &Hierarchy{
		supertypes: make(map[string]map[string]bool),
	}

	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int)

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("type hierarchy cycle: %v", append(path, name))
		}
		state[name] = visiting
		all := make(map[string]bool)
		for _, super := range types[name] {
			if err := visit(super, append(path, name)); err != nil {
				return err
			}
			all[super] = true
			for transitive := range h.supertypes[super] {
				all[transitive] = true
			}
		}
		h.supertypes[name] = all
		state[name] = done
		return nil
	}

	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := visit(name, nil); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// IsSubtypeOf implements visibility.SubtypeOracle.
func (h *Hierarchy) IsSubtypeOf(a, b visibility.TypeHandle) bool {
	if a == nil || b == nil {
		return false
	}
	return h.supertypes[a.String()][b.String()]
}

// Supertypes returns the sorted transitive supertypes of the named type.
func (h *Hierarchy) Supertypes(name string) []string {
	var names []string
	for super := range h.supertypes[name] {
		names = append(names, super)
	}
	sort.Strings(names)
	return names
}

// Types returns the sorted names of all known types.
func (h *Hierarchy) Types() []string {
	names := make([]string, 0, len(h.supertypes))
	for name := range h.supertypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
