package visibility

// Declaration is the part of a declaration the lattice needs: its own
// modifier, the type of the class that contains it and the declaration of
// that container.
type Declaration struct {
	// Name is used in diagnostics only.
	Name string
	// Visibility is the declaration's own modifier.
	Visibility Visibility
	// ContainerType is the type of the class that lexically contains the
	// declaration.  It parameterizes protected visibility.
	ContainerType TypeHandle
	// Parent is the enclosing container declaration, nil at top level.
	Parent *Declaration
}

// EffectiveVisibility folds the declaration's own visibility with the
// visibilities of all its containers.
func (l *Lattice) EffectiveVisibility(d *Declaration) (Effective, error) {
	result := Public
	seen := make(map[*Declaration]bool)
	for cur := d; cur != nil; cur = cur.Parent {
		if seen[cur] {
			return nil, &InvariantError{Op: "effective visibility (container cycle)", Value: cur.Name}
		}
		seen[cur] = true

		own, err := FromSurface(cur.Visibility, cur.ContainerType)
		if err != nil {
			return nil, err
		}
		result = l.LowerBound(result, own)
	}
	return result, nil
}
