package collections

import "strings"

// Tree is a labeled tree that renders with box drawing characters.  A tree
// with an empty root label renders its children as a forest.
type Tree struct {
	Label    string
	Children []*Tree
}

// NewTree constructs a new Tree.
func NewTree(label string) *Tree {
	return &Tree{Label: label}
}

// Add appends a child with the given label and returns it.
func (t *Tree) Add(label string) *Tree {
	child := NewTree(label)
	t.Children = append(t.Children, child)
	return child
}

// String implements fmt.Stringer
func (t *Tree) String() string {
	var buf strings.Builder
	if t.Label == "" {
		for _, child := range t.Children {
			child.write(&buf, "")
		}
		return buf.String()
	}
	t.write(&buf, "")
	return buf.String()
}

func (t *Tree) write(buf *strings.Builder, prefix string) {
	buf.WriteString(t.Label)
	buf.WriteRune('\n')
	for i, child := range t.Children {
		buf.WriteString(prefix)
		buf.WriteString(getBoxType(i, len(t.Children)).String())
		buf.WriteRune(' ')
		child.write(buf, prefix+getBoxTypeExternal(i, len(t.Children)).String()+" ")
	}
}
