package collections

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ExampleTree_String() {
	tree := NewTree("")
	local := tree.Add("Local(1)")
	local.Add("x (public)")
	local.Add("x (private)").Add("inaccessible")
	tree.Add("Member").Add("x (protected)")

	fmt.Print(tree)
	// output:
	// Local(1)
	// ├ x (public)
	// └ x (private)
	//   └ inaccessible
	// Member
	// └ x (protected)
}

func TestTreeString(t *testing.T) {
	for name, tc := range map[string]struct {
		tree *Tree
		want string
	}{
		"degenerate": {
			tree: NewTree(""),
		},
		"root only": {
			tree: NewTree("root"),
			want: "root\n",
		},
		"nested between": {
			tree: func() *Tree {
				root := NewTree("root")
				a := root.Add("a")
				a.Add("a1")
				root.Add("b")
				return root
			}(),
			want: "root\n├ a\n│ └ a1\n└ b\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, tc.tree.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
