package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveVisibility(t *testing.T) {
	publicClass := &Declaration{Name: "Derived", Visibility: VisPublic}
	internalClass := &Declaration{Name: "Helper", Visibility: VisInternal}
	privateClass := &Declaration{Name: "Secret", Visibility: VisPrivate}
	protectedNested := &Declaration{Name: "Nested", Visibility: VisProtected, ContainerType: typeBase, Parent: publicClass}
	protectedDerived := &Declaration{Name: "Outer", Visibility: VisProtected, ContainerType: typeDerived, Parent: publicClass}
	internalInProtected := &Declaration{Name: "Inner", Visibility: VisInternal, Parent: protectedDerived}

	for name, tc := range map[string]struct {
		decl    *Declaration
		want    Effective
		wantErr bool
	}{
		"top level public": {
			decl: &Declaration{Name: "f", Visibility: VisPublic},
			want: Public,
		},
		"public in internal class": {
			decl: &Declaration{Name: "f", Visibility: VisPublic, Parent: internalClass},
			want: Internal,
		},
		"protected in public class": {
			decl: &Declaration{Name: "f", Visibility: VisProtected, ContainerType: typeDerived, Parent: publicClass},
			want: NewProtected(typeDerived),
		},
		"protected in internal class": {
			decl: &Declaration{Name: "f", Visibility: VisProtected, ContainerType: typeDerived, Parent: internalClass},
			want: NewInternalProtected(typeDerived),
		},
		"protected in protected nested class": {
			decl: &Declaration{Name: "f", Visibility: VisProtected, ContainerType: typeLeaf, Parent: protectedNested},
			want: NewProtected(typeLeaf),
		},
		"protected in unrelated protected nested class": {
			decl: &Declaration{Name: "f", Visibility: VisProtected, ContainerType: typeOther, Parent: protectedNested},
			want: ProtectedBound,
		},
		"protected in internal class nested in protected class": {
			decl: &Declaration{Name: "f", Visibility: VisProtected, ContainerType: typeBase, Parent: internalInProtected},
			want: NewInternalProtected(typeDerived),
		},
		"anything in private class": {
			decl: &Declaration{Name: "f", Visibility: VisPublic, Parent: privateClass},
			want: Private,
		},
		"local": {
			decl: &Declaration{Name: "x", Visibility: VisLocal, Parent: publicClass},
			want: Local,
		},
		"invisible fake": {
			decl:    &Declaration{Name: "f", Visibility: VisInvisibleFake, Parent: publicClass},
			wantErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := testLattice().EffectiveVisibility(tc.decl)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvariantError(err))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEffectiveVisibilityCycle(t *testing.T) {
	a := &Declaration{Name: "A", Visibility: VisPublic}
	b := &Declaration{Name: "B", Visibility: VisPublic, Parent: a}
	a.Parent = b

	_, err := testLattice().EffectiveVisibility(b)
	require.Error(t, err)
	assert.True(t, IsInvariantError(err))
}

func TestCheckExposure(t *testing.T) {
	l := testLattice()
	for name, tc := range map[string]struct {
		base    Effective
		exposed []ExposedType
		want    []string
	}{
		"degenerate": {
			base: Public,
		},
		"public exposes internal": {
			base: Public,
			exposed: []ExposedType{
				{Name: "Helper", Visibility: Internal, Relation: RelationArgument},
				{Name: "String", Visibility: Public},
			},
			want: []string{`'public' declaration "f" exposes its 'internal' type argument "Helper"`},
		},
		"protected exposes internal": {
			base: NewProtected(typeBase),
			exposed: []ExposedType{
				{Name: "Helper", Visibility: Internal, Relation: RelationContainer},
			},
			want: []string{`'protected' declaration "f" exposes its 'internal' type containing declaration "Helper"`},
		},
		"protected exposes protected of supertype": {
			base: NewProtected(typeDerived),
			exposed: []ExposedType{
				{Name: "Nested", Visibility: NewProtected(typeBase)},
			},
		},
		"protected exposes protected of subtype": {
			base: NewProtected(typeBase),
			exposed: []ExposedType{
				{Name: "Nested", Visibility: NewProtected(typeDerived)},
			},
			want: []string{`'protected' declaration "f" exposes its 'protected' type "Nested"`},
		},
		"internal exposes public and internal": {
			base: Internal,
			exposed: []ExposedType{
				{Name: "A", Visibility: Public},
				{Name: "B", Visibility: PackagePrivate},
			},
		},
		"private exposes anything": {
			base: Private,
			exposed: []ExposedType{
				{Name: "A", Visibility: Local},
				{Name: "B", Visibility: InternalProtectedBound},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var got []string
			for _, err := range l.CheckExposure("f", tc.base, tc.exposed...) {
				got = append(got, err.Error())
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestRelationToTypeContainerRelation(t *testing.T) {
	assert.Equal(t, RelationContainer, RelationConstructor.ContainerRelation())
	assert.Equal(t, RelationContainer, RelationContainer.ContainerRelation())
	assert.Equal(t, RelationArgumentContainer, RelationArgument.ContainerRelation())
	assert.Equal(t, RelationArgumentContainer, RelationArgumentContainer.ContainerRelation())
}
