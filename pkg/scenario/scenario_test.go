package scenario

import (
	"path/filepath"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackb/scoperank/pkg/testutil"
	"github.com/stackb/scoperank/pkg/visibility"
)

func TestLoad(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "members.yaml"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("testdata", "members.yaml"), s.Filename)
	assert.Len(t, s.Declarations, 4)
	assert.Len(t, s.Calls, 3)

	want := []*Container{
		{Name: "Outer", Visibility: visibility.VisPublic},
		{Name: "Nested", Visibility: visibility.VisProtected, Type: "Leaf"},
	}
	if diff := cmp.Diff(want, s.Declarations[2].Containers); diff != "" {
		t.Errorf("containers (-want +got):\n%s", diff)
	}

	wantSite := Site{Module: "app", Package: "app", Owners: []string{"Derived"}, Classes: []string{"Derived"}}
	if diff := cmp.Diff(wantSite, s.Calls[0].Site); diff != "" {
		t.Errorf("site (-want +got):\n%s", diff)
	}
	assert.True(t, s.Calls[0].Candidates[2].Inapplicable)
}

func TestParse(t *testing.T) {
	for name, tc := range map[string]struct {
		data    string
		wantErr string
	}{
		"degenerate": {
			data: "{}",
		},
		"bare container visibilities": {
			data: "declarations: [{name: f, visibility: public, containers: [internal, private]}]",
		},
		"unknown field": {
			data:    "declarations: [{name: f, visbility: public}]",
			wantErr: "field visbility not found",
		},
		"unknown container visibility": {
			data:    "declarations: [{name: f, visibility: public, containers: [friend]}]",
			wantErr: `unknown visibility: "friend"`,
		},
		"missing declaration name": {
			data:    "declarations: [{visibility: public}]",
			wantErr: "declaration #0: name is required",
		},
		"missing call name": {
			data:    "calls: [{candidates: []}]",
			wantErr: "call #0: name is required",
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	tmpDir, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "ok.yaml", Content: "types: {A: [B]}"},
		{Path: "missing.yaml", NotExist: true},
	})

	s, err := Load(filenames[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, s.Types["A"])

	_, err = Load(filepath.Join(tmpDir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestDeclarationBuild(t *testing.T) {
	d := &Declaration{
		Name:       "f",
		Visibility: visibility.VisProtected,
		Container:  "Derived",
		Containers: []*Container{
			{Visibility: visibility.VisPublic},
			{Name: "Inner", Visibility: visibility.VisInternal, Type: "Outer"},
		},
	}
	got := d.Build()

	assert.Equal(t, "f", got.Name)
	assert.Equal(t, visibility.NamedType("Derived"), got.ContainerType)
	require.NotNil(t, got.Parent)
	assert.Equal(t, "Inner", got.Parent.Name)
	assert.Equal(t, visibility.NamedType("Outer"), got.Parent.ContainerType)
	require.NotNil(t, got.Parent.Parent)
	assert.Equal(t, "f#0", got.Parent.Parent.Name)
	assert.Nil(t, got.Parent.Parent.ContainerType)
	assert.Nil(t, got.Parent.Parent.Parent)
}
