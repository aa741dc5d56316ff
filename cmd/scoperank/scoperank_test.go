package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackb/scoperank/pkg/testutil"
)

const membersScenario = `
types:
  Derived: [Base]
declarations:
  - {name: hook, visibility: protected, container: Base, containers: [public, internal], expect: "internal & protected (in Base)"}
  - {name: helper, visibility: public, containers: [private], expect: private}
calls:
  - name: size
    site: {module: app, owners: [Derived], classes: [Derived]}
    candidates:
      - {origin: extension size, key: "Implicit(1)/InvokeExtension"}
      - {origin: Base.size, key: Member, visibility: protected, container: Base, module: core}
    expect: Base.size
`

const failingScenario = `
calls:
  - name: foo
    candidates:
      - {origin: a, key: Member}
      - {origin: b, key: Member}
    expect: a
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	dir, _ := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "a/members.yaml", Content: membersScenario},
		{Path: "b/failing.yaml", Content: failingScenario},
	})

	out, err := run(t, "check", "--metrics", filepath.Join(dir, "a", "*.yaml"))
	require.NoError(t, err)
	assert.Contains(t, out, "checked 1 file(s), 0 failure(s)")
	assert.Contains(t, out, `scoperank_resolver_resolutions_total{outcome="resolved"} 1`)

	out, err = run(t, "check", filepath.Join(dir, "**", "*.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 expectation(s) failed")
	assert.Contains(t, out, "failing.yaml: call foo: want \"a\"")
	assert.Contains(t, out, "checked 2 file(s), 1 failure(s)")
}

func TestCheckMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "check", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestRank(t *testing.T) {
	_, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "members.yaml", Content: membersScenario},
	})

	out, err := run(t, "rank", filenames[0])
	require.NoError(t, err)
	want := "--- " + filenames[0] + ": size ---\n" +
		"Member\n" +
		"└ size (protected (in Base)) Base.size\n" +
		"ImplicitOrNonLocal(1)/InvokeExtension\n" +
		"└ size (public) extension size\n" +
		"=> Base.size at Member (1 level(s) visited)\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestVisibility(t *testing.T) {
	_, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "members.yaml", Content: membersScenario},
	})

	out, err := run(t, "visibility", filenames[0])
	require.NoError(t, err)
	want := filenames[0] + ": hook: internal & protected (in Base) (surface private, descriptor PRIVATE)\n" +
		filenames[0] + ": helper: private (surface private, descriptor PRIVATE)\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = run(t, "visibility", "--platform", "js", filenames[0])
	require.Error(t, err)
}

func TestVisibilityHierarchy(t *testing.T) {
	_, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "members.yaml", Content: membersScenario},
	})

	out, err := run(t, "visibility", "--hierarchy", filenames[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, filenames[0]+": Base\n"+filenames[0]+": Derived <: Base\n"), out)
}

func TestOutput(t *testing.T) {
	dir, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "members.yaml", Content: membersScenario},
	})

	out, err := run(t, "visibility", "--output", filepath.Join(dir, "out", "visibility.txt"), filenames[0])
	require.Error(t, err, "output directory does not exist")
	assert.Empty(t, out)

	out, err = run(t, "visibility", "-o", filepath.Join(dir, "visibility.txt"), filenames[0])
	require.NoError(t, err)
	assert.Empty(t, out)

	testtools.CheckFiles(t, dir, []testtools.FileSpec{
		{
			Path: "visibility.txt",
			Content: filenames[0] + ": hook: internal & protected (in Base) (surface private, descriptor PRIVATE)\n" +
				filenames[0] + ": helper: private (surface private, descriptor PRIVATE)\n",
		},
		{Path: "out", NotExist: true},
	})
}

func TestKey(t *testing.T) {
	for name, tc := range map[string]struct {
		args    []string
		want    string
		wantErr string
	}{
		"sorts": {
			args: []string{"Local(2)/Member", "Member", "NonLocal(1)+CommonInvoke", "Implicit(1)", "<root>"},
			want: "<root>\nMember\nLocal(2)/Member\nImplicitOrNonLocal(1)\nImplicitOrNonLocal(1)+CommonInvoke\n",
		},
		"malformed": {
			args:    []string{"Local"},
			wantErr: `kind "Local" requires a depth`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, append([]string{"key"}, tc.args...)...)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, out); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDump(t *testing.T) {
	_, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "members.yaml", Content: membersScenario},
	})
	out, err := run(t, "check", "--dump", filenames[0])
	require.NoError(t, err)
	assert.Contains(t, out, "(*scenario.Scenario)")
}

func TestExpandPatterns(t *testing.T) {
	dir, filenames := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "x/one.yaml", Content: "{}"},
		{Path: "x/y/two.yaml", Content: "{}"},
	})

	got, err := expandPatterns([]string{
		filepath.Join(dir, "**", "*.yaml"),
		filepath.Join(dir, "x", "one.yaml"),
		filepath.Join(dir, "none.yaml"),
	})
	require.NoError(t, err)
	want := []string{filepath.Join(dir, "none.yaml"), filenames[0], filenames[1]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = expandPatterns([]string{"[a"})
	assert.Error(t, err)
}
