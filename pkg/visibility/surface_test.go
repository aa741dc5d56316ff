package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"
)

func TestToSurface(t *testing.T) {
	for name, tc := range map[string]struct {
		in   Effective
		want Visibility
	}{
		"private":                  {in: Private, want: VisPrivate},
		"local":                    {in: Local, want: VisLocal},
		"public":                   {in: Public, want: VisPublic},
		"internal":                 {in: Internal, want: VisInternal},
		"package private":          {in: PackagePrivate, want: VisPrivate},
		"protected":                {in: NewProtected(typeBase), want: VisProtected},
		"protected bound":          {in: ProtectedBound, want: VisProtected},
		"internal protected":       {in: NewInternalProtected(typeBase), want: VisPrivate},
		"internal protected bound": {in: InternalProtectedBound, want: VisPrivate},
	} {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ToSurface(tc.in)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromSurface(t *testing.T) {
	for name, tc := range map[string]struct {
		in        Visibility
		container TypeHandle
		want      Effective
		wantErr   bool
	}{
		"public":          {in: VisPublic, want: Public},
		"protected":       {in: VisProtected, container: typeBase, want: NewProtected(typeBase)},
		"internal":        {in: VisInternal, want: Internal},
		"package":         {in: VisPackagePrivate, want: PackagePrivate},
		"private":         {in: VisPrivate, want: Private},
		"private to this": {in: VisPrivateToThis, want: Private},
		"local":           {in: VisLocal, want: Local},
		"unknown":         {in: VisUnknown, wantErr: true},
		"invisible fake":  {in: VisInvisibleFake, wantErr: true},
		"out of range":    {in: Visibility(99), wantErr: true},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := FromSurface(tc.in, tc.container)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsInvariantError(err))
				assert.Equal(t, codes.Internal, status.Code(err))
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisibilityYAML(t *testing.T) {
	var got struct {
		Visibilities []Visibility `yaml:"visibilities"`
	}
	err := yaml.Unmarshal([]byte("visibilities: [public, Protected, package, private_to_this]"), &got)
	require.NoError(t, err)
	want := []Visibility{VisPublic, VisProtected, VisPackagePrivate, VisPrivateToThis}
	if diff := cmp.Diff(want, got.Visibilities); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	err = yaml.Unmarshal([]byte("visibilities: [friend]"), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown visibility: "friend"`)

	data, err := yaml.Marshal(VisInternal)
	require.NoError(t, err)
	assert.Equal(t, "internal\n", string(data))
}

func TestConverter(t *testing.T) {
	c := NewConverter(nil)
	for v, want := range map[Visibility]DescriptorVisibility{
		VisPrivate:       DescriptorPrivate,
		VisPrivateToThis: DescriptorPrivateToThis,
		VisProtected:     DescriptorProtected,
		VisInternal:      DescriptorInternal,
		VisPublic:        DescriptorPublic,
		VisLocal:         DescriptorLocal,
		VisInvisibleFake: DescriptorInvisibleFake,
		VisUnknown:       DescriptorUnknown,
	} {
		got, err := c.Convert(v)
		require.NoError(t, err, v.String())
		assert.Equal(t, want, got, v.String())
	}

	_, err := c.Convert(VisPackagePrivate)
	assert.True(t, IsInvariantError(err))

	got, err := NewConverter(JavaPlatformConverter).Convert(VisPackagePrivate)
	require.NoError(t, err)
	assert.Equal(t, DescriptorVisibility("PACKAGE_VISIBILITY"), got)
}
