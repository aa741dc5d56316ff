package resolver_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/scoperank/pkg/resolver"
	"github.com/stackb/scoperank/pkg/tower"
	"github.com/stackb/scoperank/pkg/visibility"
)

func ExampleBuckets_String() {
	buckets := resolver.NewBuckets()
	buckets.Add(
		&resolver.Candidate{Name: "foo", Origin: "implicit receiver", Key: tower.Implicit(1)},
		&resolver.Candidate{Name: "foo", Origin: "Base.foo", Key: tower.Member, Visibility: visibility.NewProtected(visibility.NamedType("Base"))},
		&resolver.Candidate{Name: "foo", Origin: "local", Key: tower.Local(1)},
		&resolver.Candidate{Name: "foo", Origin: "Derived.foo", Key: tower.Member},
	)

	fmt.Print(buckets)
	// output:
	// Member
	// ├ foo (protected (in Base)) Base.foo
	// └ foo (public) Derived.foo
	// Local(1)
	// └ foo (public) local
	// ImplicitOrNonLocal(1)
	// └ foo (public) implicit receiver
}

func TestBucketsWalk(t *testing.T) {
	for name, tc := range map[string]struct {
		keys []tower.Key
		stop int
		want []string
	}{
		"degenerate": {},
		"ascending": {
			keys: []tower.Key{tower.Last, tower.Local(2), tower.Start, tower.Local(1), tower.Local(1).Member()},
			want: []string{"Start", "Local(1)", "Local(1)/Member", "Local(2)", "Last"},
		},
		"duplicates share a bucket": {
			keys: []tower.Key{tower.Member, tower.Member, tower.Member.WithInvokePriority(tower.InvokeExtension)},
			want: []string{"Member", "Member+InvokeExtension"},
		},
		"stop early": {
			keys: []tower.Key{tower.Local(3), tower.Local(2), tower.Local(1)},
			stop: 2,
			want: []string{"Local(1)", "Local(2)"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			buckets := resolver.NewBuckets()
			for _, key := range tc.keys {
				buckets.Add(&resolver.Candidate{Name: "x", Key: key})
			}
			var got []string
			buckets.Walk(func(b *resolver.Bucket) bool {
				got = append(got, b.Key.String())
				return tc.stop == 0 || len(got) < tc.stop
			})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestBucketsAddAfterSort(t *testing.T) {
	buckets := resolver.NewBuckets()
	buckets.Add(&resolver.Candidate{Name: "x", Key: tower.Member})
	if got := len(buckets.Sorted()); got != 1 {
		t.Fatalf("want 1 bucket, got %d", got)
	}
	buckets.Add(&resolver.Candidate{Name: "x", Key: tower.Start})
	if got := buckets.Sorted()[0].Key; got != tower.Start {
		t.Errorf("want Start first, got %v", got)
	}
	if buckets.Len() != 2 {
		t.Errorf("want 2 buckets, got %d", buckets.Len())
	}
}
