package resolver

import (
	"sort"

	"github.com/stackb/scoperank/pkg/collections"
	"github.com/stackb/scoperank/pkg/tower"
)

// Bucket holds the candidates that share a tower key.
type Bucket struct {
	Key        tower.Key
	Candidates []*Candidate
}

// Buckets groups candidates by tower key.  Candidates may be added in any
// order; Sorted and Walk always visit buckets from the highest priority
// (smallest key) to the lowest.
type Buckets struct {
	byKey  map[tower.Key]*Bucket
	sorted []*Bucket
}

// NewBuckets constructs a new, empty Buckets.
func NewBuckets() *Buckets {
	return &Buckets{
		byKey: make(map[tower.Key]*Bucket),
	}
}

// Add places the candidate in the bucket of its key.
func (b *Buckets) Add(candidates ...*Candidate) {
	for _, c := range candidates {
		bucket, ok := b.byKey[c.Key]
		if !ok {
			bucket = &Bucket{Key: c.Key}
			b.byKey[c.Key] = bucket
			b.sorted = nil
		}
		bucket.Candidates = append(bucket.Candidates, c)
	}
}

// Len returns the number of buckets.
func (b *Buckets) Len() int {
	return len(b.byKey)
}

// Sorted returns the buckets in ascending key order.
func (b *Buckets) Sorted() []*Bucket {
	if b.sorted == nil && len(b.byKey) > 0 {
		b.sorted = make([]*Bucket, 0, len(b.byKey))
		for _, bucket := range b.byKey {
			b.sorted = append(b.sorted, bucket)
		}
		sort.Slice(b.sorted, func(i, j int) bool {
			return b.sorted[i].Key.Less(b.sorted[j].Key)
		})
	}
	return b.sorted
}

// Walk visits the buckets in ascending key order until visit returns false.
func (b *Buckets) Walk(visit func(*Bucket) bool) {
	for _, bucket := range b.Sorted() {
		if !visit(bucket) {
			return
		}
	}
}

// String renders the buckets as a tree, one root per key.
func (b *Buckets) String() string {
	tree := collections.NewTree("")
	for _, bucket := range b.Sorted() {
		node := tree.Add(bucket.Key.String())
		for _, c := range bucket.Candidates {
			node.Add(c.String())
		}
	}
	return tree.String()
}
