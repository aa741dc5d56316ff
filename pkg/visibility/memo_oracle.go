package visibility

import "sync"

type typePair struct {
	a, b TypeHandle
}

// MemoOracle implements SubtypeOracle, memoizing results of the next
// oracle.  It is safe for concurrent use; lookups only take a read lock.
type MemoOracle struct {
	next  SubtypeOracle
	mu    sync.RWMutex
	cache map[typePair]bool
}

// NewMemoOracle constructs a new MemoOracle.
func NewMemoOracle(next SubtypeOracle) *MemoOracle {
	return &MemoOracle{
		next:  next,
		cache: make(map[typePair]bool),
	}
}

// IsSubtypeOf implements the SubtypeOracle interface
func (o *MemoOracle) IsSubtypeOf(a, b TypeHandle) bool {
	key := typePair{a, b}

	o.mu.RLock()
	result, ok := o.cache[key]
	o.mu.RUnlock()
	if ok {
		return result
	}

	result = o.next.IsSubtypeOf(a, b)

	o.mu.Lock()
	o.cache[key] = result
	o.mu.Unlock()
	return result
}

// Len returns the number of memoized answers.
func (o *MemoOracle) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.cache)
}
