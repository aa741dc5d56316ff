package tower

import (
	"strings"
	"sync"

	"github.com/dghubble/trie"
)

// Interner caches keys by their path string.  Every prefix of an interned
// path is cached too, so interning "Local(1)/Member" after "Local(1)" only
// refines once.  It is safe for concurrent use and optimized for reads.
type Interner struct {
	mu   sync.RWMutex
	keys *trie.PathTrie
}

// NewInterner constructs a new Interner.
func NewInterner() *Interner {
	return &Interner{
		keys: trie.NewPathTrie(),
	}
}

// Intern returns the Key for the given path, parsing it on first use.
func (in *Interner) Intern(path string) (Key, error) {
	primary, invoke, err := splitInvoke(strings.TrimSpace(path))
	if err != nil {
		return EmptyRoot, err
	}
	if primary == "" || primary == rootName {
		return EmptyRoot.WithInvokePriority(invoke), nil
	}

	in.mu.RLock()
	value := in.keys.Get(primary)
	in.mu.RUnlock()
	if value != nil {
		return value.(Key).WithInvokePriority(invoke), nil
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	key := EmptyRoot
	var prefix strings.Builder
	for i, segment := range strings.Split(primary, string(pathSeparator)) {
		if i > 0 {
			prefix.WriteRune(pathSeparator)
		}
		prefix.WriteString(segment)
		if cached := in.keys.Get(prefix.String()); cached != nil {
			key = cached.(Key)
			continue
		}
		kind, err := ParseKind(segment)
		if err != nil {
			return EmptyRoot, err
		}
		if key, err = key.Refine(kind); err != nil {
			return EmptyRoot, err
		}
		in.keys.Put(prefix.String(), key)
	}
	return key.WithInvokePriority(invoke), nil
}

// Len returns the number of cached paths.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	n := 0
	in.keys.Walk(func(key string, value interface{}) error {
		n++
		return nil
	})
	return n
}
