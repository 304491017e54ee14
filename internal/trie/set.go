package trie

// Set is a trie-backed set of strings. Each key is stored as its own value.
// Like Map, it is not safe for concurrent use.
type Set struct {
	m *Map[string]
}

// NewSet creates a new empty set
func NewSet(opts ...Option) *Set {
	return &Set{m: New[string](opts...)}
}

// Add inserts key into the set.
func (s *Set) Add(key string) error { return s.m.Set(key, key) }

// Delete removes key from the set.
func (s *Set) Delete(key string) error { return s.m.Delete(key) }

// Has reports whether key is in the set.
func (s *Set) Has(key string) (bool, error) { return s.m.Has(key) }

// Len returns the number of keys in the set.
func (s *Set) Len() int { return s.m.Len() }

func (s *Set) Keys() []string { return s.m.Keys() }

func (s *Set) KeysWithPrefix(prefix string) ([]string, error) { return s.m.KeysWithPrefix(prefix) }

func (s *Set) HasKeyWithPrefix(prefix string) (bool, error) { return s.m.HasKeyWithPrefix(prefix) }

func (s *Set) LongestPrefixOf(query string) (string, error) { return s.m.LongestPrefixOf(query) }

func (s *Set) ShortestPrefixOf(query string) (string, error) { return s.m.ShortestPrefixOf(query) }
