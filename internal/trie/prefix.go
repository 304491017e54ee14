package trie

// WalkFunc is the type of the function called for each key-value pair in the
// trie. If the function returns false, the walk stops.
type WalkFunc[T any] func(key string, value T) bool

// Walk visits every key-value pair whose key starts with prefix, in
// lexicographical order.
func (m *Map[T]) Walk(prefix string, fn WalkFunc[T]) error {
	if err := m.validate("walk", prefix); err != nil {
		return err
	}

	node := m.findNode(prefix)
	if node == nil {
		return nil
	}
	m.walkNode(node, []byte(prefix), fn)
	return nil
}

// walkNode does a pre-order traversal of node, visiting child slots in
// ascending order. path holds the key spelled so far.
func (m *Map[T]) walkNode(node *Node[T], path []byte, fn WalkFunc[T]) bool {
	if node.hasValue {
		if !fn(string(path), node.value) {
			return false
		}
	}

	for idx, child := range node.children {
		if child == nil {
			continue
		}
		if !m.walkNode(child, append(path, m.alphabet.Symbol(idx)), fn) {
			return false
		}
	}
	return true
}

// KeysWithPrefix returns all keys in the trie that have the given prefix,
// sorted lexicographically.
func (m *Map[T]) KeysWithPrefix(prefix string) ([]string, error) {
	results := []string{}
	err := m.Walk(prefix, func(key string, _ T) bool {
		results = append(results, key)
		return true
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Keys returns every key in the trie in lexicographical order.
func (m *Map[T]) Keys() []string {
	keys, _ := m.KeysWithPrefix("")
	return keys
}

// HasKeyWithPrefix reports whether the path for prefix exists. The empty
// prefix always resolves to the root, so it is true even for an empty map.
func (m *Map[T]) HasKeyWithPrefix(prefix string) (bool, error) {
	if err := m.validate("has_key_with_prefix", prefix); err != nil {
		return false, err
	}
	return m.findNode(prefix) != nil, nil
}

// LongestPrefixOf returns the longest stored key that is a prefix of query,
// or "" if there is none.
func (m *Map[T]) LongestPrefixOf(query string) (string, error) {
	if err := m.validate("longest_prefix_of", query); err != nil {
		return "", err
	}

	node := m.root
	length := 0
	for i := 0; i < len(query); i++ {
		if node.hasValue {
			length = i
		}
		idx, _ := m.alphabet.Index(query[i])
		node = node.children[idx]
		if node == nil {
			return query[:length], nil
		}
	}

	// The whole query was walked.
	if node.hasValue {
		return query, nil
	}
	return query[:length], nil
}

// ShortestPrefixOf returns the shortest stored key that is a prefix of
// query, or "" if there is none.
func (m *Map[T]) ShortestPrefixOf(query string) (string, error) {
	if err := m.validate("shortest_prefix_of", query); err != nil {
		return "", err
	}
	if query == "" {
		return "", nil
	}

	node := m.root
	for i := 0; i < len(query); i++ {
		if node.hasValue {
			return query[:i], nil
		}
		idx, _ := m.alphabet.Index(query[i])
		node = node.children[idx]
		if node == nil {
			return "", nil
		}
	}

	if node.hasValue {
		return query, nil
	}
	return "", nil
}
