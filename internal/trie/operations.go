package trie

// Set stores val under key, overwriting any previous value.
func (m *Map[T]) Set(key string, val T) error {
	if err := m.validate("set", key); err != nil {
		return err
	}

	if node := m.findNode(key); node == nil || !node.hasValue {
		m.size++
	}
	m.root = m.setKey(m.root, key, val, 0)
	return nil
}

// setKey descends one byte per level, materializing missing nodes, and
// returns the node to be stored in the parent's slot.
func (m *Map[T]) setKey(node *Node[T], key string, val T, i int) *Node[T] {
	if node == nil {
		node = newNode[T](m.alphabet.Size())
	}
	if i == len(key) {
		node.value = val
		node.hasValue = true
		return node
	}

	idx, _ := m.alphabet.Index(key[i])
	node.children[idx] = m.setKey(node.children[idx], key, val, i+1)
	return node
}

// Get returns the value associated with key. ok is false if the path does
// not exist or only passes through key on the way to longer keys.
func (m *Map[T]) Get(key string) (val T, ok bool, err error) {
	if err := m.validate("get", key); err != nil {
		return val, false, err
	}

	node := m.findNode(key)
	if node == nil || !node.hasValue {
		return val, false, nil
	}
	return node.value, true, nil
}

// Has reports whether key is stored in the map.
func (m *Map[T]) Has(key string) (bool, error) {
	_, ok, err := m.Get(key)
	return ok, err
}

// Delete removes key and prunes nodes left with no value and no children.
// Deleting an absent key is a no-op.
func (m *Map[T]) Delete(key string) error {
	ok, err := m.Has(key)
	if err != nil || !ok {
		return err
	}

	var pruned int
	// The root stays in place even when it becomes empty.
	m.deleteKey(m.root, key, 0, &pruned)
	m.size--

	m.logger.Debug().
		Str("key", key).
		Int("pruned", pruned).
		Int("size", m.size).
		Msg("Deleted key")
	return nil
}

// deleteKey clears the value at the end of key's path and returns the node
// to keep in the parent's slot, or nil if it was pruned. The whole path is
// known to exist.
func (m *Map[T]) deleteKey(node *Node[T], key string, i int, pruned *int) *Node[T] {
	if i == len(key) {
		var zero T
		node.value = zero
		node.hasValue = false
	} else {
		idx, _ := m.alphabet.Index(key[i])
		node.children[idx] = m.deleteKey(node.children[idx], key, i+1, pruned)
	}

	if !node.isDead() {
		return node
	}
	if i > 0 {
		*pruned++
	}
	return nil
}
