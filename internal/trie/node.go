package trie

// Node represents a node in the trie
type Node[T any] struct {
	// value stores the value associated with the key (if hasValue is set)
	value T

	// hasValue marks if the path to this node spells a stored key
	hasValue bool

	// children holds one slot per alphabet symbol, nil when empty
	children []*Node[T]
}

// newNode creates a value-absent node with size empty child slots
func newNode[T any](size int) *Node[T] {
	return &Node[T]{
		children: make([]*Node[T], size),
	}
}

// isDead reports whether the node holds no value and has no children,
// which makes it prunable
func (n *Node[T]) isDead() bool {
	if n.hasValue {
		return false
	}
	for _, child := range n.children {
		if child != nil {
			return false
		}
	}
	return true
}
