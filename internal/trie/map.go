// Package trie implements an ordered string-keyed map and set on top of a
// fixed-fan-out character trie.
//
// A Map is not safe for concurrent use. Callers sharing one across
// goroutines must provide their own locking.
package trie

import (
	"github.com/rs/zerolog"
)

// Map is a trie-backed map from strings to values of type T.
type Map[T any] struct {
	root     *Node[T]
	size     int
	alphabet *Alphabet
	logger   zerolog.Logger
}

// Option configures a Map or Set.
type Option func(*options)

type options struct {
	alphabet *Alphabet
	logger   zerolog.Logger
}

// WithAlphabet sets the symbols keys may contain. Defaults to Lowercase.
func WithAlphabet(a *Alphabet) Option {
	return func(o *options) {
		if a != nil {
			o.alphabet = a
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// New creates a new empty map
func New[T any](opts ...Option) *Map[T] {
	o := options{
		alphabet: Lowercase,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Map[T]{
		root:     newNode[T](o.alphabet.Size()),
		alphabet: o.alphabet,
		logger:   o.logger.With().Str("component", "trie").Logger(),
	}
}

// Len returns the number of keys in the map.
func (m *Map[T]) Len() int {
	return m.size
}

// Alphabet returns the alphabet the map was built with.
func (m *Map[T]) Alphabet() *Alphabet {
	return m.alphabet
}

// validate checks s against the alphabet and logs rejections.
func (m *Map[T]) validate(op, s string) error {
	if err := m.alphabet.Validate(s); err != nil {
		m.logger.Debug().Err(err).Str("op", op).Msg("Rejected key")
		return err
	}
	return nil
}

// findNode returns the node at the end of the path for key, or nil if the
// path does not exist. key must already be validated.
func (m *Map[T]) findNode(key string) *Node[T] {
	node := m.root
	for i := 0; i < len(key); i++ {
		idx, _ := m.alphabet.Index(key[i])
		node = node.children[idx]
		if node == nil {
			return nil
		}
	}
	return node
}
