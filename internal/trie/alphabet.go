package trie

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidKeyCharacter is returned when a key or query contains a symbol
	// outside the map's alphabet.
	ErrInvalidKeyCharacter = errors.New("invalid key character")
	// ErrInvalidAlphabet is returned by NewAlphabet for unusable symbol sets.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
)

// InvalidKeyError describes the first out-of-alphabet byte in a key.
type InvalidKeyError struct {
	Key  string
	Pos  int
	Char byte
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d in key %q", ErrInvalidKeyCharacter, e.Char, e.Pos, e.Key)
}

func (e *InvalidKeyError) Unwrap() error {
	return ErrInvalidKeyCharacter
}

// Alphabet is the closed set of single-byte symbols a trie accepts.
// Symbols are kept in ascending byte order, so child slot order is
// lexicographic order.
type Alphabet struct {
	symbols []byte
	index   [256]int16
}

// Lowercase is the default alphabet, 'a' through 'z'.
var Lowercase = mustAlphabet("abcdefghijklmnopqrstuvwxyz")

// NewAlphabet builds an alphabet from the given symbols. The symbols must be
// non-empty, unique and ASCII.
func NewAlphabet(symbols string) (*Alphabet, error) {
	if symbols == "" {
		return nil, fmt.Errorf("%w: no symbols", ErrInvalidAlphabet)
	}

	a := &Alphabet{symbols: []byte(symbols)}
	slices.Sort(a.symbols)
	for i := range a.index {
		a.index[i] = -1
	}
	for i, c := range a.symbols {
		if c >= 0x80 {
			return nil, fmt.Errorf("%w: non-ASCII symbol %q", ErrInvalidAlphabet, c)
		}
		if a.index[c] != -1 {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidAlphabet, c)
		}
		a.index[c] = int16(i)
	}
	return a, nil
}

func mustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols, which is also the node fan-out.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the symbols in slot order.
func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

// Index returns the child slot for c.
func (a *Alphabet) Index(c byte) (int, bool) {
	i := a.index[c]
	return int(i), i >= 0
}

// Symbol returns the symbol stored at slot i.
func (a *Alphabet) Symbol(i int) byte {
	return a.symbols[i]
}

// Validate reports the first byte of s that is not in the alphabet.
func (a *Alphabet) Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if a.index[s[i]] < 0 {
			return &InvalidKeyError{Key: s, Pos: i, Char: s[i]}
		}
	}
	return nil
}
