package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

// loadStats reports the outcome of loading a word list
type loadStats struct {
	Loaded  int
	Skipped int
}

// loadWords adds one word per line from r to set. Blank lines are ignored.
// Words outside the alphabet are skipped when skipInvalid is set, otherwise
// loading stops with the error.
func loadWords(r io.Reader, set *trie.Set, skipInvalid bool) (loadStats, error) {
	var stats loadStats
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if err := set.Add(word); err != nil {
			if !skipInvalid || !errors.Is(err, trie.ErrInvalidKeyCharacter) {
				return stats, fmt.Errorf("line %d: %w", line, err)
			}
			log.Warn().Err(err).Int("line", line).Msg("Skipping word")
			stats.Skipped++
			continue
		}
		stats.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("failed to read word list: %w", err)
	}
	return stats, nil
}

// runCommand executes a single query against set and writes the result to w
func runCommand(w io.Writer, set *trie.Set, cmd string, args []string) error {
	if cmd == "count" {
		_, err := fmt.Fprintln(w, set.Len())
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("%w for %s", ErrMissingArgument, cmd)
	}
	arg := args[0]

	switch cmd {
	case "keys":
		keys, err := set.KeysWithPrefix(arg)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if _, err := fmt.Fprintln(w, k); err != nil {
				return err
			}
		}
		return nil
	case "has":
		ok, err := set.Has(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, ok)
		return err
	case "has-prefix":
		ok, err := set.HasKeyWithPrefix(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, ok)
		return err
	case "longest":
		match, err := set.LongestPrefixOf(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, match)
		return err
	case "shortest":
		match, err := set.ShortestPrefixOf(arg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, match)
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}
