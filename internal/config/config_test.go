package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, trie.Lowercase.Symbols(), cfg.Trie.Alphabet)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Console)
	assert.Empty(t, cfg.Dictionary.Path)
	assert.True(t, cfg.Dictionary.SkipInvalid)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.ParseLevel())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triectl.yaml")
	content := `
trie:
  alphabet: "acgt"
log:
  level: debug
  console: false
dictionary:
  path: /tmp/words.txt
  skip_invalid: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "acgt", cfg.Trie.Alphabet)
	assert.Equal(t, zerolog.DebugLevel, cfg.Log.ParseLevel())
	assert.False(t, cfg.Log.Console)
	assert.Equal(t, "/tmp/words.txt", cfg.Dictionary.Path)
	assert.False(t, cfg.Dictionary.SkipInvalid)

	a, err := cfg.Trie.NewAlphabet()
	require.NoError(t, err)
	assert.Equal(t, 4, a.Size())
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("TRIECTL_LOG_LEVEL", "warn")
	t.Setenv("TRIECTL_TRIE_ALPHABET", "0123456789")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, cfg.Log.ParseLevel())
	assert.Equal(t, "0123456789", cfg.Trie.Alphabet)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "duplicate alphabet symbols",
			cfg:  config.Config{Trie: config.TrieConfig{Alphabet: "aab"}, Log: config.LogConfig{Level: "info"}},
		},
		{
			name: "empty alphabet",
			cfg:  config.Config{Log: config.LogConfig{Level: "info"}},
		},
		{
			name: "bad log level",
			cfg:  config.Config{Trie: config.TrieConfig{Alphabet: "ab"}, Log: config.LogConfig{Level: "loud"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}

	err := (&config.Config{Trie: config.TrieConfig{Alphabet: "aab"}}).Validate()
	assert.ErrorIs(t, err, trie.ErrInvalidAlphabet)
}
