package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

// EnvPrefix is the prefix for environment overrides, e.g. TRIECTL_LOG_LEVEL.
const EnvPrefix = "TRIECTL"

// Config holds all configuration for triectl
type Config struct {
	Trie       TrieConfig       `mapstructure:"trie"`
	Log        LogConfig        `mapstructure:"log"`
	Dictionary DictionaryConfig `mapstructure:"dictionary"`
}

// TrieConfig holds trie related configuration
type TrieConfig struct {
	Alphabet string `mapstructure:"alphabet"`
}

// LogConfig holds logging related configuration
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// DictionaryConfig controls how words are loaded
type DictionaryConfig struct {
	Path        string `mapstructure:"path"`
	SkipInvalid bool   `mapstructure:"skip_invalid"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("trie.alphabet", trie.Lowercase.Symbols())

	v.SetDefault("log.level", "info")
	v.SetDefault("log.console", true)

	// Empty path reads words from stdin
	v.SetDefault("dictionary.path", "")
	v.SetDefault("dictionary.skip_invalid", true)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.Trie.NewAlphabet(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// NewAlphabet builds the configured alphabet
func (c *TrieConfig) NewAlphabet() (*trie.Alphabet, error) {
	a, err := trie.NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("invalid trie alphabet: %w", err)
	}
	return a, nil
}

// ParseLevel returns the configured log level, falling back to info
func (c *LogConfig) ParseLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
