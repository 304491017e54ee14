package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/config"
	"github.com/kumarlokesh/sysd/exercises/prefix-trie/internal/trie"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	wordsPath := flag.String("words", "", "Word list, one per line (overrides dictionary.path, default stdin)")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	setupLogger(cfg.Log)

	alphabet, err := cfg.Trie.NewAlphabet()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build alphabet")
	}
	set := trie.NewSet(trie.WithAlphabet(alphabet), trie.WithLogger(log.Logger))

	path := cfg.Dictionary.Path
	if *wordsPath != "" {
		path = *wordsPath
	}
	var src io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("Failed to open word list")
		}
		defer f.Close()
		src = f
	}

	start := time.Now()
	stats, err := loadWords(src, set, cfg.Dictionary.SkipInvalid)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load words")
	}
	log.Info().
		Int("loaded", stats.Loaded).
		Int("skipped", stats.Skipped).
		Int("keys", set.Len()).
		Dur("duration", time.Since(start)).
		Msg("Loaded word list")

	args := flag.Args()
	if err := runCommand(os.Stdout, set, args[0], args[1:]); err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("Command failed")
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	var logger zerolog.Logger
	if cfg.Console {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	log.Logger = logger.With().Timestamp().Logger().Level(cfg.ParseLevel())
}

func showHelp() {
	helpText := `triectl - prefix queries over a word list

Usage:
  triectl [flags] <command> [argument]

Flags:
  --config string   Path to config file
  --words string    Word list file (default stdin)
  --help            Show this help message

Commands:
  keys <prefix>        List words starting with prefix
  has <word>           Report whether word is in the list
  has-prefix <prefix>  Report whether any word starts with prefix
  longest <query>      Longest word that is a prefix of query
  shortest <query>     Shortest word that is a prefix of query
  count                Number of distinct words
`
	fmt.Print(helpText)
}
