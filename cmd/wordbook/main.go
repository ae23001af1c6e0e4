// Copyright 2025 The Wordbook Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordbook dictionary CLI.

Wordbook looks words up in a static word to definitions corpus. When a word
is not in the corpus it offers "did you mean" suggestions, ranked by how
close they are to the query. It also keeps a little state between runs:
recent lookups, favorited words and a word of the day.

# Usage

Look a word up:

	wordbook haf

Search with a regular expression, or by edit distance:

	wordbook -s '^h.*r$'
	wordbook -f hestx --level 1

Page through suggestions:

	wordbook hafx -n 10 -o 10
	wordbook hafx --all

Browse state:

	wordbook history
	wordbook history --clear
	wordbook fav add haf
	wordbook fav ls
	wordbook today
	wordbook random

# Interactive Mode

With -i, queries are read from stdin one per line. A leading '/' runs a
pattern search and a leading '~' a fuzzy search:

	> haf
	> /^s.*a$
	> ~hestx

# Server Mode

The serve command answers MessagePack requests on stdin/stdout, for editor
integrations:

	{"id": "1", "op": "lookup", "w": "haf"}
	{"id": "2", "op": "suggest", "w": "ha", "l": 3}
	{"id": "3", "op": "fuzzy", "w": "hestx", "lvl": 1}
	{"id": "4", "op": "today"}

# Configuration

Settings live in config.toml under the platform config dir, or the file
given by --config. It is created with defaults on first run. See the config
package for the keys.

Logs go to stderr; -d enables debug output.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordbook"
	gh      = "https://github.com/bastiangx/wordbook"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow; commands live in commands.go.
func main() {
	sigHandler()

	rootCmd := newRootCmd(&app{})
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, dictionary.ErrLoad) || errors.Is(err, utils.ErrStateIO) {
			log.Fatal(err)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// showVersion prints the version banner.
func showVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Wordbook ] Definitions, suggestions and a word a day")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
