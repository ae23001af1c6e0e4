package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bastiangx/wordbook/internal/cli"
	"github.com/bastiangx/wordbook/internal/logger"
	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/config"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/bastiangx/wordbook/pkg/favorites"
	"github.com/bastiangx/wordbook/pkg/history"
	"github.com/bastiangx/wordbook/pkg/pick"
	"github.com/bastiangx/wordbook/pkg/server"
	"github.com/bastiangx/wordbook/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// maxQueryLen bounds interactive queries.
const maxQueryLen = 60

// app carries what every command shares once the config is loaded.
type app struct {
	configFile string
	debug      bool

	cfg        *config.Config
	configPath string
	stateDir   string
	corpus     *dictionary.Corpus
	printer    *cli.Printer
	now        func() time.Time
}

// searchFlags are the root command's mode and display flags.
type searchFlags struct {
	pattern     string
	fuzzy       bool
	level       int
	limit       int
	all         bool
	offset      int
	interactive bool
	version     bool
}

func newRootCmd(a *app) *cobra.Command {
	var f searchFlags

	rootCmd := &cobra.Command{
		Use:   "wordbook [word]",
		Short: "Look up words, with suggestions when there is no exact match",
		Long: `Wordbook looks words up in a static dictionary. Misses get ranked
"did you mean" suggestions; history, favorites and a word of the day
are kept between runs.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.version {
				showVersion()
				return nil
			}
			return a.runSearch(cmd, args, f)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "Path to a custom config file")
	pf.BoolVarP(&a.debug, "debug", "d", false, "Toggle debug mode")

	fl := rootCmd.Flags()
	fl.StringVarP(&f.pattern, "search", "s", "", "Search words matching a regular expression")
	fl.BoolVarP(&f.fuzzy, "fuzzy", "f", false, "Search words within --level edits of the word")
	fl.IntVar(&f.level, "level", 0, "Maximum edit distance for --fuzzy (default from config)")
	fl.IntVarP(&f.limit, "limit", "n", 0, "Number of suggestions to show (default from config)")
	fl.BoolVarP(&f.all, "all", "a", false, "Show every suggestion")
	fl.IntVarP(&f.offset, "offset", "o", 0, "Skip this many suggestions")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "Read queries from stdin")
	fl.BoolVar(&f.version, "version", false, "Show current version")

	rootCmd.MarkFlagsMutuallyExclusive("all", "limit")
	rootCmd.MarkFlagsMutuallyExclusive("all", "offset")
	rootCmd.MarkFlagsMutuallyExclusive("search", "fuzzy")
	rootCmd.MarkFlagsMutuallyExclusive("search", "interactive")
	rootCmd.MarkFlagsMutuallyExclusive("fuzzy", "interactive")

	rootCmd.AddCommand(createHistoryCmd(a))
	rootCmd.AddCommand(createFavCmd(a))
	rootCmd.AddCommand(createTodayCmd(a))
	rootCmd.AddCommand(createRandomCmd(a))
	rootCmd.AddCommand(createServeCmd(a))
	rootCmd.AddCommand(createConfigCmd(a))

	return rootCmd
}

// setup loads the config and resolves the state dir. The corpus is loaded
// by the commands that need it.
func (a *app) setup(cmd *cobra.Command) error {
	logger.Setup(a.debug)

	cfg, configPath, err := config.LoadConfigWithPriority(a.configFile)
	if err != nil {
		return err
	}
	stateDir, err := cfg.StateDir(configPath)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrStateIO, err)
	}

	a.cfg = cfg
	a.configPath = configPath
	a.stateDir = stateDir
	a.printer = cli.NewPrinter(cmd.OutOrStdout())
	if a.now == nil {
		a.now = time.Now
	}
	log.Debug("Config loaded", "path", configPath, "state", stateDir)
	return nil
}

// loadCorpus reads the configured corpus file, or the embedded one.
func (a *app) loadCorpus() error {
	if a.corpus != nil {
		return nil
	}
	var (
		corpus *dictionary.Corpus
		err    error
	)
	if path := a.cfg.CorpusPath(); path != "" {
		if resolver, rerr := utils.NewPathResolver(a.configDir()); rerr == nil {
			path = resolver.ResolveFile(path)
		} else {
			log.Warnf("Path resolver unavailable: %v", rerr)
		}
		corpus, err = dictionary.LoadFile(path)
	} else {
		corpus, err = dictionary.LoadEmbedded(a.cfg.Dict.Variant)
	}
	if err != nil {
		return err
	}
	a.corpus = corpus
	return nil
}

// configDir is the directory of the config file in use.
func (a *app) configDir() string {
	if a.configPath != "" {
		return filepath.Dir(a.configPath)
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		log.Warnf("Could not determine config dir: %v", err)
	}
	return dir
}

func (a *app) historyStore() *history.Store {
	return history.New(filepath.Join(a.stateDir, config.HistoryFile), a.cfg.State.HistoryLimit)
}

func (a *app) favoritesStore() *favorites.Store {
	return favorites.New(filepath.Join(a.stateDir, config.FavoritesFile), a.corpus)
}

func (a *app) daily() *pick.Daily {
	return pick.NewDaily(filepath.Join(a.stateDir, config.WordOfDayFile), a.corpus)
}

// options turns display flags into engine options. Unset limits fall back
// to the config.
func (a *app) options(cmd *cobra.Command, f searchFlags) suggest.Options {
	if f.all {
		return suggest.Options{All: true}
	}
	limit := a.cfg.Search.DefaultLimit
	if cmd.Flags().Changed("limit") {
		limit = f.limit
	}
	return suggest.Options{Limit: limit, Offset: f.offset}
}

func (a *app) runSearch(cmd *cobra.Command, args []string, f searchFlags) error {
	modes := 0
	for _, set := range []bool{len(args) == 1, f.pattern != "", f.interactive} {
		if set {
			modes++
		}
	}
	if f.fuzzy && len(args) == 0 {
		return errors.New("--fuzzy needs a word")
	}
	if modes == 0 {
		return cmd.Help()
	}
	if modes > 1 {
		return errors.New("give exactly one of a word, --search or --interactive")
	}

	if err := a.loadCorpus(); err != nil {
		return err
	}
	level := a.cfg.Search.FuzzyLevel
	if cmd.Flags().Changed("level") {
		level = f.level
	}
	opts := a.options(cmd, f)
	searcher := cli.NewSearcher(suggest.NewEngine(a.corpus), a.historyStore(), a.printer, a.cfg.Search.MinQueryLen)

	var err error
	switch {
	case f.interactive:
		handler := cli.NewInputHandler(searcher, a.printer, opts, level, maxQueryLen)
		err = handler.Start(cmd.InOrStdin())
	case f.pattern != "":
		err = searcher.Pattern(f.pattern, opts)
	case f.fuzzy:
		err = searcher.Fuzzy(args[0], level, opts)
	default:
		err = searcher.Word(args[0], opts)
	}
	return a.report(err)
}

// report prints non-fatal errors as messages and passes fatal ones on.
func (a *app) report(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrStateIO) || errors.Is(err, dictionary.ErrLoad) {
		return err
	}
	a.printer.Message(err.Error())
	return nil
}

// createHistoryCmd shows or clears the search history
func createHistoryCmd(a *app) *cobra.Command {
	var clearHistory bool
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := a.historyStore()
			if clearHistory {
				removed, err := store.Clear()
				if err != nil {
					return err
				}
				if removed {
					a.printer.Message("Search history cleared")
				} else {
					a.printer.Message("No history to clear")
				}
				return nil
			}
			entries, err := store.Entries()
			if err != nil {
				return err
			}
			a.printer.List("Search history:", entries, "No search history found")
			return nil
		},
	}
	cmd.Flags().BoolVar(&clearHistory, "clear", false, "Delete the search history")
	return cmd
}

// createFavCmd groups the favorites subcommands
func createFavCmd(a *app) *cobra.Command {
	favCmd := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite words",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd); err != nil {
				return err
			}
			return a.loadCorpus()
		},
	}

	favCmd.AddCommand(&cobra.Command{
		Use:   "add [word]",
		Short: "Add a dictionary word to favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.favoritesStore().Add(args[0]); err != nil {
				return a.report(err)
			}
			a.printer.Message(fmt.Sprintf("'%s' has been added to favorites", args[0]))
			return nil
		},
	})
	favCmd.AddCommand(&cobra.Command{
		Use:   "rm [word]",
		Short: "Remove a word from favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.favoritesStore().Remove(args[0]); err != nil {
				return a.report(err)
			}
			a.printer.Message(fmt.Sprintf("'%s' has been removed from favorites", args[0]))
			return nil
		},
	})
	favCmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List favorite words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := a.favoritesStore().List()
			if err != nil {
				return err
			}
			a.printer.List("Favorites:", words, "No favorites yet")
			return nil
		},
	})
	return favCmd
}

// createTodayCmd prints the word of the day
func createTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the word of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadCorpus(); err != nil {
				return err
			}
			word, err := a.daily().Get(a.now())
			if err != nil {
				return a.report(err)
			}
			a.showWord("Word of the day:", word)
			return nil
		},
	}
}

// createRandomCmd prints a uniformly chosen word
func createRandomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Show a random word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadCorpus(); err != nil {
				return err
			}
			word, ok := pick.Random(a.corpus, nil)
			if !ok {
				return a.report(pick.ErrEmptyCorpus)
			}
			a.showWord("Random word:", word)
			return nil
		},
	}
}

// createServeCmd starts the MessagePack IPC server
func createServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Answer MessagePack requests on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadCorpus(); err != nil {
				return err
			}
			showStartupInfo(a.corpus)
			srv := server.NewServerWithIO(suggest.NewEngine(a.corpus), server.Options{
				Corpus:       a.corpus,
				Daily:        a.daily(),
				DefaultLimit: a.cfg.Search.DefaultLimit,
				FuzzyLevel:   a.cfg.Search.FuzzyLevel,
				Now:          a.now,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
			return srv.Start()
		},
	}
}

func (a *app) showWord(title, word string) {
	a.printer.Word(title, word)
	if fav, err := a.favoritesStore().Contains(word); err == nil && fav {
		a.printer.Message("(in favorites)")
	}
	if defs, ok := a.corpus.Lookup(word); ok {
		a.printer.Definitions(word, defs)
	}
}

// createConfigCmd shows where wordbook reads and writes its files
func createConfigCmd(a *app) *cobra.Command {
	var rebuild bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show config and state locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rebuild {
				path, err := config.RebuildConfigFile()
				if err != nil {
					return a.report(fmt.Errorf("rebuilding config: %w", err))
				}
				a.printer.Message(fmt.Sprintf("Wrote default config to %s", path))
				return nil
			}

			corpus := a.cfg.CorpusPath()
			if corpus == "" {
				corpus = "embedded (" + a.cfg.Dict.Variant + ")"
			}
			a.printer.Word("config:", utils.GetAbsolutePath(a.configPath))
			a.printer.Word("state:", utils.GetAbsolutePath(a.stateDir))
			a.printer.Word("corpus:", corpus)

			if a.debug {
				resolver, err := utils.NewPathResolver(a.configDir())
				if err != nil {
					return a.report(err)
				}
				info := resolver.GetRuntimeInfo()
				keys := slices.Sorted(maps.Keys(info))
				lines := make([]string, len(keys))
				for i, k := range keys {
					lines[i] = k + " = " + info[k]
				}
				a.printer.List("runtime:", lines, "")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Overwrite the default config file with defaults")
	return cmd
}

// showStartupInfo logs basic server info at debug level, on stderr.
func showStartupInfo(corpus *dictionary.Corpus) {
	log.Debugf("Version: %s", Version)
	log.Debugf("Process ID: [ %d ]", os.Getpid())
	log.Debugf("corpus: %d words, %d entries", corpus.Len(), corpus.Entries())
	log.Debug("status: ready")
}
