/*
Package config manages the TOML config for wordbook.

	[dict]
	path = ""          # empty uses the embedded corpus
	variant = "default"

	[search]
	default_limit = 5
	fuzzy_level = 2
	min_query_len = 3

	[state]
	dir = ""           # empty uses <config dir>/data
	history_limit = 70
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
)

// AppName names the config directory.
const AppName = "wordbook"

// State file names inside the state dir.
const (
	HistoryFile    = "history.txt"
	FavoritesFile  = "favorites.txt"
	WordOfDayFile  = "word_of_the_day.txt"
	configFileName = "config.toml"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Search SearchConfig `toml:"search"`
	State  StateConfig  `toml:"state"`
}

// DictConfig selects the corpus.
type DictConfig struct {
	Path    string `toml:"path"`
	Variant string `toml:"variant"`
}

// SearchConfig holds ranking defaults.
type SearchConfig struct {
	DefaultLimit int `toml:"default_limit"`
	FuzzyLevel   int `toml:"fuzzy_level"`
	MinQueryLen  int `toml:"min_query_len"`
}

// StateConfig places the persisted state files.
type StateConfig struct {
	Dir          string `toml:"dir"`
	HistoryLimit int    `toml:"history_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:    "",
			Variant: "default",
		},
		Search: SearchConfig{
			DefaultLimit: 5,
			FuzzyLevel:   2,
			MinQueryLen:  3,
		},
		State: StateConfig{
			Dir:          "",
			HistoryLimit: 70,
		},
	}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/wordbook
// 2. ~/Library/Application Support/wordbook (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", AppName)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", AppName)
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [ConfigDir]/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		customConfigPath = expand(customConfigPath)
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that fails to decode as a whole
// still contributes every section that parses.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	raw, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(raw, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(raw, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(raw, "state"); ok {
		extractStateConfig(section, &config.State)
	}
	config.sanitize()
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractString(data, "variant"); ok {
		dict.Variant = val
	}
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		search.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "fuzzy_level"); ok {
		search.FuzzyLevel = val
	}
	if val, ok := utils.ExtractInt64(data, "min_query_len"); ok {
		search.MinQueryLen = val
	}
}

func extractStateConfig(data map[string]any, state *StateConfig) {
	if val, ok := utils.ExtractString(data, "dir"); ok {
		state.Dir = val
	}
	if val, ok := utils.ExtractInt64(data, "history_limit"); ok {
		state.HistoryLimit = val
	}
}

// sanitize replaces out-of-range values with defaults.
func (c *Config) sanitize() {
	defaults := DefaultConfig()
	if c.Search.DefaultLimit < 1 {
		log.Warnf("Invalid default_limit %d, using %d", c.Search.DefaultLimit, defaults.Search.DefaultLimit)
		c.Search.DefaultLimit = defaults.Search.DefaultLimit
	}
	if c.Search.FuzzyLevel < 0 {
		log.Warnf("Invalid fuzzy_level %d, using %d", c.Search.FuzzyLevel, defaults.Search.FuzzyLevel)
		c.Search.FuzzyLevel = defaults.Search.FuzzyLevel
	}
	if c.Search.MinQueryLen < 0 {
		c.Search.MinQueryLen = defaults.Search.MinQueryLen
	}
	if c.State.HistoryLimit < 1 {
		log.Warnf("Invalid history_limit %d, using %d", c.State.HistoryLimit, defaults.State.HistoryLimit)
		c.State.HistoryLimit = defaults.State.HistoryLimit
	}
	if c.Dict.Variant == "" {
		c.Dict.Variant = defaults.Dict.Variant
	}
}

// StateDir returns where history, favorites and the word of the day live.
// configPath is the active config file; its directory hosts data/ by default.
func (c *Config) StateDir(configPath string) (string, error) {
	if c.State.Dir != "" {
		return expand(c.State.Dir), nil
	}
	if configPath != "" {
		return filepath.Join(filepath.Dir(configPath), "data"), nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "data"), nil
}

// CorpusPath returns the configured corpus file with ~ expanded, or "" for
// the embedded corpus.
func (c *Config) CorpusPath() string {
	if c.Dict.Path == "" {
		return ""
	}
	return expand(c.Dict.Path)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// RebuildConfigFile force creates a new config.toml at the default path
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

func expand(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		log.Warnf("Could not expand %s: %v", path, err)
		return path
	}
	return expanded
}
