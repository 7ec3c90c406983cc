/*
Package config manages TOML config for buzzserve services.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vhaldran/buzzserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Search  SearchConfig  `toml:"search"`
	Suggest SuggestConfig `toml:"suggest"`
	Dict    DictConfig    `toml:"dict"`
	CLI     CliConfig     `toml:"cli"`
}

// SearchConfig holds ranker thresholds and limits.
type SearchConfig struct {
	MinQueryLen    int     `toml:"min_query_len"`
	MaxQueryLen    int     `toml:"max_query_len"`
	ScoreThreshold float64 `toml:"score_threshold"`
	TieEpsilon     float64 `toml:"tie_epsilon"`
	MaxResults     int     `toml:"max_results"`
	CacheCapacity  int     `toml:"cache_capacity"`
}

// SuggestConfig holds suggestion generator options.
type SuggestConfig struct {
	MaxSuggestions  int      `toml:"max_suggestions"`
	CategoryCap     int      `toml:"category_cap"`
	KeywordLenSlack int      `toml:"keyword_len_slack"`
	Popular         []string `toml:"popular"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DebounceMs  int  `toml:"debounce_ms"`
	ShowContext bool `toml:"show_context"`
}

// GetConfigDir returns the config directory, falling back to the current
// working directory when the user config dir cannot be determined.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		log.Errorf("Failed to get user config directory: %v", err)
		return os.Getwd()
	}
	return filepath.Join(base, "buzzserve"), nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MinQueryLen:    2,
			MaxQueryLen:    100,
			ScoreThreshold: 0.1,
			TieEpsilon:     0.01,
			MaxResults:     10,
			CacheCapacity:  100,
		},
		Suggest: SuggestConfig{
			MaxSuggestions:  6,
			CategoryCap:     2,
			KeywordLenSlack: 3,
			Popular: []string{
				"synergy",
				"leverage",
				"paradigm shift",
				"circle back",
				"deep dive",
				"touch base",
				"low-hanging fruit",
				"move the needle",
			},
		},
		Dict: DictConfig{
			Path: "",
		},
		CLI: CliConfig{
			DebounceMs:  200,
			ShowContext: true,
		},
	}
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

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages well-formed sections from a broken TOML file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if searchSection, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(searchSection, &config.Search)
	}
	if suggestSection, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		extractSuggestConfig(suggestSection, &config.Suggest)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := dictSection["path"].(string); ok {
			config.Dict.Path = val
		}
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractSearchConfig extracts search configuration from a map
func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "min_query_len"); ok {
		search.MinQueryLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		search.MaxQueryLen = val
	}
	if val, ok := utils.ExtractFloat64(data, "score_threshold"); ok {
		search.ScoreThreshold = val
	}
	if val, ok := utils.ExtractFloat64(data, "tie_epsilon"); ok {
		search.TieEpsilon = val
	}
	if val, ok := utils.ExtractInt64(data, "max_results"); ok {
		search.MaxResults = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_capacity"); ok {
		search.CacheCapacity = val
	}
}

// extractSuggestConfig extracts suggestion configuration from a map
func extractSuggestConfig(data map[string]any, suggest *SuggestConfig) {
	if val, ok := utils.ExtractInt64(data, "max_suggestions"); ok {
		suggest.MaxSuggestions = val
	}
	if val, ok := utils.ExtractInt64(data, "category_cap"); ok {
		suggest.CategoryCap = val
	}
	if val, ok := utils.ExtractInt64(data, "keyword_len_slack"); ok {
		suggest.KeywordLenSlack = val
	}
	if val, ok := utils.ExtractStringSlice(data, "popular"); ok {
		suggest.Popular = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "debounce_ms"); ok {
		cli.DebounceMs = val
	}
	if val, ok := data["show_context"].(bool); ok {
		cli.ShowContext = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
