// Package config provides configuration loading and discovery for lcf-validate.
//
// Configuration is loaded from multiple sources with the following priority
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LCF_VALIDATE_* prefix)
//  3. Config file (closest .lcf-validate.toml or lcf-validate.toml)
//  4. Built-in defaults
//
// Config file discovery starts at the linted game directory and walks up the
// filesystem until a config file is found. The closest config wins (no
// merging).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
)

// ConfigFileNames defines the config file names to search for, in priority order.
var ConfigFileNames = []string{".lcf-validate.toml", "lcf-validate.toml"}

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "LCF_VALIDATE_"

// Config represents the complete lcf-validate configuration.
//
// Example TOML configuration:
//
//	level = "warn"
//	suppress = [4, 7]
//	jobs = 8
//	encoding = "shift-jis"
//	exclude = ["Map0001.lmu"]
//
//	[output]
//	format = "json"
//
//	[rules.2kki.comment-length]
//	severity = "error"
//	max-width = 60
type Config struct {
	// Level is the severity floor: all, warn or error.
	Level string `json:"level,omitempty" koanf:"level"`

	// Suppress lists 1-based rule indexes that must not run.
	Suppress []int `json:"suppress,omitempty" koanf:"suppress"`

	// Jobs is the number of maps checked in parallel (0 = one per CPU).
	Jobs int `json:"jobs,omitempty" koanf:"jobs"`

	// Encoding is the code page used to display map names.
	Encoding string `json:"encoding,omitempty" koanf:"encoding"`

	// Exclude contains glob patterns of map file names to skip in batch runs.
	Exclude []string `json:"exclude,omitempty" koanf:"exclude"`

	// Rules contains configuration for individual linting rules.
	Rules RulesConfig `json:"rules" koanf:"rules"`

	// Output configures output format and destination.
	Output OutputConfig `json:"output" koanf:"output"`

	// Log configures diagnostic logging of the tool itself.
	Log LogConfig `json:"log" koanf:"log"`

	// ConfigFile is the path to the config file that was loaded (if any).
	// This is metadata, not loaded from config.
	ConfigFile string `json:"-" koanf:"-"`
}

// OutputConfig configures output formatting and behavior.
type OutputConfig struct {
	// Format specifies the output format.
	Format string `json:"format,omitempty" koanf:"format"`

	// Path specifies where to write output.
	Path string `json:"path,omitempty" koanf:"path"`

	// NoColor disables colored text output.
	NoColor bool `json:"no-color,omitempty" koanf:"no-color"`
}

// LogConfig configures the tool's own log output.
type LogConfig struct {
	// Level is a logrus level name (panic, fatal, error, warn, info, debug, trace).
	Level string `json:"level,omitempty" koanf:"level"`
}

// Default returns the default configuration.
// Rule-specific defaults are owned by each rule via ConfigurableRule.DefaultConfig().
func Default() *Config {
	return &Config{
		Level:    "all",
		Encoding: "ascii",
		Output: OutputConfig{
			Format: "text",
			Path:   "stdout",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration for a target path.
// It discovers the closest config file, loads it, and applies
// environment variable overrides.
func Load(targetPath string) (*Config, error) {
	return loadWithConfigPathAndOverrides(Discover(targetPath), nil)
}

// LoadFromFile loads configuration from a specific config file path.
// Unlike Load, it does not perform config discovery.
func LoadFromFile(configPath string) (*Config, error) {
	return loadWithConfigPathAndOverrides(configPath, nil)
}

// knownHyphenatedKeys maps dot-separated patterns to their hyphenated equivalents.
// Add new entries here when adding rules or options with hyphenated names.
var knownHyphenatedKeys = map[string]string{
	"weather.parity": "weather-parity",
	"tissue.events":  "tissue-events",
	"v44.assignment": "v44-assignment",
	"instant.scroll": "instant-scroll",
	"special.skills": "special-skills",
	"comment.length": "comment-length",
	"show.picture":   "show-picture",
	"blue.sign":      "blue-sign",
	"pade.transfer":  "pade-transfer",
	"parallel.erase": "parallel-erase",
	"max.width":      "max-width",
	"no.color":       "no-color",
}

var allowedEnvTopLevelKeys = map[string]struct{}{
	"level":    {},
	"suppress": {},
	"jobs":     {},
	"encoding": {},
	"exclude":  {},
	"rules":    {},
	"output":   {},
	"log":      {},
}

// listKeys are accepted from the environment as comma-separated values.
var listKeys = map[string]struct{}{
	"suppress":      {},
	"exclude":       {},
	"rules.include": {},
	"rules.exclude": {},
}

// envKeyTransform converts environment variable names to config keys.
// LCF_VALIDATE_LEVEL -> level
// LCF_VALIDATE_RULES_2KKI_COMMENT_LENGTH_MAX_WIDTH -> rules.2kki.comment-length.max-width
func envKeyTransform(k, v string) (string, any) {
	s := strings.TrimPrefix(k, EnvPrefix)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", ".")
	for pattern, replacement := range knownHyphenatedKeys {
		s = strings.ReplaceAll(s, pattern, replacement)
	}

	topLevel := s
	if before, _, ok := strings.Cut(s, "."); ok {
		topLevel = before
	}
	if _, ok := allowedEnvTopLevelKeys[topLevel]; !ok {
		return "", nil
	}

	if _, ok := listKeys[s]; ok {
		return s, splitList(v)
	}
	return s, v
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
	}), nil)
}

// Discover finds the closest config file for a target path.
// A directory target is searched first; a file target starts at its
// directory. Returns empty string if no config file is found.
func Discover(targetPath string) string {
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if fileExists(configPath) {
				return configPath
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
