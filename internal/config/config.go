package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/harrison/dir2md/internal/fileutil"
	"github.com/harrison/dir2md/internal/logger"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file looked up in the working directory when --config is not given
const DefaultConfigFile = ".dir2md.yaml"

// Environment variables consulted by ApplyEnv
const (
	EnvLogLevel = "DIR2MD_LOG_LEVEL"
	EnvLogDir   = "DIR2MD_LOG_DIR"
	EnvMaxSize  = "DIR2MD_MAX_SIZE"
)

// Config represents dir2md run options
type Config struct {
	// Output is the path of the generated Markdown document
	Output string `yaml:"output"`

	// Types is the extension allow-list (empty = all files)
	Types []string `yaml:"types"`

	// Ignore is the set of path component names to skip
	Ignore []string `yaml:"ignore"`

	// Recursive enables descent into subdirectories
	Recursive bool `yaml:"recursive"`

	// MaxSizeMB is the per-file size ceiling in megabytes
	MaxSizeMB int `yaml:"max_size"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir, when set, receives a per-run log file in addition to stderr
	LogDir string `yaml:"log_dir"`
}

// DefaultConfig returns a Config with the default values
func DefaultConfig() *Config {
	return &Config{
		Output:    "output.md",
		Types:     nil,
		Ignore:    append([]string(nil), fileutil.DefaultIgnoreDirs...),
		Recursive: true,
		MaxSizeMB: 10,
		LogLevel:  "info",
		LogDir:    "",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields distinguish "absent" from zero values
	type yamlConfig struct {
		Output    string    `yaml:"output"`
		Types     []string  `yaml:"types"`
		Ignore    *[]string `yaml:"ignore"`
		Recursive *bool     `yaml:"recursive"`
		MaxSizeMB *int      `yaml:"max_size"`
		LogLevel  string    `yaml:"log_level"`
		LogDir    string    `yaml:"log_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.Output != "" {
		cfg.Output = yamlCfg.Output
	}
	if len(yamlCfg.Types) > 0 {
		cfg.Types = yamlCfg.Types
	}
	// An explicit empty list means "ignore nothing"
	if yamlCfg.Ignore != nil {
		cfg.Ignore = *yamlCfg.Ignore
	}
	if yamlCfg.Recursive != nil {
		cfg.Recursive = *yamlCfg.Recursive
	}
	if yamlCfg.MaxSizeMB != nil {
		cfg.MaxSizeMB = *yamlCfg.MaxSizeMB
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}

	return cfg, nil
}

// LoadConfigFromDir loads DefaultConfigFile from dir, falling back to defaults
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DefaultConfigFile))
}

// ApplyEnv overrides log level, log dir, and max size from the environment.
// lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvLogDir); ok && v != "" {
		c.LogDir = v
	}
	if v, ok := lookup(EnvMaxSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvMaxSize, v, err)
		}
		c.MaxSizeMB = n
	}
	return nil
}

// Overrides carries CLI flag values; nil fields were not set on the command line
type Overrides struct {
	Output    *string
	Types     *[]string
	Ignore    *[]string
	Recursive *bool
	MaxSizeMB *int
	LogLevel  *string
	LogDir    *string
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(o Overrides) {
	if o.Output != nil {
		c.Output = *o.Output
	}
	if o.Types != nil {
		c.Types = *o.Types
	}
	if o.Ignore != nil {
		c.Ignore = *o.Ignore
	}
	if o.Recursive != nil {
		c.Recursive = *o.Recursive
	}
	if o.MaxSizeMB != nil {
		c.MaxSizeMB = *o.MaxSizeMB
	}
	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}
	if o.LogDir != nil {
		c.LogDir = *o.LogDir
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if c.MaxSizeMB <= 0 {
		return fmt.Errorf("max_size must be > 0, got %d", c.MaxSizeMB)
	}
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	return nil
}
