package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/spiffcs/ago/internal/output"
	"github.com/spiffcs/ago/internal/reltime"
)

// Config represents the application configuration.
// SecondsStyle is "plural" or "singular"; Future is "pass", "clamp" or "reject".
type Config struct {
	DefaultFormat string `yaml:"default_format,omitempty" json:"default_format,omitempty"`
	SecondsStyle  string `yaml:"seconds_style,omitempty" json:"seconds_style,omitempty"`
	Future        string `yaml:"future,omitempty" json:"future,omitempty"`
	Workers       *int   `yaml:"workers,omitempty" json:"workers,omitempty"`
}

const (
	defaultFormat  = "text"
	defaultWorkers = 8
)

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".ago"
	}
	return filepath.Join(configDir, "ago")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return ".ago.yaml"
}

// Load loads the configuration from disk.
// It first loads the global config from the user config directory, then merges
// any local .ago.yaml config on top (local values take precedence).
func Load() (*Config, error) {
	cfg := &Config{}

	if err := readInto(ConfigPath(), cfg); err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}

	var local Config
	if err := readInto(LocalConfigPath(), &local); err != nil {
		return nil, fmt.Errorf("local config: %w", err)
	}
	cfg = mergeConfig(cfg, &local)

	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = defaultFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGlobal loads only the global config file, without defaults or the
// local override. Use it before Save so local values are not copied into
// the global file.
func LoadGlobal() (*Config, error) {
	cfg := &Config{}
	if err := readInto(ConfigPath(), cfg); err != nil {
		return nil, fmt.Errorf("global config: %w", err)
	}
	return cfg, nil
}

// readInto decodes path into cfg. A missing file is not an error.
func readInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := *global

	if local.DefaultFormat != "" {
		result.DefaultFormat = local.DefaultFormat
	}
	if local.SecondsStyle != "" {
		result.SecondsStyle = local.SecondsStyle
	}
	if local.Future != "" {
		result.Future = local.Future
	}
	if local.Workers != nil {
		result.Workers = local.Workers
	}

	return &result
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if c.DefaultFormat != "" {
		if _, err := output.ParseFormat(c.DefaultFormat); err != nil {
			return fmt.Errorf("invalid default_format: %w", err)
		}
	}
	if _, err := reltime.ParseSecondsStyle(c.SecondsStyle); err != nil {
		return fmt.Errorf("invalid seconds_style: %w", err)
	}
	if _, err := reltime.ParseFuturePolicy(c.Future); err != nil {
		return fmt.Errorf("invalid future: %w", err)
	}
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("invalid workers: %d (must be at least 1)", *c.Workers)
	}
	return nil
}

// GetWorkers returns the configured worker count or the default.
func (c *Config) GetWorkers() int {
	if c.Workers != nil {
		return *c.Workers
	}
	return defaultWorkers
}

// FormatterOptions converts the config into formatter options.
// Call Validate first; invalid values fall back to defaults.
func (c *Config) FormatterOptions() []reltime.Option {
	style, _ := reltime.ParseSecondsStyle(c.SecondsStyle)
	future, _ := reltime.ParseFuturePolicy(c.Future)
	return []reltime.Option{
		reltime.WithSecondsStyle(style),
		reltime.WithFuturePolicy(future),
	}
}

// Set updates a single key and validates the result.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "format", "default_format":
		next.DefaultFormat = value
	case "seconds_style":
		next.SecondsStyle = value
	case "future":
		next.Future = value
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid workers: %s", value)
		}
		next.Workers = &n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

// Save saves the configuration to the global config file
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return SaveTo(ConfigPath(), string(data))
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	workers := defaultWorkers
	return &Config{
		DefaultFormat: defaultFormat,
		SecondsStyle:  reltime.SecondsPlural.String(),
		Future:        reltime.FuturePassThrough.String(),
		Workers:       &workers,
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# ago configuration file
# See: ago config defaults  (for all available options)

# Output format: text, table, json or markdown
default_format: text

# "plural" keeps "1 seconds ago"; "singular" writes "1 second ago"
# seconds_style: plural

# Instants after now: pass ("-5 seconds ago"), clamp ("0 seconds ago") or reject
# future: pass
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
