// Package config loads use settings from defaults, the config file,
// USE_* environment variables and command-line flags, in increasing priority
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/javax0/use/src/internal/constants"
	"github.com/javax0/use/src/internal/shell"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the directory name under the user config directory
	AppName = constants.BinaryName
	// ConfigFileName is the name of the config file
	ConfigFileName = "config.toml"
)

// Setting keys, shared by the config file, USE_* variables and flags
const (
	KeyShell   = "shell"
	KeyVerbose = "verbose"
	KeyAliases = "aliases"
)

// keyDelimiter keeps dotted alias keys such as "3.9" from being split
const keyDelimiter = "::"

// Config holds the resolved settings of one invocation.
// Aliases come from the config file only and keep the case of their keys,
// which viper would fold to lower case.
type Config struct {
	Shell   string            `mapstructure:"shell"`
	Verbose bool              `mapstructure:"verbose"`
	Aliases map[string]string `mapstructure:"-"`
}

// fileAliases is the part of the config file that bypasses viper
type fileAliases struct {
	Aliases map[string]string `toml:"aliases"`
}

// LoadOptions controls where settings are read from
type LoadOptions struct {
	// ConfigFilePath selects an explicit config file, which must exist
	ConfigFilePath string

	// Flags are bound on top of every other source when set
	Flags *pflag.FlagSet
}

// DefaultConfig returns the settings used when nothing else is configured.
// An empty Shell renders POSIX statements and lets --init detect the shell.
func DefaultConfig() Config {
	return Config{
		Shell:   "",
		Verbose: false,
	}
}

// ConfigDir returns the use configuration directory:
// $USE_CONFIG_DIR, then $XDG_CONFIG_HOME/use, then ~/.config/use
func ConfigDir() (string, error) {
	if dir := os.Getenv(constants.EnvConfigDir); dir != "" {
		return dir, nil
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultConfigPath returns the config file looked up when none is given
func DefaultConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load resolves the settings and returns them with the path of the config
// file that was read, or "" when none was found
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))

	defaults := DefaultConfig()
	v.SetDefault(KeyShell, defaults.Shell)
	v.SetDefault(KeyVerbose, defaults.Verbose)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyShell, KeyVerbose} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("failed to bind --%s: %w", key, err)
				}
			}
		}
	}

	resolvedPath, err := findConfigFile(opts.ConfigFilePath)
	if err != nil {
		return nil, "", err
	}
	var aliases map[string]string
	if resolvedPath != "" {
		if aliases, err = loadTOMLIntoViper(v, resolvedPath); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Aliases = aliases

	if _, err := cfg.Dialect(); err != nil {
		return nil, "", fmt.Errorf("invalid %s setting: %w", KeyShell, err)
	}

	return &cfg, resolvedPath, nil
}

// Dialect returns the shell dialect selected by the settings
func (c *Config) Dialect() (shell.Dialect, error) {
	if c.Shell == "" {
		return shell.Posix, nil
	}
	return shell.ParseDialect(c.Shell)
}

// findConfigFile returns the explicit path, or the default path if a file
// exists there, or "" when there is nothing to read
func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if !fileExists(explicit) {
			return "", fmt.Errorf("config file not found: %s", explicit)
		}
		return explicit, nil
	}

	path, err := DefaultConfigPath()
	if err != nil {
		// No home directory means no user config, not a failure
		return "", nil
	}
	if !fileExists(path) {
		return "", nil
	}
	return path, nil
}

// loadTOMLIntoViper parses a TOML file, merges its settings into v and
// returns its [aliases] table with the keys exactly as written
func loadTOMLIntoViper(v *viper.Viper, path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var settings map[string]interface{}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	var file fileAliases
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid %s in config file %s: %w", KeyAliases, path, err)
	}
	for key := range settings {
		if strings.EqualFold(key, KeyAliases) {
			delete(settings, key)
		}
	}

	if err := v.MergeConfigMap(settings); err != nil {
		return nil, fmt.Errorf("failed to merge config file %s: %w", path, err)
	}
	return file.Aliases, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
