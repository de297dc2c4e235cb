package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/dts/config.yml.
type GlobalConfig struct {
	StylesPath string `yaml:"styles_path,omitempty"` // Default styles file location
	PageSize   int    `yaml:"page_size,omitempty"`   // List pagination size
	NoColor    bool   `yaml:"no_color,omitempty"`    // Disable styled output
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "dts"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/dts/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	// Expand tilde in styles_path
	if cfg.StylesPath != "" {
		cfg.StylesPath = ExpandTilde(cfg.StylesPath)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetStylesPath returns the configured styles file path from global config.
func GetStylesPath() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.StylesPath
}

// GetPageSize returns the configured list page size, or DefaultPageSize.
func GetPageSize() int {
	cfg, err := LoadGlobalConfig()
	if err != nil || cfg.PageSize <= 0 {
		return DefaultPageSize
	}
	return cfg.PageSize
}

// GetNoColor reports whether styled output is disabled in global config.
func GetNoColor() bool {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return false
	}
	return cfg.NoColor
}
