package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional user configuration read from
// ~/.config/cursorchat/config.toml.
type Config struct {
	StoragePath string `toml:"storage_path"`
}

// ConfigFilePath returns the location of the user config file.
func ConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cursorchat", "config.toml")
}

// LoadConfig reads the user config file. A missing file is not an error;
// it simply yields the zero config.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveStorageRoot applies precedence: explicit flag, then config file,
// then the platform default. ~ is expanded in user-supplied paths.
func ResolveStorageRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return ExpandPath(flagValue), nil
	}

	cfg, err := LoadConfig(ConfigFilePath())
	if err != nil {
		LogWarn("%v", err)
	}
	if cfg.StoragePath != "" {
		return ExpandPath(cfg.StoragePath), nil
	}

	return DefaultStorageRoot()
}
