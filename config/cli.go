package config

import (
	"fmt"
	"os"
	"path/filepath"

	"nilenavigator/store"

	"github.com/pelletier/go-toml/v2"
)

// CLIConfig holds defaults for the nileplan command.
type CLIConfig struct {
	Days      int            `toml:"days"`
	Pace      string         `toml:"pace"`
	ExportDir string         `toml:"export_dir"`
	ShareURL  string         `toml:"share_url"`
	Store     CLIStoreConfig `toml:"store"`
}

type CLIStoreConfig struct {
	Backend    string `toml:"backend"`
	SQLitePath string `toml:"sqlite_path"`
	RedisAddr  string `toml:"redis_addr"`
	MongoURI   string `toml:"mongo_uri"`
	MongoDB    string `toml:"mongo_db"`
}

func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Days:      3,
		Pace:      "moderate",
		ExportDir: ".",
		ShareURL:  DefaultShareBaseURL,
		Store: CLIStoreConfig{
			Backend:    "sqlite",
			SQLitePath: DefaultSQLitePath,
		},
	}
}

func CLIConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "nileplan"), nil
}

func CLIConfigPath() (string, error) {
	dir, err := CLIConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadCLI reads the TOML file at path over the defaults. A missing file
// is not an error.
func LoadCLI(path string) (CLIConfig, error) {
	cfg := DefaultCLIConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// SaveCLI writes cfg to path, creating the directory.
func SaveCLI(path string, cfg CLIConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	out, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, out, 0o644)
}

// StoreOptions maps the CLI store section onto store.Options.
func (c CLIConfig) StoreOptions() store.Options {
	return store.Options{
		Backend:       c.Store.Backend,
		SQLitePath:    c.Store.SQLitePath,
		RedisAddr:     c.Store.RedisAddr,
		MongoURI:      c.Store.MongoURI,
		MongoDatabase: c.Store.MongoDB,
	}
}
