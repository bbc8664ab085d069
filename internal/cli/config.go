package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/formulary/internal/paths"
	"github.com/mesh-intelligence/formulary/pkg/types"
)

// Config keys in config.yaml.
const (
	cfgKeyBackend      = "backend"
	cfgKeyDataDir      = "data_dir"
	cfgKeyRecentLimit  = "recent_limit"
	cfgKeyHistoryLimit = "history_limit"
	cfgKeyLogLevel     = "log_level"
)

const defaultLogLevel = "warn"

// configFile holds the structure written to config.yaml.
type configFile struct {
	Backend      string `yaml:"backend"`
	DataDir      string `yaml:"data_dir,omitempty"`
	RecentLimit  int    `yaml:"recent_limit"`
	HistoryLimit int    `yaml:"history_limit"`
	LogLevel     string `yaml:"log_level"`
}

func defaultConfigFile(dataDir string) configFile {
	return configFile{
		Backend:      types.BackendSQLite,
		DataDir:      dataDir,
		RecentLimit:  types.DefaultRecentLimit,
		HistoryLimit: types.DefaultHistoryLimit,
		LogLevel:     defaultLogLevel,
	}
}

// loadConfig reads config.yaml from configDir. A missing file yields the
// defaults.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyRecentLimit, types.DefaultRecentLimit)
	v.SetDefault(cfgKeyHistoryLimit, types.DefaultHistoryLimit)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether a file was written.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	cfg := defaultConfigFile(dataDir)
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
