// Config loading for the planner CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/teamplanner/internal/teamstore"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "PLANNER"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyCatalog  = "catalog"
	cfgKeyLogLevel = "log_level"
	cfgKeyIDScheme = "id_scheme"

	defaultBackend  = types.BackendJSON
	defaultLogLevel = "info"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Team planner configuration

# Storage backend: json or sqlite
backend: json

# Team store directory (optional; --data-dir and PLANNER_DATA_DIR also apply)
# data_dir:

# Roster dataset, .json or .yaml (optional; --catalog and PLANNER_CATALOG also apply)
# catalog:

# Log level: debug, info, warn, error
log_level: info

# Team identifier scheme: timestamp or uuid
id_scheme: timestamp
`

// appSettings is the merged view of flags, PLANNER_* variables and
// config.yaml.
type appSettings struct {
	Backend  string
	DataDir  string
	Catalog  string
	LogLevel string
	IDScheme string
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file when absent. backend and log_level also come from their
// flags and from PLANNER_BACKEND / PLANNER_LOG_LEVEL, in viper's usual
// flag > env > file > default order.
func loadConfig(configDir string, cmd *cobra.Command) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, defaultBackend)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyIDScheme, teamstore.IDSchemeTimestamp)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyLogLevel, cfgKeyIDScheme} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if cmd != nil {
		if f := cmd.Flags().Lookup("backend"); f != nil {
			if err := v.BindPFlag(cfgKeyBackend, f); err != nil {
				return nil, fmt.Errorf("bind flag backend: %w", err)
			}
		}
		if f := cmd.Flags().Lookup("log-level"); f != nil {
			if err := v.BindPFlag(cfgKeyLogLevel, f); err != nil {
				return nil, fmt.Errorf("bind flag log-level: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

func settingsFrom(v *viper.Viper) appSettings {
	return appSettings{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		Catalog:  v.GetString(cfgKeyCatalog),
		LogLevel: v.GetString(cfgKeyLogLevel),
		IDScheme: v.GetString(cfgKeyIDScheme),
	}
}

func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile writes defaultConfigYAML unless config.yaml exists.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
