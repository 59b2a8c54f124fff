// Package paths resolves where the planner keeps its configuration, its team
// store and the roster dataset.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the per-user directories.
const AppName = "planner"

// CWD-relative fallbacks.
const (
	DefaultConfigDirName   = ".planner"
	DefaultDataDirName     = ".planner-db"
	DefaultCatalogFileName = "miscrits.json"
)

// Environment variable overrides.
const (
	EnvConfigDir = "PLANNER_CONFIG_DIR"
	EnvDataDir   = "PLANNER_DATA_DIR"
	EnvCatalog   = "PLANNER_CATALOG"
)

// platformDir is swapped out in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// userDir returns $xdgVar/planner on Linux, falling back to ~/<linuxRel>/planner.
// Other platforms use os.UserConfigDir.
func userDir(xdgVar string, linuxRel ...string) (string, error) {
	if runtime.GOOS != "linux" {
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, linuxRel...)
	return filepath.Join(append(parts, AppName)...), nil
}

// DefaultConfigDir returns the per-user configuration directory
// ($XDG_CONFIG_HOME/planner, ~/.config/planner, or the OS equivalent).
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the per-user data directory
// ($XDG_DATA_HOME/planner, ~/.local/share/planner, or the OS equivalent).
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

// firstSet returns the absolute form of the first non-empty candidate.
func firstSet(candidates ...string) (string, bool, error) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		abs, err := filepath.Abs(c)
		return abs, true, err
	}
	return "", false, nil
}

// ResolveConfigDir applies flag > PLANNER_CONFIG_DIR > DefaultConfigDir.
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok, err := firstSet(flag, os.Getenv(EnvConfigDir)); ok {
		return dir, err
	}
	return DefaultConfigDir()
}

// ResolveDataDir applies flag > config.yaml data_dir > PLANNER_DATA_DIR >
// $(CWD)/.planner-db. The team store stays next to the working directory
// unless something overrides it.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir, ok, err := firstSet(flag, configValue, os.Getenv(EnvDataDir)); ok {
		return dir, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveCatalogPath applies flag > config.yaml catalog > PLANNER_CATALOG >
// $(CWD)/miscrits.json.
func ResolveCatalogPath(flag, configValue string) (string, error) {
	if p, ok, err := firstSet(flag, configValue, os.Getenv(EnvCatalog)); ok {
		return p, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultCatalogFileName), nil
}
