// Root command, global flags and exit-code mapping.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/internal/logger"
	"github.com/mesh-intelligence/teamplanner/internal/paths"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagCatalog   string
	flagBackend   string
	flagLogLevel  string
	flagJSON      bool
)

// settings holds the merged configuration. Set by PersistentPreRunE.
var settings appSettings

// log is the CLI logger, writing JSON lines to stderr.
var log = zerolog.Nop()

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Plan Miscrits teams from the roster",
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		v, err := loadConfig(configDir, cmd)
		if err != nil {
			return err
		}
		settings = settingsFrom(v)

		l, err := logger.New(os.Stderr, settings.LogLevel)
		if err != nil {
			return userErrorf("log level %q: %w", settings.LogLevel, err)
		}
		log = l
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "team store directory (default: $(CWD)/.planner-db)")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "roster dataset, .json or .yaml (default: $(CWD)/miscrits.json)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: json or sqlite")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return userError{err}
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(teamCmd)
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir applies --data-dir > config.yaml data_dir > PLANNER_DATA_DIR > $(CWD)/.planner-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, settings.DataDir)
}

func resolveCatalogPath() (string, error) {
	return paths.ResolveCatalogPath(flagCatalog, settings.Catalog)
}

// userError marks failures caused by bad input rather than the environment.
type userError struct {
	err error
}

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

func userErrorf(format string, a ...any) error {
	return userError{fmt.Errorf(format, a...)}
}

// userErrs are sentinel errors that always mean the caller asked for
// something invalid.
var userErrs = []error{
	types.ErrTeamNotFound,
	types.ErrInvalidSlot,
	types.ErrInvalidName,
	types.ErrInvalidRating,
	types.ErrBackendEmpty,
	types.ErrBackendUnknown,
	types.ErrCatalogFormat,
}

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ue userError
	if errors.As(err, &ue) {
		return exitUserError
	}
	for _, target := range userErrs {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

// exactArgs is cobra.ExactArgs reporting a user error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return userError{err}
		}
		return nil
	}
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return userError{err}
		}
		return nil
	}
}
