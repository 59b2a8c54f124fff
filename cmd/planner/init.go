// Init command: writes the default config and creates an empty team store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize planner configuration and team storage",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}

		// Saving the loaded store back materializes it for a fresh data dir
		// and leaves an existing one unchanged.
		if err := updateStore(func(s types.TeamStore) (types.TeamStore, error) { return s, nil }); err != nil {
			return fmt.Errorf("init: %w", err)
		}

		log.Info().Str("config", configDir).Str("data", dataDir).Str("backend", settings.Backend).Msg("planner initialized")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Planner initialized")
		fmt.Fprintln(out, "  config: ", configDir)
		fmt.Fprintln(out, "  data:   ", dataDir)
		fmt.Fprintln(out, "  backend:", settings.Backend)
		return nil
	},
}
