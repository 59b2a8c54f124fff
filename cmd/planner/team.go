// Team commands: create, inspect and edit saved teams.
package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/internal/squad"
	"github.com/mesh-intelligence/teamplanner/internal/teamstore"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

var (
	teamSlots     string
	teamPickArm   int
	teamPickClear []int
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage saved teams",
	Long: `Team manages the saved teams in the team store.

Slots are written as a comma-separated list of up to four miscrit ids, with
"-" for an empty slot, e.g. --slots 12,5,-,7.`,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved teams in creation order",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewStore(func(s types.TeamStore) error {
			if flagJSON {
				return printJSON(cmd.OutOrStdout(), s)
			}
			return writeTeamTable(cmd.OutOrStdout(), s)
		})
	},
}

var teamShowCmd = &cobra.Command{
	Use:   "show <team-id>",
	Short: "Show a saved team",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return viewStore(func(s types.TeamStore) error {
			t, ok := teamstore.FindTeam(s, args[0])
			if !ok {
				return fmt.Errorf("%s: %w", args[0], types.ErrTeamNotFound)
			}
			return writeTeam(cmd.OutOrStdout(), t)
		})
	},
}

var teamNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Append an empty team",
	Args:  rangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFactory()
		if err != nil {
			return err
		}
		var created types.Team
		err = updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			next, t, err := f.Add(s, optionalArg(args, 0))
			created = t
			return next, err
		})
		if err != nil {
			return err
		}
		return writeTeam(cmd.OutOrStdout(), created)
	},
}

var teamSaveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Save a squad as a new team and select it (default name: Team <n+1>)",
	Args:  rangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, err := parseSlots(teamSlots)
		if err != nil {
			return err
		}
		f, err := newFactory()
		if err != nil {
			return err
		}
		var saved types.Team
		err = updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			next, t, err := f.SaveCurrent(s, optionalArg(args, 0), slots)
			saved = t
			return next, err
		})
		if err != nil {
			return err
		}
		return writeTeam(cmd.OutOrStdout(), saved)
	},
}

var teamUpdateCmd = &cobra.Command{
	Use:   "update <team-id>",
	Short: "Replace the slots of a saved team",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, err := parseSlots(teamSlots)
		if err != nil {
			return err
		}
		return saveSquad(cmd.OutOrStdout(), args[0], func(types.Slots) (types.Slots, error) {
			return slots, nil
		})
	},
}

var teamPickCmd = &cobra.Command{
	Use:   "pick <team-id> <miscrit-id>...",
	Short: "Place miscrits into a saved team's slots",
	Long: `Pick edits a saved team the way a squad is assembled by hand.

Slots given with --clear are emptied first. Each miscrit then goes into the
slot armed with --arm (first pick only), else the first empty slot, else
slot 0.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
			return userError{err}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]int, 0, len(args)-1)
		for _, a := range args[1:] {
			id, err := strconv.Atoi(a)
			if err != nil {
				return userErrorf("%q is not a miscrit id", a)
			}
			ids = append(ids, id)
		}
		return saveSquad(cmd.OutOrStdout(), args[0], func(current types.Slots) (types.Slots, error) {
			sq := squad.FromSlots(current)
			for _, i := range teamPickClear {
				if err := sq.ClearSlot(i); err != nil {
					return current, err
				}
			}
			if cmd.Flags().Changed("arm") {
				if err := sq.Arm(teamPickArm); err != nil {
					return current, err
				}
			}
			for _, id := range ids {
				slot := sq.Pick(id)
				log.Debug().Int("miscrit", id).Int("slot", slot).Msg("picked")
			}
			return sq.Slots(), nil
		})
	},
}

var teamRenameCmd = &cobra.Command{
	Use:   "rename <team-id> <name>",
	Short: "Rename a saved team",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFactory()
		if err != nil {
			return err
		}
		var renamed types.Team
		err = updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			next, err := f.Rename(s, args[0], args[1])
			if err != nil {
				return s, err
			}
			renamed, _ = teamstore.FindTeam(next, args[0])
			return next, nil
		})
		if err != nil {
			return err
		}
		return writeTeam(cmd.OutOrStdout(), renamed)
	},
}

var teamDeleteCmd = &cobra.Command{
	Use:   "delete <team-id>",
	Short: "Delete a saved team",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			return teamstore.DeleteTeam(s, args[0])
		})
		if err != nil {
			return err
		}
		log.Info().Str("team", args[0]).Msg("team deleted")
		fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
		return nil
	},
}

var teamCloneCmd = &cobra.Command{
	Use:   "clone <team-id>",
	Short: "Append a copy of a saved team",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFactory()
		if err != nil {
			return err
		}
		var clone types.Team
		err = updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			next, c, err := f.Clone(s, args[0])
			clone = c
			return next, err
		})
		if err != nil {
			return err
		}
		return writeTeam(cmd.OutOrStdout(), clone)
	},
}

var teamSelectCmd = &cobra.Command{
	Use:   "select <team-id>",
	Short: "Mark a saved team as the last selected",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var selected types.Team
		err := updateStore(func(s types.TeamStore) (types.TeamStore, error) {
			next, err := teamstore.SelectTeam(s, args[0])
			if err != nil {
				return s, err
			}
			selected, _ = teamstore.FindTeam(next, args[0])
			return next, nil
		})
		if err != nil {
			return err
		}
		return writeTeam(cmd.OutOrStdout(), selected)
	},
}

func init() {
	teamSaveCmd.Flags().StringVar(&teamSlots, "slots", "", "squad slots, e.g. 12,5,-,7")
	teamUpdateCmd.Flags().StringVar(&teamSlots, "slots", "", "squad slots, e.g. 12,5,-,7")
	teamPickCmd.Flags().IntVar(&teamPickArm, "arm", 0, "slot index (0-3) the first pick replaces")
	teamPickCmd.Flags().IntSliceVar(&teamPickClear, "clear", nil, "slot index to empty before picking (repeatable)")

	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamShowCmd)
	teamCmd.AddCommand(teamNewCmd)
	teamCmd.AddCommand(teamSaveCmd)
	teamCmd.AddCommand(teamUpdateCmd)
	teamCmd.AddCommand(teamPickCmd)
	teamCmd.AddCommand(teamRenameCmd)
	teamCmd.AddCommand(teamDeleteCmd)
	teamCmd.AddCommand(teamCloneCmd)
	teamCmd.AddCommand(teamSelectCmd)
}

// saveSquad rewrites the slots of team id with edit's result.
func saveSquad(w io.Writer, id string, edit func(types.Slots) (types.Slots, error)) error {
	f, err := newFactory()
	if err != nil {
		return err
	}
	var updated types.Team
	err = updateStore(func(s types.TeamStore) (types.TeamStore, error) {
		current, ok := teamstore.FindTeam(s, id)
		if !ok {
			return s, fmt.Errorf("%s: %w", id, types.ErrTeamNotFound)
		}
		slots, err := edit(current.Slots)
		if err != nil {
			return s, err
		}
		next, err := f.SaveSquadTo(s, id, slots)
		if err != nil {
			return s, err
		}
		updated, _ = teamstore.FindTeam(next, id)
		return next, nil
	})
	if err != nil {
		return err
	}
	return writeTeam(w, updated)
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).Local().Format(time.DateTime)
}

func writeTeam(w io.Writer, t types.Team) error {
	if flagJSON {
		return printJSON(w, t)
	}
	fmt.Fprintf(w, "%s  %s\n", t.ID, t.Name)
	fmt.Fprintf(w, "  slots:   %s\n", formatSlots(t.Slots))
	fmt.Fprintf(w, "  created: %s\n", formatMillis(t.CreatedAt))
	fmt.Fprintf(w, "  updated: %s\n", formatMillis(t.UpdatedAt))
	return nil
}

func writeTeamTable(w io.Writer, s types.TeamStore) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tSLOTS\tUPDATED")
	for _, t := range s.Teams {
		mark := ""
		if t.ID == s.LastSelectedTeamID {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, t.ID, t.Name, formatSlots(t.Slots), formatMillis(t.UpdatedAt))
	}
	return tw.Flush()
}
