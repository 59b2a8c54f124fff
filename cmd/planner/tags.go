package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the tags accepted by roster --buff and --debuff",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagJSON {
			return printJSON(cmd.OutOrStdout(), map[string][]types.Tag{
				"buff":   types.BuffTags,
				"debuff": types.DebuffTags,
			})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "buff:  ", joinTags(types.BuffTags))
		fmt.Fprintln(out, "debuff:", joinTags(types.DebuffTags))
		return nil
	},
}
