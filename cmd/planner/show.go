// Show command: prints one roster entry with its derived metadata.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/internal/cdn"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// entityView is the show command's output.
type entityView struct {
	types.EntityMetadata
	Names     []string `json:"names"`
	Abilities []string `json:"abilities"`
	AvatarURL string   `json:"avatar_url"`
}

var showCmd = &cobra.Command{
	Use:   "show <miscrit-id>",
	Short: "Show a roster entry",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return userErrorf("%q is not a miscrit id", args[0])
		}

		c, err := openCatalog()
		if err != nil {
			return err
		}
		meta, ok := c.Meta(id)
		if !ok {
			return userErrorf("miscrit %d not found", id)
		}
		entity, _ := c.Entity(id)

		view := entityView{
			EntityMetadata: meta,
			Names:          entity.Names,
			AvatarURL:      cdn.AvatarURL(meta.FirstName),
		}
		for _, a := range entity.Abilities {
			view.Abilities = append(view.Abilities, a.Name)
		}

		if flagJSON {
			return printJSON(cmd.OutOrStdout(), view)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d  %s\n", meta.ID, meta.FirstName)
		fmt.Fprintf(out, "  rarity:  %s\n", meta.Rarity)
		fmt.Fprintf(out, "  element: %s\n", meta.Element)
		for _, k := range types.StatKeys {
			r := meta.Rating(k)
			tier, _ := types.RatingToTier(r)
			fmt.Fprintf(out, "  %-4s %d %s\n", k+":", r, tier)
		}
		fmt.Fprintf(out, "  tags:    %s\n", joinTags(meta.Tags.Sorted()))
		if len(view.Abilities) > 0 {
			fmt.Fprintf(out, "  moves:   %s\n", strings.Join(view.Abilities, ", "))
		}
		fmt.Fprintf(out, "  avatar:  %s\n", view.AvatarURL)
		return nil
	},
}
