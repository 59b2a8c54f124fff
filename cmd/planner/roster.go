// Roster command: lists roster entries admitted by a filter.
package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/teamplanner/internal/filter"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

var (
	rosterName     string
	rosterRarities []string
	rosterElements []string
	rosterMins     []string
	rosterBuffs    []string
	rosterDebuffs  []string
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "List roster entries matching a filter",
	Long: `Roster lists every entry of the dataset that passes all given constraints.

Repeated --rarity or --element values are alternatives. --min sets a minimum
stat rating from 1 (Weak) to 5 (Elite). An entry matches --buff if it has any
listed buff tag, and likewise for --debuff.

Example:
  planner roster --name flu
  planner roster --rarity Rare --rarity Epic --element Fire
  planner roster --min hp=3 --min spd=4 --debuff poison --debuff bleed`,
	Args: exactArgs(0),
	RunE: runRoster,
}

func init() {
	f := rosterCmd.Flags()
	f.StringVar(&rosterName, "name", "", "case-insensitive substring of the first name")
	f.StringSliceVar(&rosterRarities, "rarity", nil, "accepted rarity (repeatable)")
	f.StringSliceVar(&rosterElements, "element", nil, "accepted element (repeatable)")
	f.StringSliceVar(&rosterMins, "min", nil, "stat minimum as stat=rating, e.g. hp=3 (repeatable)")
	f.StringSliceVar(&rosterBuffs, "buff", nil, "buff tag, any of which must be present (repeatable)")
	f.StringSliceVar(&rosterDebuffs, "debuff", nil, "debuff tag, any of which must be present (repeatable)")
}

// buildFilterSpec turns roster flags into a FilterSpec.
func buildFilterSpec(name string, rarities, elements, mins, buffs, debuffs []string) (types.FilterSpec, error) {
	spec := filter.NewSpec()
	spec.Name = name
	for _, r := range rarities {
		spec.Rarities[r] = true
	}
	for _, e := range elements {
		spec.Elements[e] = true
	}
	for _, m := range mins {
		key, r, err := parseMinStat(m)
		if err != nil {
			return spec, err
		}
		spec.MinStats[key] = r
	}
	for _, b := range buffs {
		t, err := parseTag(b, types.BuffTags)
		if err != nil {
			return spec, err
		}
		spec.BuffTags.Add(t)
	}
	for _, d := range debuffs {
		t, err := parseTag(d, types.DebuffTags)
		if err != nil {
			return spec, err
		}
		spec.DebuffTags.Add(t)
	}
	return spec, nil
}

func runRoster(cmd *cobra.Command, args []string) error {
	spec, err := buildFilterSpec(rosterName, rosterRarities, rosterElements, rosterMins, rosterBuffs, rosterDebuffs)
	if err != nil {
		return err
	}

	c, err := openCatalog()
	if err != nil {
		return err
	}

	matches := filter.Apply(c.Metadata(), spec)
	log.Debug().Int("total", c.Len()).Int("matched", len(matches)).Msg("roster filtered")

	if flagJSON {
		return printJSON(cmd.OutOrStdout(), matches)
	}
	return writeRosterTable(cmd.OutOrStdout(), matches)
}

func writeRosterTable(w io.Writer, metas []types.EntityMetadata) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRARITY\tELEMENT\tHP\tSPD\tEA\tPA\tED\tPD\tTAGS")
	for _, m := range metas {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s", m.ID, m.FirstName, m.Rarity, m.Element)
		for _, k := range types.StatKeys {
			fmt.Fprintf(tw, "\t%d", m.Rating(k))
		}
		fmt.Fprintf(tw, "\t%s\n", joinTags(m.Tags.Sorted()))
	}
	return tw.Flush()
}

func joinTags(tags []types.Tag) string {
	s := make([]string, len(tags))
	for i, t := range tags {
		s[i] = string(t)
	}
	return strings.Join(s, ",")
}
