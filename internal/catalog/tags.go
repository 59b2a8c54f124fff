// Tag inference from ability type codes, secondary effects and free-text
// descriptions.
package catalog

import (
	"strings"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// primaryTypeTags maps an ability's own type code to its tag. BUFF is
// handled separately because its tag depends on the sign of ap.
var primaryTypeTags = map[string]types.Tag{
	"POISON":     types.TagPoison,
	"SLEEP":      types.TagSleep,
	"CONFUSE":    types.TagConfuse,
	"PARALYZE":   types.TagParalyze,
	"DOT":        types.TagDOT,
	"HEAL":       types.TagHPHeal,
	"NEGATE":     types.TagNegate,
	"STAT_STEAL": types.TagStatSteal,
	"STATSTEAL":  types.TagStatSteal,
}

// additionalTypeTags extends primaryTypeTags for secondary effects.
var additionalTypeTags = map[string]types.Tag{
	"HOT":       types.TagHOT,
	"LIFESTEAL": types.TagHPSteal,
	"BLEED":     types.TagBleed,
}

const buffType = "BUFF"

// keywordRule adds tag when every group matches the description. A group
// matches when any of its phrases is a substring.
type keywordRule struct {
	tag    types.Tag
	groups [][]string
}

func (r keywordRule) match(desc string) bool {
	for _, group := range r.groups {
		if !containsAny(desc, group) {
			return false
		}
	}
	return true
}

func anyOf(phrases ...string) []string { return phrases }

var (
	lowerWords   = anyOf("lower")
	raiseWords   = anyOf("raise", "increase")
	accuracyWord = anyOf("accuracy")
)

// keywordRules are evaluated independently; every matching rule contributes.
// Direction words are handled by directionTags.
var keywordRules = []keywordRule{
	{types.TagPoison, [][]string{anyOf("poison")}},
	{types.TagSleep, [][]string{anyOf("sleep")}},
	{types.TagConfuse, [][]string{anyOf("confuse")}},
	{types.TagParalyze, [][]string{anyOf("paralyze")}},
	{types.TagHPHeal, [][]string{anyOf("heal", "recover")}},
	{types.TagHPSteal, [][]string{anyOf("steals"), anyOf("hp")}},
	{types.TagBleed, [][]string{anyOf("bleed")}},
	{types.TagChaos, [][]string{anyOf("chaos")}},
	{types.TagNegate, [][]string{anyOf("negate")}},
	{types.TagStatSteal, [][]string{anyOf("stat steal", "steals stats", "steal stats")}},
	{types.TagBlock, [][]string{anyOf("block")}},
	{types.TagEthereal, [][]string{anyOf("ethereal")}},
	{types.TagSwitchCurse, [][]string{anyOf("switch", "curse")}},
	{types.TagAntiheal, [][]string{anyOf("antiheal", "anti heal", "anti-heal")}},
	{types.TagAntihealImmunity, [][]string{anyOf(
		"antiheal immunity",
		"anti heal immunity",
		"anti-heal immunity",
		"immune to antiheal",
		"immune to anti heal",
		"immune to anti-heal",
	)}},
}

// InferTags derives the status tags of a set of abilities. The result is the
// union over every ability of its type-code, secondary-effect and description
// tags, so it does not depend on the order of abilities.
func InferTags(abilities []types.Ability) types.TagSet {
	tags := make(types.TagSet)
	for _, a := range abilities {
		addPrimaryTags(tags, a)
		for _, add := range a.Additional {
			addAdditionalTags(tags, add)
		}
		addDescriptionTags(tags, a.Desc)
	}
	return tags
}

// addPrimaryTags applies the ability's own type code. BUFF yields a tag only
// for a non-zero ap.
func addPrimaryTags(tags types.TagSet, a types.Ability) {
	code := strings.ToUpper(strings.TrimSpace(a.Type))
	if code == buffType {
		switch {
		case a.AP == nil:
		case *a.AP > 0:
			tags.Add(types.TagStatUp)
		case *a.AP < 0:
			tags.Add(types.TagStatDown)
		}
		return
	}
	if tag, ok := primaryTypeTags[code]; ok {
		tags.Add(tag)
	}
}

// addAdditionalTags applies a secondary effect's type code. Unlike the
// primary pass, BUFF without a negative ap counts as stat_up: secondary buffs
// in the dataset omit ap when they raise stats.
func addAdditionalTags(tags types.TagSet, add types.AbilityAdditional) {
	code := strings.ToUpper(strings.TrimSpace(add.Type))
	if code == buffType {
		if add.AP != nil && *add.AP < 0 {
			tags.Add(types.TagStatDown)
		} else {
			tags.Add(types.TagStatUp)
		}
		return
	}
	if tag, ok := primaryTypeTags[code]; ok {
		tags.Add(tag)
		return
	}
	if tag, ok := additionalTypeTags[code]; ok {
		tags.Add(tag)
	}
}

func addDescriptionTags(tags types.TagSet, desc string) {
	if desc == "" {
		return
	}
	d := strings.ToLower(desc)
	for _, rule := range keywordRules {
		if rule.match(d) {
			tags.Add(rule.tag)
		}
	}
	directionTags(tags, d)
}

// directionTags maps lower/raise wording to stat or accuracy tags. In a
// description naming accuracy, "lower" means accuracy_down and never
// stat_down; "raise" means accuracy_up only when nothing is lowered, and
// otherwise still counts as stat_up.
func directionTags(tags types.TagSet, d string) {
	lowers := containsAny(d, lowerWords)
	raises := containsAny(d, raiseWords)
	if !containsAny(d, accuracyWord) {
		if lowers {
			tags.Add(types.TagStatDown)
		}
		if raises {
			tags.Add(types.TagStatUp)
		}
		return
	}
	switch {
	case lowers:
		tags.Add(types.TagAccuracyDown)
		if raises {
			tags.Add(types.TagStatUp)
		}
	case raises:
		tags.Add(types.TagAccuracyUp)
	}
}

func containsAny(s string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
