// Roster entity types as they appear in the static game dataset.
package types

// StatTier is the qualitative strength of one stat as published in the
// dataset.
type StatTier string

// Stat tiers in ascending strength. Max ranks below Elite.
const (
	TierWeak     StatTier = "Weak"
	TierModerate StatTier = "Moderate"
	TierStrong   StatTier = "Strong"
	TierMax      StatTier = "Max"
	TierElite    StatTier = "Elite"
)

// Rating is the 1..5 numeric projection of a StatTier.
type Rating int

// Rating bounds.
const (
	MinRating Rating = 1
	MaxRating Rating = 5
)

var tierRatings = map[StatTier]Rating{
	TierWeak:     1,
	TierModerate: 2,
	TierStrong:   3,
	TierMax:      4,
	TierElite:    5,
}

var ratingTiers = map[Rating]StatTier{
	1: TierWeak,
	2: TierModerate,
	3: TierStrong,
	4: TierMax,
	5: TierElite,
}

// TierToRating maps a tier to its rating. Unknown or empty tiers map to
// MinRating.
func TierToRating(tier StatTier) Rating {
	if r, ok := tierRatings[tier]; ok {
		return r
	}
	return MinRating
}

// RatingToTier is the inverse of TierToRating over 1..5. It returns
// ErrInvalidRating for any other value.
func RatingToTier(r Rating) (StatTier, error) {
	tier, ok := ratingTiers[r]
	if !ok {
		return "", ErrInvalidRating
	}
	return tier, nil
}

// Valid reports whether r lies in MinRating..MaxRating.
func (r Rating) Valid() bool {
	return r >= MinRating && r <= MaxRating
}

// StatKey names one of the six entity stats.
type StatKey string

// Stat keys.
const (
	StatHP  StatKey = "hp"
	StatSPD StatKey = "spd"
	StatEA  StatKey = "ea"
	StatPA  StatKey = "pa"
	StatED  StatKey = "ed"
	StatPD  StatKey = "pd"
)

// StatKeys lists every stat key in display order.
var StatKeys = []StatKey{StatHP, StatSPD, StatEA, StatPA, StatED, StatPD}

// ParseStatKey returns the StatKey named by s, or false when s is not one of
// the six keys.
func ParseStatKey(s string) (StatKey, bool) {
	for _, k := range StatKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// AbilityAdditional is a secondary effect attached to an ability.
type AbilityAdditional struct {
	Type     string   `json:"type" yaml:"type"`
	AP       *float64 `json:"ap,omitempty" yaml:"ap,omitempty"`
	Turns    *int     `json:"turns,omitempty" yaml:"turns,omitempty"`
	Target   string   `json:"target,omitempty" yaml:"target,omitempty"`
	Element  string   `json:"element,omitempty" yaml:"element,omitempty"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Accuracy *float64 `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
}

// Ability is one move an entity can use. Type is a free-text code compared
// case-insensitively.
type Ability struct {
	ID          int                 `json:"id" yaml:"id"`
	Name        string              `json:"name" yaml:"name"`
	Element     string              `json:"element" yaml:"element"`
	Type        string              `json:"type" yaml:"type"`
	AP          *float64            `json:"ap,omitempty" yaml:"ap,omitempty"`
	Accuracy    *float64            `json:"accuracy,omitempty" yaml:"accuracy,omitempty"`
	Target      string              `json:"target,omitempty" yaml:"target,omitempty"`
	Desc        string              `json:"desc" yaml:"desc"`
	EnchantDesc string              `json:"enchant_desc,omitempty" yaml:"enchant_desc,omitempty"`
	Turns       *int                `json:"turns,omitempty" yaml:"turns,omitempty"`
	Cooldown    *int                `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
	Additional  []AbilityAdditional `json:"additional,omitempty" yaml:"additional,omitempty"`
}

// Entity is an immutable creature record from the dataset. Names[0] is the
// canonical first-evolution name.
type Entity struct {
	ID           int       `json:"id" yaml:"id"`
	Names        []string  `json:"names" yaml:"names"`
	Element      string    `json:"element" yaml:"element"`
	Rarity       string    `json:"rarity" yaml:"rarity"`
	HP           StatTier  `json:"hp" yaml:"hp"`
	SPD          StatTier  `json:"spd" yaml:"spd"`
	EA           StatTier  `json:"ea" yaml:"ea"`
	PA           StatTier  `json:"pa" yaml:"pa"`
	ED           StatTier  `json:"ed" yaml:"ed"`
	PD           StatTier  `json:"pd" yaml:"pd"`
	Abilities    []Ability `json:"abilities" yaml:"abilities"`
	AbilityOrder []int     `json:"ability_order,omitempty" yaml:"ability_order,omitempty"`
}

// Tier returns the entity's tier for key. Unknown keys yield "".
func (e Entity) Tier(key StatKey) StatTier {
	switch key {
	case StatHP:
		return e.HP
	case StatSPD:
		return e.SPD
	case StatEA:
		return e.EA
	case StatPA:
		return e.PA
	case StatED:
		return e.ED
	case StatPD:
		return e.PD
	}
	return ""
}
