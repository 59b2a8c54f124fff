// Package catalog loads the static roster and derives the queryable metadata
// used by the filter engine.
package catalog

import (
	"strings"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Load derives one EntityMetadata per entity, in input order. It never fails:
// missing names fall back to types.UnknownName and missing tiers to rating 1.
func Load(raw []types.Entity) []types.EntityMetadata {
	out := make([]types.EntityMetadata, len(raw))
	for i, e := range raw {
		out[i] = Derive(e)
	}
	return out
}

// Derive computes the metadata of a single entity. It is deterministic.
func Derive(e types.Entity) types.EntityMetadata {
	ratings := make(map[types.StatKey]types.Rating, len(types.StatKeys))
	for _, key := range types.StatKeys {
		ratings[key] = types.TierToRating(e.Tier(key))
	}
	return types.EntityMetadata{
		ID:          e.ID,
		FirstName:   firstName(e.Names),
		Element:     e.Element,
		Rarity:      e.Rarity,
		StatRatings: ratings,
		Tags:        InferTags(e.Abilities),
	}
}

func firstName(names []string) string {
	if len(names) == 0 || strings.TrimSpace(names[0]) == "" {
		return types.UnknownName
	}
	return names[0]
}
