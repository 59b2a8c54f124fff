// Package filter decides which roster entries a FilterSpec admits.
package filter

import (
	"strings"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// NewSpec returns a spec with every constraint empty; it admits everything.
func NewSpec() types.FilterSpec {
	return types.FilterSpec{
		Rarities:   make(map[string]bool),
		Elements:   make(map[string]bool),
		MinStats:   make(map[types.StatKey]types.Rating),
		BuffTags:   make(types.TagSet),
		DebuffTags: make(types.TagSet),
	}
}

// Matches reports whether meta satisfies every constraint in spec. It has no
// side effects and is safe for concurrent use.
func Matches(meta types.EntityMetadata, spec types.FilterSpec) bool {
	return matchesName(meta, spec.Name) &&
		inSet(spec.Rarities, meta.Rarity) &&
		inSet(spec.Elements, meta.Element) &&
		meetsMinimums(meta, spec.MinStats) &&
		anyTag(meta.Tags, spec.BuffTags) &&
		anyTag(meta.Tags, spec.DebuffTags)
}

// Apply returns the entries of metas that match spec, in their original
// order.
func Apply(metas []types.EntityMetadata, spec types.FilterSpec) []types.EntityMetadata {
	out := make([]types.EntityMetadata, 0, len(metas))
	for _, m := range metas {
		if Matches(m, spec) {
			out = append(out, m)
		}
	}
	return out
}

// matchesName treats a whitespace-only query as no constraint. The query is
// otherwise used as typed, including surrounding spaces.
func matchesName(meta types.EntityMetadata, name string) bool {
	if strings.TrimSpace(name) == "" {
		return true
	}
	return strings.Contains(strings.ToLower(meta.FirstName), strings.ToLower(name))
}

func inSet(set map[string]bool, v string) bool {
	if len(set) == 0 {
		return true
	}
	return set[v]
}

func meetsMinimums(meta types.EntityMetadata, mins map[types.StatKey]types.Rating) bool {
	for _, key := range types.StatKeys {
		floor, ok := mins[key]
		if !ok {
			continue
		}
		if meta.Rating(key) < floor {
			return false
		}
	}
	return true
}

func anyTag(have, want types.TagSet) bool {
	if len(want) == 0 {
		return true
	}
	return have.HasAny(want)
}
