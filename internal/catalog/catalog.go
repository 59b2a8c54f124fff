package catalog

import (
	"sort"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Catalog is the session-wide, read-only view of the roster. Build it once
// with New and share it; no method mutates it.
type Catalog struct {
	entities []types.Entity
	meta     []types.EntityMetadata
	byID     map[int]int
}

// New derives metadata for raw and indexes it by entity id. When ids repeat,
// lookups return the first occurrence.
func New(raw []types.Entity) *Catalog {
	c := &Catalog{
		entities: append([]types.Entity(nil), raw...),
		meta:     Load(raw),
		byID:     make(map[int]int, len(raw)),
	}
	for i, e := range c.entities {
		if _, dup := c.byID[e.ID]; !dup {
			c.byID[e.ID] = i
		}
	}
	return c
}

// Len returns the number of entities.
func (c *Catalog) Len() int {
	return len(c.meta)
}

// Metadata returns the derived metadata in dataset order. The slice is a
// copy; the TagSet and rating maps inside are shared and must not be
// modified.
func (c *Catalog) Metadata() []types.EntityMetadata {
	return append([]types.EntityMetadata(nil), c.meta...)
}

// Entity returns the raw record for id.
func (c *Catalog) Entity(id int) (types.Entity, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Entity{}, false
	}
	return c.entities[i], true
}

// Meta returns the metadata for id.
func (c *Catalog) Meta(id int) (types.EntityMetadata, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.EntityMetadata{}, false
	}
	return c.meta[i], true
}

// Rarities returns the distinct rarities in the catalog, sorted.
func (c *Catalog) Rarities() []string {
	return c.distinct(func(m types.EntityMetadata) string { return m.Rarity })
}

// Elements returns the distinct elements in the catalog, sorted.
func (c *Catalog) Elements() []string {
	return c.distinct(func(m types.EntityMetadata) string { return m.Element })
}

func (c *Catalog) distinct(field func(types.EntityMetadata) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.meta {
		v := field(m)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
