package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

func sampleEntities() []types.Entity {
	return []types.Entity{
		{ID: 1, Names: []string{"Flue"}, Element: "Fire", Rarity: "Common"},
		{ID: 2, Names: []string{"Nessy"}, Element: "Water", Rarity: "Rare"},
		{ID: 3, Names: []string{"Sparkspeck"}, Element: "Lightning", Rarity: "Common"},
		{ID: 2, Names: []string{"Duplicate"}, Element: "Earth", Rarity: "Legendary"},
	}
}

func TestCatalogLookups(t *testing.T) {
	c := New(sampleEntities())

	assert.Equal(t, 4, c.Len())

	e, ok := c.Entity(2)
	require.True(t, ok)
	assert.Equal(t, "Nessy", e.Names[0], "first occurrence wins")

	m, ok := c.Meta(3)
	require.True(t, ok)
	assert.Equal(t, "Sparkspeck", m.FirstName)

	_, ok = c.Meta(404)
	assert.False(t, ok)
	_, ok = c.Entity(404)
	assert.False(t, ok)
}

func TestCatalogDistinctValues(t *testing.T) {
	c := New(sampleEntities())
	assert.Equal(t, []string{"Common", "Legendary", "Rare"}, c.Rarities())
	assert.Equal(t, []string{"Earth", "Fire", "Lightning", "Water"}, c.Elements())
}

func TestCatalogMetadataIsACopy(t *testing.T) {
	c := New(sampleEntities())
	metas := c.Metadata()
	metas[0].FirstName = "changed"

	m, _ := c.Meta(1)
	assert.Equal(t, "Flue", m.FirstName)
}

func TestCatalogIsolatedFromInput(t *testing.T) {
	raw := sampleEntities()
	c := New(raw)
	raw[0].Names = []string{"mutated"}

	e, _ := c.Entity(1)
	assert.Equal(t, "Flue", e.Names[0])
}
