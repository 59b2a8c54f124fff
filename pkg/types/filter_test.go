package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSpecToggles(t *testing.T) {
	var f FilterSpec

	f.ToggleRarity("Rare")
	f.ToggleElement("Fire")
	f.ToggleBuff(TagStatUp)
	f.ToggleDebuff(TagPoison)
	assert.True(t, f.Rarities["Rare"])
	assert.True(t, f.Elements["Fire"])
	assert.True(t, f.BuffTags.Has(TagStatUp))
	assert.True(t, f.DebuffTags.Has(TagPoison))

	f.ToggleRarity("Rare")
	f.ToggleElement("Fire")
	f.ToggleBuff(TagStatUp)
	f.ToggleDebuff(TagPoison)
	assert.Empty(t, f.Rarities)
	assert.Empty(t, f.Elements)
	assert.Empty(t, f.BuffTags)
	assert.Empty(t, f.DebuffTags)
}

func TestFilterSpecToggleStat(t *testing.T) {
	var f FilterSpec

	require.NoError(t, f.ToggleStat(StatHP, 3))
	assert.Equal(t, Rating(3), f.MinStats[StatHP])

	require.NoError(t, f.ToggleStat(StatHP, 4))
	assert.Equal(t, Rating(4), f.MinStats[StatHP])

	require.NoError(t, f.ToggleStat(StatHP, 4))
	_, ok := f.MinStats[StatHP]
	assert.False(t, ok, "selecting the same rating clears the constraint")

	assert.ErrorIs(t, f.ToggleStat(StatHP, 0), ErrInvalidRating)
	assert.ErrorIs(t, f.ToggleStat(StatHP, 6), ErrInvalidRating)
}

func TestFilterSpecReset(t *testing.T) {
	f := FilterSpec{Name: "flue"}
	f.ToggleRarity("Rare")
	f.Reset()
	assert.Equal(t, FilterSpec{}, f)
}
