package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierToRating(t *testing.T) {
	tests := []struct {
		tier StatTier
		want Rating
	}{
		{TierWeak, 1},
		{TierModerate, 2},
		{TierStrong, 3},
		{TierMax, 4},
		{TierElite, 5},
		{"", 1},
		{"Legendary", 1},
		{"weak", 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.want, TierToRating(tt.tier))
		})
	}
}

func TestRatingTierRoundTrip(t *testing.T) {
	for r := MinRating; r <= MaxRating; r++ {
		tier, err := RatingToTier(r)
		require.NoError(t, err)
		assert.Equal(t, r, TierToRating(tier), "rating %d", r)
	}
}

func TestRatingToTierRejectsOutOfRange(t *testing.T) {
	for _, r := range []Rating{0, 6, -1} {
		_, err := RatingToTier(r)
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestEntityTier(t *testing.T) {
	e := Entity{HP: TierWeak, SPD: TierModerate, EA: TierStrong, PA: TierMax, ED: TierElite, PD: TierWeak}
	assert.Equal(t, TierWeak, e.Tier(StatHP))
	assert.Equal(t, TierModerate, e.Tier(StatSPD))
	assert.Equal(t, TierStrong, e.Tier(StatEA))
	assert.Equal(t, TierMax, e.Tier(StatPA))
	assert.Equal(t, TierElite, e.Tier(StatED))
	assert.Equal(t, TierWeak, e.Tier(StatPD))
	assert.Equal(t, StatTier(""), e.Tier("luck"))
}

func TestParseStatKey(t *testing.T) {
	k, ok := ParseStatKey("spd")
	assert.True(t, ok)
	assert.Equal(t, StatSPD, k)

	_, ok = ParseStatKey("SPD")
	assert.False(t, ok)
}
