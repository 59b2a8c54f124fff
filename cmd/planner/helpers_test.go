package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

func TestParseSlots(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want types.Slots
	}{
		{"empty string", "", types.Slots{}},
		{"full", "12,5,3,7", types.Slots{types.SlotOf(12), types.SlotOf(5), types.SlotOf(3), types.SlotOf(7)}},
		{"dash is empty", "12,5,-,7", types.Slots{types.SlotOf(12), types.SlotOf(5), {}, types.SlotOf(7)}},
		{"short list pads", "4", types.Slots{types.SlotOf(4)}},
		{"blank entries and spaces", " 1 , ,2", types.Slots{types.SlotOf(1), {}, types.SlotOf(2)}},
		{"duplicates allowed", "5,5,5,5", types.Slots{types.SlotOf(5), types.SlotOf(5), types.SlotOf(5), types.SlotOf(5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSlots(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlotsErrors(t *testing.T) {
	_, err := parseSlots("1,2,3,4,5")
	assert.ErrorIs(t, err, types.ErrInvalidSlot)

	_, err = parseSlots("1,x")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestFormatSlots(t *testing.T) {
	assert.Equal(t, "-,-,-,-", formatSlots(types.Slots{}))
	assert.Equal(t, "12,5,-,7", formatSlots(types.Slots{types.SlotOf(12), types.SlotOf(5), {}, types.SlotOf(7)}))

	slots, err := parseSlots(formatSlots(types.Slots{{}, types.SlotOf(0), {}, types.SlotOf(9)}))
	require.NoError(t, err)
	assert.Equal(t, types.Slots{{}, types.SlotOf(0), {}, types.SlotOf(9)}, slots)
}

func TestParseMinStat(t *testing.T) {
	key, r, err := parseMinStat("HP=3")
	require.NoError(t, err)
	assert.Equal(t, types.StatHP, key)
	assert.Equal(t, types.Rating(3), r)

	for _, bad := range []string{"hp", "luck=3", "hp=x"} {
		_, _, err := parseMinStat(bad)
		assert.Equal(t, exitUserError, exitCode(err), bad)
	}

	_, _, err = parseMinStat("spd=6")
	assert.ErrorIs(t, err, types.ErrInvalidRating)
}

func TestParseTag(t *testing.T) {
	tag, err := parseTag("Poison", types.DebuffTags)
	require.NoError(t, err)
	assert.Equal(t, types.TagPoison, tag)

	_, err = parseTag("poison", types.BuffTags)
	assert.Error(t, err)
}

func TestBuildFilterSpec(t *testing.T) {
	spec, err := buildFilterSpec("flu", []string{"Rare", "Epic"}, []string{"Fire"}, []string{"hp=3", "spd=2"}, []string{"stat_up"}, []string{"poison", "bleed"})
	require.NoError(t, err)

	assert.Equal(t, "flu", spec.Name)
	assert.Equal(t, map[string]bool{"Rare": true, "Epic": true}, spec.Rarities)
	assert.Equal(t, map[string]bool{"Fire": true}, spec.Elements)
	assert.Equal(t, map[types.StatKey]types.Rating{types.StatHP: 3, types.StatSPD: 2}, spec.MinStats)
	assert.Equal(t, types.NewTagSet(types.TagStatUp), spec.BuffTags)
	assert.Equal(t, types.NewTagSet(types.TagPoison, types.TagBleed), spec.DebuffTags)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"user error", userErrorf("bad input"), exitUserError},
		{"wrapped not found", fmt.Errorf("team_1: %w", types.ErrTeamNotFound), exitUserError},
		{"invalid name", types.ErrInvalidName, exitUserError},
		{"unknown backend", fmt.Errorf("backend: %w", types.ErrBackendUnknown), exitUserError},
		{"system error", errors.New("disk on fire"), exitSysError},
		{"store closed", types.ErrStoreClosed, exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
