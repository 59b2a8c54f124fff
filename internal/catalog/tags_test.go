package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

func ap(v float64) *float64 { return &v }

func TestInferTagsPrimaryType(t *testing.T) {
	tests := []struct {
		name string
		code string
		ap   *float64
		want types.TagSet
	}{
		{"poison", "POISON", nil, types.NewTagSet(types.TagPoison)},
		{"lowercase code", "sleep", nil, types.NewTagSet(types.TagSleep)},
		{"confuse", "Confuse", nil, types.NewTagSet(types.TagConfuse)},
		{"paralyze", "PARALYZE", nil, types.NewTagSet(types.TagParalyze)},
		{"dot", "DOT", nil, types.NewTagSet(types.TagDOT)},
		{"heal", "HEAL", nil, types.NewTagSet(types.TagHPHeal)},
		{"negate", "NEGATE", nil, types.NewTagSet(types.TagNegate)},
		{"stat steal underscore", "STAT_STEAL", nil, types.NewTagSet(types.TagStatSteal)},
		{"stat steal joined", "statsteal", nil, types.NewTagSet(types.TagStatSteal)},
		{"buff positive", "BUFF", ap(5), types.NewTagSet(types.TagStatUp)},
		{"buff negative", "BUFF", ap(-5), types.NewTagSet(types.TagStatDown)},
		{"buff zero", "BUFF", ap(0), types.NewTagSet()},
		{"buff without ap", "BUFF", nil, types.NewTagSet()},
		{"hot is not a primary code", "HOT", nil, types.NewTagSet()},
		{"unknown code", "ATTACK", nil, types.NewTagSet()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferTags([]types.Ability{{Type: tt.code, AP: tt.ap}})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInferTagsAdditional(t *testing.T) {
	tests := []struct {
		name string
		code string
		ap   *float64
		want types.TagSet
	}{
		{"hot", "HOT", nil, types.NewTagSet(types.TagHOT)},
		{"lifesteal", "LifeSteal", nil, types.NewTagSet(types.TagHPSteal)},
		{"bleed", "BLEED", nil, types.NewTagSet(types.TagBleed)},
		{"poison", "POISON", nil, types.NewTagSet(types.TagPoison)},
		{"stat steal", "STAT_STEAL", nil, types.NewTagSet(types.TagStatSteal)},
		{"buff without ap defaults to stat_up", "BUFF", nil, types.NewTagSet(types.TagStatUp)},
		{"buff zero is stat_up", "BUFF", ap(0), types.NewTagSet(types.TagStatUp)},
		{"buff negative", "BUFF", ap(-10), types.NewTagSet(types.TagStatDown)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := types.Ability{
				Type:       "ATTACK",
				Additional: []types.AbilityAdditional{{Type: tt.code, AP: tt.ap}},
			}
			assert.Equal(t, tt.want, InferTags([]types.Ability{a}))
		})
	}
}

func TestInferTagsDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want []types.Tag
	}{
		{"empty", "", nil},
		{"poison", "Poisons the foe.", []types.Tag{types.TagPoison}},
		{"heal", "Heals 20 HP.", []types.Tag{types.TagHPHeal}},
		{"recover", "Recovers some health.", []types.Tag{types.TagHPHeal}},
		{"hp steal", "Steals HP from the foe.", []types.Tag{types.TagHPSteal}},
		{"steals without hp", "Steals the spotlight.", nil},
		{"lower stat", "Lowers the foe's Elemental Defense.", []types.Tag{types.TagStatDown}},
		{"raise stat", "Raises your Speed.", []types.Tag{types.TagStatUp}},
		{"increase stat", "Increases Physical Attack.", []types.Tag{types.TagStatUp}},
		{"accuracy down", "Lowers accuracy.", []types.Tag{types.TagAccuracyDown}},
		{"accuracy up", "Increases your accuracy.", []types.Tag{types.TagAccuracyUp}},
		{"accuracy down and stat up", "Lowers the foe's Accuracy and raises your Speed", []types.Tag{types.TagAccuracyDown, types.TagStatUp}},
		{"poison and lower", "Poisons and lowers speed.", []types.Tag{types.TagPoison, types.TagStatDown}},
		{"chaos", "Applies stat chaos.", []types.Tag{types.TagChaos}},
		{"stat steal", "Steals stats from the foe.", []types.Tag{types.TagStatSteal}},
		{"block", "Blocks the next attack.", []types.Tag{types.TagBlock}},
		{"ethereal", "Become ethereal.", []types.Tag{types.TagEthereal}},
		{"switch", "Prevents switching.", []types.Tag{types.TagSwitchCurse}},
		{"curse", "Curses the foe.", []types.Tag{types.TagSwitchCurse}},
		{"antiheal", "Applies anti-heal.", []types.Tag{types.TagAntiheal, types.TagHPHeal}},
		{
			"antiheal immunity",
			"Grants antiheal immunity.",
			[]types.Tag{types.TagAntiheal, types.TagAntihealImmunity, types.TagHPHeal},
		},
		{"immune to antiheal", "You are immune to anti heal.", []types.Tag{types.TagAntiheal, types.TagAntihealImmunity, types.TagHPHeal}},
		{"negate", "Negates buffs.", []types.Tag{types.TagNegate}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferTags([]types.Ability{{Type: "ATTACK", Desc: tt.desc}})
			assert.Equal(t, types.NewTagSet(tt.want...), got)
		})
	}
}

func TestInferTagsExamples(t *testing.T) {
	assert.Equal(t,
		types.NewTagSet(types.TagPoison),
		InferTags([]types.Ability{{Type: "POISON", Desc: ""}}))

	assert.Equal(t,
		types.NewTagSet(types.TagStatDown),
		InferTags([]types.Ability{{Type: "BUFF", AP: ap(-5), Desc: ""}}))

	assert.Equal(t,
		types.NewTagSet(types.TagAccuracyDown, types.TagPoison),
		InferTags([]types.Ability{{Type: "OTHER", Desc: "lowers accuracy and poisons the foe"}}))
}

func TestInferTagsUnionAcrossPasses(t *testing.T) {
	a := types.Ability{
		Type: "POISON",
		Desc: "Poisons the foe and raises your Speed.",
		Additional: []types.AbilityAdditional{
			{Type: "POISON"},
			{Type: "HOT"},
		},
	}
	assert.Equal(t,
		types.NewTagSet(types.TagPoison, types.TagStatUp, types.TagHOT),
		InferTags([]types.Ability{a}))
}

func TestInferTagsOrderIndependent(t *testing.T) {
	abilities := []types.Ability{
		{Type: "POISON"},
		{Type: "BUFF", AP: ap(3)},
		{Type: "ATTACK", Desc: "Lowers accuracy."},
		{Type: "ATTACK", Additional: []types.AbilityAdditional{{Type: "BLEED"}}},
		{Type: "HEAL", Desc: "Blocks and heals."},
		{Type: "ATTACK", Desc: "Curses the foe."},
	}
	want := InferTags(abilities)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]types.Ability(nil), abilities...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, InferTags(shuffled))
	}
}

func TestInferTagsEmpty(t *testing.T) {
	assert.Empty(t, InferTags(nil))
}
