package types

import (
	"encoding/json"
	"sort"
)

// Tag is a semantic label summarizing an ability's gameplay effect.
type Tag string

// Status tags.
const (
	TagPoison           Tag = "poison"
	TagSleep            Tag = "sleep"
	TagConfuse          Tag = "confuse"
	TagStatDown         Tag = "stat_down"
	TagStatUp           Tag = "stat_up"
	TagHPSteal          Tag = "hp_steal"
	TagHPHeal           Tag = "hp_heal"
	TagHOT              Tag = "hot"
	TagBleed            Tag = "bleed"
	TagDOT              Tag = "dot"
	TagAccuracyDown     Tag = "accuracy_down"
	TagAccuracyUp       Tag = "accuracy_up"
	TagParalyze         Tag = "paralyze"
	TagNegate           Tag = "negate"
	TagChaos            Tag = "chaos"
	TagSwitchCurse      Tag = "switch_curse"
	TagAntiheal         Tag = "antiheal"
	TagAntihealImmunity Tag = "antiheal_immunity"
	TagBlock            Tag = "block"
	TagEthereal         Tag = "ethereal"
	TagStatSteal        Tag = "stat_steal"
)

// BuffTags lists the tags offered as buff filters, in display order.
var BuffTags = []Tag{
	TagStatUp,
	TagStatSteal,
	TagBlock,
	TagEthereal,
	TagHPHeal,
	TagHOT,
	TagAccuracyUp,
	TagNegate,
}

// DebuffTags lists the tags offered as debuff filters, in display order.
var DebuffTags = []Tag{
	TagPoison,
	TagChaos,
	TagStatDown,
	TagHPSteal,
	TagSwitchCurse,
	TagAntiheal,
	TagAccuracyDown,
	TagBleed,
	TagDOT,
	TagConfuse,
	TagSleep,
	TagParalyze,
}

// TagSet is an unordered, deduplicated set of tags. The zero value is an
// empty set that is safe to read but not to Add to.
type TagSet map[Tag]struct{}

// NewTagSet returns a set holding tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t. Adding an existing tag is a no-op.
func (s TagSet) Add(t Tag) {
	s[t] = struct{}{}
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// HasAny reports whether the set shares at least one tag with other.
func (s TagSet) HasAny(other TagSet) bool {
	for t := range other {
		if s.Has(t) {
			return true
		}
	}
	return false
}

// Sorted returns the tags in lexical order.
func (s TagSet) Sorted() []Tag {
	out := make([]Tag, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of the set.
func (s TagSet) Clone() TagSet {
	out := make(TagSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s TagSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array of tags.
func (s *TagSet) UnmarshalJSON(data []byte) error {
	var tags []Tag
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*s = NewTagSet(tags...)
	return nil
}
