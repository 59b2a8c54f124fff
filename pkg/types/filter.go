package types

// FilterSpec describes which roster entries are visible. Empty sets, an
// empty name and absent stat minimums place no constraint.
type FilterSpec struct {
	// Name is matched case-insensitively as a substring of the first name.
	Name string `json:"name"`

	// Rarities and Elements are exact-case membership sets.
	Rarities map[string]bool `json:"rarities"`
	Elements map[string]bool `json:"elements"`

	// MinStats holds the minimum acceptable rating per stat.
	MinStats map[StatKey]Rating `json:"min_stats"`

	// BuffTags and DebuffTags are each satisfied by any one member; both
	// must be satisfied.
	BuffTags   TagSet `json:"buff_tags"`
	DebuffTags TagSet `json:"debuff_tags"`
}

// ToggleRarity adds rarity to the accepted set, or removes it if present.
func (f *FilterSpec) ToggleRarity(rarity string) {
	f.Rarities = toggle(f.Rarities, rarity)
}

// ToggleElement adds element to the accepted set, or removes it if present.
func (f *FilterSpec) ToggleElement(element string) {
	f.Elements = toggle(f.Elements, element)
}

// ToggleStat sets the minimum rating for key. Selecting the rating already
// in place clears the constraint.
func (f *FilterSpec) ToggleStat(key StatKey, r Rating) error {
	if !r.Valid() {
		return ErrInvalidRating
	}
	if f.MinStats == nil {
		f.MinStats = make(map[StatKey]Rating)
	}
	if cur, ok := f.MinStats[key]; ok && cur == r {
		delete(f.MinStats, key)
		return nil
	}
	f.MinStats[key] = r
	return nil
}

// ToggleBuff adds or removes a buff tag.
func (f *FilterSpec) ToggleBuff(t Tag) {
	f.BuffTags = toggleTag(f.BuffTags, t)
}

// ToggleDebuff adds or removes a debuff tag.
func (f *FilterSpec) ToggleDebuff(t Tag) {
	f.DebuffTags = toggleTag(f.DebuffTags, t)
}

// Reset clears every constraint.
func (f *FilterSpec) Reset() {
	*f = FilterSpec{}
}

func toggle(set map[string]bool, v string) map[string]bool {
	if set == nil {
		set = make(map[string]bool)
	}
	if set[v] {
		delete(set, v)
	} else {
		set[v] = true
	}
	return set
}

func toggleTag(set TagSet, t Tag) TagSet {
	if set == nil {
		set = make(TagSet)
	}
	if set.Has(t) {
		delete(set, t)
	} else {
		set.Add(t)
	}
	return set
}
