package types

// UnknownName is the canonical name used for entities without names.
const UnknownName = "Unknown"

// EntityMetadata is the queryable projection of an Entity. It is computed
// once from the dataset and never mutated.
type EntityMetadata struct {
	ID          int                `json:"id"`
	FirstName   string             `json:"first_name"`
	Element     string             `json:"element"`
	Rarity      string             `json:"rarity"`
	StatRatings map[StatKey]Rating `json:"stat_ratings"`
	Tags        TagSet             `json:"tags"`
}

// Rating returns the rating for key, defaulting to MinRating when the key
// has no entry.
func (m EntityMetadata) Rating(key StatKey) Rating {
	if r, ok := m.StatRatings[key]; ok {
		return r
	}
	return MinRating
}
