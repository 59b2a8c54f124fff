package types

import (
	"encoding/json"
	"fmt"
)

// SlotCount is the fixed number of slots in a team.
const SlotCount = 4

// DefaultTeamName is used when a team is created without a name.
const DefaultTeamName = "New Team"

// TeamSlot is either empty (MiscritID nil) or holds one entity identifier.
type TeamSlot struct {
	MiscritID *int `json:"miscritId"`
}

// SlotOf returns a slot holding id.
func SlotOf(id int) TeamSlot {
	return TeamSlot{MiscritID: &id}
}

// Empty reports whether the slot holds no entity.
func (s TeamSlot) Empty() bool {
	return s.MiscritID == nil
}

// Clone returns a slot that shares no memory with s.
func (s TeamSlot) Clone() TeamSlot {
	if s.MiscritID == nil {
		return TeamSlot{}
	}
	return SlotOf(*s.MiscritID)
}

// Slots is the fixed-size, order-significant slot array of a team.
type Slots [SlotCount]TeamSlot

// UnmarshalJSON requires exactly SlotCount entries; a longer or shorter
// array is rejected with ErrInvalidSlot instead of being truncated or padded.
// A JSON null leaves s unchanged.
func (s *Slots) UnmarshalJSON(data []byte) error {
	var raw []TeamSlot
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	if len(raw) != SlotCount {
		return fmt.Errorf("%d slots, want %d: %w", len(raw), SlotCount, ErrInvalidSlot)
	}
	copy(s[:], raw)
	return nil
}

// Clone deep-copies every slot.
func (s Slots) Clone() Slots {
	var out Slots
	for i, slot := range s {
		out[i] = slot.Clone()
	}
	return out
}

// Team is a named, persisted squad. Timestamps are Unix milliseconds.
type Team struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slots     Slots  `json:"slots"`
	CreatedAt int64  `json:"createdAt"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Clone returns a deep copy of t.
func (t Team) Clone() Team {
	t.Slots = t.Slots.Clone()
	return t
}

// TeamStore is the complete persisted collection of teams. Teams are kept
// in insertion order, which is also display order.
type TeamStore struct {
	Teams              []Team `json:"teams"`
	LastSelectedTeamID string `json:"lastSelectedTeamId,omitempty"`
}

// EmptyStore returns a store with no teams.
func EmptyStore() TeamStore {
	return TeamStore{Teams: []Team{}}
}

// Clone returns a deep copy of s.
func (s TeamStore) Clone() TeamStore {
	out := TeamStore{
		Teams:              make([]Team, len(s.Teams)),
		LastSelectedTeamID: s.LastSelectedTeamID,
	}
	for i, t := range s.Teams {
		out.Teams[i] = t.Clone()
	}
	return out
}
