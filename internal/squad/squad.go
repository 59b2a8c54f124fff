// Package squad holds the in-progress team being assembled before it is
// saved: four slots plus an optional armed slot that the next pick fills.
package squad

import (
	"fmt"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// noSlot marks that no slot is armed.
const noSlot = -1

// Squad is a mutable working team. It is not safe for concurrent use.
type Squad struct {
	slots types.Slots
	armed int
}

// New returns a squad with four empty slots and nothing armed.
func New() *Squad {
	return &Squad{armed: noSlot}
}

// FromSlots returns a squad seeded with a copy of slots, as when a saved team
// is loaded for editing.
func FromSlots(slots types.Slots) *Squad {
	return &Squad{slots: slots.Clone(), armed: noSlot}
}

func checkIndex(i int) error {
	if i < 0 || i >= types.SlotCount {
		return fmt.Errorf("slot %d: %w", i, types.ErrInvalidSlot)
	}
	return nil
}

// Pick places id into the armed slot, or else the first empty slot, or else
// slot 0. Any armed slot is disarmed. It returns the index written.
func (s *Squad) Pick(id int) int {
	target := s.armed
	if target == noSlot {
		target = 0
		for i, slot := range s.slots {
			if slot.Empty() {
				target = i
				break
			}
		}
	}
	s.slots[target] = types.SlotOf(id)
	s.armed = noSlot
	return target
}

// Arm toggles slot i as the target of the next Pick. Arming the already
// armed slot disarms it.
func (s *Squad) Arm(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	if s.armed == i {
		s.armed = noSlot
		return nil
	}
	s.armed = i
	return nil
}

// ClearSlot empties slot i. The armed slot is left as is.
func (s *Squad) ClearSlot(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	s.slots[i] = types.TeamSlot{}
	return nil
}

// Clear empties every slot and disarms.
func (s *Squad) Clear() {
	s.slots = types.Slots{}
	s.armed = noSlot
}

// Slots returns a copy of the current slots.
func (s *Squad) Slots() types.Slots {
	return s.slots.Clone()
}

// Armed returns the armed slot index, if any.
func (s *Squad) Armed() (int, bool) {
	if s.armed == noSlot {
		return 0, false
	}
	return s.armed, true
}

// Members returns the occupied entity identifiers in slot order.
func (s *Squad) Members() []int {
	var ids []int
	for _, slot := range s.slots {
		if !slot.Empty() {
			ids = append(ids, *slot.MiscritID)
		}
	}
	return ids
}
