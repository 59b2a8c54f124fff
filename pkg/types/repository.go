package types

import "errors"

// TeamRepository persists a whole TeamStore. Every mutation is a full read,
// modify and rewrite of the store.
type TeamRepository interface {
	// Load returns the persisted store. A missing store yields an empty
	// store and a nil error. A corrupt store yields an empty store and an
	// error wrapping ErrCorruptStore; callers may keep the empty store.
	Load() (TeamStore, error)

	// Save atomically replaces the persisted store. A non-nil error means
	// the previous state is still in place.
	Save(store TeamStore) error

	// Close releases resources held by the repository. Idempotent.
	Close() error
}

// Store errors.
var (
	ErrCorruptStore  = errors.New("team store is corrupt")
	ErrStoreClosed   = errors.New("team store is closed")
	ErrTeamNotFound  = errors.New("team not found")
	ErrDuplicateTeam = errors.New("team id already exists")
)

// Value errors.
var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrInvalidSlot   = errors.New("slot index out of range")
	ErrInvalidName   = errors.New("team name must not be empty")
	ErrCatalogFormat = errors.New("unsupported catalog format")
)
