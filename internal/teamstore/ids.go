package teamstore

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TeamIDPrefix starts every generated team identifier.
const TeamIDPrefix = "team_"

// IDGenerator allocates team identifiers. Implementations must never return
// the same identifier twice.
type IDGenerator interface {
	NewID(now time.Time) string
}

// TimestampIDs produces team_<unix-ms> identifiers. When two calls land in the
// same millisecond, or the clock steps backwards, the later call takes the
// previous value plus one, so identifiers stay unique and increasing.
type TimestampIDs struct {
	mu   sync.Mutex
	last int64
}

// NewID implements IDGenerator.
func (g *TimestampIDs) NewID(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return fmt.Sprintf("%s%d", TeamIDPrefix, ms)
}

// Observe records an identifier already in use so later ones sort after it.
// Identifiers not of the team_<unix-ms> form are ignored.
func (g *TimestampIDs) Observe(id string) {
	rest, ok := strings.CutPrefix(id, TeamIDPrefix)
	if !ok {
		return
	}
	ms, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if ms > g.last {
		g.last = ms
	}
}

// UUIDIDs produces team_<uuid> identifiers using UUID v7.
type UUIDIDs struct{}

// NewID implements IDGenerator.
func (UUIDIDs) NewID(time.Time) string {
	return TeamIDPrefix + generateUUID()
}

// generateUUID generates a new UUID v7.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// ID scheme names accepted by NewIDGenerator.
const (
	IDSchemeTimestamp = "timestamp"
	IDSchemeUUID      = "uuid"
)

// NewIDGenerator returns the generator for scheme. An empty scheme selects
// timestamps.
func NewIDGenerator(scheme string) (IDGenerator, error) {
	switch scheme {
	case "", IDSchemeTimestamp:
		return &TimestampIDs{}, nil
	case IDSchemeUUID:
		return UUIDIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id scheme %q", scheme)
	}
}
