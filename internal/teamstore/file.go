package teamstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// StoreFileName is the fixed name of the persisted store. The version suffix
// is the store format version.
const StoreFileName = "miscrits_team_planner_v1.json"

// FileRepository keeps the whole TeamStore in one JSON document.
type FileRepository struct {
	mu     sync.Mutex
	path   string
	log    zerolog.Logger
	closed bool
}

// NewFileRepository returns a repository rooted at dataDir, creating the
// directory if needed.
func NewFileRepository(dataDir string, log zerolog.Logger) (*FileRepository, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &FileRepository{
		path: filepath.Join(dataDir, StoreFileName),
		log:  log.With().Str("component", "teamstore").Logger(),
	}, nil
}

// Path returns the location of the store document.
func (r *FileRepository) Path() string {
	return r.path
}

// Load implements types.TeamRepository.
func (r *FileRepository) Load() (types.TeamStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.EmptyStore(), types.ErrStoreClosed
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return types.EmptyStore(), nil
	}
	if err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("failed to read team store")
		return types.EmptyStore(), fmt.Errorf("reading team store: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return types.EmptyStore(), nil
	}

	store, err := Decode(data)
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("team store is corrupt, starting empty")
		return types.EmptyStore(), err
	}
	return store, nil
}

// Save implements types.TeamRepository.
func (r *FileRepository) Save(store types.TeamStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.ErrStoreClosed
	}

	data, err := Encode(store)
	if err != nil {
		r.log.Error().Err(err).Msg("failed to encode team store")
		return err
	}
	if err := writeFileAtomic(r.path, data); err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("failed to save team store")
		return fmt.Errorf("saving team store: %w", err)
	}
	r.log.Debug().Int("teams", len(store.Teams)).Msg("team store saved")
	return nil
}

// Close implements types.TeamRepository.
func (r *FileRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Encode serializes store in the persisted layout.
func Encode(store types.TeamStore) ([]byte, error) {
	if store.Teams == nil {
		store.Teams = []types.Team{}
	}
	data, err := json.Marshal(store)
	if err != nil {
		return nil, fmt.Errorf("encoding team store: %w", err)
	}
	return data, nil
}

// Decode parses the persisted layout. Malformed input yields an error
// wrapping types.ErrCorruptStore.
func Decode(data []byte) (types.TeamStore, error) {
	var store types.TeamStore
	if err := json.Unmarshal(data, &store); err != nil {
		return types.EmptyStore(), fmt.Errorf("%w: %v", types.ErrCorruptStore, err)
	}
	if store.Teams == nil {
		store.Teams = []types.Team{}
	}
	return store, nil
}
