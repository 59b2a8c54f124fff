package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Repository implements types.TeamRepository on a SQLite database. Each Save
// rewrites every row inside one transaction.
type Repository struct {
	mu     sync.Mutex
	db     *sql.DB
	path   string
	log    zerolog.Logger
	closed bool
}

// Open creates the data directory if needed and opens the database in it.
// The schema is created on first use, so a damaged file surfaces through Load
// rather than here.
func Open(cfg types.Config, log zerolog.Logger) (*Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend != types.BackendSQLite {
		return nil, fmt.Errorf("sqlite repository: %w", types.ErrBackendUnknown)
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, DatabaseFileName)
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}

	return &Repository{
		db:   db,
		path: path,
		log:  log.With().Str("component", "sqlite").Logger(),
	}, nil
}

func openDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// A single connection keeps the whole-store transaction serialized.
	db.SetMaxOpenConns(1)
	return db, nil
}

// CorruptSuffix is inserted before the timestamp when an unreadable database
// is moved aside.
const CorruptSuffix = ".corrupt-"

// isUnreadable reports whether err says the file is not a usable database.
func isUnreadable(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_CORRUPT:
		return true
	}
	return false
}

// quarantine moves the unreadable database to <path>.corrupt-<unix-ms> and
// opens a fresh one in its place.
func (r *Repository) quarantine() (string, error) {
	if err := r.db.Close(); err != nil {
		r.log.Warn().Err(err).Msg("closing unreadable database")
	}
	aside := r.path + CorruptSuffix + strconv.FormatInt(time.Now().UnixMilli(), 10)
	if err := os.Rename(r.path, aside); err != nil {
		if db, oerr := openDB(r.path); oerr == nil {
			r.db = db
		}
		return "", fmt.Errorf("moving corrupt database aside: %w", err)
	}
	db, err := openDB(r.path)
	if err != nil {
		return "", err
	}
	r.db = db
	return aside, nil
}

// Path returns the database file location.
func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) ensureSchema() error {
	for _, ddl := range schemaDDL {
		if _, err := r.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}

// Load implements types.TeamRepository.
func (r *Repository) Load() (types.TeamStore, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.EmptyStore(), types.ErrStoreClosed
	}

	store, err := r.load()
	if err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("team store is corrupt, starting empty")
		return types.EmptyStore(), fmt.Errorf("%w: %v", types.ErrCorruptStore, err)
	}
	return store, nil
}

func (r *Repository) load() (types.TeamStore, error) {
	if err := r.ensureSchema(); err != nil {
		return types.TeamStore{}, err
	}

	store := types.EmptyStore()
	index := make(map[string]int)

	rows, err := r.db.Query(`SELECT team_id, name, created_at, updated_at FROM teams ORDER BY position`)
	if err != nil {
		return types.TeamStore{}, fmt.Errorf("querying teams: %w", err)
	}
	for rows.Next() {
		var t types.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			rows.Close()
			return types.TeamStore{}, fmt.Errorf("scanning team: %w", err)
		}
		index[t.ID] = len(store.Teams)
		store.Teams = append(store.Teams, t)
	}
	if err := rows.Close(); err != nil {
		return types.TeamStore{}, err
	}
	if err := rows.Err(); err != nil {
		return types.TeamStore{}, err
	}

	slotRows, err := r.db.Query(`SELECT team_id, slot_index, miscrit_id FROM team_slots`)
	if err != nil {
		return types.TeamStore{}, fmt.Errorf("querying slots: %w", err)
	}
	defer slotRows.Close()
	for slotRows.Next() {
		var (
			teamID    string
			slotIndex int
			miscritID sql.NullInt64
		)
		if err := slotRows.Scan(&teamID, &slotIndex, &miscritID); err != nil {
			return types.TeamStore{}, fmt.Errorf("scanning slot: %w", err)
		}
		i, ok := index[teamID]
		if !ok {
			return types.TeamStore{}, fmt.Errorf("slot references unknown team %q", teamID)
		}
		if slotIndex < 0 || slotIndex >= types.SlotCount {
			return types.TeamStore{}, fmt.Errorf("team %q slot %d: %w", teamID, slotIndex, types.ErrInvalidSlot)
		}
		if miscritID.Valid {
			store.Teams[i].Slots[slotIndex] = types.SlotOf(int(miscritID.Int64))
		}
	}
	if err := slotRows.Err(); err != nil {
		return types.TeamStore{}, err
	}

	var selected string
	err = r.db.QueryRow(`SELECT value FROM store_state WHERE key = ?`, stateLastSelected).Scan(&selected)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return types.TeamStore{}, fmt.Errorf("reading store state: %w", err)
	default:
		store.LastSelectedTeamID = selected
	}

	return store, nil
}

// Save implements types.TeamRepository.
func (r *Repository) Save(store types.TeamStore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return types.ErrStoreClosed
	}

	err := r.save(store)
	if err != nil && isUnreadable(err) {
		aside, qerr := r.quarantine()
		if qerr != nil {
			err = fmt.Errorf("%w (recovery failed: %v)", err, qerr)
		} else {
			r.log.Warn().Str("path", r.path).Str("moved_to", aside).Msg("unreadable database moved aside")
			err = r.save(store)
		}
	}
	if err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("failed to save team store")
		return fmt.Errorf("saving team store: %w", err)
	}
	r.log.Debug().Int("teams", len(store.Teams)).Msg("team store saved")
	return nil
}

func (r *Repository) save(store types.TeamStore) error {
	if err := r.ensureSchema(); err != nil {
		return err
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM team_slots`,
		`DELETE FROM teams`,
		`DELETE FROM store_state`,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("clearing store: %w", err)
		}
	}

	teamStmt, err := tx.Prepare(`INSERT INTO teams (team_id, position, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing team insert: %w", err)
	}
	defer teamStmt.Close()

	slotStmt, err := tx.Prepare(`INSERT INTO team_slots (team_id, slot_index, miscrit_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing slot insert: %w", err)
	}
	defer slotStmt.Close()

	for pos, t := range store.Teams {
		if _, err := teamStmt.Exec(t.ID, pos, t.Name, t.CreatedAt, t.UpdatedAt); err != nil {
			return fmt.Errorf("inserting team %q: %w", t.ID, err)
		}
		for i, slot := range t.Slots {
			var id any
			if !slot.Empty() {
				id = *slot.MiscritID
			}
			if _, err := slotStmt.Exec(t.ID, i, id); err != nil {
				return fmt.Errorf("inserting team %q slot %d: %w", t.ID, i, err)
			}
		}
	}

	if store.LastSelectedTeamID != "" {
		if _, err := tx.Exec(`INSERT INTO store_state (key, value) VALUES (?, ?)`, stateLastSelected, store.LastSelectedTeamID); err != nil {
			return fmt.Errorf("writing store state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}

// Close implements types.TeamRepository. Close is idempotent.
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}
