// Package sqlite implements the SQLite team repository.
package sqlite

// Schema DDL. Statements are idempotent so an existing database is reused.
const (
	createTeams = `CREATE TABLE IF NOT EXISTS teams (
    team_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);`

	createTeamSlots = `CREATE TABLE IF NOT EXISTS team_slots (
    team_id TEXT NOT NULL,
    slot_index INTEGER NOT NULL,
    miscrit_id INTEGER,
    PRIMARY KEY (team_id, slot_index),
    FOREIGN KEY (team_id) REFERENCES teams(team_id) ON DELETE CASCADE
);`

	createStoreState = `CREATE TABLE IF NOT EXISTS store_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

	idxTeamsPosition = `CREATE INDEX IF NOT EXISTS idx_teams_position ON teams(position);`
)

// schemaDDL lists all statements in dependency order.
var schemaDDL = []string{
	createTeams,
	createTeamSlots,
	createStoreState,
	idxTeamsPosition,
}

// stateLastSelected is the store_state key holding the selected team id.
const stateLastSelected = "last_selected_team_id"

// DatabaseFileName is the database file created in the data directory.
const DatabaseFileName = "teams.db"
