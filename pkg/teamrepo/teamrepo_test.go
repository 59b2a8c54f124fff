package teamrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/teamplanner/internal/sqlite"
	"github.com/mesh-intelligence/teamplanner/internal/teamstore"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

func TestOpenSelectsBackend(t *testing.T) {
	tests := []struct {
		backend  string
		wantFile string
	}{
		{types.BackendJSON, teamstore.StoreFileName},
		{types.BackendSQLite, sqlite.DatabaseFileName},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			dir := t.TempDir()
			repo, err := Open(types.Config{Backend: tt.backend, DataDir: dir}, zerolog.Nop())
			require.NoError(t, err)
			defer repo.Close()

			store := types.TeamStore{
				Teams:              []types.Team{{ID: "team_1", Name: "A", Slots: types.Slots{types.SlotOf(3)}, CreatedAt: 1, UpdatedAt: 1}},
				LastSelectedTeamID: "team_1",
			}
			require.NoError(t, repo.Save(store))

			got, err := repo.Load()
			require.NoError(t, err)
			assert.Equal(t, store, got)

			_, err = os.Stat(filepath.Join(dir, tt.wantFile))
			assert.NoError(t, err)
		})
	}
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(types.Config{DataDir: t.TempDir()}, zerolog.Nop())
	assert.ErrorIs(t, err, types.ErrBackendEmpty)

	_, err = Open(types.Config{Backend: "redis", DataDir: t.TempDir()}, zerolog.Nop())
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}
