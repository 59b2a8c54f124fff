// Package teamrepo opens the team store backend named by a types.Config
// while keeping the backends themselves internal.
//
// Example:
//
//	repo, err := teamrepo.Open(types.Config{
//	    Backend: types.BackendJSON,
//	    DataDir: ".planner-db",
//	}, zerolog.Nop())
//	if err != nil {
//	    return err
//	}
//	defer repo.Close()
package teamrepo

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/teamplanner/internal/sqlite"
	"github.com/mesh-intelligence/teamplanner/internal/teamstore"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Open validates cfg and returns the matching repository. The caller must
// Close it.
func Open(cfg types.Config, log zerolog.Logger) (types.TeamRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backend %q: %w", cfg.Backend, err)
	}

	switch cfg.Backend {
	case types.BackendSQLite:
		repo, err := sqlite.Open(cfg, log)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		repo, err := teamstore.NewFileRepository(cfg.DataDir, log)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}
