package teamstore

import (
	"strings"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// The functions below never modify their input store. Each returns a new
// store value reflecting exactly one change; on error the input is returned
// unchanged.

// FindTeam returns the team with id.
func FindTeam(s types.TeamStore, id string) (types.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return types.Team{}, false
}

// AddTeam appends t. It fails with ErrDuplicateTeam if the id is taken.
func AddTeam(s types.TeamStore, t types.Team) (types.TeamStore, error) {
	if _, exists := FindTeam(s, t.ID); exists {
		return s, types.ErrDuplicateTeam
	}
	next := s.Clone()
	next.Teams = append(next.Teams, t.Clone())
	return next, nil
}

// RenameTeam sets the name of team id and its updated time to now.
func RenameTeam(s types.TeamStore, id, name string, now int64) (types.TeamStore, error) {
	if strings.TrimSpace(name) == "" {
		return s, types.ErrInvalidName
	}
	return mapTeam(s, id, func(t *types.Team) {
		t.Name = name
		t.UpdatedAt = now
	})
}

// SaveSquadTo replaces all slots of team id and sets its updated time to now.
func SaveSquadTo(s types.TeamStore, id string, slots types.Slots, now int64) (types.TeamStore, error) {
	return mapTeam(s, id, func(t *types.Team) {
		t.Slots = slots.Clone()
		t.UpdatedAt = now
	})
}

// DeleteTeam removes team id. Clears the selection if it pointed at id.
func DeleteTeam(s types.TeamStore, id string) (types.TeamStore, error) {
	if _, ok := FindTeam(s, id); !ok {
		return s, types.ErrTeamNotFound
	}
	next := types.TeamStore{
		Teams:              make([]types.Team, 0, len(s.Teams)),
		LastSelectedTeamID: s.LastSelectedTeamID,
	}
	for _, t := range s.Teams {
		if t.ID != id {
			next.Teams = append(next.Teams, t.Clone())
		}
	}
	if next.LastSelectedTeamID == id {
		next.LastSelectedTeamID = ""
	}
	return next, nil
}

// SelectTeam records id as the last selected team.
func SelectTeam(s types.TeamStore, id string) (types.TeamStore, error) {
	if _, ok := FindTeam(s, id); !ok {
		return s, types.ErrTeamNotFound
	}
	next := s.Clone()
	next.LastSelectedTeamID = id
	return next, nil
}

func mapTeam(s types.TeamStore, id string, change func(*types.Team)) (types.TeamStore, error) {
	next := s.Clone()
	for i := range next.Teams {
		if next.Teams[i].ID == id {
			change(&next.Teams[i])
			return next, nil
		}
	}
	return s, types.ErrTeamNotFound
}
