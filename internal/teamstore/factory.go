// Package teamstore creates teams, computes whole-store changes and persists
// the store as a single JSON document.
package teamstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// CopySuffix is appended to the name of a cloned team.
const CopySuffix = " (copy)"

// Clock returns the current time.
type Clock func() time.Time

// Factory builds teams and time-stamped store changes from an injected clock
// and identifier generator.
type Factory struct {
	now Clock
	ids IDGenerator
}

// Option configures a Factory.
type Option func(*Factory)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(f *Factory) { f.now = c }
}

// WithIDGenerator replaces the default TimestampIDs generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(f *Factory) { f.ids = g }
}

// NewFactory returns a Factory using time.Now and TimestampIDs unless
// overridden.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{now: time.Now, ids: &TimestampIDs{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewTeam returns a team with four empty slots. A blank name becomes
// types.DefaultTeamName.
func (f *Factory) NewTeam(name string) types.Team {
	if strings.TrimSpace(name) == "" {
		name = types.DefaultTeamName
	}
	now := f.now()
	ms := now.UnixMilli()
	return types.Team{
		ID:        f.ids.NewID(now),
		Name:      name,
		CreatedAt: ms,
		UpdatedAt: ms,
	}
}

// CloneTeam returns a copy of t under a fresh identifier and timestamps, with
// CopySuffix appended to the name.
func (f *Factory) CloneTeam(t types.Team) types.Team {
	c := f.NewTeam(t.Name + CopySuffix)
	c.Slots = t.Slots.Clone()
	return c
}

// observer is implemented by generators that can learn identifiers already
// in use, such as TimestampIDs.
type observer interface {
	Observe(id string)
}

// observe feeds the identifiers of s to the generator. A fresh process
// otherwise has no memory of identifiers minted by earlier runs.
func (f *Factory) observe(s types.TeamStore) {
	o, ok := f.ids.(observer)
	if !ok {
		return
	}
	for _, t := range s.Teams {
		o.Observe(t.ID)
	}
}

// Add appends an empty team named name to s.
func (f *Factory) Add(s types.TeamStore, name string) (types.TeamStore, types.Team, error) {
	f.observe(s)
	team := f.NewTeam(name)
	next, err := AddTeam(s, team)
	if err != nil {
		return s, types.Team{}, err
	}
	return next, team, nil
}

// DefaultSaveName names an unnamed team saved into a store that already
// holds count teams.
func DefaultSaveName(count int) string {
	return fmt.Sprintf("Team %d", count+1)
}

// SaveCurrent appends a new team holding slots to s and selects it. A blank
// name becomes DefaultSaveName(len(s.Teams)).
func (f *Factory) SaveCurrent(s types.TeamStore, name string, slots types.Slots) (types.TeamStore, types.Team, error) {
	f.observe(s)
	if strings.TrimSpace(name) == "" {
		name = DefaultSaveName(len(s.Teams))
	}
	team := f.NewTeam(name)
	team.Slots = slots.Clone()
	next, err := AddTeam(s, team)
	if err != nil {
		return s, types.Team{}, err
	}
	next.LastSelectedTeamID = team.ID
	return next, team, nil
}

// Rename sets the name of team id and bumps its updated time.
func (f *Factory) Rename(s types.TeamStore, id, name string) (types.TeamStore, error) {
	return RenameTeam(s, id, name, f.now().UnixMilli())
}

// SaveSquadTo replaces the slots of team id and bumps its updated time.
func (f *Factory) SaveSquadTo(s types.TeamStore, id string, slots types.Slots) (types.TeamStore, error) {
	return SaveSquadTo(s, id, slots, f.now().UnixMilli())
}

// Clone appends a copy of team id to s.
func (f *Factory) Clone(s types.TeamStore, id string) (types.TeamStore, types.Team, error) {
	orig, ok := FindTeam(s, id)
	if !ok {
		return s, types.Team{}, types.ErrTeamNotFound
	}
	f.observe(s)
	c := f.CloneTeam(orig)
	next, err := AddTeam(s, c)
	if err != nil {
		return s, types.Team{}, err
	}
	return next, c, nil
}
