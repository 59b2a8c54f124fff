// Shared helpers for planner commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/teamplanner/internal/catalog"
	"github.com/mesh-intelligence/teamplanner/internal/teamstore"
	"github.com/mesh-intelligence/teamplanner/pkg/teamrepo"
	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// emptySlotToken marks an empty slot in --slots lists.
const emptySlotToken = "-"

// openRepository opens the team store selected by the backend setting. The
// caller must Close it.
func openRepository() (types.TeamRepository, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return teamrepo.Open(types.Config{Backend: settings.Backend, DataDir: dataDir}, log)
}

func newFactory() (*teamstore.Factory, error) {
	ids, err := teamstore.NewIDGenerator(settings.IDScheme)
	if err != nil {
		return nil, userError{err}
	}
	return teamstore.NewFactory(teamstore.WithIDGenerator(ids)), nil
}

// loadStore reads the store. A corrupt store was already logged by the
// repository and is replaced by an empty one.
func loadStore(repo types.TeamRepository) (types.TeamStore, error) {
	store, err := repo.Load()
	if errors.Is(err, types.ErrCorruptStore) {
		return store, nil
	}
	if err != nil {
		return types.TeamStore{}, fmt.Errorf("load teams: %w", err)
	}
	return store, nil
}

// viewStore runs fn against the current store.
func viewStore(fn func(types.TeamStore) error) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	store, err := loadStore(repo)
	if err != nil {
		return err
	}
	return fn(store)
}

// updateStore loads the store, applies change and saves the result. Nothing
// is written when change fails.
func updateStore(change func(types.TeamStore) (types.TeamStore, error)) error {
	repo, err := openRepository()
	if err != nil {
		return err
	}
	defer repo.Close()

	store, err := loadStore(repo)
	if err != nil {
		return err
	}
	next, err := change(store)
	if err != nil {
		return err
	}
	if err := repo.Save(next); err != nil {
		return err
	}
	return nil
}

// openCatalog reads the roster dataset.
func openCatalog() (*catalog.Catalog, error) {
	path, err := resolveCatalogPath()
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	c, err := catalog.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, userErrorf("no roster dataset at %s (set --catalog or PLANNER_CATALOG)", path)
	}
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("entities", c.Len()).Msg("catalog loaded")
	return c, nil
}

// parseSlots reads a comma-separated slot list such as "12,5,-,7". Missing
// trailing entries are empty.
func parseSlots(s string) (types.Slots, error) {
	var slots types.Slots
	if strings.TrimSpace(s) == "" {
		return slots, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) > types.SlotCount {
		return slots, fmt.Errorf("%d slots given, at most %d: %w", len(parts), types.SlotCount, types.ErrInvalidSlot)
	}
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == emptySlotToken {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return types.Slots{}, userErrorf("slot %d: %q is not a miscrit id", i, p)
		}
		slots[i] = types.SlotOf(id)
	}
	return slots, nil
}

// formatSlots is the inverse of parseSlots.
func formatSlots(slots types.Slots) string {
	parts := make([]string, len(slots))
	for i, slot := range slots {
		if slot.Empty() {
			parts[i] = emptySlotToken
			continue
		}
		parts[i] = strconv.Itoa(*slot.MiscritID)
	}
	return strings.Join(parts, ",")
}

// parseMinStat reads a "key=rating" stat minimum such as "hp=3".
func parseMinStat(s string) (types.StatKey, types.Rating, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, userErrorf("invalid stat minimum %q (expected stat=rating)", s)
	}
	key, ok := types.ParseStatKey(strings.ToLower(strings.TrimSpace(k)))
	if !ok {
		return "", 0, userErrorf("unknown stat %q (valid: hp, spd, ea, pa, ed, pd)", k)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return "", 0, userErrorf("stat %s: %q is not a rating", key, v)
	}
	r := types.Rating(n)
	if !r.Valid() {
		return "", 0, fmt.Errorf("stat %s: %w", key, types.ErrInvalidRating)
	}
	return key, r, nil
}

// parseTag checks that name is one of allowed.
func parseTag(name string, allowed []types.Tag) (types.Tag, error) {
	t := types.Tag(strings.ToLower(strings.TrimSpace(name)))
	if !slices.Contains(allowed, t) {
		return "", userErrorf("unknown tag %q (see planner tags)", name)
	}
	return t, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
