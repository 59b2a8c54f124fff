package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

// Dataset formats accepted by Decode.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFromPath infers the dataset format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, types.ErrCatalogFormat)
	}
}

// Decode reads an array of entities in the given format. Unknown fields are
// ignored so newer datasets keep loading.
func Decode(r io.Reader, format string) ([]types.Entity, error) {
	var entities []types.Entity
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&entities); err != nil {
			return nil, fmt.Errorf("decoding json catalog: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&entities); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, types.ErrCatalogFormat)
	}
	return entities, nil
}

// ReadFile loads a dataset from path and builds its Catalog.
func ReadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	entities, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(entities), nil
}
