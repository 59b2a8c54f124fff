package catalog

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/teamplanner/pkg/types"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr error
	}{
		{"miscrits.json", FormatJSON, nil},
		{"data/Miscrits.JSON", FormatJSON, nil},
		{"roster.yaml", FormatYAML, nil},
		{"roster.yml", FormatYAML, nil},
		{"roster.csv", "", types.ErrCatalogFormat},
		{"roster", "", types.ErrCatalogFormat},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadFileJSON(t *testing.T) {
	c, err := ReadFile(filepath.Join("testdata", "roster.json"))
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	flue, ok := c.Meta(1)
	require.True(t, ok)
	assert.Equal(t, "Flue", flue.FirstName)
	assert.Equal(t, types.Rating(5), flue.Rating(types.StatEA))
	assert.Equal(t, types.Rating(4), flue.Rating(types.StatED))
	assert.Equal(t, types.NewTagSet(types.TagStatDown, types.TagAccuracyDown), flue.Tags)

	unnamed, ok := c.Meta(2)
	require.True(t, ok)
	assert.Equal(t, types.UnknownName, unnamed.FirstName)
	assert.Equal(t, types.Rating(1), unnamed.Rating(types.StatHP))
	assert.Equal(t, types.NewTagSet(types.TagPoison, types.TagStatUp), unnamed.Tags)
}

func TestReadFileYAML(t *testing.T) {
	c, err := ReadFile(filepath.Join("testdata", "roster.yaml"))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	m, ok := c.Meta(7)
	require.True(t, ok)
	assert.Equal(t, "Sparkspeck", m.FirstName)
	assert.Equal(t, types.Rating(5), m.Rating(types.StatHP))
	assert.Equal(t, types.NewTagSet(types.TagParalyze), m.Tags)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDecodeRejectsMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`[{"id": "not a number"}]`), FormatJSON)
	assert.Error(t, err)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(`[]`), "toml")
	assert.ErrorIs(t, err, types.ErrCatalogFormat)
}

func TestDecodeEmptyYAML(t *testing.T) {
	entities, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, entities)
}
