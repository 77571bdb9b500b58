package equipment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equipment.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestCatalog(t *testing.T, path string) *catalog {
	t.Helper()
	c, err := NewCatalog(path)
	require.NoError(t, err)
	return c.(*catalog)
}

func seededCatalog(t *testing.T) *catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "configs", "equipment.json")
	created, err := SeedFile(path)
	require.NoError(t, err)
	require.True(t, created)
	return newTestCatalog(t, path)
}

func TestListEquipment_SortedByName(t *testing.T) {
	c := seededCatalog(t)

	names := c.Names(context.Background(), domain.CategoryWeapons)
	assert.Equal(t, []string{
		"Bow", "Broadsword", "Claymore", "Dagger", "Great Arcane Staff", "Great Hammer", "Holy Staff",
	}, names)

	entries := c.ListEquipment(context.Background(), domain.CategoryOffhands)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Mistcaller", entries[0].Name)
	assert.Equal(t, "T4_OFF_HORN_KEEPER", entries[0].ExternalID)
}

func TestListEquipment_FailuresReturnEmpty(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		path     func(t *testing.T) string
		category domain.EquipmentCategory
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			category: domain.CategoryWeapons,
		},
		{
			name:     "malformed JSON",
			path:     func(t *testing.T) string { return writeCatalog(t, `{"weapons": [`) },
			category: domain.CategoryWeapons,
		},
		{
			name:     "schema violation",
			path:     func(t *testing.T) string { return writeCatalog(t, `{"weapons": [{"name": "Claymore"}]}`) },
			category: domain.CategoryWeapons,
		},
		{
			name:     "unknown top-level key",
			path:     func(t *testing.T) string { return writeCatalog(t, `{"rings": []}`) },
			category: domain.CategoryWeapons,
		},
		{
			name:     "unknown category",
			path:     func(t *testing.T) string { return writeCatalog(t, `{"weapons": []}`) },
			category: "rings",
		},
		{
			name:     "category absent from file",
			path:     func(t *testing.T) string { return writeCatalog(t, `{"weapons": []}`) },
			category: domain.CategoryFoods,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t, tt.path(t))
			entries := c.ListEquipment(ctx, tt.category)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
		})
	}
}

func TestLoad_MissingFileIsResourceMissing(t *testing.T) {
	c := newTestCatalog(t, filepath.Join(t.TempDir(), "absent.json"))

	_, err := c.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrResourceMissing)
}

func TestLoad_InvalidContent(t *testing.T) {
	c := newTestCatalog(t, writeCatalog(t, `{"weapons": "Claymore"}`))

	_, err := c.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoad_ObservesEdits(t *testing.T) {
	ctx := context.Background()
	path := writeCatalog(t, `{"weapons": [{"name": "Claymore", "id": "T4_2H_CLAYMORE"}]}`)
	c := newTestCatalog(t, path)

	assert.Equal(t, []string{"Claymore"}, c.Names(ctx, domain.CategoryWeapons))
	assert.Equal(t, []string{"Claymore"}, c.Names(ctx, domain.CategoryWeapons))
	assert.Equal(t, 1, c.memo.Len())

	require.NoError(t, os.WriteFile(path, []byte(`{"weapons": [{"name": "Bow", "id": "T4_2H_BOW"}]}`), 0o644))
	assert.Equal(t, []string{"Bow"}, c.Names(ctx, domain.CategoryWeapons))
	assert.Equal(t, 2, c.memo.Len())

	require.NoError(t, os.Remove(path))
	assert.Empty(t, c.Names(ctx, domain.CategoryWeapons))
}

func TestSeedFile_KeepsExistingFile(t *testing.T) {
	path := writeCatalog(t, `{"weapons": []}`)

	created, err := SeedFile(path)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"weapons": []}`, string(data))
}

func TestSeedFile_MatchesSchema(t *testing.T) {
	c := seededCatalog(t)

	doc, err := c.Load(context.Background())
	require.NoError(t, err)
	for _, category := range c.Categories() {
		assert.NotEmpty(t, doc[category], "category %s", category)
	}
}
