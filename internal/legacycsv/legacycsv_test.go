package legacycsv

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// memStore records and lists like the hunt and death services
type memStore struct {
	solo   []domain.SoloHunt
	group  []domain.GroupHunt
	deaths []domain.Death
	nextID int64
	fail   error
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) RecordSoloHunt(_ context.Context, h *domain.SoloHunt) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if m.fail != nil {
		return m.fail
	}
	h.ID = m.id()
	m.solo = append(m.solo, *h)
	return nil
}

func (m *memStore) RecordGroupHunt(_ context.Context, g *domain.GroupHunt) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if m.fail != nil {
		return m.fail
	}
	g.ID = m.id()
	m.group = append(m.group, *g)
	return nil
}

func (m *memStore) RecordDeath(_ context.Context, d *domain.Death) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if m.fail != nil {
		return m.fail
	}
	d.ID = m.id()
	m.deaths = append(m.deaths, *d)
	return nil
}

func (m *memStore) ListSoloHunts(context.Context, domain.SoloHuntFilter) ([]domain.SoloHunt, error) {
	out := slices.Clone(m.solo)
	slices.Reverse(out)
	return out, m.fail
}

func (m *memStore) ListGroupHunts(context.Context, domain.GroupHuntFilter) ([]domain.GroupHunt, error) {
	out := slices.Clone(m.group)
	slices.Reverse(out)
	return out, m.fail
}

func (m *memStore) ListDeaths(context.Context, domain.DeathFilter) ([]domain.Death, error) {
	out := slices.Clone(m.deaths)
	slices.Reverse(out)
	return out, m.fail
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestInitFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	ctx := context.Background()

	created, err := InitFiles(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, created, 3)

	data, err := os.ReadFile(filepath.Join(dir, FileSoloHunts))
	require.NoError(t, err)
	assert.Equal(t, "data,personagem,tipo_hunt,lucro_itens,descricao\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, FileDeaths))
	require.NoError(t, err)
	assert.Equal(t, "personagem,data,valor_perdido,descricao\n", string(data))

	// Existing files, even edited ones, are kept
	writeFile(t, dir, FileGroupHunts, "data,personagens,valor_total,observacoes\n2024-03-10,Alice,1,\n")
	created, err = InitFiles(ctx, dir)
	require.NoError(t, err)
	assert.Empty(t, created)

	data, err = os.ReadFile(filepath.Join(dir, FileGroupHunts))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2024-03-10,Alice,1,")
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileSoloHunts, "\ufeffdata,personagem,tipo_hunt,lucro_itens,descricao\n"+
		"2024-03-09,Alice,Solo,1500,T6 dungeon\n"+
		"2024-03-10,Bob,Corrupted,,\n"+
		"not-a-date,Alice,Solo,10,bad date\n"+
		"2024-03-10,Alice,Raid,10,bad type\n"+
		"2024-03-11,Alice,Solo,abc,bad amount\n"+
		"2024-03-11,Alice,Solo\n")
	writeFile(t, dir, FileGroupHunts, "data,personagens,valor_total,observacoes\n"+
		"2024-03-10,\"Alice, Bob, Carol\",300,Avalon roads\n")

	store := &memStore{}
	result, err := NewImporter(store, store).Import(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SoloHunts)
	assert.Equal(t, 1, result.GroupHunts)
	assert.Equal(t, 0, result.Deaths)

	require.Len(t, result.Rejected, 4)
	lines := make([]int, len(result.Rejected))
	for i, r := range result.Rejected {
		lines[i] = r.Line
		assert.Equal(t, FileSoloHunts, r.File)
		assert.ErrorIs(t, r, domain.ErrInvalidInput)
	}
	assert.Equal(t, []int{4, 5, 6, 7}, lines)

	require.Len(t, store.solo, 2)
	assert.True(t, store.solo[0].ItemProfit.Equal(decimal.NewFromInt(1500)))
	assert.True(t, store.solo[1].ItemProfit.IsZero())
	assert.Equal(t, domain.HuntTypeCorrupted, store.solo[1].HuntType)

	require.Len(t, store.group, 1)
	assert.Equal(t, 3, store.group[0].ParticipantCount())
}

func TestImport_SkipsStoredRows(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeFile(t, dir, FileSoloHunts, "data,personagem,tipo_hunt,lucro_itens,descricao\n"+
		"2024-03-09,Alice,Solo,1500,T6 dungeon\n"+
		"2024-03-09,Alice,Solo,1500,T6 dungeon\n")
	writeFile(t, dir, FileGroupHunts, "data,personagens,valor_total,observacoes\n"+
		"2024-03-10,\"Alice,Bob\",300,\n")
	writeFile(t, dir, FileDeaths, "personagem,data,valor_perdido,descricao\nBob,2024-03-10,200.0,\n")

	store := &memStore{}
	first, err := NewImporter(store, store).Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, first.SoloHunts, "identical rows in one file are separate records")
	assert.Equal(t, 1, first.GroupHunts)
	assert.Equal(t, 1, first.Deaths)
	assert.Zero(t, first.Duplicates)

	second, err := NewImporter(store, store).Import(ctx, dir)
	require.NoError(t, err)
	assert.Zero(t, second.SoloHunts+second.GroupHunts+second.Deaths)
	assert.Equal(t, 4, second.Duplicates)
	assert.Len(t, store.solo, 2)
	assert.Len(t, store.group, 1)
	assert.Len(t, store.deaths, 1)
}

func TestImport_HeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileDeaths, "data,personagem,valor_perdido,descricao\n2024-03-10,Bob,200,\n")

	_, err := NewImporter(&memStore{}, &memStore{}).Import(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgHeaderMismatch)
}

func TestImport_StoreFailureStops(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileDeaths, "personagem,data,valor_perdido,descricao\nBob,2024-03-10,200,\n")
	storeErr := errors.New("database is locked")

	_, err := NewImporter(&memStore{}, &memStore{fail: storeErr}).Import(context.Background(), dir)
	assert.ErrorIs(t, err, storeErr)
}

func TestImport_EmptyDir(t *testing.T) {
	result, err := NewImporter(&memStore{}, &memStore{}).Import(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, result.SoloHunts+result.GroupHunts+result.Deaths)
	assert.Empty(t, result.Rejected)
}

func sampleRecords() ([]domain.SoloHunt, []domain.GroupHunt, []domain.Death) {
	solo := []domain.SoloHunt{
		{ID: 1, Date: domain.NewDate(2024, 3, 9), Character: "Alice", HuntType: domain.HuntTypeSolo, ItemProfit: decimal.NewFromInt(1500), Description: "T6 dungeon"},
		{ID: 2, Date: domain.NewDate(2024, 3, 10), Character: "Bob", HuntType: domain.HuntTypeHCE, ItemProfit: decimal.RequireFromString("250000.5")},
	}
	group := []domain.GroupHunt{
		{ID: 3, Date: domain.NewDate(2024, 3, 10), Characters: "Alice, Bob, Carol", TotalValue: decimal.NewFromInt(300), Notes: "Avalon roads"},
	}
	deaths := []domain.Death{
		{ID: 4, Date: domain.NewDate(2024, 3, 10), Character: "Bob", ValueLost: decimal.NewFromInt(200), Description: `Lost "everything" to a gank`},
	}
	return solo, group, deaths
}

func TestWriteLegacyFiles_Golden(t *testing.T) {
	solo, group, deaths := sampleRecords()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteSoloHunts(&buf, solo))
	g.Assert(t, "hunts_solo", buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteGroupHunts(&buf, group))
	g.Assert(t, "hunts_grupo", buf.Bytes())

	buf.Reset()
	require.NoError(t, WriteDeaths(&buf, deaths))
	g.Assert(t, "mortes", buf.Bytes())
}

func TestExportDir_RoundTrip(t *testing.T) {
	ctx := context.Background()
	solo, group, deaths := sampleRecords()
	source := &memStore{solo: solo, group: group, deaths: deaths}
	dir := filepath.Join(t.TempDir(), "export")

	written, err := NewExporter(source, source).ExportDir(ctx, dir)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	data, err := os.ReadFile(filepath.Join(dir, FileSoloHunts))
	require.NoError(t, err)
	golden, err := os.ReadFile(filepath.Join("testdata", "golden", "hunts_solo.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(golden), string(data), "oldest first regardless of list order")

	target := &memStore{}
	result, err := NewImporter(target, target).Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SoloHunts)
	assert.Equal(t, 1, result.GroupHunts)
	assert.Equal(t, 1, result.Deaths)
	assert.Equal(t, `Lost "everything" to a gank`, target.deaths[0].Description)
	assert.True(t, target.solo[1].ItemProfit.Equal(decimal.RequireFromString("250000.5")))

	result, err = NewImporter(source, source).Import(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Duplicates, "re-importing an export into its source adds nothing")
	assert.Len(t, source.solo, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3, "no temp files left behind")
}

func TestExportDir_ListFailure(t *testing.T) {
	source := &memStore{fail: errors.New("disk I/O error")}

	_, err := NewExporter(source, source).ExportDir(context.Background(), t.TempDir())
	assert.ErrorContains(t, err, ErrMsgListRecordsFailed)
}
