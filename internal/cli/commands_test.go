package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/bootstrap"
	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/legacycsv"
)

func TestInit(t *testing.T) {
	dir := setupEnv(t)

	out, err := execute(t, "--format", "json", "init")
	require.NoError(t, err)

	var result InitResult
	resp := decode(t, out, &result)
	assert.Equal(t, StatusOK, resp.Status)
	assert.Len(t, result.CreatedCSV, 3)
	assert.FileExists(t, filepath.Join(dir, "albion.db"))
	assert.FileExists(t, filepath.Join(dir, "equipment.json"))
	for _, name := range legacycsv.Files {
		assert.FileExists(t, filepath.Join(dir, "csv", name))
	}

	out, err = execute(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "CSV files already present")
}

func TestImportExport(t *testing.T) {
	dir := setupEnv(t)
	_, err := execute(t, "init")
	require.NoError(t, err)

	solo := "data,personagem,tipo_hunt,lucro_itens,descricao\n" +
		"2026-10-01,Alice,Solo,1500,first\n" +
		"2026-10-02,,Solo,100,no character\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "csv", legacycsv.FileSoloHunts), []byte(solo), 0o644))

	out, err := execute(t, "--format", "json", "import-csv")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var summary ImportSummary
	resp := decode(t, out, &summary)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, 1, summary.SoloHunts)
	require.Len(t, summary.Rejected, 1)
	assert.Contains(t, summary.Rejected[0], "hunts_solo.csv:3")

	exportDir := filepath.Join(dir, "export")
	out, err = execute(t, "export-csv", "--dir", exportDir)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	data, err := os.ReadFile(filepath.Join(exportDir, legacycsv.FileSoloHunts))
	require.NoError(t, err)
	assert.Contains(t, string(data), "2026-10-01,Alice,Solo,1500,first")

	out, err = execute(t, "--format", "json", "import-csv", "--dir", exportDir)
	require.NoError(t, err)
	summary = ImportSummary{}
	decode(t, out, &summary)
	assert.Zero(t, summary.SoloHunts)
	assert.Equal(t, 1, summary.Duplicates)
}

func TestImportCSV_Clean(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "init")
	require.NoError(t, err)

	out, err := execute(t, "import-csv")
	require.NoError(t, err)
	assert.Contains(t, out, "0 solo hunts, 0 group hunts, 0 deaths")
}

func TestCatalogList(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "--format", "json", "catalog", "list")
	require.NoError(t, err)
	var counts []CategoryCount
	decode(t, out, &counts)
	require.Len(t, counts, len(domain.EquipmentCategories))
	assert.Equal(t, domain.CategoryWeapons, counts[0].Category)
	assert.Positive(t, counts[0].Items)

	out, err = execute(t, "catalog", "list", "weapons")
	require.NoError(t, err)
	assert.Contains(t, out, "Claymore")
	assert.Contains(t, out, "T4_2H_CLAYMORE")

	_, err = execute(t, "catalog", "list", "shields")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestCatalogResolve(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "--format", "json", "catalog", "resolve", "Claymore")
	require.NoError(t, err)
	var resolutions []Resolution
	decode(t, out, &resolutions)
	require.Len(t, resolutions, 1)
	assert.True(t, resolutions[0].Found)
	assert.Equal(t, "T4_2H_CLAYMORE", resolutions[0].ID)
	assert.Equal(t, "https://render.albiononline.com/v1/item/T4_2H_CLAYMORE.png?quality=1", resolutions[0].IconURL)

	out, err = execute(t, "catalog", "resolve", "Claymore", "Starter Helmet")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Claymore → T4_2H_CLAYMORE")
	assert.Contains(t, out, "Starter Helmet: not in catalog")
}

// storeBuild writes a build straight to the repository, skipping the
// catalog check a service write would run
func storeBuild(t *testing.T, b *domain.Build) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	db, err := bootstrap.OpenDatabase(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, bootstrap.InitializeRepositories(db).Build.CreateBuild(context.Background(), b))
}

func TestCheckBuilds(t *testing.T) {
	setupEnv(t)
	_, err := execute(t, "init")
	require.NoError(t, err)

	out, err := execute(t, "check-builds")
	require.NoError(t, err)
	assert.Contains(t, out, "All builds match the catalog")

	storeBuild(t, &domain.Build{Name: "Old Tank", ContentType: domain.ContentPvESolo, PrimaryWeapon: "Claymoore"})

	out, err = execute(t, "check-builds")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Old Tank")
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, `"Claymore"`)
}

func TestStats(t *testing.T) {
	dir := setupEnv(t)
	_, err := execute(t, "init")
	require.NoError(t, err)

	solo := "data,personagem,tipo_hunt,lucro_itens,descricao\n" +
		"2026-10-01,Alice,Solo,1250000,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "csv", legacycsv.FileSoloHunts), []byte(solo), 0o644))
	_, err = execute(t, "import-csv")
	require.NoError(t, err)

	out, err := execute(t, "--format", "json", "stats", "--period", "all")
	require.NoError(t, err)
	var summary domain.StatsSummary
	decode(t, out, &summary)
	assert.Equal(t, 1, summary.SoloHuntCount)
	assert.True(t, summary.Net.Equal(decimal.NewFromInt(1250000)))

	out, err = execute(t, "stats", "-p", "all")
	require.NoError(t, err)
	assert.Contains(t, out, "1.250.000")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
}

func TestDoctor(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "doctor")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "run albionctl init")

	_, err = execute(t, "init")
	require.NoError(t, err)

	out, err = execute(t, "--format", "json", "doctor")
	require.NoError(t, err)
	var report DoctorReport
	decode(t, out, &report)
	require.Len(t, report.Checks, 4)
	for _, c := range report.Checks {
		assert.True(t, c.OK, c.Name)
	}
	assert.Contains(t, report.Checks[3].Detail, "3 of 3")
}

func TestHealth(t *testing.T) {
	setupEnv(t)

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	out, err := execute(t, "--format", "json", "health", "--url", healthy.URL+"/")
	require.NoError(t, err)
	var checks []EndpointCheck
	decode(t, out, &checks)
	require.Len(t, checks, 2)
	assert.Equal(t, healthy.URL+"/healthz", checks[0].URL)
	assert.Equal(t, healthy.URL+"/readyz", checks[1].URL)

	notReady := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer notReady.Close()

	out, err = execute(t, "health", "--url", notReady.URL)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "unexpected status 503")
}
