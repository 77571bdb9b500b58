package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlbionStats_Go/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:            8080,
		LogLevel:        "info",
		LogFormat:       "text",
		Environment:     "test",
		ServiceName:     "albion-stats",
		Version:         "test",
		DBPath:          filepath.Join(dir, "albion.db"),
		EquipmentPath:   filepath.Join(dir, "equipment.json"),
		CSVDir:          filepath.Join(dir, "csv"),
		Characters:      []string{"Alice"},
		IconBaseURL:     config.DefaultIconBaseURL,
		IconQuality:     1,
		MaxRequestBytes: 1 << 20,
		ShutdownTimeout: time.Second,
	}
}

func TestSetupLogger_ConsoleOnly(t *testing.T) {
	cfg := testConfig(t)
	var console bytes.Buffer

	logFile, err := SetupLogger(cfg, &console)

	require.NoError(t, err)
	assert.Nil(t, logFile)
	assert.Contains(t, console.String(), LogMsgStartingAlbionStats)
}

func TestSetupLogger_SessionFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	var console bytes.Buffer

	logFile, err := SetupLogger(cfg, &console)
	require.NoError(t, err)
	require.NotNil(t, logFile)
	defer logFile.Close()

	data, err := os.ReadFile(logFile.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
	assert.Contains(t, console.String(), LogMsgLoggingInitialized)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	total := LogFileRetentionCount + 3
	for i := 0; i < total; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, LogFilePermission))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, LogFilePermission))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, LogFileRetentionCount+1)
	assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00")))
	assert.FileExists(t, filepath.Join(dir, fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", total))))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestOpenDatabaseAndCatalog(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	db, err := OpenDatabase(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, db.Ping(ctx))

	catalog, err := LoadCatalog(ctx, cfg)
	require.NoError(t, err)
	assert.FileExists(t, cfg.EquipmentPath)
	id, ok := catalog.ResolveItemID(ctx, "Claymore")
	assert.True(t, ok)
	assert.Equal(t, "T4_2H_CLAYMORE", id)

	services := InitializeServices(cfg, InitializeRepositories(db), catalog)
	assert.NotNil(t, services.Hunts)
	assert.NotNil(t, services.Deaths)
	assert.NotNil(t, services.Builds)
	assert.NotNil(t, services.Stats)
	assert.Equal(t, catalog, services.Catalog)

	builds, err := services.Builds.AuditBuilds(ctx)
	require.NoError(t, err)
	assert.Empty(t, builds)

	GracefulShutdown(ctx, ShutdownComponents{DB: db})
	assert.Error(t, db.Ping(ctx))
}

func TestLoadCatalog_InvalidFileStillReturned(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.EquipmentPath, []byte("{not json"), 0o644))

	catalog, err := LoadCatalog(context.Background(), cfg)

	require.NoError(t, err)
	require.NotNil(t, catalog)
	_, ok := catalog.ResolveItemID(context.Background(), "Claymore")
	assert.False(t, ok)
}

func TestStartBackgroundJobs(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	assert.Nil(t, StartBackgroundJobs(cfg, InitializeServices(cfg, &Repositories{}, nil)))

	db, err := OpenDatabase(ctx, cfg)
	require.NoError(t, err)
	catalog, err := LoadCatalog(ctx, cfg)
	require.NoError(t, err)

	cfg.AuditInterval = time.Hour
	jobs := StartBackgroundJobs(cfg, InitializeServices(cfg, InitializeRepositories(db), catalog))
	require.NotNil(t, jobs)

	GracefulShutdown(ctx, ShutdownComponents{Jobs: jobs, DB: db})

	var none *BackgroundJobs
	assert.NotPanics(t, none.Stop)
}
