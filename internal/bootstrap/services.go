package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/config"
	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/death"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/hunt"
	"github.com/osse101/AlbionStats_Go/internal/server"
	"github.com/osse101/AlbionStats_Go/internal/stats"
)

// OpenDatabase opens the SQLite file and brings its schema up to date
func OpenDatabase(ctx context.Context, cfg *config.Config) (*database.DB, error) {
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDatabase, err)
	}
	if err := db.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitDatabase, err)
	}
	slog.Info(LogMsgDatabaseReady, "path", db.Path())
	return db, nil
}

// LoadCatalog seeds the equipment file when it is missing and returns a
// catalog over it. A file that exists but does not load is reported and
// still returned, since every read re-checks the file.
func LoadCatalog(ctx context.Context, cfg *config.Config) (equipment.Catalog, error) {
	created, err := equipment.SeedFile(cfg.EquipmentPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	if created {
		slog.Info(LogMsgCatalogSeeded, "path", cfg.EquipmentPath)
	}

	catalog, err := equipment.NewCatalog(cfg.EquipmentPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateCatalog, err)
	}

	doc, err := catalog.Load(ctx)
	if err != nil {
		slog.Warn(LogMsgCatalogUnavailable, "path", cfg.EquipmentPath, "error", err)
		return catalog, nil
	}

	counts := make([]any, 0, 2*len(doc))
	for _, category := range catalog.Categories() {
		counts = append(counts, string(category), len(doc[category]))
	}
	slog.Info(LogMsgCatalogReady, counts...)
	return catalog, nil
}

// InitializeServices builds every domain service over repos
func InitializeServices(cfg *config.Config, repos *Repositories, catalog equipment.Catalog) server.Services {
	return server.Services{
		Hunts:   hunt.NewService(repos.SoloHunt, repos.GroupHunt),
		Deaths:  death.NewService(repos.Death),
		Builds:  build.NewService(repos.Build, catalog),
		Stats:   stats.NewService(repos.SoloHunt, repos.GroupHunt, repos.Death, cfg.Characters),
		Catalog: catalog,
	}
}
