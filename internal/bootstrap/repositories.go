package bootstrap

import (
	"github.com/osse101/AlbionStats_Go/internal/database"
	"github.com/osse101/AlbionStats_Go/internal/database/sqlite"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application
type Repositories struct {
	SoloHunt  repository.SoloHunt
	GroupHunt repository.GroupHunt
	Death     repository.Death
	Build     repository.Build
}

// InitializeRepositories creates the SQLite repositories over db
func InitializeRepositories(db *database.DB) *Repositories {
	return &Repositories{
		SoloHunt:  sqlite.NewSoloHuntRepository(db),
		GroupHunt: sqlite.NewGroupHuntRepository(db),
		Death:     sqlite.NewDeathRepository(db),
		Build:     sqlite.NewBuildRepository(db),
	}
}
