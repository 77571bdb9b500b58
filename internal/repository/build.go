package repository

import (
	"context"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// Build defines the interface for build persistence
type Build interface {
	CreateBuild(ctx context.Context, build *domain.Build) error
	GetBuild(ctx context.Context, id int64) (*domain.Build, error)
	ListBuilds(ctx context.Context) ([]domain.Build, error)
	UpdateBuild(ctx context.Context, id int64, build *domain.Build) error
	DeleteBuild(ctx context.Context, id int64) error
}
