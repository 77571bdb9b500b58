package repository

import (
	"context"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// Death defines the interface for death record persistence
type Death interface {
	CreateDeath(ctx context.Context, death *domain.Death) error
	ListDeaths(ctx context.Context) ([]domain.Death, error)
	DeleteDeath(ctx context.Context, id int64) error
}
