package repository

import (
	"context"

	"github.com/osse101/AlbionStats_Go/internal/domain"
)

// SoloHunt defines the interface for solo hunt persistence
type SoloHunt interface {
	CreateSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error
	ListSoloHunts(ctx context.Context) ([]domain.SoloHunt, error)
	DeleteSoloHunt(ctx context.Context, id int64) error
}

// GroupHunt defines the interface for group hunt persistence
type GroupHunt interface {
	CreateGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error
	ListGroupHunts(ctx context.Context) ([]domain.GroupHunt, error)
	DeleteGroupHunt(ctx context.Context, id int64) error
}
