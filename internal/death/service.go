package death

import (
	"context"
	"fmt"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

// Service defines the interface for death record operations
type Service interface {
	RecordDeath(ctx context.Context, death *domain.Death) error
	ListDeaths(ctx context.Context, filter domain.DeathFilter) ([]domain.Death, error)
	DeleteDeath(ctx context.Context, id int64) error
}

type service struct {
	repo repository.Death
}

// NewService creates a new death service
func NewService(repo repository.Death) Service {
	return &service{repo: repo}
}

// RecordDeath validates and stores a death
func (s *service) RecordDeath(ctx context.Context, death *domain.Death) error {
	log := logger.FromContext(ctx)

	if err := death.Validate(); err != nil {
		return err
	}

	if err := s.repo.CreateDeath(ctx, death); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeDeath, "create").Inc()
		log.Error(LogMsgFailedToRecordDeath, "error", err, "character", death.Character)
		return fmt.Errorf("%s: %w", ErrMsgRecordDeathFailed, err)
	}

	metrics.RecordsCreated.WithLabelValues(metrics.RecordTypeDeath).Inc()
	metrics.RecordSilver(metrics.SilverKindLoss, death.ValueLost)
	log.Info(LogMsgDeathRecorded, "id", death.ID, "character", death.Character, "value_lost", death.ValueLost.String())
	return nil
}

// ListDeaths returns the deaths passing filter, newest first. On failure the
// slice is empty, never nil.
func (s *service) ListDeaths(ctx context.Context, filter domain.DeathFilter) ([]domain.Death, error) {
	deaths, err := s.repo.ListDeaths(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeDeath, "list").Inc()
		logger.FromContext(ctx).Error(LogMsgFailedToListDeaths, "error", err)
		return []domain.Death{}, fmt.Errorf("%s: %w", ErrMsgListDeathsFailed, err)
	}

	filtered := make([]domain.Death, 0, len(deaths))
	for _, d := range deaths {
		if filter.Matches(d) {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// DeleteDeath removes a death. Unknown ids succeed.
func (s *service) DeleteDeath(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteDeath(ctx, id); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeDeath, "delete").Inc()
		log.Error(LogMsgFailedToDeleteDeath, "error", err, "id", id)
		return fmt.Errorf("%s: %w", ErrMsgDeleteDeathFailed, err)
	}

	metrics.RecordsDeleted.WithLabelValues(metrics.RecordTypeDeath).Inc()
	log.Info(LogMsgDeathDeleted, "id", id)
	return nil
}
