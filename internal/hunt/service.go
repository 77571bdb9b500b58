package hunt

import (
	"context"
	"fmt"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

// Service defines the interface for solo and group hunt operations
type Service interface {
	RecordSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error
	ListSoloHunts(ctx context.Context, filter domain.SoloHuntFilter) ([]domain.SoloHunt, error)
	DeleteSoloHunt(ctx context.Context, id int64) error

	RecordGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error
	ListGroupHunts(ctx context.Context, filter domain.GroupHuntFilter) ([]domain.GroupHunt, error)
	DeleteGroupHunt(ctx context.Context, id int64) error
}

type service struct {
	soloRepo  repository.SoloHunt
	groupRepo repository.GroupHunt
}

// NewService creates a new hunt service
func NewService(soloRepo repository.SoloHunt, groupRepo repository.GroupHunt) Service {
	return &service{
		soloRepo:  soloRepo,
		groupRepo: groupRepo,
	}
}

// RecordSoloHunt validates and stores a solo hunt
func (s *service) RecordSoloHunt(ctx context.Context, hunt *domain.SoloHunt) error {
	log := logger.FromContext(ctx)

	if err := hunt.Validate(); err != nil {
		return err
	}

	if err := s.soloRepo.CreateSoloHunt(ctx, hunt); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeSoloHunt, opCreate).Inc()
		log.Error(LogMsgFailedToRecordSoloHunt, "error", err, "character", hunt.Character)
		return fmt.Errorf("%s: %w", ErrMsgRecordSoloHuntFailed, err)
	}

	metrics.RecordsCreated.WithLabelValues(metrics.RecordTypeSoloHunt).Inc()
	metrics.RecordSilver(metrics.SilverKindSoloProfit, hunt.ItemProfit)
	log.Info(LogMsgSoloHuntRecorded, "id", hunt.ID, "character", hunt.Character, "hunt_type", hunt.HuntType)
	return nil
}

// ListSoloHunts returns the solo hunts passing filter, newest first. On
// failure the slice is empty, never nil.
func (s *service) ListSoloHunts(ctx context.Context, filter domain.SoloHuntFilter) ([]domain.SoloHunt, error) {
	hunts, err := s.soloRepo.ListSoloHunts(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeSoloHunt, opList).Inc()
		logger.FromContext(ctx).Error(LogMsgFailedToListSoloHunts, "error", err)
		return []domain.SoloHunt{}, fmt.Errorf("%s: %w", ErrMsgListSoloHuntsFailed, err)
	}

	filtered := make([]domain.SoloHunt, 0, len(hunts))
	for _, h := range hunts {
		if filter.Matches(h) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// DeleteSoloHunt removes a solo hunt. Unknown ids succeed.
func (s *service) DeleteSoloHunt(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.soloRepo.DeleteSoloHunt(ctx, id); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeSoloHunt, opDelete).Inc()
		log.Error(LogMsgFailedToDeleteSoloHunt, "error", err, "id", id)
		return fmt.Errorf("%s: %w", ErrMsgDeleteSoloHuntFailed, err)
	}

	metrics.RecordsDeleted.WithLabelValues(metrics.RecordTypeSoloHunt).Inc()
	log.Info(LogMsgSoloHuntDeleted, "id", id)
	return nil
}

// RecordGroupHunt validates and stores a group hunt
func (s *service) RecordGroupHunt(ctx context.Context, hunt *domain.GroupHunt) error {
	log := logger.FromContext(ctx)

	if err := hunt.Validate(); err != nil {
		return err
	}
	joined, err := domain.JoinCharacters(hunt.Participants())
	if err != nil {
		return err
	}
	hunt.Characters = joined

	if err := s.groupRepo.CreateGroupHunt(ctx, hunt); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeGroupHunt, opCreate).Inc()
		log.Error(LogMsgFailedToRecordGroupHunt, "error", err, "characters", hunt.Characters)
		return fmt.Errorf("%s: %w", ErrMsgRecordGroupHuntFailed, err)
	}

	metrics.RecordsCreated.WithLabelValues(metrics.RecordTypeGroupHunt).Inc()
	metrics.RecordSilver(metrics.SilverKindGroupValue, hunt.TotalValue)
	log.Info(LogMsgGroupHuntRecorded, "id", hunt.ID, "participants", hunt.ParticipantCount())
	return nil
}

// ListGroupHunts returns the group hunts passing filter, newest first. On
// failure the slice is empty, never nil.
func (s *service) ListGroupHunts(ctx context.Context, filter domain.GroupHuntFilter) ([]domain.GroupHunt, error) {
	hunts, err := s.groupRepo.ListGroupHunts(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeGroupHunt, opList).Inc()
		logger.FromContext(ctx).Error(LogMsgFailedToListGroupHunts, "error", err)
		return []domain.GroupHunt{}, fmt.Errorf("%s: %w", ErrMsgListGroupHuntsFailed, err)
	}

	filtered := make([]domain.GroupHunt, 0, len(hunts))
	for _, h := range hunts {
		if filter.Matches(h) {
			filtered = append(filtered, h)
		}
	}
	return filtered, nil
}

// DeleteGroupHunt removes a group hunt. Unknown ids succeed.
func (s *service) DeleteGroupHunt(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.groupRepo.DeleteGroupHunt(ctx, id); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeGroupHunt, opDelete).Inc()
		log.Error(LogMsgFailedToDeleteGroupHunt, "error", err, "id", id)
		return fmt.Errorf("%s: %w", ErrMsgDeleteGroupHuntFailed, err)
	}

	metrics.RecordsDeleted.WithLabelValues(metrics.RecordTypeGroupHunt).Inc()
	log.Info(LogMsgGroupHuntDeleted, "id", id)
	return nil
}
