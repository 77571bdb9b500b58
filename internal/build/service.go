package build

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/AlbionStats_Go/internal/domain"
	"github.com/osse101/AlbionStats_Go/internal/equipment"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
	"github.com/osse101/AlbionStats_Go/internal/repository"
)

// View is a build together with its resolved slots, ready for rendering
type View struct {
	Build domain.Build             `json:"build"`
	Slots []equipment.ResolvedSlot `json:"slots"`
}

// Audit lists the catalog mismatches of one stored build
type Audit struct {
	Build      domain.Build             `json:"build"`
	Mismatches []equipment.SlotMismatch `json:"mismatches"`
}

// Service defines the interface for build operations
type Service interface {
	CreateBuild(ctx context.Context, build *domain.Build) error
	GetBuild(ctx context.Context, id int64) (*domain.Build, error)
	ListBuilds(ctx context.Context, filter domain.BuildFilter) ([]domain.Build, error)
	ListBuildViews(ctx context.Context, filter domain.BuildFilter) ([]View, error)
	UpdateBuild(ctx context.Context, id int64, build *domain.Build) error
	DeleteBuild(ctx context.Context, id int64) error
	AuditBuilds(ctx context.Context) ([]Audit, error)
}

type service struct {
	repo    repository.Build
	catalog equipment.Catalog
}

// NewService creates a new build service
func NewService(repo repository.Build, catalog equipment.Catalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
	}
}

// CreateBuild validates the build, checks its slots against the catalog and
// stores it
func (s *service) CreateBuild(ctx context.Context, build *domain.Build) error {
	log := logger.FromContext(ctx)

	if err := s.prepare(ctx, build); err != nil {
		return err
	}

	if err := s.repo.CreateBuild(ctx, build); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeBuild, "create").Inc()
		log.Error(LogMsgFailedToCreateBuild, "error", err, "name", build.Name)
		return fmt.Errorf("%s: %w", ErrMsgCreateBuildFailed, err)
	}

	metrics.RecordsCreated.WithLabelValues(metrics.RecordTypeBuild).Inc()
	log.Info(LogMsgBuildCreated, "id", build.ID, "name", build.Name, "content_type", build.ContentType)
	return nil
}

// GetBuild returns one build, or an error wrapping domain.ErrRecordNotFound
func (s *service) GetBuild(ctx context.Context, id int64) (*domain.Build, error) {
	build, err := s.repo.GetBuild(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetBuildFailed, err)
	}
	return build, nil
}

// ListBuilds returns the builds passing filter, ordered by content type then
// name. On failure the slice is empty, never nil.
func (s *service) ListBuilds(ctx context.Context, filter domain.BuildFilter) ([]domain.Build, error) {
	builds, err := s.repo.ListBuilds(ctx)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeBuild, "list").Inc()
		logger.FromContext(ctx).Error(LogMsgFailedToListBuilds, "error", err)
		return []domain.Build{}, fmt.Errorf("%s: %w", ErrMsgListBuildsFailed, err)
	}

	filtered := make([]domain.Build, 0, len(builds))
	for _, b := range builds {
		if filter.Matches(b) {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

// ListBuildViews is ListBuilds with each build's slots resolved to item ids
func (s *service) ListBuildViews(ctx context.Context, filter domain.BuildFilter) ([]View, error) {
	builds, err := s.ListBuilds(ctx, filter)
	views := make([]View, 0, len(builds))
	for i := range builds {
		views = append(views, View{
			Build: builds[i],
			Slots: s.catalog.ResolveBuild(ctx, &builds[i]),
		})
	}
	return views, err
}

// UpdateBuild replaces every field of the stored build. Updating an unknown id
// reports domain.ErrRecordNotFound.
func (s *service) UpdateBuild(ctx context.Context, id int64, build *domain.Build) error {
	log := logger.FromContext(ctx)

	if err := s.prepare(ctx, build); err != nil {
		return err
	}

	if err := s.repo.UpdateBuild(ctx, id, build); err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			metrics.StoreErrors.WithLabelValues(metrics.RecordTypeBuild, "update").Inc()
		}
		log.Error(LogMsgFailedToUpdateBuild, "error", err, "id", id)
		return fmt.Errorf("%s: %w", ErrMsgUpdateBuildFailed, err)
	}

	metrics.BuildsUpdated.Inc()
	log.Info(LogMsgBuildUpdated, "id", id, "name", build.Name)
	return nil
}

// DeleteBuild removes a build. Unknown ids succeed.
func (s *service) DeleteBuild(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteBuild(ctx, id); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.RecordTypeBuild, "delete").Inc()
		log.Error(LogMsgFailedToDeleteBuild, "error", err, "id", id)
		return fmt.Errorf("%s: %w", ErrMsgDeleteBuildFailed, err)
	}

	metrics.RecordsDeleted.WithLabelValues(metrics.RecordTypeBuild).Inc()
	log.Info(LogMsgBuildDeleted, "id", id)
	return nil
}

// AuditBuilds checks every stored build against the catalog and returns the
// builds with at least one mismatch. It fails if the catalog cannot be read.
func (s *service) AuditBuilds(ctx context.Context) ([]Audit, error) {
	builds, err := s.repo.ListBuilds(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAuditBuildsFailed, err)
	}

	audits := []Audit{}
	for i := range builds {
		mismatches, err := s.catalog.CheckBuild(ctx, &builds[i])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgAuditBuildsFailed, err)
		}
		if len(mismatches) > 0 {
			audits = append(audits, Audit{Build: builds[i], Mismatches: mismatches})
		}
	}

	logger.FromContext(ctx).Info(LogMsgAuditCompleted, "builds", len(builds), "orphaned", len(audits))
	return audits, nil
}

// prepare trims the build's text fields, runs presence checks and the catalog
// check. An unreadable catalog skips the catalog check rather than blocking
// the write.
func (s *service) prepare(ctx context.Context, build *domain.Build) error {
	normalize(build)

	if err := build.Validate(); err != nil {
		return err
	}

	mismatches, err := s.catalog.CheckBuild(ctx, build)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgCatalogCheckSkipped, "error", err)
		return nil
	}
	if len(mismatches) > 0 {
		metrics.CatalogRejections.Inc()
		logger.FromContext(ctx).Info(LogMsgBuildRejected, "name", build.Name, "mismatches", len(mismatches))
		return &equipment.UnknownEquipmentError{Mismatches: mismatches}
	}
	return nil
}

func normalize(build *domain.Build) {
	build.Name = strings.TrimSpace(build.Name)
	build.Character = strings.TrimSpace(build.Character)
	for _, slot := range domain.Slots {
		build.SetSlot(slot, strings.TrimSpace(build.SlotValue(slot)))
	}
}
