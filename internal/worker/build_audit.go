package worker

import (
	"context"
	"fmt"

	"github.com/osse101/AlbionStats_Go/internal/build"
	"github.com/osse101/AlbionStats_Go/internal/logger"
	"github.com/osse101/AlbionStats_Go/internal/metrics"
)

// BuildAuditor is the part of build.Service the audit job needs
type BuildAuditor interface {
	AuditBuilds(ctx context.Context) ([]build.Audit, error)
}

// BuildAuditJob checks stored builds against the equipment catalog and
// publishes the number of builds with mismatches. Catalog edits can orphan
// builds that were valid when saved.
type BuildAuditJob struct {
	builds BuildAuditor
}

// NewBuildAuditJob creates the audit job
func NewBuildAuditJob(builds BuildAuditor) *BuildAuditJob {
	return &BuildAuditJob{builds: builds}
}

// Name implements Job
func (j *BuildAuditJob) Name() string {
	return JobNameBuildAudit
}

// Process implements Job. The gauge keeps its last value when the audit fails.
func (j *BuildAuditJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	audits, err := j.builds.AuditBuilds(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBuildAuditFailed, err)
	}

	metrics.OrphanedBuilds.Set(float64(len(audits)))
	for _, a := range audits {
		log.Warn(LogMsgOrphanedBuild, "build_id", a.Build.ID, "name", a.Build.Name, "mismatches", len(a.Mismatches))
	}
	log.Info(LogMsgBuildAuditCompleted, "orphaned", len(audits))
	return nil
}
