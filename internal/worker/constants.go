package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// Log messages - build audit
const (
	LogMsgBuildAuditCompleted = "Scheduled build audit completed"
	LogMsgOrphanedBuild       = "Build references unknown equipment"
)

// Error messages
const ErrMsgBuildAuditFailed = "scheduled build audit failed"

// Job names, used as the metrics job label
const JobNameBuildAudit = "build_audit"

// Default pool sizing for the server's background jobs
const (
	DefaultWorkers   = 1
	DefaultQueueSize = 4
)
