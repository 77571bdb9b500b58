package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0o755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0o644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept next to
	// the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingAlbionStats = "Starting Albion Stats"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage Messages
// =============================================================================

const (
	LogMsgDatabaseReady      = "Database ready"
	LogMsgCatalogSeeded      = "Equipment catalog seeded with defaults"
	LogMsgCatalogReady       = "Equipment catalog loaded"
	LogMsgCatalogUnavailable = "Equipment catalog unavailable, build writes will skip the catalog check"

	ErrMsgFailedOpenDatabase   = "failed to open database"
	ErrMsgFailedInitDatabase   = "failed to initialize database schema"
	ErrMsgFailedSeedCatalog    = "failed to seed equipment catalog"
	ErrMsgFailedCreateCatalog  = "failed to create equipment catalog"
	ErrMsgFailedCloseDatabase  = "failed to close database"
	ErrMsgFailedLoadingCatalog = "failed to load equipment catalog"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerFailed         = "Server failed"
	LogMsgStoppingJobs         = "Stopping background jobs..."
)

// =============================================================================
// Background Job Messages
// =============================================================================

const (
	LogMsgBuildAuditScheduled = "Build audit scheduled"
	LogMsgBuildAuditDisabled  = "Build audit disabled"
)
