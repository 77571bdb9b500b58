package cli

import "time"

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The command ran and found problems (rejected rows, orphaned builds, failed checks)
	ExitCommandError = 2 // The command could not run (bad config, unreadable store or catalog)
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatText, FormatJSON}

// Response statuses for JSON output
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Flag names
const (
	FlagVerbose = "verbose"
	FlagFormat  = "format"
	FlagDir     = "dir"
	FlagPeriod  = "period"
	FlagURL     = "url"
	FlagTimeout = "timeout"
)

// Health check settings
const (
	DefaultHealthTimeout = 5 * time.Second
	SlowResponseAfter    = time.Second
	LocalURLPattern      = "http://localhost:%d"
)

// Health endpoint paths
var HealthPaths = []string{"/healthz", "/readyz"}

// Error messages
const (
	ErrMsgInvalidFormat      = "invalid format"
	ErrMsgLoadConfig         = "failed to load configuration"
	ErrMsgOpenStore          = "failed to open store"
	ErrMsgInitFiles          = "failed to create CSV files"
	ErrMsgImportFailed       = "import failed"
	ErrMsgRowsRejected       = "some rows were rejected"
	ErrMsgExportFailed       = "export failed"
	ErrMsgUnknownCategory    = "unknown equipment category"
	ErrMsgCatalogUnavailable = "equipment catalog unavailable"
	ErrMsgUnresolvedNames    = "some names did not resolve"
	ErrMsgAuditFailed        = "build check failed"
	ErrMsgOrphanedBuilds     = "builds reference unknown equipment"
	ErrMsgStatsFailed        = "failed to compute stats"
	ErrMsgDoctorIssues       = "doctor found issues"
	ErrMsgHealthFailed       = "health check failed"
	ErrMsgUnexpectedStatus   = "unexpected status"
)

// Log messages
const (
	LogMsgCommandStarted = "Command started"
	LogMsgStoreOpened    = "Store opened"
)
