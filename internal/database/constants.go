package database

// SQLite Connection Constants
const (
	// DriverName is the database/sql driver registered by modernc.org/sqlite
	DriverName = "sqlite"

	// BusyTimeoutMillis is how long a statement waits on the file lock
	BusyTimeoutMillis = 5000

	// MaxOpenConnections keeps a single writer; SQLite serializes writes anyway
	MaxOpenConnections = 1
)

// Error Messages - Database Operations
const (
	ErrMsgPathRequired          = "database path is required"
	ErrMsgFailedToCreateDataDir = "failed to create data directory"
	ErrMsgFailedToOpenDatabase  = "failed to open database"
	ErrMsgFailedToPingDatabase  = "failed to ping database"
	ErrMsgFailedToAcquireConn   = "failed to acquire connection"
	ErrMsgFailedToCreateSchema  = "failed to create schema"
	ErrMsgFailedToUpgradeSchema = "failed to upgrade schema"
	ErrMsgStoreNotConfigured    = "store is not configured"
)

// Log Messages
const (
	LogMsgSuccessfullyOpenedDatabase = "Successfully opened the database"
	LogMsgSchemaInitialized          = "Schema initialized"
	LogMsgColumnAlreadyPresent       = "Column already present, skipping upgrade"
	LogMsgColumnAdded                = "Column added"
)
