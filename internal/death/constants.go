package death

// Error Messages
const (
	ErrMsgRecordDeathFailed = "failed to record death"
	ErrMsgListDeathsFailed  = "failed to list deaths"
	ErrMsgDeleteDeathFailed = "failed to delete death"
)

// Log Messages
const (
	LogMsgDeathRecorded       = "Death recorded"
	LogMsgDeathDeleted        = "Death deleted"
	LogMsgFailedToRecordDeath = "Failed to record death"
	LogMsgFailedToListDeaths  = "Failed to list deaths"
	LogMsgFailedToDeleteDeath = "Failed to delete death"
)
