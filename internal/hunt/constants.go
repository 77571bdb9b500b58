package hunt

// Error Messages
const (
	ErrMsgRecordSoloHuntFailed  = "failed to record solo hunt"
	ErrMsgListSoloHuntsFailed   = "failed to list solo hunts"
	ErrMsgDeleteSoloHuntFailed  = "failed to delete solo hunt"
	ErrMsgRecordGroupHuntFailed = "failed to record group hunt"
	ErrMsgListGroupHuntsFailed  = "failed to list group hunts"
	ErrMsgDeleteGroupHuntFailed = "failed to delete group hunt"
)

// Log Messages
const (
	LogMsgSoloHuntRecorded        = "Solo hunt recorded"
	LogMsgSoloHuntDeleted         = "Solo hunt deleted"
	LogMsgGroupHuntRecorded       = "Group hunt recorded"
	LogMsgGroupHuntDeleted        = "Group hunt deleted"
	LogMsgFailedToRecordSoloHunt  = "Failed to record solo hunt"
	LogMsgFailedToListSoloHunts   = "Failed to list solo hunts"
	LogMsgFailedToDeleteSoloHunt  = "Failed to delete solo hunt"
	LogMsgFailedToRecordGroupHunt = "Failed to record group hunt"
	LogMsgFailedToListGroupHunts  = "Failed to list group hunts"
	LogMsgFailedToDeleteGroupHunt = "Failed to delete group hunt"
)

// Operation labels for store error metrics
const (
	opCreate = "create"
	opList   = "list"
	opDelete = "delete"
)
