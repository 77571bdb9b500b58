package sqlite

// Error Messages - Record Operations
const (
	ErrMsgFailedToInsertSoloHunt  = "failed to insert solo hunt"
	ErrMsgFailedToListSoloHunts   = "failed to list solo hunts"
	ErrMsgFailedToDeleteSoloHunt  = "failed to delete solo hunt"
	ErrMsgFailedToInsertGroupHunt = "failed to insert group hunt"
	ErrMsgFailedToListGroupHunts  = "failed to list group hunts"
	ErrMsgFailedToDeleteGroupHunt = "failed to delete group hunt"
	ErrMsgFailedToInsertDeath     = "failed to insert death"
	ErrMsgFailedToListDeaths      = "failed to list deaths"
	ErrMsgFailedToDeleteDeath     = "failed to delete death"
	ErrMsgFailedToInsertBuild     = "failed to insert build"
	ErrMsgFailedToGetBuild        = "failed to get build"
	ErrMsgFailedToListBuilds      = "failed to list builds"
	ErrMsgFailedToUpdateBuild     = "failed to update build"
	ErrMsgFailedToDeleteBuild     = "failed to delete build"
	ErrMsgFailedToScanRow         = "failed to scan row"
)

// sqliteTimestampLayout is what CURRENT_TIMESTAMP produces
const sqliteTimestampLayout = "2006-01-02 15:04:05"
