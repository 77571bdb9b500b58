package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgInvalidID         = "Invalid id"
	ErrMsgInvalidDateFilter = "Invalid date filter, expected YYYY-MM-DD"
	ErrMsgInvalidMinSize    = "Invalid min_size filter"
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgUnknownCategory   = "Unknown equipment category"

	// Record operation error messages
	ErrMsgRecordSoloHuntFailed  = "Failed to record solo hunt"
	ErrMsgListSoloHuntsFailed   = "Failed to list solo hunts"
	ErrMsgDeleteSoloHuntFailed  = "Failed to delete solo hunt"
	ErrMsgRecordGroupHuntFailed = "Failed to record group hunt"
	ErrMsgListGroupHuntsFailed  = "Failed to list group hunts"
	ErrMsgDeleteGroupHuntFailed = "Failed to delete group hunt"
	ErrMsgRecordDeathFailed     = "Failed to record death"
	ErrMsgListDeathsFailed      = "Failed to list deaths"
	ErrMsgDeleteDeathFailed     = "Failed to delete death"

	// Build operation error messages
	ErrMsgCreateBuildFailed = "Failed to create build"
	ErrMsgGetBuildFailed    = "Failed to get build"
	ErrMsgListBuildsFailed  = "Failed to list builds"
	ErrMsgUpdateBuildFailed = "Failed to update build"
	ErrMsgDeleteBuildFailed = "Failed to delete build"

	// Stats error messages
	ErrMsgGetSummaryFailed = "Failed to build stats summary"
)

// Success messages for API responses
const (
	MsgRecordDeleted = "Record deleted"
	MsgBuildDeleted  = "Build deleted"
)
