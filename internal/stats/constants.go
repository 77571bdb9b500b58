package stats

// ============================================================================
// Activity
// ============================================================================

// RecentActivityDays caps the number of days in the recent-activity series
const RecentActivityDays = 30

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgListSoloHuntsFailed  = "failed to list solo hunts for summary"
	ErrMsgListGroupHuntsFailed = "failed to list group hunts for summary"
	ErrMsgListDeathsFailed     = "failed to list deaths for summary"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgRetrievedSummary     = "Retrieved stats summary"
	LogMsgUnknownPeriod        = "Unknown stats period, defaulting to daily"
	LogMsgFailedToBuildSummary = "Failed to build stats summary"
)
