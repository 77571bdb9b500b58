package build

// Error Messages
const (
	ErrMsgCreateBuildFailed = "failed to create build"
	ErrMsgGetBuildFailed    = "failed to get build"
	ErrMsgListBuildsFailed  = "failed to list builds"
	ErrMsgUpdateBuildFailed = "failed to update build"
	ErrMsgDeleteBuildFailed = "failed to delete build"
	ErrMsgAuditBuildsFailed = "failed to audit builds"
)

// Log Messages
const (
	LogMsgBuildCreated        = "Build created"
	LogMsgBuildUpdated        = "Build updated"
	LogMsgBuildDeleted        = "Build deleted"
	LogMsgBuildRejected       = "Build rejected by catalog check"
	LogMsgCatalogCheckSkipped = "Equipment catalog unavailable, skipping catalog check"
	LogMsgFailedToCreateBuild = "Failed to create build"
	LogMsgFailedToUpdateBuild = "Failed to update build"
	LogMsgFailedToListBuilds  = "Failed to list builds"
	LogMsgFailedToDeleteBuild = "Failed to delete build"
	LogMsgAuditCompleted      = "Build audit completed"
)
