package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Record metric names
const (
	MetricNameRecordsCreated = "albion_records_created_total"
	MetricNameRecordsDeleted = "albion_records_deleted_total"
	MetricNameBuildsUpdated  = "albion_builds_updated_total"
	MetricNameStoreErrors    = "albion_store_errors_total"
	MetricNameSilverRecorded = "albion_silver_recorded_total"
)

// Catalog metric names
const (
	MetricNameCatalogLookups    = "albion_catalog_lookups_total"
	MetricNameCatalogLoadErrors = "albion_catalog_load_errors_total"
	MetricNameCatalogRejections = "albion_catalog_rejections_total"
	MetricNameOrphanedBuilds    = "albion_orphaned_builds"
)

// Background job metric names
const MetricNameJobRuns = "albion_job_runs_total"

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Record metric help text
const (
	HelpTextRecordsCreated = "Total number of records created"
	HelpTextRecordsDeleted = "Total number of delete requests"
	HelpTextBuildsUpdated  = "Total number of builds updated"
	HelpTextStoreErrors    = "Total number of failed store operations"
	HelpTextSilverRecorded = "Total silver recorded, by kind"
)

// Catalog metric help text
const (
	HelpTextCatalogLookups    = "Total number of display name to item id lookups"
	HelpTextCatalogLoadErrors = "Total number of catalog reads that failed"
	HelpTextCatalogRejections = "Total number of build writes rejected by the catalog check"
	HelpTextOrphanedBuilds    = "Stored builds naming equipment missing from the catalog, as of the last audit"
)

// Background job metric help text
const HelpTextJobRuns = "Total number of background job runs, by job and result"

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelRecordType = "record_type"
	LabelOperation  = "operation"
	LabelKind       = "kind"
	LabelResult     = "result"
	LabelJob        = "job"
)

// ============================================================================
// Label Values
// ============================================================================

// Record types
const (
	RecordTypeSoloHunt  = "solo_hunt"
	RecordTypeGroupHunt = "group_hunt"
	RecordTypeDeath     = "death"
	RecordTypeBuild     = "build"
)

// Silver kinds
const (
	SilverKindSoloProfit = "solo_profit"
	SilverKindGroupValue = "group_value"
	SilverKindLoss       = "loss"
)

// Lookup results
const (
	LookupResultHit  = "hit"
	LookupResultMiss = "miss"
)

// Job results
const (
	JobResultOK    = "ok"
	JobResultError = "error"
)

// UnmatchedRoute labels requests no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
