package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Record Metrics
var (
	RecordsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsCreated,
			Help: HelpTextRecordsCreated,
		},
		[]string{LabelRecordType},
	)

	RecordsDeleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRecordsDeleted,
			Help: HelpTextRecordsDeleted,
		},
		[]string{LabelRecordType},
	)

	BuildsUpdated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBuildsUpdated,
			Help: HelpTextBuildsUpdated,
		},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreErrors,
			Help: HelpTextStoreErrors,
		},
		[]string{LabelRecordType, LabelOperation},
	)

	SilverRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSilverRecorded,
			Help: HelpTextSilverRecorded,
		},
		[]string{LabelKind},
	)
)

// Catalog Metrics
var (
	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLookups,
			Help: HelpTextCatalogLookups,
		},
		[]string{LabelResult},
	)

	CatalogLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogLoadErrors,
			Help: HelpTextCatalogLoadErrors,
		},
	)

	CatalogRejections = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogRejections,
			Help: HelpTextCatalogRejections,
		},
	)

	OrphanedBuilds = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOrphanedBuilds,
			Help: HelpTextOrphanedBuilds,
		},
	)
)

// Background job metrics
var (
	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelResult},
	)
)

// RecordSilver adds a silver amount to the kind's counter. Counters only go
// up, so negative amounts (a losing hunt) are skipped.
func RecordSilver(kind string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		return
	}
	SilverRecorded.WithLabelValues(kind).Add(amount.InexactFloat64())
}

// RecordLookup counts a catalog lookup by outcome
func RecordLookup(found bool) {
	if found {
		CatalogLookups.WithLabelValues(LookupResultHit).Inc()
		return
	}
	CatalogLookups.WithLabelValues(LookupResultMiss).Inc()
}
