package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"rolematch/internal/models"
)

var (
	libraryEntriesDesc = prometheus.NewDesc(
		"rolematch_library_entries",
		"Number of learned title mappings in the library",
		nil, nil,
	)
	libraryConfirmationsDesc = prometheus.NewDesc(
		"rolematch_library_confirmations_total",
		"Sum of confirmation frequency across library entries",
		nil, nil,
	)
	libraryFeedbackDesc = prometheus.NewDesc(
		"rolematch_library_feedback_total",
		"Sum of verification and issue-report counters across library entries",
		[]string{"kind"}, nil,
	)

	matchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolematch_matches_total",
		Help: "Role title resolutions by winning match type",
	}, []string{"match_type"})

	matchConfidence = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "rolematch_match_confidence",
		Help:    "Confidence of role title resolutions by match type",
		Buckets: []float64{0, 50, 75, 80, 85, 90, 95, 100},
	}, []string{"match_type"})

	feedbackQueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "rolematch_feedback_queue_depth",
		Help: "Library writes waiting for a feedback worker",
	})

	feedbackFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rolematch_feedback_failures_total",
		Help: "Best-effort library writes that failed, by action",
	}, []string{"action"})
)

// StatsSource reports aggregate library counters.
type StatsSource interface {
	LibraryStats(ctx context.Context) (models.LibraryStats, error)
}

// LibraryCollector is a custom Prometheus collector that reads library
// counters from the store on each scrape.
type LibraryCollector struct {
	source StatsSource
}

// NewLibraryCollector creates a collector over source.
func NewLibraryCollector(source StatsSource) *LibraryCollector {
	return &LibraryCollector{source: source}
}

// Describe sends the metric descriptors to the channel.
func (c *LibraryCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- libraryEntriesDesc
	ch <- libraryConfirmationsDesc
	ch <- libraryFeedbackDesc
}

// Collect queries the store and emits the library counters.
func (c *LibraryCollector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.source.LibraryStats(context.Background())
	if err != nil {
		slog.Error("failed to collect library metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(libraryEntriesDesc, prometheus.GaugeValue, float64(stats.Entries))
	ch <- prometheus.MustNewConstMetric(libraryConfirmationsDesc, prometheus.CounterValue, float64(stats.TotalFrequency))
	ch <- prometheus.MustNewConstMetric(libraryFeedbackDesc, prometheus.CounterValue, float64(stats.VerifiedCount), "verified")
	ch <- prometheus.MustNewConstMetric(libraryFeedbackDesc, prometheus.CounterValue, float64(stats.ReportedIssueCount), "reported")
}

var initOnce sync.Once

// Init registers the library collector and match counters with the default
// registry. Must be called once at startup.
func Init(source StatsSource) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewLibraryCollector(source), matchesTotal, matchConfidence, feedbackQueueDepth, feedbackFailures)
	})
}

// RecordMatch counts one resolution outcome.
func RecordMatch(matchType models.MatchType, confidence int) {
	label := matchType.String()
	matchesTotal.WithLabelValues(label).Inc()
	matchConfidence.WithLabelValues(label).Observe(float64(confidence))
}

// RecordFeedbackFailure counts one failed best-effort library write.
func RecordFeedbackFailure(action string) {
	feedbackFailures.WithLabelValues(action).Inc()
}

// SetFeedbackQueueDepth reports the number of queued library writes.
func SetFeedbackQueueDepth(n int) {
	feedbackQueueDepth.Set(float64(n))
}
