package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the clearing module.
type Metrics struct {
	// Collaborator fetch latencies by source
	FetchLatency *prometheus.HistogramVec

	// Resolutions by scope filter and outcome
	Resolutions *prometheus.CounterVec

	// Appended decisions by type name and scope
	DecisionsAppended *prometheus.CounterVec

	// Highlight merges by mode
	HighlightMerges *prometheus.CounterVec

	// Incomplete collaborator fetches refused
	IncompleteFetches *prometheus.CounterVec

	PublishFailures prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the clearing metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clearview_clearing_fetch_duration_seconds",
			Help:    "Duration of collaborator fetches by source",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"source"}), // source: "events", "spans", "tree", "permission"

		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clearview_clearing_resolutions_total",
			Help: "Total decision resolutions by scope filter and outcome",
		}, []string{"filter", "outcome"}), // outcome: "decided", "none", "error"

		DecisionsAppended: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clearview_clearing_decisions_appended_total",
			Help: "Total clearing events appended by decision type and scope",
		}, []string{"type", "scope"}),

		HighlightMerges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clearview_highlight_merges_total",
			Help: "Total highlight merges by mode",
		}, []string{"mode"}), // mode: "flatten", "single_agent"

		IncompleteFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clearview_clearing_incomplete_fetches_total",
			Help: "Fetches refused because the collaborator returned a truncated result",
		}, []string{"source"}),

		PublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "clearview_clearing_publish_failures_total",
			Help: "Appended events that could not be published",
		}),
	}
}

// ObserveFetchLatency records the duration of a collaborator fetch.
func (m *Metrics) ObserveFetchLatency(source string, d time.Duration) {
	if m != nil {
		m.FetchLatency.WithLabelValues(source).Observe(d.Seconds())
	}
}

// IncrementResolution records one resolution outcome.
func (m *Metrics) IncrementResolution(filter, outcome string) {
	if m != nil {
		m.Resolutions.WithLabelValues(filter, outcome).Inc()
	}
}

// IncrementDecisionAppended records one appended clearing event.
func (m *Metrics) IncrementDecisionAppended(typeName, scope string) {
	if m != nil {
		m.DecisionsAppended.WithLabelValues(typeName, scope).Inc()
	}
}

// IncrementMerge records one highlight merge.
func (m *Metrics) IncrementMerge(mode string) {
	if m != nil {
		m.HighlightMerges.WithLabelValues(mode).Inc()
	}
}

// IncrementIncomplete records a refused truncated fetch.
func (m *Metrics) IncrementIncomplete(source string) {
	if m != nil {
		m.IncompleteFetches.WithLabelValues(source).Inc()
	}
}

// IncrementPublishFailure records an event that was stored but not published.
func (m *Metrics) IncrementPublishFailure() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}
