package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecord(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementResolution("all", "decided")
	m.IncrementResolution("all", "decided")
	m.IncrementDecisionAppended("Identified", "item")
	m.IncrementMerge("flatten")
	m.IncrementIncomplete("events")
	m.IncrementPublishFailure()
	m.ObserveFetchLatency("events", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Resolutions.WithLabelValues("all", "decided")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DecisionsAppended.WithLabelValues("Identified", "item")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HighlightMerges.WithLabelValues("flatten")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IncompleteFetches.WithLabelValues("events")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PublishFailures))
	assert.Equal(t, 1, testutil.CollectAndCount(m.FetchLatency))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementResolution("all", "none")
		m.IncrementDecisionAppended("Irrelevant", "global")
		m.IncrementMerge("single_agent")
		m.IncrementIncomplete("spans")
		m.IncrementPublishFailure()
		m.ObserveFetchLatency("tree", time.Second)
	})
}
