package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "newsfeed"

// Collector is a prometheus.Collector covering the ingest pipeline and the
// upstream wire client.
type Collector struct {
	runsTotal        *prometheus.CounterVec
	articlesIngested *prometheus.CounterVec
	runDuration      prometheus.Histogram
	wireRequests     *prometheus.CounterVec
}

// NewCollector returns a new Collector.
func NewCollector() *Collector {
	return &Collector{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "ingest_runs_total",
				Help:      "The number of completed ingest runs.",
			}, []string{"section", "status"},
		),
		articlesIngested: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "articles_ingested_total",
				Help:      "The number of articles written by ingest runs.",
			}, []string{"section", "outcome"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "ingest_run_duration_seconds",
				Help:      "The time taken by one ingest run.",
				Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
			},
		),
		wireRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "wire_requests_total",
				Help:      "The number of requests made to the news wire API.",
			}, []string{"endpoint", "status"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.runsTotal.Describe(ch)
	c.articlesIngested.Describe(ch)
	c.runDuration.Describe(ch)
	c.wireRequests.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.runsTotal.Collect(ch)
	c.articlesIngested.Collect(ch)
	c.runDuration.Collect(ch)
	c.wireRequests.Collect(ch)
}

func (c *Collector) RunCompleted(section, status string, seconds float64) {
	c.runsTotal.WithLabelValues(section, status).Inc()
	c.runDuration.Observe(seconds)
}

func (c *Collector) ArticlesIngested(section, outcome string, n int) {
	if n > 0 {
		c.articlesIngested.WithLabelValues(section, outcome).Add(float64(n))
	}
}

func (c *Collector) WireRequest(endpoint, status string) {
	c.wireRequests.WithLabelValues(endpoint, status).Inc()
}
