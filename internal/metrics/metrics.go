package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's prometheus instruments behind one
// registry so tests can build isolated instances.
type Collector struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	SnapshotDuration prometheus.Histogram
	SnapshotErrors   prometheus.Counter

	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	NATSPublished   prometheus.Counter
	NATSPublishErrs prometheus.Counter
	NATSConnected   prometheus.Gauge
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "backoffice_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "HTTP request handling duration by route.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"route"}),
		SnapshotDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "backoffice_map_snapshot_duration_seconds",
			Help:    "Duration of the transactional map snapshot fetch.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}),
		SnapshotErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_map_snapshot_errors_total",
			Help: "Total failed map snapshot fetches.",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_cache_hits_total",
			Help: "Total cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_cache_misses_total",
			Help: "Total cache misses.",
		}),
		NATSPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_nats_published_total",
			Help: "Total NATS change events published.",
		}),
		NATSPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "backoffice_nats_publish_errors_total",
			Help: "Total NATS publish errors.",
		}),
		NATSConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "backoffice_nats_connected",
			Help: "1 if NATS connection is established, 0 otherwise.",
		}),
	}

	reg.MustRegister(
		c.HTTPRequests, c.HTTPDuration,
		c.SnapshotDuration, c.SnapshotErrors,
		c.CacheHits, c.CacheMisses,
		c.NATSPublished, c.NATSPublishErrs, c.NATSConnected,
	)

	return c
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Publisher metrics hooks, satisfied for the NATS change publisher.

func (c *Collector) NATSPublishedInc()  { c.NATSPublished.Inc() }
func (c *Collector) NATSPublishErrInc() { c.NATSPublishErrs.Inc() }
func (c *Collector) NATSSetConnected(ok bool) {
	if ok {
		c.NATSConnected.Set(1)
	} else {
		c.NATSConnected.Set(0)
	}
}

// ObserveSnapshot records one snapshot fetch outcome.
func (c *Collector) ObserveSnapshot(d time.Duration, err error) {
	c.SnapshotDuration.Observe(d.Seconds())
	if err != nil {
		c.SnapshotErrors.Inc()
	}
}
