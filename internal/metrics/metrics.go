package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics stores Prometheus collectors used across the service.
type Metrics struct {
	OrdersCreated     *prometheus.CounterVec
	PaymentDuration   prometheus.Histogram
	NotificationsSent *prometheus.CounterVec
	CatalogCacheHits  *prometheus.CounterVec
}

var (
	regOnce         sync.Once
	metricsInstance *Metrics
)

// Registry builds and registers the metrics singleton with optional namespace.
func Registry(namespace string) *Metrics {
	regOnce.Do(func() {
		metricsInstance = &Metrics{
			OrdersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orders_total",
				Help:      "Total recharge orders by final status.",
			}, []string{"status"}),
			PaymentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payment_duration_seconds",
				Help:      "Latency distribution for payment charges.",
				Buckets:   prometheus.DefBuckets,
			}),
			NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_sent_total",
				Help:      "Total push notifications sent by kind.",
			}, []string{"kind"}),
			CatalogCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_cache_requests_total",
				Help:      "Catalog cache lookups by outcome.",
			}, []string{"outcome"}),
		}

		prometheus.MustRegister(
			metricsInstance.OrdersCreated,
			metricsInstance.PaymentDuration,
			metricsInstance.NotificationsSent,
			metricsInstance.CatalogCacheHits,
		)
	})
	return metricsInstance
}
