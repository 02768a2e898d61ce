package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TripsPublishedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "covoit", Name: "trips_published_total", Help: "Total number of trips published"})
	TripsDeletedTotal    = promauto.NewCounter(prometheus.CounterOpts{Namespace: "covoit", Name: "trips_deleted_total", Help: "Total number of trips deleted"})
	ContactMessagesTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "covoit", Name: "contact_messages_total", Help: "Total number of contact messages sent to trip owners"})
	AccountsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "covoit", Name: "accounts_created_total", Help: "Total number of registered accounts"})

	TripSearchResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "covoit",
		Name:      "trip_search_results",
		Help:      "Number of trips returned by a search",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100, 250},
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{Namespace: "covoit", Name: "http_requests_total", Help: "Total HTTP requests handled"},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "covoit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
