package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	sessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "sessions_started_total",
		Help:      "Count of sessions started.",
	})

	itemsListed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "items_listed_total",
		Help:      "Count of items put up for lending.",
	})

	rentalRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "rental_requests_total",
		Help:      "Rental requests by outcome.",
	}, []string{"result"})

	settlements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "settlements_total",
		Help:      "Settled rentals by payment method.",
	}, []string{"method"})

	settledAmount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "settled_amount_total",
		Help:      "Sum of settled rental costs by payment method.",
	}, []string{"method"})

	broadcasts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lendit",
		Name:      "broadcasts_total",
		Help:      "Emergency broadcasts by delivery outcome.",
	}, []string{"result"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lendit",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(sessionsStarted, itemsListed, rentalRequests,
			settlements, settledAmount, broadcasts, httpDuration)
	})
}

func IncSessionStarted() { sessionsStarted.Inc() }

func IncItemListed() { itemsListed.Inc() }

func IncRentalRequest(result string) { rentalRequests.WithLabelValues(result).Inc() }

func ObserveSettlement(method string, amount float64) {
	settlements.WithLabelValues(method).Inc()
	settledAmount.WithLabelValues(method).Add(amount)
}

func IncBroadcast(result string) { broadcasts.WithLabelValues(result).Inc() }

func ObserveHTTP(method, path, status string, seconds float64) {
	httpDuration.WithLabelValues(method, path, status).Observe(seconds)
}
