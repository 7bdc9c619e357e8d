package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staybooker"

var (
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	bookingsCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Bookings accepted, by kind.",
	}, []string{"kind"})

	bookingsRejected = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_rejected_total",
		Help:      "Room bookings refused by the availability rules, by reason.",
	}, []string{"reason"})

	remindersSent = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "checkin_reminders_total",
		Help:      "Check-in reminders dispatched.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpRequests,
		httpDuration,
		bookingsCreated,
		bookingsRejected,
		remindersSent,
	)
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func BookingCreated(kind string) {
	bookingsCreated.WithLabelValues(kind).Inc()
}

func BookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func RemindersSent(n int) {
	remindersSent.Add(float64(n))
}

// Handler exposes Registry in the text exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
