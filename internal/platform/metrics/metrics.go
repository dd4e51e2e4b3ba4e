package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the claims lifecycle and the
// notification pipeline.
type Metrics struct {
	ClaimsCreated   prometheus.Counter
	ClaimsSubmitted prometheus.Counter
	ClaimsResolved  *prometheus.CounterVec

	NotificationsSent    prometheus.Counter
	NotificationsFailed  prometheus.Counter
	NotificationsDropped prometheus.Counter
	DispatchDuration     prometheus.Histogram
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	return &Metrics{
		ClaimsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickclaim_claims_created_total",
			Help: "Total number of claims created",
		}),
		ClaimsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickclaim_claims_submitted_total",
			Help: "Total number of claims submitted for review",
		}),
		ClaimsResolved: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "quickclaim_claims_resolved_total",
			Help: "Total number of admin status resolutions, by new status",
		}, []string{"status"}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickclaim_notifications_sent_total",
			Help: "Total number of notification emails delivered",
		}),
		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickclaim_notifications_failed_total",
			Help: "Total number of notification delivery failures",
		}),
		NotificationsDropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "quickclaim_notifications_dropped_total",
			Help: "Total number of events dropped because the buffer was full",
		}),
		DispatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "quickclaim_notification_dispatch_duration_seconds",
			Help:    "Duration of notification dispatch attempts",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// ObserveDispatch records the duration of one dispatch attempt.
// Call with time.Now() captured at the start of the attempt.
func (m *Metrics) ObserveDispatch(start time.Time) {
	m.DispatchDuration.Observe(time.Since(start).Seconds())
}
