package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EstimatesComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_estimates_total",
			Help: "Total number of price estimates computed",
		},
		[]string{"project_type", "urgency"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quote_submissions_total",
			Help: "Quote submissions by outcome",
		},
		[]string{"outcome"},
	)

	NotificationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quote_notification_duration_seconds",
			Help:    "Duration of quote request hand-offs to the notifier",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"notifier", "status"},
	)
)

// Submission outcomes.
const (
	OutcomeSent      = "sent"
	OutcomeFailed    = "failed"
	OutcomeInvalid   = "invalid"
	OutcomeDuplicate = "duplicate"
)
