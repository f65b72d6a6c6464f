package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the instruments used to monitor the scheduling engine:
// a counter of assignment attempts by outcome, a histogram of store
// operation durations and a counter of dangling assignments detected by
// the daily-hours guard.
type Metrics struct {
	AssignmentOutcomes  *prometheus.CounterVec
	StoreOpDuration     *prometheus.HistogramVec
	DanglingAssignments prometheus.Counter
}

// NewMetrics creates a Metrics instance registered with the provided
// Registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		AssignmentOutcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "shiftscheduler_assignment_outcomes_total",
			Help: "Total assignment attempts by outcome status.",
		}, []string{"status"}),
		StoreOpDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "shiftscheduler_store_op_duration_seconds",
			Help:    "Duration of store load/save operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
		DanglingAssignments: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "shiftscheduler_dangling_assignments_total",
			Help: "Assignments referencing a shift that no longer exists, skipped by the daily-hours guard.",
		}),
	}
}
