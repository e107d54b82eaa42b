package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WizardTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltyk_wizard_transitions_total",
		Help: "Wizard events by resulting outcome",
	}, []string{"outcome"})

	WizardSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "voltyk_wizard_sessions",
		Help: "Number of in-progress wizard sessions",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltyk_notifications_sent_total",
		Help: "Notifications delivered to users and channels",
	}, []string{"kind", "status"})

	ScheduleFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "voltyk_schedule_fetch_duration_seconds",
		Help:    "Duration of schedule source requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"region", "status"})

	PowerProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltyk_power_probes_total",
		Help: "Router reachability probes by result",
	}, []string{"result"})

	SchedulerRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voltyk_scheduler_runs_total",
		Help: "Background job runs by job and status",
	}, []string{"job", "status"})
)
