package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "oneearth_logins_total", Help: "Login attempts by outcome"},
		[]string{"outcome"},
	)
	Registrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "oneearth_registrations_total", Help: "Total registered users"},
	)
	CompletionsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "oneearth_completions_submitted_total", Help: "Total new challenge completions"},
	)
	CompletionsReviewed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "oneearth_completions_reviewed_total", Help: "Completion reviews by decision"},
		[]string{"status"},
	)
	XPAwarded = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "oneearth_xp_awarded_total", Help: "Total XP granted through approvals"},
	)

	Users = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "oneearth_users", Help: "Stored users by role"},
		[]string{"role"},
	)
	PendingCompletions = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "oneearth_pending_completions", Help: "Completions awaiting review"},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			Logins, Registrations, CompletionsSubmitted, CompletionsReviewed, XPAwarded,
			Users, PendingCompletions,
		)
	})
}
