package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by route template and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadvault_http_requests_total",
		Help: "Total HTTP requests processed, labeled by status code",
	}, []string{"method", "endpoint", "status"})

	// HTTPRequestDuration observes request latency by route template.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "leadvault_http_request_duration_seconds",
		Help:    "Latency distribution of HTTP requests",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "endpoint"})

	// UnlocksTotal counts unlock attempts by kind and outcome.
	UnlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadvault_unlocks_total",
		Help: "Lead unlock attempts, labeled by field type and outcome",
	}, []string{"type", "outcome"})

	// CreditsDebitedTotal sums credits spent on unlocks.
	CreditsDebitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leadvault_credits_debited_total",
		Help: "Credits spent on unlocks",
	})

	// CreditsGrantedTotal sums credits added, labeled by source (topup, grant).
	CreditsGrantedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadvault_credits_granted_total",
		Help: "Credits added to accounts, labeled by source",
	}, []string{"source"})

	// LeadsImportedTotal counts leads inserted through bulk and seed import.
	LeadsImportedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "leadvault_leads_imported_total",
		Help: "Leads inserted by import, labeled by source",
	}, []string{"source"})
)

// Unlock outcomes.
const (
	OutcomeCharged      = "charged"
	OutcomeAlready      = "already_unlocked"
	OutcomeInsufficient = "insufficient_credits"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)
